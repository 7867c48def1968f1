package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/luismarketmedia/dash-fut/models"
)

// Config holds every runtime parameter of the application.
type Config struct {
	// DatabaseURL is optional: without it the engine runs against the
	// local snapshot slot only.
	DatabaseURL  string
	JWTSecretKey string
	ServerPort   int

	// Qualifier counts per elimination phase.
	QualifiersR16   int
	QualifiersQF    int
	QualifiersSF    int
	QualifiersFinal int

	// MatchPeriod is the default countdown length of one half.
	MatchPeriod time.Duration
	// GroupPoolSize caps classification pools (teams per pool).
	GroupPoolSize int

	SnapshotPath string

	// Optional Cloudflare R2 mirror of the snapshot.
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2ObjectKey       string
}

// Load reads configuration from environment variables, optionally
// picking up a .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	port, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	r16, err := intEnv("QUALIFIERS_R16", 16)
	if err != nil {
		return nil, err
	}
	qf, err := intEnv("QUALIFIERS_QF", 8)
	if err != nil {
		return nil, err
	}
	sf, err := intEnv("QUALIFIERS_SF", 4)
	if err != nil {
		return nil, err
	}
	final, err := intEnv("QUALIFIERS_FINAL", 2)
	if err != nil {
		return nil, err
	}

	periodMin, err := intEnv("MATCH_PERIOD_MINUTES", 20)
	if err != nil {
		return nil, err
	}
	if periodMin <= 0 {
		return nil, fmt.Errorf("MATCH_PERIOD_MINUTES must be positive, got %d", periodMin)
	}

	poolSize, err := intEnv("GROUP_POOL_SIZE", 4)
	if err != nil {
		return nil, err
	}
	if poolSize < 2 {
		return nil, fmt.Errorf("GROUP_POOL_SIZE must be at least 2, got %d", poolSize)
	}

	snapshotPath := os.Getenv("SNAPSHOT_PATH")
	if snapshotPath == "" {
		snapshotPath = "dashfut-state.json"
	}

	r2Key := os.Getenv("R2_OBJECT_KEY")
	if r2Key == "" {
		r2Key = "snapshots/dashfut-state.json"
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecretKey:      jwtKey,
		ServerPort:        port,
		QualifiersR16:     r16,
		QualifiersQF:      qf,
		QualifiersSF:      sf,
		QualifiersFinal:   final,
		MatchPeriod:       time.Duration(periodMin) * time.Minute,
		GroupPoolSize:     poolSize,
		SnapshotPath:      snapshotPath,
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2ObjectKey:       r2Key,
	}

	return cfg, nil
}

// PeriodMs is the default countdown in milliseconds.
func (c *Config) PeriodMs() int64 {
	return c.MatchPeriod.Milliseconds()
}

// R2Enabled reports whether the optional snapshot mirror is configured.
func (c *Config) R2Enabled() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}

// QualifiersFor returns the configured top-K for an elimination phase,
// capped by the team count. For R16 and QF a K of 4 or more is coerced
// down to a multiple of 4 so pod seeding applies.
func (c *Config) QualifiersFor(phase models.Phase, totalTeams int) int {
	var base int
	switch phase {
	case models.PhaseRoundOf16:
		base = c.QualifiersR16
	case models.PhaseQuarterfinal:
		base = c.QualifiersQF
	case models.PhaseSemifinal:
		base = c.QualifiersSF
	default:
		base = c.QualifiersFinal
	}
	if base < 2 {
		base = 2
	}
	if base > totalTeams {
		base = totalTeams
	}

	if phase == models.PhaseRoundOf16 || phase == models.PhaseQuarterfinal {
		if base < 4 {
			return base
		}
		coerced := base - base%4
		if coerced > totalTeams {
			coerced = totalTeams
		}
		if coerced < 4 {
			coerced = 4
		}
		return coerced
	}
	return base
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return n, nil
}
