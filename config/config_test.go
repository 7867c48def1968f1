package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/luismarketmedia/dash-fut/models"
)

func defaults() *Config {
	return &Config{
		QualifiersR16:   16,
		QualifiersQF:    8,
		QualifiersSF:    4,
		QualifiersFinal: 2,
		MatchPeriod:     20 * time.Minute,
		GroupPoolSize:   4,
	}
}

func TestQualifiersForCapsAtTeamCount(t *testing.T) {
	cfg := defaults()

	// Ten teams cannot feed a sixteen-slot bracket: capped to 10, then
	// coerced down to a multiple of four.
	assert.Equal(t, 8, cfg.QualifiersFor(models.PhaseRoundOf16, 10))
	assert.Equal(t, 16, cfg.QualifiersFor(models.PhaseRoundOf16, 20))
}

func TestQualifiersForQuarterfinalCoercion(t *testing.T) {
	cfg := defaults()

	assert.Equal(t, 8, cfg.QualifiersFor(models.PhaseQuarterfinal, 12))
	assert.Equal(t, 4, cfg.QualifiersFor(models.PhaseQuarterfinal, 6))
	// Below four teams pods are off and the raw count passes through.
	assert.Equal(t, 3, cfg.QualifiersFor(models.PhaseQuarterfinal, 3))
}

func TestQualifiersForSemifinalAndFinal(t *testing.T) {
	cfg := defaults()

	assert.Equal(t, 4, cfg.QualifiersFor(models.PhaseSemifinal, 8))
	assert.Equal(t, 3, cfg.QualifiersFor(models.PhaseSemifinal, 3))
	assert.Equal(t, 2, cfg.QualifiersFor(models.PhaseFinal, 5))
}

func TestQualifiersForFloorOfTwo(t *testing.T) {
	cfg := defaults()
	cfg.QualifiersFinal = 0

	assert.Equal(t, 2, cfg.QualifiersFor(models.PhaseFinal, 5))
}

func TestPeriodMs(t *testing.T) {
	cfg := defaults()
	assert.Equal(t, int64(20*60*1000), cfg.PeriodMs())
}

func TestR2Enabled(t *testing.T) {
	cfg := defaults()
	assert.False(t, cfg.R2Enabled())

	cfg.R2AccountID = "acc"
	cfg.R2AccessKeyID = "key"
	cfg.R2SecretAccessKey = "secret"
	assert.False(t, cfg.R2Enabled())

	cfg.R2BucketName = "bucket"
	assert.True(t, cfg.R2Enabled())
}
