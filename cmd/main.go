package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/luismarketmedia/dash-fut/clock"
	"github.com/luismarketmedia/dash-fut/config"
	"github.com/luismarketmedia/dash-fut/db"
	"github.com/luismarketmedia/dash-fut/handlers"
	"github.com/luismarketmedia/dash-fut/metrics"
	"github.com/luismarketmedia/dash-fut/realtime"
	"github.com/luismarketmedia/dash-fut/repositories"
	api "github.com/luismarketmedia/dash-fut/routes"
	"github.com/luismarketmedia/dash-fut/services"
	"github.com/luismarketmedia/dash-fut/state"
	"github.com/luismarketmedia/dash-fut/storage"
)

const tickInterval = time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// The record store is optional; without it the engine runs against
	// the snapshot slot alone.
	var mirror services.Mirror
	var loaderRepos services.LoaderRepos
	var userRepo repositories.UserRepository
	var workspaceRepo repositories.WorkspaceRepository
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			}
		}()
		logger.Info("database connection established")

		userRepo = repositories.NewPostgresUserRepository(dbConn)
		workspaceRepo = repositories.NewPostgresWorkspaceRepository(dbConn)
		categoryRepo := repositories.NewPostgresCategoryRepository(dbConn)
		playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
		teamRepo := repositories.NewPostgresTeamRepository(dbConn)
		assignmentRepo := repositories.NewPostgresAssignmentRepository(dbConn)
		groupRepo := repositories.NewPostgresGroupRepository(dbConn)
		matchRepo := repositories.NewPostgresMatchRepository(dbConn)
		eventRepo := repositories.NewPostgresMatchEventRepository(dbConn)

		mirror = services.NewSQLMirror(categoryRepo, playerRepo, teamRepo, assignmentRepo, groupRepo, matchRepo, eventRepo)
		loaderRepos = services.LoaderRepos{
			Workspaces:  workspaceRepo,
			Categories:  categoryRepo,
			Players:     playerRepo,
			Teams:       teamRepo,
			Assignments: assignmentRepo,
			Groups:      groupRepo,
			Matches:     matchRepo,
			Events:      eventRepo,
		}
	} else {
		logger.Warn("DATABASE_URL not set, running in snapshot-only mode")
	}

	snapshots := []storage.SnapshotStore{storage.NewFileSnapshotStore(cfg.SnapshotPath)}
	if cfg.R2Enabled() {
		r2Store, err := storage.NewCloudflareR2SnapshotStore(storage.CloudflareR2SnapshotConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			ObjectKey:       cfg.R2ObjectKey,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 snapshot store", slog.Any("error", err))
			os.Exit(1)
		}
		snapshots = append(snapshots, r2Store)
		logger.Info("Cloudflare R2 snapshot mirror initialized")
	}

	store := state.NewStore(state.Empty())
	dispatcher := services.NewDispatcher(store, mirror, snapshots, logger)
	loader := services.NewLoader(dispatcher, loaderRepos, snapshots, logger)

	// Snapshot-only mode rehydrates at startup; with a record store the
	// first workspace selection does it instead.
	if cfg.DatabaseURL == "" {
		if err := loader.Hydrate(context.Background(), "", ""); err != nil {
			logger.Error("failed to hydrate from snapshot", slog.Any("error", err))
		}
	}

	wsHub := realtime.NewHub(logger)
	go wsHub.Run()

	// Every accepted transition feeds the dashboards and the clock gauge.
	store.Subscribe(func(next state.State, action state.Action) {
		running := 0
		for _, m := range next.Matches {
			if m.Running() {
				running++
			}
		}
		metrics.RunningClocks.Set(float64(running))

		if next.ActiveWorkspaceID != "" {
			wsHub.BroadcastToRoom(next.ActiveWorkspaceID, realtime.Message{
				Type:    "STATE_UPDATED",
				Action:  action.Kind(),
				Payload: next,
			})
		}
	})

	ticker := clock.NewTicker(store, tickInterval)
	ticker.Start()
	defer ticker.Stop()
	logger.Info("match clock ticker started", slog.Duration("interval", tickInterval))

	drawService := services.NewDrawService(dispatcher, nil)
	phaseService := services.NewPhaseService(dispatcher, cfg, nil, nil)
	matchService := services.NewMatchService(dispatcher, cfg)
	rosterService := services.NewRosterService(dispatcher)
	demoService := services.NewDemoService(dispatcher, nil)
	authService := services.NewAuthService(userRepo, workspaceRepo, cfg.JWTSecretKey)
	workspaceService := services.NewWorkspaceService(workspaceRepo, userRepo)
	logger.Info("services initialized")

	router := api.InitRoutes(api.Handlers{
		Auth:       handlers.NewAuthHandler(authService),
		Workspace:  handlers.NewWorkspaceHandler(workspaceService, loader, dispatcher),
		Roster:     handlers.NewRosterHandler(rosterService),
		Tournament: handlers.NewTournamentHandler(dispatcher, drawService, phaseService, demoService),
		Match:      handlers.NewMatchHandler(matchService),
		WebSocket:  handlers.NewWebSocketHandler(wsHub, workspaceService, logger),
	}, cfg.JWTSecretKey, workspaceService)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
		}
	}

	// Let in-flight mirror and snapshot writes land before exiting.
	dispatcher.Wait()
	logger.Info("application exited")
}
