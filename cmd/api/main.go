package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/feedbacklink-io/feedbacklink-backend/api/routes"
	authsvc "github.com/feedbacklink-io/feedbacklink-backend/internal/auth"
	feedbacksvc "github.com/feedbacklink-io/feedbacklink-backend/internal/feedback"
	"github.com/feedbacklink-io/feedbacklink-backend/internal/state"
	teamsvc "github.com/feedbacklink-io/feedbacklink-backend/internal/team"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/auth/session"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/config"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/logger"
	"github.com/feedbacklink-io/feedbacklink-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store := state.New()
	if cfg.Seed.Demo {
		if err := store.SeedDemo(); err != nil {
			logg.Error(context.Background(), "failed to seed demo data", err)
			os.Exit(1)
		}
		logg.Info(context.Background(), "demo directory seeded")
	}

	sessionManager, err := session.NewManager(cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		Store:          store,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	teamService, err := teamsvc.NewService(teamsvc.ServiceParams{Store: store})
	if err != nil {
		logg.Error(context.Background(), "failed to create team service", err)
		os.Exit(1)
	}

	feedbackService, err := feedbacksvc.NewService(feedbacksvc.ServiceParams{Store: store})
	if err != nil {
		logg.Error(context.Background(), "failed to create feedback service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			sessionManager,
			httpMetrics,
			authService,
			teamService,
			feedbackService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
