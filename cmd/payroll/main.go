package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/NMirzabek/PayrollAnalytics/internal/app"
	"github.com/NMirzabek/PayrollAnalytics/internal/calculations"
	"github.com/NMirzabek/PayrollAnalytics/internal/employees"
	"github.com/NMirzabek/PayrollAnalytics/internal/organizations"
	"github.com/NMirzabek/PayrollAnalytics/internal/platform/db"
	"github.com/NMirzabek/PayrollAnalytics/internal/regions"
	"github.com/NMirzabek/PayrollAnalytics/internal/statistics"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	if cfg.MigrateOnStart {
		if err := db.Migrate(cfg.PGDSN); err != nil {
			logger.Error("run migrations", slog.Any("error", err))
			os.Exit(1)
		}
	}

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	regionsRepo := regions.NewRepository(dbpool)
	regionsService := regions.NewService(regionsRepo)
	regionsHandler := regions.NewHandler(logger, regionsService)

	orgsRepo := organizations.NewRepository(dbpool)
	orgsService := organizations.NewService(orgsRepo, regionsRepo)
	orgsHandler := organizations.NewHandler(logger, orgsService)

	employeesRepo := employees.NewRepository(dbpool)
	employeesService := employees.NewService(employeesRepo, orgsRepo)
	employeesHandler := employees.NewHandler(logger, employeesService)

	calculationsRepo := calculations.NewRepository(dbpool)
	calculationsService := calculations.NewService(calculationsRepo, employeesRepo, orgsRepo)
	calculationsHandler := calculations.NewHandler(logger, calculationsService)

	statisticsStore := statistics.NewRepository(dbpool)
	statisticsService := statistics.NewService(statisticsStore, orgsRepo)
	statisticsHandler := statistics.NewHandler(logger, statisticsService)

	router := app.NewRouter(app.RouterParams{
		Logger:               logger,
		Config:               cfg,
		RegionsHandler:       regionsHandler,
		OrganizationsHandler: orgsHandler,
		EmployeesHandler:     employeesHandler,
		CalculationsHandler:  calculationsHandler,
		StatisticsHandler:    statisticsHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
