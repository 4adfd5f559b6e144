package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gpa-calculator/internal/config"
	"gpa-calculator/internal/observability"
	"gpa-calculator/internal/server"
)

func main() {
	exitCode := 0
	defer func() {
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()

	ctx := context.Background()

	// Config
	envFile, err := loadDotEnv()
	if err != nil {
		panic(err)
	}
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logger
	err = observability.InitLogger(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	if envFile != "" {
		observability.Logger.Info("loaded environment file", zap.String("path", envFile))
	}

	// Tracing, metrics, log export
	telemetryShutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		observability.Logger.Fatal("init telemetry", zap.Error(err))
	}
	defer func() {
		if err := telemetryShutdown(ctx); err != nil {
			observability.Logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	// Router
	limiter := server.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Stop()

	router := server.NewRouter(cfg, limiter)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       time.Minute,
		ErrorLog:          zap.NewStdLog(observability.Logger),
	}

	serveErr := make(chan error, 1)
	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.Bool("otel", cfg.OTelEnabled),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	if err := waitForShutdown(srv, cfg.ShutdownTimeout, stop, serveErr); err != nil {
		observability.Logger.Error("server failed", zap.Error(err))
		exitCode = 1
	}
}

// waitForShutdown blocks until a signal arrives or the server fails. On a
// signal it drains in-flight requests within timeout. The returned error
// is the serve failure, if any.
func waitForShutdown(srv *http.Server, timeout time.Duration, stop <-chan os.Signal, serveErr <-chan error) error {
	select {
	case err := <-serveErr:
		return err
	case sig := <-stop:
		observability.Logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Error("graceful shutdown failed", zap.Error(err))
	}
	return nil
}
