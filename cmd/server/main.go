// cmd/server/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"auswo-calculator/internal/common/config"
	"auswo-calculator/internal/common/logger"
	"auswo-calculator/internal/common/observability"
	"auswo-calculator/internal/rules"
	"auswo-calculator/internal/scoring"
	"auswo-calculator/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zl := logger.New("info", "json")
		zl.Sugar().Fatalf("failed to load configuration: %v", err)
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLogger.Sync()
	log := logger.NewZapAdapter(zapLogger)

	log.Info("starting points calculator", map[string]interface{}{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	})

	// The rule table is loaded once at startup and never reloaded. A table
	// that fails to load or validate is fatal.
	table, err := rules.Load(cfg.Rules.Path)
	if err != nil {
		zapLogger.Sugar().Fatalf("rule table unavailable: %v", err)
	}
	log.Info("rule table loaded", map[string]interface{}{
		"path":       cfg.Rules.Path,
		"version":    table.Meta.Version,
		"updated_at": table.Meta.UpdatedAt,
	})

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	engine := scoring.NewEngine(table)
	srv := server.New(cfg.Server, engine, log, obs)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLogger.Sugar().Fatalf("http server failed: %v", err)
		}
	case sig := <-stop:
		log.Info("shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown did not complete cleanly", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log.Info("server stopped", nil)
}
