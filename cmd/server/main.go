package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/internal/app"
	"portfolio/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags|log.LUTC)

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return fmt.Errorf("invalid HTTP port: %w", err)
	}

	container, err := app.NewContainer(cfg, logger)
	if err != nil {
		return fmt.Errorf("build container: %w", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.Printf("cleanup error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.Driver == config.DriverSQLite {
		if err := container.Migrate(ctx); err != nil {
			return err
		}
	}

	server := app.New(container)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return container.Hub.Run(gctx) })
	g.Go(func() error { return container.Loop.Run(gctx) })
	g.Go(func() error {
		logger.Printf("[Server] listening addr=%s env=%s db=%s", addr, cfg.App.Environment, cfg.Database.Driver)
		return server.Fiber.Listen(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Fiber.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Printf("[Server] stopped")
	return nil
}
