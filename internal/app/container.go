package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/database/migration"
	dbpostgres "portfolio/internal/database/postgres"
	dbsqlite "portfolio/internal/database/sqlite"
	"portfolio/internal/export"
	"portfolio/internal/infrastructure/cache"
	"portfolio/internal/render"
	"portfolio/internal/repository"
	"portfolio/internal/scene"
	"portfolio/internal/snapshot"
	"portfolio/internal/usecase"
	"portfolio/internal/ws"
	"portfolio/web"
)

type Container struct {
	Config config.Config
	Logger *log.Logger

	DB       database.DB
	Cache    *cache.Redis
	Snapshot *snapshot.Holder

	Portfolio *usecase.Portfolio
	CV        *usecase.CV

	Scene *scene.Scene
	Loop  *scene.Loop
	Hub   *ws.Hub
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	timeout := cfg.Database.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	db, err := OpenDatabase(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	return newContainer(cfg, db, cache.NewRedis(cfg.Redis, logger), logger), nil
}

func newContainer(cfg config.Config, db database.DB, rc *cache.Redis, logger *log.Logger) *Container {
	holder := snapshot.NewHolder(rc, logger)
	repo := repository.NewSQLPortfolioRepository(db, cfg.Portfolio.ServicesEnabled)

	fallback := cfg.Portfolio.FallbackName
	if fallback == "" {
		fallback = config.DefaultFallbackName
	}

	sc := scene.New(cfg.Scene.Particles, cfg.Scene.Seed)
	hub := ws.NewHub(logger)
	loop := scene.NewLoop(sc, ws.NewFramePublisher(hub, logger), scene.LoopConfig{
		FPS:          cfg.Scene.FPS,
		PublishEvery: cfg.Scene.PublishEvery,
	}, logger)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Cache:     rc,
		Snapshot:  holder,
		Portfolio: usecase.NewPortfolioUsecase(repo, holder, render.New(nil), web.Page, fallback, logger),
		CV:        usecase.NewCVUsecase(holder, export.New(export.DefaultLayout()), logger),
		Scene:     sc,
		Loop:      loop,
		Hub:       hub,
	}
}

// OpenDatabase connects to the configured backend.
func OpenDatabase(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return dbpostgres.Connect(ctx, cfg)
	case config.DriverSQLite:
		return dbsqlite.Open(ctx, cfg.DBPath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations.
func (c *Container) Migrate(ctx context.Context) error {
	r := migration.Runner{FS: migration.Embedded(), Dialect: c.DB.Dialect()}
	if err := r.Run(ctx, c.DB.SQLDB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
