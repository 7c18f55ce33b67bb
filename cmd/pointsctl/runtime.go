package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lifeflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lifeflow-backend/internal/app"
	"github.com/heartmarshall/lifeflow-backend/internal/config"
)

// runtime lazily loads configuration and opens the pool, so commands that
// never touch the database do not need one.
type runtime struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
}

func (r *runtime) config() (*config.Config, error) {
	if r.cfg != nil {
		return r.cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	r.cfg = cfg
	r.logger = app.NewLogger(cfg.Log)
	return cfg, nil
}

func (r *runtime) db(ctx context.Context) (*pgxpool.Pool, error) {
	if r.pool != nil {
		return r.pool, nil
	}
	cfg, err := r.config()
	if err != nil {
		return nil, err
	}
	dbCfg := cfg.Database
	dbCfg.ApplicationName = "pointsctl"
	dbCfg.MinConns = 0
	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	r.pool = pool
	return pool, nil
}

func (r *runtime) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}
