package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lifeflow-backend/internal/adapter/postgres"
	habitrepo "github.com/heartmarshall/lifeflow-backend/internal/adapter/postgres/habit"
	"github.com/heartmarshall/lifeflow-backend/internal/adapter/postgres/leaderboard"
	"github.com/heartmarshall/lifeflow-backend/internal/adapter/postgres/ledger"
	"github.com/heartmarshall/lifeflow-backend/internal/auth"
	"github.com/heartmarshall/lifeflow-backend/internal/config"
	"github.com/heartmarshall/lifeflow-backend/internal/metrics"
	"github.com/heartmarshall/lifeflow-backend/internal/service/award"
	"github.com/heartmarshall/lifeflow-backend/internal/service/gamification"
	"github.com/heartmarshall/lifeflow-backend/internal/service/habit"
	"github.com/heartmarshall/lifeflow-backend/internal/transport/middleware"
	"github.com/heartmarshall/lifeflow-backend/internal/transport/rest"
)

const rateLimiterCleanupInterval = time.Minute

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := migrateUp(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
	)

	handler, stop := NewHandler(cfg, pool, logger)
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHandler wires repositories, services and transport over pool and
// returns the root HTTP handler. stop releases background workers.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (handler http.Handler, stop func()) {
	// Repositories.
	txManager := postgres.NewTxManager(pool)
	habits := habitrepo.New(pool)
	points := ledger.New(pool)
	board := leaderboard.New(pool)

	// Services.
	m := metrics.New()
	awards := award.NewService(logger, points, txManager, m)
	habitService := habit.NewService(logger, habits, txManager, awards)
	gamificationService := gamification.NewService(logger, points, board, habits, gamification.Limits{
		LeaderboardSize:      cfg.Gamification.LeaderboardSize,
		DefaultEarningsLimit: cfg.Gamification.DefaultEarningsLimit,
		MaxEarningsLimit:     cfg.Gamification.MaxEarningsLimit,
	})

	// Transport.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	stop = func() {}
	apiMiddleware := []func(http.Handler) http.Handler{middleware.Auth(jwtManager, logger)}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, rateLimiterCleanupInterval)
		stop = limiter.Stop
		apiMiddleware = append(apiMiddleware, limiter.Handler)
	}

	routerCfg := rest.RouterConfig{
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
		Habits:       rest.NewHabitHandler(habitService, logger),
		Gamification: rest.NewGamificationHandler(gamificationService, logger),
		Middleware: []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.Metrics(m),
			middleware.CORS(cfg.CORS),
		},
		APIMiddleware: apiMiddleware,
	}
	if cfg.Metrics.Enabled {
		routerCfg.MetricsPath = cfg.Metrics.Path
		routerCfg.MetricsHandler = m.Handler()
	}

	return rest.NewRouter(routerCfg), stop
}

// serve runs srv until ctx is cancelled or the listener fails, then shuts it
// down gracefully within shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

func migrateUp(ctx context.Context, dsn string, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	applied, err := m.Up(ctx)
	if err != nil {
		return err
	}

	logger.Info("migrations applied", slog.Int("count", len(applied)))
	return nil
}
