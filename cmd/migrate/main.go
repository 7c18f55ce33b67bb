// Command migrate applies or inspects the embedded database migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// Configuration is loaded the same way as the server (config.yaml, .env,
// environment). Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/lifeflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lifeflow-backend/internal/app"
	"github.com/heartmarshall/lifeflow-backend/internal/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down|status]")
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	m, err := postgres.NewMigrator(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("open migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer m.Close()

	switch command {
	case "up":
		applied, err := m.Up(ctx)
		if err != nil {
			logger.Error("migrate up failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrate up completed", slog.Any("versions", applied))

	case "down":
		version, err := m.Down(ctx)
		if err != nil {
			logger.Error("migrate down failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrate down completed", slog.Int64("version", version))

	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			logger.Error("migrate status failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, st := range statuses {
			applied := "-"
			if !st.AppliedAt.IsZero() {
				applied = st.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%-8s %-10s %s  %s\n", fmt.Sprint(st.Source.Version), st.State, applied, st.Source.Path)
		}

	default:
		flag.Usage()
		os.Exit(1)
	}
}
