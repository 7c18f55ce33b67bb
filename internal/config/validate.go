package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be in 0..%d (got %d)", c.Database.MaxConns, c.Database.MinConns)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("rate_limit.requests_per_second must be > 0 (got %v)", c.RateLimit.RequestsPerSecond)
		}
		if c.RateLimit.Burst < 1 {
			return fmt.Errorf("rate_limit.burst must be >= 1 (got %d)", c.RateLimit.Burst)
		}
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Gamification.validate(); err != nil {
		return fmt.Errorf("gamification: %w", err)
	}

	return nil
}

func (g *GamificationConfig) validate() error {
	if g.LeaderboardSize <= 0 {
		return fmt.Errorf("leaderboard_size must be > 0 (got %d)", g.LeaderboardSize)
	}
	if g.MaxEarningsLimit <= 0 {
		return fmt.Errorf("max_earnings_limit must be > 0 (got %d)", g.MaxEarningsLimit)
	}
	if g.DefaultEarningsLimit <= 0 || g.DefaultEarningsLimit > g.MaxEarningsLimit {
		return fmt.Errorf("default_earnings_limit must be in 1..%d (got %d)", g.MaxEarningsLimit, g.DefaultEarningsLimit)
	}
	return nil
}

func (l *LogConfig) validate() error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return fmt.Errorf("level %q: %w", l.Level, err)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	if l.File != "" && l.MaxSizeMB <= 0 {
		return fmt.Errorf("max_size_mb must be > 0 when file is set (got %d)", l.MaxSizeMB)
	}
	return nil
}
