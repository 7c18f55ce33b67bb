package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	configPathEnv     = "CONFIG_PATH"
	envFileEnv        = "ENV_FILE"
	defaultConfigPath = "config.yaml"
	defaultEnvFile    = ".env"
)

// Load assembles the configuration in increasing priority: env-default tags,
// the YAML file, then the environment. A dotenv file is merged into the
// environment first and never overrides variables that are already set.
//
// CONFIG_PATH and ENV_FILE name the two files. When a name is given
// explicitly the file must exist; the defaults (config.yaml, .env) are
// optional.
func Load() (*Config, error) {
	if err := mergeDotenv(); err != nil {
		return nil, err
	}

	cfg, err := read()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func read() (*Config, error) {
	var cfg Config

	path, explicit := lookup(configPathEnv, defaultConfigPath)
	_, statErr := os.Stat(path)

	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}
	return &cfg, nil
}

func mergeDotenv() error {
	path, explicit := lookup(envFileEnv, defaultEnvFile)

	err := godotenv.Load(path)
	if err == nil || (!explicit && errors.Is(err, fs.ErrNotExist)) {
		return nil
	}
	return fmt.Errorf("config: env file %s: %w", path, err)
}

// lookup returns the value of env, or fallback when it is unset, and whether
// the value was given explicitly.
func lookup(env, fallback string) (string, bool) {
	if v := os.Getenv(env); v != "" {
		return v, true
	}
	return fallback, false
}
