package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/amirasaad/minibank/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	// ErrMissingJwtSecret is returned by Validate when no signing secret is configured.
	ErrMissingJwtSecret = errors.New("AUTH_JWT_SECRET is required")
)

func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	// If no specific paths provided, try default .env
	if len(envFilePath) == 0 {
		logger.Debug("No environment file specified, trying default .env")
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	// Try each provided path until we find a valid one
	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	logger.Info("No valid environment files found, using process environment")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"server_port", cfg.Server.Port,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"auth_jwt_secret", maskValue(cfg.Auth.Jwt.Secret),
		"auth_jwt_expiry", cfg.Auth.Jwt.Expiry,
		"pin_hash_cost", cfg.Security.PinHashCost,
		"seed_enabled", cfg.Seed.Enabled,
		"seed_username", cfg.Seed.Username,
	)
	return &cfg, nil
}

// Validate checks the settings the HTTP server cannot run without.
func (c *App) Validate() error {
	if c.Auth == nil || c.Auth.Jwt == nil || c.Auth.Jwt.Secret == "" {
		return ErrMissingJwtSecret
	}
	if c.Auth.Jwt.Expiry <= 0 {
		return fmt.Errorf("AUTH_JWT_EXPIRY must be positive, got %s", c.Auth.Jwt.Expiry)
	}
	if c.Security != nil && !utils.ValidHashCost(c.Security.PinHashCost) {
		return fmt.Errorf("SECURITY_PIN_HASH_COST %d is out of range", c.Security.PinHashCost)
	}
	if c.Seed != nil && c.Seed.Enabled {
		if _, err := money.Parse(c.Seed.Balance); err != nil {
			return fmt.Errorf("SEED_BALANCE: %w", err)
		}
	}
	return nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}

// FindEnvFile looks for filename in the working directory and its parents,
// stopping at the module root (the first directory holding a go.mod).
// An empty filename means ".env".
func FindEnvFile(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	curr, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(curr, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(curr, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(curr)
		if parent == curr {
			break
		}
		curr = parent
	}
	return "", os.ErrNotExist
}
