package initializer

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/minibank/pkg/app"
	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/amirasaad/minibank/pkg/eventbus"
	"github.com/amirasaad/minibank/pkg/service/directory"
	"golang.org/x/crypto/bcrypt"
)

// InitializeDependencies initializes all the application dependencies,
// logging to stdout.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	return NewDeps(cfg, SetupLogger(cfg.Log, nil))
}

// NewDeps builds the directory and event bus with the given logger and seeds
// the demonstration user when enabled.
func NewDeps(cfg *config.App, logger *slog.Logger) (deps *app.Deps, err error) {
	deps = &app.Deps{Logger: logger}

	cost := bcrypt.DefaultCost
	if cfg.Security != nil {
		cost = cfg.Security.PinHashCost
	}
	deps.Directory, err = directory.New(
		directory.WithHashCost(cost),
		directory.WithLogger(logger.With("component", "directory")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user directory: %w", err)
	}

	deps.EventBus = eventbus.NewSimpleEventBus()

	if err := seed(deps.Directory, cfg.Seed, logger); err != nil {
		return nil, err
	}
	return deps, nil
}

func seed(dir *directory.Directory, cfg *config.Seed, logger *slog.Logger) error {
	if cfg == nil || !cfg.Enabled {
		logger.Info("Skipping seed user")
		return nil
	}
	balance, err := money.Parse(cfg.Balance)
	if err != nil {
		return fmt.Errorf("invalid seed balance %q: %w", cfg.Balance, err)
	}
	if err := dir.Seed(directory.SeedUser{
		Username: cfg.Username,
		Pin:      cfg.Pin,
		Balance:  balance,
	}); err != nil {
		return fmt.Errorf("failed to seed user directory: %w", err)
	}
	logger.Info("Seeded user directory", "username", cfg.Username, "balance", balance.String())
	return nil
}
