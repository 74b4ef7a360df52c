package app

import (
	"log/slog"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/eventbus"
	"github.com/amirasaad/minibank/pkg/service/account"
	"github.com/amirasaad/minibank/pkg/service/auth"
	"github.com/amirasaad/minibank/pkg/service/directory"
	"github.com/amirasaad/minibank/pkg/service/user"
)

// Deps contains the shared infrastructure the services are built on.
type Deps struct {
	Directory *directory.Directory
	EventBus  eventbus.Bus
	Logger    *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AuthService    *auth.Service
	UserService    *user.Service
	AccountService *account.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.setupEventBus()

	var jwtCfg *config.Jwt
	if cfg != nil && cfg.Auth != nil {
		jwtCfg = cfg.Auth.Jwt
	}
	app.AuthService = auth.New(deps.Directory, jwtCfg, deps.Logger)
	app.UserService = user.New(deps.Directory, deps.EventBus, deps.Logger)
	app.AccountService = account.New(deps.EventBus, deps.Logger)
	return app
}
