// Package user provides registration and lookup of bank users.
package user

import (
	"context"
	"log/slog"

	"github.com/amirasaad/minibank/pkg/domain/events"
	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/amirasaad/minibank/pkg/domain/user"
	"github.com/amirasaad/minibank/pkg/eventbus"
	"github.com/amirasaad/minibank/pkg/service/directory"
)

// Service registers users in a directory and announces them on the bus.
type Service struct {
	dir    *directory.Directory
	bus    eventbus.Bus
	logger *slog.Logger
}

// New creates a new Service.
func New(
	dir *directory.Directory,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{dir: dir, bus: bus, logger: logger}
}

// Register creates a user with an account holding initial.
// A rejected registration is reported through the result status, not the
// error; the error is set only when the PIN could not be hashed.
func (s *Service) Register(
	ctx context.Context,
	username, pin string,
	initial money.Money,
) (directory.CreateResult, error) {
	log := s.logger.With("username", username)
	log.Debug("Register called")

	res, err := s.dir.AddUser(username, pin, initial)
	if err != nil {
		log.Error("Register failed", "error", err)
		return res, err
	}
	if !res.Created() {
		log.Info("Register rejected", "status", res.Status)
		return res, nil
	}

	log.Info("Register successful", "userID", res.User.ID)
	if s.bus != nil {
		if err := s.bus.Publish(ctx, events.UserRegistered{
			UserID:         res.User.ID,
			Username:       res.User.Username,
			InitialBalance: initial,
			Timestamp:      res.User.CreatedAt,
		}); err != nil {
			log.Error("Failed to publish event", "error", err)
		}
	}
	return res, nil
}

// Get returns the user registered under username.
func (s *Service) Get(ctx context.Context, username string) (*user.User, error) {
	u, ok := s.dir.Lookup(username)
	if !ok {
		s.logger.Debug("Get failed", "username", username, "error", user.ErrUserNotFound)
		return nil, user.ErrUserNotFound
	}
	return u, nil
}
