// Package auth authenticates users by username and PIN and issues the
// signed session tokens that identify them on later requests.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/domain/user"
	"github.com/amirasaad/minibank/pkg/service/directory"
	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingSecret is returned by GenerateToken when no signing secret is configured.
var ErrMissingSecret = errors.New("jwt secret is not configured")

type Service struct {
	dir    *directory.Directory
	cfg    *config.Jwt
	now    func() time.Time
	logger *slog.Logger
}

func New(
	dir *directory.Directory,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{dir: dir, cfg: cfg, now: time.Now, logger: logger}
}

// Login returns the user iff username exists and pin matches. Any failure is
// user.ErrUserUnauthorized so callers cannot tell which part was wrong.
func (s *Service) Login(
	ctx context.Context,
	username, pin string,
) (*user.User, error) {
	log := s.logger.With("context", "Login", "username", username)
	log.Debug("Login called")
	u, ok := s.dir.Authenticate(username, pin)
	if !ok {
		log.Info("Login failed", "error", user.ErrUserUnauthorized)
		return nil, user.ErrUserUnauthorized
	}
	log.Info("Login successful", "userID", u.ID)
	return u, nil
}

// GenerateToken signs an HS256 token carrying the username and user ID.
func (s *Service) GenerateToken(
	ctx context.Context,
	u *user.User,
) (string, error) {
	log := s.logger.With("userID", u.ID)
	log.Debug("GenerateToken called")
	if s.cfg == nil || s.cfg.Secret == "" {
		log.Error("GenerateToken failed", "error", ErrMissingSecret)
		return "", ErrMissingSecret
	}
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = u.Username
	claims["user_id"] = u.ID.String()
	claims["exp"] = s.now().Add(s.cfg.Expiry).Unix()
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Info("GenerateToken successful")
	return tokenString, nil
}

// CurrentUser resolves a verified token to its user. The token must name a
// user still present in the directory with the same ID it was issued for.
func (s *Service) CurrentUser(
	ctx context.Context,
	token *jwt.Token,
) (*user.User, error) {
	log := s.logger.With("context", "CurrentUser")
	if token == nil || !token.Valid {
		log.Debug("CurrentUser failed", "error", user.ErrUserUnauthorized)
		return nil, user.ErrUserUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		log.Debug("CurrentUser failed", "error", user.ErrUserUnauthorized)
		return nil, user.ErrUserUnauthorized
	}
	username, ok := claims["username"].(string)
	if !ok {
		log.Debug("CurrentUser failed", "error", user.ErrUserUnauthorized)
		return nil, user.ErrUserUnauthorized
	}
	userID, _ := claims["user_id"].(string)

	u, found := s.dir.Lookup(username)
	if !found || u.ID.String() != userID {
		log.Info("CurrentUser failed", "username", username, "error", user.ErrUserNotFound)
		return nil, user.ErrUserUnauthorized
	}
	return u, nil
}
