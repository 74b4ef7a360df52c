package auth

import (
	"errors"
	"time"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/domain/user"
	authsvc "github.com/amirasaad/minibank/pkg/service/auth"
	"github.com/amirasaad/minibank/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the session endpoints.
//
// Routes:
//   - POST /login  : Exchange username and PIN for a session token.
//   - POST /logout : Drop the session cookie.
func Routes(app *fiber.App, authSvc *authsvc.Service, cfg *config.Auth) {
	app.Post("/login", Login(authSvc, cfg))
	app.Post("/logout", Logout(cfg))
}

// Login handles user authentication and returns a JWT token. The token is
// also set as an HTTP-only session cookie for browser clients.
func Login(authSvc *authsvc.Service, cfg *config.Auth) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err // Error already written by BindAndValidate
		}
		u, err := authSvc.Login(c.UserContext(), input.Username, input.Pin)
		if err != nil {
			if errors.Is(err, user.ErrUserUnauthorized) {
				return common.ProblemDetailsJSON(c, "Invalid credentials.", err, "Username or PIN is incorrect")
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		token, err := authSvc.GenerateToken(c.UserContext(), u)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		c.Cookie(sessionCookie(cfg, token, time.Now().Add(expiry(cfg))))
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful.", LoginResponse{
			Token:    token,
			Username: u.Username,
		})
	}
}

// Logout clears the session cookie. Tokens are stateless, so a client that
// kept its bearer token can still use it until it expires.
func Logout(cfg *config.Auth) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(sessionCookie(cfg, "", time.Unix(0, 0)))
		return common.SuccessResponseJSON(c, fiber.StatusOK, "You have been logged out.", nil)
	}
}

func sessionCookie(cfg *config.Auth, value string, expires time.Time) *fiber.Cookie {
	name := "session"
	secure := false
	if cfg != nil {
		if cfg.CookieName != "" {
			name = cfg.CookieName
		}
		secure = cfg.CookieSecure
	}
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

func expiry(cfg *config.Auth) time.Duration {
	if cfg == nil || cfg.Jwt == nil || cfg.Jwt.Expiry <= 0 {
		return 24 * time.Hour
	}
	return cfg.Jwt.Expiry
}
