// Package webapi provides the HTTP API of the bank.
// It is organized into sub-packages per concern:
// - account: Balance, deposit, withdraw and history endpoints
// - auth: Login and logout
// - user: Signup
package webapi

import (
	"errors"
	"strings"
	"time"

	"github.com/amirasaad/minibank/pkg/app"
	"github.com/amirasaad/minibank/pkg/config"
	accountweb "github.com/amirasaad/minibank/webapi/account"
	authweb "github.com/amirasaad/minibank/webapi/auth"
	"github.com/amirasaad/minibank/webapi/common"
	userweb "github.com/amirasaad/minibank/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	cfg := a.Config
	if cfg == nil {
		cfg = &config.App{}
	}

	fiberApp := fiber.New(fiber.Config{
		AppName: "minibank",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	if cfg.RateLimit != nil && cfg.RateLimit.MaxRequests > 0 {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:          cfg.RateLimit.MaxRequests,
			Expiration:   window(cfg.RateLimit),
			KeyGenerator: clientIP,
			LimitReached: func(c *fiber.Ctx) error {
				return common.ProblemDetailsJSON(
					c,
					"Too Many Requests",
					errors.New("rate limit exceeded"),
					fiber.StatusTooManyRequests,
				)
			},
		}))
	}
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("minibank API is running! 🏦")
		},
	)

	userweb.Routes(fiberApp, a.UserService)
	authweb.Routes(fiberApp, a.AuthService, cfg.Auth)
	accountweb.Routes(fiberApp, a.AccountService, a.AuthService, cfg.Auth)
	return fiberApp
}

// clientIP keys rate limiting on the first X-Forwarded-For hop when behind a
// proxy, then X-Real-IP, then the peer address.
func clientIP(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
			return strings.TrimSpace(forwardedFor[:commaIndex])
		}
		return strings.TrimSpace(forwardedFor)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}

func window(cfg *config.RateLimit) time.Duration {
	if cfg.Window <= 0 {
		return time.Minute
	}
	return cfg.Window
}
