package middleware

import (
	"github.com/amirasaad/minibank/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// NotLoggedIn is the message returned for every rejected session.
const NotLoggedIn = "Not logged in"

// JwtProtected guards a route with a signed session token. The token is read
// from the Authorization header ("Bearer <token>") or, failing that, from the
// session cookie. The verified *jwt.Token is stored in c.Locals("user").
func JwtProtected(cfg *config.Auth) fiber.Handler {
	var secret string
	cookie := "session"
	if cfg != nil {
		if cfg.Jwt != nil {
			secret = cfg.Jwt.Secret
		}
		if cfg.CookieName != "" {
			cookie = cfg.CookieName
		}
	}
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(secret)},
		ErrorHandler: jwtError,
		TokenLookup:  "header:" + fiber.HeaderAuthorization + ",cookie:" + cookie,
	})
}

// jwtError answers missing, malformed and expired tokens alike.
func jwtError(c *fiber.Ctx, err error) error {
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"type":     "about:blank",
		"title":    NotLoggedIn,
		"status":   fiber.StatusUnauthorized,
		"detail":   err.Error(),
		"instance": c.OriginalURL(),
	})
}
