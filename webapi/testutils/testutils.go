// Package testutils provides an HTTP test suite backed by a fully wired,
// in-memory application.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/amirasaad/minibank/infra/initializer"
	"github.com/amirasaad/minibank/pkg/app"
	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/webapi"
	"github.com/amirasaad/minibank/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// TestPin is the PIN of every user created by CreateTestUser.
const TestPin = "2468"

// E2ETestSuite provides a test suite with a fresh application per test.
type E2ETestSuite struct {
	suite.Suite
	App    *app.App
	server *fiber.App
	Config *config.App
}

// TestConfig returns a configuration suited for fast tests: minimal bcrypt
// cost, no rate limit and the demonstration user seeded.
func TestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 0},
		Log:    &config.Log{Format: "text"},
		Auth: &config.Auth{
			Jwt:        &config.Jwt{Secret: "test-secret", Expiry: time.Hour},
			CookieName: "session",
		},
		Security:  &config.Security{PinHashCost: bcrypt.MinCost},
		RateLimit: &config.RateLimit{},
		Seed:      &config.Seed{Enabled: true, Username: "user1", Pin: "1234", Balance: "1000"},
	}
}

// NewTestApp wires a complete application for cfg with a silent logger.
func NewTestApp(cfg *config.App) (*app.App, *fiber.App, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps, err := initializer.NewDeps(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	a := app.New(deps, cfg)
	return a, webapi.SetupApp(a), nil
}

// SetupTest builds a fresh application so tests never share ledgers.
func (s *E2ETestSuite) SetupTest() {
	s.Config = TestConfig()
	var err error
	s.App, s.server, err = NewTestApp(s.Config)
	s.Require().NoError(err)
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	return MakeRequestWithApp(s.server, method, path, body, token)
}

// MakeRequestWithApp sends a request to app. A non-empty token is sent as a
// bearer token.
func MakeRequestWithApp(app *fiber.App, method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err) // For standalone tests, panic on error
	}
	return resp
}

// Do sends a prepared request to the suite's application.
func (s *E2ETestSuite) Do(req *http.Request) *http.Response {
	resp, err := s.server.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// DecodeResponse reads a success envelope.
func (s *E2ETestSuite) DecodeResponse(resp *http.Response) common.Response {
	defer resp.Body.Close() //nolint: errcheck
	var out common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// DecodeProblem reads a problem details body.
func (s *E2ETestSuite) DecodeProblem(resp *http.Response) common.ProblemDetails {
	defer resp.Body.Close() //nolint: errcheck
	var out common.ProblemDetails
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// LoginUser logs in over HTTP and returns the session token.
func (s *E2ETestSuite) LoginUser(username, pin string) string {
	body := fmt.Sprintf(`{"username":%q,"pin":%q}`, username, pin)
	resp := s.MakeRequest(fiber.MethodPost, "/login", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	data, ok := s.DecodeResponse(resp).Data.(map[string]any)
	s.Require().True(ok, "login response should carry data")
	token, _ := data["token"].(string)
	s.Require().NotEmpty(token, "No token found in response")
	return token
}

// CreateTestUser signs up a user with a random name, TestPin and the given
// initial deposit, and returns the username.
func (s *E2ETestSuite) CreateTestUser(initialDeposit string) string {
	username := "testuser_" + uuid.New().String()[:8]
	body := fmt.Sprintf(`{"username":%q,"pin":%q,"initial_deposit":%q}`, username, TestPin, initialDeposit)
	resp := s.MakeRequest(fiber.MethodPost, "/signup", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	return username
}
