package initializer

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.App {
	return &config.App{
		Security: &config.Security{PinHashCost: bcrypt.MinCost},
		Seed:     &config.Seed{Enabled: true, Username: "user1", Pin: "1234", Balance: "1000"},
	}
}

func TestNewDeps_Seeds(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps, err := NewDeps(testConfig(), logger)
	require.NoError(t, err)
	require.NotNil(t, deps.EventBus)

	u, ok := deps.Directory.Authenticate("user1", "1234")
	require.True(t, ok)
	assert.Equal(t, "1000.00", u.Account().Balance().String())
}

func TestNewDeps_SeedDisabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig()
	cfg.Seed.Enabled = false

	deps, err := NewDeps(cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, 0, deps.Directory.Len())
}

func TestNewDeps_Errors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := testConfig()
	cfg.Seed.Balance = "lots"
	_, err := NewDeps(cfg, logger)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Seed.Pin = "12"
	_, err = NewDeps(cfg, logger)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Security.PinHashCost = bcrypt.MaxCost + 1
	_, err = NewDeps(cfg, logger)
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := SetupLogger(&config.Log{Format: "json", Prefix: "[test]"}, &buf)
	logger.Info("hello", "username", "user1")

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"username":"user1"`)
	assert.Same(t, logger, slog.Default())
}
