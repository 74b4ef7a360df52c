package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret-value")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "test-secret-value", cfg.Auth.Jwt.Secret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.Jwt.Expiry)
	assert.Equal(t, "session", cfg.Auth.CookieName)
	assert.Equal(t, 10, cfg.Security.PinHashCost)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.True(t, cfg.Seed.Enabled)
	assert.Equal(t, "user1", cfg.Seed.Username)
	assert.Equal(t, "1234", cfg.Seed.Pin)
	assert.Equal(t, "1000", cfg.Seed.Balance)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "s3cr3t-s3cr3t")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("SECURITY_PIN_HASH_COST", "4")
	t.Setenv("SEED_ENABLED", "false")
	t.Setenv("RATE_LIMIT_WINDOW", "2s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Security.PinHashCost)
	assert.False(t, cfg.Seed.Enabled)
	assert.Equal(t, 2*time.Second, cfg.RateLimit.Window)
}

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env.test")
	require.NoError(t, os.WriteFile(envPath, []byte("AUTH_JWT_SECRET=from-file-secret\nSERVER_PORT=9000\n"), 0o600))
	t.Chdir(dir)
	// godotenv does not override variables that are already set
	t.Setenv("AUTH_JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("AUTH_JWT_SECRET"))
	t.Setenv("SERVER_PORT", "")
	require.NoError(t, os.Unsetenv("SERVER_PORT"))

	cfg, err := Load(".env.test")
	require.NoError(t, err)
	assert.Equal(t, "from-file-secret", cfg.Auth.Jwt.Secret)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	valid := func() *App {
		return &App{
			Auth:     &Auth{Jwt: &Jwt{Secret: "secret", Expiry: time.Hour}},
			Security: &Security{PinHashCost: 10},
			Seed:     &Seed{Enabled: true, Balance: "1000"},
		}
	}
	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Auth.Jwt.Secret = ""
	assert.ErrorIs(t, cfg.Validate(), ErrMissingJwtSecret)

	cfg = valid()
	cfg.Security.PinHashCost = 99
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Seed.Balance = "lots"
	assert.Error(t, cfg.Validate())

	for _, expiry := range []time.Duration{0, -time.Minute} {
		cfg = valid()
		cfg.Auth.Jwt.Expiry = expiry
		assert.ErrorContains(t, cfg.Validate(), "AUTH_JWT_EXPIRY", expiry.String())
	}
}

func TestLoad_ZeroExpiryFailsValidation(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "s3cr3t-s3cr3t")
	t.Setenv("AUTH_JWT_EXPIRY", "0s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}

func TestFindEnvFile(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("X=1\n"), 0o600))
	t.Chdir(nested)

	found, err := FindEnvFile("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env"), found)

	_, err = FindEnvFile("does-not-exist.env")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "su****cret", maskValue("supersecret"))
}
