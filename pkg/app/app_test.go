package app_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/amirasaad/minibank/pkg/app"
	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/amirasaad/minibank/pkg/eventbus"
	"github.com/amirasaad/minibank/pkg/service/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNew_WiresServicesAndAudit(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	dir, err := directory.New(directory.WithHashCost(bcrypt.MinCost), directory.WithLogger(logger))
	require.NoError(t, err)

	a := app.New(&app.Deps{
		Directory: dir,
		EventBus:  eventbus.NewSimpleEventBus(),
		Logger:    logger,
	}, &config.App{Auth: &config.Auth{Jwt: &config.Jwt{Secret: "s"}}})
	require.NotNil(t, a.AuthService)
	require.NotNil(t, a.UserService)
	require.NotNil(t, a.AccountService)

	ctx := context.Background()
	res, err := a.UserService.Register(ctx, "carol", "1357", money.MustParse("10"))
	require.NoError(t, err)
	require.True(t, res.Created())

	u, err := a.AuthService.Login(ctx, "carol", "1357")
	require.NoError(t, err)
	_, err = a.AccountService.Deposit(ctx, u, money.MustParse("2.5"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "component=audit")
	assert.Contains(t, out, "User registered")
	assert.Contains(t, out, "Deposit completed")
}
