package user_test

import (
	"testing"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/amirasaad/minibank/pkg/domain/user"
	"github.com/amirasaad/minibank/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestValidPIN(t *testing.T) {
	tests := []struct {
		pin  string
		want bool
	}{
		{"1234", true},
		{"0000", true},
		{"12", false},
		{"12345", false},
		{"12a4", false},
		{"", false},
		{" 123", false},
		{"١٢٣٤", false},
	}
	for _, tt := range tests {
		t.Run(tt.pin, func(t *testing.T) {
			assert.Equal(t, tt.want, user.ValidPIN(tt.pin))
		})
	}
}

func TestNew(t *testing.T) {
	acc, err := account.New(money.MustParse("25"))
	require.NoError(t, err)
	hash, err := utils.HashSecret("1234", bcrypt.MinCost)
	require.NoError(t, err)

	u := user.New("alice", hash, acc)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Same(t, acc, u.Account())
	assert.False(t, u.CreatedAt.IsZero())

	assert.True(t, u.CheckPIN("1234"))
	assert.False(t, u.CheckPIN("9999"))
}
