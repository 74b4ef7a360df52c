package user

import (
	"errors"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the directory.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserUnauthorized is returned when credentials do not match a user.
	ErrUserUnauthorized = errors.New("user unauthorized")
)

// PINLength is the exact number of decimal digits in a PIN.
const PINLength = 4

// User is a registered customer. Username, PIN and account are fixed at
// creation; the account is owned exclusively by this user.
type User struct {
	ID        uuid.UUID
	Username  string
	CreatedAt time.Time

	pinHash string
	account *account.Account
}

// New creates a User around an already opened account. pinHash is a bcrypt
// hash of the PIN, see utils.HashSecret.
func New(username, pinHash string, acc *account.Account) *User {
	return &User{
		ID:        uuid.New(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
		pinHash:   pinHash,
		account:   acc,
	}
}

// Account returns the user's ledger.
func (u *User) Account() *account.Account {
	return u.account
}

// CheckPIN reports whether pin matches the stored credential.
func (u *User) CheckPIN(pin string) bool {
	return utils.CheckSecretHash(pin, u.pinHash)
}

// ValidPIN reports whether pin is exactly PINLength ASCII decimal digits.
func ValidPIN(pin string) bool {
	if len(pin) != PINLength {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}
