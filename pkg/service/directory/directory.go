// Package directory keeps the registered users of the bank and resolves a
// username/PIN pair to the user that owns an account.
package directory

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/amirasaad/minibank/pkg/domain/user"
	"github.com/amirasaad/minibank/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// Status is the outcome of AddUser.
type Status int

// AddUser outcomes.
const (
	Created Status = iota
	AlreadyExists
	InvalidPin
	InvalidInitialBalance
)

var statusNames = map[Status]string{
	Created:               "created",
	AlreadyExists:         "already exists",
	InvalidPin:            "invalid pin",
	InvalidInitialBalance: "invalid initial balance",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// CreateResult is returned by AddUser. User is set only when Status is Created.
type CreateResult struct {
	Status Status
	User   *user.User
}

// Created reports whether the user was added.
func (r CreateResult) Created() bool {
	return r.Status == Created
}

// Directory maps usernames to users. It is safe for concurrent use.
type Directory struct {
	mu    sync.RWMutex
	users map[string]*user.User

	cost      int
	dummyHash string
	opts      []account.Option
	logger    *slog.Logger
}

// Option configures a Directory.
type Option func(*Directory)

// WithHashCost sets the bcrypt cost used for PINs. Defaults to bcrypt.DefaultCost.
func WithHashCost(cost int) Option {
	return func(d *Directory) {
		d.cost = cost
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Directory) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithAccountOptions passes opts to every account the directory opens.
func WithAccountOptions(opts ...account.Option) Option {
	return func(d *Directory) {
		d.opts = append(d.opts, opts...)
	}
}

// New returns an empty directory.
func New(opts ...Option) (*Directory, error) {
	d := &Directory{
		users:  make(map[string]*user.User),
		cost:   bcrypt.DefaultCost,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if !utils.ValidHashCost(d.cost) {
		return nil, fmt.Errorf("invalid pin hash cost %d", d.cost)
	}
	// Compared against for unknown usernames so that a failed lookup costs
	// the same as a wrong PIN.
	dummy, err := utils.HashSecret("0000", d.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare pin hasher: %w", err)
	}
	d.dummyHash = dummy
	return d, nil
}

// AddUser registers username with pin and opens its account holding initial.
//
// Existing usernames are reported before PIN format, so a duplicate username
// with a bad PIN yields AlreadyExists. The returned error is non-nil only when
// hashing the PIN fails.
func (d *Directory) AddUser(username, pin string, initial money.Money) (CreateResult, error) {
	log := d.logger.With("username", username)

	var hash string
	if user.ValidPIN(pin) && !initial.IsNegative() {
		h, err := utils.HashSecret(pin, d.cost)
		if err != nil {
			log.Error("Failed to hash pin", "error", err)
			return CreateResult{}, fmt.Errorf("failed to hash pin: %w", err)
		}
		hash = h
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.users[username]; exists {
		log.Info("AddUser rejected", "status", AlreadyExists)
		return CreateResult{Status: AlreadyExists}, nil
	}
	if !user.ValidPIN(pin) {
		log.Info("AddUser rejected", "status", InvalidPin)
		return CreateResult{Status: InvalidPin}, nil
	}
	acc, err := account.New(initial, d.opts...)
	if err != nil {
		log.Info("AddUser rejected", "status", InvalidInitialBalance, "error", err)
		return CreateResult{Status: InvalidInitialBalance}, nil
	}

	u := user.New(username, hash, acc)
	d.users[username] = u
	log.Info("User added", "userID", u.ID, "initial_balance", initial.String())
	return CreateResult{Status: Created, User: u}, nil
}

// Authenticate returns the user iff username exists and pin matches.
// An unknown username and a wrong PIN are indistinguishable to the caller.
func (d *Directory) Authenticate(username, pin string) (*user.User, bool) {
	u, ok := d.Lookup(username)
	if !ok {
		_ = utils.CheckSecretHash(pin, d.dummyHash)
		d.logger.Debug("Authenticate failed", "username", username)
		return nil, false
	}
	if !u.CheckPIN(pin) {
		d.logger.Debug("Authenticate failed", "username", username)
		return nil, false
	}
	return u, true
}

// Lookup returns the user registered under username.
func (d *Directory) Lookup(username string) (*user.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.users[username]
	return u, ok
}

// Len returns the number of registered users.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}
