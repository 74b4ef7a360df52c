package account

import (
	"errors"
	"sync"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/google/uuid"
)

var (
	// ErrNegativeInitialBalance is returned when an account is opened with a negative balance.
	ErrNegativeInitialBalance = errors.New("initial balance cannot be negative")

	// ErrTransactionAmountMustBePositive is returned when a deposit or withdrawal amount is not positive.
	ErrTransactionAmountMustBePositive = errors.New("transaction amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Account is the ledger of one user: a balance plus the append-only history
// of every change applied to it.
//
// Invariants:
//   - The balance is never negative.
//   - The balance equals the sum of all history amounts.
//   - History is only appended to, and timestamps never go backwards.
//   - Balance and history change together under the write lock; readers never
//     observe one without the other.
type Account struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu      sync.RWMutex
	balance money.Money
	history []Transaction
	now     func() time.Time
	last    time.Time
}

// Option configures an Account at construction time.
type Option func(*Account)

// WithClock sets the time source used to stamp transactions.
func WithClock(now func() time.Time) Option {
	return func(a *Account) {
		if now != nil {
			a.now = now
		}
	}
}

// New opens an account holding initial. A positive initial balance is
// recorded as the first history entry; a zero balance starts with an empty
// history.
func New(initial money.Money, opts ...Option) (*Account, error) {
	if initial.IsNegative() {
		return nil, ErrNegativeInitialBalance
	}
	a := &Account{
		ID:  uuid.New(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.CreatedAt = a.now()
	if initial.IsPositive() {
		a.apply(KindInitialDeposit, initial, initial)
	}
	return a, nil
}

// Deposit adds amount to the balance. It fails, leaving the account
// untouched, unless amount is positive.
func (a *Account) Deposit(amount money.Money) bool {
	_, ok := a.RecordDeposit(amount)
	return ok
}

// RecordDeposit is Deposit returning the recorded transaction.
func (a *Account) RecordDeposit(amount money.Money) (Transaction, bool) {
	if !amount.IsPositive() {
		return Transaction{}, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	next, err := a.balance.Add(amount)
	if err != nil {
		return Transaction{}, false
	}
	return a.apply(KindDeposit, amount, next), true
}

// Withdraw removes amount from the balance. It fails, leaving the account
// untouched, unless 0 < amount <= balance.
func (a *Account) Withdraw(amount money.Money) bool {
	_, ok := a.RecordWithdrawal(amount)
	return ok
}

// RecordWithdrawal is Withdraw returning the recorded transaction.
func (a *Account) RecordWithdrawal(amount money.Money) (Transaction, bool) {
	if !amount.IsPositive() {
		return Transaction{}, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if amount.GreaterThan(a.balance) {
		return Transaction{}, false
	}
	next, err := a.balance.Subtract(amount)
	if err != nil {
		return Transaction{}, false
	}
	return a.apply(KindWithdrawal, amount.Negate(), next), true
}

// Balance returns the current balance.
func (a *Account) Balance() money.Money {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.balance
}

// History returns a copy of all transactions, oldest first.
func (a *Account) History() []Transaction {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.historyCopy()
}

// Snapshot returns the balance and history as one consistent view.
func (a *Account) Snapshot() (money.Money, []Transaction) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.balance, a.historyCopy()
}

func (a *Account) historyCopy() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

// apply must be called with the write lock held (or before the account is shared).
func (a *Account) apply(kind Kind, amount, balance money.Money) Transaction {
	ts := a.now()
	if ts.Before(a.last) {
		ts = a.last
	}
	a.last = ts

	tx := Transaction{
		ID:        uuid.New(),
		Timestamp: ts,
		Kind:      kind,
		Amount:    amount,
		Balance:   balance,
	}
	a.balance = balance
	a.history = append(a.history, tx)
	return tx
}
