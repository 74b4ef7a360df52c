package events

import (
	"time"

	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/google/uuid"
)

// UserRegistered is emitted after a user and its account were created.
type UserRegistered struct {
	UserID         uuid.UUID
	Username       string
	InitialBalance money.Money
	Timestamp      time.Time
}

// Type implements Event.
func (UserRegistered) Type() EventType { return EventTypeUserRegistered }

// DepositCompleted is emitted after a deposit was applied to a ledger.
type DepositCompleted struct {
	Username      string
	TransactionID uuid.UUID
	Amount        money.Money
	Balance       money.Money
	Timestamp     time.Time
}

// Type implements Event.
func (DepositCompleted) Type() EventType { return EventTypeDepositCompleted }

// WithdrawCompleted is emitted after a withdrawal was applied to a ledger.
// Amount is negative, as recorded in history.
type WithdrawCompleted struct {
	Username      string
	TransactionID uuid.UUID
	Amount        money.Money
	Balance       money.Money
	Timestamp     time.Time
}

// Type implements Event.
func (WithdrawCompleted) Type() EventType { return EventTypeWithdrawCompleted }

// OperationRejected is emitted when a deposit or withdrawal left the ledger
// unchanged.
type OperationRejected struct {
	Username  string
	Operation string
	Amount    money.Money
	Reason    string
	Timestamp time.Time
}

// Type implements Event.
func (OperationRejected) Type() EventType { return EventTypeOperationRejected }
