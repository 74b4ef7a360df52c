package account

import (
	"time"

	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/google/uuid"
)

// Kind identifies what produced a Transaction.
type Kind string

// Transaction kinds.
const (
	KindInitialDeposit Kind = "InitialDeposit"
	KindDeposit        Kind = "Deposit"
	KindWithdrawal     Kind = "Withdrawal"
)

var kindDescriptions = map[Kind]string{
	KindInitialDeposit: "Initial deposit",
	KindDeposit:        "Deposit",
	KindWithdrawal:     "Withdrawal",
}

// Description returns the label shown in statements.
func (k Kind) Description() string {
	if d, ok := kindDescriptions[k]; ok {
		return d
	}
	return string(k)
}

// Transaction is one immutable record of a balance change.
// Amount is signed: positive for deposits, negative for withdrawals.
// Balance is the account balance right after the change was applied.
type Transaction struct {
	ID        uuid.UUID
	Timestamp time.Time
	Kind      Kind
	Amount    money.Money
	Balance   money.Money
}

// Description returns the human label of the transaction kind.
func (t Transaction) Description() string {
	return t.Kind.Description()
}
