package account

import (
	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/webapi/common"
)

// HistoryDateFormat is the layout of transaction dates in API responses.
const HistoryDateFormat = "2006-01-02 15:04:05"

// AmountRequest represents the request body for deposits and withdrawals.
type AmountRequest struct {
	Amount common.Amount `json:"amount" form:"amount"`
}

// DashboardDTO is the overview shown to a logged-in user.
type DashboardDTO struct {
	Username     string `json:"username"`
	Balance      string `json:"balance"`
	Transactions int    `json:"transactions"`
}

// BalanceDTO is returned after a successful deposit or withdrawal.
type BalanceDTO struct {
	Balance string `json:"balance"`
}

// TransactionDTO is the API response representation of a transaction.
type TransactionDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Balance     string `json:"balance"`
}

// ToTransactionDTO maps a ledger entry to its API form. Dates are rendered
// in the timezone they were recorded in.
func ToTransactionDTO(tx account.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:          tx.ID.String(),
		Date:        tx.Timestamp.Format(HistoryDateFormat),
		Description: tx.Description(),
		Amount:      tx.Amount.String(),
		Balance:     tx.Balance.String(),
	}
}
