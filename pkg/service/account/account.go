// Package account provides the ledger operations available to a logged-in
// user: deposits, withdrawals, balance and history.
//
// The service turns the ledger's boolean outcomes into errors, logs every
// operation and publishes a domain event for it.
package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/events"
	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/amirasaad/minibank/pkg/domain/user"
	"github.com/amirasaad/minibank/pkg/eventbus"
)

const (
	operationDeposit  = "deposit"
	operationWithdraw = "withdraw"
)

// Service provides account operations for authenticated users.
type Service struct {
	bus    eventbus.Bus
	logger *slog.Logger
}

// New creates a new Service.
func New(bus eventbus.Bus, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{bus: bus, logger: logger}
}

// Deposit adds amount to the user's balance and returns the new balance.
// It fails with account.ErrTransactionAmountMustBePositive unless amount is
// positive; the ledger is then left untouched.
func (s *Service) Deposit(
	ctx context.Context,
	u *user.User,
	amount money.Money,
) (money.Money, error) {
	log := s.logger.With("username", u.Username, "amount", amount.String())
	log.Debug("Deposit called")

	tx, ok := u.Account().RecordDeposit(amount)
	if !ok {
		err := account.ErrTransactionAmountMustBePositive
		if amount.IsPositive() {
			err = money.ErrAmountOutOfRange
		}
		log.Info("Deposit rejected", "error", err)
		s.reject(ctx, u, operationDeposit, amount, err)
		return money.Money{}, err
	}

	log.Info("Deposit successful", "transactionID", tx.ID, "balance", tx.Balance.String())
	s.publish(ctx, events.DepositCompleted{
		Username:      u.Username,
		TransactionID: tx.ID,
		Amount:        tx.Amount,
		Balance:       tx.Balance,
		Timestamp:     tx.Timestamp,
	})
	return tx.Balance, nil
}

// Withdraw removes amount from the user's balance and returns the new balance.
// A non-positive amount fails with account.ErrTransactionAmountMustBePositive,
// an amount above the balance with account.ErrInsufficientFunds.
func (s *Service) Withdraw(
	ctx context.Context,
	u *user.User,
	amount money.Money,
) (money.Money, error) {
	log := s.logger.With("username", u.Username, "amount", amount.String())
	log.Debug("Withdraw called")

	tx, ok := u.Account().RecordWithdrawal(amount)
	if !ok {
		err := account.ErrInsufficientFunds
		if !amount.IsPositive() {
			err = account.ErrTransactionAmountMustBePositive
		}
		log.Info("Withdraw rejected", "error", err)
		s.reject(ctx, u, operationWithdraw, amount, err)
		return money.Money{}, err
	}

	log.Info("Withdraw successful", "transactionID", tx.ID, "balance", tx.Balance.String())
	s.publish(ctx, events.WithdrawCompleted{
		Username:      u.Username,
		TransactionID: tx.ID,
		Amount:        tx.Amount,
		Balance:       tx.Balance,
		Timestamp:     tx.Timestamp,
	})
	return tx.Balance, nil
}

// Balance returns the user's current balance.
func (s *Service) Balance(ctx context.Context, u *user.User) money.Money {
	return u.Account().Balance()
}

// History returns a copy of the user's transactions, oldest first.
func (s *Service) History(ctx context.Context, u *user.User) []account.Transaction {
	return u.Account().History()
}

// Statement returns balance and history as one consistent view.
func (s *Service) Statement(ctx context.Context, u *user.User) (money.Money, []account.Transaction) {
	return u.Account().Snapshot()
}

func (s *Service) reject(
	ctx context.Context,
	u *user.User,
	operation string,
	amount money.Money,
	reason error,
) {
	s.publish(ctx, events.OperationRejected{
		Username:  u.Username,
		Operation: operation,
		Amount:    amount,
		Reason:    reason.Error(),
		Timestamp: time.Now().UTC(),
	})
}

// publish never fails the caller: the ledger has already changed.
func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish event", "event_type", event.Type(), "error", err)
	}
}
