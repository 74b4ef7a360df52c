// Package audit records every ledger event in the structured log.
package audit

import (
	"context"
	"log/slog"

	"github.com/amirasaad/minibank/pkg/domain/events"
	"github.com/amirasaad/minibank/pkg/eventbus"
)

// Handle returns a handler that logs e with its event-specific fields.
func Handle(logger *slog.Logger) eventbus.Handler {
	return func(ctx context.Context, e events.Event) {
		log := logger.With("handler", "audit.Handle", "event_type", e.Type())
		switch ev := e.(type) {
		case events.UserRegistered:
			log.InfoContext(ctx, "📝 User registered",
				"user_id", ev.UserID,
				"username", ev.Username,
				"initial_balance", ev.InitialBalance.String(),
			)
		case events.DepositCompleted:
			log.InfoContext(ctx, "✅ Deposit completed",
				"username", ev.Username,
				"transaction_id", ev.TransactionID,
				"amount", ev.Amount.String(),
				"balance", ev.Balance.String(),
			)
		case events.WithdrawCompleted:
			log.InfoContext(ctx, "✅ Withdraw completed",
				"username", ev.Username,
				"transaction_id", ev.TransactionID,
				"amount", ev.Amount.String(),
				"balance", ev.Balance.String(),
			)
		case events.OperationRejected:
			log.WarnContext(ctx, "❌ Operation rejected",
				"username", ev.Username,
				"operation", ev.Operation,
				"amount", ev.Amount.String(),
				"reason", ev.Reason,
			)
		default:
			log.DebugContext(ctx, "Unhandled event")
		}
	}
}

// Subscribe registers the audit handler for every event type.
func Subscribe(bus eventbus.Bus, logger *slog.Logger) {
	h := Handle(logger)
	for _, t := range events.All() {
		bus.Subscribe(t, h)
	}
}
