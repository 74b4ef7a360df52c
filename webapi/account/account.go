package account

import (
	"errors"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/amirasaad/minibank/pkg/domain/user"
	"github.com/amirasaad/minibank/pkg/middleware"
	accountsvc "github.com/amirasaad/minibank/pkg/service/account"
	authsvc "github.com/amirasaad/minibank/pkg/service/auth"
	"github.com/amirasaad/minibank/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
)

// Routes registers the ledger endpoints of the logged-in user. All of them
// require a session token.
//
// Routes:
//   - GET  /dashboard : Username and current balance.
//   - POST /deposit   : Add funds.
//   - POST /withdraw  : Remove funds.
//   - GET  /history   : All transactions, oldest first.
func Routes(
	app *fiber.App,
	accountSvc *accountsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.Auth,
) {
	protected := middleware.JwtProtected(cfg)
	app.Get("/dashboard", protected, Dashboard(accountSvc, authSvc))
	app.Post("/deposit", protected, Deposit(accountSvc, authSvc))
	app.Post("/withdraw", protected, Withdraw(accountSvc, authSvc))
	app.Get("/history", protected, History(accountSvc, authSvc))
}

// currentUser resolves the session token left by the middleware. On failure
// the 401 response is already written and u is nil.
func currentUser(c *fiber.Ctx, authSvc *authsvc.Service) (u *user.User, err error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, common.ErrorResponseJSON(c, fiber.StatusUnauthorized, middleware.NotLoggedIn, "missing user context")
	}
	u, err = authSvc.CurrentUser(c.UserContext(), token)
	if err != nil {
		return nil, common.ProblemDetailsJSON(c, middleware.NotLoggedIn, err, "User not found", fiber.StatusUnauthorized)
	}
	return u, nil
}

// Dashboard returns the username, balance and transaction count of the
// current user, read from one statement.
func Dashboard(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := currentUser(c, authSvc)
		if u == nil {
			return err
		}
		balance, txs := accountSvc.Statement(c.UserContext(), u)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Welcome, "+u.Username, DashboardDTO{
			Username:     u.Username,
			Balance:      balance.String(),
			Transactions: len(txs),
		})
	}
}

// Deposit adds the requested amount to the current user's balance.
func Deposit(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := currentUser(c, authSvc)
		if u == nil {
			return err
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err // Error already written by BindAndValidate
		}
		amount, err := input.Amount.Money()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid amount", err)
		}
		balance, err := accountSvc.Deposit(c.UserContext(), u, amount)
		if err != nil {
			log.Infof("Deposit rejected for %s: %v", u.Username, err)
			if errors.Is(err, money.ErrAmountOutOfRange) {
				return common.ProblemDetailsJSON(c, "Invalid amount", err)
			}
			return common.ProblemDetailsJSON(c, "Deposit amount must be positive.", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful.", BalanceDTO{Balance: balance.String()})
	}
}

// Withdraw removes the requested amount from the current user's balance.
func Withdraw(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := currentUser(c, authSvc)
		if u == nil {
			return err
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err // Error already written by BindAndValidate
		}
		amount, err := input.Amount.Money()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid amount", err)
		}
		balance, err := accountSvc.Withdraw(c.UserContext(), u, amount)
		if err != nil {
			log.Infof("Withdraw rejected for %s: %v", u.Username, err)
			return common.ProblemDetailsJSON(c, "Insufficient funds or invalid amount.", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful.", BalanceDTO{Balance: balance.String()})
	}
}

// History lists the current user's transactions, oldest first.
func History(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := currentUser(c, authSvc)
		if u == nil {
			return err
		}
		txs := accountSvc.History(c.UserContext(), u)
		dtos := make([]TransactionDTO, 0, len(txs))
		for _, tx := range txs {
			dtos = append(dtos, ToTransactionDTO(tx))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", dtos)
	}
}
