package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/amirasaad/minibank/pkg/app"
	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/amirasaad/minibank/pkg/domain/user"
	"github.com/amirasaad/minibank/pkg/service/directory"
	"github.com/fatih/color"
)

const historyDateFormat = "2006-01-02 15:04:05"

const helpText = `Commands:
  signup               open an account
  login                log in with username and PIN
  balance              show the current balance
  deposit <amount>     add funds
  withdraw <amount>    remove funds
  history              list transactions
  logout               end the session
  help                 show this help
  quit                 leave`

var errQuit = errors.New("quit")

// session is one interactive ATM conversation over a single app.
type session struct {
	app        *app.App
	in         *bufio.Scanner
	out        io.Writer
	readSecret func(prompt string) (string, error)
	current    *user.User

	success func(w io.Writer, format string, a ...interface{})
	danger  func(w io.Writer, format string, a ...interface{})
	info    func(w io.Writer, format string, a ...interface{})
}

func newSession(a *app.App, in io.Reader, out io.Writer) *session {
	s := &session{
		app:     a,
		in:      bufio.NewScanner(in),
		out:     out,
		success: color.New(color.FgGreen).FprintfFunc(),
		danger:  color.New(color.FgRed).FprintfFunc(),
		info:    color.New(color.FgCyan).FprintfFunc(),
	}
	s.readSecret = s.prompt
	return s
}

// Run reads commands until quit or end of input.
func (s *session) Run() error {
	s.info(s.out, "Welcome to minibank. Type 'help' for commands.\n")
	for {
		line, err := s.prompt(s.promptText())
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.exec(line); err != nil {
			if errors.Is(err, errQuit) {
				s.info(s.out, "Goodbye.\n")
				return nil
			}
			return err
		}
	}
}

func (s *session) promptText() string {
	if s.current != nil {
		return s.current.Username + "> "
	}
	return "> "
}

// prompt prints p and returns the next trimmed input line.
func (s *session) prompt(p string) (string, error) {
	fmt.Fprint(s.out, p)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	ctx := context.Background()
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "help", "?":
		fmt.Fprintln(s.out, helpText)
	case "quit", "exit":
		return errQuit
	case "signup":
		return s.signup(ctx)
	case "login":
		return s.login(ctx)
	case "logout":
		s.current = nil
		s.success(s.out, "You have been logged out.\n")
	case "balance", "dashboard":
		if s.requireLogin() {
			balance, txs := s.app.AccountService.Statement(ctx, s.current)
			s.info(s.out, "Balance: %s (%d transactions)\n", balance, len(txs))
		}
	case "deposit":
		s.deposit(ctx, args)
	case "withdraw":
		s.withdraw(ctx, args)
	case "history":
		s.history(ctx)
	default:
		s.danger(s.out, "Unknown command %q. Type 'help' for commands.\n", cmd)
	}
	return nil
}

func (s *session) requireLogin() bool {
	if s.current == nil {
		s.danger(s.out, "Not logged in\n")
		return false
	}
	return true
}

func (s *session) signup(ctx context.Context) error {
	username, err := s.prompt("Username: ")
	if err != nil {
		return err
	}
	pin, err := s.readSecret("PIN (4 digits): ")
	if err != nil {
		return err
	}
	raw, err := s.prompt("Initial deposit (optional): ")
	if err != nil {
		return err
	}
	if username == "" || pin == "" {
		s.danger(s.out, "Username and PIN are required.\n")
		return nil
	}

	initial := money.Zero()
	if raw != "" {
		initial, err = money.Parse(raw)
		if err != nil {
			s.danger(s.out, "Invalid initial deposit amount.\n")
			return nil
		}
		if initial.IsNegative() {
			s.danger(s.out, "Initial deposit cannot be negative.\n")
			return nil
		}
	}

	res, err := s.app.UserService.Register(ctx, username, pin, initial)
	if err != nil {
		return err
	}
	switch res.Status {
	case directory.Created:
		s.success(s.out, "Account created successfully! Please log in.\n")
	case directory.AlreadyExists:
		s.danger(s.out, "Username already exists.\n")
	case directory.InvalidPin:
		s.danger(s.out, "PIN must be 4 digits.\n")
	case directory.InvalidInitialBalance:
		s.danger(s.out, "Initial deposit cannot be negative.\n")
	}
	return nil
}

func (s *session) login(ctx context.Context) error {
	username, err := s.prompt("Username: ")
	if err != nil {
		return err
	}
	pin, err := s.readSecret("PIN: ")
	if err != nil {
		return err
	}
	u, err := s.app.AuthService.Login(ctx, username, pin)
	if err != nil {
		s.danger(s.out, "Invalid credentials.\n")
		return nil
	}
	s.current = u
	s.success(s.out, "Welcome, %s! Balance: %s\n", u.Username, s.app.AccountService.Balance(ctx, u))
	return nil
}

func (s *session) amountArg(args []string) (money.Money, bool) {
	if len(args) != 1 {
		s.danger(s.out, "Invalid amount\n")
		return money.Money{}, false
	}
	amount, err := money.Parse(args[0])
	if err != nil {
		s.danger(s.out, "Invalid amount\n")
		return money.Money{}, false
	}
	return amount, true
}

func (s *session) deposit(ctx context.Context, args []string) {
	if !s.requireLogin() {
		return
	}
	amount, ok := s.amountArg(args)
	if !ok {
		return
	}
	balance, err := s.app.AccountService.Deposit(ctx, s.current, amount)
	if err != nil {
		s.danger(s.out, "Deposit amount must be positive.\n")
		return
	}
	s.success(s.out, "Deposit successful. Balance: %s\n", balance)
}

func (s *session) withdraw(ctx context.Context, args []string) {
	if !s.requireLogin() {
		return
	}
	amount, ok := s.amountArg(args)
	if !ok {
		return
	}
	balance, err := s.app.AccountService.Withdraw(ctx, s.current, amount)
	if err != nil {
		s.danger(s.out, "Insufficient funds or invalid amount.\n")
		return
	}
	s.success(s.out, "Withdrawal successful. Balance: %s\n", balance)
}

func (s *session) history(ctx context.Context) {
	if !s.requireLogin() {
		return
	}
	txs := s.app.AccountService.History(ctx, s.current)
	if len(txs) == 0 {
		s.info(s.out, "No transactions yet.\n")
		return
	}
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Date\tDescription\tAmount\tBalance\t")
	for _, tx := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", tx.Timestamp.Format(historyDateFormat), tx.Description(), tx.Amount, tx.Balance)
	}
	_ = w.Flush()
}
