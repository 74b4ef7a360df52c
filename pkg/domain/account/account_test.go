package account_test

import (
	"sync"
	"testing"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOpen(t *testing.T, initial string, opts ...account.Option) *account.Account {
	t.Helper()
	acc, err := account.New(money.MustParse(initial), opts...)
	require.NoError(t, err)
	return acc
}

func sumHistory(history []account.Transaction) money.Money {
	total := money.Zero()
	for _, tx := range history {
		total, _ = total.Add(tx.Amount)
	}
	return total
}

func TestNew_WithInitialBalance(t *testing.T) {
	assert := assert.New(t)

	acc := mustOpen(t, "100")
	assert.NotEmpty(acc.ID, "Account ID should not be empty")
	assert.Equal("100.00", acc.Balance().String())

	history := acc.History()
	require.Len(t, history, 1)
	assert.Equal(account.KindInitialDeposit, history[0].Kind)
	assert.Equal("Initial deposit", history[0].Description())
	assert.Equal("100.00", history[0].Amount.String())
	assert.Equal("100.00", history[0].Balance.String())
}

func TestNew_ZeroBalanceHasEmptyHistory(t *testing.T) {
	acc := mustOpen(t, "0")
	assert.True(t, acc.Balance().IsZero())
	assert.Empty(t, acc.History())
	assert.NotNil(t, acc.History(), "History should be an empty slice, not nil")
}

func TestNew_NegativeBalance(t *testing.T) {
	acc, err := account.New(money.MustParse("-1"))
	assert.ErrorIs(t, err, account.ErrNegativeInitialBalance)
	assert.Nil(t, acc)
}

func TestDepositWithdrawSequence(t *testing.T) {
	assert := assert.New(t)

	acc := mustOpen(t, "0")
	assert.True(acc.Deposit(money.MustParse("50")))
	assert.True(acc.Withdraw(money.MustParse("20")))
	assert.True(acc.Deposit(money.MustParse("5")))

	assert.Equal("35.00", acc.Balance().String())

	history := acc.History()
	require.Len(t, history, 3)
	want := []struct {
		kind   account.Kind
		amount string
	}{
		{account.KindDeposit, "50.00"},
		{account.KindWithdrawal, "-20.00"},
		{account.KindDeposit, "5.00"},
	}
	for i, w := range want {
		assert.Equal(w.kind, history[i].Kind, "entry %d kind", i)
		assert.Equal(w.amount, history[i].Amount.String(), "entry %d amount", i)
	}
	assert.Equal("35.00", history[2].Balance.String())
}

func TestDeposit_NonPositiveIsNoop(t *testing.T) {
	for _, amount := range []string{"0", "-50"} {
		t.Run(amount, func(t *testing.T) {
			acc := mustOpen(t, "10")
			before := acc.History()

			assert.False(t, acc.Deposit(money.MustParse(amount)))
			assert.Equal(t, "10.00", acc.Balance().String())
			assert.Equal(t, before, acc.History())
		})
	}
}

func TestWithdraw_InvalidIsNoop(t *testing.T) {
	for _, amount := range []string{"0", "-5", "10.01"} {
		t.Run(amount, func(t *testing.T) {
			acc := mustOpen(t, "10")
			before := acc.History()

			assert.False(t, acc.Withdraw(money.MustParse(amount)))
			assert.Equal(t, "10.00", acc.Balance().String())
			assert.Equal(t, before, acc.History())
		})
	}
}

func TestWithdraw_EntireBalance(t *testing.T) {
	acc := mustOpen(t, "10")
	assert.True(t, acc.Withdraw(money.MustParse("10")))
	assert.True(t, acc.Balance().IsZero())
	assert.False(t, acc.Withdraw(money.MustParse("0.01")))
}

func TestDeposit_Overflow(t *testing.T) {
	acc, err := account.New(money.FromSmallestUnit(1<<62 + 1<<61))
	require.NoError(t, err)

	assert.False(t, acc.Deposit(money.FromSmallestUnit(1<<62)))
	assert.Len(t, acc.History(), 1)
}

func TestRecordDeposit_ReturnsTransaction(t *testing.T) {
	acc := mustOpen(t, "1")
	tx, ok := acc.RecordDeposit(money.MustParse("2.50"))
	require.True(t, ok)
	assert.Equal(t, account.KindDeposit, tx.Kind)
	assert.Equal(t, "3.50", tx.Balance.String())

	history := acc.History()
	assert.Equal(t, tx, history[len(history)-1])

	_, ok = acc.RecordWithdrawal(money.MustParse("100"))
	assert.False(t, ok)
}

func TestHistory_IsACopy(t *testing.T) {
	acc := mustOpen(t, "100")
	history := acc.History()
	history[0].Amount = money.MustParse("1")
	_ = append(history, history[0])

	fresh := acc.History()
	require.Len(t, fresh, 1)
	assert.Equal(t, "100.00", fresh[0].Amount.String())
}

func TestTimestamps_NeverGoBackwards(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	ticks := []time.Time{base, base.Add(time.Minute), base, base.Add(-time.Hour)}
	i := 0
	clock := func() time.Time {
		ts := ticks[i%len(ticks)]
		i++
		return ts
	}

	acc := mustOpen(t, "0", account.WithClock(clock))
	acc.Deposit(money.MustParse("1"))
	acc.Deposit(money.MustParse("1"))
	acc.Deposit(money.MustParse("1"))

	history := acc.History()
	require.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].Timestamp.Before(history[i-1].Timestamp), "entry %d went backwards", i)
	}
}

func TestSnapshot_Consistent(t *testing.T) {
	acc := mustOpen(t, "20")
	acc.Withdraw(money.MustParse("5"))
	balance, history := acc.Snapshot()
	assert.Equal(t, balance, sumHistory(history))
}

func TestConcurrentDepositsAndWithdrawals(t *testing.T) {
	acc := mustOpen(t, "100")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded = money.MustParse("100")
	)
	record := func(m money.Money) {
		mu.Lock()
		defer mu.Unlock()
		succeeded, _ = succeeded.Add(m)
	}

	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			amount := money.MustParse("3")
			if acc.Deposit(amount) {
				record(amount)
			}
		}()
		go func() {
			defer wg.Done()
			amount := money.MustParse("7")
			if acc.Withdraw(amount) {
				record(amount.Negate())
			}
		}()
		go func() {
			defer wg.Done()
			balance, history := acc.Snapshot()
			assert.Equal(t, balance, sumHistory(history), "reader observed a partial mutation")
		}()
	}
	wg.Wait()

	balance, history := acc.Snapshot()
	assert.Equal(t, succeeded, balance)
	assert.Equal(t, balance, sumHistory(history))
	assert.False(t, balance.IsNegative())
}
