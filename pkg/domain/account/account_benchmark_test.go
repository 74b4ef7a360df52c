package account_test

import (
	"testing"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/money"
)

func BenchmarkAccount_Deposit(b *testing.B) {
	acc, _ := account.New(money.Zero())
	amount := money.MustParse("1.25")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc.Deposit(amount)
	}
}

func BenchmarkAccount_ParallelDepositWithdraw(b *testing.B) {
	acc, _ := account.New(money.MustParse("1000"))
	amount := money.MustParse("1")
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%2 == 0 {
				acc.Deposit(amount)
			} else {
				acc.Withdraw(amount)
			}
			i++
		}
	})
}
