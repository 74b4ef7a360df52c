package directory

import (
	"fmt"

	"github.com/amirasaad/minibank/pkg/domain/money"
)

// SeedUser describes a user created at startup.
type SeedUser struct {
	Username string
	Pin      string
	Balance  money.Money
}

// DemoUser is the demonstration account available out of the box.
var DemoUser = SeedUser{Username: "user1", Pin: "1234", Balance: money.MustParse("1000")}

// Seed adds users to the directory. Seeding is explicit so that nothing is
// registered behind the caller's back; any outcome other than Created is an
// error.
func (d *Directory) Seed(users ...SeedUser) error {
	for _, su := range users {
		res, err := d.AddUser(su.Username, su.Pin, su.Balance)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", su.Username, err)
		}
		if !res.Created() {
			return fmt.Errorf("seed user %q: %s", su.Username, res.Status)
		}
	}
	return nil
}
