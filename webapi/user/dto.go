package user

import "github.com/amirasaad/minibank/webapi/common"

// SignupInput represents the request body for opening an account.
// Username and Pin are required; InitialDeposit is optional and defaults
// to zero.
type SignupInput struct {
	Username       string        `json:"username" form:"username" validate:"max=64"`
	Pin            string        `json:"pin" form:"pin"`
	InitialDeposit common.Amount `json:"initial_deposit" form:"initial_deposit"`
}

// UserResponse is the API representation of a newly created user.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Balance  string `json:"balance"`
}
