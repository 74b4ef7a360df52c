package auth

// LoginInput represents the request body for user authentication.
type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Pin      string `json:"pin" form:"pin" validate:"required"`
}

// LoginResponse carries the session token issued on login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
