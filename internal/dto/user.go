package dto

// RegisterRequest is the registration form filled in by the shell.
type RegisterRequest struct {
	Name            string
	Email           string `validate:"required,ledgeremail"`
	Password        string
	ConfirmPassword string `validate:"eqfield=Password"`
}

// LoginRequest is the login form filled in by the shell.
type LoginRequest struct {
	Email    string `validate:"required,ledgeremail"`
	Password string
}
