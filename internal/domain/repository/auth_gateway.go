package repository

import (
	"context"
	"errors"
)

// ErrInvalidLogin is returned when the backend rejects the submitted credentials.
var ErrInvalidLogin = errors.New("invalid credentials")

// ErrRegistrationConflict is returned when the backend reports a field
// conflict on registration, typically a duplicate email.
var ErrRegistrationConflict = errors.New("registration conflict")

// Credentials is the login payload.
type Credentials struct {
	Email    string
	Password string
}

// NewAccount is the registration payload.
type NewAccount struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// PasswordReset is the reset-password payload. Token is the proof issued by
// the forgot-password flow.
type PasswordReset struct {
	Email       string
	Token       string
	NewPassword string
}

// AuthGateway defines the authentication operations offered by the remote
// backend. On success both Login and Register yield a bearer token; the
// session manager owns decoding and installing it.
type AuthGateway interface {
	// Login exchanges credentials for a bearer token.
	// Returns ErrInvalidLogin when the backend rejects them.
	Login(ctx context.Context, creds Credentials) (token string, err error)

	// Register creates an account and returns a bearer token exactly like
	// Login. Returns ErrRegistrationConflict on a backend-reported conflict.
	Register(ctx context.Context, account NewAccount) (token string, err error)

	// ForgotPassword asks the backend to start a reset flow for the email.
	// The backend answers with a development-mode test token.
	ForgotPassword(ctx context.Context, email string) (resetToken string, err error)

	// ResetPassword completes the reset flow.
	ResetPassword(ctx context.Context, reset PasswordReset) error
}
