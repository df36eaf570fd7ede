// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"clinica/internal/domain/entity"
)

// LoginInput is the credentials payload submitted by the login page.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput is the payload submitted by the registration page.
type RegisterInput struct {
	FirstName string `json:"nombre" validate:"required"`
	LastName  string `json:"apellido" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// ForgotPasswordInput starts the password-reset flow.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput completes the password-reset flow.
type ResetPasswordInput struct {
	Email       string `json:"email" validate:"required,email"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// SessionUsecase owns the single current authentication session. It is the
// only writer of the token; everything else reads through CurrentToken or
// CurrentIdentity.
type SessionUsecase interface {
	// Login exchanges credentials for a session and installs it.
	Login(ctx context.Context, input *LoginInput) (*entity.Session, error)

	// Register creates an account and installs the returned session
	// exactly like Login.
	Register(ctx context.Context, input *RegisterInput) (*entity.Session, error)

	// Logout clears the persisted token and the in-memory identity
	// unconditionally. Idempotent.
	Logout(ctx context.Context) error

	// RestoreSession reads any persisted token on startup and installs it
	// when it decodes. It never fails: a corrupt or missing token simply
	// yields no session.
	RestoreSession(ctx context.Context) *entity.Session

	// CurrentIdentity is a read-only projection of the current token.
	// Nil exactly when no decodable token is installed.
	CurrentIdentity() *entity.Identity

	// CurrentToken yields the bearer token attached to outbound calls,
	// or "" when unauthenticated.
	CurrentToken() string

	// State reports where the session is in its lifecycle.
	State() entity.SessionState

	// Invalidate drops the session after the backend rejected the token.
	// Wired as the dispatcher's forced-logout hook.
	Invalidate()

	// ForgotPassword starts a reset flow; returns the backend's
	// development-mode reset token.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) (string, error)

	// ResetPassword completes a reset flow.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
