package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"

	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/repository"
)

// authGateway implements repository.AuthGateway against the backend's /Auth routes.
type authGateway struct {
	client *Client
	logger *slog.Logger
}

// NewAuthGateway is the constructor for authGateway.
func NewAuthGateway(client *Client, logger *slog.Logger) repository.AuthGateway {
	return &authGateway{client: client, logger: logger}
}

// Login exchanges credentials for a bearer token.
func (g *authGateway) Login(ctx context.Context, creds repository.Credentials) (string, error) {
	var out authResponseDTO
	err := g.client.post(ctx, "/Auth/login", &loginDTO{
		Email:    creds.Email,
		Password: creds.Password,
	}, &out)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) &&
			(statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusBadRequest) {
			return "", errors.Wrap(repository.ErrInvalidLogin, "login rejected by backend")
		}

		return "", errors.Wrap(err, "login request failed")
	}

	if out.Token == "" {
		return "", errors.New("backend answered login without a token")
	}

	return out.Token, nil
}

// Register creates an account; the backend answers with a token like Login.
func (g *authGateway) Register(ctx context.Context, account repository.NewAccount) (string, error) {
	var out authResponseDTO
	err := g.client.post(ctx, "/Auth/register", &registerDTO{
		Nombre:   account.FirstName,
		Apellido: account.LastName,
		Email:    account.Email,
		Password: account.Password,
	}, &out)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) &&
			(statusErr.StatusCode == http.StatusConflict || statusErr.StatusCode == http.StatusBadRequest) {
			return "", errors.Wrap(repository.ErrRegistrationConflict, "registration rejected by backend")
		}

		return "", errors.Wrap(err, "register request failed")
	}

	if out.Token == "" {
		return "", errors.New("backend answered register without a token")
	}

	return out.Token, nil
}

// ForgotPassword starts a reset flow and returns the development-mode token.
func (g *authGateway) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out forgotPasswordResponseDTO
	if err := g.client.post(ctx, "/Auth/forgot-password", &forgotPasswordDTO{Email: email}, &out); err != nil {
		return "", errors.Wrap(err, "forgot-password request failed")
	}

	return out.Token, nil
}

// ResetPassword completes a reset flow.
func (g *authGateway) ResetPassword(ctx context.Context, reset repository.PasswordReset) error {
	err := g.client.post(ctx, "/Auth/reset-password", &resetPasswordDTO{
		Email:       reset.Email,
		Token:       reset.Token,
		NewPassword: reset.NewPassword,
	}, nil)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusBadRequest {
			return domainerrors.ErrPasswordResetRejected.WrapMessage("reset-password rejected by backend")
		}

		return errors.Wrap(err, "reset-password request failed")
	}

	return nil
}
