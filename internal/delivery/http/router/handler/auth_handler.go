// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"clinica/internal/delivery/http/response"
	"clinica/internal/usecase"
)

// AuthHandler holds dependencies for session-related handlers.
type AuthHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.SessionUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// sessionView is the session representation returned to the frontend. The
// raw token is never echoed back.
type sessionView struct {
	Email    string `json:"email"`
	FullName string `json:"nombreCompleto"`
	Role     string `json:"rol"`
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de inicio de sesión inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionView{
		Email:    session.Identity.Email,
		FullName: session.Identity.FullName,
		Role:     session.Identity.Role,
	}, "Inicio de sesión exitoso")
}

// Register handles the account registration request. A successful
// registration installs a session exactly like Login.
func (h *AuthHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de registro inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sessionView{
		Email:    session.Identity.Email,
		FullName: session.Identity.FullName,
		Role:     session.Identity.Role,
	}, "Registro exitoso")
}

// Logout clears the session. Always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sesión cerrada")
}

// Session reports the current identity, or 204 when nobody is logged in.
func (h *AuthHandler) Session(c echo.Context) error {
	identity := h.uc.CurrentIdentity()
	if identity == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return response.Success(c, http.StatusOK, sessionView{
		Email:    identity.Email,
		FullName: identity.FullName,
		Role:     identity.Role,
	}, "")
}

// ForgotPassword starts the password-reset flow and relays the backend's
// development-mode reset token.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var input *usecase.ForgotPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Correo electrónico inválido")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	resetToken, err := h.uc.ForgotPassword(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": resetToken}, "Solicitud de restablecimiento enviada")
}

// ResetPassword completes the password-reset flow.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input *usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de restablecimiento inválidos")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResetPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contraseña restablecida")
}
