package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clinica/internal/domain/entity"
	mockusecase "clinica/internal/mocks/usecase"
	"clinica/internal/usecase"
)

func newAuthHandler(uc usecase.SessionUsecase) *AuthHandler {
	return NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAuthHandler_LoginReturnsIdentityWithoutToken(t *testing.T) {
	uc := new(mockusecase.MockSessionUsecase)
	uc.On("Login", mock.Anything, &usecase.LoginInput{
		Email:    "doctor@hospital.pe",
		Password: "secret123",
	}).Return(&entity.Session{
		Token: "issued-token",
		Identity: entity.Identity{
			Email:    "doctor@hospital.pe",
			FullName: "Ana Quispe",
			Role:     "Admin",
		},
	}, nil)

	body := `{"email":"doctor@hospital.pe","password":"secret123"}`
	c, rec := newPacienteTestContext(t, http.MethodPost, "/auth/login", body)

	require.NoError(t, newAuthHandler(uc).Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "doctor@hospital.pe")
	// The bearer token never leaves the gateway.
	assert.NotContains(t, rec.Body.String(), "issued-token")
}

func TestAuthHandler_LoginRejectsInvalidPayload(t *testing.T) {
	uc := new(mockusecase.MockSessionUsecase)

	body := `{"email":"not-an-email","password":"secret123"}`
	c, _ := newPacienteTestContext(t, http.MethodPost, "/auth/login", body)

	err := newAuthHandler(uc).Login(c)
	require.Error(t, err)
	uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuthHandler_RegisterReturnsCreated(t *testing.T) {
	uc := new(mockusecase.MockSessionUsecase)
	uc.On("Register", mock.Anything, mock.Anything).Return(&entity.Session{
		Token:    "issued-token",
		Identity: entity.Identity{Email: "nuevo@hospital.pe", FullName: "Luis Paredes", Role: "User"},
	}, nil)

	body := `{"nombre":"Luis","apellido":"Paredes","email":"nuevo@hospital.pe","password":"secret123"}`
	c, rec := newPacienteTestContext(t, http.MethodPost, "/auth/register", body)

	require.NoError(t, newAuthHandler(uc).Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "nuevo@hospital.pe")
}

func TestAuthHandler_SessionWithoutLoginAnswersNoContent(t *testing.T) {
	uc := new(mockusecase.MockSessionUsecase)
	uc.On("CurrentIdentity").Return(nil)

	c, rec := newPacienteTestContext(t, http.MethodGet, "/auth/session", "")

	require.NoError(t, newAuthHandler(uc).Session(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthHandler_SessionReportsIdentity(t *testing.T) {
	uc := new(mockusecase.MockSessionUsecase)
	uc.On("CurrentIdentity").Return(&entity.Identity{
		Email:    "doctor@hospital.pe",
		FullName: "Ana Quispe",
		Role:     "Admin",
	})

	c, rec := newPacienteTestContext(t, http.MethodGet, "/auth/session", "")

	require.NoError(t, newAuthHandler(uc).Session(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ana Quispe")
}

func TestAuthHandler_LogoutAlwaysSucceeds(t *testing.T) {
	uc := new(mockusecase.MockSessionUsecase)
	uc.On("Logout", mock.Anything).Return(nil)

	c, rec := newPacienteTestContext(t, http.MethodPost, "/auth/logout", "")

	require.NoError(t, newAuthHandler(uc).Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_ForgotPasswordRelaysResetToken(t *testing.T) {
	uc := new(mockusecase.MockSessionUsecase)
	uc.On("ForgotPassword", mock.Anything, &usecase.ForgotPasswordInput{
		Email: "doctor@hospital.pe",
	}).Return("reset-token", nil)

	body := `{"email":"doctor@hospital.pe"}`
	c, rec := newPacienteTestContext(t, http.MethodPost, "/auth/forgot-password", body)

	require.NoError(t, newAuthHandler(uc).ForgotPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "reset-token")
}

func TestAuthHandler_ResetPasswordForwardsPayload(t *testing.T) {
	uc := new(mockusecase.MockSessionUsecase)
	uc.On("ResetPassword", mock.Anything, &usecase.ResetPasswordInput{
		Email:       "doctor@hospital.pe",
		Token:       "reset-token",
		NewPassword: "newsecret",
	}).Return(nil)

	body := `{"email":"doctor@hospital.pe","token":"reset-token","newPassword":"newsecret"}`
	c, rec := newPacienteTestContext(t, http.MethodPost, "/auth/reset-password", body)

	require.NoError(t, newAuthHandler(uc).ResetPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}
