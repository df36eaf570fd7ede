package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/repository"
	"clinica/internal/domain/service"
	mockrepo "clinica/internal/mocks/repository"
	mocksvc "clinica/internal/mocks/service"
	"clinica/internal/usecase"
)

type sessionFixture struct {
	gateway *mockrepo.MockAuthGateway
	store   *mockrepo.MockTokenStore
	decoder *mocksvc.MockTokenDecoder
	session usecase.SessionUsecase
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	gateway := new(mockrepo.MockAuthGateway)
	store := new(mockrepo.MockTokenStore)
	decoder := new(mocksvc.MockTokenDecoder)

	session := NewSessionService(SessionServiceParams{
		Gateway: gateway,
		Store:   store,
		Decoder: decoder,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &sessionFixture{gateway: gateway, store: store, decoder: decoder, session: session}
}

func doctorClaims() *service.IdentityClaims {
	return &service.IdentityClaims{
		Email:    "doctor@hospital.pe",
		FullName: "Ana Quispe",
		Role:     "Admin",
	}
}

func TestSessionService_StartsLoading(t *testing.T) {
	fixture := newSessionFixture(t)

	assert.Equal(t, entity.StateLoading, fixture.session.State())
	assert.Nil(t, fixture.session.CurrentIdentity())
	assert.Empty(t, fixture.session.CurrentToken())
}

func TestSessionService_LoginInstallsSession(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.gateway.On("Login", ctx, repository.Credentials{
		Email:    "doctor@hospital.pe",
		Password: "secret123",
	}).Return("issued-token", nil)
	fixture.decoder.On("Decode", "issued-token").Return(doctorClaims(), nil)
	fixture.store.On("Save", ctx, "issued-token").Return(nil)

	session, err := fixture.session.Login(ctx, &usecase.LoginInput{
		Email:    "doctor@hospital.pe",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "issued-token", session.Token)
	assert.Equal(t, "doctor@hospital.pe", session.Identity.Email)
	assert.Equal(t, entity.StateAuthenticated, fixture.session.State())
	assert.Equal(t, "issued-token", fixture.session.CurrentToken())

	identity := fixture.session.CurrentIdentity()
	require.NotNil(t, identity)
	assert.Equal(t, "doctor@hospital.pe", identity.Email)
	assert.Equal(t, "Ana Quispe", identity.FullName)

	fixture.store.AssertExpectations(t)
}

func TestSessionService_LoginRejectedMapsToInvalidCredentials(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.gateway.On("Login", ctx, mock.Anything).Return("", repository.ErrInvalidLogin)

	_, err := fixture.session.Login(ctx, &usecase.LoginInput{
		Email:    "doctor@hospital.pe",
		Password: "wrong",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CREDENCIALES_INVALIDAS", appErr.ErrorCode())

	assert.Equal(t, entity.StateLoading, fixture.session.State())
	assert.Nil(t, fixture.session.CurrentIdentity())
}

func TestSessionService_LoginSurvivesStoreFailure(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.gateway.On("Login", ctx, mock.Anything).Return("issued-token", nil)
	fixture.decoder.On("Decode", "issued-token").Return(doctorClaims(), nil)
	fixture.store.On("Save", ctx, "issued-token").Return(errors.New("disk full"))

	session, err := fixture.session.Login(ctx, &usecase.LoginInput{
		Email:    "doctor@hospital.pe",
		Password: "secret123",
	})
	require.NoError(t, err)

	// The session stays valid in memory even when persistence failed.
	assert.Equal(t, entity.StateAuthenticated, fixture.session.State())
	assert.Equal(t, "issued-token", session.Token)
}

func TestSessionService_RegisterConflictMapsToEmailAlreadyRegistered(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.gateway.On("Register", ctx, mock.Anything).Return("", repository.ErrRegistrationConflict)

	_, err := fixture.session.Register(ctx, &usecase.RegisterInput{
		FirstName: "Ana",
		LastName:  "Quispe",
		Email:     "doctor@hospital.pe",
		Password:  "secret123",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EMAIL_YA_REGISTRADO", appErr.ErrorCode())
}

func TestSessionService_RegisterInstallsSession(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.gateway.On("Register", ctx, repository.NewAccount{
		FirstName: "Ana",
		LastName:  "Quispe",
		Email:     "doctor@hospital.pe",
		Password:  "secret123",
	}).Return("issued-token", nil)
	fixture.decoder.On("Decode", "issued-token").Return(doctorClaims(), nil)
	fixture.store.On("Save", ctx, "issued-token").Return(nil)

	session, err := fixture.session.Register(ctx, &usecase.RegisterInput{
		FirstName: "Ana",
		LastName:  "Quispe",
		Email:     "doctor@hospital.pe",
		Password:  "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StateAuthenticated, fixture.session.State())
	assert.Equal(t, "doctor@hospital.pe", session.Identity.Email)
}

func TestSessionService_RestoreSessionInstallsPersistedToken(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.store.On("Load", ctx).Return("persisted-token", nil)
	fixture.decoder.On("Decode", "persisted-token").Return(doctorClaims(), nil)

	session := fixture.session.RestoreSession(ctx)
	require.NotNil(t, session)

	assert.Equal(t, "persisted-token", fixture.session.CurrentToken())
	assert.Equal(t, entity.StateAuthenticated, fixture.session.State())
}

func TestSessionService_RestoreSessionWithoutTokenSettlesUnauthenticated(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.store.On("Load", ctx).Return("", nil)

	session := fixture.session.RestoreSession(ctx)
	assert.Nil(t, session)
	assert.Equal(t, entity.StateUnauthenticated, fixture.session.State())
}

func TestSessionService_RestoreSessionAbsorbsCorruptToken(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.store.On("Load", ctx).Return("garbage", nil)
	fixture.decoder.On("Decode", "garbage").Return(nil, errors.New("not a token"))
	fixture.store.On("Clear", ctx).Return(nil)

	session := fixture.session.RestoreSession(ctx)
	assert.Nil(t, session)
	assert.Equal(t, entity.StateUnauthenticated, fixture.session.State())

	// The corrupt token is wiped so the next startup is clean.
	fixture.store.AssertCalled(t, "Clear", ctx)
}

func TestSessionService_RestoreSessionAbsorbsStoreFailure(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.store.On("Load", ctx).Return("", errors.New("permission denied"))

	session := fixture.session.RestoreSession(ctx)
	assert.Nil(t, session)
	assert.Equal(t, entity.StateUnauthenticated, fixture.session.State())
}

func TestSessionService_LogoutClearsEverything(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.gateway.On("Login", ctx, mock.Anything).Return("issued-token", nil)
	fixture.decoder.On("Decode", "issued-token").Return(doctorClaims(), nil)
	fixture.store.On("Save", ctx, "issued-token").Return(nil)
	fixture.store.On("Clear", ctx).Return(nil)

	_, err := fixture.session.Login(ctx, &usecase.LoginInput{Email: "doctor@hospital.pe", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, fixture.session.Logout(ctx))
	assert.Equal(t, entity.StateUnauthenticated, fixture.session.State())
	assert.Empty(t, fixture.session.CurrentToken())
	assert.Nil(t, fixture.session.CurrentIdentity())

	// Logging out again is a no-op that still succeeds.
	require.NoError(t, fixture.session.Logout(ctx))
}

func TestSessionService_InvalidateDropsSession(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.gateway.On("Login", ctx, mock.Anything).Return("issued-token", nil)
	fixture.decoder.On("Decode", "issued-token").Return(doctorClaims(), nil)
	fixture.store.On("Save", ctx, "issued-token").Return(nil)
	fixture.store.On("Clear", mock.Anything).Return(nil)

	_, err := fixture.session.Login(ctx, &usecase.LoginInput{Email: "doctor@hospital.pe", Password: "secret123"})
	require.NoError(t, err)

	fixture.session.Invalidate()
	assert.Equal(t, entity.StateUnauthenticated, fixture.session.State())
	assert.Empty(t, fixture.session.CurrentToken())
}

func TestSessionService_ForgotPasswordReturnsResetToken(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.gateway.On("ForgotPassword", ctx, "doctor@hospital.pe").Return("reset-token", nil)

	token, err := fixture.session.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "doctor@hospital.pe"})
	require.NoError(t, err)
	assert.Equal(t, "reset-token", token)
}

func TestSessionService_ResetPasswordForwardsPayload(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.gateway.On("ResetPassword", ctx, repository.PasswordReset{
		Email:       "doctor@hospital.pe",
		Token:       "reset-token",
		NewPassword: "newsecret",
	}).Return(nil)

	err := fixture.session.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:       "doctor@hospital.pe",
		Token:       "reset-token",
		NewPassword: "newsecret",
	})
	require.NoError(t, err)
	fixture.gateway.AssertExpectations(t)
}
