// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/repository"
	"clinica/internal/domain/service"
	"clinica/internal/usecase"
)

// sessionService implements the SessionUsecase interface. It is the single
// owner of the token: login, register, restore, logout and invalidate are
// the only mutations, everything else is a read.
type sessionService struct {
	gateway repository.AuthGateway
	store   repository.TokenStore
	decoder service.TokenDecoder
	logger  *slog.Logger

	mu       sync.RWMutex
	state    entity.SessionState
	token    string
	identity entity.Identity
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Gateway repository.AuthGateway
	Store   repository.TokenStore
	Decoder service.TokenDecoder
	Logger  *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		gateway: params.Gateway,
		store:   params.Store,
		decoder: params.Decoder,
		logger:  params.Logger,
		state:   entity.StateLoading,
	}
}

// Login exchanges credentials for a session and installs it.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Session, error) {
	srv.logger.Debug("Starting login", slog.String("email", input.Email))

	token, err := srv.gateway.Login(ctx, repository.Credentials{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		if errors.Is(err, repository.ErrInvalidLogin) {
			srv.logger.Warn("Login rejected", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "login failed")
	}

	session, err := srv.install(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "login succeeded but session could not be installed")
	}
	srv.logger.Info("Logged in", slog.String("email", session.Identity.Email), slog.String("role", session.Identity.Role))

	return session, nil
}

// Register creates an account and installs the returned session exactly like Login.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Session, error) {
	srv.logger.Debug("Starting registration", slog.String("email", input.Email))

	token, err := srv.gateway.Register(ctx, repository.NewAccount{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	})
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationConflict) {
			srv.logger.Warn("Registration conflict", slog.String("email", input.Email))

			return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("registration failed")
		}

		return nil, errors.Wrap(err, "registration failed")
	}

	session, err := srv.install(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "registration succeeded but session could not be installed")
	}
	srv.logger.Info("Registered", slog.String("email", session.Identity.Email))

	return session, nil
}

// Logout clears the persisted token and the in-memory identity unconditionally.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.store.Clear(ctx); err != nil {
		// The in-memory session is dropped regardless.
		srv.logger.Warn("Failed to clear persisted token on logout", slog.Any("error", err))
	}

	srv.dropSession()
	srv.logger.Info("Logged out")

	return nil
}

// RestoreSession reads any persisted token on startup. It never fails:
// a missing, unreadable or undecodable token yields no session.
func (srv *sessionService) RestoreSession(ctx context.Context) *entity.Session {
	token, err := srv.store.Load(ctx)
	if err != nil {
		srv.logger.Warn("Failed to read persisted token", slog.Any("error", err))
		srv.dropSession()

		return nil
	}

	if token == "" {
		srv.dropSession()

		return nil
	}

	claims, err := srv.decoder.Decode(token)
	if err != nil {
		// Corrupt or truncated token: treated as "no session", not an error.
		srv.logger.Warn("Persisted token failed to decode, clearing it", slog.Any("error", err))
		if clearErr := srv.store.Clear(ctx); clearErr != nil {
			srv.logger.Warn("Failed to clear undecodable token", slog.Any("error", clearErr))
		}
		srv.dropSession()

		return nil
	}

	identity := claims.Identity()

	srv.mu.Lock()
	srv.state = entity.StateAuthenticated
	srv.token = token
	srv.identity = identity
	srv.mu.Unlock()

	srv.logger.Info("Session restored", slog.String("email", identity.Email))

	return &entity.Session{Token: token, Identity: identity}
}

// CurrentIdentity is a pure function of current token state.
func (srv *sessionService) CurrentIdentity() *entity.Identity {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.state != entity.StateAuthenticated {
		return nil
	}
	identity := srv.identity

	return &identity
}

// CurrentToken yields the token the dispatcher attaches to outbound calls.
func (srv *sessionService) CurrentToken() string {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.token
}

// State reports where the session is in its lifecycle.
func (srv *sessionService) State() entity.SessionState {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.state
}

// Invalidate drops the session after the backend rejected the token.
func (srv *sessionService) Invalidate() {
	srv.logger.Info("Session invalidated by backend rejection")
	if err := srv.store.Clear(context.Background()); err != nil {
		srv.logger.Warn("Failed to clear persisted token on invalidation", slog.Any("error", err))
	}

	srv.dropSession()
}

// ForgotPassword starts a reset flow.
func (srv *sessionService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) (string, error) {
	resetToken, err := srv.gateway.ForgotPassword(ctx, input.Email)
	if err != nil {
		return "", errors.Wrap(err, "forgot-password failed")
	}
	srv.logger.Info("Password reset flow started", slog.String("email", input.Email))

	return resetToken, nil
}

// ResetPassword completes a reset flow. It does not touch the session:
// the user logs in again with the new password.
func (srv *sessionService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	err := srv.gateway.ResetPassword(ctx, repository.PasswordReset{
		Email:       input.Email,
		Token:       input.Token,
		NewPassword: input.NewPassword,
	})
	if err != nil {
		return errors.Wrap(err, "reset-password failed")
	}
	srv.logger.Info("Password reset completed", slog.String("email", input.Email))

	return nil
}

// install decodes the freshly issued token, persists it, and makes it the
// current session. A token the backend just issued is expected to decode;
// when it does not, no session is installed.
func (srv *sessionService) install(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := srv.decoder.Decode(token)
	if err != nil {
		srv.dropSession()

		return nil, errors.Wrap(err, "backend issued an undecodable token")
	}

	if err := srv.store.Save(ctx, token); err != nil {
		// Persistence is best-effort: the session stays valid in memory
		// and simply will not survive a restart.
		srv.logger.Warn("Failed to persist token", slog.Any("error", err))
	}

	identity := claims.Identity()

	srv.mu.Lock()
	srv.state = entity.StateAuthenticated
	srv.token = token
	srv.identity = identity
	srv.mu.Unlock()

	return &entity.Session{Token: token, Identity: identity}, nil
}

func (srv *sessionService) dropSession() {
	srv.mu.Lock()
	srv.state = entity.StateUnauthenticated
	srv.token = ""
	srv.identity = entity.Identity{}
	srv.mu.Unlock()
}
