// Package usecase provides hand-written testify mocks for the usecase
// interfaces.
package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clinica/internal/domain/entity"
	"clinica/internal/usecase"
)

// MockSessionUsecase is a mock type for the SessionUsecase interface.
type MockSessionUsecase struct {
	mock.Mock
}

func (m *MockSessionUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Session, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Session, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionUsecase) Logout(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

func (m *MockSessionUsecase) RestoreSession(ctx context.Context) *entity.Session {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(*entity.Session)
}

func (m *MockSessionUsecase) CurrentIdentity() *entity.Identity {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(*entity.Identity)
}

func (m *MockSessionUsecase) CurrentToken() string {
	args := m.Called()

	return args.String(0)
}

func (m *MockSessionUsecase) State() entity.SessionState {
	args := m.Called()

	return args.Get(0).(entity.SessionState)
}

func (m *MockSessionUsecase) Invalidate() {
	m.Called()
}

func (m *MockSessionUsecase) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) (string, error) {
	args := m.Called(ctx, input)

	return args.String(0), args.Error(1)
}

func (m *MockSessionUsecase) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}
