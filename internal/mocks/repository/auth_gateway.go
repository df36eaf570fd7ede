package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clinica/internal/domain/repository"
)

// MockAuthGateway is a mock type for the AuthGateway interface.
type MockAuthGateway struct {
	mock.Mock
}

func (m *MockAuthGateway) Login(ctx context.Context, creds repository.Credentials) (string, error) {
	args := m.Called(ctx, creds)

	return args.String(0), args.Error(1)
}

func (m *MockAuthGateway) Register(ctx context.Context, account repository.NewAccount) (string, error) {
	args := m.Called(ctx, account)

	return args.String(0), args.Error(1)
}

func (m *MockAuthGateway) ForgotPassword(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)

	return args.String(0), args.Error(1)
}

func (m *MockAuthGateway) ResetPassword(ctx context.Context, reset repository.PasswordReset) error {
	args := m.Called(ctx, reset)

	return args.Error(0)
}

// MockTokenStore is a mock type for the TokenStore interface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Save(ctx context.Context, token string) error {
	args := m.Called(ctx, token)

	return args.Error(0)
}

func (m *MockTokenStore) Load(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	return args.String(0), args.Error(1)
}

func (m *MockTokenStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}
