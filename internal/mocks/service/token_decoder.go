// Package service provides hand-written testify mocks for the domain
// service interfaces.
package service

import (
	"github.com/stretchr/testify/mock"

	"clinica/internal/domain/service"
)

// MockTokenDecoder is a mock type for the TokenDecoder interface.
type MockTokenDecoder struct {
	mock.Mock
}

func (m *MockTokenDecoder) Decode(token string) (*service.IdentityClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.IdentityClaims), args.Error(1)
}
