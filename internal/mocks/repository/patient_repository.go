// Package repository provides hand-written testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clinica/internal/domain/entity"
	"clinica/internal/domain/repository"
)

// MockPatientRepository is a mock type for the PatientRepository interface.
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) List(ctx context.Context) ([]*entity.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id int) (*entity.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) Create(ctx context.Context, data *repository.PatientWrite, registeredBy string) (*entity.Patient, error) {
	args := m.Called(ctx, data, registeredBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, id int, data *repository.PatientWrite, audit repository.PatientAudit) error {
	args := m.Called(ctx, id, data, audit)

	return args.Error(0)
}

func (m *MockPatientRepository) SoftDelete(ctx context.Context, id int, audit repository.PatientAudit) error {
	args := m.Called(ctx, id, audit)

	return args.Error(0)
}

func (m *MockPatientRepository) FindDeletedByDNI(ctx context.Context, dni string) (*entity.Patient, error) {
	args := m.Called(ctx, dni)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) Restore(ctx context.Context, id int) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockPatientRepository) ListInsuranceTypes(ctx context.Context) ([]*entity.InsuranceType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.InsuranceType), args.Error(1)
}
