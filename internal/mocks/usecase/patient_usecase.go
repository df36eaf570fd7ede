package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clinica/internal/domain/entity"
	"clinica/internal/usecase"
)

// MockPatientUsecase is a mock type for the PatientUsecase interface.
type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) List(ctx context.Context) ([]*entity.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Patient), args.Error(1)
}

func (m *MockPatientUsecase) GetByID(ctx context.Context, id int) (*entity.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientUsecase) Create(ctx context.Context, form *usecase.PatientForm) (*entity.Patient, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientUsecase) Update(ctx context.Context, id int, form *usecase.PatientForm) error {
	args := m.Called(ctx, id, form)

	return args.Error(0)
}

func (m *MockPatientUsecase) SoftDelete(ctx context.Context, id int, reason string) error {
	args := m.Called(ctx, id, reason)

	return args.Error(0)
}

func (m *MockPatientUsecase) FindDeletedByDNI(ctx context.Context, dni string) (*entity.Patient, error) {
	args := m.Called(ctx, dni)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientUsecase) Restore(ctx context.Context, id int) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockPatientUsecase) ListInsuranceTypes(ctx context.Context) ([]*entity.InsuranceType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.InsuranceType), args.Error(1)
}
