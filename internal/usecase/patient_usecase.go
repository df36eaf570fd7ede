package usecase

import (
	"context"

	"clinica/internal/domain/entity"
)

// PatientForm carries the demographic fields exactly as the form controls
// submit them: everything is a string, including the numeric fields. The
// service coerces edad and idTipoSeguro to numbers before anything reaches
// the wire, and recomputes edad from fechaNacimiento regardless of what was
// typed.
type PatientForm struct {
	DNI             string `json:"dni" validate:"required,len=8,numeric"`
	FirstNames      string `json:"nombres" validate:"required"`
	LastNames       string `json:"apellidos" validate:"required"`
	Sex             string `json:"sexo" validate:"required,oneof=M F"`
	BirthDate       string `json:"fechaNacimiento" validate:"required,datetime=2006-01-02"`
	Age             string `json:"edad" validate:"omitempty,numeric"`
	Address         string `json:"direccion" validate:"required"`
	Phone           string `json:"telefono" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	InsuranceTypeID string `json:"idTipoSeguro" validate:"omitempty,numeric"`

	// ModificationReason applies to updates only. Empty means the
	// configured default reason.
	ModificationReason string `json:"motivoModificacion"`
}

// PatientUsecase translates patient lifecycle intents into backend calls,
// with the fail-fast local guards and ordering normalization the pages
// rely on. Every operation assumes an authenticated session; the token is
// attached by the shared dispatcher, never threaded here.
type PatientUsecase interface {
	// List fetches all active patients ordered by ascending patient id,
	// whatever order the backend answered in.
	List(ctx context.Context) ([]*entity.Patient, error)

	// GetByID fetches one patient with associations.
	GetByID(ctx context.Context, id int) (*entity.Patient, error)

	// Create validates and coerces the form, then registers the patient.
	// Returns the record as persisted, including id and code.
	Create(ctx context.Context, form *PatientForm) (*entity.Patient, error)

	// Update validates and coerces the form and replaces the record,
	// attaching the modifying user and reason.
	Update(ctx context.Context, id int, form *PatientForm) error

	// SoftDelete marks the patient inactive. An empty reason is refused
	// locally before any network call.
	SoftDelete(ctx context.Context, id int, reason string) error

	// FindDeletedByDNI looks up a soft-deleted patient. A DNI shorter
	// than 8 characters is refused locally before any network call.
	FindDeletedByDNI(ctx context.Context, dni string) (*entity.Patient, error)

	// Restore re-activates a soft-deleted patient by id. The id is
	// expected to come from a prior successful FindDeletedByDNI.
	Restore(ctx context.Context, id int) error

	// ListInsuranceTypes fetches the catalog for selection inputs.
	ListInsuranceTypes(ctx context.Context) ([]*entity.InsuranceType, error)
}
