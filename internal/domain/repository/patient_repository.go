// Package repository defines the interfaces for the remote persistence layer.
// These interfaces act as a contract between the domain/application layers and
// the infrastructure layer that speaks to the hospital backend.
package repository

import (
	"context"
	"errors"

	"clinica/internal/domain/entity"
)

// ErrPatientNotFound is returned when a lookup by id or DNI matches nothing.
var ErrPatientNotFound = errors.New("patient not found")

// PatientWrite carries the demographic fields submitted on create and update.
// Age and insurance id are numeric on the wire; form input must be coerced
// before it reaches this struct.
type PatientWrite struct {
	DNI             string
	FirstNames      string
	LastNames       string
	Sex             string
	BirthDate       string // Date-only, "YYYY-MM-DD".
	Age             int
	Address         string
	Phone           string
	Email           string
	InsuranceTypeID int
}

// PatientAudit carries the audit metadata attached to mutating operations.
type PatientAudit struct {
	User   string
	Reason string
}

// PatientRepository defines the patient lifecycle operations offered by the
// remote backend. All persistence and uniqueness enforcement lives there;
// this client only shapes requests and interprets responses.
type PatientRepository interface {
	// List retrieves all active patients in whatever order the backend
	// returns them. Ordering normalization is the caller's concern.
	List(ctx context.Context) ([]*entity.Patient, error)

	// GetByID retrieves one patient including insurance and clinical-record
	// associations. Returns ErrPatientNotFound on a miss.
	GetByID(ctx context.Context, id int) (*entity.Patient, error)

	// Create registers a new patient and returns the record as persisted,
	// including the server-assigned id and code.
	Create(ctx context.Context, data *PatientWrite, registeredBy string) (*entity.Patient, error)

	// Update replaces the demographic fields of an existing patient.
	// Full-replace semantics: every field in data is sent as-is.
	Update(ctx context.Context, id int, data *PatientWrite, audit PatientAudit) error

	// SoftDelete marks a patient inactive. The record is never removed.
	SoftDelete(ctx context.Context, id int, audit PatientAudit) error

	// FindDeletedByDNI looks up a soft-deleted patient by DNI.
	// Returns ErrPatientNotFound when no soft-deleted record matches.
	FindDeletedByDNI(ctx context.Context, dni string) (*entity.Patient, error)

	// Restore re-activates a soft-deleted patient by id.
	Restore(ctx context.Context, id int) error

	// ListInsuranceTypes retrieves the read-only insurance catalog.
	ListInsuranceTypes(ctx context.Context) ([]*entity.InsuranceType, error)
}
