package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"clinica/internal/domain/entity"
	"clinica/internal/domain/repository"
)

// patientRepository implements repository.PatientRepository against the
// backend's /pacientes and /tiposseguro routes.
type patientRepository struct {
	client *Client
	logger *slog.Logger
}

// NewPatientRepository is the constructor for patientRepository.
func NewPatientRepository(client *Client, logger *slog.Logger) repository.PatientRepository {
	return &patientRepository{client: client, logger: logger}
}

// List retrieves all active patients in backend order.
func (r *patientRepository) List(ctx context.Context) ([]*entity.Patient, error) {
	var out []*pacienteDTO
	if err := r.client.get(ctx, "/pacientes", &out); err != nil {
		return nil, errors.Wrap(err, "failed to list patients")
	}

	patients := make([]*entity.Patient, 0, len(out))
	for _, dto := range out {
		patients = append(patients, dto.toEntity())
	}

	return patients, nil
}

// GetByID retrieves one patient with its associations.
func (r *patientRepository) GetByID(ctx context.Context, id int) (*entity.Patient, error) {
	var out pacienteDTO
	if err := r.client.get(ctx, "/pacientes/"+strconv.Itoa(id), &out); err != nil {
		return nil, mapNotFound(err, "failed to get patient by id")
	}

	return out.toEntity(), nil
}

// Create registers a new patient and returns the record as persisted.
func (r *patientRepository) Create(ctx context.Context, data *repository.PatientWrite, registeredBy string) (*entity.Patient, error) {
	var out pacienteDTO
	if err := r.client.post(ctx, "/pacientes", newPacienteCrearDTO(data, registeredBy), &out); err != nil {
		return nil, errors.Wrap(err, "failed to create patient")
	}

	return out.toEntity(), nil
}

// Update replaces the demographic fields of an existing patient.
func (r *patientRepository) Update(ctx context.Context, id int, data *repository.PatientWrite, audit repository.PatientAudit) error {
	path := "/pacientes/" + strconv.Itoa(id)
	if err := r.client.put(ctx, path, newPacienteActualizarDTO(id, data, audit), nil); err != nil {
		return mapNotFound(err, "failed to update patient")
	}

	return nil
}

// SoftDelete marks a patient inactive with the required audit metadata.
func (r *patientRepository) SoftDelete(ctx context.Context, id int, audit repository.PatientAudit) error {
	path := "/pacientes/eliminar/" + strconv.Itoa(id)
	body := &pacienteEliminarDTO{
		UsuarioEliminacion: audit.User,
		MotivoEliminacion:  audit.Reason,
	}
	if err := r.client.put(ctx, path, body, nil); err != nil {
		return mapNotFound(err, "failed to soft-delete patient")
	}

	return nil
}

// FindDeletedByDNI looks up a soft-deleted patient by DNI.
func (r *patientRepository) FindDeletedByDNI(ctx context.Context, dni string) (*entity.Patient, error) {
	var out pacienteDTO
	if err := r.client.get(ctx, "/pacientes/buscar-eliminado/"+dni, &out); err != nil {
		return nil, mapNotFound(err, "failed to find deleted patient by dni")
	}

	return out.toEntity(), nil
}

// Restore re-activates a soft-deleted patient. The backend defines what
// happens when the id is already active; no body is sent.
func (r *patientRepository) Restore(ctx context.Context, id int) error {
	path := "/pacientes/habilitar/" + strconv.Itoa(id)
	if err := r.client.put(ctx, path, nil, nil); err != nil {
		return mapNotFound(err, "failed to restore patient")
	}

	return nil
}

// ListInsuranceTypes retrieves the read-only insurance catalog.
func (r *patientRepository) ListInsuranceTypes(ctx context.Context) ([]*entity.InsuranceType, error) {
	var out []*tipoSeguroDTO
	if err := r.client.get(ctx, "/tiposseguro", &out); err != nil {
		return nil, errors.Wrap(err, "failed to list insurance types")
	}

	catalog := make([]*entity.InsuranceType, 0, len(out))
	for _, dto := range out {
		catalog = append(catalog, dto.toEntity())
	}

	return catalog, nil
}

// mapNotFound converts a backend 404 into the domain sentinel and wraps
// everything else untouched.
func mapNotFound(err error, msg string) error {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return errors.Wrap(repository.ErrPatientNotFound, msg)
	}

	return errors.Wrap(err, msg)
}
