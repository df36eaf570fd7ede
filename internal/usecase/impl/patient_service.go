package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"clinica/config"
	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/repository"
	"clinica/internal/usecase"
)

// fallbackAuditUser is recorded when a mutation somehow runs without an
// identity, mirroring what the legacy web client sent.
const fallbackAuditUser = "WebUser"

// patientService implements the PatientUsecase interface.
type patientService struct {
	repo          repository.PatientRepository
	session       usecase.SessionUsecase
	validate      *validator.Validate
	defaultReason string
	logger        *slog.Logger
}

// PatientServiceParams holds dependencies for patientService, injected by Fx.
type PatientServiceParams struct {
	fx.In

	Repo    repository.PatientRepository
	Session usecase.SessionUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// NewPatientService is the constructor for patientService.
func NewPatientService(params PatientServiceParams) usecase.PatientUsecase {
	defaultReason := ""
	if params.Config != nil && params.Config.Audit != nil {
		defaultReason = params.Config.Audit.DefaultModificationReason
	}

	return &patientService{
		repo:          params.Repo,
		session:       params.Session,
		validate:      validator.New(),
		defaultReason: defaultReason,
		logger:        params.Logger,
	}
}

// List fetches all active patients and normalizes the ordering: ascending
// patient id, lower id first, whatever order the backend answered in.
func (srv *patientService) List(ctx context.Context) ([]*entity.Patient, error) {
	patients, err := srv.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load patient listing")
	}

	slices.SortStableFunc(patients, func(a, b *entity.Patient) int {
		return a.ID - b.ID
	})

	return patients, nil
}

// GetByID fetches one patient with its associations.
func (srv *patientService) GetByID(ctx context.Context, id int) (*entity.Patient, error) {
	patient, err := srv.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return nil, domainerrors.ErrPatientNotFound.WrapMessage("patient lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load patient")
	}

	return patient, nil
}

// Create validates and coerces the form, then registers the patient.
func (srv *patientService) Create(ctx context.Context, form *usecase.PatientForm) (*entity.Patient, error) {
	write, err := srv.buildWrite(form)
	if err != nil {
		return nil, err
	}

	created, err := srv.repo.Create(ctx, write, srv.auditUser())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create patient")
	}
	srv.logger.Info("Patient created", slog.Int("id", created.ID), slog.String("code", created.Code))

	return created, nil
}

// Update validates and coerces the form and replaces the record with full
// payload semantics: every demographic field is sent as submitted.
func (srv *patientService) Update(ctx context.Context, id int, form *usecase.PatientForm) error {
	write, err := srv.buildWrite(form)
	if err != nil {
		return err
	}

	reason := strings.TrimSpace(form.ModificationReason)
	if reason == "" {
		reason = srv.defaultReason
	}

	audit := repository.PatientAudit{User: srv.auditUser(), Reason: reason}
	if err := srv.repo.Update(ctx, id, write, audit); err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return domainerrors.ErrPatientNotFound.WrapMessage("patient update failed")
		}

		return errors.Wrap(err, "failed to update patient")
	}
	srv.logger.Info("Patient updated", slog.Int("id", id), slog.String("reason", reason))

	return nil
}

// SoftDelete marks the patient inactive. The reason guard runs locally:
// an empty reason never reaches the network.
func (srv *patientService) SoftDelete(ctx context.Context, id int, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domainerrors.ErrDeletionReasonRequired.WrapMessage("soft delete refused locally")
	}

	audit := repository.PatientAudit{User: srv.auditUser(), Reason: reason}
	if err := srv.repo.SoftDelete(ctx, id, audit); err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return domainerrors.ErrPatientNotFound.WrapMessage("soft delete failed")
		}

		return errors.Wrap(err, "failed to soft-delete patient")
	}
	srv.logger.Info("Patient soft-deleted", slog.Int("id", id), slog.String("reason", reason))

	return nil
}

// FindDeletedByDNI looks up a soft-deleted patient. The DNI guard runs
// locally: fewer than 8 characters never reaches the network.
func (srv *patientService) FindDeletedByDNI(ctx context.Context, dni string) (*entity.Patient, error) {
	dni = strings.TrimSpace(dni)
	if len(dni) < 8 {
		return nil, domainerrors.ErrInvalidDNI.WrapMessage("recovery lookup refused locally")
	}

	patient, err := srv.repo.FindDeletedByDNI(ctx, dni)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return nil, domainerrors.ErrDeletedPatientNotFound.WrapMessage("recovery lookup failed")
		}

		return nil, errors.Wrap(err, "failed to look up deleted patient")
	}

	return patient, nil
}

// Restore re-activates a soft-deleted patient. Restoring an already-active
// id is backend-defined; the id is assumed to come from FindDeletedByDNI.
func (srv *patientService) Restore(ctx context.Context, id int) error {
	if err := srv.repo.Restore(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return domainerrors.ErrPatientNotFound.WrapMessage("restore failed")
		}

		return errors.Wrap(err, "failed to restore patient")
	}
	srv.logger.Info("Patient restored", slog.Int("id", id))

	return nil
}

// ListInsuranceTypes fetches the read-only catalog.
func (srv *patientService) ListInsuranceTypes(ctx context.Context) ([]*entity.InsuranceType, error) {
	catalog, err := srv.repo.ListInsuranceTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load insurance catalog")
	}

	return catalog, nil
}

// buildWrite validates the form and produces the wire-ready write payload:
// numeric fields coerced, edad recomputed from fechaNacimiento.
func (srv *patientService) buildWrite(form *usecase.PatientForm) (*repository.PatientWrite, error) {
	if err := srv.validate.Struct(form); err != nil {
		srv.logger.Warn("Patient form rejected", slog.Any("error", err))

		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("patient form validation failed")
	}

	// The typed edad is superseded: birth date is the source of truth.
	age, err := deriveAge(form.BirthDate, time.Now())
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("birth date rejected")
	}

	insuranceID := 0
	if form.InsuranceTypeID != "" {
		insuranceID, err = strconv.Atoi(form.InsuranceTypeID)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("insurance id rejected")
		}
	}

	return &repository.PatientWrite{
		DNI:             form.DNI,
		FirstNames:      form.FirstNames,
		LastNames:       form.LastNames,
		Sex:             form.Sex,
		BirthDate:       form.BirthDate,
		Age:             age,
		Address:         form.Address,
		Phone:           form.Phone,
		Email:           form.Email,
		InsuranceTypeID: insuranceID,
	}, nil
}

// auditUser names the acting user on mutations, taken from the session.
func (srv *patientService) auditUser() string {
	if identity := srv.session.CurrentIdentity(); identity != nil {
		return identity.Email
	}

	return fallbackAuditUser
}

// deriveAge computes full years between a date-only birth date and now.
func deriveAge(birthDate string, now time.Time) (int, error) {
	born, err := time.Parse(time.DateOnly, birthDate)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse birth date")
	}

	age := now.Year() - born.Year()
	// Not yet had the birthday this year.
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return 0, errors.Errorf("birth date %s is in the future", birthDate)
	}

	return age, nil
}
