package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"clinica/internal/delivery/http/response"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/usecase"
)

// PacienteHandler holds dependencies for patient lifecycle handlers.
type PacienteHandler struct {
	uc     usecase.PatientUsecase
	logger *slog.Logger
}

// NewPacienteHandler is the constructor for PacienteHandler, injected by Fx.
func NewPacienteHandler(uc usecase.PatientUsecase, logger *slog.Logger) *PacienteHandler {
	return &PacienteHandler{
		uc:     uc,
		logger: logger,
	}
}

// deleteRequest carries the reason for a soft delete.
type deleteRequest struct {
	Reason string `json:"motivo"`
}

// List returns all active patients ordered by ascending id.
func (h *PacienteHandler) List(c echo.Context) error {
	patients, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patients, "")
}

// Get returns one patient with its associations.
func (h *PacienteHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	patient, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patient, "")
}

// Create registers a new patient.
func (h *PacienteHandler) Create(c echo.Context) error {
	var form *usecase.PatientForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos del paciente inválidos")
	}

	created, err := h.uc.Create(c.Request().Context(), form)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Paciente registrado")
}

// Update replaces the demographic fields of an existing patient.
func (h *PacienteHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var form *usecase.PatientForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos del paciente inválidos")
	}

	if err := h.uc.Update(c.Request().Context(), id, form); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Paciente actualizado")
}

// Delete soft-deletes a patient, then returns the refreshed active listing
// so the page reflects the removal in one round trip. The refetch runs
// strictly after the delete confirmed.
func (h *PacienteHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Motivo de eliminación inválido")
	}

	ctx := c.Request().Context()
	if err := h.uc.SoftDelete(ctx, id, req.Reason); err != nil {
		return errors.WithStack(err)
	}

	patients, err := h.uc.List(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patients, "Paciente dado de baja")
}

// FindDeleted looks up a soft-deleted patient by DNI for the recovery page.
func (h *PacienteHandler) FindDeleted(c echo.Context) error {
	dni := c.Param("dni")

	patient, err := h.uc.FindDeletedByDNI(c.Request().Context(), dni)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patient, "")
}

// Restore re-activates a soft-deleted patient, then returns the refreshed
// active listing. The refetch runs strictly after the restore confirmed.
func (h *PacienteHandler) Restore(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.uc.Restore(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	patients, err := h.uc.List(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patients, "Paciente restaurado")
}

// InsuranceTypes returns the read-only insurance catalog.
func (h *PacienteHandler) InsuranceTypes(c echo.Context) error {
	catalog, err := h.uc.ListInsuranceTypes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, catalog, "")
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("el id debe ser un entero positivo")
	}

	return id, nil
}
