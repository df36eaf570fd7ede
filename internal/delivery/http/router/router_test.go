package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clinica/internal/delivery/http/middleware"
	"clinica/internal/delivery/http/router/handler"
	"clinica/internal/delivery/http/validator"
	"clinica/internal/domain/entity"
	mockusecase "clinica/internal/mocks/usecase"
)

func newTestRouter(t *testing.T, session *mockusecase.MockSessionUsecase, patients *mockusecase.MockPatientUsecase) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		AuthHandler:     handler.NewAuthHandler(session, logger),
		PacienteHandler: handler.NewPacienteHandler(patients, logger),
		AuthMiddleware:  middleware.NewAuthMiddleware(session),
	})
	r.RegisterRoutes(e)

	return e
}

func TestRouter_PatientRoutesRequireSession(t *testing.T) {
	session := new(mockusecase.MockSessionUsecase)
	session.On("State").Return(entity.StateUnauthenticated)
	patients := new(mockusecase.MockPatientUsecase)

	e := newTestRouter(t, session, patients)

	req := httptest.NewRequest(http.MethodGet, "/pacientes", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESION_REQUERIDA")
	patients.AssertNotCalled(t, "List", mock.Anything)
}

func TestRouter_InsuranceCatalogRequiresSession(t *testing.T) {
	session := new(mockusecase.MockSessionUsecase)
	session.On("State").Return(entity.StateUnauthenticated)
	patients := new(mockusecase.MockPatientUsecase)

	e := newTestRouter(t, session, patients)

	req := httptest.NewRequest(http.MethodGet, "/tiposseguro", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AuthenticatedSessionReachesPatientRoutes(t *testing.T) {
	session := new(mockusecase.MockSessionUsecase)
	session.On("State").Return(entity.StateAuthenticated)
	patients := new(mockusecase.MockPatientUsecase)
	patients.On("List", mock.Anything).Return([]*entity.Patient{}, nil)

	e := newTestRouter(t, session, patients)

	req := httptest.NewRequest(http.MethodGet, "/pacientes", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_HealthIsOpen(t *testing.T) {
	session := new(mockusecase.MockSessionUsecase)
	patients := new(mockusecase.MockPatientUsecase)

	e := newTestRouter(t, session, patients)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
