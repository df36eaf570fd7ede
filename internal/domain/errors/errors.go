// Package errors defines the application error taxonomy shared by the
// session and patient workflows. Every error carries an HTTP status, a
// stable business code, and a user-facing message in the language of the
// hospital staff using the gateway.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"CREDENCIALES_INVALIDAS",
		"Correo electrónico o contraseña incorrectos",
		"",
	)

	ErrSessionRequired = NewBaseError(
		http.StatusUnauthorized,
		"SESION_REQUERIDA",
		"Debe iniciar sesión para continuar",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESION_EXPIRADA",
		"Su sesión ha expirado, inicie sesión nuevamente",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_YA_REGISTRADO",
		"Este correo electrónico ya está registrado",
		"",
	)

	ErrPasswordResetRejected = NewBaseError(
		http.StatusBadRequest,
		"RESTABLECIMIENTO_RECHAZADO",
		"No se pudo restablecer la contraseña",
		"",
	)

	// Patient-related errors
	ErrPatientNotFound = NewBaseError(
		http.StatusNotFound,
		"PACIENTE_NO_ENCONTRADO",
		"No se encontró el paciente solicitado",
		"",
	)

	ErrDeletedPatientNotFound = NewBaseError(
		http.StatusNotFound,
		"PACIENTE_ELIMINADO_NO_ENCONTRADO",
		"No existe ningún paciente eliminado con ese DNI",
		"",
	)

	ErrDeletionReasonRequired = NewBaseError(
		http.StatusBadRequest,
		"MOTIVO_ELIMINACION_REQUERIDO",
		"Debe indicar un motivo para dar de baja al paciente",
		"",
	)

	ErrInvalidDNI = NewBaseError(
		http.StatusBadRequest,
		"DNI_INVALIDO",
		"Ingrese un DNI válido (mínimo 8 dígitos)",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDACION_FALLIDA",
		"Los datos enviados no son válidos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"ERROR_INTERNO",
		"Error interno del sistema",
		"",
	)
)

// RemoteCallError represents a transport failure reaching the hospital
// backend, implementing the AppError interface.
type RemoteCallError struct {
	err     error
	details string
}

// NewRemoteCallError creates a transport-related error
func NewRemoteCallError(err error, details string) AppError {
	return &RemoteCallError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *RemoteCallError) Error() string {
	return errors.Wrap(e.err, "remote call failed").Error()
}

// Unwrap exposes the underlying transport error.
func (e *RemoteCallError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *RemoteCallError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *RemoteCallError) ErrorCode() string {
	return "SERVIDOR_NO_DISPONIBLE"
}

// Message returns the user-friendly error message
func (e *RemoteCallError) Message() string {
	return "No se pudo conectar al servidor"
}

// Details returns detailed error information
func (e *RemoteCallError) Details() string {
	return e.details
}
