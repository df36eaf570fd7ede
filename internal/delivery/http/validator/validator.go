// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "clinica/internal/domain/errors"
)

// EchoValidator validates bound request payloads by their validate tags.
type EchoValidator struct {
	validate *playground.Validate
}

// New creates the validator Echo consults on c.Validate calls.
func New() *EchoValidator {
	return &EchoValidator{validate: playground.New()}
}

// Validate implements echo.Validator. Failures surface as the shared
// validation error so the error handler renders them uniformly.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
