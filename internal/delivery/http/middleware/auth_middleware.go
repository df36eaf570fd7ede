package middleware

import (
	"github.com/labstack/echo/v4"

	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/usecase"
)

// AuthMiddleware guards routes that require an installed session. The
// gateway holds a single session; the guard only checks it is present,
// token validity stays with the backend.
type AuthMiddleware struct {
	session usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(session usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{session: session}
}

// RequireSession rejects requests arriving before anyone logged in.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.session.State() != entity.StateAuthenticated {
			return domainerrors.ErrSessionRequired.WrapMessage("route requires a session")
		}

		return next(c)
	}
}
