package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clinica/internal/delivery/http/response"
)

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
