// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"ulaz/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness of the client engine itself, not of the
// remote ticketing backend.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}
