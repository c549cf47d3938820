package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/plandeck/plandeck/pkg/coordinator"
	"github.com/plandeck/plandeck/pkg/services"
)

// mapServiceError maps service- and coordinator-layer errors to HTTP error
// responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, coordinator.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, coordinator.ErrAlreadyInitialized) {
		return echo.NewHTTPError(http.StatusConflict, "plan already initialized with different totalSheets")
	}
	if errors.Is(err, services.ErrAlreadyExists) || errors.Is(err, coordinator.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
