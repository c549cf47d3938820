package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/plandeck/plandeck/pkg/coordinator"
	"github.com/plandeck/plandeck/pkg/models"
)

// initializeHandler handles POST /api/v1/plans/:planId/initialize.
func (s *Server) initializeHandler(c *echo.Context) error {
	planID := c.Param("planId")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	var req InitializeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.OrganizationID == "" || req.ProjectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "organizationId and projectId are required")
	}
	if req.TotalSheets < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "totalSheets must not be negative")
	}

	ref := models.TenantRef{
		OrganizationID: req.OrganizationID,
		ProjectID:      req.ProjectID,
		PlanID:         planID,
	}
	st, err := s.coordinator.Initialize(c.Request().Context(), ref, req.PlanName,
		req.TotalSheets, time.Duration(req.TimeoutMs)*time.Millisecond)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newStateResponse(st))
}

// getStateHandler handles GET /api/v1/plans/:planId/state.
func (s *Server) getStateHandler(c *echo.Context) error {
	planID := c.Param("planId")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	st, err := s.coordinator.GetState(c.Request().Context(), planID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newStateResponse(st))
}

// getProgressHandler handles GET /api/v1/plans/:planId/progress.
func (s *Server) getProgressHandler(c *echo.Context) error {
	planID := c.Param("planId")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	progress, err := s.coordinator.GetProgress(c.Request().Context(), planID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, progress)
}

// sheetReport binds a SheetReportRequest and forwards it to one coordinator
// report operation.
func (s *Server) sheetReport(c *echo.Context, report func(planID, sheetID string) (*coordinator.State, error)) error {
	planID := c.Param("planId")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	var req SheetReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SheetID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sheetId is required")
	}

	st, err := report(planID, req.SheetID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newStateResponse(st))
}

// sheetImageGeneratedHandler handles POST .../sheetImageGenerated.
func (s *Server) sheetImageGeneratedHandler(c *echo.Context) error {
	return s.sheetReport(c, func(planID, sheetID string) (*coordinator.State, error) {
		return s.coordinator.SheetImageGenerated(c.Request().Context(), planID, sheetID)
	})
}

// sheetMetadataExtractedHandler handles POST .../sheetMetadataExtracted.
func (s *Server) sheetMetadataExtractedHandler(c *echo.Context) error {
	planID := c.Param("planId")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	var req MetadataReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SheetID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sheetId is required")
	}

	st, err := s.coordinator.SheetMetadataExtracted(c.Request().Context(), planID, req.SheetID, req.IsValid, req.SheetNumber)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newStateResponse(st))
}

// sheetCalloutsDetectedHandler handles POST .../sheetCalloutsDetected.
func (s *Server) sheetCalloutsDetectedHandler(c *echo.Context) error {
	return s.sheetReport(c, func(planID, sheetID string) (*coordinator.State, error) {
		return s.coordinator.SheetCalloutsDetected(c.Request().Context(), planID, sheetID)
	})
}

// sheetLayoutDetectedHandler handles POST .../sheetLayoutDetected.
func (s *Server) sheetLayoutDetectedHandler(c *echo.Context) error {
	return s.sheetReport(c, func(planID, sheetID string) (*coordinator.State, error) {
		return s.coordinator.SheetLayoutDetected(c.Request().Context(), planID, sheetID)
	})
}

// sheetTilesGeneratedHandler handles POST .../sheetTilesGenerated.
func (s *Server) sheetTilesGeneratedHandler(c *echo.Context) error {
	return s.sheetReport(c, func(planID, sheetID string) (*coordinator.State, error) {
		return s.coordinator.SheetTilesGenerated(c.Request().Context(), planID, sheetID)
	})
}

// markFailedHandler handles POST .../markFailed.
func (s *Server) markFailedHandler(c *echo.Context) error {
	planID := c.Param("planId")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	var req MarkFailedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Error == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "error is required")
	}

	st, err := s.coordinator.MarkFailed(c.Request().Context(), planID, req.Error)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newStateResponse(st))
}
