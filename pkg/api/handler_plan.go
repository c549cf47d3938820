package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listPlansHandler handles GET /api/v1/plans?organizationId=&projectId=.
func (s *Server) listPlansHandler(c *echo.Context) error {
	organizationID := c.QueryParam("organizationId")
	if organizationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "organizationId query parameter is required")
	}
	projectID := c.QueryParam("projectId")
	if projectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "projectId query parameter is required")
	}

	rows, err := s.planService.ListProjectPlans(c.Request().Context(), organizationID, projectID)
	if err != nil {
		return mapServiceError(err)
	}

	summaries := make([]PlanSummary, len(rows))
	for i, row := range rows {
		summaries[i] = newPlanSummary(row)
	}
	return c.JSON(http.StatusOK, summaries)
}

// getPlanHandler handles GET /api/v1/plans/:planId.
func (s *Server) getPlanHandler(c *echo.Context) error {
	planID := c.Param("planId")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	row, err := s.planService.GetPlan(c.Request().Context(), planID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, newPlanSummary(row))
}

// listSheetsHandler handles GET /api/v1/plans/:planId/sheets.
func (s *Server) listSheetsHandler(c *echo.Context) error {
	planID := c.Param("planId")
	if planID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "plan id is required")
	}

	rows, err := s.sheetService.ListPlanSheets(c.Request().Context(), planID)
	if err != nil {
		return mapServiceError(err)
	}

	sheets := make([]SheetResponse, len(rows))
	for i, row := range rows {
		sheets[i] = newSheetResponse(row)
	}
	return c.JSON(http.StatusOK, sheets)
}
