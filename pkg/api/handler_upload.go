package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/plandeck/plandeck/pkg/models"
	"github.com/plandeck/plandeck/pkg/paths"
)

// MaxUploadSize bounds the accepted PDF body.
const MaxUploadSize = 500 << 20 // 500 MiB

// uploadHandler handles POST /api/v1/uploads. It accepts a multipart form
// with the PDF under "file" plus projectId and organizationId fields,
// writes source.pdf under the canonical key, and hands the resulting
// notification to the orchestrator.
func (s *Server) uploadHandler(c *echo.Context) error {
	organizationID := c.FormValue("organizationId")
	if organizationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "organizationId field is required")
	}
	projectID := c.FormValue("projectId")
	if projectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "projectId field is required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file field is required")
	}
	if fileHeader.Size > MaxUploadSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("upload exceeds maximum size of %d bytes", MaxUploadSize))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to open uploaded file")
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read uploaded file")
	}
	if len(data) > MaxUploadSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("upload exceeds maximum size of %d bytes", MaxUploadSize))
	}

	planID := c.FormValue("planId")
	if planID == "" {
		planID = uuid.New().String()
	}

	key := paths.SourcePDF(organizationID, projectID, planID)
	if err := s.blobs.Put(c.Request().Context(), key, data); err != nil {
		return mapServiceError(fmt.Errorf("writing upload blob: %w", err))
	}

	notification := models.UploadNotification{
		ObjectKey: key,
		Action:    models.ActionPutObject,
		Size:      int64(len(data)),
		EventTime: time.Now(),
	}
	if err := s.orchestrator.HandleUploadNotification(c.Request().Context(), notification); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, &UploadResponse{
		PlanID:    planID,
		ObjectKey: key,
		Status:    "processing",
	})
}
