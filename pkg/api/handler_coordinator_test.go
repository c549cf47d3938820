package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plandeck/plandeck/pkg/coordinator"
	"github.com/plandeck/plandeck/pkg/events"
	"github.com/plandeck/plandeck/pkg/models"
)

type nopEnqueuer struct{}

func (nopEnqueuer) Enqueue(context.Context, models.PipelineJob) error { return nil }

func coordinatorServer(t *testing.T) *Server {
	t.Helper()
	coord := coordinator.New(coordinator.NewMemStore(), nopEnqueuer{}, events.NewRecordingSink(), 0)
	t.Cleanup(coord.StopAlarms)
	return &Server{coordinator: coord}
}

func postJSON(t *testing.T, e *echo.Echo, s *Server, handler func(*echo.Context) error, path, planID, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPathValues(echo.PathValues{{Name: "planId", Value: planID}})
	return rec, handler(c)
}

func TestInitializeHandler(t *testing.T) {
	s := coordinatorServer(t)
	e := echo.New()

	rec, err := postJSON(t, e, s, s.initializeHandler, "/api/v1/plans/plan-1/initialize", "plan-1",
		`{"organizationId":"org-1","projectId":"proj-1","totalSheets":2}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "plan-1", resp.PlanID)
	assert.Equal(t, 2, resp.TotalSheets)
	assert.Equal(t, "image_generation", resp.Status)
	assert.NotNil(t, resp.ValidSheets)
}

func TestInitializeHandler_ConflictingTotalSheets(t *testing.T) {
	s := coordinatorServer(t)
	e := echo.New()

	_, err := postJSON(t, e, s, s.initializeHandler, "/api/v1/plans/plan-1/initialize", "plan-1",
		`{"organizationId":"org-1","projectId":"proj-1","totalSheets":2}`)
	require.NoError(t, err)

	_, err = postJSON(t, e, s, s.initializeHandler, "/api/v1/plans/plan-1/initialize", "plan-1",
		`{"organizationId":"org-1","projectId":"proj-1","totalSheets":3}`)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestInitializeHandler_Validation(t *testing.T) {
	s := coordinatorServer(t)
	e := echo.New()

	tests := []struct {
		name string
		body string
	}{
		{"missing tenancy", `{"totalSheets":2}`},
		{"negative totalSheets", `{"organizationId":"o","projectId":"p","totalSheets":-1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := postJSON(t, e, s, s.initializeHandler, "/api/v1/plans/plan-1/initialize", "plan-1", tt.body)
			require.Error(t, err)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, he.Code)
		})
	}
}

func TestSheetReportHandlers_FlowThroughPipeline(t *testing.T) {
	s := coordinatorServer(t)
	e := echo.New()

	_, err := postJSON(t, e, s, s.initializeHandler, "/api/v1/plans/plan-1/initialize", "plan-1",
		`{"organizationId":"org-1","projectId":"proj-1","totalSheets":1}`)
	require.NoError(t, err)

	rec, err := postJSON(t, e, s, s.sheetImageGeneratedHandler, "/api/v1/plans/plan-1/sheetImageGenerated", "plan-1",
		`{"sheetId":"sheet-0"}`)
	require.NoError(t, err)
	var resp StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "metadata_extraction", resp.Status)
	assert.Equal(t, []string{"sheet-0"}, resp.GeneratedImages)

	rec, err = postJSON(t, e, s, s.sheetMetadataExtractedHandler, "/api/v1/plans/plan-1/sheetMetadataExtracted", "plan-1",
		`{"sheetId":"sheet-0","isValid":true,"sheetNumber":"A1"}`)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "parallel_detection", resp.Status)
	assert.Equal(t, map[string]string{"sheet-0": "A1"}, resp.SheetNumberMap)
}

func TestSheetReportHandler_RequiresSheetID(t *testing.T) {
	s := coordinatorServer(t)
	e := echo.New()

	_, err := postJSON(t, e, s, s.sheetImageGeneratedHandler, "/api/v1/plans/plan-1/sheetImageGenerated", "plan-1", `{}`)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetStateHandler_UnknownPlanIs404(t *testing.T) {
	s := coordinatorServer(t)
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/nope/state", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPathValues(echo.PathValues{{Name: "planId", Value: "nope"}})

	err := s.getStateHandler(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestMarkFailedHandler(t *testing.T) {
	s := coordinatorServer(t)
	e := echo.New()

	_, err := postJSON(t, e, s, s.initializeHandler, "/api/v1/plans/plan-1/initialize", "plan-1",
		`{"organizationId":"org-1","projectId":"proj-1","totalSheets":1}`)
	require.NoError(t, err)

	rec, err := postJSON(t, e, s, s.markFailedHandler, "/api/v1/plans/plan-1/markFailed", "plan-1",
		`{"error":"PDF not found at uploads/x.pdf"}`)
	require.NoError(t, err)

	var resp StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp.Status)
	assert.Equal(t, "PDF not found at uploads/x.pdf", resp.LastError)

	_, err = postJSON(t, e, s, s.markFailedHandler, "/api/v1/plans/plan-1/markFailed", "plan-1", `{}`)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetProgressHandler(t *testing.T) {
	s := coordinatorServer(t)
	e := echo.New()

	_, err := postJSON(t, e, s, s.initializeHandler, "/api/v1/plans/plan-1/initialize", "plan-1",
		`{"organizationId":"org-1","projectId":"proj-1","totalSheets":2}`)
	require.NoError(t, err)
	_, err = postJSON(t, e, s, s.sheetImageGeneratedHandler, "/api/v1/plans/plan-1/sheetImageGenerated", "plan-1",
		`{"sheetId":"sheet-0"}`)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/plan-1/progress", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPathValues(echo.PathValues{{Name: "planId", Value: "plan-1"}})

	require.NoError(t, s.getProgressHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var progress coordinator.Progress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
	assert.Equal(t, 1, progress.ImageGeneration.Completed)
	assert.Equal(t, 2, progress.ImageGeneration.Total)
}
