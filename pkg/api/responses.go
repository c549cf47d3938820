package api

import (
	"time"

	"github.com/plandeck/plandeck/ent"
	"github.com/plandeck/plandeck/pkg/coordinator"
	"github.com/plandeck/plandeck/pkg/database"
	"github.com/plandeck/plandeck/pkg/queue"
)

// UploadResponse is returned by POST /api/v1/uploads.
type UploadResponse struct {
	PlanID    string `json:"planId"`
	ObjectKey string `json:"objectKey"`
	Status    string `json:"status"`
}

// StateResponse is the wire form of a plan's coordinator state.
type StateResponse struct {
	PlanID            string            `json:"planId"`
	ProjectID         string            `json:"projectId"`
	OrganizationID    string            `json:"organizationId"`
	PlanName          string            `json:"planName,omitempty"`
	TotalSheets       int               `json:"totalSheets"`
	Status            string            `json:"status"`
	GeneratedImages   []string          `json:"generatedImages"`
	ExtractedMetadata []string          `json:"extractedMetadata"`
	ValidSheets       []string          `json:"validSheets"`
	SheetNumberMap    map[string]string `json:"sheetNumberMap"`
	DetectedCallouts  []string          `json:"detectedCallouts"`
	DetectedLayouts   []string          `json:"detectedLayouts"`
	GeneratedTiles    []string          `json:"generatedTiles"`
	LastError         string            `json:"lastError,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	DeadlineAt        time.Time         `json:"deadlineAt"`
	CompletedAt       *time.Time        `json:"completedAt,omitempty"`
}

func newStateResponse(st *coordinator.State) *StateResponse {
	resp := &StateResponse{
		PlanID:            st.PlanID,
		ProjectID:         st.ProjectID,
		OrganizationID:    st.OrganizationID,
		PlanName:          st.PlanName,
		TotalSheets:       st.TotalSheets,
		Status:            string(st.Status),
		GeneratedImages:   st.GeneratedImages.Sorted(),
		ExtractedMetadata: st.ExtractedMetadata.Sorted(),
		ValidSheets:       st.ValidSheets.Sorted(),
		SheetNumberMap:    st.SheetNumberMap,
		DetectedCallouts:  st.DetectedCallouts.Sorted(),
		DetectedLayouts:   st.DetectedLayouts.Sorted(),
		GeneratedTiles:    st.GeneratedTiles.Sorted(),
		LastError:         st.LastError,
		CreatedAt:         st.CreatedAt,
		DeadlineAt:        st.DeadlineAt,
	}
	if !st.CompletedAt.IsZero() {
		t := st.CompletedAt
		resp.CompletedAt = &t
	}
	return resp
}

// PlanSummary is one row of GET /api/v1/plans.
type PlanSummary struct {
	PlanID      string     `json:"planId"`
	ProjectID   string     `json:"projectId"`
	Name        string     `json:"name,omitempty"`
	Status      string     `json:"status"`
	TotalSheets int        `json:"totalSheets"`
	LastError   string     `json:"lastError,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func newPlanSummary(row *ent.Plan) PlanSummary {
	s := PlanSummary{
		PlanID:      row.ID,
		ProjectID:   row.ProjectID,
		Name:        row.Name,
		Status:      string(row.Status),
		TotalSheets: row.TotalSheets,
		CreatedAt:   row.CreatedAt,
		CompletedAt: row.CompletedAt,
	}
	if row.LastError != nil {
		s.LastError = *row.LastError
	}
	return s
}

// SheetResponse is one row of GET /api/v1/plans/:planId/sheets.
type SheetResponse struct {
	SheetID     string `json:"sheetId"`
	PageNumber  int    `json:"pageNumber"`
	SheetNumber string `json:"sheetNumber,omitempty"`
	Title       string `json:"title,omitempty"`
	Discipline  string `json:"discipline,omitempty"`
	IsValid     bool   `json:"isValid"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	ImagePath   string `json:"imagePath,omitempty"`
	TilesPath   string `json:"tilesPath,omitempty"`
	MinZoom     int    `json:"minZoom,omitempty"`
	MaxZoom     int    `json:"maxZoom,omitempty"`
}

func newSheetResponse(row *ent.Sheet) SheetResponse {
	resp := SheetResponse{
		SheetID:    row.SheetID,
		PageNumber: row.PageNumber,
		IsValid:    row.IsValid,
		Width:      row.Width,
		Height:     row.Height,
		ImagePath:  row.ImagePath,
		TilesPath:  row.TilesPath,
		MinZoom:    row.MinZoom,
		MaxZoom:    row.MaxZoom,
	}
	if row.SheetNumber != nil {
		resp.SheetNumber = *row.SheetNumber
	}
	if row.Title != nil {
		resp.Title = *row.Title
	}
	if row.Discipline != nil {
		resp.Discipline = *row.Discipline
	}
	return resp
}

// HealthCheck is one component's health in the /health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Checks     map[string]HealthCheck `json:"checks"`
	Database   *database.HealthStatus `json:"database,omitempty"`
	WorkerPool *queue.PoolHealth      `json:"workerPool,omitempty"`
}
