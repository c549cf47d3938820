package events

import (
	"strconv"

	"github.com/plandeck/plandeck/pkg/models"
)

// Event is a typed payload that knows its event name and dedupe key.
// The JSON shape of each implementation is bit-exact contract — viewers
// parse these fields by name. All timestamps are Unix milliseconds.
type Event interface {
	EventName() string

	// DedupeKey scopes at-most-once emission within (planId, name).
	// Per-sheet events use the sheetId; singleton plan events use a
	// constant. An empty key disables dedupe.
	DedupeKey() string
}

// PlanProcessingStartedPayload announces a plan has entered the pipeline.
// Always the first event on the plan channel.
type PlanProcessingStartedPayload struct {
	PlanID    string `json:"planId"`
	StartedAt int64  `json:"startedAt"`
}

func (PlanProcessingStartedPayload) EventName() string { return EventPlanProcessingStarted }
func (PlanProcessingStartedPayload) DedupeKey() string { return "plan" }

// PlanProcessingProgressPayload carries the cumulative pipeline percentage
// (0..100). Monotonic non-decreasing within a plan; deduped per value so
// redelivered stage boundaries don't repeat.
type PlanProcessingProgressPayload struct {
	PlanID   string `json:"planId"`
	Progress int    `json:"progress"`
}

func (PlanProcessingProgressPayload) EventName() string { return EventPlanProcessingProgress }
func (p PlanProcessingProgressPayload) DedupeKey() string {
	return "progress:" + strconv.Itoa(p.Progress)
}

// SheetImageGeneratedPayload is emitted once per sheet as its PNG lands in
// the blob store.
type SheetImageGeneratedPayload struct {
	SheetID         string `json:"sheetId"`
	ProjectID       string `json:"projectId"`
	PlanID          string `json:"planId"`
	PlanName        string `json:"planName"`
	PageNumber      int    `json:"pageNumber"`
	LocalImagePath  string `json:"localImagePath"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	GeneratedAt     int64  `json:"generatedAt"`
	RemoteImagePath string `json:"remoteImagePath,omitempty"`
}

func (SheetImageGeneratedPayload) EventName() string   { return EventSheetImageGenerated }
func (p SheetImageGeneratedPayload) DedupeKey() string { return p.SheetID }

// SheetMetadataExtractedPayload is emitted for valid sheets only.
// SheetNumber is empty when the title block carried no readable number.
type SheetMetadataExtractedPayload struct {
	SheetID     string `json:"sheetId"`
	PlanID      string `json:"planId"`
	SheetNumber string `json:"sheetNumber"`
	ExtractedAt int64  `json:"extractedAt"`
	SheetTitle  string `json:"sheetTitle,omitempty"`
	Discipline  string `json:"discipline,omitempty"`
}

func (SheetMetadataExtractedPayload) EventName() string   { return EventSheetMetadataExtracted }
func (p SheetMetadataExtractedPayload) DedupeKey() string { return p.SheetID }

// PlanMetadataCompletedPayload marks the metadata_extraction →
// parallel_detection boundary and tells viewers which sheets survived.
type PlanMetadataCompletedPayload struct {
	PlanID         string            `json:"planId"`
	ValidSheets    []string          `json:"validSheets"`
	SheetNumberMap map[string]string `json:"sheetNumberMap"`
	CompletedAt    int64             `json:"completedAt"`
}

func (PlanMetadataCompletedPayload) EventName() string { return EventPlanMetadataCompleted }
func (PlanMetadataCompletedPayload) DedupeKey() string { return "plan" }

// SheetCalloutsDetectedPayload carries the callout markers for one sheet.
type SheetCalloutsDetectedPayload struct {
	SheetID        string          `json:"sheetId"`
	PlanID         string          `json:"planId"`
	Markers        []models.Marker `json:"markers"`
	UnmatchedCount int             `json:"unmatchedCount"`
	DetectedAt     int64           `json:"detectedAt"`
}

func (SheetCalloutsDetectedPayload) EventName() string   { return EventSheetCalloutsDetected }
func (p SheetCalloutsDetectedPayload) DedupeKey() string { return p.SheetID }

// SheetGridBubblesDetectedPayload is emitted only when the detector found
// grid bubbles on the sheet.
type SheetGridBubblesDetectedPayload struct {
	SheetID    string              `json:"sheetId"`
	Bubbles    []models.GridBubble `json:"bubbles"`
	DetectedAt int64               `json:"detectedAt"`
}

func (SheetGridBubblesDetectedPayload) EventName() string   { return EventSheetGridBubblesDetected }
func (p SheetGridBubblesDetectedPayload) DedupeKey() string { return p.SheetID }

// SheetLayoutRegionsDetectedPayload carries the layout regions for one
// sheet. Not emitted when layout detection failed (the failure is absorbed).
type SheetLayoutRegionsDetectedPayload struct {
	SheetID    string                `json:"sheetId"`
	Regions    []models.LayoutRegion `json:"regions"`
	DetectedAt int64                 `json:"detectedAt"`
}

func (SheetLayoutRegionsDetectedPayload) EventName() string   { return EventSheetLayoutRegionsDetected }
func (p SheetLayoutRegionsDetectedPayload) DedupeKey() string { return p.SheetID }

// SheetTilesGeneratedPayload is emitted once per valid sheet when its
// PMTiles archive lands in the blob store.
type SheetTilesGeneratedPayload struct {
	SheetID           string `json:"sheetId"`
	PlanID            string `json:"planId"`
	LocalPmtilesPath  string `json:"localPmtilesPath"`
	MinZoom           int    `json:"minZoom"`
	MaxZoom           int    `json:"maxZoom"`
	GeneratedAt       int64  `json:"generatedAt"`
	RemotePmtilesPath string `json:"remotePmtilesPath,omitempty"`
}

func (SheetTilesGeneratedPayload) EventName() string   { return EventSheetTilesGenerated }
func (p SheetTilesGeneratedPayload) DedupeKey() string { return p.SheetID }

// PlanProcessingCompletedPayload is the last event for a successful plan.
type PlanProcessingCompletedPayload struct {
	PlanID      string `json:"planId"`
	SheetCount  int    `json:"sheetCount"`
	CompletedAt int64  `json:"completedAt"`
}

func (PlanProcessingCompletedPayload) EventName() string { return EventPlanProcessingCompleted }
func (PlanProcessingCompletedPayload) DedupeKey() string { return "plan" }

// PlanProcessingFailedPayload terminates a plan with a short human-readable
// error string.
type PlanProcessingFailedPayload struct {
	PlanID   string `json:"planId"`
	Error    string `json:"error"`
	FailedAt int64  `json:"failedAt"`
}

func (PlanProcessingFailedPayload) EventName() string { return EventPlanProcessingFailed }
func (PlanProcessingFailedPayload) DedupeKey() string { return "plan" }
