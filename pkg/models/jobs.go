package models

// TenantRef carries the tenancy keys present on every job, blob path, and
// event stream.
type TenantRef struct {
	OrganizationID string `json:"organizationId"`
	ProjectID      string `json:"projectId"`
	PlanID         string `json:"planId"`
}

// Tenant returns the ref itself. Embedding TenantRef gives every job type
// the PipelineJob accessor for free.
func (r TenantRef) Tenant() TenantRef { return r }

// PipelineJob is the common surface of the five stage job payloads: which
// queue the job belongs to, its tenancy keys, and the sheet it targets
// (empty for the plan-level image-gen job).
type PipelineJob interface {
	Stage() Stage
	Tenant() TenantRef
	Sheet() string
}

// ImageGenJob drives stage 1: PDF page discovery and rasterization.
// TotalPages is provisional at enqueue time — the worker overwrites it with
// the count reported by the compute container.
type ImageGenJob struct {
	TenantRef
	PDFPath    string `json:"pdfPath"`
	TotalPages int    `json:"totalPages"`
	PlanName   string `json:"planName"`
}

// MetadataJob drives stage 2 for a single sheet. SheetNumber here is the
// 1-based page position, not the extracted drawing number.
type MetadataJob struct {
	TenantRef
	SheetID     string `json:"sheetId"`
	SheetNumber int    `json:"sheetNumber"`
	TotalSheets int    `json:"totalSheets"`
}

// CalloutJob drives stage 3 for a single valid sheet. SheetNumber is the
// extracted drawing number (e.g. "A1"); ValidSheetNumbers lists the drawing
// numbers of every valid sheet in the plan for reference matching.
type CalloutJob struct {
	TenantRef
	SheetID           string   `json:"sheetId"`
	SheetNumber       string   `json:"sheetNumber"`
	ValidSheetNumbers []string `json:"validSheetNumbers"`
}

// LayoutJob drives stage 4 for a single valid sheet.
type LayoutJob struct {
	TenantRef
	SheetID     string `json:"sheetId"`
	SheetNumber string `json:"sheetNumber"`
}

// TilesJob drives stage 5 for a single valid sheet.
type TilesJob struct {
	TenantRef
	SheetID string `json:"sheetId"`
}

// Stage returns the queue the job belongs to.
func (ImageGenJob) Stage() Stage { return StageImageGeneration }

// Stage returns the queue the job belongs to.
func (MetadataJob) Stage() Stage { return StageMetadataExtraction }

// Stage returns the queue the job belongs to.
func (CalloutJob) Stage() Stage { return StageCalloutDetection }

// Stage returns the queue the job belongs to.
func (LayoutJob) Stage() Stage { return StageLayoutDetection }

// Stage returns the queue the job belongs to.
func (TilesJob) Stage() Stage { return StageTileGeneration }

// Sheet returns the empty string: image generation is plan-scoped.
func (ImageGenJob) Sheet() string { return "" }

// Sheet returns the sheet the job targets.
func (j MetadataJob) Sheet() string { return j.SheetID }

// Sheet returns the sheet the job targets.
func (j CalloutJob) Sheet() string { return j.SheetID }

// Sheet returns the sheet the job targets.
func (j LayoutJob) Sheet() string { return j.SheetID }

// Sheet returns the sheet the job targets.
func (j TilesJob) Sheet() string { return j.SheetID }
