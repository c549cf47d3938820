package api

// InitializeRequest is the body of POST /api/v1/plans/:planId/initialize.
type InitializeRequest struct {
	ProjectID      string `json:"projectId"`
	OrganizationID string `json:"organizationId"`
	TotalSheets    int    `json:"totalSheets"`
	TimeoutMs      int64  `json:"timeoutMs,omitempty"`
	PlanName       string `json:"planName,omitempty"`
}

// SheetReportRequest is the body of the per-sheet coordinator reports.
type SheetReportRequest struct {
	SheetID string `json:"sheetId"`
}

// MetadataReportRequest is the body of POST .../sheetMetadataExtracted.
type MetadataReportRequest struct {
	SheetID     string  `json:"sheetId"`
	IsValid     bool    `json:"isValid"`
	SheetNumber *string `json:"sheetNumber,omitempty"`
}

// MarkFailedRequest is the body of POST .../markFailed.
type MarkFailedRequest struct {
	Error string `json:"error"`
}
