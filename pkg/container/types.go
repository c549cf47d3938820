package container

import "github.com/plandeck/plandeck/pkg/models"

// SheetInfo describes one discovered sheet of a plan PDF.
type SheetInfo struct {
	SheetID    string `json:"sheetId"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	PageNumber int    `json:"pageNumber"`
}

// GenerateImagesResult is the response of /generate-images.
type GenerateImagesResult struct {
	Sheets     []SheetInfo `json:"sheets"`
	TotalPages int         `json:"totalPages"`
}

// RenderedPage is one rasterized page from /render-pages, with the PNG
// already base64-decoded.
type RenderedPage struct {
	PageNumber int
	PNG        []byte
	Width      int
	Height     int
}

// Metadata is the response of /extract-metadata. SheetNumber is nil when
// the container could not read a drawing number off the title block.
type Metadata struct {
	SheetNumber *string `json:"sheetNumber"`
	Title       string  `json:"title,omitempty"`
	Discipline  string  `json:"discipline,omitempty"`
	IsValid     bool    `json:"isValid"`
}

// CalloutResult is the response of /detect-callouts.
type CalloutResult struct {
	Markers        []models.Marker     `json:"markers"`
	UnmatchedCount int                 `json:"unmatchedCount"`
	GridBubbles    []models.GridBubble `json:"grid_bubbles,omitempty"`
}

// LayoutResult is the response of /detect-layout.
type LayoutResult struct {
	Regions []models.LayoutRegion `json:"regions"`
}

// TilesInput carries the tenancy headers for /generate-tiles.
type TilesInput struct {
	OrganizationID string
	ProjectID      string
	PlanID         string
	SheetID        string
}

// TilesResult is the binary PMTiles archive plus the zoom range the
// container reports via X-Min-Zoom / X-Max-Zoom response headers.
type TilesResult struct {
	Archive []byte
	MinZoom int
	MaxZoom int
}
