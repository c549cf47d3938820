package models

// Marker is a detected callout symbol referencing another sheet or detail.
// X and Y are normalized to [0,1] relative to the sheet image dimensions.
type Marker struct {
	ID             string  `json:"id"`
	Label          string  `json:"label"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Confidence     float64 `json:"confidence"`
	NeedsReview    bool    `json:"needsReview"`
	TargetSheetRef string  `json:"targetSheetRef,omitempty"`
	TargetSheetID  string  `json:"targetSheetId,omitempty"`
}

// GridBubble is a detected grid-line label (e.g. "A", "1"). Coordinates and
// dimensions are normalized to [0,1].
type GridBubble struct {
	Label      string  `json:"label"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Confidence float64 `json:"confidence"`
}

// LayoutRegion is a detected rectangular semantic region (schedule, notes,
// legend, ...). BBox is [x, y, width, height], all normalized to [0,1].
type LayoutRegion struct {
	Class      string     `json:"class"`
	BBox       [4]float64 `json:"bbox"`
	Confidence float64    `json:"confidence"`
}
