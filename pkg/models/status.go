package models

// PlanStatus is the coordinator state machine position of a plan. The
// ordering is monotone: a plan only moves forward, with failed absorbing
// from any non-terminal status.
type PlanStatus string

const (
	StatusImageGeneration    PlanStatus = "image_generation"
	StatusMetadataExtraction PlanStatus = "metadata_extraction"
	StatusParallelDetection  PlanStatus = "parallel_detection"
	StatusTileGeneration     PlanStatus = "tile_generation"
	StatusComplete           PlanStatus = "complete"
	StatusFailed             PlanStatus = "failed"
)

// IsTerminal reports whether no further transitions are possible.
func (s PlanStatus) IsTerminal() bool {
	return s == StatusComplete || s == StatusFailed
}

func (s PlanStatus) String() string { return string(s) }
