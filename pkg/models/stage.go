// Package models contains the shared domain types exchanged between the
// orchestrator, the coordinator, the stage queue, and the API layer.
package models

// Stage identifies one of the five pipeline stages. The values double as
// queue names and as the plan status values of the coordinator state machine.
type Stage string

// Pipeline stages in execution order. CalloutDetection and LayoutDetection
// run in parallel between metadata extraction and tile generation.
const (
	StageImageGeneration    Stage = "image_generation"
	StageMetadataExtraction Stage = "metadata_extraction"
	StageCalloutDetection   Stage = "callout_detection"
	StageLayoutDetection    Stage = "layout_detection"
	StageTileGeneration     Stage = "tile_generation"
)

// AllStages lists every stage queue, in pipeline order.
var AllStages = []Stage{
	StageImageGeneration,
	StageMetadataExtraction,
	StageCalloutDetection,
	StageLayoutDetection,
	StageTileGeneration,
}

func (s Stage) String() string { return string(s) }
