// Package coordinator implements the per-plan pipeline state machine.
//
// A plan's state is a durable record of which sheets have completed each
// stage. Stage workers report per-sheet completions; the coordinator
// aggregates them, decides stage transitions, enqueues the next stage's
// jobs, and emits the aggregate events. All operations on one plan are
// serialized; plans never share locks.
package coordinator

import (
	"sort"
	"time"

	"github.com/plandeck/plandeck/pkg/models"
	"github.com/plandeck/plandeck/pkg/paths"
)

// StringSet is a set of sheet ids, persisted as a JSON array.
type StringSet map[string]struct{}

// NewStringSet builds a set from a slice (the persisted form).
func NewStringSet(members []string) StringSet {
	s := make(StringSet, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Add inserts a member, reporting whether it was new.
func (s StringSet) Add(member string) bool {
	if _, ok := s[member]; ok {
		return false
	}
	s[member] = struct{}{}
	return true
}

// Has reports membership.
func (s StringSet) Has(member string) bool {
	_, ok := s[member]
	return ok
}

// Sorted returns the members ordered by sheet index, with any non-sheet
// members last in lexical order. This is the persisted and dispatched
// order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		ii, erri := paths.SheetIndex(out[i])
		ji, errj := paths.SheetIndex(out[j])
		if erri == nil && errj == nil {
			return ii < ji
		}
		if erri == nil {
			return true
		}
		if errj == nil {
			return false
		}
		return out[i] < out[j]
	})
	return out
}

// State is one plan's durable coordinator record.
type State struct {
	PlanID         string
	ProjectID      string
	OrganizationID string
	PlanName       string
	TotalSheets    int
	Status         models.PlanStatus

	GeneratedImages   StringSet
	ExtractedMetadata StringSet
	ValidSheets       StringSet
	SheetNumberMap    map[string]string
	DetectedCallouts  StringSet
	DetectedLayouts   StringSet
	GeneratedTiles    StringSet

	LastError   string
	CreatedAt   time.Time
	DeadlineAt  time.Time
	CompletedAt time.Time
}

// Ref returns the plan's tenancy keys.
func (s *State) Ref() models.TenantRef {
	return models.TenantRef{
		OrganizationID: s.OrganizationID,
		ProjectID:      s.ProjectID,
		PlanID:         s.PlanID,
	}
}

// StageProgress is one stage's completion count.
type StageProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Progress is the per-stage completion snapshot returned by GetProgress.
// Totals for the detection and tile stages are the valid-sheet count.
type Progress struct {
	Status             models.PlanStatus `json:"status"`
	ImageGeneration    StageProgress     `json:"imageGeneration"`
	MetadataExtraction StageProgress     `json:"metadataExtraction"`
	CalloutDetection   StageProgress     `json:"calloutDetection"`
	LayoutDetection    StageProgress     `json:"layoutDetection"`
	TileGeneration     StageProgress     `json:"tileGeneration"`
}

// ProgressSnapshot computes the per-stage counts from the state.
func (s *State) ProgressSnapshot() Progress {
	valid := len(s.ValidSheets)
	return Progress{
		Status:             s.Status,
		ImageGeneration:    StageProgress{Completed: len(s.GeneratedImages), Total: s.TotalSheets},
		MetadataExtraction: StageProgress{Completed: len(s.ExtractedMetadata), Total: s.TotalSheets},
		CalloutDetection:   StageProgress{Completed: len(s.DetectedCallouts), Total: valid},
		LayoutDetection:    StageProgress{Completed: len(s.DetectedLayouts), Total: valid},
		TileGeneration:     StageProgress{Completed: len(s.GeneratedTiles), Total: valid},
	}
}

// percentFor maps a newly entered status to the cumulative pipeline
// percentage announced in planProcessingProgress events.
func percentFor(status models.PlanStatus) (int, bool) {
	switch status {
	case models.StatusMetadataExtraction:
		return 20, true
	case models.StatusParallelDetection:
		return 40, true
	case models.StatusTileGeneration:
		return 80, true
	case models.StatusComplete:
		return 100, true
	}
	return 0, false
}
