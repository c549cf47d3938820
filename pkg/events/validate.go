package events

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// fieldSpec lists the permitted keys of one event's data object.
// required keys must be present; optional keys may be. Anything else is
// schema drift and rejected at commit time.
type fieldSpec struct {
	required []string
	optional []string
}

var eventSchemas = map[string]fieldSpec{
	EventPlanProcessingStarted: {
		required: []string{"planId", "startedAt"},
	},
	EventPlanProcessingProgress: {
		required: []string{"planId", "progress"},
	},
	EventSheetImageGenerated: {
		required: []string{"sheetId", "projectId", "planId", "planName", "pageNumber", "localImagePath", "width", "height", "generatedAt"},
		optional: []string{"remoteImagePath"},
	},
	EventSheetMetadataExtracted: {
		required: []string{"sheetId", "planId", "sheetNumber", "extractedAt"},
		optional: []string{"sheetTitle", "discipline"},
	},
	EventPlanMetadataCompleted: {
		required: []string{"planId", "validSheets", "sheetNumberMap", "completedAt"},
	},
	EventSheetCalloutsDetected: {
		required: []string{"sheetId", "planId", "markers", "unmatchedCount", "detectedAt"},
	},
	EventSheetGridBubblesDetected: {
		required: []string{"sheetId", "bubbles", "detectedAt"},
	},
	EventSheetLayoutRegionsDetected: {
		required: []string{"sheetId", "regions", "detectedAt"},
	},
	EventSheetTilesGenerated: {
		required: []string{"sheetId", "planId", "localPmtilesPath", "minZoom", "maxZoom", "generatedAt"},
		optional: []string{"remotePmtilesPath"},
	},
	EventPlanProcessingCompleted: {
		required: []string{"planId", "sheetCount", "completedAt"},
	},
	EventPlanProcessingFailed: {
		required: []string{"planId", "error", "failedAt"},
	},
}

// ValidatePayload checks a marshaled event data object against the schema
// for its event name: every required key present, no keys outside the
// schema. Called by the Publisher before any commit.
func ValidatePayload(name string, data []byte) error {
	spec, ok := eventSchemas[name]
	if !ok {
		return fmt.Errorf("unknown event name %q", name)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("event %s data is not a JSON object: %w", name, err)
	}

	allowed := make(map[string]bool, len(spec.required)+len(spec.optional))
	for _, k := range spec.required {
		allowed[k] = true
	}
	for _, k := range spec.optional {
		allowed[k] = true
	}

	var extra []string
	for k := range fields {
		if !allowed[k] {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return fmt.Errorf("event %s carries fields outside its schema: %s", name, strings.Join(extra, ", "))
	}

	var missing []string
	for _, k := range spec.required {
		if _, ok := fields[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("event %s is missing required fields: %s", name, strings.Join(missing, ", "))
	}

	return nil
}
