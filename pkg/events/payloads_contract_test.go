package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plandeck/plandeck/pkg/models"
)

// jsonKeys marshals a payload and returns the set of top-level keys.
func jsonKeys(t *testing.T, v Event) map[string]bool {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	keys := make(map[string]bool, len(m))
	for k := range m {
		keys[k] = true
	}
	return keys
}

// Viewers parse these payloads by field name. Each case pins the exact key
// set a fully-populated payload serializes to, and that every payload
// passes its own schema check.
func TestPayloadWireContract(t *testing.T) {
	tests := []struct {
		payload Event
		keys    []string
	}{
		{
			PlanProcessingStartedPayload{PlanID: "p", StartedAt: 1},
			[]string{"planId", "startedAt"},
		},
		{
			PlanProcessingProgressPayload{PlanID: "p", Progress: 40},
			[]string{"planId", "progress"},
		},
		{
			SheetImageGeneratedPayload{
				SheetID: "sheet-0", ProjectID: "proj", PlanID: "p", PlanName: "n",
				PageNumber: 1, LocalImagePath: "x", Width: 10, Height: 20,
				GeneratedAt: 1, RemoteImagePath: "y",
			},
			[]string{"sheetId", "projectId", "planId", "planName", "pageNumber", "localImagePath", "width", "height", "generatedAt", "remoteImagePath"},
		},
		{
			SheetMetadataExtractedPayload{
				SheetID: "sheet-0", PlanID: "p", SheetNumber: "A1",
				ExtractedAt: 1, SheetTitle: "t", Discipline: "d",
			},
			[]string{"sheetId", "planId", "sheetNumber", "extractedAt", "sheetTitle", "discipline"},
		},
		{
			PlanMetadataCompletedPayload{
				PlanID: "p", ValidSheets: []string{"sheet-0"},
				SheetNumberMap: map[string]string{"sheet-0": "A1"}, CompletedAt: 1,
			},
			[]string{"planId", "validSheets", "sheetNumberMap", "completedAt"},
		},
		{
			SheetCalloutsDetectedPayload{
				SheetID: "sheet-0", PlanID: "p", Markers: []models.Marker{},
				UnmatchedCount: 0, DetectedAt: 1,
			},
			[]string{"sheetId", "planId", "markers", "unmatchedCount", "detectedAt"},
		},
		{
			SheetGridBubblesDetectedPayload{
				SheetID: "sheet-0", Bubbles: []models.GridBubble{}, DetectedAt: 1,
			},
			[]string{"sheetId", "bubbles", "detectedAt"},
		},
		{
			SheetLayoutRegionsDetectedPayload{
				SheetID: "sheet-0", Regions: []models.LayoutRegion{}, DetectedAt: 1,
			},
			[]string{"sheetId", "regions", "detectedAt"},
		},
		{
			SheetTilesGeneratedPayload{
				SheetID: "sheet-0", PlanID: "p", LocalPmtilesPath: "x",
				MinZoom: 0, MaxZoom: 5, GeneratedAt: 1, RemotePmtilesPath: "y",
			},
			[]string{"sheetId", "planId", "localPmtilesPath", "minZoom", "maxZoom", "generatedAt", "remotePmtilesPath"},
		},
		{
			PlanProcessingCompletedPayload{PlanID: "p", SheetCount: 1, CompletedAt: 1},
			[]string{"planId", "sheetCount", "completedAt"},
		},
		{
			PlanProcessingFailedPayload{PlanID: "p", Error: "e", FailedAt: 1},
			[]string{"planId", "error", "failedAt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.payload.EventName(), func(t *testing.T) {
			got := jsonKeys(t, tt.payload)
			require.Len(t, got, len(tt.keys))
			for _, k := range tt.keys {
				assert.True(t, got[k], "missing key %q", k)
			}

			data, err := json.Marshal(tt.payload)
			require.NoError(t, err)
			assert.NoError(t, ValidatePayload(tt.payload.EventName(), data))
		})
	}
}

// Required numeric fields must serialize even at their zero value —
// omitempty on progress would silently drop "0" from the first progress
// event.
func TestZeroValuedRequiredFieldsSerialize(t *testing.T) {
	data, err := json.Marshal(PlanProcessingProgressPayload{PlanID: "p", Progress: 0})
	require.NoError(t, err)
	assert.JSONEq(t, `{"planId": "p", "progress": 0}`, string(data))

	data, err = json.Marshal(PlanProcessingCompletedPayload{PlanID: "p", SheetCount: 0, CompletedAt: 5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"planId": "p", "sheetCount": 0, "completedAt": 5}`, string(data))
}

// Optional fields are absent, not null, when unset.
func TestOptionalFieldsOmittedWhenUnset(t *testing.T) {
	data, err := json.Marshal(SheetMetadataExtractedPayload{
		SheetID: "sheet-0", PlanID: "p", SheetNumber: "A1", ExtractedAt: 1,
	})
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	assert.NotContains(t, m, "sheetTitle")
	assert.NotContains(t, m, "discipline")
}

func TestValidateRejectsExtraFields(t *testing.T) {
	err := ValidatePayload(EventPlanProcessingStarted,
		[]byte(`{"planId": "p", "startedAt": 1, "debug": true}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debug")
}

func TestValidateRejectsMissingRequired(t *testing.T) {
	err := ValidatePayload(EventPlanProcessingFailed, []byte(`{"planId": "p"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error")
	assert.Contains(t, err.Error(), "failedAt")
}

func TestValidateRejectsUnknownName(t *testing.T) {
	err := ValidatePayload("planExploded", []byte(`{}`))
	require.Error(t, err)
}

func TestDedupeKeys(t *testing.T) {
	assert.Equal(t, "sheet-3", SheetImageGeneratedPayload{SheetID: "sheet-3"}.DedupeKey())
	assert.Equal(t, "plan", PlanProcessingCompletedPayload{}.DedupeKey())
	assert.Equal(t, "progress:40", PlanProcessingProgressPayload{Progress: 40}.DedupeKey())
}

func TestChannelNames(t *testing.T) {
	assert.Equal(t, "plan:abc", PlanChannel("abc"))
	assert.Equal(t, "org:o1", OrgChannel("o1"))
}

func TestRecordingSinkDedupes(t *testing.T) {
	sink := NewRecordingSink()
	ref := models.TenantRef{OrganizationID: "o", ProjectID: "p", PlanID: "plan-1"}

	evt := SheetCalloutsDetectedPayload{
		SheetID: "sheet-0", PlanID: "plan-1",
		Markers: []models.Marker{}, DetectedAt: 1,
	}
	require.NoError(t, sink.Publish(t.Context(), ref, evt))
	require.NoError(t, sink.Publish(t.Context(), ref, evt))

	assert.Len(t, sink.ByName(EventSheetCalloutsDetected), 1)
}
