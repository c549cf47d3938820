package stages

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plandeck/plandeck/ent"
	"github.com/plandeck/plandeck/pkg/config"
	"github.com/plandeck/plandeck/pkg/container"
	"github.com/plandeck/plandeck/pkg/coordinator"
	"github.com/plandeck/plandeck/pkg/events"
	"github.com/plandeck/plandeck/pkg/models"
	"github.com/plandeck/plandeck/pkg/paths"
	"github.com/plandeck/plandeck/pkg/storage"
)

var testRef = models.TenantRef{
	OrganizationID: "org-1",
	ProjectID:      "proj-1",
	PlanID:         "plan-1",
}

// reporterCall records one coordinator report.
type reporterCall struct {
	Method      string
	PlanID      string
	SheetID     string
	IsValid     bool
	SheetNumber *string
	TotalSheets int
	ErrMsg      string
}

// fakeReporter records coordinator reports and optionally fails them.
type fakeReporter struct {
	mu    sync.Mutex
	calls []reporterCall
	err   error
}

func (f *fakeReporter) record(c reporterCall) (*coordinator.State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.calls = append(f.calls, c)
	return &coordinator.State{}, nil
}

func (f *fakeReporter) Initialize(_ context.Context, ref models.TenantRef, _ string, totalSheets int, _ time.Duration) (*coordinator.State, error) {
	return f.record(reporterCall{Method: "Initialize", PlanID: ref.PlanID, TotalSheets: totalSheets})
}

func (f *fakeReporter) SheetImageGenerated(_ context.Context, planID, sheetID string) (*coordinator.State, error) {
	return f.record(reporterCall{Method: "SheetImageGenerated", PlanID: planID, SheetID: sheetID})
}

func (f *fakeReporter) SheetMetadataExtracted(_ context.Context, planID, sheetID string, isValid bool, sheetNumber *string) (*coordinator.State, error) {
	return f.record(reporterCall{Method: "SheetMetadataExtracted", PlanID: planID, SheetID: sheetID, IsValid: isValid, SheetNumber: sheetNumber})
}

func (f *fakeReporter) SheetCalloutsDetected(_ context.Context, planID, sheetID string) (*coordinator.State, error) {
	return f.record(reporterCall{Method: "SheetCalloutsDetected", PlanID: planID, SheetID: sheetID})
}

func (f *fakeReporter) SheetLayoutDetected(_ context.Context, planID, sheetID string) (*coordinator.State, error) {
	return f.record(reporterCall{Method: "SheetLayoutDetected", PlanID: planID, SheetID: sheetID})
}

func (f *fakeReporter) SheetTilesGenerated(_ context.Context, planID, sheetID string) (*coordinator.State, error) {
	return f.record(reporterCall{Method: "SheetTilesGenerated", PlanID: planID, SheetID: sheetID})
}

func (f *fakeReporter) MarkFailed(_ context.Context, planID, errMsg string) (*coordinator.State, error) {
	return f.record(reporterCall{Method: "MarkFailed", PlanID: planID, ErrMsg: errMsg})
}

func (f *fakeReporter) byMethod(method string) []reporterCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []reporterCall
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// fakeSheets records sheet persistence calls by sheet ID.
type fakeSheets struct {
	mu       sync.Mutex
	images   []string
	metadata []string
	tiles    []string
}

func (f *fakeSheets) UpsertImage(_ context.Context, _ models.TenantRef, sheetID string, _, _, _ int, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.images = append(f.images, sheetID)
	return nil
}

func (f *fakeSheets) UpsertMetadata(_ context.Context, _ models.TenantRef, sheetID string, _ *container.Metadata) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.metadata = append(f.metadata, sheetID)
	return nil
}

func (f *fakeSheets) RecordTilesPath(_ context.Context, _ models.TenantRef, sheetID, _ string, _, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tiles = append(f.tiles, sheetID)
	return nil
}

func testClient(t *testing.T, handler http.Handler) *container.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return container.NewClient(&config.ContainerConfig{
		BaseURL:         srv.URL,
		GenerateTimeout: 5 * time.Second,
		MetadataTimeout: 5 * time.Second,
		DetectTimeout:   5 * time.Second,
		TilesTimeout:    5 * time.Second,
	})
}

func stageJob(t *testing.T, job models.PipelineJob) *ent.StageJob {
	t.Helper()
	payload, err := json.Marshal(job)
	require.NoError(t, err)
	return &ent.StageJob{Payload: payload}
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func pngKey(sheetID string) string {
	return paths.SheetPNG(testRef.OrganizationID, testRef.ProjectID, testRef.PlanID, sheetID)
}

func TestImageGenExecutor_HappyPath(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/generate-images", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "plan-1", r.Header.Get("X-Plan-Id"))
		writeJSON(t, w, map[string]any{
			"sheets": []map[string]any{
				{"sheetId": "sheet-1", "pageNumber": 1, "width": 3000, "height": 2000},
				{"sheetId": "sheet-2", "pageNumber": 2, "width": 3000, "height": 2000},
			},
			"totalPages": 2,
		})
	})
	mux.HandleFunc("/render-pages", func(w http.ResponseWriter, r *http.Request) {
		var pages []int
		require.NoError(t, json.Unmarshal([]byte(r.Header.Get("X-Page-Numbers")), &pages))
		rendered := make([]map[string]any, 0, len(pages))
		for _, p := range pages {
			rendered = append(rendered, map[string]any{
				"pageNumber": p,
				"pngBase64":  base64.StdEncoding.EncodeToString([]byte("png")),
				"width":      3000,
				"height":     2000,
			})
		}
		writeJSON(t, w, map[string]any{"pages": rendered})
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), "uploads/plan.pdf", []byte("%PDF")))
	rep := &fakeReporter{}
	sink := events.NewRecordingSink()
	sheets := &fakeSheets{}
	exec := NewImageGenExecutor(blobs, testClient(t, mux), rep, sink, sheets, 1)

	out := exec.Execute(context.Background(), stageJob(t, models.ImageGenJob{
		TenantRef: testRef,
		PDFPath:   "uploads/plan.pdf",
		PlanName:  "Tower A",
	}))
	require.False(t, out.Retry)
	require.NoError(t, out.Err)

	inits := rep.byMethod("Initialize")
	require.Len(t, inits, 1)
	assert.Equal(t, 2, inits[0].TotalSheets)

	reports := rep.byMethod("SheetImageGenerated")
	require.Len(t, reports, 2)
	assert.Equal(t, "sheet-1", reports[0].SheetID)
	assert.Equal(t, "sheet-2", reports[1].SheetID)

	for _, id := range []string{"sheet-1", "sheet-2"} {
		data, err := blobs.Get(context.Background(), pngKey(id))
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), data)
	}

	evts := sink.ByName(events.EventSheetImageGenerated)
	require.Len(t, evts, 2)
	first := evts[0].Event.(events.SheetImageGeneratedPayload)
	assert.Equal(t, "sheet-1", first.SheetID)
	assert.Equal(t, "Tower A", first.PlanName)
	assert.Equal(t, pngKey("sheet-1"), first.LocalImagePath)
	assert.Equal(t, []string{"sheet-1", "sheet-2"}, sheets.images)
}

func TestImageGenExecutor_CorruptedPDFFailsPlan(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/generate-images", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), "uploads/plan.pdf", []byte("garbage")))
	rep := &fakeReporter{}
	exec := NewImageGenExecutor(blobs, testClient(t, mux), rep, events.NewRecordingSink(), nil, 4)

	out := exec.Execute(context.Background(), stageJob(t, models.ImageGenJob{TenantRef: testRef, PDFPath: "uploads/plan.pdf"}))
	require.False(t, out.Retry)
	require.Error(t, out.Err)

	failed := rep.byMethod("MarkFailed")
	require.Len(t, failed, 1)
	assert.Equal(t, "Corrupted or unreadable PDF", failed[0].ErrMsg)
	assert.Empty(t, rep.byMethod("Initialize"))
}

func TestImageGenExecutor_TransientContainerFailureRetries(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/generate-images", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), "uploads/plan.pdf", []byte("%PDF")))
	rep := &fakeReporter{}
	exec := NewImageGenExecutor(blobs, testClient(t, mux), rep, events.NewRecordingSink(), nil, 4)

	out := exec.Execute(context.Background(), stageJob(t, models.ImageGenJob{TenantRef: testRef, PDFPath: "uploads/plan.pdf"}))
	assert.True(t, out.Retry)
	assert.Empty(t, rep.byMethod("MarkFailed"))
}

func TestImageGenExecutor_MissingPDFRetries(t *testing.T) {
	exec := NewImageGenExecutor(storage.NewMemStore(), testClient(t, http.NewServeMux()), &fakeReporter{}, events.NewRecordingSink(), nil, 4)
	out := exec.Execute(context.Background(), stageJob(t, models.ImageGenJob{TenantRef: testRef, PDFPath: "uploads/missing.pdf"}))
	assert.True(t, out.Retry)
}

func TestImageGenExecutor_MalformedPayloadAcksFailure(t *testing.T) {
	exec := NewImageGenExecutor(storage.NewMemStore(), testClient(t, http.NewServeMux()), &fakeReporter{}, events.NewRecordingSink(), nil, 4)
	out := exec.Execute(context.Background(), &ent.StageJob{Payload: json.RawMessage(`{"planId":`)})
	assert.False(t, out.Retry)
	assert.Error(t, out.Err)
}

func TestMetadataExecutor_ValidSheet(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/extract-metadata", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sheet-1", r.Header.Get("X-Sheet-Id"))
		writeJSON(t, w, map[string]any{
			"sheetNumber": "A1",
			"title":       "Floor Plan",
			"discipline":  "Architectural",
			"isValid":     true,
		})
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), pngKey("sheet-1"), []byte("png")))
	rep := &fakeReporter{}
	sink := events.NewRecordingSink()
	sheets := &fakeSheets{}
	exec := NewMetadataExecutor(blobs, testClient(t, mux), rep, sink, sheets)

	out := exec.Execute(context.Background(), stageJob(t, models.MetadataJob{TenantRef: testRef, SheetID: "sheet-1", SheetNumber: 1, TotalSheets: 1}))
	require.False(t, out.Retry)
	require.NoError(t, out.Err)

	reports := rep.byMethod("SheetMetadataExtracted")
	require.Len(t, reports, 1)
	assert.True(t, reports[0].IsValid)
	require.NotNil(t, reports[0].SheetNumber)
	assert.Equal(t, "A1", *reports[0].SheetNumber)

	evts := sink.ByName(events.EventSheetMetadataExtracted)
	require.Len(t, evts, 1)
	payload := evts[0].Event.(events.SheetMetadataExtractedPayload)
	assert.Equal(t, "A1", payload.SheetNumber)
	assert.Equal(t, "Floor Plan", payload.SheetTitle)
	assert.Equal(t, []string{"sheet-1"}, sheets.metadata)
}

func TestMetadataExecutor_PermanentFailureAbsorbedAsInvalid(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/extract-metadata", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), pngKey("sheet-1"), []byte("png")))
	rep := &fakeReporter{}
	sink := events.NewRecordingSink()
	exec := NewMetadataExecutor(blobs, testClient(t, mux), rep, sink, nil)

	out := exec.Execute(context.Background(), stageJob(t, models.MetadataJob{TenantRef: testRef, SheetID: "sheet-1"}))
	assert.False(t, out.Retry)
	assert.Error(t, out.Err)

	reports := rep.byMethod("SheetMetadataExtracted")
	require.Len(t, reports, 1)
	assert.False(t, reports[0].IsValid)
	assert.Nil(t, reports[0].SheetNumber)
	assert.Empty(t, sink.Events())
}

func TestMetadataExecutor_TransientFailureRetriesWithoutReport(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/extract-metadata", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), pngKey("sheet-1"), []byte("png")))
	rep := &fakeReporter{}
	exec := NewMetadataExecutor(blobs, testClient(t, mux), rep, events.NewRecordingSink(), nil)

	out := exec.Execute(context.Background(), stageJob(t, models.MetadataJob{TenantRef: testRef, SheetID: "sheet-1"}))
	assert.True(t, out.Retry)
	assert.Empty(t, rep.byMethod("SheetMetadataExtracted"))
}

func TestMetadataExecutor_InvalidSheetEmitsNoEvent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/extract-metadata", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{"sheetNumber": nil, "isValid": false})
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), pngKey("sheet-1"), []byte("png")))
	rep := &fakeReporter{}
	sink := events.NewRecordingSink()
	exec := NewMetadataExecutor(blobs, testClient(t, mux), rep, sink, nil)

	out := exec.Execute(context.Background(), stageJob(t, models.MetadataJob{TenantRef: testRef, SheetID: "sheet-1"}))
	require.False(t, out.Retry)
	require.NoError(t, out.Err)

	reports := rep.byMethod("SheetMetadataExtracted")
	require.Len(t, reports, 1)
	assert.False(t, reports[0].IsValid)
	assert.Empty(t, sink.Events())
}

func TestCalloutExecutor_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/detect-callouts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "A1", r.Header.Get("X-Sheet-Number"))
		assert.JSONEq(t, `["A1","A2"]`, r.Header.Get("X-Valid-Sheet-Numbers"))
		writeJSON(t, w, map[string]any{
			"markers": []map[string]any{
				{"id": "m-1", "label": "5/A2", "x": 0.5, "y": 0.25, "confidence": 0.9, "needsReview": false, "targetSheetRef": "A2"},
			},
			"unmatchedCount": 1,
			"grid_bubbles": []map[string]any{
				{"label": "A", "x": 0.1, "y": 0.1, "width": 0.02, "height": 0.02, "confidence": 0.8},
			},
		})
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), pngKey("sheet-1"), []byte("png")))
	rep := &fakeReporter{}
	sink := events.NewRecordingSink()
	exec := NewCalloutExecutor(blobs, testClient(t, mux), rep, sink)

	out := exec.Execute(context.Background(), stageJob(t, models.CalloutJob{
		TenantRef:         testRef,
		SheetID:           "sheet-1",
		SheetNumber:       "A1",
		ValidSheetNumbers: []string{"A1", "A2"},
	}))
	require.False(t, out.Retry)
	require.NoError(t, out.Err)

	require.Len(t, rep.byMethod("SheetCalloutsDetected"), 1)

	callouts := sink.ByName(events.EventSheetCalloutsDetected)
	require.Len(t, callouts, 1)
	payload := callouts[0].Event.(events.SheetCalloutsDetectedPayload)
	require.Len(t, payload.Markers, 1)
	assert.Equal(t, "A2", payload.Markers[0].TargetSheetRef)
	assert.Equal(t, 1, payload.UnmatchedCount)

	require.Len(t, sink.ByName(events.EventSheetGridBubblesDetected), 1)
}

func TestCalloutExecutor_NoGridBubblesSkipsBubbleEvent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/detect-callouts", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{"markers": nil, "unmatchedCount": 0})
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), pngKey("sheet-1"), []byte("png")))
	sink := events.NewRecordingSink()
	exec := NewCalloutExecutor(blobs, testClient(t, mux), &fakeReporter{}, sink)

	out := exec.Execute(context.Background(), stageJob(t, models.CalloutJob{TenantRef: testRef, SheetID: "sheet-1"}))
	require.False(t, out.Retry)
	require.NoError(t, out.Err)

	callouts := sink.ByName(events.EventSheetCalloutsDetected)
	require.Len(t, callouts, 1)
	assert.NotNil(t, callouts[0].Event.(events.SheetCalloutsDetectedPayload).Markers)
	assert.Empty(t, sink.ByName(events.EventSheetGridBubblesDetected))
}

func TestCalloutExecutor_PermanentFailureReportsSlot(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/detect-callouts", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), pngKey("sheet-1"), []byte("png")))
	rep := &fakeReporter{}
	sink := events.NewRecordingSink()
	exec := NewCalloutExecutor(blobs, testClient(t, mux), rep, sink)

	out := exec.Execute(context.Background(), stageJob(t, models.CalloutJob{TenantRef: testRef, SheetID: "sheet-1"}))
	assert.False(t, out.Retry)
	assert.Error(t, out.Err)
	require.Len(t, rep.byMethod("SheetCalloutsDetected"), 1)
	assert.Empty(t, sink.Events())
}

func TestCalloutExecutor_TransientFailureRetries(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/detect-callouts", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), pngKey("sheet-1"), []byte("png")))
	rep := &fakeReporter{}
	exec := NewCalloutExecutor(blobs, testClient(t, mux), rep, events.NewRecordingSink())

	out := exec.Execute(context.Background(), stageJob(t, models.CalloutJob{TenantRef: testRef, SheetID: "sheet-1"}))
	assert.True(t, out.Retry)
	assert.Empty(t, rep.byMethod("SheetCalloutsDetected"))
}

func TestLayoutExecutor_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/detect-layout", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{
			"regions": []map[string]any{
				{"class": "drawing_area", "bbox": []float64{0, 0, 0.8, 1}, "confidence": 0.95},
			},
		})
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), pngKey("sheet-1"), []byte("png")))
	rep := &fakeReporter{}
	sink := events.NewRecordingSink()
	exec := NewLayoutExecutor(blobs, testClient(t, mux), rep, sink)

	out := exec.Execute(context.Background(), stageJob(t, models.LayoutJob{TenantRef: testRef, SheetID: "sheet-1"}))
	require.False(t, out.Retry)
	require.NoError(t, out.Err)

	require.Len(t, rep.byMethod("SheetLayoutDetected"), 1)
	regions := sink.ByName(events.EventSheetLayoutRegionsDetected)
	require.Len(t, regions, 1)
	payload := regions[0].Event.(events.SheetLayoutRegionsDetectedPayload)
	require.Len(t, payload.Regions, 1)
	assert.Equal(t, "drawing_area", payload.Regions[0].Class)
}

func TestLayoutExecutor_ContainerFailureAbsorbed(t *testing.T) {
	// Layout never retries: a 500 is absorbed, the slot is reported, and no
	// layout event is emitted.
	mux := http.NewServeMux()
	mux.HandleFunc("/detect-layout", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), pngKey("sheet-1"), []byte("png")))
	rep := &fakeReporter{}
	sink := events.NewRecordingSink()
	exec := NewLayoutExecutor(blobs, testClient(t, mux), rep, sink)

	out := exec.Execute(context.Background(), stageJob(t, models.LayoutJob{TenantRef: testRef, SheetID: "sheet-1"}))
	assert.False(t, out.Retry)
	assert.Error(t, out.Err)
	require.Len(t, rep.byMethod("SheetLayoutDetected"), 1)
	assert.Empty(t, sink.Events())
}

func TestLayoutExecutor_MissingBlobAbsorbed(t *testing.T) {
	rep := &fakeReporter{}
	exec := NewLayoutExecutor(storage.NewMemStore(), testClient(t, http.NewServeMux()), rep, events.NewRecordingSink())

	out := exec.Execute(context.Background(), stageJob(t, models.LayoutJob{TenantRef: testRef, SheetID: "sheet-1"}))
	assert.False(t, out.Retry)
	assert.Error(t, out.Err)
	require.Len(t, rep.byMethod("SheetLayoutDetected"), 1)
}

func TestLayoutExecutor_StoreFailureRetries(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/detect-layout", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{"regions": nil})
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), pngKey("sheet-1"), []byte("png")))
	rep := &fakeReporter{err: context.DeadlineExceeded}
	exec := NewLayoutExecutor(blobs, testClient(t, mux), rep, events.NewRecordingSink())

	out := exec.Execute(context.Background(), stageJob(t, models.LayoutJob{TenantRef: testRef, SheetID: "sheet-1"}))
	assert.True(t, out.Retry)
}

func TestTilesExecutor_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/generate-tiles", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "org-1", r.Header.Get("X-Organization-Id"))
		assert.Equal(t, "proj-1", r.Header.Get("X-Project-Id"))
		w.Header().Set("X-Min-Zoom", "0")
		w.Header().Set("X-Max-Zoom", "5")
		_, _ = w.Write([]byte("pmtiles-archive"))
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), pngKey("sheet-1"), []byte("png")))
	rep := &fakeReporter{}
	sink := events.NewRecordingSink()
	sheets := &fakeSheets{}
	exec := NewTilesExecutor(blobs, testClient(t, mux), rep, sink, sheets)

	out := exec.Execute(context.Background(), stageJob(t, models.TilesJob{TenantRef: testRef, SheetID: "sheet-1"}))
	require.False(t, out.Retry)
	require.NoError(t, out.Err)

	tilesKey := paths.SheetTiles(testRef.OrganizationID, testRef.ProjectID, testRef.PlanID, "sheet-1")
	data, err := blobs.Get(context.Background(), tilesKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("pmtiles-archive"), data)

	require.Len(t, rep.byMethod("SheetTilesGenerated"), 1)
	evts := sink.ByName(events.EventSheetTilesGenerated)
	require.Len(t, evts, 1)
	payload := evts[0].Event.(events.SheetTilesGeneratedPayload)
	assert.Equal(t, tilesKey, payload.LocalPmtilesPath)
	assert.Equal(t, 0, payload.MinZoom)
	assert.Equal(t, 5, payload.MaxZoom)
	assert.Equal(t, []string{"sheet-1"}, sheets.tiles)
}

func TestTilesExecutor_PermanentFailureReportsSlot(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/generate-tiles", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), pngKey("sheet-1"), []byte("png")))
	rep := &fakeReporter{}
	sink := events.NewRecordingSink()
	exec := NewTilesExecutor(blobs, testClient(t, mux), rep, sink, nil)

	out := exec.Execute(context.Background(), stageJob(t, models.TilesJob{TenantRef: testRef, SheetID: "sheet-1"}))
	assert.False(t, out.Retry)
	assert.Error(t, out.Err)
	require.Len(t, rep.byMethod("SheetTilesGenerated"), 1)
	assert.Empty(t, sink.Events())

	tilesKey := paths.SheetTiles(testRef.OrganizationID, testRef.ProjectID, testRef.PlanID, "sheet-1")
	exists, err := blobs.Exists(context.Background(), tilesKey)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTilesExecutor_TransientFailureRetries(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/generate-tiles", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	blobs := storage.NewMemStore()
	require.NoError(t, blobs.Put(context.Background(), pngKey("sheet-1"), []byte("png")))
	rep := &fakeReporter{}
	exec := NewTilesExecutor(blobs, testClient(t, mux), rep, events.NewRecordingSink(), nil)

	out := exec.Execute(context.Background(), stageJob(t, models.TilesJob{TenantRef: testRef, SheetID: "sheet-1"}))
	assert.True(t, out.Retry)
	assert.Empty(t, rep.byMethod("SheetTilesGenerated"))
}
