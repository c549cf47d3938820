package container

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plandeck/plandeck/pkg/config"
)

func testConfig(baseURL string) *config.ContainerConfig {
	return &config.ContainerConfig{
		BaseURL:         baseURL,
		GenerateTimeout: 5 * time.Second,
		MetadataTimeout: 5 * time.Second,
		DetectTimeout:   5 * time.Second,
		TilesTimeout:    5 * time.Second,
	}
}

func TestGenerateImages(t *testing.T) {
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/generate-images", r.URL.Path)
		gotHeaders = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"sheets": [
				{"sheetId": "sheet-0", "width": 3400, "height": 2200, "pageNumber": 1},
				{"sheetId": "sheet-1", "width": 3400, "height": 2200, "pageNumber": 2}
			],
			"totalPages": 2
		}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	result, err := client.GenerateImages(context.Background(), "plan-1", []byte("%PDF-1.7"))
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", gotHeaders.Get("Content-Type"))
	assert.Equal(t, "plan-1", gotHeaders.Get("X-Plan-Id"))
	assert.Equal(t, 2, result.TotalPages)
	require.Len(t, result.Sheets, 2)
	assert.Equal(t, "sheet-0", result.Sheets[0].SheetID)
	assert.Equal(t, 1, result.Sheets[0].PageNumber)
}

func TestRenderPagesDecodesPNG(t *testing.T) {
	pngBytes := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	encoded := base64.StdEncoding.EncodeToString(pngBytes)

	var gotPageNumbers string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/render-pages", r.URL.Path)
		gotPageNumbers = r.Header.Get("X-Page-Numbers")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pages": [{"pageNumber": 3, "pngBase64": "` + encoded + `", "width": 100, "height": 50}]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	pages, err := client.RenderPages(context.Background(), "plan-1", []byte("%PDF-1.7"), []int{3})
	require.NoError(t, err)

	assert.Equal(t, "[3]", gotPageNumbers)
	require.Len(t, pages, 1)
	assert.Equal(t, 3, pages[0].PageNumber)
	assert.Equal(t, pngBytes, pages[0].PNG)
	assert.Equal(t, 100, pages[0].Width)
}

func TestExtractMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/extract-metadata", r.URL.Path)
		assert.Equal(t, "image/png", r.Header.Get("Content-Type"))
		assert.Equal(t, "plan-1", r.Header.Get("X-Plan-Id"))
		assert.Equal(t, "sheet-0", r.Header.Get("X-Sheet-Id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sheetNumber": "A1", "title": "Floor Plan", "discipline": "Architectural", "isValid": true}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	md, err := client.ExtractMetadata(context.Background(), "plan-1", "sheet-0", []byte{1})
	require.NoError(t, err)

	require.NotNil(t, md.SheetNumber)
	assert.Equal(t, "A1", *md.SheetNumber)
	assert.True(t, md.IsValid)
}

func TestExtractMetadataNullSheetNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sheetNumber": null, "isValid": false}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	md, err := client.ExtractMetadata(context.Background(), "plan-1", "sheet-1", []byte{1})
	require.NoError(t, err)

	assert.Nil(t, md.SheetNumber)
	assert.False(t, md.IsValid)
}

func TestDetectCallouts(t *testing.T) {
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/detect-callouts", r.URL.Path)
		gotHeaders = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"markers": [{"id": "m1", "label": "1/A2", "x": 0.5, "y": 0.25, "confidence": 0.9, "needsReview": false, "targetSheetRef": "A2", "targetSheetId": "sheet-1"}],
			"unmatchedCount": 1,
			"grid_bubbles": [{"label": "A", "x": 0.1, "y": 0.0, "width": 0.02, "height": 0.02, "confidence": 0.8}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	result, err := client.DetectCallouts(context.Background(), "plan-1", "sheet-0", "A1", []string{"A1", "A2"}, []byte{1})
	require.NoError(t, err)

	assert.Equal(t, "A1", gotHeaders.Get("X-Sheet-Number"))
	assert.Equal(t, `["A1","A2"]`, gotHeaders.Get("X-Valid-Sheet-Numbers"))
	require.Len(t, result.Markers, 1)
	assert.Equal(t, "1/A2", result.Markers[0].Label)
	assert.Equal(t, 1, result.UnmatchedCount)
	require.Len(t, result.GridBubbles, 1)
	assert.Equal(t, "A", result.GridBubbles[0].Label)
}

func TestDetectLayout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/detect-layout", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"regions": [{"class": "schedule", "bbox": [0.1, 0.2, 0.3, 0.4], "confidence": 0.95}]}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	result, err := client.DetectLayout(context.Background(), "plan-1", "sheet-0", []byte{1})
	require.NoError(t, err)

	require.Len(t, result.Regions, 1)
	assert.Equal(t, "schedule", result.Regions[0].Class)
	assert.Equal(t, [4]float64{0.1, 0.2, 0.3, 0.4}, result.Regions[0].BBox)
}

func TestGenerateTiles(t *testing.T) {
	archive := []byte("PMTiles3-archive-bytes")
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/generate-tiles", r.URL.Path)
		gotHeaders = r.Header.Clone()
		w.Header().Set("X-Min-Zoom", "0")
		w.Header().Set("X-Max-Zoom", "5")
		_, _ = w.Write(archive)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	result, err := client.GenerateTiles(context.Background(), TilesInput{
		OrganizationID: "org-1",
		ProjectID:      "proj-1",
		PlanID:         "plan-1",
		SheetID:        "sheet-0",
	}, []byte{1})
	require.NoError(t, err)

	assert.Equal(t, "org-1", gotHeaders.Get("X-Organization-Id"))
	assert.Equal(t, "proj-1", gotHeaders.Get("X-Project-Id"))
	assert.Equal(t, archive, result.Archive)
	assert.Equal(t, 0, result.MinZoom)
	assert.Equal(t, 5, result.MaxZoom)
}

func TestStatusErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		transient bool
	}{
		{"internal error retries", http.StatusInternalServerError, true},
		{"bad gateway retries", http.StatusBadGateway, true},
		{"not found retries", http.StatusNotFound, true},
		{"bad request is permanent", http.StatusBadRequest, false},
		{"unprocessable is permanent", http.StatusUnprocessableEntity, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			client := NewClient(testConfig(srv.URL))
			_, err := client.DetectLayout(context.Background(), "plan-1", "sheet-0", []byte{1})
			require.Error(t, err)

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, tt.transient, IsTransient(err))
		})
	}
}

func TestTransportErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(testConfig(srv.URL))
	_, err := client.GenerateImages(context.Background(), "plan-1", []byte{1})
	require.Error(t, err)
	assert.True(t, IsTransient(err))
}

func TestMalformedResponseIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.GenerateImages(context.Background(), "plan-1", []byte{1})
	require.Error(t, err)
	assert.False(t, IsTransient(err))
}
