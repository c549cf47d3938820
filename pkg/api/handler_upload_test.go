package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plandeck/plandeck/pkg/events"
	"github.com/plandeck/plandeck/pkg/models"
	"github.com/plandeck/plandeck/pkg/orchestrator"
	"github.com/plandeck/plandeck/pkg/storage"
)

type recordingEnqueuer struct {
	jobs []models.PipelineJob
}

func (r *recordingEnqueuer) Enqueue(_ context.Context, job models.PipelineJob) error {
	r.jobs = append(r.jobs, job)
	return nil
}

func multipartUpload(t *testing.T, fields map[string]string, fileName string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadHandler(t *testing.T) {
	blobs := storage.NewMemStore()
	enq := &recordingEnqueuer{}
	s := &Server{
		blobs:        blobs,
		orchestrator: orchestrator.New(enq, events.NewRecordingSink()),
	}
	e := echo.New()

	body, contentType := multipartUpload(t, map[string]string{
		"organizationId": "org-1",
		"projectId":      "proj-1",
		"planId":         "plan-1",
	}, "tower-a.pdf", []byte("%PDF-1.7"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, s.uploadHandler(c))
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "plan-1", resp.PlanID)
	assert.Equal(t, "organizations/org-1/projects/proj-1/plans/plan-1/source.pdf", resp.ObjectKey)
	assert.Equal(t, "processing", resp.Status)

	data, err := blobs.Get(context.Background(), resp.ObjectKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), data)

	require.Len(t, enq.jobs, 1)
	job := enq.jobs[0].(models.ImageGenJob)
	assert.Equal(t, resp.ObjectKey, job.PDFPath)
	assert.Equal(t, "plan-1", job.PlanID)
}

func TestUploadHandler_GeneratesPlanID(t *testing.T) {
	s := &Server{
		blobs:        storage.NewMemStore(),
		orchestrator: orchestrator.New(&recordingEnqueuer{}, events.NewRecordingSink()),
	}
	e := echo.New()

	body, contentType := multipartUpload(t, map[string]string{
		"organizationId": "org-1",
		"projectId":      "proj-1",
	}, "plan.pdf", []byte("%PDF"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, s.uploadHandler(c))
	var resp UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.PlanID)
	assert.Contains(t, resp.ObjectKey, resp.PlanID)
}

func TestUploadHandler_Validation(t *testing.T) {
	s := &Server{}
	e := echo.New()

	tests := []struct {
		name   string
		fields map[string]string
		file   string
	}{
		{"missing organizationId", map[string]string{"projectId": "p"}, "f.pdf"},
		{"missing projectId", map[string]string{"organizationId": "o"}, "f.pdf"},
		{"missing file", map[string]string{"organizationId": "o", "projectId": "p"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartUpload(t, tt.fields, tt.file, []byte("x"))
			req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
			req.Header.Set(echo.HeaderContentType, contentType)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := s.uploadHandler(c)
			require.Error(t, err)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, he.Code)
		})
	}
}
