package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plandeck/plandeck/pkg/events"
	"github.com/plandeck/plandeck/pkg/models"
)

type fakeEnqueuer struct {
	jobs []models.PipelineJob
	err  error
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, job models.PipelineJob) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, job)
	return nil
}

func uploadNotification(action, key string) models.UploadNotification {
	return models.UploadNotification{
		Bucket:    "plandeck",
		ObjectKey: key,
		Action:    action,
		Size:      1024,
		EventTime: time.Now(),
	}
}

func TestHandleUploadNotification_StartsPipeline(t *testing.T) {
	queue := &fakeEnqueuer{}
	sink := events.NewRecordingSink()
	orch := New(queue, sink)

	key := "organizations/org-1/projects/proj-1/plans/plan-1/source.pdf"
	err := orch.HandleUploadNotification(context.Background(), uploadNotification(models.ActionPutObject, key))
	require.NoError(t, err)

	require.Len(t, queue.jobs, 1)
	job, ok := queue.jobs[0].(models.ImageGenJob)
	require.True(t, ok)
	assert.Equal(t, "org-1", job.OrganizationID)
	assert.Equal(t, "proj-1", job.ProjectID)
	assert.Equal(t, "plan-1", job.PlanID)
	assert.Equal(t, key, job.PDFPath)

	started := sink.ByName(events.EventPlanProcessingStarted)
	require.Len(t, started, 1)
	assert.Equal(t, "plan-1", started[0].Event.(events.PlanProcessingStartedPayload).PlanID)
}

func TestHandleUploadNotification_MultipartUploadStartsPipeline(t *testing.T) {
	queue := &fakeEnqueuer{}
	orch := New(queue, events.NewRecordingSink())

	key := "organizations/o/projects/p/plans/pl/source.pdf"
	err := orch.HandleUploadNotification(context.Background(), uploadNotification(models.ActionCompleteMultipartUpload, key))
	require.NoError(t, err)
	assert.Len(t, queue.jobs, 1)
}

func TestHandleUploadNotification_IgnoresDeletes(t *testing.T) {
	queue := &fakeEnqueuer{}
	sink := events.NewRecordingSink()
	orch := New(queue, sink)

	key := "organizations/o/projects/p/plans/pl/source.pdf"
	err := orch.HandleUploadNotification(context.Background(), uploadNotification(models.ActionDeleteObject, key))
	require.NoError(t, err)
	assert.Empty(t, queue.jobs)
	assert.Empty(t, sink.Events())
}

func TestHandleUploadNotification_IgnoresNonCanonicalKeys(t *testing.T) {
	queue := &fakeEnqueuer{}
	sink := events.NewRecordingSink()
	orch := New(queue, sink)

	for _, key := range []string{
		"organizations/o/projects/p/plans/pl/sheets/sheet-0/source.png",
		"organizations/o/projects/p/plans/pl/source.PDF",
		"uploads/random.pdf",
		"organizations/o/projects/p/plans/pl/source.pdf/extra",
	} {
		err := orch.HandleUploadNotification(context.Background(), uploadNotification(models.ActionPutObject, key))
		require.NoError(t, err, key)
	}
	assert.Empty(t, queue.jobs)
	assert.Empty(t, sink.Events())
}

func TestHandleUploadNotification_EnqueueFailureSurfaces(t *testing.T) {
	queue := &fakeEnqueuer{err: assert.AnError}
	orch := New(queue, events.NewRecordingSink())

	key := "organizations/o/projects/p/plans/pl/source.pdf"
	err := orch.HandleUploadNotification(context.Background(), uploadNotification(models.ActionPutObject, key))
	require.Error(t, err)
}
