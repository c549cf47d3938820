package coordinator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plandeck/plandeck/pkg/events"
	"github.com/plandeck/plandeck/pkg/models"
)

type fakeQueue struct {
	mu   sync.Mutex
	jobs []models.PipelineJob
}

func (q *fakeQueue) Enqueue(_ context.Context, job models.PipelineJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeQueue) byStage(stage models.Stage) []models.PipelineJob {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []models.PipelineJob
	for _, j := range q.jobs {
		if j.Stage() == stage {
			out = append(out, j)
		}
	}
	return out
}

func testRef() models.TenantRef {
	return models.TenantRef{OrganizationID: "org-1", ProjectID: "proj-1", PlanID: "plan-1"}
}

func newTestCoordinator() (*Coordinator, *fakeQueue, *events.RecordingSink) {
	queue := &fakeQueue{}
	sink := events.NewRecordingSink()
	c := New(NewMemStore(), queue, sink, time.Minute)
	return c, queue, sink
}

// runPlan drives a plan through every stage, skipping detection and tiles
// for sheets not in valid. A nil metadata entry marks the sheet invalid;
// a pointer to "" marks it valid with no sheet number.
func runPlan(t *testing.T, c *Coordinator, totalSheets int, metadata map[string]*string) *State {
	t.Helper()
	ctx := context.Background()
	ref := testRef()

	_, err := c.Initialize(ctx, ref, "Plan One", totalSheets, 0)
	require.NoError(t, err)

	for i := 0; i < totalSheets; i++ {
		_, err := c.SheetImageGenerated(ctx, ref.PlanID, sheetID(i))
		require.NoError(t, err)
	}
	for i := 0; i < totalSheets; i++ {
		number := metadata[sheetID(i)]
		valid := number != nil
		if valid && *number == "" {
			number = nil
		}
		_, err := c.SheetMetadataExtracted(ctx, ref.PlanID, sheetID(i), valid, number)
		require.NoError(t, err)
	}

	st, err := c.GetState(ctx, ref.PlanID)
	require.NoError(t, err)
	for _, s := range st.ValidSheets.Sorted() {
		_, err = c.SheetCalloutsDetected(ctx, ref.PlanID, s)
		require.NoError(t, err)
		_, err = c.SheetLayoutDetected(ctx, ref.PlanID, s)
		require.NoError(t, err)
	}
	st, err = c.GetState(ctx, ref.PlanID)
	require.NoError(t, err)
	for _, s := range st.ValidSheets.Sorted() {
		_, err = c.SheetTilesGenerated(ctx, ref.PlanID, s)
		require.NoError(t, err)
	}

	final, err := c.GetState(ctx, ref.PlanID)
	require.NoError(t, err)
	return final
}

func sheetID(i int) string { return "sheet-" + string(rune('0'+i)) }

func strPtr(s string) *string { return &s }

func TestSingleSheetHappyPath(t *testing.T) {
	c, queue, sink := newTestCoordinator()

	final := runPlan(t, c, 1, map[string]*string{"sheet-0": strPtr("A1")})

	assert.Equal(t, models.StatusComplete, final.Status)
	assert.Equal(t, []string{"sheet-0"}, final.ValidSheets.Sorted())
	assert.Equal(t, "A1", final.SheetNumberMap["sheet-0"])

	// One fan-out job per stage for the single valid sheet.
	assert.Len(t, queue.byStage(models.StageMetadataExtraction), 1)
	assert.Len(t, queue.byStage(models.StageCalloutDetection), 1)
	assert.Len(t, queue.byStage(models.StageLayoutDetection), 1)
	assert.Len(t, queue.byStage(models.StageTileGeneration), 1)

	completed := sink.ByName(events.EventPlanProcessingCompleted)
	require.Len(t, completed, 1)
	payload := completed[0].Event.(events.PlanProcessingCompletedPayload)
	assert.Equal(t, 1, payload.SheetCount)

	metaCompleted := sink.ByName(events.EventPlanMetadataCompleted)
	require.Len(t, metaCompleted, 1)
	meta := metaCompleted[0].Event.(events.PlanMetadataCompletedPayload)
	assert.Equal(t, []string{"sheet-0"}, meta.ValidSheets)

	assert.Empty(t, sink.ByName(events.EventPlanProcessingFailed))
}

func TestThreeSheetsMiddleInvalid(t *testing.T) {
	c, queue, sink := newTestCoordinator()

	final := runPlan(t, c, 3, map[string]*string{
		"sheet-0": strPtr("A1"),
		"sheet-1": nil,
		"sheet-2": strPtr("S1"),
	})

	assert.Equal(t, models.StatusComplete, final.Status)
	assert.Equal(t, []string{"sheet-0", "sheet-2"}, final.ValidSheets.Sorted())
	assert.Len(t, final.DetectedCallouts, 2)
	assert.Len(t, final.DetectedLayouts, 2)
	assert.Len(t, final.GeneratedTiles, 2)

	for _, job := range queue.byStage(models.StageCalloutDetection) {
		assert.NotEqual(t, "sheet-1", job.Sheet())
	}
	for _, job := range queue.byStage(models.StageTileGeneration) {
		assert.NotEqual(t, "sheet-1", job.Sheet())
	}

	meta := sink.ByName(events.EventPlanMetadataCompleted)[0].Event.(events.PlanMetadataCompletedPayload)
	assert.ElementsMatch(t, []string{"sheet-0", "sheet-2"}, meta.ValidSheets)
}

func TestCalloutJobsCarryValidSheetNumbers(t *testing.T) {
	c, queue, _ := newTestCoordinator()

	runPlan(t, c, 2, map[string]*string{
		"sheet-0": strPtr("A1"),
		"sheet-1": strPtr("A2"),
	})

	callouts := queue.byStage(models.StageCalloutDetection)
	require.Len(t, callouts, 2)
	job := callouts[0].(models.CalloutJob)
	assert.ElementsMatch(t, []string{"A1", "A2"}, job.ValidSheetNumbers)
	assert.Equal(t, "A1", job.SheetNumber)
}

func TestZeroSheetsCompletesImmediately(t *testing.T) {
	c, queue, sink := newTestCoordinator()

	st, err := c.Initialize(context.Background(), testRef(), "Empty", 0, 0)
	require.NoError(t, err)

	assert.Equal(t, models.StatusComplete, st.Status)
	assert.Empty(t, queue.jobs)

	require.Len(t, sink.ByName(events.EventPlanMetadataCompleted), 1)
	completed := sink.ByName(events.EventPlanProcessingCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, 0, completed[0].Event.(events.PlanProcessingCompletedPayload).SheetCount)
}

func TestNoValidSheetsSkipsDetectionStages(t *testing.T) {
	c, queue, sink := newTestCoordinator()

	final := runPlan(t, c, 2, map[string]*string{
		"sheet-0": nil,
		"sheet-1": nil,
	})

	assert.Equal(t, models.StatusComplete, final.Status)
	assert.Empty(t, final.ValidSheets)
	assert.Empty(t, queue.byStage(models.StageCalloutDetection))
	assert.Empty(t, queue.byStage(models.StageLayoutDetection))
	assert.Empty(t, queue.byStage(models.StageTileGeneration))

	require.Len(t, sink.ByName(events.EventPlanMetadataCompleted), 1)
	require.Len(t, sink.ByName(events.EventPlanProcessingCompleted), 1)
}

func TestDuplicateReportIsIdempotent(t *testing.T) {
	c, queue, _ := newTestCoordinator()
	ctx := context.Background()
	ref := testRef()

	_, err := c.Initialize(ctx, ref, "Plan", 2, 0)
	require.NoError(t, err)

	st1, err := c.SheetImageGenerated(ctx, ref.PlanID, "sheet-0")
	require.NoError(t, err)
	st2, err := c.SheetImageGenerated(ctx, ref.PlanID, "sheet-0")
	require.NoError(t, err)

	assert.Equal(t, st1.GeneratedImages.Sorted(), st2.GeneratedImages.Sorted())
	assert.Equal(t, models.StatusImageGeneration, st2.Status)
	assert.Empty(t, queue.byStage(models.StageMetadataExtraction))
}

func TestInitializeIdempotence(t *testing.T) {
	c, _, _ := newTestCoordinator()
	ctx := context.Background()
	ref := testRef()

	first, err := c.Initialize(ctx, ref, "Plan", 3, 0)
	require.NoError(t, err)

	again, err := c.Initialize(ctx, ref, "Plan", 3, 0)
	require.NoError(t, err)
	assert.Equal(t, first.PlanID, again.PlanID)
	assert.Equal(t, first.TotalSheets, again.TotalSheets)

	_, err = c.Initialize(ctx, ref, "Plan", 5, 0)
	require.ErrorIs(t, err, ErrAlreadyInitialized)
}

// lostRaceStore simulates another pod inserting the plan row between
// Initialize's existence check and its Create.
type lostRaceStore struct {
	winner  *State
	created bool
}

func (s *lostRaceStore) Get(_ context.Context, _ string) (*State, error) {
	if s.created {
		return s.winner, nil
	}
	return nil, ErrNotFound
}

func (s *lostRaceStore) Create(_ context.Context, _ *State) error {
	s.created = true
	return ErrAlreadyExists
}

func (s *lostRaceStore) Save(_ context.Context, _ *State) error { return nil }

func (s *lostRaceStore) ListExpired(_ context.Context, _ time.Time) ([]*State, error) {
	return nil, nil
}

func TestInitializeLostCreateRace(t *testing.T) {
	ctx := context.Background()
	ref := testRef()
	winner := &State{
		PlanID:      ref.PlanID,
		TotalSheets: 3,
		Status:      models.StatusImageGeneration,
	}

	t.Run("matching totalSheets adopts the winner", func(t *testing.T) {
		c := New(&lostRaceStore{winner: winner}, &fakeQueue{}, events.NewRecordingSink(), time.Minute)
		st, err := c.Initialize(ctx, ref, "Plan", 3, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, st.TotalSheets)
	})

	t.Run("differing totalSheets is rejected", func(t *testing.T) {
		c := New(&lostRaceStore{winner: winner}, &fakeQueue{}, events.NewRecordingSink(), time.Minute)
		_, err := c.Initialize(ctx, ref, "Plan", 5, 0)
		require.ErrorIs(t, err, ErrAlreadyInitialized)
	})
}

func TestDetectionReportsCommute(t *testing.T) {
	run := func(calloutFirst bool) *State {
		c, _, _ := newTestCoordinator()
		ctx := context.Background()
		ref := testRef()

		_, err := c.Initialize(ctx, ref, "Plan", 1, 0)
		require.NoError(t, err)
		_, err = c.SheetImageGenerated(ctx, ref.PlanID, "sheet-0")
		require.NoError(t, err)
		_, err = c.SheetMetadataExtracted(ctx, ref.PlanID, "sheet-0", true, strPtr("A1"))
		require.NoError(t, err)

		if calloutFirst {
			_, err = c.SheetCalloutsDetected(ctx, ref.PlanID, "sheet-0")
			require.NoError(t, err)
			_, err = c.SheetLayoutDetected(ctx, ref.PlanID, "sheet-0")
		} else {
			_, err = c.SheetLayoutDetected(ctx, ref.PlanID, "sheet-0")
			require.NoError(t, err)
			_, err = c.SheetCalloutsDetected(ctx, ref.PlanID, "sheet-0")
		}
		require.NoError(t, err)

		st, err := c.GetState(ctx, ref.PlanID)
		require.NoError(t, err)
		return st
	}

	a := run(true)
	b := run(false)
	assert.Equal(t, a.Status, b.Status)
	assert.Equal(t, models.StatusTileGeneration, a.Status)
	assert.Equal(t, a.DetectedCallouts.Sorted(), b.DetectedCallouts.Sorted())
	assert.Equal(t, a.DetectedLayouts.Sorted(), b.DetectedLayouts.Sorted())
}

func TestMarkFailedAbsorbsLaterReports(t *testing.T) {
	c, _, sink := newTestCoordinator()
	ctx := context.Background()
	ref := testRef()

	_, err := c.Initialize(ctx, ref, "Plan", 2, 0)
	require.NoError(t, err)
	_, err = c.SheetImageGenerated(ctx, ref.PlanID, "sheet-0")
	require.NoError(t, err)

	st, err := c.MarkFailed(ctx, ref.PlanID, "PDF not found at some/path")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, st.Status)
	assert.Equal(t, "PDF not found at some/path", st.LastError)

	// Late report is a no-op.
	after, err := c.SheetImageGenerated(ctx, ref.PlanID, "sheet-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, after.Status)
	assert.Len(t, after.GeneratedImages, 1)

	// Second MarkFailed doesn't overwrite or re-emit.
	again, err := c.MarkFailed(ctx, ref.PlanID, "other error")
	require.NoError(t, err)
	assert.Equal(t, "PDF not found at some/path", again.LastError)
	assert.Len(t, sink.ByName(events.EventPlanProcessingFailed), 1)
}

func TestDeadlineAlarmFailsPlan(t *testing.T) {
	c, _, sink := newTestCoordinator()
	ctx := context.Background()
	ref := testRef()

	_, err := c.Initialize(ctx, ref, "Plan", 1, 5*time.Millisecond)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		st, err := c.GetState(ctx, ref.PlanID)
		return err == nil && st.Status == models.StatusFailed
	}, 2*time.Second, 5*time.Millisecond)

	st, err := c.GetState(ctx, ref.PlanID)
	require.NoError(t, err)
	assert.Equal(t, TimeoutError, st.LastError)

	failed := sink.ByName(events.EventPlanProcessingFailed)
	require.Len(t, failed, 1)
	assert.Equal(t, TimeoutError, failed[0].Event.(events.PlanProcessingFailedPayload).Error)

	// Late stage reports change nothing.
	after, err := c.SheetImageGenerated(ctx, ref.PlanID, "sheet-0")
	require.NoError(t, err)
	assert.Empty(t, after.GeneratedImages)
}

func TestProgressEventsMonotonicEndingAtHundred(t *testing.T) {
	c, _, sink := newTestCoordinator()

	runPlan(t, c, 1, map[string]*string{"sheet-0": strPtr("A1")})

	progress := sink.ByName(events.EventPlanProcessingProgress)
	require.NotEmpty(t, progress)
	last := -1
	for _, p := range progress {
		v := p.Event.(events.PlanProcessingProgressPayload).Progress
		assert.GreaterOrEqual(t, v, last)
		last = v
	}
	assert.Equal(t, 100, last)

	// planProcessingCompleted closes the channel for a successful plan;
	// nothing, including progress 100, may follow it.
	names := sink.Names()
	require.NotEmpty(t, names)
	assert.Equal(t, events.EventPlanProcessingCompleted, names[len(names)-1])
}

func TestOutOfRangeSheetReportIgnored(t *testing.T) {
	c, _, _ := newTestCoordinator()
	ctx := context.Background()
	ref := testRef()

	_, err := c.Initialize(ctx, ref, "Plan", 2, 0)
	require.NoError(t, err)

	st, err := c.SheetImageGenerated(ctx, ref.PlanID, "sheet-7")
	require.NoError(t, err)
	assert.Empty(t, st.GeneratedImages)

	st, err = c.SheetImageGenerated(ctx, ref.PlanID, "not-a-sheet")
	require.NoError(t, err)
	assert.Empty(t, st.GeneratedImages)
}

func TestDetectionReportForInvalidSheetIgnored(t *testing.T) {
	c, _, _ := newTestCoordinator()
	ctx := context.Background()
	ref := testRef()

	_, err := c.Initialize(ctx, ref, "Plan", 1, 0)
	require.NoError(t, err)
	_, err = c.SheetImageGenerated(ctx, ref.PlanID, "sheet-0")
	require.NoError(t, err)
	_, err = c.SheetMetadataExtracted(ctx, ref.PlanID, "sheet-0", false, nil)
	require.NoError(t, err)

	st, err := c.GetState(ctx, ref.PlanID)
	require.NoError(t, err)
	// Empty valid set cascaded to complete; a stray detection report for
	// the invalid sheet must not resurrect anything.
	assert.Equal(t, models.StatusComplete, st.Status)
	assert.Empty(t, st.DetectedCallouts)
}

func TestValidSheetWithoutNumberStaysValid(t *testing.T) {
	c, queue, _ := newTestCoordinator()
	ctx := context.Background()
	ref := testRef()

	_, err := c.Initialize(ctx, ref, "Plan", 1, 0)
	require.NoError(t, err)
	_, err = c.SheetImageGenerated(ctx, ref.PlanID, "sheet-0")
	require.NoError(t, err)
	st, err := c.SheetMetadataExtracted(ctx, ref.PlanID, "sheet-0", true, nil)
	require.NoError(t, err)

	assert.True(t, st.ValidSheets.Has("sheet-0"))
	_, mapped := st.SheetNumberMap["sheet-0"]
	assert.False(t, mapped)

	callouts := queue.byStage(models.StageCalloutDetection)
	require.Len(t, callouts, 1)
	job := callouts[0].(models.CalloutJob)
	assert.Empty(t, job.SheetNumber)
	assert.Empty(t, job.ValidSheetNumbers)
}

func TestGetProgress(t *testing.T) {
	c, _, _ := newTestCoordinator()
	ctx := context.Background()
	ref := testRef()

	_, err := c.Initialize(ctx, ref, "Plan", 3, 0)
	require.NoError(t, err)
	_, err = c.SheetImageGenerated(ctx, ref.PlanID, "sheet-0")
	require.NoError(t, err)

	p, err := c.GetProgress(ctx, ref.PlanID)
	require.NoError(t, err)
	assert.Equal(t, StageProgress{Completed: 1, Total: 3}, p.ImageGeneration)
	assert.Equal(t, StageProgress{Completed: 0, Total: 3}, p.MetadataExtraction)
	assert.Equal(t, StageProgress{Completed: 0, Total: 0}, p.TileGeneration)
}

func TestGetStateUnknownPlan(t *testing.T) {
	c, _, _ := newTestCoordinator()
	_, err := c.GetState(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeadlineSweeperFailsExpiredPlans(t *testing.T) {
	queue := &fakeQueue{}
	sink := events.NewRecordingSink()
	store := NewMemStore()
	c := New(store, queue, sink, time.Minute)
	ctx := context.Background()
	ref := testRef()

	_, err := c.Initialize(ctx, ref, "Plan", 1, time.Hour)
	require.NoError(t, err)
	// Drop the in-process timer to simulate a pod restart, then back-date
	// the deadline so only the sweep can catch it.
	c.StopAlarms()
	st, err := store.Get(ctx, ref.PlanID)
	require.NoError(t, err)
	st.DeadlineAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Save(ctx, st))

	sweeper := NewDeadlineSweeper(c, 10*time.Millisecond)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	require.Eventually(t, func() bool {
		st, err := c.GetState(ctx, ref.PlanID)
		return err == nil && st.Status == models.StatusFailed
	}, 2*time.Second, 10*time.Millisecond)

	st, err = c.GetState(ctx, ref.PlanID)
	require.NoError(t, err)
	assert.Equal(t, TimeoutError, st.LastError)
}

func TestConcurrentReportsSerialize(t *testing.T) {
	c, _, _ := newTestCoordinator()
	ctx := context.Background()
	ref := testRef()

	const total = 8
	_, err := c.Initialize(ctx, ref, "Plan", total, 0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := c.SheetImageGenerated(ctx, ref.PlanID, sheetID(i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	st, err := c.GetState(ctx, ref.PlanID)
	require.NoError(t, err)
	assert.Len(t, st.GeneratedImages, total)
	assert.Equal(t, models.StatusMetadataExtraction, st.Status)
}
