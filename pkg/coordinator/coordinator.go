package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/plandeck/plandeck/pkg/events"
	"github.com/plandeck/plandeck/pkg/models"
	"github.com/plandeck/plandeck/pkg/paths"
)

// DefaultPlanTimeout bounds how long a plan may stay in the pipeline
// before the deadline alarm fails it.
const DefaultPlanTimeout = 30 * time.Minute

// TimeoutError is the lastError string recorded when the deadline fires.
// Part of the viewer-facing contract.
const TimeoutError = "Processing timeout exceeded"

// ErrAlreadyInitialized is returned by Initialize when a plan exists with
// a different totalSheets. Re-initializing with identical arguments is
// idempotent and does not produce this error.
var ErrAlreadyInitialized = errors.New("plan already initialized with different totalSheets")

// Enqueuer dispatches next-stage jobs. Implemented by queue.Enqueuer.
type Enqueuer interface {
	Enqueue(ctx context.Context, job models.PipelineJob) error
}

// Coordinator aggregates per-sheet stage reports into plan state
// transitions. It is the single writer of coordinator state: operations on
// one plan are serialized by a per-plan mutex, and all durable writes go
// through the Store while the mutex is held.
//
// Every report is idempotent on sheetId and every operation on a terminal
// plan is an absorbed no-op, so redelivered queue jobs and late workers
// cannot corrupt state.
type Coordinator struct {
	store   Store
	queue   Enqueuer
	events  events.Sink
	timeout time.Duration

	locks   map[string]*sync.Mutex
	locksMu sync.Mutex

	alarms   map[string]*time.Timer
	alarmsMu sync.Mutex
}

// New creates a Coordinator. planTimeout <= 0 selects DefaultPlanTimeout.
func New(store Store, queue Enqueuer, sink events.Sink, planTimeout time.Duration) *Coordinator {
	if planTimeout <= 0 {
		planTimeout = DefaultPlanTimeout
	}
	return &Coordinator{
		store:   store,
		queue:   queue,
		events:  sink,
		timeout: planTimeout,
		locks:   make(map[string]*sync.Mutex),
		alarms:  make(map[string]*time.Timer),
	}
}

// lockPlan returns the mutex for a plan, creating it on first use.
// Plans never share locks.
func (c *Coordinator) lockPlan(planID string) func() {
	c.locksMu.Lock()
	mu, ok := c.locks[planID]
	if !ok {
		mu = &sync.Mutex{}
		c.locks[planID] = mu
	}
	c.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// Initialize creates the coordinator state for a plan and arms its
// deadline alarm. Idempotent: called again with the same totalSheets it
// returns the existing state; a differing totalSheets is rejected with
// ErrAlreadyInitialized.
//
// A timeout of 0 selects the configured default. totalSheets of 0
// cascades straight to complete through the empty-set joins.
func (c *Coordinator) Initialize(ctx context.Context, ref models.TenantRef, planName string, totalSheets int, timeout time.Duration) (*State, error) {
	unlock := c.lockPlan(ref.PlanID)
	defer unlock()

	existing, err := c.store.Get(ctx, ref.PlanID)
	if err == nil {
		if existing.TotalSheets != totalSheets {
			return nil, fmt.Errorf("%w: have %d, got %d", ErrAlreadyInitialized, existing.TotalSheets, totalSheets)
		}
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if timeout <= 0 {
		timeout = c.timeout
	}
	now := time.Now()
	st := &State{
		PlanID:            ref.PlanID,
		ProjectID:         ref.ProjectID,
		OrganizationID:    ref.OrganizationID,
		PlanName:          planName,
		TotalSheets:       totalSheets,
		Status:            models.StatusImageGeneration,
		GeneratedImages:   make(StringSet),
		ExtractedMetadata: make(StringSet),
		ValidSheets:       make(StringSet),
		SheetNumberMap:    make(map[string]string),
		DetectedCallouts:  make(StringSet),
		DetectedLayouts:   make(StringSet),
		GeneratedTiles:    make(StringSet),
		CreatedAt:         now,
		DeadlineAt:        now.Add(timeout),
	}

	if err := c.store.Create(ctx, st); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			// Lost a create race across pods; fall back to the idempotency path.
			winner, getErr := c.store.Get(ctx, ref.PlanID)
			if getErr != nil {
				return nil, getErr
			}
			if winner.TotalSheets != totalSheets {
				return nil, fmt.Errorf("%w: have %d, got %d", ErrAlreadyInitialized, winner.TotalSheets, totalSheets)
			}
			return winner, nil
		}
		return nil, err
	}

	c.armAlarm(st.PlanID, st.DeadlineAt)
	slog.Info("Plan initialized",
		"plan_id", st.PlanID, "total_sheets", totalSheets, "deadline_at", st.DeadlineAt)

	c.advance(ctx, st)
	if err := c.store.Save(ctx, st); err != nil {
		return nil, err
	}
	c.settle(st)
	return st, nil
}

// SheetImageGenerated records stage-1 completion for one sheet.
func (c *Coordinator) SheetImageGenerated(ctx context.Context, planID, sheetID string) (*State, error) {
	return c.report(ctx, planID, func(st *State) {
		if !c.sheetInRange(st, sheetID) {
			return
		}
		st.GeneratedImages.Add(sheetID)
	})
}

// SheetMetadataExtracted records stage-2 completion for one sheet. A valid
// sheet without a readable sheet number stays in validSheets — callout
// matching for it will degrade, which is logged here as the warning.
func (c *Coordinator) SheetMetadataExtracted(ctx context.Context, planID, sheetID string, isValid bool, sheetNumber *string) (*State, error) {
	return c.report(ctx, planID, func(st *State) {
		if !c.sheetInRange(st, sheetID) {
			return
		}
		st.ExtractedMetadata.Add(sheetID)
		if !isValid {
			return
		}
		st.ValidSheets.Add(sheetID)
		if sheetNumber != nil && *sheetNumber != "" {
			st.SheetNumberMap[sheetID] = *sheetNumber
		} else if _, ok := st.SheetNumberMap[sheetID]; !ok {
			slog.Warn("Valid sheet has no extracted sheet number; callout matching will not target it",
				"plan_id", planID, "sheet_id", sheetID)
		}
	})
}

// SheetCalloutsDetected records callout-detection completion for one sheet.
func (c *Coordinator) SheetCalloutsDetected(ctx context.Context, planID, sheetID string) (*State, error) {
	return c.report(ctx, planID, func(st *State) {
		if !c.sheetIsValid(st, sheetID) {
			return
		}
		st.DetectedCallouts.Add(sheetID)
	})
}

// SheetLayoutDetected records layout-detection completion for one sheet.
// Workers report this even when detection failed, so the join cannot stall.
func (c *Coordinator) SheetLayoutDetected(ctx context.Context, planID, sheetID string) (*State, error) {
	return c.report(ctx, planID, func(st *State) {
		if !c.sheetIsValid(st, sheetID) {
			return
		}
		st.DetectedLayouts.Add(sheetID)
	})
}

// SheetTilesGenerated records stage-5 completion for one sheet.
func (c *Coordinator) SheetTilesGenerated(ctx context.Context, planID, sheetID string) (*State, error) {
	return c.report(ctx, planID, func(st *State) {
		if !c.sheetIsValid(st, sheetID) {
			return
		}
		st.GeneratedTiles.Add(sheetID)
	})
}

// MarkFailed transitions a plan to failed from any non-terminal status and
// emits planProcessingFailed. No-op on terminal plans.
func (c *Coordinator) MarkFailed(ctx context.Context, planID, errMsg string) (*State, error) {
	unlock := c.lockPlan(planID)
	defer unlock()

	st, err := c.store.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	if st.Status.IsTerminal() {
		return st, nil
	}

	st.Status = models.StatusFailed
	st.LastError = errMsg
	st.CompletedAt = time.Now()

	slog.Error("Plan failed", "plan_id", planID, "error", errMsg)
	c.emit(ctx, st, events.PlanProcessingFailedPayload{
		PlanID:   planID,
		Error:    errMsg,
		FailedAt: st.CompletedAt.UnixMilli(),
	})

	if err := c.store.Save(ctx, st); err != nil {
		return nil, err
	}
	c.settle(st)
	return st, nil
}

// GetState returns a read-only snapshot of a plan's state.
func (c *Coordinator) GetState(ctx context.Context, planID string) (*State, error) {
	return c.store.Get(ctx, planID)
}

// GetProgress returns the per-stage completion counts for a plan.
func (c *Coordinator) GetProgress(ctx context.Context, planID string) (Progress, error) {
	st, err := c.store.Get(ctx, planID)
	if err != nil {
		return Progress{}, err
	}
	return st.ProgressSnapshot(), nil
}

// report runs one serialized read-mutate-advance-save round for a plan.
// Terminal plans absorb the report without change.
func (c *Coordinator) report(ctx context.Context, planID string, mutate func(st *State)) (*State, error) {
	unlock := c.lockPlan(planID)
	defer unlock()

	st, err := c.store.Get(ctx, planID)
	if err != nil {
		return nil, err
	}
	if st.Status.IsTerminal() {
		slog.Debug("Report absorbed by terminal plan", "plan_id", planID, "status", st.Status)
		return st, nil
	}

	mutate(st)
	c.advance(ctx, st)

	if err := c.store.Save(ctx, st); err != nil {
		return nil, err
	}
	c.settle(st)
	return st, nil
}

// advance evaluates stage-transition conditions until none fires. The
// conditions are functions of the state alone, so evaluating after every
// report is safe — and the cascade is what lets a zero-sheet plan fall
// through to complete in one pass.
//
// Side effects (next-stage enqueues, aggregate events) run before the
// caller saves. If a crash loses the save, the redelivered report refires
// the transition; duplicate enqueues are absorbed by idempotent workers
// and duplicate events by emit-time dedupe.
func (c *Coordinator) advance(ctx context.Context, st *State) {
	for {
		switch st.Status {
		case models.StatusImageGeneration:
			if len(st.GeneratedImages) < st.TotalSheets {
				return
			}
			c.transition(ctx, st, models.StatusMetadataExtraction)
			c.enqueueMetadataJobs(ctx, st)

		case models.StatusMetadataExtraction:
			if len(st.ExtractedMetadata) < st.TotalSheets {
				return
			}
			c.emit(ctx, st, events.PlanMetadataCompletedPayload{
				PlanID:         st.PlanID,
				ValidSheets:    st.ValidSheets.Sorted(),
				SheetNumberMap: st.SheetNumberMap,
				CompletedAt:    time.Now().UnixMilli(),
			})
			c.transition(ctx, st, models.StatusParallelDetection)
			c.enqueueDetectionJobs(ctx, st)

		case models.StatusParallelDetection:
			if len(st.DetectedCallouts) < len(st.ValidSheets) || len(st.DetectedLayouts) < len(st.ValidSheets) {
				return
			}
			c.transition(ctx, st, models.StatusTileGeneration)
			c.enqueueTileJobs(ctx, st)

		case models.StatusTileGeneration:
			if len(st.GeneratedTiles) < len(st.ValidSheets) {
				return
			}
			st.CompletedAt = time.Now()
			// transition emits progress 100 first; planProcessingCompleted
			// must be the last event on a successful plan's channel.
			c.transition(ctx, st, models.StatusComplete)
			c.emit(ctx, st, events.PlanProcessingCompletedPayload{
				PlanID:      st.PlanID,
				SheetCount:  len(st.ValidSheets),
				CompletedAt: st.CompletedAt.UnixMilli(),
			})
			slog.Info("Plan complete", "plan_id", st.PlanID, "sheet_count", len(st.ValidSheets))

		default:
			return
		}
	}
}

// transition moves the plan forward and announces the cumulative progress
// percentage for the newly entered stage.
func (c *Coordinator) transition(ctx context.Context, st *State, to models.PlanStatus) {
	slog.Info("Plan stage transition", "plan_id", st.PlanID, "from", st.Status, "to", to)
	st.Status = to
	if pct, ok := percentFor(to); ok {
		c.emit(ctx, st, events.PlanProcessingProgressPayload{PlanID: st.PlanID, Progress: pct})
	}
}

func (c *Coordinator) enqueueMetadataJobs(ctx context.Context, st *State) {
	ref := st.Ref()
	for _, sheetID := range st.GeneratedImages.Sorted() {
		idx, err := paths.SheetIndex(sheetID)
		if err != nil {
			continue
		}
		c.enqueue(ctx, st, models.MetadataJob{
			TenantRef:   ref,
			SheetID:     sheetID,
			SheetNumber: idx + 1,
			TotalSheets: st.TotalSheets,
		})
	}
}

func (c *Coordinator) enqueueDetectionJobs(ctx context.Context, st *State) {
	ref := st.Ref()
	valid := st.ValidSheets.Sorted()
	validNumbers := make([]string, 0, len(valid))
	for _, sheetID := range valid {
		if n, ok := st.SheetNumberMap[sheetID]; ok {
			validNumbers = append(validNumbers, n)
		}
	}

	for _, sheetID := range valid {
		number := st.SheetNumberMap[sheetID]
		c.enqueue(ctx, st, models.CalloutJob{
			TenantRef:         ref,
			SheetID:           sheetID,
			SheetNumber:       number,
			ValidSheetNumbers: validNumbers,
		})
		c.enqueue(ctx, st, models.LayoutJob{
			TenantRef:   ref,
			SheetID:     sheetID,
			SheetNumber: number,
		})
	}
}

func (c *Coordinator) enqueueTileJobs(ctx context.Context, st *State) {
	ref := st.Ref()
	for _, sheetID := range st.ValidSheets.Sorted() {
		c.enqueue(ctx, st, models.TilesJob{TenantRef: ref, SheetID: sheetID})
	}
}

// enqueue dispatches one next-stage job. Failures are logged, not
// propagated: the reporting worker has already done its work, and the
// deadline alarm is the backstop for a plan whose fan-out was lost.
func (c *Coordinator) enqueue(ctx context.Context, st *State, job models.PipelineJob) {
	if err := c.queue.Enqueue(ctx, job); err != nil {
		slog.Error("Failed to enqueue stage job",
			"plan_id", st.PlanID, "stage", job.Stage(), "sheet_id", job.Sheet(), "error", err)
	}
}

// emit commits one event, logging and swallowing failures — event-log
// trouble must never block the pipeline or the queue acknowledgement.
func (c *Coordinator) emit(ctx context.Context, st *State, evt events.Event) {
	if err := c.events.Publish(ctx, st.Ref(), evt); err != nil {
		slog.Warn("Failed to publish event",
			"plan_id", st.PlanID, "event", evt.EventName(), "error", err)
	}
}

// sheetInRange checks a report against {sheet-0 .. sheet-(totalSheets-1)}.
// Out-of-range reports are an invariant violation: logged, no state change.
func (c *Coordinator) sheetInRange(st *State, sheetID string) bool {
	idx, err := paths.SheetIndex(sheetID)
	if err != nil || idx >= st.TotalSheets {
		slog.Warn("Report for unknown sheet ignored",
			"plan_id", st.PlanID, "sheet_id", sheetID, "total_sheets", st.TotalSheets)
		return false
	}
	return true
}

// sheetIsValid checks a detection or tiles report against validSheets.
func (c *Coordinator) sheetIsValid(st *State, sheetID string) bool {
	if !st.ValidSheets.Has(sheetID) {
		slog.Warn("Report for non-valid sheet ignored",
			"plan_id", st.PlanID, "sheet_id", sheetID)
		return false
	}
	return true
}

// settle disarms the deadline alarm once a plan is terminal.
func (c *Coordinator) settle(st *State) {
	if st.Status.IsTerminal() {
		c.disarmAlarm(st.PlanID)
	}
}
