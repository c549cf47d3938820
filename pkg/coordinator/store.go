package coordinator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/plandeck/plandeck/ent"
	"github.com/plandeck/plandeck/ent/plan"
	"github.com/plandeck/plandeck/pkg/models"
)

// ErrNotFound is returned when no coordinator state exists for a plan id.
var ErrNotFound = errors.New("plan not found")

// ErrAlreadyExists is returned by Store.Create when a state for the plan
// id already exists.
var ErrAlreadyExists = errors.New("plan already exists")

// Store persists coordinator state. The coordinator serializes all access
// per plan id, so implementations only need atomic whole-record writes.
type Store interface {
	Create(ctx context.Context, st *State) error
	Get(ctx context.Context, planID string) (*State, error)
	Save(ctx context.Context, st *State) error

	// ListExpired returns non-terminal plans whose deadline has passed.
	ListExpired(ctx context.Context, now time.Time) ([]*State, error)
}

// EntStore is the PostgreSQL-backed Store.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates an EntStore.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

var nonTerminalStatuses = []plan.Status{
	plan.StatusImageGeneration,
	plan.StatusMetadataExtraction,
	plan.StatusParallelDetection,
	plan.StatusTileGeneration,
}

func (s *EntStore) Create(ctx context.Context, st *State) error {
	builder := s.client.Plan.Create().
		SetID(st.PlanID).
		SetProjectID(st.ProjectID).
		SetOrganizationID(st.OrganizationID).
		SetName(st.PlanName).
		SetTotalSheets(st.TotalSheets).
		SetStatus(plan.Status(st.Status)).
		SetGeneratedImages(st.GeneratedImages.Sorted()).
		SetExtractedMetadata(st.ExtractedMetadata.Sorted()).
		SetValidSheets(st.ValidSheets.Sorted()).
		SetSheetNumberMap(st.SheetNumberMap).
		SetDetectedCallouts(st.DetectedCallouts.Sorted()).
		SetDetectedLayouts(st.DetectedLayouts.Sorted()).
		SetGeneratedTiles(st.GeneratedTiles.Sorted()).
		SetCreatedAt(st.CreatedAt).
		SetDeadlineAt(st.DeadlineAt)
	if st.LastError != "" {
		builder.SetLastError(st.LastError)
	}

	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("creating plan %s: %w", st.PlanID, err)
	}
	return nil
}

func (s *EntStore) Get(ctx context.Context, planID string) (*State, error) {
	row, err := s.client.Plan.Get(ctx, planID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading plan %s: %w", planID, err)
	}
	return stateFromRow(row), nil
}

func (s *EntStore) Save(ctx context.Context, st *State) error {
	builder := s.client.Plan.UpdateOneID(st.PlanID).
		SetTotalSheets(st.TotalSheets).
		SetStatus(plan.Status(st.Status)).
		SetGeneratedImages(st.GeneratedImages.Sorted()).
		SetExtractedMetadata(st.ExtractedMetadata.Sorted()).
		SetValidSheets(st.ValidSheets.Sorted()).
		SetSheetNumberMap(st.SheetNumberMap).
		SetDetectedCallouts(st.DetectedCallouts.Sorted()).
		SetDetectedLayouts(st.DetectedLayouts.Sorted()).
		SetGeneratedTiles(st.GeneratedTiles.Sorted()).
		SetDeadlineAt(st.DeadlineAt)
	if st.LastError != "" {
		builder.SetLastError(st.LastError)
	}
	if !st.CompletedAt.IsZero() {
		builder.SetCompletedAt(st.CompletedAt)
	}

	if err := builder.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("saving plan %s: %w", st.PlanID, err)
	}
	return nil
}

func (s *EntStore) ListExpired(ctx context.Context, now time.Time) ([]*State, error) {
	rows, err := s.client.Plan.Query().
		Where(
			plan.StatusIn(nonTerminalStatuses...),
			plan.DeadlineAtLTE(now),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing expired plans: %w", err)
	}

	states := make([]*State, len(rows))
	for i, row := range rows {
		states[i] = stateFromRow(row)
	}
	return states, nil
}

func stateFromRow(row *ent.Plan) *State {
	st := &State{
		PlanID:            row.ID,
		ProjectID:         row.ProjectID,
		OrganizationID:    row.OrganizationID,
		PlanName:          row.Name,
		TotalSheets:       row.TotalSheets,
		Status:            models.PlanStatus(row.Status),
		GeneratedImages:   NewStringSet(row.GeneratedImages),
		ExtractedMetadata: NewStringSet(row.ExtractedMetadata),
		ValidSheets:       NewStringSet(row.ValidSheets),
		SheetNumberMap:    row.SheetNumberMap,
		DetectedCallouts:  NewStringSet(row.DetectedCallouts),
		DetectedLayouts:   NewStringSet(row.DetectedLayouts),
		GeneratedTiles:    NewStringSet(row.GeneratedTiles),
		CreatedAt:         row.CreatedAt,
		DeadlineAt:        row.DeadlineAt,
	}
	if st.SheetNumberMap == nil {
		st.SheetNumberMap = make(map[string]string)
	}
	if row.LastError != nil {
		st.LastError = *row.LastError
	}
	if row.CompletedAt != nil {
		st.CompletedAt = *row.CompletedAt
	}
	return st
}
