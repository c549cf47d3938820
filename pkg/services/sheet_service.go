package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/plandeck/plandeck/ent"
	"github.com/plandeck/plandeck/ent/sheet"
	"github.com/plandeck/plandeck/pkg/container"
	"github.com/plandeck/plandeck/pkg/models"
)

// SheetService persists per-sheet detail rows alongside the coordinator's
// set-based progress. Stage executors write through it as results land;
// the read API serves sheets from it.
//
// All writes are idempotent upserts keyed on (plan_id, sheet_id) so
// redelivered stage jobs converge on the same row.
type SheetService struct {
	client *ent.Client
}

// NewSheetService creates a new SheetService
func NewSheetService(client *ent.Client) *SheetService {
	return &SheetService{client: client}
}

// UpsertImage records the rendered PNG for a sheet: page position,
// dimensions, and blob path.
func (s *SheetService) UpsertImage(ctx context.Context, ref models.TenantRef, sheetID string, pageNumber, width, height int, imagePath string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.find(writeCtx, ref.PlanID, sheetID)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to query sheet: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetPageNumber(pageNumber).
			SetWidth(width).
			SetHeight(height).
			SetImagePath(imagePath).
			Save(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to update sheet image: %w", err)
		}
		return nil
	}

	_, err = s.client.Sheet.Create().
		SetID(uuid.New().String()).
		SetPlanID(ref.PlanID).
		SetProjectID(ref.ProjectID).
		SetOrganizationID(ref.OrganizationID).
		SetSheetID(sheetID).
		SetPageNumber(pageNumber).
		SetWidth(width).
		SetHeight(height).
		SetImagePath(imagePath).
		Save(writeCtx)
	if err != nil {
		// Concurrent redelivery may have created the row between the query
		// and the insert; converge on the update path.
		if ent.IsConstraintError(err) {
			return s.UpsertImage(ctx, ref, sheetID, pageNumber, width, height, imagePath)
		}
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	return nil
}

// UpsertMetadata records the extracted title-block fields for a sheet.
func (s *SheetService) UpsertMetadata(ctx context.Context, ref models.TenantRef, sheetID string, md *container.Metadata) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.find(writeCtx, ref.PlanID, sheetID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("sheet %s of plan %s: %w", sheetID, ref.PlanID, ErrNotFound)
		}
		return fmt.Errorf("failed to query sheet: %w", err)
	}

	upd := existing.Update().
		SetIsValid(md.IsValid).
		SetNillableSheetNumber(md.SheetNumber)
	if md.Title != "" {
		upd = upd.SetTitle(md.Title)
	}
	if md.Discipline != "" {
		upd = upd.SetDiscipline(md.Discipline)
	}
	if _, err := upd.Save(writeCtx); err != nil {
		return fmt.Errorf("failed to update sheet metadata: %w", err)
	}
	return nil
}

// RecordTilesPath records the PMTiles blob path and zoom range for a sheet.
func (s *SheetService) RecordTilesPath(ctx context.Context, ref models.TenantRef, sheetID, tilesPath string, minZoom, maxZoom int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.find(writeCtx, ref.PlanID, sheetID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("sheet %s of plan %s: %w", sheetID, ref.PlanID, ErrNotFound)
		}
		return fmt.Errorf("failed to query sheet: %w", err)
	}

	_, err = existing.Update().
		SetTilesPath(tilesPath).
		SetMinZoom(minZoom).
		SetMaxZoom(maxZoom).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to record tiles path: %w", err)
	}
	return nil
}

// GetSheet returns one sheet row of a plan.
func (s *SheetService) GetSheet(ctx context.Context, planID, sheetID string) (*ent.Sheet, error) {
	row, err := s.find(ctx, planID, sheetID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("sheet %s of plan %s: %w", sheetID, planID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get sheet: %w", err)
	}
	return row, nil
}

// ListPlanSheets returns all sheet rows of a plan in page order.
func (s *SheetService) ListPlanSheets(ctx context.Context, planID string) ([]*ent.Sheet, error) {
	rows, err := s.client.Sheet.Query().
		Where(sheet.PlanIDEQ(planID)).
		Order(ent.Asc(sheet.FieldPageNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}
	return rows, nil
}

// CleanupPlanSheets removes all sheet rows for a plan
func (s *SheetService) CleanupPlanSheets(ctx context.Context, planID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Sheet.Delete().
		Where(sheet.PlanIDEQ(planID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup plan sheets: %w", err)
	}
	return count, nil
}

func (s *SheetService) find(ctx context.Context, planID, sheetID string) (*ent.Sheet, error) {
	return s.client.Sheet.Query().
		Where(sheet.PlanIDEQ(planID), sheet.SheetIDEQ(sheetID)).
		Only(ctx)
}
