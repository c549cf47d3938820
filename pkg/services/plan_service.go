package services

import (
	"context"
	"fmt"

	"github.com/plandeck/plandeck/ent"
	"github.com/plandeck/plandeck/ent/plan"
	"github.com/plandeck/plandeck/pkg/models"
)

// PlanService is the read surface over plan rows for the HTTP API. Writes
// go through the coordinator, which owns all state transitions.
type PlanService struct {
	client *ent.Client
}

// NewPlanService creates a new PlanService
func NewPlanService(client *ent.Client) *PlanService {
	return &PlanService{client: client}
}

// GetPlan returns one plan row.
func (s *PlanService) GetPlan(ctx context.Context, planID string) (*ent.Plan, error) {
	row, err := s.client.Plan.Get(ctx, planID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("plan %s: %w", planID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return row, nil
}

// ListProjectPlans returns the plans of one project, newest first.
func (s *PlanService) ListProjectPlans(ctx context.Context, organizationID, projectID string) ([]*ent.Plan, error) {
	rows, err := s.client.Plan.Query().
		Where(
			plan.OrganizationIDEQ(organizationID),
			plan.ProjectIDEQ(projectID),
		).
		Order(ent.Desc(plan.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return rows, nil
}

// CountByStatus returns the number of plans per status. Health surface.
func (s *PlanService) CountByStatus(ctx context.Context) (map[models.PlanStatus]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.Plan.Query().
		GroupBy(plan.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count plans: %w", err)
	}

	counts := make(map[models.PlanStatus]int, len(rows))
	for _, r := range rows {
		counts[models.PlanStatus(r.Status)] = r.Count
	}
	return counts, nil
}
