// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plandeck/plandeck/ent/plan"
)

// PlanCreate is the builder for creating a Plan entity.
type PlanCreate struct {
	config
	mutation *PlanMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *PlanCreate) SetProjectID(v string) *PlanCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *PlanCreate) SetOrganizationID(v string) *PlanCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PlanCreate) SetName(v string) *PlanCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *PlanCreate) SetNillableName(v *string) *PlanCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetTotalSheets sets the "total_sheets" field.
func (_c *PlanCreate) SetTotalSheets(v int) *PlanCreate {
	_c.mutation.SetTotalSheets(v)
	return _c
}

// SetNillableTotalSheets sets the "total_sheets" field if the given value is not nil.
func (_c *PlanCreate) SetNillableTotalSheets(v *int) *PlanCreate {
	if v != nil {
		_c.SetTotalSheets(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PlanCreate) SetStatus(v plan.Status) *PlanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PlanCreate) SetNillableStatus(v *plan.Status) *PlanCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetGeneratedImages sets the "generated_images" field.
func (_c *PlanCreate) SetGeneratedImages(v []string) *PlanCreate {
	_c.mutation.SetGeneratedImages(v)
	return _c
}

// SetExtractedMetadata sets the "extracted_metadata" field.
func (_c *PlanCreate) SetExtractedMetadata(v []string) *PlanCreate {
	_c.mutation.SetExtractedMetadata(v)
	return _c
}

// SetValidSheets sets the "valid_sheets" field.
func (_c *PlanCreate) SetValidSheets(v []string) *PlanCreate {
	_c.mutation.SetValidSheets(v)
	return _c
}

// SetSheetNumberMap sets the "sheet_number_map" field.
func (_c *PlanCreate) SetSheetNumberMap(v map[string]string) *PlanCreate {
	_c.mutation.SetSheetNumberMap(v)
	return _c
}

// SetDetectedCallouts sets the "detected_callouts" field.
func (_c *PlanCreate) SetDetectedCallouts(v []string) *PlanCreate {
	_c.mutation.SetDetectedCallouts(v)
	return _c
}

// SetDetectedLayouts sets the "detected_layouts" field.
func (_c *PlanCreate) SetDetectedLayouts(v []string) *PlanCreate {
	_c.mutation.SetDetectedLayouts(v)
	return _c
}

// SetGeneratedTiles sets the "generated_tiles" field.
func (_c *PlanCreate) SetGeneratedTiles(v []string) *PlanCreate {
	_c.mutation.SetGeneratedTiles(v)
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *PlanCreate) SetLastError(v string) *PlanCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *PlanCreate) SetNillableLastError(v *string) *PlanCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlanCreate) SetCreatedAt(v time.Time) *PlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlanCreate) SetNillableCreatedAt(v *time.Time) *PlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeadlineAt sets the "deadline_at" field.
func (_c *PlanCreate) SetDeadlineAt(v time.Time) *PlanCreate {
	_c.mutation.SetDeadlineAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PlanCreate) SetCompletedAt(v time.Time) *PlanCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PlanCreate) SetNillableCompletedAt(v *time.Time) *PlanCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlanCreate) SetID(v string) *PlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PlanMutation object of the builder.
func (_c *PlanCreate) Mutation() *PlanMutation {
	return _c.mutation
}

// Save creates the Plan in the database.
func (_c *PlanCreate) Save(ctx context.Context) (*Plan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanCreate) SaveX(ctx context.Context) *Plan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanCreate) defaults() {
	if _, ok := _c.mutation.TotalSheets(); !ok {
		v := plan.DefaultTotalSheets
		_c.mutation.SetTotalSheets(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := plan.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := plan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Plan.project_id"`)}
	}
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "Plan.organization_id"`)}
	}
	if _, ok := _c.mutation.TotalSheets(); !ok {
		return &ValidationError{Name: "total_sheets", err: errors.New(`ent: missing required field "Plan.total_sheets"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Plan.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := plan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Plan.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Plan.created_at"`)}
	}
	if _, ok := _c.mutation.DeadlineAt(); !ok {
		return &ValidationError{Name: "deadline_at", err: errors.New(`ent: missing required field "Plan.deadline_at"`)}
	}
	return nil
}

func (_c *PlanCreate) sqlSave(ctx context.Context) (*Plan, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Plan.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlanCreate) createSpec() (*Plan, *sqlgraph.CreateSpec) {
	var (
		_node = &Plan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(plan.Table, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(plan.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(plan.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.TotalSheets(); ok {
		_spec.SetField(plan.FieldTotalSheets, field.TypeInt, value)
		_node.TotalSheets = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(plan.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.GeneratedImages(); ok {
		_spec.SetField(plan.FieldGeneratedImages, field.TypeJSON, value)
		_node.GeneratedImages = value
	}
	if value, ok := _c.mutation.ExtractedMetadata(); ok {
		_spec.SetField(plan.FieldExtractedMetadata, field.TypeJSON, value)
		_node.ExtractedMetadata = value
	}
	if value, ok := _c.mutation.ValidSheets(); ok {
		_spec.SetField(plan.FieldValidSheets, field.TypeJSON, value)
		_node.ValidSheets = value
	}
	if value, ok := _c.mutation.SheetNumberMap(); ok {
		_spec.SetField(plan.FieldSheetNumberMap, field.TypeJSON, value)
		_node.SheetNumberMap = value
	}
	if value, ok := _c.mutation.DetectedCallouts(); ok {
		_spec.SetField(plan.FieldDetectedCallouts, field.TypeJSON, value)
		_node.DetectedCallouts = value
	}
	if value, ok := _c.mutation.DetectedLayouts(); ok {
		_spec.SetField(plan.FieldDetectedLayouts, field.TypeJSON, value)
		_node.DetectedLayouts = value
	}
	if value, ok := _c.mutation.GeneratedTiles(); ok {
		_spec.SetField(plan.FieldGeneratedTiles, field.TypeJSON, value)
		_node.GeneratedTiles = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(plan.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(plan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeadlineAt(); ok {
		_spec.SetField(plan.FieldDeadlineAt, field.TypeTime, value)
		_node.DeadlineAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(plan.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// PlanCreateBulk is the builder for creating many Plan entities in bulk.
type PlanCreateBulk struct {
	config
	err      error
	builders []*PlanCreate
}

// Save creates the Plan entities in the database.
func (_c *PlanCreateBulk) Save(ctx context.Context) ([]*Plan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Plan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PlanCreateBulk) SaveX(ctx context.Context) []*Plan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
