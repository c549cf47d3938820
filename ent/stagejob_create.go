// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plandeck/plandeck/ent/stagejob"
)

// StageJobCreate is the builder for creating a StageJob entity.
type StageJobCreate struct {
	config
	mutation *StageJobMutation
	hooks    []Hook
}

// SetStage sets the "stage" field.
func (_c *StageJobCreate) SetStage(v stagejob.Stage) *StageJobCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StageJobCreate) SetStatus(v stagejob.Status) *StageJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StageJobCreate) SetNillableStatus(v *stagejob.Status) *StageJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *StageJobCreate) SetPayload(v json.RawMessage) *StageJobCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *StageJobCreate) SetOrganizationID(v string) *StageJobCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *StageJobCreate) SetProjectID(v string) *StageJobCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetPlanID sets the "plan_id" field.
func (_c *StageJobCreate) SetPlanID(v string) *StageJobCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetSheetID sets the "sheet_id" field.
func (_c *StageJobCreate) SetSheetID(v string) *StageJobCreate {
	_c.mutation.SetSheetID(v)
	return _c
}

// SetNillableSheetID sets the "sheet_id" field if the given value is not nil.
func (_c *StageJobCreate) SetNillableSheetID(v *string) *StageJobCreate {
	if v != nil {
		_c.SetSheetID(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *StageJobCreate) SetAttempts(v int) *StageJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *StageJobCreate) SetNillableAttempts(v *int) *StageJobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetAvailableAt sets the "available_at" field.
func (_c *StageJobCreate) SetAvailableAt(v time.Time) *StageJobCreate {
	_c.mutation.SetAvailableAt(v)
	return _c
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_c *StageJobCreate) SetNillableAvailableAt(v *time.Time) *StageJobCreate {
	if v != nil {
		_c.SetAvailableAt(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *StageJobCreate) SetClaimedBy(v string) *StageJobCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *StageJobCreate) SetNillableClaimedBy(v *string) *StageJobCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *StageJobCreate) SetClaimedAt(v time.Time) *StageJobCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *StageJobCreate) SetNillableClaimedAt(v *time.Time) *StageJobCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StageJobCreate) SetCompletedAt(v time.Time) *StageJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StageJobCreate) SetNillableCompletedAt(v *time.Time) *StageJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *StageJobCreate) SetLastError(v string) *StageJobCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *StageJobCreate) SetNillableLastError(v *string) *StageJobCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StageJobCreate) SetCreatedAt(v time.Time) *StageJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StageJobCreate) SetNillableCreatedAt(v *time.Time) *StageJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageJobCreate) SetID(v string) *StageJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StageJobMutation object of the builder.
func (_c *StageJobCreate) Mutation() *StageJobMutation {
	return _c.mutation
}

// Save creates the StageJob in the database.
func (_c *StageJobCreate) Save(ctx context.Context) (*StageJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageJobCreate) SaveX(ctx context.Context) *StageJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := stagejob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := stagejob.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.AvailableAt(); !ok {
		v := stagejob.DefaultAvailableAt()
		_c.mutation.SetAvailableAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stagejob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageJobCreate) check() error {
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "StageJob.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := stagejob.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "StageJob.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StageJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stagejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "StageJob.payload"`)}
	}
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "StageJob.organization_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "StageJob.project_id"`)}
	}
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "StageJob.plan_id"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "StageJob.attempts"`)}
	}
	if _, ok := _c.mutation.AvailableAt(); !ok {
		return &ValidationError{Name: "available_at", err: errors.New(`ent: missing required field "StageJob.available_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StageJob.created_at"`)}
	}
	return nil
}

func (_c *StageJobCreate) sqlSave(ctx context.Context) (*StageJob, error) {
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
			return nil, fmt.Errorf("unexpected StageJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageJobCreate) createSpec() (*StageJob, *sqlgraph.CreateSpec) {
	var (
		_node = &StageJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stagejob.Table, sqlgraph.NewFieldSpec(stagejob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(stagejob.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stagejob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(stagejob.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(stagejob.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(stagejob.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(stagejob.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.SheetID(); ok {
		_spec.SetField(stagejob.FieldSheetID, field.TypeString, value)
		_node.SheetID = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(stagejob.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.AvailableAt(); ok {
		_spec.SetField(stagejob.FieldAvailableAt, field.TypeTime, value)
		_node.AvailableAt = value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(stagejob.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(stagejob.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(stagejob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(stagejob.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stagejob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StageJobCreateBulk is the builder for creating many StageJob entities in bulk.
type StageJobCreateBulk struct {
	config
	err      error
	builders []*StageJobCreate
}

// Save creates the StageJob entities in the database.
func (_c *StageJobCreateBulk) Save(ctx context.Context) ([]*StageJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageJobMutation)
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
func (_c *StageJobCreateBulk) SaveX(ctx context.Context) []*StageJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
