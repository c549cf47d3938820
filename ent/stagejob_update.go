// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/plandeck/plandeck/ent/predicate"
	"github.com/plandeck/plandeck/ent/stagejob"
)

// StageJobUpdate is the builder for updating StageJob entities.
type StageJobUpdate struct {
	config
	hooks    []Hook
	mutation *StageJobMutation
}

// Where appends a list predicates to the StageJobUpdate builder.
func (_u *StageJobUpdate) Where(ps ...predicate.StageJob) *StageJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStage sets the "stage" field.
func (_u *StageJobUpdate) SetStage(v stagejob.Stage) *StageJobUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *StageJobUpdate) SetNillableStage(v *stagejob.Stage) *StageJobUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StageJobUpdate) SetStatus(v stagejob.Status) *StageJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageJobUpdate) SetNillableStatus(v *stagejob.Status) *StageJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StageJobUpdate) SetPayload(v json.RawMessage) *StageJobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *StageJobUpdate) AppendPayload(v json.RawMessage) *StageJobUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *StageJobUpdate) SetOrganizationID(v string) *StageJobUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *StageJobUpdate) SetNillableOrganizationID(v *string) *StageJobUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *StageJobUpdate) SetProjectID(v string) *StageJobUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *StageJobUpdate) SetNillableProjectID(v *string) *StageJobUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *StageJobUpdate) SetPlanID(v string) *StageJobUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *StageJobUpdate) SetNillablePlanID(v *string) *StageJobUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetSheetID sets the "sheet_id" field.
func (_u *StageJobUpdate) SetSheetID(v string) *StageJobUpdate {
	_u.mutation.SetSheetID(v)
	return _u
}

// SetNillableSheetID sets the "sheet_id" field if the given value is not nil.
func (_u *StageJobUpdate) SetNillableSheetID(v *string) *StageJobUpdate {
	if v != nil {
		_u.SetSheetID(*v)
	}
	return _u
}

// ClearSheetID clears the value of the "sheet_id" field.
func (_u *StageJobUpdate) ClearSheetID() *StageJobUpdate {
	_u.mutation.ClearSheetID()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *StageJobUpdate) SetAttempts(v int) *StageJobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *StageJobUpdate) SetNillableAttempts(v *int) *StageJobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *StageJobUpdate) AddAttempts(v int) *StageJobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *StageJobUpdate) SetAvailableAt(v time.Time) *StageJobUpdate {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *StageJobUpdate) SetNillableAvailableAt(v *time.Time) *StageJobUpdate {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *StageJobUpdate) SetClaimedBy(v string) *StageJobUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *StageJobUpdate) SetNillableClaimedBy(v *string) *StageJobUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *StageJobUpdate) ClearClaimedBy() *StageJobUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *StageJobUpdate) SetClaimedAt(v time.Time) *StageJobUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *StageJobUpdate) SetNillableClaimedAt(v *time.Time) *StageJobUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *StageJobUpdate) ClearClaimedAt() *StageJobUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StageJobUpdate) SetCompletedAt(v time.Time) *StageJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StageJobUpdate) SetNillableCompletedAt(v *time.Time) *StageJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StageJobUpdate) ClearCompletedAt() *StageJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *StageJobUpdate) SetLastError(v string) *StageJobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *StageJobUpdate) SetNillableLastError(v *string) *StageJobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *StageJobUpdate) ClearLastError() *StageJobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StageJobUpdate) SetCreatedAt(v time.Time) *StageJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StageJobUpdate) SetNillableCreatedAt(v *time.Time) *StageJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the StageJobMutation object of the builder.
func (_u *StageJobUpdate) Mutation() *StageJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageJobUpdate) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := stagejob.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "StageJob.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := stagejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *StageJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagejob.Table, stagejob.Columns, sqlgraph.NewFieldSpec(stagejob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(stagejob.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stagejob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagejob.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagejob.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(stagejob.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(stagejob.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(stagejob.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SheetID(); ok {
		_spec.SetField(stagejob.FieldSheetID, field.TypeString, value)
	}
	if _u.mutation.SheetIDCleared() {
		_spec.ClearField(stagejob.FieldSheetID, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(stagejob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(stagejob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(stagejob.FieldAvailableAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(stagejob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(stagejob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(stagejob.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(stagejob.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stagejob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stagejob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(stagejob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(stagejob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stagejob.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageJobUpdateOne is the builder for updating a single StageJob entity.
type StageJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageJobMutation
}

// SetStage sets the "stage" field.
func (_u *StageJobUpdateOne) SetStage(v stagejob.Stage) *StageJobUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *StageJobUpdateOne) SetNillableStage(v *stagejob.Stage) *StageJobUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StageJobUpdateOne) SetStatus(v stagejob.Status) *StageJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StageJobUpdateOne) SetNillableStatus(v *stagejob.Status) *StageJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StageJobUpdateOne) SetPayload(v json.RawMessage) *StageJobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *StageJobUpdateOne) AppendPayload(v json.RawMessage) *StageJobUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *StageJobUpdateOne) SetOrganizationID(v string) *StageJobUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *StageJobUpdateOne) SetNillableOrganizationID(v *string) *StageJobUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *StageJobUpdateOne) SetProjectID(v string) *StageJobUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *StageJobUpdateOne) SetNillableProjectID(v *string) *StageJobUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *StageJobUpdateOne) SetPlanID(v string) *StageJobUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *StageJobUpdateOne) SetNillablePlanID(v *string) *StageJobUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetSheetID sets the "sheet_id" field.
func (_u *StageJobUpdateOne) SetSheetID(v string) *StageJobUpdateOne {
	_u.mutation.SetSheetID(v)
	return _u
}

// SetNillableSheetID sets the "sheet_id" field if the given value is not nil.
func (_u *StageJobUpdateOne) SetNillableSheetID(v *string) *StageJobUpdateOne {
	if v != nil {
		_u.SetSheetID(*v)
	}
	return _u
}

// ClearSheetID clears the value of the "sheet_id" field.
func (_u *StageJobUpdateOne) ClearSheetID() *StageJobUpdateOne {
	_u.mutation.ClearSheetID()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *StageJobUpdateOne) SetAttempts(v int) *StageJobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *StageJobUpdateOne) SetNillableAttempts(v *int) *StageJobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *StageJobUpdateOne) AddAttempts(v int) *StageJobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *StageJobUpdateOne) SetAvailableAt(v time.Time) *StageJobUpdateOne {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *StageJobUpdateOne) SetNillableAvailableAt(v *time.Time) *StageJobUpdateOne {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *StageJobUpdateOne) SetClaimedBy(v string) *StageJobUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *StageJobUpdateOne) SetNillableClaimedBy(v *string) *StageJobUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *StageJobUpdateOne) ClearClaimedBy() *StageJobUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *StageJobUpdateOne) SetClaimedAt(v time.Time) *StageJobUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *StageJobUpdateOne) SetNillableClaimedAt(v *time.Time) *StageJobUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *StageJobUpdateOne) ClearClaimedAt() *StageJobUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StageJobUpdateOne) SetCompletedAt(v time.Time) *StageJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StageJobUpdateOne) SetNillableCompletedAt(v *time.Time) *StageJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StageJobUpdateOne) ClearCompletedAt() *StageJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *StageJobUpdateOne) SetLastError(v string) *StageJobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *StageJobUpdateOne) SetNillableLastError(v *string) *StageJobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *StageJobUpdateOne) ClearLastError() *StageJobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StageJobUpdateOne) SetCreatedAt(v time.Time) *StageJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StageJobUpdateOne) SetNillableCreatedAt(v *time.Time) *StageJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the StageJobMutation object of the builder.
func (_u *StageJobUpdateOne) Mutation() *StageJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the StageJobUpdate builder.
func (_u *StageJobUpdateOne) Where(ps ...predicate.StageJob) *StageJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageJobUpdateOne) Select(field string, fields ...string) *StageJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageJob entity.
func (_u *StageJobUpdateOne) Save(ctx context.Context) (*StageJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageJobUpdateOne) SaveX(ctx context.Context) *StageJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageJobUpdateOne) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := stagejob.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "StageJob.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := stagejob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StageJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *StageJobUpdateOne) sqlSave(ctx context.Context) (_node *StageJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stagejob.Table, stagejob.Columns, sqlgraph.NewFieldSpec(stagejob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stagejob.FieldID)
		for _, f := range fields {
			if !stagejob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stagejob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(stagejob.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stagejob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stagejob.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, stagejob.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(stagejob.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(stagejob.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(stagejob.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SheetID(); ok {
		_spec.SetField(stagejob.FieldSheetID, field.TypeString, value)
	}
	if _u.mutation.SheetIDCleared() {
		_spec.ClearField(stagejob.FieldSheetID, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(stagejob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(stagejob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(stagejob.FieldAvailableAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(stagejob.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(stagejob.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(stagejob.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(stagejob.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stagejob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stagejob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(stagejob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(stagejob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stagejob.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &StageJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stagejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
