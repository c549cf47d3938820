// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/plandeck/plandeck/ent/plan"
	"github.com/plandeck/plandeck/ent/predicate"
)

// PlanUpdate is the builder for updating Plan entities.
type PlanUpdate struct {
	config
	hooks    []Hook
	mutation *PlanMutation
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdate) Where(ps ...predicate.Plan) *PlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *PlanUpdate) SetProjectID(v string) *PlanUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableProjectID(v *string) *PlanUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *PlanUpdate) SetOrganizationID(v string) *PlanUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableOrganizationID(v *string) *PlanUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PlanUpdate) SetName(v string) *PlanUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableName(v *string) *PlanUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *PlanUpdate) ClearName() *PlanUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetTotalSheets sets the "total_sheets" field.
func (_u *PlanUpdate) SetTotalSheets(v int) *PlanUpdate {
	_u.mutation.ResetTotalSheets()
	_u.mutation.SetTotalSheets(v)
	return _u
}

// SetNillableTotalSheets sets the "total_sheets" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableTotalSheets(v *int) *PlanUpdate {
	if v != nil {
		_u.SetTotalSheets(*v)
	}
	return _u
}

// AddTotalSheets adds value to the "total_sheets" field.
func (_u *PlanUpdate) AddTotalSheets(v int) *PlanUpdate {
	_u.mutation.AddTotalSheets(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanUpdate) SetStatus(v plan.Status) *PlanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableStatus(v *plan.Status) *PlanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGeneratedImages sets the "generated_images" field.
func (_u *PlanUpdate) SetGeneratedImages(v []string) *PlanUpdate {
	_u.mutation.SetGeneratedImages(v)
	return _u
}

// AppendGeneratedImages appends value to the "generated_images" field.
func (_u *PlanUpdate) AppendGeneratedImages(v []string) *PlanUpdate {
	_u.mutation.AppendGeneratedImages(v)
	return _u
}

// ClearGeneratedImages clears the value of the "generated_images" field.
func (_u *PlanUpdate) ClearGeneratedImages() *PlanUpdate {
	_u.mutation.ClearGeneratedImages()
	return _u
}

// SetExtractedMetadata sets the "extracted_metadata" field.
func (_u *PlanUpdate) SetExtractedMetadata(v []string) *PlanUpdate {
	_u.mutation.SetExtractedMetadata(v)
	return _u
}

// AppendExtractedMetadata appends value to the "extracted_metadata" field.
func (_u *PlanUpdate) AppendExtractedMetadata(v []string) *PlanUpdate {
	_u.mutation.AppendExtractedMetadata(v)
	return _u
}

// ClearExtractedMetadata clears the value of the "extracted_metadata" field.
func (_u *PlanUpdate) ClearExtractedMetadata() *PlanUpdate {
	_u.mutation.ClearExtractedMetadata()
	return _u
}

// SetValidSheets sets the "valid_sheets" field.
func (_u *PlanUpdate) SetValidSheets(v []string) *PlanUpdate {
	_u.mutation.SetValidSheets(v)
	return _u
}

// AppendValidSheets appends value to the "valid_sheets" field.
func (_u *PlanUpdate) AppendValidSheets(v []string) *PlanUpdate {
	_u.mutation.AppendValidSheets(v)
	return _u
}

// ClearValidSheets clears the value of the "valid_sheets" field.
func (_u *PlanUpdate) ClearValidSheets() *PlanUpdate {
	_u.mutation.ClearValidSheets()
	return _u
}

// SetSheetNumberMap sets the "sheet_number_map" field.
func (_u *PlanUpdate) SetSheetNumberMap(v map[string]string) *PlanUpdate {
	_u.mutation.SetSheetNumberMap(v)
	return _u
}

// ClearSheetNumberMap clears the value of the "sheet_number_map" field.
func (_u *PlanUpdate) ClearSheetNumberMap() *PlanUpdate {
	_u.mutation.ClearSheetNumberMap()
	return _u
}

// SetDetectedCallouts sets the "detected_callouts" field.
func (_u *PlanUpdate) SetDetectedCallouts(v []string) *PlanUpdate {
	_u.mutation.SetDetectedCallouts(v)
	return _u
}

// AppendDetectedCallouts appends value to the "detected_callouts" field.
func (_u *PlanUpdate) AppendDetectedCallouts(v []string) *PlanUpdate {
	_u.mutation.AppendDetectedCallouts(v)
	return _u
}

// ClearDetectedCallouts clears the value of the "detected_callouts" field.
func (_u *PlanUpdate) ClearDetectedCallouts() *PlanUpdate {
	_u.mutation.ClearDetectedCallouts()
	return _u
}

// SetDetectedLayouts sets the "detected_layouts" field.
func (_u *PlanUpdate) SetDetectedLayouts(v []string) *PlanUpdate {
	_u.mutation.SetDetectedLayouts(v)
	return _u
}

// AppendDetectedLayouts appends value to the "detected_layouts" field.
func (_u *PlanUpdate) AppendDetectedLayouts(v []string) *PlanUpdate {
	_u.mutation.AppendDetectedLayouts(v)
	return _u
}

// ClearDetectedLayouts clears the value of the "detected_layouts" field.
func (_u *PlanUpdate) ClearDetectedLayouts() *PlanUpdate {
	_u.mutation.ClearDetectedLayouts()
	return _u
}

// SetGeneratedTiles sets the "generated_tiles" field.
func (_u *PlanUpdate) SetGeneratedTiles(v []string) *PlanUpdate {
	_u.mutation.SetGeneratedTiles(v)
	return _u
}

// AppendGeneratedTiles appends value to the "generated_tiles" field.
func (_u *PlanUpdate) AppendGeneratedTiles(v []string) *PlanUpdate {
	_u.mutation.AppendGeneratedTiles(v)
	return _u
}

// ClearGeneratedTiles clears the value of the "generated_tiles" field.
func (_u *PlanUpdate) ClearGeneratedTiles() *PlanUpdate {
	_u.mutation.ClearGeneratedTiles()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PlanUpdate) SetLastError(v string) *PlanUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableLastError(v *string) *PlanUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PlanUpdate) ClearLastError() *PlanUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PlanUpdate) SetCreatedAt(v time.Time) *PlanUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableCreatedAt(v *time.Time) *PlanUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDeadlineAt sets the "deadline_at" field.
func (_u *PlanUpdate) SetDeadlineAt(v time.Time) *PlanUpdate {
	_u.mutation.SetDeadlineAt(v)
	return _u
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableDeadlineAt(v *time.Time) *PlanUpdate {
	if v != nil {
		_u.SetDeadlineAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlanUpdate) SetCompletedAt(v time.Time) *PlanUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlanUpdate) SetNillableCompletedAt(v *time.Time) *PlanUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlanUpdate) ClearCompletedAt() *PlanUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdate) Mutation() *PlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := plan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Plan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(plan.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(plan.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(plan.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.TotalSheets(); ok {
		_spec.SetField(plan.FieldTotalSheets, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSheets(); ok {
		_spec.AddField(plan.FieldTotalSheets, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(plan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GeneratedImages(); ok {
		_spec.SetField(plan.FieldGeneratedImages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeneratedImages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldGeneratedImages, value)
		})
	}
	if _u.mutation.GeneratedImagesCleared() {
		_spec.ClearField(plan.FieldGeneratedImages, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedMetadata(); ok {
		_spec.SetField(plan.FieldExtractedMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldExtractedMetadata, value)
		})
	}
	if _u.mutation.ExtractedMetadataCleared() {
		_spec.ClearField(plan.FieldExtractedMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidSheets(); ok {
		_spec.SetField(plan.FieldValidSheets, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidSheets(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldValidSheets, value)
		})
	}
	if _u.mutation.ValidSheetsCleared() {
		_spec.ClearField(plan.FieldValidSheets, field.TypeJSON)
	}
	if value, ok := _u.mutation.SheetNumberMap(); ok {
		_spec.SetField(plan.FieldSheetNumberMap, field.TypeJSON, value)
	}
	if _u.mutation.SheetNumberMapCleared() {
		_spec.ClearField(plan.FieldSheetNumberMap, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetectedCallouts(); ok {
		_spec.SetField(plan.FieldDetectedCallouts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedCallouts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldDetectedCallouts, value)
		})
	}
	if _u.mutation.DetectedCalloutsCleared() {
		_spec.ClearField(plan.FieldDetectedCallouts, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetectedLayouts(); ok {
		_spec.SetField(plan.FieldDetectedLayouts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedLayouts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldDetectedLayouts, value)
		})
	}
	if _u.mutation.DetectedLayoutsCleared() {
		_spec.ClearField(plan.FieldDetectedLayouts, field.TypeJSON)
	}
	if value, ok := _u.mutation.GeneratedTiles(); ok {
		_spec.SetField(plan.FieldGeneratedTiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeneratedTiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldGeneratedTiles, value)
		})
	}
	if _u.mutation.GeneratedTilesCleared() {
		_spec.ClearField(plan.FieldGeneratedTiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(plan.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(plan.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(plan.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeadlineAt(); ok {
		_spec.SetField(plan.FieldDeadlineAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(plan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(plan.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanUpdateOne is the builder for updating a single Plan entity.
type PlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanMutation
}

// SetProjectID sets the "project_id" field.
func (_u *PlanUpdateOne) SetProjectID(v string) *PlanUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableProjectID(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *PlanUpdateOne) SetOrganizationID(v string) *PlanUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableOrganizationID(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PlanUpdateOne) SetName(v string) *PlanUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableName(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *PlanUpdateOne) ClearName() *PlanUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetTotalSheets sets the "total_sheets" field.
func (_u *PlanUpdateOne) SetTotalSheets(v int) *PlanUpdateOne {
	_u.mutation.ResetTotalSheets()
	_u.mutation.SetTotalSheets(v)
	return _u
}

// SetNillableTotalSheets sets the "total_sheets" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableTotalSheets(v *int) *PlanUpdateOne {
	if v != nil {
		_u.SetTotalSheets(*v)
	}
	return _u
}

// AddTotalSheets adds value to the "total_sheets" field.
func (_u *PlanUpdateOne) AddTotalSheets(v int) *PlanUpdateOne {
	_u.mutation.AddTotalSheets(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanUpdateOne) SetStatus(v plan.Status) *PlanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableStatus(v *plan.Status) *PlanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGeneratedImages sets the "generated_images" field.
func (_u *PlanUpdateOne) SetGeneratedImages(v []string) *PlanUpdateOne {
	_u.mutation.SetGeneratedImages(v)
	return _u
}

// AppendGeneratedImages appends value to the "generated_images" field.
func (_u *PlanUpdateOne) AppendGeneratedImages(v []string) *PlanUpdateOne {
	_u.mutation.AppendGeneratedImages(v)
	return _u
}

// ClearGeneratedImages clears the value of the "generated_images" field.
func (_u *PlanUpdateOne) ClearGeneratedImages() *PlanUpdateOne {
	_u.mutation.ClearGeneratedImages()
	return _u
}

// SetExtractedMetadata sets the "extracted_metadata" field.
func (_u *PlanUpdateOne) SetExtractedMetadata(v []string) *PlanUpdateOne {
	_u.mutation.SetExtractedMetadata(v)
	return _u
}

// AppendExtractedMetadata appends value to the "extracted_metadata" field.
func (_u *PlanUpdateOne) AppendExtractedMetadata(v []string) *PlanUpdateOne {
	_u.mutation.AppendExtractedMetadata(v)
	return _u
}

// ClearExtractedMetadata clears the value of the "extracted_metadata" field.
func (_u *PlanUpdateOne) ClearExtractedMetadata() *PlanUpdateOne {
	_u.mutation.ClearExtractedMetadata()
	return _u
}

// SetValidSheets sets the "valid_sheets" field.
func (_u *PlanUpdateOne) SetValidSheets(v []string) *PlanUpdateOne {
	_u.mutation.SetValidSheets(v)
	return _u
}

// AppendValidSheets appends value to the "valid_sheets" field.
func (_u *PlanUpdateOne) AppendValidSheets(v []string) *PlanUpdateOne {
	_u.mutation.AppendValidSheets(v)
	return _u
}

// ClearValidSheets clears the value of the "valid_sheets" field.
func (_u *PlanUpdateOne) ClearValidSheets() *PlanUpdateOne {
	_u.mutation.ClearValidSheets()
	return _u
}

// SetSheetNumberMap sets the "sheet_number_map" field.
func (_u *PlanUpdateOne) SetSheetNumberMap(v map[string]string) *PlanUpdateOne {
	_u.mutation.SetSheetNumberMap(v)
	return _u
}

// ClearSheetNumberMap clears the value of the "sheet_number_map" field.
func (_u *PlanUpdateOne) ClearSheetNumberMap() *PlanUpdateOne {
	_u.mutation.ClearSheetNumberMap()
	return _u
}

// SetDetectedCallouts sets the "detected_callouts" field.
func (_u *PlanUpdateOne) SetDetectedCallouts(v []string) *PlanUpdateOne {
	_u.mutation.SetDetectedCallouts(v)
	return _u
}

// AppendDetectedCallouts appends value to the "detected_callouts" field.
func (_u *PlanUpdateOne) AppendDetectedCallouts(v []string) *PlanUpdateOne {
	_u.mutation.AppendDetectedCallouts(v)
	return _u
}

// ClearDetectedCallouts clears the value of the "detected_callouts" field.
func (_u *PlanUpdateOne) ClearDetectedCallouts() *PlanUpdateOne {
	_u.mutation.ClearDetectedCallouts()
	return _u
}

// SetDetectedLayouts sets the "detected_layouts" field.
func (_u *PlanUpdateOne) SetDetectedLayouts(v []string) *PlanUpdateOne {
	_u.mutation.SetDetectedLayouts(v)
	return _u
}

// AppendDetectedLayouts appends value to the "detected_layouts" field.
func (_u *PlanUpdateOne) AppendDetectedLayouts(v []string) *PlanUpdateOne {
	_u.mutation.AppendDetectedLayouts(v)
	return _u
}

// ClearDetectedLayouts clears the value of the "detected_layouts" field.
func (_u *PlanUpdateOne) ClearDetectedLayouts() *PlanUpdateOne {
	_u.mutation.ClearDetectedLayouts()
	return _u
}

// SetGeneratedTiles sets the "generated_tiles" field.
func (_u *PlanUpdateOne) SetGeneratedTiles(v []string) *PlanUpdateOne {
	_u.mutation.SetGeneratedTiles(v)
	return _u
}

// AppendGeneratedTiles appends value to the "generated_tiles" field.
func (_u *PlanUpdateOne) AppendGeneratedTiles(v []string) *PlanUpdateOne {
	_u.mutation.AppendGeneratedTiles(v)
	return _u
}

// ClearGeneratedTiles clears the value of the "generated_tiles" field.
func (_u *PlanUpdateOne) ClearGeneratedTiles() *PlanUpdateOne {
	_u.mutation.ClearGeneratedTiles()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PlanUpdateOne) SetLastError(v string) *PlanUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableLastError(v *string) *PlanUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PlanUpdateOne) ClearLastError() *PlanUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PlanUpdateOne) SetCreatedAt(v time.Time) *PlanUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableCreatedAt(v *time.Time) *PlanUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDeadlineAt sets the "deadline_at" field.
func (_u *PlanUpdateOne) SetDeadlineAt(v time.Time) *PlanUpdateOne {
	_u.mutation.SetDeadlineAt(v)
	return _u
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableDeadlineAt(v *time.Time) *PlanUpdateOne {
	if v != nil {
		_u.SetDeadlineAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlanUpdateOne) SetCompletedAt(v time.Time) *PlanUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlanUpdateOne) SetNillableCompletedAt(v *time.Time) *PlanUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlanUpdateOne) ClearCompletedAt() *PlanUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the PlanMutation object of the builder.
func (_u *PlanUpdateOne) Mutation() *PlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanUpdate builder.
func (_u *PlanUpdateOne) Where(ps ...predicate.Plan) *PlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanUpdateOne) Select(field string, fields ...string) *PlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Plan entity.
func (_u *PlanUpdateOne) Save(ctx context.Context) (*Plan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanUpdateOne) SaveX(ctx context.Context) *Plan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := plan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Plan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanUpdateOne) sqlSave(ctx context.Context) (_node *Plan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plan.Table, plan.Columns, sqlgraph.NewFieldSpec(plan.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Plan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plan.FieldID)
		for _, f := range fields {
			if !plan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plan.FieldID {
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
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(plan.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(plan.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(plan.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(plan.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.TotalSheets(); ok {
		_spec.SetField(plan.FieldTotalSheets, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSheets(); ok {
		_spec.AddField(plan.FieldTotalSheets, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(plan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GeneratedImages(); ok {
		_spec.SetField(plan.FieldGeneratedImages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeneratedImages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldGeneratedImages, value)
		})
	}
	if _u.mutation.GeneratedImagesCleared() {
		_spec.ClearField(plan.FieldGeneratedImages, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedMetadata(); ok {
		_spec.SetField(plan.FieldExtractedMetadata, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedMetadata(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldExtractedMetadata, value)
		})
	}
	if _u.mutation.ExtractedMetadataCleared() {
		_spec.ClearField(plan.FieldExtractedMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ValidSheets(); ok {
		_spec.SetField(plan.FieldValidSheets, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidSheets(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldValidSheets, value)
		})
	}
	if _u.mutation.ValidSheetsCleared() {
		_spec.ClearField(plan.FieldValidSheets, field.TypeJSON)
	}
	if value, ok := _u.mutation.SheetNumberMap(); ok {
		_spec.SetField(plan.FieldSheetNumberMap, field.TypeJSON, value)
	}
	if _u.mutation.SheetNumberMapCleared() {
		_spec.ClearField(plan.FieldSheetNumberMap, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetectedCallouts(); ok {
		_spec.SetField(plan.FieldDetectedCallouts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedCallouts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldDetectedCallouts, value)
		})
	}
	if _u.mutation.DetectedCalloutsCleared() {
		_spec.ClearField(plan.FieldDetectedCallouts, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetectedLayouts(); ok {
		_spec.SetField(plan.FieldDetectedLayouts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetectedLayouts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldDetectedLayouts, value)
		})
	}
	if _u.mutation.DetectedLayoutsCleared() {
		_spec.ClearField(plan.FieldDetectedLayouts, field.TypeJSON)
	}
	if value, ok := _u.mutation.GeneratedTiles(); ok {
		_spec.SetField(plan.FieldGeneratedTiles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGeneratedTiles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, plan.FieldGeneratedTiles, value)
		})
	}
	if _u.mutation.GeneratedTilesCleared() {
		_spec.ClearField(plan.FieldGeneratedTiles, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(plan.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(plan.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(plan.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeadlineAt(); ok {
		_spec.SetField(plan.FieldDeadlineAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(plan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(plan.FieldCompletedAt, field.TypeTime)
	}
	_node = &Plan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
