// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plandeck/plandeck/ent/predicate"
	"github.com/plandeck/plandeck/ent/sheet"
)

// SheetUpdate is the builder for updating Sheet entities.
type SheetUpdate struct {
	config
	hooks    []Hook
	mutation *SheetMutation
}

// Where appends a list predicates to the SheetUpdate builder.
func (_u *SheetUpdate) Where(ps ...predicate.Sheet) *SheetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *SheetUpdate) SetPlanID(v string) *SheetUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *SheetUpdate) SetNillablePlanID(v *string) *SheetUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *SheetUpdate) SetProjectID(v string) *SheetUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableProjectID(v *string) *SheetUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *SheetUpdate) SetOrganizationID(v string) *SheetUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableOrganizationID(v *string) *SheetUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetSheetID sets the "sheet_id" field.
func (_u *SheetUpdate) SetSheetID(v string) *SheetUpdate {
	_u.mutation.SetSheetID(v)
	return _u
}

// SetNillableSheetID sets the "sheet_id" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableSheetID(v *string) *SheetUpdate {
	if v != nil {
		_u.SetSheetID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *SheetUpdate) SetPageNumber(v int) *SheetUpdate {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *SheetUpdate) SetNillablePageNumber(v *int) *SheetUpdate {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *SheetUpdate) AddPageNumber(v int) *SheetUpdate {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetSheetNumber sets the "sheet_number" field.
func (_u *SheetUpdate) SetSheetNumber(v string) *SheetUpdate {
	_u.mutation.SetSheetNumber(v)
	return _u
}

// SetNillableSheetNumber sets the "sheet_number" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableSheetNumber(v *string) *SheetUpdate {
	if v != nil {
		_u.SetSheetNumber(*v)
	}
	return _u
}

// ClearSheetNumber clears the value of the "sheet_number" field.
func (_u *SheetUpdate) ClearSheetNumber() *SheetUpdate {
	_u.mutation.ClearSheetNumber()
	return _u
}

// SetTitle sets the "title" field.
func (_u *SheetUpdate) SetTitle(v string) *SheetUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableTitle(v *string) *SheetUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SheetUpdate) ClearTitle() *SheetUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetDiscipline sets the "discipline" field.
func (_u *SheetUpdate) SetDiscipline(v string) *SheetUpdate {
	_u.mutation.SetDiscipline(v)
	return _u
}

// SetNillableDiscipline sets the "discipline" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableDiscipline(v *string) *SheetUpdate {
	if v != nil {
		_u.SetDiscipline(*v)
	}
	return _u
}

// ClearDiscipline clears the value of the "discipline" field.
func (_u *SheetUpdate) ClearDiscipline() *SheetUpdate {
	_u.mutation.ClearDiscipline()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *SheetUpdate) SetIsValid(v bool) *SheetUpdate {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableIsValid(v *bool) *SheetUpdate {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// SetWidth sets the "width" field.
func (_u *SheetUpdate) SetWidth(v int) *SheetUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableWidth(v *int) *SheetUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *SheetUpdate) AddWidth(v int) *SheetUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// ClearWidth clears the value of the "width" field.
func (_u *SheetUpdate) ClearWidth() *SheetUpdate {
	_u.mutation.ClearWidth()
	return _u
}

// SetHeight sets the "height" field.
func (_u *SheetUpdate) SetHeight(v int) *SheetUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableHeight(v *int) *SheetUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *SheetUpdate) AddHeight(v int) *SheetUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *SheetUpdate) ClearHeight() *SheetUpdate {
	_u.mutation.ClearHeight()
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *SheetUpdate) SetImagePath(v string) *SheetUpdate {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableImagePath(v *string) *SheetUpdate {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// ClearImagePath clears the value of the "image_path" field.
func (_u *SheetUpdate) ClearImagePath() *SheetUpdate {
	_u.mutation.ClearImagePath()
	return _u
}

// SetTilesPath sets the "tiles_path" field.
func (_u *SheetUpdate) SetTilesPath(v string) *SheetUpdate {
	_u.mutation.SetTilesPath(v)
	return _u
}

// SetNillableTilesPath sets the "tiles_path" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableTilesPath(v *string) *SheetUpdate {
	if v != nil {
		_u.SetTilesPath(*v)
	}
	return _u
}

// ClearTilesPath clears the value of the "tiles_path" field.
func (_u *SheetUpdate) ClearTilesPath() *SheetUpdate {
	_u.mutation.ClearTilesPath()
	return _u
}

// SetMinZoom sets the "min_zoom" field.
func (_u *SheetUpdate) SetMinZoom(v int) *SheetUpdate {
	_u.mutation.ResetMinZoom()
	_u.mutation.SetMinZoom(v)
	return _u
}

// SetNillableMinZoom sets the "min_zoom" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableMinZoom(v *int) *SheetUpdate {
	if v != nil {
		_u.SetMinZoom(*v)
	}
	return _u
}

// AddMinZoom adds value to the "min_zoom" field.
func (_u *SheetUpdate) AddMinZoom(v int) *SheetUpdate {
	_u.mutation.AddMinZoom(v)
	return _u
}

// ClearMinZoom clears the value of the "min_zoom" field.
func (_u *SheetUpdate) ClearMinZoom() *SheetUpdate {
	_u.mutation.ClearMinZoom()
	return _u
}

// SetMaxZoom sets the "max_zoom" field.
func (_u *SheetUpdate) SetMaxZoom(v int) *SheetUpdate {
	_u.mutation.ResetMaxZoom()
	_u.mutation.SetMaxZoom(v)
	return _u
}

// SetNillableMaxZoom sets the "max_zoom" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableMaxZoom(v *int) *SheetUpdate {
	if v != nil {
		_u.SetMaxZoom(*v)
	}
	return _u
}

// AddMaxZoom adds value to the "max_zoom" field.
func (_u *SheetUpdate) AddMaxZoom(v int) *SheetUpdate {
	_u.mutation.AddMaxZoom(v)
	return _u
}

// ClearMaxZoom clears the value of the "max_zoom" field.
func (_u *SheetUpdate) ClearMaxZoom() *SheetUpdate {
	_u.mutation.ClearMaxZoom()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SheetUpdate) SetCreatedAt(v time.Time) *SheetUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SheetUpdate) SetNillableCreatedAt(v *time.Time) *SheetUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SheetUpdate) SetUpdatedAt(v time.Time) *SheetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SheetMutation object of the builder.
func (_u *SheetUpdate) Mutation() *SheetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SheetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SheetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SheetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SheetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SheetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sheet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SheetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sheet.Table, sheet.Columns, sqlgraph.NewFieldSpec(sheet.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(sheet.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(sheet.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(sheet.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SheetID(); ok {
		_spec.SetField(sheet.FieldSheetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(sheet.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(sheet.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SheetNumber(); ok {
		_spec.SetField(sheet.FieldSheetNumber, field.TypeString, value)
	}
	if _u.mutation.SheetNumberCleared() {
		_spec.ClearField(sheet.FieldSheetNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(sheet.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(sheet.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Discipline(); ok {
		_spec.SetField(sheet.FieldDiscipline, field.TypeString, value)
	}
	if _u.mutation.DisciplineCleared() {
		_spec.ClearField(sheet.FieldDiscipline, field.TypeString)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(sheet.FieldIsValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(sheet.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(sheet.FieldWidth, field.TypeInt, value)
	}
	if _u.mutation.WidthCleared() {
		_spec.ClearField(sheet.FieldWidth, field.TypeInt)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(sheet.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(sheet.FieldHeight, field.TypeInt, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(sheet.FieldHeight, field.TypeInt)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(sheet.FieldImagePath, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(sheet.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.TilesPath(); ok {
		_spec.SetField(sheet.FieldTilesPath, field.TypeString, value)
	}
	if _u.mutation.TilesPathCleared() {
		_spec.ClearField(sheet.FieldTilesPath, field.TypeString)
	}
	if value, ok := _u.mutation.MinZoom(); ok {
		_spec.SetField(sheet.FieldMinZoom, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinZoom(); ok {
		_spec.AddField(sheet.FieldMinZoom, field.TypeInt, value)
	}
	if _u.mutation.MinZoomCleared() {
		_spec.ClearField(sheet.FieldMinZoom, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxZoom(); ok {
		_spec.SetField(sheet.FieldMaxZoom, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxZoom(); ok {
		_spec.AddField(sheet.FieldMaxZoom, field.TypeInt, value)
	}
	if _u.mutation.MaxZoomCleared() {
		_spec.ClearField(sheet.FieldMaxZoom, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(sheet.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sheet.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sheet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SheetUpdateOne is the builder for updating a single Sheet entity.
type SheetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SheetMutation
}

// SetPlanID sets the "plan_id" field.
func (_u *SheetUpdateOne) SetPlanID(v string) *SheetUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillablePlanID(v *string) *SheetUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *SheetUpdateOne) SetProjectID(v string) *SheetUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableProjectID(v *string) *SheetUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *SheetUpdateOne) SetOrganizationID(v string) *SheetUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableOrganizationID(v *string) *SheetUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetSheetID sets the "sheet_id" field.
func (_u *SheetUpdateOne) SetSheetID(v string) *SheetUpdateOne {
	_u.mutation.SetSheetID(v)
	return _u
}

// SetNillableSheetID sets the "sheet_id" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableSheetID(v *string) *SheetUpdateOne {
	if v != nil {
		_u.SetSheetID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *SheetUpdateOne) SetPageNumber(v int) *SheetUpdateOne {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillablePageNumber(v *int) *SheetUpdateOne {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *SheetUpdateOne) AddPageNumber(v int) *SheetUpdateOne {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetSheetNumber sets the "sheet_number" field.
func (_u *SheetUpdateOne) SetSheetNumber(v string) *SheetUpdateOne {
	_u.mutation.SetSheetNumber(v)
	return _u
}

// SetNillableSheetNumber sets the "sheet_number" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableSheetNumber(v *string) *SheetUpdateOne {
	if v != nil {
		_u.SetSheetNumber(*v)
	}
	return _u
}

// ClearSheetNumber clears the value of the "sheet_number" field.
func (_u *SheetUpdateOne) ClearSheetNumber() *SheetUpdateOne {
	_u.mutation.ClearSheetNumber()
	return _u
}

// SetTitle sets the "title" field.
func (_u *SheetUpdateOne) SetTitle(v string) *SheetUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableTitle(v *string) *SheetUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SheetUpdateOne) ClearTitle() *SheetUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetDiscipline sets the "discipline" field.
func (_u *SheetUpdateOne) SetDiscipline(v string) *SheetUpdateOne {
	_u.mutation.SetDiscipline(v)
	return _u
}

// SetNillableDiscipline sets the "discipline" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableDiscipline(v *string) *SheetUpdateOne {
	if v != nil {
		_u.SetDiscipline(*v)
	}
	return _u
}

// ClearDiscipline clears the value of the "discipline" field.
func (_u *SheetUpdateOne) ClearDiscipline() *SheetUpdateOne {
	_u.mutation.ClearDiscipline()
	return _u
}

// SetIsValid sets the "is_valid" field.
func (_u *SheetUpdateOne) SetIsValid(v bool) *SheetUpdateOne {
	_u.mutation.SetIsValid(v)
	return _u
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableIsValid(v *bool) *SheetUpdateOne {
	if v != nil {
		_u.SetIsValid(*v)
	}
	return _u
}

// SetWidth sets the "width" field.
func (_u *SheetUpdateOne) SetWidth(v int) *SheetUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableWidth(v *int) *SheetUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *SheetUpdateOne) AddWidth(v int) *SheetUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// ClearWidth clears the value of the "width" field.
func (_u *SheetUpdateOne) ClearWidth() *SheetUpdateOne {
	_u.mutation.ClearWidth()
	return _u
}

// SetHeight sets the "height" field.
func (_u *SheetUpdateOne) SetHeight(v int) *SheetUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableHeight(v *int) *SheetUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *SheetUpdateOne) AddHeight(v int) *SheetUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *SheetUpdateOne) ClearHeight() *SheetUpdateOne {
	_u.mutation.ClearHeight()
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *SheetUpdateOne) SetImagePath(v string) *SheetUpdateOne {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableImagePath(v *string) *SheetUpdateOne {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// ClearImagePath clears the value of the "image_path" field.
func (_u *SheetUpdateOne) ClearImagePath() *SheetUpdateOne {
	_u.mutation.ClearImagePath()
	return _u
}

// SetTilesPath sets the "tiles_path" field.
func (_u *SheetUpdateOne) SetTilesPath(v string) *SheetUpdateOne {
	_u.mutation.SetTilesPath(v)
	return _u
}

// SetNillableTilesPath sets the "tiles_path" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableTilesPath(v *string) *SheetUpdateOne {
	if v != nil {
		_u.SetTilesPath(*v)
	}
	return _u
}

// ClearTilesPath clears the value of the "tiles_path" field.
func (_u *SheetUpdateOne) ClearTilesPath() *SheetUpdateOne {
	_u.mutation.ClearTilesPath()
	return _u
}

// SetMinZoom sets the "min_zoom" field.
func (_u *SheetUpdateOne) SetMinZoom(v int) *SheetUpdateOne {
	_u.mutation.ResetMinZoom()
	_u.mutation.SetMinZoom(v)
	return _u
}

// SetNillableMinZoom sets the "min_zoom" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableMinZoom(v *int) *SheetUpdateOne {
	if v != nil {
		_u.SetMinZoom(*v)
	}
	return _u
}

// AddMinZoom adds value to the "min_zoom" field.
func (_u *SheetUpdateOne) AddMinZoom(v int) *SheetUpdateOne {
	_u.mutation.AddMinZoom(v)
	return _u
}

// ClearMinZoom clears the value of the "min_zoom" field.
func (_u *SheetUpdateOne) ClearMinZoom() *SheetUpdateOne {
	_u.mutation.ClearMinZoom()
	return _u
}

// SetMaxZoom sets the "max_zoom" field.
func (_u *SheetUpdateOne) SetMaxZoom(v int) *SheetUpdateOne {
	_u.mutation.ResetMaxZoom()
	_u.mutation.SetMaxZoom(v)
	return _u
}

// SetNillableMaxZoom sets the "max_zoom" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableMaxZoom(v *int) *SheetUpdateOne {
	if v != nil {
		_u.SetMaxZoom(*v)
	}
	return _u
}

// AddMaxZoom adds value to the "max_zoom" field.
func (_u *SheetUpdateOne) AddMaxZoom(v int) *SheetUpdateOne {
	_u.mutation.AddMaxZoom(v)
	return _u
}

// ClearMaxZoom clears the value of the "max_zoom" field.
func (_u *SheetUpdateOne) ClearMaxZoom() *SheetUpdateOne {
	_u.mutation.ClearMaxZoom()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SheetUpdateOne) SetCreatedAt(v time.Time) *SheetUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SheetUpdateOne) SetNillableCreatedAt(v *time.Time) *SheetUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SheetUpdateOne) SetUpdatedAt(v time.Time) *SheetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SheetMutation object of the builder.
func (_u *SheetUpdateOne) Mutation() *SheetMutation {
	return _u.mutation
}

// Where appends a list predicates to the SheetUpdate builder.
func (_u *SheetUpdateOne) Where(ps ...predicate.Sheet) *SheetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SheetUpdateOne) Select(field string, fields ...string) *SheetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Sheet entity.
func (_u *SheetUpdateOne) Save(ctx context.Context) (*Sheet, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SheetUpdateOne) SaveX(ctx context.Context) *Sheet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SheetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SheetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SheetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sheet.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SheetUpdateOne) sqlSave(ctx context.Context) (_node *Sheet, err error) {
	_spec := sqlgraph.NewUpdateSpec(sheet.Table, sheet.Columns, sqlgraph.NewFieldSpec(sheet.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Sheet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sheet.FieldID)
		for _, f := range fields {
			if !sheet.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sheet.FieldID {
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
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(sheet.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(sheet.FieldProjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(sheet.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SheetID(); ok {
		_spec.SetField(sheet.FieldSheetID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(sheet.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(sheet.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SheetNumber(); ok {
		_spec.SetField(sheet.FieldSheetNumber, field.TypeString, value)
	}
	if _u.mutation.SheetNumberCleared() {
		_spec.ClearField(sheet.FieldSheetNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(sheet.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(sheet.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Discipline(); ok {
		_spec.SetField(sheet.FieldDiscipline, field.TypeString, value)
	}
	if _u.mutation.DisciplineCleared() {
		_spec.ClearField(sheet.FieldDiscipline, field.TypeString)
	}
	if value, ok := _u.mutation.IsValid(); ok {
		_spec.SetField(sheet.FieldIsValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(sheet.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(sheet.FieldWidth, field.TypeInt, value)
	}
	if _u.mutation.WidthCleared() {
		_spec.ClearField(sheet.FieldWidth, field.TypeInt)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(sheet.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(sheet.FieldHeight, field.TypeInt, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(sheet.FieldHeight, field.TypeInt)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(sheet.FieldImagePath, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(sheet.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.TilesPath(); ok {
		_spec.SetField(sheet.FieldTilesPath, field.TypeString, value)
	}
	if _u.mutation.TilesPathCleared() {
		_spec.ClearField(sheet.FieldTilesPath, field.TypeString)
	}
	if value, ok := _u.mutation.MinZoom(); ok {
		_spec.SetField(sheet.FieldMinZoom, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinZoom(); ok {
		_spec.AddField(sheet.FieldMinZoom, field.TypeInt, value)
	}
	if _u.mutation.MinZoomCleared() {
		_spec.ClearField(sheet.FieldMinZoom, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxZoom(); ok {
		_spec.SetField(sheet.FieldMaxZoom, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxZoom(); ok {
		_spec.AddField(sheet.FieldMaxZoom, field.TypeInt, value)
	}
	if _u.mutation.MaxZoomCleared() {
		_spec.ClearField(sheet.FieldMaxZoom, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(sheet.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sheet.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Sheet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sheet.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
