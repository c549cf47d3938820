// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plandeck/plandeck/ent/sheet"
)

// SheetCreate is the builder for creating a Sheet entity.
type SheetCreate struct {
	config
	mutation *SheetMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *SheetCreate) SetPlanID(v string) *SheetCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *SheetCreate) SetProjectID(v string) *SheetCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *SheetCreate) SetOrganizationID(v string) *SheetCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetSheetID sets the "sheet_id" field.
func (_c *SheetCreate) SetSheetID(v string) *SheetCreate {
	_c.mutation.SetSheetID(v)
	return _c
}

// SetPageNumber sets the "page_number" field.
func (_c *SheetCreate) SetPageNumber(v int) *SheetCreate {
	_c.mutation.SetPageNumber(v)
	return _c
}

// SetSheetNumber sets the "sheet_number" field.
func (_c *SheetCreate) SetSheetNumber(v string) *SheetCreate {
	_c.mutation.SetSheetNumber(v)
	return _c
}

// SetNillableSheetNumber sets the "sheet_number" field if the given value is not nil.
func (_c *SheetCreate) SetNillableSheetNumber(v *string) *SheetCreate {
	if v != nil {
		_c.SetSheetNumber(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *SheetCreate) SetTitle(v string) *SheetCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *SheetCreate) SetNillableTitle(v *string) *SheetCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDiscipline sets the "discipline" field.
func (_c *SheetCreate) SetDiscipline(v string) *SheetCreate {
	_c.mutation.SetDiscipline(v)
	return _c
}

// SetNillableDiscipline sets the "discipline" field if the given value is not nil.
func (_c *SheetCreate) SetNillableDiscipline(v *string) *SheetCreate {
	if v != nil {
		_c.SetDiscipline(*v)
	}
	return _c
}

// SetIsValid sets the "is_valid" field.
func (_c *SheetCreate) SetIsValid(v bool) *SheetCreate {
	_c.mutation.SetIsValid(v)
	return _c
}

// SetNillableIsValid sets the "is_valid" field if the given value is not nil.
func (_c *SheetCreate) SetNillableIsValid(v *bool) *SheetCreate {
	if v != nil {
		_c.SetIsValid(*v)
	}
	return _c
}

// SetWidth sets the "width" field.
func (_c *SheetCreate) SetWidth(v int) *SheetCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_c *SheetCreate) SetNillableWidth(v *int) *SheetCreate {
	if v != nil {
		_c.SetWidth(*v)
	}
	return _c
}

// SetHeight sets the "height" field.
func (_c *SheetCreate) SetHeight(v int) *SheetCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_c *SheetCreate) SetNillableHeight(v *int) *SheetCreate {
	if v != nil {
		_c.SetHeight(*v)
	}
	return _c
}

// SetImagePath sets the "image_path" field.
func (_c *SheetCreate) SetImagePath(v string) *SheetCreate {
	_c.mutation.SetImagePath(v)
	return _c
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_c *SheetCreate) SetNillableImagePath(v *string) *SheetCreate {
	if v != nil {
		_c.SetImagePath(*v)
	}
	return _c
}

// SetTilesPath sets the "tiles_path" field.
func (_c *SheetCreate) SetTilesPath(v string) *SheetCreate {
	_c.mutation.SetTilesPath(v)
	return _c
}

// SetNillableTilesPath sets the "tiles_path" field if the given value is not nil.
func (_c *SheetCreate) SetNillableTilesPath(v *string) *SheetCreate {
	if v != nil {
		_c.SetTilesPath(*v)
	}
	return _c
}

// SetMinZoom sets the "min_zoom" field.
func (_c *SheetCreate) SetMinZoom(v int) *SheetCreate {
	_c.mutation.SetMinZoom(v)
	return _c
}

// SetNillableMinZoom sets the "min_zoom" field if the given value is not nil.
func (_c *SheetCreate) SetNillableMinZoom(v *int) *SheetCreate {
	if v != nil {
		_c.SetMinZoom(*v)
	}
	return _c
}

// SetMaxZoom sets the "max_zoom" field.
func (_c *SheetCreate) SetMaxZoom(v int) *SheetCreate {
	_c.mutation.SetMaxZoom(v)
	return _c
}

// SetNillableMaxZoom sets the "max_zoom" field if the given value is not nil.
func (_c *SheetCreate) SetNillableMaxZoom(v *int) *SheetCreate {
	if v != nil {
		_c.SetMaxZoom(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SheetCreate) SetCreatedAt(v time.Time) *SheetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SheetCreate) SetNillableCreatedAt(v *time.Time) *SheetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SheetCreate) SetUpdatedAt(v time.Time) *SheetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SheetCreate) SetNillableUpdatedAt(v *time.Time) *SheetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SheetCreate) SetID(v string) *SheetCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SheetMutation object of the builder.
func (_c *SheetCreate) Mutation() *SheetMutation {
	return _c.mutation
}

// Save creates the Sheet in the database.
func (_c *SheetCreate) Save(ctx context.Context) (*Sheet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SheetCreate) SaveX(ctx context.Context) *Sheet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SheetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SheetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SheetCreate) defaults() {
	if _, ok := _c.mutation.IsValid(); !ok {
		v := sheet.DefaultIsValid
		_c.mutation.SetIsValid(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sheet.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sheet.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SheetCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "Sheet.plan_id"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Sheet.project_id"`)}
	}
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "Sheet.organization_id"`)}
	}
	if _, ok := _c.mutation.SheetID(); !ok {
		return &ValidationError{Name: "sheet_id", err: errors.New(`ent: missing required field "Sheet.sheet_id"`)}
	}
	if _, ok := _c.mutation.PageNumber(); !ok {
		return &ValidationError{Name: "page_number", err: errors.New(`ent: missing required field "Sheet.page_number"`)}
	}
	if _, ok := _c.mutation.IsValid(); !ok {
		return &ValidationError{Name: "is_valid", err: errors.New(`ent: missing required field "Sheet.is_valid"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Sheet.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Sheet.updated_at"`)}
	}
	return nil
}

func (_c *SheetCreate) sqlSave(ctx context.Context) (*Sheet, error) {
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
			return nil, fmt.Errorf("unexpected Sheet.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SheetCreate) createSpec() (*Sheet, *sqlgraph.CreateSpec) {
	var (
		_node = &Sheet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sheet.Table, sqlgraph.NewFieldSpec(sheet.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(sheet.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(sheet.FieldProjectID, field.TypeString, value)
		_node.ProjectID = value
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(sheet.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.SheetID(); ok {
		_spec.SetField(sheet.FieldSheetID, field.TypeString, value)
		_node.SheetID = value
	}
	if value, ok := _c.mutation.PageNumber(); ok {
		_spec.SetField(sheet.FieldPageNumber, field.TypeInt, value)
		_node.PageNumber = value
	}
	if value, ok := _c.mutation.SheetNumber(); ok {
		_spec.SetField(sheet.FieldSheetNumber, field.TypeString, value)
		_node.SheetNumber = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(sheet.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.Discipline(); ok {
		_spec.SetField(sheet.FieldDiscipline, field.TypeString, value)
		_node.Discipline = &value
	}
	if value, ok := _c.mutation.IsValid(); ok {
		_spec.SetField(sheet.FieldIsValid, field.TypeBool, value)
		_node.IsValid = value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(sheet.FieldWidth, field.TypeInt, value)
		_node.Width = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(sheet.FieldHeight, field.TypeInt, value)
		_node.Height = value
	}
	if value, ok := _c.mutation.ImagePath(); ok {
		_spec.SetField(sheet.FieldImagePath, field.TypeString, value)
		_node.ImagePath = value
	}
	if value, ok := _c.mutation.TilesPath(); ok {
		_spec.SetField(sheet.FieldTilesPath, field.TypeString, value)
		_node.TilesPath = value
	}
	if value, ok := _c.mutation.MinZoom(); ok {
		_spec.SetField(sheet.FieldMinZoom, field.TypeInt, value)
		_node.MinZoom = value
	}
	if value, ok := _c.mutation.MaxZoom(); ok {
		_spec.SetField(sheet.FieldMaxZoom, field.TypeInt, value)
		_node.MaxZoom = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sheet.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sheet.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SheetCreateBulk is the builder for creating many Sheet entities in bulk.
type SheetCreateBulk struct {
	config
	err      error
	builders []*SheetCreate
}

// Save creates the Sheet entities in the database.
func (_c *SheetCreateBulk) Save(ctx context.Context) ([]*Sheet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Sheet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SheetMutation)
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
func (_c *SheetCreateBulk) SaveX(ctx context.Context) []*Sheet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SheetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SheetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
