// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/plandeck/plandeck/ent/sheet"
)

// Sheet is the model entity for the Sheet schema.
type Sheet struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PlanID holds the value of the "plan_id" field.
	PlanID string `json:"plan_id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID string `json:"organization_id,omitempty"`
	// Canonical sheet-{index} identifier
	SheetID string `json:"sheet_id,omitempty"`
	// 1-based page position in the source PDF
	PageNumber int `json:"page_number,omitempty"`
	// Extracted drawing number, e.g. A1
	SheetNumber *string `json:"sheet_number,omitempty"`
	// Title holds the value of the "title" field.
	Title *string `json:"title,omitempty"`
	// Discipline holds the value of the "discipline" field.
	Discipline *string `json:"discipline,omitempty"`
	// IsValid holds the value of the "is_valid" field.
	IsValid bool `json:"is_valid,omitempty"`
	// Width holds the value of the "width" field.
	Width int `json:"width,omitempty"`
	// Height holds the value of the "height" field.
	Height int `json:"height,omitempty"`
	// ImagePath holds the value of the "image_path" field.
	ImagePath string `json:"image_path,omitempty"`
	// TilesPath holds the value of the "tiles_path" field.
	TilesPath string `json:"tiles_path,omitempty"`
	// MinZoom holds the value of the "min_zoom" field.
	MinZoom int `json:"min_zoom,omitempty"`
	// MaxZoom holds the value of the "max_zoom" field.
	MaxZoom int `json:"max_zoom,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Sheet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sheet.FieldIsValid:
			values[i] = new(sql.NullBool)
		case sheet.FieldPageNumber, sheet.FieldWidth, sheet.FieldHeight, sheet.FieldMinZoom, sheet.FieldMaxZoom:
			values[i] = new(sql.NullInt64)
		case sheet.FieldID, sheet.FieldPlanID, sheet.FieldProjectID, sheet.FieldOrganizationID, sheet.FieldSheetID, sheet.FieldSheetNumber, sheet.FieldTitle, sheet.FieldDiscipline, sheet.FieldImagePath, sheet.FieldTilesPath:
			values[i] = new(sql.NullString)
		case sheet.FieldCreatedAt, sheet.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Sheet fields.
func (_m *Sheet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sheet.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sheet.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case sheet.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case sheet.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = value.String
			}
		case sheet.FieldSheetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sheet_id", values[i])
			} else if value.Valid {
				_m.SheetID = value.String
			}
		case sheet.FieldPageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_number", values[i])
			} else if value.Valid {
				_m.PageNumber = int(value.Int64)
			}
		case sheet.FieldSheetNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sheet_number", values[i])
			} else if value.Valid {
				_m.SheetNumber = new(string)
				*_m.SheetNumber = value.String
			}
		case sheet.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case sheet.FieldDiscipline:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discipline", values[i])
			} else if value.Valid {
				_m.Discipline = new(string)
				*_m.Discipline = value.String
			}
		case sheet.FieldIsValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_valid", values[i])
			} else if value.Valid {
				_m.IsValid = value.Bool
			}
		case sheet.FieldWidth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field width", values[i])
			} else if value.Valid {
				_m.Width = int(value.Int64)
			}
		case sheet.FieldHeight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field height", values[i])
			} else if value.Valid {
				_m.Height = int(value.Int64)
			}
		case sheet.FieldImagePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_path", values[i])
			} else if value.Valid {
				_m.ImagePath = value.String
			}
		case sheet.FieldTilesPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tiles_path", values[i])
			} else if value.Valid {
				_m.TilesPath = value.String
			}
		case sheet.FieldMinZoom:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_zoom", values[i])
			} else if value.Valid {
				_m.MinZoom = int(value.Int64)
			}
		case sheet.FieldMaxZoom:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_zoom", values[i])
			} else if value.Valid {
				_m.MaxZoom = int(value.Int64)
			}
		case sheet.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sheet.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Sheet.
// This includes values selected through modifiers, order, etc.
func (_m *Sheet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Sheet.
// Note that you need to call Sheet.Unwrap() before calling this method if this Sheet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Sheet) Update() *SheetUpdateOne {
	return NewSheetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Sheet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Sheet) Unwrap() *Sheet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Sheet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Sheet) String() string {
	var builder strings.Builder
	builder.WriteString("Sheet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("organization_id=")
	builder.WriteString(_m.OrganizationID)
	builder.WriteString(", ")
	builder.WriteString("sheet_id=")
	builder.WriteString(_m.SheetID)
	builder.WriteString(", ")
	builder.WriteString("page_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageNumber))
	builder.WriteString(", ")
	if v := _m.SheetNumber; v != nil {
		builder.WriteString("sheet_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Discipline; v != nil {
		builder.WriteString("discipline=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_valid=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsValid))
	builder.WriteString(", ")
	builder.WriteString("width=")
	builder.WriteString(fmt.Sprintf("%v", _m.Width))
	builder.WriteString(", ")
	builder.WriteString("height=")
	builder.WriteString(fmt.Sprintf("%v", _m.Height))
	builder.WriteString(", ")
	builder.WriteString("image_path=")
	builder.WriteString(_m.ImagePath)
	builder.WriteString(", ")
	builder.WriteString("tiles_path=")
	builder.WriteString(_m.TilesPath)
	builder.WriteString(", ")
	builder.WriteString("min_zoom=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinZoom))
	builder.WriteString(", ")
	builder.WriteString("max_zoom=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxZoom))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Sheets is a parsable slice of Sheet.
type Sheets []*Sheet
