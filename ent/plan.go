// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/plandeck/plandeck/ent/plan"
)

// Plan is the model entity for the Plan schema.
type Plan struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Tenant key; event log partition
	OrganizationID string `json:"organization_id,omitempty"`
	// Display name, usually the uploaded file name
	Name string `json:"name,omitempty"`
	// TotalSheets holds the value of the "total_sheets" field.
	TotalSheets int `json:"total_sheets,omitempty"`
	// Status holds the value of the "status" field.
	Status plan.Status `json:"status,omitempty"`
	// Sheet IDs with a rendered PNG
	GeneratedImages []string `json:"generated_images,omitempty"`
	// ExtractedMetadata holds the value of the "extracted_metadata" field.
	ExtractedMetadata []string `json:"extracted_metadata,omitempty"`
	// ValidSheets holds the value of the "valid_sheets" field.
	ValidSheets []string `json:"valid_sheets,omitempty"`
	// sheetId -> extracted drawing number
	SheetNumberMap map[string]string `json:"sheet_number_map,omitempty"`
	// DetectedCallouts holds the value of the "detected_callouts" field.
	DetectedCallouts []string `json:"detected_callouts,omitempty"`
	// DetectedLayouts holds the value of the "detected_layouts" field.
	DetectedLayouts []string `json:"detected_layouts,omitempty"`
	// GeneratedTiles holds the value of the "generated_tiles" field.
	GeneratedTiles []string `json:"generated_tiles,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Wall-clock processing deadline; expiry forces failed
	DeadlineAt time.Time `json:"deadline_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Plan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case plan.FieldGeneratedImages, plan.FieldExtractedMetadata, plan.FieldValidSheets, plan.FieldSheetNumberMap, plan.FieldDetectedCallouts, plan.FieldDetectedLayouts, plan.FieldGeneratedTiles:
			values[i] = new([]byte)
		case plan.FieldTotalSheets:
			values[i] = new(sql.NullInt64)
		case plan.FieldID, plan.FieldProjectID, plan.FieldOrganizationID, plan.FieldName, plan.FieldStatus, plan.FieldLastError:
			values[i] = new(sql.NullString)
		case plan.FieldCreatedAt, plan.FieldDeadlineAt, plan.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Plan fields.
func (_m *Plan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case plan.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case plan.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case plan.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = value.String
			}
		case plan.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case plan.FieldTotalSheets:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_sheets", values[i])
			} else if value.Valid {
				_m.TotalSheets = int(value.Int64)
			}
		case plan.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = plan.Status(value.String)
			}
		case plan.FieldGeneratedImages:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field generated_images", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GeneratedImages); err != nil {
					return fmt.Errorf("unmarshal field generated_images: %w", err)
				}
			}
		case plan.FieldExtractedMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedMetadata); err != nil {
					return fmt.Errorf("unmarshal field extracted_metadata: %w", err)
				}
			}
		case plan.FieldValidSheets:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field valid_sheets", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValidSheets); err != nil {
					return fmt.Errorf("unmarshal field valid_sheets: %w", err)
				}
			}
		case plan.FieldSheetNumberMap:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sheet_number_map", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SheetNumberMap); err != nil {
					return fmt.Errorf("unmarshal field sheet_number_map: %w", err)
				}
			}
		case plan.FieldDetectedCallouts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detected_callouts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DetectedCallouts); err != nil {
					return fmt.Errorf("unmarshal field detected_callouts: %w", err)
				}
			}
		case plan.FieldDetectedLayouts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field detected_layouts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DetectedLayouts); err != nil {
					return fmt.Errorf("unmarshal field detected_layouts: %w", err)
				}
			}
		case plan.FieldGeneratedTiles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field generated_tiles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GeneratedTiles); err != nil {
					return fmt.Errorf("unmarshal field generated_tiles: %w", err)
				}
			}
		case plan.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case plan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case plan.FieldDeadlineAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deadline_at", values[i])
			} else if value.Valid {
				_m.DeadlineAt = value.Time
			}
		case plan.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Plan.
// This includes values selected through modifiers, order, etc.
func (_m *Plan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Plan.
// Note that you need to call Plan.Unwrap() before calling this method if this Plan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Plan) Update() *PlanUpdateOne {
	return NewPlanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Plan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Plan) Unwrap() *Plan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Plan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Plan) String() string {
	var builder strings.Builder
	builder.WriteString("Plan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("organization_id=")
	builder.WriteString(_m.OrganizationID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("total_sheets=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSheets))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("generated_images=")
	builder.WriteString(fmt.Sprintf("%v", _m.GeneratedImages))
	builder.WriteString(", ")
	builder.WriteString("extracted_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedMetadata))
	builder.WriteString(", ")
	builder.WriteString("valid_sheets=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidSheets))
	builder.WriteString(", ")
	builder.WriteString("sheet_number_map=")
	builder.WriteString(fmt.Sprintf("%v", _m.SheetNumberMap))
	builder.WriteString(", ")
	builder.WriteString("detected_callouts=")
	builder.WriteString(fmt.Sprintf("%v", _m.DetectedCallouts))
	builder.WriteString(", ")
	builder.WriteString("detected_layouts=")
	builder.WriteString(fmt.Sprintf("%v", _m.DetectedLayouts))
	builder.WriteString(", ")
	builder.WriteString("generated_tiles=")
	builder.WriteString(fmt.Sprintf("%v", _m.GeneratedTiles))
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("deadline_at=")
	builder.WriteString(_m.DeadlineAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Plans is a parsable slice of Plan.
type Plans []*Plan
