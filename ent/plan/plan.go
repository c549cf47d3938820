// Code generated by ent, DO NOT EDIT.

package plan

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the plan type in the database.
	Label = "plan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "plan_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTotalSheets holds the string denoting the total_sheets field in the database.
	FieldTotalSheets = "total_sheets"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldGeneratedImages holds the string denoting the generated_images field in the database.
	FieldGeneratedImages = "generated_images"
	// FieldExtractedMetadata holds the string denoting the extracted_metadata field in the database.
	FieldExtractedMetadata = "extracted_metadata"
	// FieldValidSheets holds the string denoting the valid_sheets field in the database.
	FieldValidSheets = "valid_sheets"
	// FieldSheetNumberMap holds the string denoting the sheet_number_map field in the database.
	FieldSheetNumberMap = "sheet_number_map"
	// FieldDetectedCallouts holds the string denoting the detected_callouts field in the database.
	FieldDetectedCallouts = "detected_callouts"
	// FieldDetectedLayouts holds the string denoting the detected_layouts field in the database.
	FieldDetectedLayouts = "detected_layouts"
	// FieldGeneratedTiles holds the string denoting the generated_tiles field in the database.
	FieldGeneratedTiles = "generated_tiles"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDeadlineAt holds the string denoting the deadline_at field in the database.
	FieldDeadlineAt = "deadline_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the plan in the database.
	Table = "plans"
)

// Columns holds all SQL columns for plan fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldOrganizationID,
	FieldName,
	FieldTotalSheets,
	FieldStatus,
	FieldGeneratedImages,
	FieldExtractedMetadata,
	FieldValidSheets,
	FieldSheetNumberMap,
	FieldDetectedCallouts,
	FieldDetectedLayouts,
	FieldGeneratedTiles,
	FieldLastError,
	FieldCreatedAt,
	FieldDeadlineAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTotalSheets holds the default value on creation for the "total_sheets" field.
	DefaultTotalSheets int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusImageGeneration is the default value of the Status enum.
const DefaultStatus = StatusImageGeneration

// Status values.
const (
	StatusImageGeneration    Status = "image_generation"
	StatusMetadataExtraction Status = "metadata_extraction"
	StatusParallelDetection  Status = "parallel_detection"
	StatusTileGeneration     Status = "tile_generation"
	StatusComplete           Status = "complete"
	StatusFailed             Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusImageGeneration, StatusMetadataExtraction, StatusParallelDetection, StatusTileGeneration, StatusComplete, StatusFailed:
		return nil
	default:
		return fmt.Errorf("plan: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Plan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTotalSheets orders the results by the total_sheets field.
func ByTotalSheets(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSheets, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDeadlineAt orders the results by the deadline_at field.
func ByDeadlineAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeadlineAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
