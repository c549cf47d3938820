// Code generated by ent, DO NOT EDIT.

package sheet

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sheet type in the database.
	Label = "sheet"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldSheetID holds the string denoting the sheet_id field in the database.
	FieldSheetID = "sheet_id"
	// FieldPageNumber holds the string denoting the page_number field in the database.
	FieldPageNumber = "page_number"
	// FieldSheetNumber holds the string denoting the sheet_number field in the database.
	FieldSheetNumber = "sheet_number"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDiscipline holds the string denoting the discipline field in the database.
	FieldDiscipline = "discipline"
	// FieldIsValid holds the string denoting the is_valid field in the database.
	FieldIsValid = "is_valid"
	// FieldWidth holds the string denoting the width field in the database.
	FieldWidth = "width"
	// FieldHeight holds the string denoting the height field in the database.
	FieldHeight = "height"
	// FieldImagePath holds the string denoting the image_path field in the database.
	FieldImagePath = "image_path"
	// FieldTilesPath holds the string denoting the tiles_path field in the database.
	FieldTilesPath = "tiles_path"
	// FieldMinZoom holds the string denoting the min_zoom field in the database.
	FieldMinZoom = "min_zoom"
	// FieldMaxZoom holds the string denoting the max_zoom field in the database.
	FieldMaxZoom = "max_zoom"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the sheet in the database.
	Table = "sheets"
)

// Columns holds all SQL columns for sheet fields.
var Columns = []string{
	FieldID,
	FieldPlanID,
	FieldProjectID,
	FieldOrganizationID,
	FieldSheetID,
	FieldPageNumber,
	FieldSheetNumber,
	FieldTitle,
	FieldDiscipline,
	FieldIsValid,
	FieldWidth,
	FieldHeight,
	FieldImagePath,
	FieldTilesPath,
	FieldMinZoom,
	FieldMaxZoom,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultIsValid holds the default value on creation for the "is_valid" field.
	DefaultIsValid bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Sheet queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// BySheetID orders the results by the sheet_id field.
func BySheetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSheetID, opts...).ToFunc()
}

// ByPageNumber orders the results by the page_number field.
func ByPageNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageNumber, opts...).ToFunc()
}

// BySheetNumber orders the results by the sheet_number field.
func BySheetNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSheetNumber, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDiscipline orders the results by the discipline field.
func ByDiscipline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscipline, opts...).ToFunc()
}

// ByIsValid orders the results by the is_valid field.
func ByIsValid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsValid, opts...).ToFunc()
}

// ByWidth orders the results by the width field.
func ByWidth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWidth, opts...).ToFunc()
}

// ByHeight orders the results by the height field.
func ByHeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeight, opts...).ToFunc()
}

// ByImagePath orders the results by the image_path field.
func ByImagePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImagePath, opts...).ToFunc()
}

// ByTilesPath orders the results by the tiles_path field.
func ByTilesPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTilesPath, opts...).ToFunc()
}

// ByMinZoom orders the results by the min_zoom field.
func ByMinZoom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinZoom, opts...).ToFunc()
}

// ByMaxZoom orders the results by the max_zoom field.
func ByMaxZoom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxZoom, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
