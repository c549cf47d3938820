// Code generated by ent, DO NOT EDIT.

package sheet

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/plandeck/plandeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContainsFold(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldPlanID, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldProjectID, v))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldOrganizationID, v))
}

// SheetID applies equality check predicate on the "sheet_id" field. It's identical to SheetIDEQ.
func SheetID(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldSheetID, v))
}

// PageNumber applies equality check predicate on the "page_number" field. It's identical to PageNumberEQ.
func PageNumber(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldPageNumber, v))
}

// SheetNumber applies equality check predicate on the "sheet_number" field. It's identical to SheetNumberEQ.
func SheetNumber(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldSheetNumber, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldTitle, v))
}

// Discipline applies equality check predicate on the "discipline" field. It's identical to DisciplineEQ.
func Discipline(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldDiscipline, v))
}

// IsValid applies equality check predicate on the "is_valid" field. It's identical to IsValidEQ.
func IsValid(v bool) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldIsValid, v))
}

// Width applies equality check predicate on the "width" field. It's identical to WidthEQ.
func Width(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldWidth, v))
}

// Height applies equality check predicate on the "height" field. It's identical to HeightEQ.
func Height(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldHeight, v))
}

// ImagePath applies equality check predicate on the "image_path" field. It's identical to ImagePathEQ.
func ImagePath(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldImagePath, v))
}

// TilesPath applies equality check predicate on the "tiles_path" field. It's identical to TilesPathEQ.
func TilesPath(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldTilesPath, v))
}

// MinZoom applies equality check predicate on the "min_zoom" field. It's identical to MinZoomEQ.
func MinZoom(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldMinZoom, v))
}

// MaxZoom applies equality check predicate on the "max_zoom" field. It's identical to MaxZoomEQ.
func MaxZoom(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldMaxZoom, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldUpdatedAt, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContainsFold(FieldPlanID, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContainsFold(FieldProjectID, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDContains applies the Contains predicate on the "organization_id" field.
func OrganizationIDContains(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContains(FieldOrganizationID, v))
}

// OrganizationIDHasPrefix applies the HasPrefix predicate on the "organization_id" field.
func OrganizationIDHasPrefix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasPrefix(FieldOrganizationID, v))
}

// OrganizationIDHasSuffix applies the HasSuffix predicate on the "organization_id" field.
func OrganizationIDHasSuffix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasSuffix(FieldOrganizationID, v))
}

// OrganizationIDEqualFold applies the EqualFold predicate on the "organization_id" field.
func OrganizationIDEqualFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEqualFold(FieldOrganizationID, v))
}

// OrganizationIDContainsFold applies the ContainsFold predicate on the "organization_id" field.
func OrganizationIDContainsFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContainsFold(FieldOrganizationID, v))
}

// SheetIDEQ applies the EQ predicate on the "sheet_id" field.
func SheetIDEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldSheetID, v))
}

// SheetIDNEQ applies the NEQ predicate on the "sheet_id" field.
func SheetIDNEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldSheetID, v))
}

// SheetIDIn applies the In predicate on the "sheet_id" field.
func SheetIDIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldSheetID, vs...))
}

// SheetIDNotIn applies the NotIn predicate on the "sheet_id" field.
func SheetIDNotIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldSheetID, vs...))
}

// SheetIDGT applies the GT predicate on the "sheet_id" field.
func SheetIDGT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldSheetID, v))
}

// SheetIDGTE applies the GTE predicate on the "sheet_id" field.
func SheetIDGTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldSheetID, v))
}

// SheetIDLT applies the LT predicate on the "sheet_id" field.
func SheetIDLT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldSheetID, v))
}

// SheetIDLTE applies the LTE predicate on the "sheet_id" field.
func SheetIDLTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldSheetID, v))
}

// SheetIDContains applies the Contains predicate on the "sheet_id" field.
func SheetIDContains(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContains(FieldSheetID, v))
}

// SheetIDHasPrefix applies the HasPrefix predicate on the "sheet_id" field.
func SheetIDHasPrefix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasPrefix(FieldSheetID, v))
}

// SheetIDHasSuffix applies the HasSuffix predicate on the "sheet_id" field.
func SheetIDHasSuffix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasSuffix(FieldSheetID, v))
}

// SheetIDEqualFold applies the EqualFold predicate on the "sheet_id" field.
func SheetIDEqualFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEqualFold(FieldSheetID, v))
}

// SheetIDContainsFold applies the ContainsFold predicate on the "sheet_id" field.
func SheetIDContainsFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContainsFold(FieldSheetID, v))
}

// PageNumberEQ applies the EQ predicate on the "page_number" field.
func PageNumberEQ(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldPageNumber, v))
}

// PageNumberNEQ applies the NEQ predicate on the "page_number" field.
func PageNumberNEQ(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldPageNumber, v))
}

// PageNumberIn applies the In predicate on the "page_number" field.
func PageNumberIn(vs ...int) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldPageNumber, vs...))
}

// PageNumberNotIn applies the NotIn predicate on the "page_number" field.
func PageNumberNotIn(vs ...int) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldPageNumber, vs...))
}

// PageNumberGT applies the GT predicate on the "page_number" field.
func PageNumberGT(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldPageNumber, v))
}

// PageNumberGTE applies the GTE predicate on the "page_number" field.
func PageNumberGTE(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldPageNumber, v))
}

// PageNumberLT applies the LT predicate on the "page_number" field.
func PageNumberLT(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldPageNumber, v))
}

// PageNumberLTE applies the LTE predicate on the "page_number" field.
func PageNumberLTE(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldPageNumber, v))
}

// SheetNumberEQ applies the EQ predicate on the "sheet_number" field.
func SheetNumberEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldSheetNumber, v))
}

// SheetNumberNEQ applies the NEQ predicate on the "sheet_number" field.
func SheetNumberNEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldSheetNumber, v))
}

// SheetNumberIn applies the In predicate on the "sheet_number" field.
func SheetNumberIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldSheetNumber, vs...))
}

// SheetNumberNotIn applies the NotIn predicate on the "sheet_number" field.
func SheetNumberNotIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldSheetNumber, vs...))
}

// SheetNumberGT applies the GT predicate on the "sheet_number" field.
func SheetNumberGT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldSheetNumber, v))
}

// SheetNumberGTE applies the GTE predicate on the "sheet_number" field.
func SheetNumberGTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldSheetNumber, v))
}

// SheetNumberLT applies the LT predicate on the "sheet_number" field.
func SheetNumberLT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldSheetNumber, v))
}

// SheetNumberLTE applies the LTE predicate on the "sheet_number" field.
func SheetNumberLTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldSheetNumber, v))
}

// SheetNumberContains applies the Contains predicate on the "sheet_number" field.
func SheetNumberContains(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContains(FieldSheetNumber, v))
}

// SheetNumberHasPrefix applies the HasPrefix predicate on the "sheet_number" field.
func SheetNumberHasPrefix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasPrefix(FieldSheetNumber, v))
}

// SheetNumberHasSuffix applies the HasSuffix predicate on the "sheet_number" field.
func SheetNumberHasSuffix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasSuffix(FieldSheetNumber, v))
}

// SheetNumberIsNil applies the IsNil predicate on the "sheet_number" field.
func SheetNumberIsNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldIsNull(FieldSheetNumber))
}

// SheetNumberNotNil applies the NotNil predicate on the "sheet_number" field.
func SheetNumberNotNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldNotNull(FieldSheetNumber))
}

// SheetNumberEqualFold applies the EqualFold predicate on the "sheet_number" field.
func SheetNumberEqualFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEqualFold(FieldSheetNumber, v))
}

// SheetNumberContainsFold applies the ContainsFold predicate on the "sheet_number" field.
func SheetNumberContainsFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContainsFold(FieldSheetNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContainsFold(FieldTitle, v))
}

// DisciplineEQ applies the EQ predicate on the "discipline" field.
func DisciplineEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldDiscipline, v))
}

// DisciplineNEQ applies the NEQ predicate on the "discipline" field.
func DisciplineNEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldDiscipline, v))
}

// DisciplineIn applies the In predicate on the "discipline" field.
func DisciplineIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldDiscipline, vs...))
}

// DisciplineNotIn applies the NotIn predicate on the "discipline" field.
func DisciplineNotIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldDiscipline, vs...))
}

// DisciplineGT applies the GT predicate on the "discipline" field.
func DisciplineGT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldDiscipline, v))
}

// DisciplineGTE applies the GTE predicate on the "discipline" field.
func DisciplineGTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldDiscipline, v))
}

// DisciplineLT applies the LT predicate on the "discipline" field.
func DisciplineLT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldDiscipline, v))
}

// DisciplineLTE applies the LTE predicate on the "discipline" field.
func DisciplineLTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldDiscipline, v))
}

// DisciplineContains applies the Contains predicate on the "discipline" field.
func DisciplineContains(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContains(FieldDiscipline, v))
}

// DisciplineHasPrefix applies the HasPrefix predicate on the "discipline" field.
func DisciplineHasPrefix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasPrefix(FieldDiscipline, v))
}

// DisciplineHasSuffix applies the HasSuffix predicate on the "discipline" field.
func DisciplineHasSuffix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasSuffix(FieldDiscipline, v))
}

// DisciplineIsNil applies the IsNil predicate on the "discipline" field.
func DisciplineIsNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldIsNull(FieldDiscipline))
}

// DisciplineNotNil applies the NotNil predicate on the "discipline" field.
func DisciplineNotNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldNotNull(FieldDiscipline))
}

// DisciplineEqualFold applies the EqualFold predicate on the "discipline" field.
func DisciplineEqualFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEqualFold(FieldDiscipline, v))
}

// DisciplineContainsFold applies the ContainsFold predicate on the "discipline" field.
func DisciplineContainsFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContainsFold(FieldDiscipline, v))
}

// IsValidEQ applies the EQ predicate on the "is_valid" field.
func IsValidEQ(v bool) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldIsValid, v))
}

// IsValidNEQ applies the NEQ predicate on the "is_valid" field.
func IsValidNEQ(v bool) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldIsValid, v))
}

// WidthEQ applies the EQ predicate on the "width" field.
func WidthEQ(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldWidth, v))
}

// WidthNEQ applies the NEQ predicate on the "width" field.
func WidthNEQ(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldWidth, v))
}

// WidthIn applies the In predicate on the "width" field.
func WidthIn(vs ...int) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldWidth, vs...))
}

// WidthNotIn applies the NotIn predicate on the "width" field.
func WidthNotIn(vs ...int) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldWidth, vs...))
}

// WidthGT applies the GT predicate on the "width" field.
func WidthGT(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldWidth, v))
}

// WidthGTE applies the GTE predicate on the "width" field.
func WidthGTE(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldWidth, v))
}

// WidthLT applies the LT predicate on the "width" field.
func WidthLT(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldWidth, v))
}

// WidthLTE applies the LTE predicate on the "width" field.
func WidthLTE(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldWidth, v))
}

// WidthIsNil applies the IsNil predicate on the "width" field.
func WidthIsNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldIsNull(FieldWidth))
}

// WidthNotNil applies the NotNil predicate on the "width" field.
func WidthNotNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldNotNull(FieldWidth))
}

// HeightEQ applies the EQ predicate on the "height" field.
func HeightEQ(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldHeight, v))
}

// HeightNEQ applies the NEQ predicate on the "height" field.
func HeightNEQ(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldHeight, v))
}

// HeightIn applies the In predicate on the "height" field.
func HeightIn(vs ...int) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldHeight, vs...))
}

// HeightNotIn applies the NotIn predicate on the "height" field.
func HeightNotIn(vs ...int) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldHeight, vs...))
}

// HeightGT applies the GT predicate on the "height" field.
func HeightGT(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldHeight, v))
}

// HeightGTE applies the GTE predicate on the "height" field.
func HeightGTE(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldHeight, v))
}

// HeightLT applies the LT predicate on the "height" field.
func HeightLT(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldHeight, v))
}

// HeightLTE applies the LTE predicate on the "height" field.
func HeightLTE(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldHeight, v))
}

// HeightIsNil applies the IsNil predicate on the "height" field.
func HeightIsNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldIsNull(FieldHeight))
}

// HeightNotNil applies the NotNil predicate on the "height" field.
func HeightNotNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldNotNull(FieldHeight))
}

// ImagePathEQ applies the EQ predicate on the "image_path" field.
func ImagePathEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldImagePath, v))
}

// ImagePathNEQ applies the NEQ predicate on the "image_path" field.
func ImagePathNEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldImagePath, v))
}

// ImagePathIn applies the In predicate on the "image_path" field.
func ImagePathIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldImagePath, vs...))
}

// ImagePathNotIn applies the NotIn predicate on the "image_path" field.
func ImagePathNotIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldImagePath, vs...))
}

// ImagePathGT applies the GT predicate on the "image_path" field.
func ImagePathGT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldImagePath, v))
}

// ImagePathGTE applies the GTE predicate on the "image_path" field.
func ImagePathGTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldImagePath, v))
}

// ImagePathLT applies the LT predicate on the "image_path" field.
func ImagePathLT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldImagePath, v))
}

// ImagePathLTE applies the LTE predicate on the "image_path" field.
func ImagePathLTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldImagePath, v))
}

// ImagePathContains applies the Contains predicate on the "image_path" field.
func ImagePathContains(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContains(FieldImagePath, v))
}

// ImagePathHasPrefix applies the HasPrefix predicate on the "image_path" field.
func ImagePathHasPrefix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasPrefix(FieldImagePath, v))
}

// ImagePathHasSuffix applies the HasSuffix predicate on the "image_path" field.
func ImagePathHasSuffix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasSuffix(FieldImagePath, v))
}

// ImagePathIsNil applies the IsNil predicate on the "image_path" field.
func ImagePathIsNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldIsNull(FieldImagePath))
}

// ImagePathNotNil applies the NotNil predicate on the "image_path" field.
func ImagePathNotNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldNotNull(FieldImagePath))
}

// ImagePathEqualFold applies the EqualFold predicate on the "image_path" field.
func ImagePathEqualFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEqualFold(FieldImagePath, v))
}

// ImagePathContainsFold applies the ContainsFold predicate on the "image_path" field.
func ImagePathContainsFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContainsFold(FieldImagePath, v))
}

// TilesPathEQ applies the EQ predicate on the "tiles_path" field.
func TilesPathEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldTilesPath, v))
}

// TilesPathNEQ applies the NEQ predicate on the "tiles_path" field.
func TilesPathNEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldTilesPath, v))
}

// TilesPathIn applies the In predicate on the "tiles_path" field.
func TilesPathIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldTilesPath, vs...))
}

// TilesPathNotIn applies the NotIn predicate on the "tiles_path" field.
func TilesPathNotIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldTilesPath, vs...))
}

// TilesPathGT applies the GT predicate on the "tiles_path" field.
func TilesPathGT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldTilesPath, v))
}

// TilesPathGTE applies the GTE predicate on the "tiles_path" field.
func TilesPathGTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldTilesPath, v))
}

// TilesPathLT applies the LT predicate on the "tiles_path" field.
func TilesPathLT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldTilesPath, v))
}

// TilesPathLTE applies the LTE predicate on the "tiles_path" field.
func TilesPathLTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldTilesPath, v))
}

// TilesPathContains applies the Contains predicate on the "tiles_path" field.
func TilesPathContains(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContains(FieldTilesPath, v))
}

// TilesPathHasPrefix applies the HasPrefix predicate on the "tiles_path" field.
func TilesPathHasPrefix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasPrefix(FieldTilesPath, v))
}

// TilesPathHasSuffix applies the HasSuffix predicate on the "tiles_path" field.
func TilesPathHasSuffix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasSuffix(FieldTilesPath, v))
}

// TilesPathIsNil applies the IsNil predicate on the "tiles_path" field.
func TilesPathIsNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldIsNull(FieldTilesPath))
}

// TilesPathNotNil applies the NotNil predicate on the "tiles_path" field.
func TilesPathNotNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldNotNull(FieldTilesPath))
}

// TilesPathEqualFold applies the EqualFold predicate on the "tiles_path" field.
func TilesPathEqualFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEqualFold(FieldTilesPath, v))
}

// TilesPathContainsFold applies the ContainsFold predicate on the "tiles_path" field.
func TilesPathContainsFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContainsFold(FieldTilesPath, v))
}

// MinZoomEQ applies the EQ predicate on the "min_zoom" field.
func MinZoomEQ(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldMinZoom, v))
}

// MinZoomNEQ applies the NEQ predicate on the "min_zoom" field.
func MinZoomNEQ(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldMinZoom, v))
}

// MinZoomIn applies the In predicate on the "min_zoom" field.
func MinZoomIn(vs ...int) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldMinZoom, vs...))
}

// MinZoomNotIn applies the NotIn predicate on the "min_zoom" field.
func MinZoomNotIn(vs ...int) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldMinZoom, vs...))
}

// MinZoomGT applies the GT predicate on the "min_zoom" field.
func MinZoomGT(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldMinZoom, v))
}

// MinZoomGTE applies the GTE predicate on the "min_zoom" field.
func MinZoomGTE(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldMinZoom, v))
}

// MinZoomLT applies the LT predicate on the "min_zoom" field.
func MinZoomLT(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldMinZoom, v))
}

// MinZoomLTE applies the LTE predicate on the "min_zoom" field.
func MinZoomLTE(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldMinZoom, v))
}

// MinZoomIsNil applies the IsNil predicate on the "min_zoom" field.
func MinZoomIsNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldIsNull(FieldMinZoom))
}

// MinZoomNotNil applies the NotNil predicate on the "min_zoom" field.
func MinZoomNotNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldNotNull(FieldMinZoom))
}

// MaxZoomEQ applies the EQ predicate on the "max_zoom" field.
func MaxZoomEQ(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldMaxZoom, v))
}

// MaxZoomNEQ applies the NEQ predicate on the "max_zoom" field.
func MaxZoomNEQ(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldMaxZoom, v))
}

// MaxZoomIn applies the In predicate on the "max_zoom" field.
func MaxZoomIn(vs ...int) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldMaxZoom, vs...))
}

// MaxZoomNotIn applies the NotIn predicate on the "max_zoom" field.
func MaxZoomNotIn(vs ...int) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldMaxZoom, vs...))
}

// MaxZoomGT applies the GT predicate on the "max_zoom" field.
func MaxZoomGT(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldMaxZoom, v))
}

// MaxZoomGTE applies the GTE predicate on the "max_zoom" field.
func MaxZoomGTE(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldMaxZoom, v))
}

// MaxZoomLT applies the LT predicate on the "max_zoom" field.
func MaxZoomLT(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldMaxZoom, v))
}

// MaxZoomLTE applies the LTE predicate on the "max_zoom" field.
func MaxZoomLTE(v int) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldMaxZoom, v))
}

// MaxZoomIsNil applies the IsNil predicate on the "max_zoom" field.
func MaxZoomIsNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldIsNull(FieldMaxZoom))
}

// MaxZoomNotNil applies the NotNil predicate on the "max_zoom" field.
func MaxZoomNotNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldNotNull(FieldMaxZoom))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Sheet) predicate.Sheet {
	return predicate.Sheet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Sheet) predicate.Sheet {
	return predicate.Sheet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Sheet) predicate.Sheet {
	return predicate.Sheet(sql.NotPredicates(p))
}
