package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Sheet holds the schema definition for the Sheet entity — per-sheet
// metadata produced by the extraction stage and consumed by viewers.
type Sheet struct {
	ent.Schema
}

// Fields of the Sheet.
func (Sheet) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("plan_id"),
		field.String("project_id"),
		field.String("organization_id"),
		field.String("sheet_id").
			Comment("Canonical sheet-{index} identifier"),
		field.Int("page_number").
			Comment("1-based page position in the source PDF"),
		field.String("sheet_number").
			Optional().
			Nillable().
			Comment("Extracted drawing number, e.g. A1"),
		field.String("title").
			Optional().
			Nillable(),
		field.String("discipline").
			Optional().
			Nillable(),
		field.Bool("is_valid").
			Default(false),
		field.Int("width").
			Optional(),
		field.Int("height").
			Optional(),
		field.String("image_path").
			Optional(),
		field.String("tiles_path").
			Optional(),
		field.Int("min_zoom").
			Optional(),
		field.Int("max_zoom").
			Optional(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Sheet.
func (Sheet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id", "sheet_id").
			Unique(),
		index.Fields("plan_id", "is_valid"),
	}
}
