package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Plan holds the schema definition for the Plan entity — the durable
// coordinator state of one processed PDF upload.
type Plan struct {
	ent.Schema
}

// Fields of the Plan.
func (Plan) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("plan_id").
			Unique().
			Immutable(),
		field.String("project_id"),
		field.String("organization_id").
			Comment("Tenant key; event log partition"),
		field.String("name").
			Optional().
			Comment("Display name, usually the uploaded file name"),
		field.Int("total_sheets").
			Default(0),
		field.Enum("status").
			Values("image_generation", "metadata_extraction", "parallel_detection",
				"tile_generation", "complete", "failed").
			Default("image_generation"),
		field.JSON("generated_images", []string{}).
			Optional().
			Comment("Sheet IDs with a rendered PNG"),
		field.JSON("extracted_metadata", []string{}).
			Optional(),
		field.JSON("valid_sheets", []string{}).
			Optional(),
		field.JSON("sheet_number_map", map[string]string{}).
			Optional().
			Comment("sheetId -> extracted drawing number"),
		field.JSON("detected_callouts", []string{}).
			Optional(),
		field.JSON("detected_layouts", []string{}).
			Optional(),
		field.JSON("generated_tiles", []string{}).
			Optional(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("deadline_at").
			Comment("Wall-clock processing deadline; expiry forces failed"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Plan.
func (Plan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("organization_id", "project_id"),
		index.Fields("status", "deadline_at"),
		index.Fields("status", "completed_at"),
	}
}
