package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageJob holds the schema definition for the StageJob entity — one unit of
// stage work claimed by queue workers with FOR UPDATE SKIP LOCKED.
type StageJob struct {
	ent.Schema
}

// Fields of the StageJob.
func (StageJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("stage").
			Values("image_generation", "metadata_extraction", "callout_detection",
				"layout_detection", "tile_generation"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed").
			Default("pending"),
		field.JSON("payload", json.RawMessage{}).
			Comment("Structurally typed job record; opaque to the queue"),
		field.String("organization_id"),
		field.String("project_id"),
		field.String("plan_id"),
		field.String("sheet_id").
			Optional().
			Comment("Empty for plan-scoped jobs (image generation)"),
		field.Int("attempts").
			Default(0),
		field.Time("available_at").
			Default(time.Now).
			Comment("Earliest claim time; pushed forward by retry backoff"),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Pod that claimed the job, for crash recovery"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the StageJob.
func (StageJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stage", "status", "available_at"),
		index.Fields("plan_id"),
		index.Fields("status", "claimed_by"),
	}
}
