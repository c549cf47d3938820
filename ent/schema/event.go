package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity — the append-only
// per-tenant domain event log consumed by viewers.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("organization_id").
			Comment("Tenant partition key"),
		field.String("plan_id"),
		field.String("name").
			Comment("Domain event name, e.g. sheetImageGenerated"),
		field.String("channel").
			Comment("NOTIFY channel the event was broadcast on"),
		field.String("dedupe_key").
			Optional().
			Nillable().
			Comment("Emit-time idempotency key; NULL for repeatable events"),
		field.JSON("payload", json.RawMessage{}),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("organization_id", "id"),
		index.Fields("plan_id"),
		// Duplicate per-sheet and singleton plan events are dropped at
		// commit time via ON CONFLICT against this partial unique index.
		index.Fields("plan_id", "name", "dedupe_key").
			Unique().
			Annotations(entsql.IndexWhere("dedupe_key IS NOT NULL")),
	}
}
