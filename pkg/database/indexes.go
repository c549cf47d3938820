package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates the PostgreSQL partial unique indexes.
// Production gets them from migrations/000001_init.up.sql; tests that build
// the schema with ent's Schema.Create call this afterwards because auto
// migration does not apply the IndexWhere predicate.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Emit-time event dedupe: the publisher relies on ON CONFLICT against
	// this index to drop re-emissions from redelivered jobs.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS event_plan_id_name_dedupe_key
		ON events (plan_id, name, dedupe_key)
		WHERE dedupe_key IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create event dedupe index: %w", err)
	}

	return nil
}
