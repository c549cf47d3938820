// Package database provides test database clients backed by a real
// PostgreSQL instance (testcontainers locally, service container in CI).
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/plandeck/plandeck/pkg/database"
	"github.com/plandeck/plandeck/test/util"
)

// NewTestClient creates a test database client with the full schema applied,
// including the partial unique indexes that ent's Schema.Create cannot
// express. The schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	err := database.CreatePartialUniqueIndexes(ctx, drv)
	require.NoError(t, err)

	// Note: cleanup (schema drop and connection close) is handled by SetupTestDatabase
	return database.NewClientFromEnt(entClient, db)
}
