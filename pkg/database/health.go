package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
)

// HealthStatus describes database reachability and pool usage.
type HealthStatus struct {
	Reachable       bool `json:"reachable"`
	OpenConnections int  `json:"open_connections"`
	InUse           int  `json:"in_use"`
	Idle            int  `json:"idle"`
}

// Health pings the database and reports pool statistics.
func Health(ctx context.Context, db *stdsql.DB) (HealthStatus, error) {
	stats := db.Stats()
	status := HealthStatus{
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
	}
	if err := db.PingContext(ctx); err != nil {
		return status, fmt.Errorf("database ping failed: %w", err)
	}
	status.Reachable = true
	return status, nil
}
