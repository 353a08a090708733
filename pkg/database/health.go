package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus reports database reachability and pool pressure. Pool
// saturation shows up as a rising WaitCount before queries start failing.
type HealthStatus struct {
	Healthy        bool  `json:"healthy"`
	ResponseTimeMS int64 `json:"response_time_ms"`
	OpenConns      int   `json:"open_conns"`
	InUse          int   `json:"in_use"`
	Idle           int   `json:"idle"`
	MaxOpenConns   int   `json:"max_open_conns"`
	WaitCount      int64 `json:"wait_count"`
	WaitMS         int64 `json:"wait_ms"`
}

// Health pings the database and snapshots connection pool statistics.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	err := db.PingContext(ctx)
	status := &HealthStatus{
		Healthy:        err == nil,
		ResponseTimeMS: time.Since(start).Milliseconds(),
	}
	if err != nil {
		return status, err
	}

	stats := db.Stats()
	status.OpenConns = stats.OpenConnections
	status.InUse = stats.InUse
	status.Idle = stats.Idle
	status.MaxOpenConns = stats.MaxOpenConnections
	status.WaitCount = stats.WaitCount
	status.WaitMS = stats.WaitDuration.Milliseconds()
	return status, nil
}
