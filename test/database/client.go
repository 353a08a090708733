// Package database provides ent clients backed by a real PostgreSQL for
// service and integration tests.
package database

import (
	"testing"

	"github.com/delverhq/delver/pkg/database"
	"github.com/delverhq/delver/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to the external PostgreSQL
// service container. In local dev: spins up a PostgreSQL testcontainer.
// The schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
