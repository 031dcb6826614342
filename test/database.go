package test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/hivebudget/backend/pkg/models"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path of a new sqlite database file in a
// directory that is removed when the test ends.
func TmpFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), fmt.Sprintf("hivebudget-%s.db", uuid.NewString()))
}

// Database connects models.DB to a fresh, migrated database and closes
// the connection when the test ends.
func Database(t *testing.T) {
	t.Helper()
	require.Nil(t, models.Connect(TmpFile(t)), "connecting to the test database")

	db := models.DB
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
}
