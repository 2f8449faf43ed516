package repository_test

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"

	"github.com/linskybing/workflow-go/internal/repository"
	"github.com/linskybing/workflow-go/internal/testutils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	flag.Parse()

	cleanup := func() {}
	if !testing.Short() {
		db, stop, err := testutils.SetupPostgres(context.Background())
		if err != nil {
			log.Printf("[Test] postgres unavailable, repository tests will be skipped: %v", err)
		} else {
			testDB = db
		}
		cleanup = stop
	}

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("postgres not available")
	}
	require.NoError(t, testutils.TruncateAll(testDB, repository.Models()...))
	return testDB
}
