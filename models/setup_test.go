package models

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// A fresh database must come out of migration with every table present,
// branding seed included, before any request is served.
func TestMigrateSchemaCreatesAllTables(t *testing.T) {
	dbName := "database_setup_test.db"
	os.Remove(dbName)
	t.Cleanup(func() { os.Remove(dbName) })

	gdb, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, migrateSchema(gdb))

	for _, model := range []interface{}{
		&Profile{}, &JobProfile{}, &Qualifier{}, &Location{},
		&Evaluation{}, &EvaluationStat{}, &BrandingSetting{},
	} {
		assert.True(t, gdb.Migrator().HasTable(model), "expected table for %T", model)
	}

	// the startup branding seed must work against the migrated schema
	db := &Database{GormDB: gdb}
	branding, err := db.GetBrandingSetting()
	require.NoError(t, err)
	require.Nil(t, branding)

	_, err = db.CreateBrandingSetting(DEFAULT_ORGANISATION_NAME, "", "#1f6feb")
	require.NoError(t, err)

	branding, err = db.GetBrandingSetting()
	require.NoError(t, err)
	assert.Equal(t, DEFAULT_ORGANISATION_NAME, branding.OrganisationName)
}
