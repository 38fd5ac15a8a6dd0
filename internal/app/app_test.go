package app

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/suryatech/solarportal/config"
	"github.com/suryatech/solarportal/internal/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:app_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestMigrateDBCreatesAllTables(t *testing.T) {
	application := NewApplication(config.DefaultAppConfig)
	application.OverrideDB(openTestDB(t))

	require.NoError(t, application.MigrateDB(false))

	for _, table := range domain.Tables {
		assert.True(t, application.DB().Migrator().HasTable(table), "missing table for %T", table)
	}

	// migration is idempotent
	require.NoError(t, application.MigrateDB(false))
}

func TestMigrateDBReportsFailure(t *testing.T) {
	application := NewApplication(config.DefaultAppConfig)
	db := openTestDB(t)
	application.OverrideDB(db)

	sqldb, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqldb.Close())

	assert.Error(t, application.MigrateDB(false))
}
