package database

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, ParseGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, ParseGormLogLevel("error"))
	assert.Equal(t, gormlogger.Info, ParseGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, ParseGormLogLevel(""))
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrationFiles, "migrations/*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))

	initial, err := fs.ReadFile(migrationFiles, "migrations/000001_init.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(initial), "IDX_session_expire")
	assert.NotContains(t, string(initial), "REFERENCES")
}

func TestApplied(t *testing.T) {
	ok, err := applied(nil)
	assert.NoError(t, err)
	assert.True(t, ok)
}
