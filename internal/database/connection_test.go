package database

import (
	"testing"

	"github.com/localnerve/nickstore/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		dbType string
		name   string
	}{
		{"postgres", "postgres"},
		{"mysql", "mysql"},
		{"mariadb", "mysql"},
		{"sqlite", "sqlite"},
		{"sqlite-pure", "sqlite"},
		{"sqlserver", "sqlserver"},
	}

	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			cfg := &config.Config{
				DBType:     tt.dbType,
				DBHost:     "localhost",
				DBPort:     "5432",
				DBDatabase: "nickstore",
				DBUser:     "u",
				DBPassword: "p",
			}
			dialector, err := Dialector(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.name, dialector.Name())
		})
	}
}

func TestDialectorRejectsUnknownType(t *testing.T) {
	_, err := Dialector(&config.Config{DBType: "oracle"})
	assert.Error(t, err)
}

func TestSqlitePathPrefersDatabaseURL(t *testing.T) {
	assert.Equal(t, "catalog.db", sqlitePath(&config.Config{DBDatabase: "catalog.db"}))
	assert.Equal(t, "file:x.db", sqlitePath(&config.Config{DBDatabase: "catalog.db", DatabaseURL: "file:x.db"}))
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, LogLevel("silent"))
	assert.Equal(t, logger.Error, LogLevel("error"))
	assert.Equal(t, logger.Info, LogLevel("info"))
	assert.Equal(t, logger.Warn, LogLevel("warn"))
	assert.Equal(t, logger.Warn, LogLevel("bogus"))
}

func TestConnectPureSqlite(t *testing.T) {
	db, err := Connect(&config.Config{
		DBType:            "sqlite-pure",
		DBDatabase:        ":memory:",
		DBConnectionLimit: 1,
		DBLogLevel:        "silent",
	})
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, AutoMigrate(db))
	assert.True(t, db.Migrator().HasTable("game_nicks"))
	assert.True(t, db.Migrator().HasTable("categories"))
	assert.True(t, db.Migrator().HasTable("accounts"))
}
