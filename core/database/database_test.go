package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	t.Run("SQLite In Memory", func(t *testing.T) {
		cfg := Config{
			Driver: DriverSQLite,
			Path:   ":memory:",
		}

		db, err := Connect(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})

	t.Run("SQLite File Creates Parent Directory", func(t *testing.T) {
		cfg := Config{
			Driver: DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "vector_data", "index.db"),
		}

		db, err := Connect(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, db)
		assert.FileExists(t, cfg.Path)
	})

	t.Run("Empty Driver Defaults To SQLite", func(t *testing.T) {
		cfg := Config{
			Path: ":memory:",
		}

		db, err := Connect(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})

	t.Run("Invalid MySQL Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "guidegen",
			TimeoutSeconds: 1,
		}

		// Connect should fail (timeout or refused)
		// We expect an error.
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		cfg := Config{Driver: "postgres"}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
		assert.Contains(t, err.Error(), "unsupported database driver")
	})
}

func TestIsValidDriver(t *testing.T) {
	assert.True(t, IsValidDriver(DriverSQLite))
	assert.True(t, IsValidDriver(DriverMySQL))
	assert.False(t, IsValidDriver("postgres"))
	assert.False(t, IsValidDriver(""))
}
