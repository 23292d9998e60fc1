package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "mongo", cfg.Database.Type)
	assert.Equal(t, "companydb", cfg.Database.Mongo.Database)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "02:00", cfg.Snapshot.DailyRunTime)
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outreach.yaml")
	data := `
database:
  type: postgres
  postgres:
    host: db.internal
    port: 5432
    user: outreach
    database: outreach
snapshot:
  enabled: true
  daily_run_time: "06:30"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "db.internal", cfg.Database.Postgres.Host)
	assert.True(t, cfg.Snapshot.Enabled)
	assert.Equal(t, "06:30", cfg.Snapshot.DailyRunTime)

	// Untouched sections keep their defaults.
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8090", cfg.Client.ServerURL)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outreach.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: ["), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
