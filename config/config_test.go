package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	data := `
http:
  address: ":9090"
flights_db:
  host: db1
  port: 5432
  user: app
  password: secret
  name: flights
  ssl_mode: disable
tickets_db:
  host: db2
  port: 5433
  user: app
  password: secret
  name: tickets
  ssl_mode: disable
log:
  level: debug
  dev: true
flights:
  default_page_size: 20
  max_page_size: 50
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, "host=db1 port=5432 user=app password=secret dbname=flights sslmode=disable", cfg.FlightsDB.DSN())
	assert.Equal(t, "host=db2 port=5433 user=app password=secret dbname=tickets sslmode=disable", cfg.TicketsDB.DSN())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Dev)
	assert.Equal(t, 20, cfg.Flights.DefaultPageSize)
	assert.Equal(t, 50, cfg.Flights.MaxPageSize)
}

func TestLoadConfig_PaginationDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  address: \":8080\"\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Flights.DefaultPageSize)
	assert.Equal(t, 100, cfg.Flights.MaxPageSize)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
