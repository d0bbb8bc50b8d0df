package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 9, cfg.Schedule.StartHour)
	assert.Equal(t, 18, cfg.Schedule.EndHour)
	assert.Equal(t, 60, cfg.Schedule.IntervalMinutes)
	assert.Equal(t, 4, cfg.Schedule.Capacity)
	assert.InDelta(t, 0.8, cfg.Schedule.LimitedThreshold, 1e-9)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestParse_Sections(t *testing.T) {
	data := `
[server]
http_port = 9090

[schedule]
start_hour = 10
end_hour = 16
interval_minutes = 30
capacity = 2

[storage]
driver = "postgres"

[database]
host = "localhost"
user = "booking"
password = "secret"
dbname = "ac_booking"

[redis]
enabled = true
address = "localhost:6379"

[rate_limit]
enabled = true
trusted_proxies = ["10.0.0.1", "172.16.0.0/12"]
`
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Schedule.StartHour)
	assert.Equal(t, 30, cfg.Schedule.IntervalMinutes)
	assert.Equal(t, 2, cfg.Schedule.Capacity)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 5000, cfg.Redis.LockTTL)
	assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, cfg.RateLimit.TrustedProxies)
	assert.Equal(t,
		"host=localhost port=5432 user=booking password=secret dbname=ac_booking sslmode=disable",
		cfg.Database.DSN(),
	)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown driver", data: "[storage]\ndriver = \"mongo\""},
		{name: "postgres without host", data: "[storage]\ndriver = \"postgres\""},
		{name: "redis without address", data: "[redis]\nenabled = true"},
		{name: "threshold above one", data: "[schedule]\nlimited_threshold = 1.5"},
		{name: "bad log format", data: "[logs]\nformat = \"xml\""},
		{name: "port out of range", data: "[server]\nhttp_port = 70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	t.Run("malformed toml", func(t *testing.T) {
		_, err := Parse("[server")
		assert.Error(t, err)
	})
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("AC_BOOKING_PORT", "8181")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nhttp_port = ${AC_BOOKING_PORT}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8181, cfg.Server.HTTPPort)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
