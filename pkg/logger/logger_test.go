package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("JSONWithFields", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, "info", WithField("service", "booking"))

		log.Info("booking id=%s created", "BK-1")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "booking id=BK-1 created", entry["message"])
		assert.Equal(t, "booking", entry["service"])
	})

	t.Run("LevelFiltering", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, "warn")

		log.Info("hidden")
		log.Debug("hidden")
		assert.Zero(t, buf.Len())

		log.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("InvalidLevelDefaultsToInfo", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, "loud")

		log.Debug("hidden")
		assert.Zero(t, buf.Len())
		log.Info("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("Console", func(t *testing.T) {
		var buf bytes.Buffer
		log := NewWithWriter(&buf, "debug", WithConsole())
		log.Error("slot %s is full", "09:00 - 10:00")
		assert.Contains(t, buf.String(), "slot 09:00 - 10:00 is full")
	})
}

func TestNew(t *testing.T) {
	t.Run("Stdout", func(t *testing.T) {
		log, err := New("", "info")
		require.NoError(t, err)
		assert.NoError(t, log.Close())
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "service.log")
		log, err := New(path, "info")
		require.NoError(t, err)

		log.Info("written to file")
		require.NoError(t, log.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "written to file")
	})

	t.Run("FileInMissingDir", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "missing", "service.log"), "info")
		assert.Error(t, err)
	})
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("nothing")
	assert.NoError(t, log.Close())
}
