package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contfrac/internal/config"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry)) // exactly one JSON line
	require.Equal(t, "shown", entry["msg"])
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "cfcalc", entry["logger"])
	require.Contains(t, entry, "ts")
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(config.LogConfig{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)

	log.Debug("details")
	require.Contains(t, buf.String(), "details")
	require.Contains(t, buf.String(), "debug")
}

func TestNewWithWriter_Invalid(t *testing.T) {
	_, err := NewWithWriter(config.LogConfig{Level: "loud", Format: "json"}, &bytes.Buffer{})
	require.Error(t, err)

	_, err = NewWithWriter(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	log, err := New(config.Default().Log)
	require.NoError(t, err)
	require.NotNil(t, log)
}
