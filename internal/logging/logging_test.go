package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(&bytes.Buffer{}, "info", "json") })

	tests := []struct {
		name          string
		level         string
		expectedLevel zerolog.Level
	}{
		{name: "debug", level: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "upper case", level: "WARN", expectedLevel: zerolog.WarnLevel},
		{name: "unknown falls back to info", level: "chatty", expectedLevel: zerolog.InfoLevel},
		{name: "empty falls back to info", level: "", expectedLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Configure(&bytes.Buffer{}, tt.level, "json")
			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestConfigure_JSONOutput(t *testing.T) {
	t.Cleanup(func() { Configure(&bytes.Buffer{}, "info", "json") })

	var buf bytes.Buffer
	Configure(&buf, "info", "json")
	log.Info().Str("source", "test").Msg("dataset loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dataset loaded", entry["message"])
	assert.Equal(t, "test", entry["source"])
	assert.Equal(t, "info", entry["level"])
}
