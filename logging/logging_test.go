package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewLogger(Config{Level: "info"}, &buf)
	logger.Info("hello", "key", "value")

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "value", record["key"])
	assert.NotContains(t, record, "source")
}

func TestNewLogger_AddSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewLogger(Config{Level: "info", AddSource: true}, &buf)
	logger.Info("here")

	var record map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Contains(t, record, "source")
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		level      string
		logDebug   bool
		wantOutput bool
	}{
		{name: "debug visible at debug level", level: "debug", logDebug: true, wantOutput: true},
		{name: "debug hidden at info level", level: "info", logDebug: true, wantOutput: false},
		{name: "debug hidden at unknown level", level: "loud", logDebug: true, wantOutput: false},
		{name: "info hidden at error level", level: "error", logDebug: false, wantOutput: false},
		{name: "warning alias", level: "warning", logDebug: false, wantOutput: true},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := NewLogger(Config{Level: testInfo.level}, &buf)

			if testInfo.logDebug {
				logger.Debug("msg")
			} else {
				logger.Warn("msg")
			}

			if testInfo.wantOutput {
				assert.NotEmpty(t, buf.Bytes())
			} else {
				assert.Empty(t, buf.Bytes())
			}
		})
	}
}

func TestNop_Discards(t *testing.T) {
	t.Parallel()

	logger := Nop()

	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}
