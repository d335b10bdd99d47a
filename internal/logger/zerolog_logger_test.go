package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buffer *bytes.Buffer) []map[string]any {
	t.Helper()
	lines := make([]map[string]any, 0)
	for _, line := range strings.Split(strings.TrimSpace(buffer.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		lines = append(lines, entry)
	}
	return lines
}

func TestZerologLoggerFields(t *testing.T) {
	//** Arrange
	var buffer bytes.Buffer
	log := NewZerologLoggerWithWriter(&buffer, "planner", "debug")

	//** Act
	log.Infof("generated %d schedules", 3)
	log.Debugw("resolved", map[string]any{"courses": 2})

	//** Assert
	lines := decodeLines(t, &buffer)
	require.Len(t, lines, 2)
	assert.Equal(t, "planner", lines[0]["component"])
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "generated 3 schedules", lines[0]["message"])
	assert.Equal(t, "debug", lines[1]["level"])
	assert.Equal(t, float64(2), lines[1]["courses"])
}

func TestZerologLoggerLevel(t *testing.T) {
	var buffer bytes.Buffer
	log := NewZerologLoggerWithWriter(&buffer, "server", "warn")

	log.Debugf("hidden")
	log.Infof("hidden")
	log.Warnf("shown")
	log.Errorf("shown")

	assert.Len(t, decodeLines(t, &buffer), 2)
}

func TestZerologLoggerUnknownLevel(t *testing.T) {
	var buffer bytes.Buffer
	log := NewZerologLoggerWithWriter(&buffer, "server", "verbose")

	log.Debugf("hidden")
	log.Infof("shown")

	assert.Len(t, decodeLines(t, &buffer), 1)
}

func TestZerologLoggerWith(t *testing.T) {
	var buffer bytes.Buffer
	log := NewZerologLoggerWithWriter(&buffer, "server", "info")

	log.With("request_id", "abc").Infof("handled")

	lines := decodeLines(t, &buffer)
	require.Len(t, lines, 1)
	assert.Equal(t, "abc", lines[0]["request_id"])
}

func TestNopLogger(t *testing.T) {
	var log Logger = NopLogger{}

	assert.NotPanics(t, func() {
		log.Debugf("x")
		log.Debugw("x", nil)
		log.Infof("x")
		log.Warnf("x")
		log.Errorf("x")
		log.With("key", "value").Infof("x")
	})
}
