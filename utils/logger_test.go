package utils

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// captureLogs redirects the shared logger into a buffer for the rest of the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	level := log.GetLevel()
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(os.Stdout)
		log.SetLevel(level)
	})
	return &buf
}

func TestDebug(t *testing.T) {
	buf := captureLogs(t)

	Debug("hidden at info", map[string]any{"n": 1})
	require.Empty(t, buf.String())

	SetLevel("debug")
	Debug("shown at debug", map[string]any{"n": 2})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "debug", entry["level"])
	require.Equal(t, "shown at debug", entry["msg"])
	require.Equal(t, float64(2), entry["n"])
}

func TestSetLevel_UnknownKeepsCurrent(t *testing.T) {
	buf := captureLogs(t)

	SetLevel("warn")
	SetLevel("loud")
	require.Equal(t, log.WarnLevel, log.GetLevel())
	require.Contains(t, buf.String(), "unknown log level")
}
