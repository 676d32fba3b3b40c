package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/microsoft/durabletask-go/backend"
	"github.com/stretchr/testify/require"
)

var _ backend.Logger = Logger{}

func TestNewLogsJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf))

	l.InfoS("workflow scheduled", "id", "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "workflow scheduled", entry["msg"])
	require.Equal(t, "abc", entry["id"])
}

func TestDebugSuppressedAtDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf))

	l.Debug("hidden")
	require.Empty(t, buf.Bytes())
}

func TestWithLevelEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf), WithLevel(slog.LevelDebug))

	l.Debugf("task %s", "SayHello")
	require.Contains(t, buf.String(), "task SayHello")
}
