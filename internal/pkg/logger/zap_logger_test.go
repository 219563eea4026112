package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_WritesModuleAndDetails(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Warn("ContentService", "node generation failed", map[string]interface{}{"node": 2})
	l.Info("ContentService", "no details", nil)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "node generation failed", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "ContentService", fields["module"])
	assert.Equal(t, map[string]interface{}{"node": 2}, fields["details"])

	assert.Equal(t, map[string]interface{}{}, entries[1].ContextMap()["details"])
}

func TestZapLogger_ErrorKeepsErrorReference(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Error("FormService", "create failed", map[string]interface{}{"error": "boom"})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0].ContextMap()["error_ref"])
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Debug("m", "ignored", nil)
	assert.NoError(t, l.Sync())
}
