package logging

import (
	"testing"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"info", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"loud", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLevel(tt.in), tt.in)
	}
}

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		logger, err := New("debug", format)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	}

	logger, err := New("error", "json")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestAdapterDrivesEngineLogging(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	var engineLogger calculation.Logger = NewZapAdapter(zap.New(core))

	engineLogger.Debugf("hidden %d", 1)
	engineLogger.Warnf("payment %s too small", "500.00")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "payment 500.00 too small", logs.All()[0].Message)
}

func TestTestAndNoOpLoggers(t *testing.T) {
	var l calculation.Logger = NewTestLogger(t)
	l.Infof("hello %s", "test")

	l = NewNoOpLogger()
	l.Errorf("ignored")

	l = NewZapAdapter(nil)
	l.Infof("nil logger falls back to nop")
}
