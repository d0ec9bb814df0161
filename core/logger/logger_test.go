package logger_test

import (
	"testing"

	"caldav-bridge/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_LevelThreshold(t *testing.T) {
	tests := []struct {
		name         string
		level        string
		debugEnabled bool
		warnEnabled  bool
	}{
		{"Debug", "debug", true, true},
		{"Info", "info", false, true},
		{"Warn", "warn", false, true},
		{"Error", "error", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&logger.Config{Level: tt.level, Format: "json"})
			require.NoError(t, err)
			assert.Equal(t, tt.debugEnabled, l.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.warnEnabled, l.Core().Enabled(zapcore.WarnLevel))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(&logger.Config{Level: "loud", Format: "json"})
	assert.Error(t, err)
}

func TestNew_ConsoleFormat(t *testing.T) {
	l, err := logger.New(&logger.Config{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, l)
}
