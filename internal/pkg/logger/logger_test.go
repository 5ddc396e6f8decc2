package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	level, ok := ParseLevel("debug")
	assert.True(t, ok)
	assert.Equal(t, zapcore.DebugLevel, level)

	level, ok = ParseLevel("WARN")
	assert.True(t, ok)
	assert.Equal(t, zapcore.WarnLevel, level)

	level, ok = ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, zapcore.InfoLevel, level)
}

func TestNewZapHonoursLevel(t *testing.T) {
	zapLogger, err := NewZap("error")
	assert.NoError(t, err)
	assert.False(t, zapLogger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, zapLogger.Core().Enabled(zapcore.ErrorLevel))
}
