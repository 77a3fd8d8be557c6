package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGet_BeforeInit(t *testing.T) {
	globalLogger = nil

	l := Get()
	require.NotNil(t, l)

	// Must not panic even though Init was never called.
	l.Info("noop logger accepts writes")
}

func TestInit_Development(t *testing.T) {
	err := Init("development", "debug")
	require.NoError(t, err)

	l := Get()
	assert.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestInit_Production(t *testing.T) {
	err := Init("production", "info")
	require.NoError(t, err)

	l := Get()
	assert.NotNil(t, l)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestInit_InvalidLevelFallsBack(t *testing.T) {
	// An unknown level keeps the environment default instead of failing.
	err := Init("development", "not-a-level")
	require.NoError(t, err)
	assert.NotNil(t, Get())
}
