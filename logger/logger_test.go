package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	l, err := New("wcaresults", false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))

	l, err = New("wcaresults", true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestRequest(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, Request(200))
	assert.Equal(t, zapcore.InfoLevel, Request(302))
	assert.Equal(t, zapcore.WarnLevel, Request(404))
	assert.Equal(t, zapcore.WarnLevel, Request(422))
	assert.Equal(t, zapcore.ErrorLevel, Request(500))
}
