package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_SetsLevelAndGlobal(t *testing.T) {
	logger, err := New("warn", "product-factory")
	require.NoError(t, err)
	defer zap.ReplaceGlobals(zap.NewNop())

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.Same(t, logger, zap.L())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", "product-factory")
	assert.Error(t, err)
}
