package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	log = nil
	assert.NotPanics(t, func() { Infow("before init", "k", 1) })

	require.NoError(t, Init(true))
	require.NoError(t, Init(false))

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	Infow("detected", "timesteps", 12)
	Debugf("window %d", 11)
	Errorw("failed", "err", "boom")
	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "detected", entries[0].Message)
	assert.Equal(t, int64(12), entries[0].ContextMap()["timesteps"])
	assert.Equal(t, "window 11", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	Sync()
}

func TestLoggerBuildError(t *testing.T) {
	prev := Logger()
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "bogus"
	err := build(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInit)
	assert.Contains(t, err.Error(), "bogus")
	assert.Same(t, prev, Logger())
}
