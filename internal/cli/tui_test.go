package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/beezer-app/beezer/internal/install"
)

type volumeRecorder struct {
	level float64
	muted bool
}

func (v *volumeRecorder) SetVolume(level float64) { v.level = level }
func (v *volumeRecorder) SetMuted(muted bool)     { v.muted = muted }

func TestApplyVolume(t *testing.T) {
	v := &volumeRecorder{}
	applyVolume(v, 0)
	assert.True(t, v.muted)
	assert.InDelta(t, 0.0, v.level, 1e-9)

	applyVolume(v, 40)
	assert.False(t, v.muted)
	assert.InDelta(t, 0.4, v.level, 1e-9)
}

type installerFunc func() error

func (f installerFunc) Install() error { return f() }

func TestLogInstallEvents(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := install.NewPrompt(installerFunc(func() error { return errors.New("read-only home") }))

	cancel := logInstallEvents(zap.New(core), p)
	require.True(t, p.Offer())
	require.Error(t, p.Accept())

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, "Offered", entries[0].ContextMap()["to"])
	assert.Equal(t, "Accepted", entries[1].ContextMap()["to"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "Hidden", entries[2].ContextMap()["to"])
	assert.Equal(t, "read-only home", entries[2].ContextMap()["error"])

	cancel()
	require.True(t, p.Offer())
	assert.Len(t, logs.AllUntimed(), 3)
}
