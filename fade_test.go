package ssd1306

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFadeIn(t *testing.T) {
	d, rec := newTestDev(t, nil)
	require.NoError(t, d.FadeIn(context.Background()))

	got := frames(rec)
	require.Len(t, got, MaxBrightness+2)
	assert.Equal(t, []byte{0x00, 0xAF}, got[0])
	for level := 0; level <= MaxBrightness; level++ {
		assert.Equal(t, []byte{0x00, 0x81, byte(level)}, got[level+1])
	}
	assert.Len(t, rec.Delays(), MaxBrightness+1)
	for _, dl := range rec.Delays() {
		assert.Equal(t, FadeStepDelay, dl)
	}

	s := d.State()
	assert.True(t, s.Active)
	assert.Equal(t, byte(MaxBrightness), s.Contrast)
}

func TestFadeOut(t *testing.T) {
	d, rec := newTestDev(t, nil)
	require.NoError(t, d.ActivateDisplay())
	rec.Reset()

	require.NoError(t, d.FadeOut(context.Background()))

	got := frames(rec)
	require.Len(t, got, MaxBrightness+2)
	for i := 0; i <= MaxBrightness; i++ {
		assert.Equal(t, []byte{0x00, 0x81, byte(MaxBrightness - i)}, got[i])
	}
	assert.Equal(t, []byte{0x00, 0xAE}, got[len(got)-1])

	s := d.State()
	assert.False(t, s.Active)
	assert.Equal(t, byte(0), s.Contrast)
}

func TestFadeCancel(t *testing.T) {
	d, rec := newTestDev(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, d.FadeIn(ctx), context.Canceled)
	assert.Empty(t, rec.Events())
	assert.False(t, d.State().Active)

	require.NoError(t, d.ActivateDisplay())
	rec.Reset()
	assert.ErrorIs(t, d.FadeOut(ctx), context.Canceled)
	assert.Empty(t, rec.Events())
	assert.True(t, d.State().Active)
}
