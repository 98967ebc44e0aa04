package ssd1306

import (
	"bytes"
	"testing"

	"github.com/flavioheleno/ssd1306/bustrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
)

// fillFrames returns the transactions written by Fill(v).
func fillFrames(v byte) [][]byte {
	var out [][]byte
	for page := byte(0); page < 4; page++ {
		out = append(out,
			[]byte{0x00, 0xB0 | page},
			[]byte{0x00, 0x00, 0x10},
			append([]byte{0x40}, bytes.Repeat([]byte{v}, Columns)...),
		)
	}
	return out
}

func TestInitInternalSupply(t *testing.T) {
	rst := newLevelPin("RST")
	vddb := newLevelPin("VDDB")
	rec := bustrace.NewRecorder(nil, nil)
	d, err := New(map[Channel]Port{ChannelA: {Bus: rec, RST: rst}}, &Opts{VDDB: vddb, Logger: quietLogger()})
	require.NoError(t, err)

	require.NoError(t, d.InitInternalSupply())

	want := [][]byte{
		{0x00, 0x8D, 0x14},
		{0x00, 0xAF},
		{0x00, 0xD5, 0x80},
		{0x00, 0xA8, 0x1F},
		{0x00, 0xD3, 0x00},
		{0x00, 0x40},
		{0x00, 0x20, 0x02},
		{0x00, 0xA1},
		{0x00, 0xC8},
		{0x00, 0xDA, 0x02},
		{0x00, 0x81, 0xFF},
		{0x00, 0xD9, 0xF1},
	}
	want = append(want, fillFrames(0x00)...)
	assert.Equal(t, want, frames(rec))

	assert.Equal(t, []gpio.Level{gpio.Low}, vddb.levels)
	assert.Equal(t, []gpio.Level{gpio.Low, gpio.High}, rst.levels)

	s := d.State()
	assert.True(t, s.Active)
	assert.Equal(t, PageAddressing, s.Mode)
	assert.Equal(t, byte(0xFF), s.Contrast)
	assert.Equal(t, byte(0x1F), s.Multiplex)
}

func TestInitExternalSupply(t *testing.T) {
	d, rec := newTestDev(t, nil)

	require.NoError(t, d.InitExternalSupply())

	want := [][]byte{
		{0x00, 0xAE},
		{0x00, 0xD5, 0x80},
		{0x00, 0xA8, 0x1F},
		{0x00, 0xD3, 0x00},
		{0x00, 0x40},
		{0x00, 0x8D, 0x10},
		{0x00, 0x20, 0x02},
		{0x00, 0xA1},
		{0x00, 0xC8},
		{0x00, 0xDA, 0x02},
		{0x00, 0x81, 0xFF},
		{0x00, 0xD9, 0x22},
		{0x00, 0xDB, 0x40},
		{0x00, 0xA4},
		{0x00, 0xA6},
	}
	want = append(want, fillFrames(0x00)...)
	want = append(want, []byte{0x00, 0xAF})
	assert.Equal(t, want, frames(rec))
	assert.True(t, d.State().Active)
}

func TestInitRestoresPageAddressing(t *testing.T) {
	d, _ := newTestDev(t, nil)
	require.NoError(t, d.SetAddressingMode(HorizontalAddressing))
	require.NoError(t, d.InitExternalSupply())
	assert.Equal(t, PageAddressing, d.State().Mode)
}

func TestInitInternalSupplySelectsChannelA(t *testing.T) {
	a := bustrace.NewRecorder(nil, nil)
	b := bustrace.NewRecorder(nil, nil)
	d, err := New(map[Channel]Port{ChannelA: {Bus: a}, ChannelB: {Bus: b}}, &Opts{Logger: quietLogger()})
	require.NoError(t, err)
	require.NoError(t, d.SelectChannel(ChannelB))

	require.NoError(t, d.InitInternalSupply())
	assert.Empty(t, b.Events())
	assert.NotEmpty(t, a.Frames())
}
