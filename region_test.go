package ssd1306

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionValidate(t *testing.T) {
	tests := []struct {
		name    string
		r       Region
		wantErr bool
	}{
		{"full RAM", Region{0, 7, 0, 128}, false},
		{"single byte", Region{3, 3, 127, 1}, false},
		{"reversed pages", Region{4, 3, 0, 1}, true},
		{"page 8", Region{0, 8, 0, 1}, true},
		{"no columns", Region{0, 0, 0, 0}, true},
		{"past last column", Region{0, 0, 120, 9}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRegion)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegionSize(t *testing.T) {
	r := Region{StartPage: 1, EndPage: 3, StartColumn: 4, Columns: 10}
	assert.Equal(t, 3, r.Pages())
	assert.Equal(t, 30, r.Size())
	assert.Equal(t, "pages 1-3, columns 4+10", r.String())
}

func TestFillBlockFrames(t *testing.T) {
	d, rec := newTestDev(t, nil)
	require.NoError(t, d.FillBlock(Region{StartPage: 2, EndPage: 3, StartColumn: 0x1A, Columns: 3}, 0x5A))

	assert.Equal(t, [][]byte{
		{0x00, 0xB2},
		{0x00, 0x0A, 0x11},
		{0x40, 0x5A, 0x5A, 0x5A},
		{0x00, 0xB3},
		{0x00, 0x0A, 0x11},
		{0x40, 0x5A, 0x5A, 0x5A},
	}, frames(rec))
}

func TestRegionRequiresPageAddressing(t *testing.T) {
	for _, mode := range []AddressingMode{HorizontalAddressing, VerticalAddressing} {
		t.Run(mode.String(), func(t *testing.T) {
			d, rec := newTestDev(t, nil)
			require.NoError(t, d.SetAddressingMode(PageAddressing))
			require.NoError(t, d.SetAddressingMode(mode))
			assert.Equal(t, mode, d.State().Mode)
			rec.Reset()

			assert.ErrorIs(t, d.Fill(0x00), ErrAddressingMode)
			assert.ErrorIs(t, d.Checkerboard(), ErrAddressingMode)
			assert.Empty(t, rec.Events())

			require.NoError(t, d.SetAddressingMode(PageAddressing))
			assert.Equal(t, PageAddressing, d.State().Mode)
			assert.NoError(t, d.Fill(0x00))
		})
	}
}

func TestRegionOutOfBoundsSendsNothing(t *testing.T) {
	d, rec := newTestDev(t, nil)
	assert.ErrorIs(t, d.FillBlock(Region{StartPage: 0, EndPage: 0, StartColumn: 127, Columns: 2}, 0xFF), ErrRegion)
	assert.Empty(t, rec.Events())
}

func TestShowPattern(t *testing.T) {
	d, rec := newTestDev(t, nil)
	r := Region{StartPage: 0, EndPage: 1, StartColumn: 0, Columns: 2}

	require.NoError(t, d.ShowPattern(r, []byte{1, 2, 3, 4}))
	assert.Equal(t, [][]byte{
		{0x00, 0xB0},
		{0x00, 0x00, 0x10},
		{0x40, 1, 2},
		{0x00, 0xB1},
		{0x00, 0x00, 0x10},
		{0x40, 3, 4},
	}, frames(rec))

	rec.Reset()
	assert.ErrorIs(t, d.ShowPattern(r, []byte{1, 2, 3}), ErrPatternSize)
	assert.Empty(t, rec.Events())
}

func TestFill(t *testing.T) {
	d, rec := newTestDev(t, nil)
	require.NoError(t, d.Fill(0xFF))
	assert.Equal(t, fillFrames(0xFF), frames(rec))
}

func TestCheckerboard(t *testing.T) {
	d, rec := newTestDev(t, nil)
	require.NoError(t, d.Checkerboard())

	got := frames(rec)
	require.Len(t, got, 3*Pages)
	row := append([]byte{0x40}, bytes.Repeat([]byte{0x55, 0xAA}, Columns/2)...)
	for page := 0; page < Pages; page++ {
		assert.Equal(t, []byte{0x00, 0xB0 | byte(page)}, got[3*page])
		assert.Equal(t, row, got[3*page+2])
	}
}

func TestDrawFrame(t *testing.T) {
	d, rec := newTestDev(t, nil)
	require.NoError(t, d.DrawFrame())

	got := frames(rec)
	require.Len(t, got, 30)
	assert.Equal(t, append([]byte{0x40}, bytes.Repeat([]byte{0x01}, Columns)...), got[2])
	assert.Equal(t, []byte{0x00, 0xB3}, got[3])
	assert.Equal(t, append([]byte{0x40}, bytes.Repeat([]byte{0x80}, Columns)...), got[5])

	// Side borders: column 0 then column 127, page by page.
	assert.Equal(t, [][]byte{{0x00, 0xB0}, {0x00, 0x00, 0x10}, {0x40, 0xFF}}, got[6:9])
	assert.Equal(t, [][]byte{{0x00, 0xB0}, {0x00, 0x0F, 0x17}, {0x40, 0xFF}}, got[9:12])
	assert.Equal(t, []byte{0x00, 0xB3}, got[27])
}

func TestShowImage(t *testing.T) {
	d, rec := newTestDev(t, nil)

	img := image.NewGray(image.Rect(0, 0, 3, 12))
	img.SetGray(0, 0, color.Gray{Y: 0xFF})
	img.SetGray(1, 7, color.Gray{Y: 0xFF})
	img.SetGray(2, 8, color.Gray{Y: 0xFF})

	require.NoError(t, d.ShowImage(2, 10, img))
	assert.Equal(t, [][]byte{
		{0x00, 0xB2},
		{0x00, 0x0A, 0x10},
		{0x40, 0x01, 0x80, 0x00},
		{0x00, 0xB3},
		{0x00, 0x0A, 0x10},
		{0x40, 0x00, 0x00, 0x01},
	}, frames(rec))
}

func TestShowImageBounds(t *testing.T) {
	d, rec := newTestDev(t, nil)

	assert.ErrorIs(t, d.ShowImage(7, 0, image.NewGray(image.Rect(0, 0, 8, 9))), ErrRegion)
	assert.ErrorIs(t, d.ShowImage(0, 121, image.NewGray(image.Rect(0, 0, 8, 8))), ErrRegion)
	assert.NoError(t, d.ShowImage(0, 0, image.NewGray(image.Rect(0, 0, 0, 0))))
	assert.Empty(t, rec.Events())
}
