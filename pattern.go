package ssd1306

import (
	"fmt"
	"image"
	"image/draw"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Fill writes v to the first 4 pages of every column.
//
// The 4 pages cover a 128x32 panel whatever the multiplex ratio is.
func (d *Dev) Fill(v byte) error {
	d.log.Debugf("Filling RAM with 0x%02X...", v)
	return d.FillBlock(Region{StartPage: 0, EndPage: 3, StartColumn: 0, Columns: Columns}, v)
}

// Checkerboard shows a 1-pixel checkerboard on all 8 pages.
func (d *Dev) Checkerboard() error {
	r := Region{StartPage: 0, EndPage: Pages - 1, StartColumn: 0, Columns: Columns}
	return d.writeRegion(r, func(_ byte, buf []byte) {
		for i := 0; i < len(buf); i += 2 {
			buf[i] = 0x55
			buf[i+1] = 0xAA
		}
	})
}

// DrawFrame draws a 1-pixel border around a 128x32 panel.
func (d *Dev) DrawFrame() error {
	// Top border: first row of page 0
	if err := d.FillBlock(Region{StartPage: 0, EndPage: 0, StartColumn: 0, Columns: Columns}, 0x01); err != nil {
		return err
	}
	// Bottom border: last row of page 3
	if err := d.FillBlock(Region{StartPage: 3, EndPage: 3, StartColumn: 0, Columns: Columns}, 0x80); err != nil {
		return err
	}
	// Left and right borders, one page at a time
	for page := byte(0); page < 4; page++ {
		for _, col := range []byte{0, Columns - 1} {
			if err := d.FillBlock(Region{StartPage: page, EndPage: page, StartColumn: col, Columns: 1}, 0xFF); err != nil {
				return err
			}
		}
	}
	return nil
}

// ShowImage draws img with its top left corner at page, column.
//
// The image is converted to 1 bit per pixel; its height is rounded up to a
// whole number of pages. Pixels falling outside the RAM are an error.
func (d *Dev) ShowImage(page, column byte, img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	pages := (b.Dy() + 7) / 8
	if int(page)+pages > Pages || int(column)+b.Dx() > Columns {
		return fmt.Errorf("%w: %dx%d image at page %d, column %d", ErrRegion, b.Dx(), b.Dy(), page, column)
	}
	r := Region{
		StartPage:   page,
		EndPage:     page + byte(pages-1),
		StartColumn: column,
		Columns:     byte(b.Dx()),
	}

	// VerticalLSB stores one page per row of bytes, the RAM layout.
	dst := image1bit.NewVerticalLSB(image.Rect(0, 0, b.Dx(), pages*8))
	draw.Src.Draw(dst, image.Rect(0, 0, b.Dx(), b.Dy()), img, b.Min)

	return d.writeRegion(r, func(p byte, buf []byte) {
		row := int(p-page) * dst.Stride
		copy(buf, dst.Pix[row:row+len(buf)])
	})
}
