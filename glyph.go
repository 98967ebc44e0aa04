package ssd1306

import (
	"fmt"

	"github.com/flavioheleno/ssd1306/font5x7"
)

// GlyphWidth is the number of columns used by one character: the glyph and a
// blank spacer column.
const GlyphWidth = font5x7.Width + 1

// ShowGlyph draws the glyph at table position code of font at page, column.
func (d *Dev) ShowGlyph(font *font5x7.Font, code, page, column byte) error {
	g, ok := font.Glyph(code)
	if !ok {
		return fmt.Errorf("%w: code %d in %v", ErrNoGlyph, code, font)
	}
	return d.showGlyph(g, page, column)
}

func (d *Dev) showGlyph(g font5x7.Glyph, page, column byte) error {
	r := Region{StartPage: page, EndPage: page, StartColumn: column, Columns: GlyphWidth}
	return d.writeRegion(r, func(_ byte, buf []byte) {
		n := copy(buf, g[:])
		buf[n] = 0x00
	})
}

// ShowString draws text on one page starting at column, up to the first NUL
// character. Text does not wrap.
//
// A blank glyph is written at column first and the characters follow from
// column+GlyphWidth, so the string takes GlyphWidth*(n+1) columns.
//
// The whole string is checked before anything is sent.
func (d *Dev) ShowString(font *font5x7.Font, text string, page, column byte) error {
	var glyphs []font5x7.Glyph
	for _, r := range text {
		if r == 0 {
			break
		}
		code, ok := font.Encode(r)
		if !ok {
			return fmt.Errorf("%w: %q in %v", ErrNoGlyph, r, font)
		}
		g, _ := font.Glyph(code)
		glyphs = append(glyphs, g)
	}
	if width := GlyphWidth * (len(glyphs) + 1); int(column)+width > Columns {
		return fmt.Errorf("%w: %d characters from column %d", ErrRegion, len(glyphs), column)
	}
	d.log.Debugf("Showing string %q at page %d, column %d...", text, page, column)

	lead, _ := font5x7.Basic.Glyph(font5x7.NoBreakSpace)
	if err := d.showGlyph(lead, page, column); err != nil {
		return err
	}
	for _, g := range glyphs {
		column += GlyphWidth
		if err := d.showGlyph(g, page, column); err != nil {
			return err
		}
	}
	return nil
}
