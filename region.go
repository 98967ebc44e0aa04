package ssd1306

import "fmt"

// Region is a rectangle of display RAM in page/column coordinates.
type Region struct {
	StartPage   byte
	EndPage     byte // Inclusive
	StartColumn byte
	Columns     byte
}

// Pages returns the number of pages covered by r.
func (r Region) Pages() int {
	return int(r.EndPage) - int(r.StartPage) + 1
}

// Size returns the number of RAM bytes covered by r.
func (r Region) Size() int {
	return r.Pages() * int(r.Columns)
}

func (r Region) String() string {
	return fmt.Sprintf("pages %d-%d, columns %d+%d", r.StartPage, r.EndPage, r.StartColumn, r.Columns)
}

// validate checks r against the panel geometry.
func (r Region) validate() error {
	if r.StartPage > r.EndPage || r.EndPage >= Pages {
		return fmt.Errorf("%w: %s", ErrRegion, r)
	}
	if r.Columns == 0 || int(r.StartColumn)+int(r.Columns) > Columns {
		return fmt.Errorf("%w: %s", ErrRegion, r)
	}
	return nil
}

// writeRegion streams r page by page. fill is called once per page, in
// increasing page order, and must fill buf (r.Columns bytes).
//
// Page addressing is required since the start address is set again for every
// page; the check happens before any bus traffic.
func (d *Dev) writeRegion(r Region, fill func(page byte, buf []byte)) error {
	if d.state.Mode != PageAddressing {
		return fmt.Errorf("%w (current: %s)", ErrAddressingMode, d.state.Mode)
	}
	if err := r.validate(); err != nil {
		return err
	}

	buf := make([]byte, r.Columns)
	for page := int(r.StartPage); page <= int(r.EndPage); page++ {
		if err := d.setPageStart(byte(page)); err != nil {
			return err
		}
		if err := d.setColumnStart(r.StartColumn); err != nil {
			return err
		}
		fill(byte(page), buf)
		if err := d.sendData(buf); err != nil {
			return err
		}
	}
	return nil
}

// setPageStart sets the page written next in page addressing mode.
func (d *Dev) setPageStart(page byte) error {
	return d.sendCommand(cmdSetPageStart | page)
}

// setColumnStart sets the column written next in page addressing mode. The
// address is split in a low and a high nibble command.
func (d *Dev) setColumnStart(col byte) error {
	return d.sendCommand(cmdSetLowColumn|col&0x0F, cmdSetHighColumn|col>>4)
}

// ShowPattern writes pixels to r. Each byte is a vertical strip of 8 pixels,
// least significant bit on top; pixels holds r.Columns bytes for each page of
// r, first page first.
func (d *Dev) ShowPattern(r Region, pixels []byte) error {
	if err := r.validate(); err != nil {
		return err
	}
	if len(pixels) != r.Size() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrPatternSize, len(pixels), r.Size())
	}
	d.log.Debugf("Showing pattern (%s)...", r)

	off := 0
	return d.writeRegion(r, func(_ byte, buf []byte) {
		off += copy(buf, pixels[off:])
	})
}

// FillBlock writes v to every byte of r.
func (d *Dev) FillBlock(r Region, v byte) error {
	return d.writeRegion(r, func(_ byte, buf []byte) {
		for i := range buf {
			buf[i] = v
		}
	})
}
