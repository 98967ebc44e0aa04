package ssd1306

import (
	"context"
	"fmt"
	"time"
)

// ScrollDirection is the horizontal scroll direction.
type ScrollDirection byte

const (
	ScrollRight ScrollDirection = 0x00
	ScrollLeft  ScrollDirection = 0x01
)

// VerticalDirection is the direction of a vertical scroll.
type VerticalDirection byte

const (
	ScrollUp   VerticalDirection = 0x00
	ScrollDown VerticalDirection = 0x01
)

// FrameInterval is the number of frames between two scroll steps. The lower
// the interval, the faster the scroll.
type FrameInterval byte

const (
	Interval2Frames   FrameInterval = 0x07
	Interval3Frames   FrameInterval = 0x04
	Interval4Frames   FrameInterval = 0x05
	Interval5Frames   FrameInterval = 0x00
	Interval25Frames  FrameInterval = 0x06
	Interval64Frames  FrameInterval = 0x01
	Interval128Frames FrameInterval = 0x02
	Interval256Frames FrameInterval = 0x03
)

// HorizontalScroll configures a hardware horizontal scroll.
type HorizontalScroll struct {
	Direction ScrollDirection
	StartPage byte
	EndPage   byte
	Interval  FrameInterval
	// Settle is waited after the scroll is activated.
	Settle time.Duration
}

// ContinuousScroll configures a hardware vertical and horizontal scroll.
type ContinuousScroll struct {
	Direction ScrollDirection
	StartPage byte
	EndPage   byte
	Interval  FrameInterval
	TopFixed  byte // Rows above the scroll area
	Rows      byte // Rows in the scroll area
	Offset    byte // Rows scrolled vertically per step (1-63)
	Settle    time.Duration
}

// VerticalScroll configures a software vertical scroll animation.
type VerticalScroll struct {
	Direction VerticalDirection
	TopFixed  byte // Rows above the scroll area
	Rows      byte // Rows in the scroll area
	Step      byte // Rows moved per step
	StepDelay time.Duration
}

func validatePages(start, end byte) error {
	if start > end || end >= Pages {
		return fmt.Errorf("%w: scroll pages %d-%d", ErrValue, start, end)
	}
	return nil
}

func validateInterval(i FrameInterval) error {
	if i > Interval2Frames {
		return fmt.Errorf("%w: frame interval 0x%02X", ErrValue, byte(i))
	}
	return nil
}

// StartHorizontalScroll sets up and activates a horizontal scroll.
//
// A scroll in progress is stopped first, as the controller requires.
func (d *Dev) StartHorizontalScroll(s HorizontalScroll) error {
	if s.Direction > ScrollLeft {
		return fmt.Errorf("%w: scroll direction 0x%02X", ErrValue, byte(s.Direction))
	}
	if err := validatePages(s.StartPage, s.EndPage); err != nil {
		return err
	}
	if err := validateInterval(s.Interval); err != nil {
		return err
	}
	if err := d.stopActiveScroll(); err != nil {
		return err
	}

	// <op>, <dummy>, <start page>, <interval>, <end page>, <dummy>, <dummy>
	err := d.sendCommand(
		cmdRightScroll|byte(s.Direction),
		0x00,
		s.StartPage,
		byte(s.Interval),
		s.EndPage,
		0x00,
		0xFF,
	)
	if err != nil {
		return err
	}
	return d.activateScroll(s.Settle)
}

// StartContinuousScroll sets up and activates a diagonal scroll: the pages
// scroll horizontally while the scroll area moves vertically.
func (d *Dev) StartContinuousScroll(s ContinuousScroll) error {
	if s.Direction > ScrollLeft {
		return fmt.Errorf("%w: scroll direction 0x%02X", ErrValue, byte(s.Direction))
	}
	if err := validatePages(s.StartPage, s.EndPage); err != nil {
		return err
	}
	if err := validateInterval(s.Interval); err != nil {
		return err
	}
	if s.Offset == 0 || s.Offset > 63 {
		return fmt.Errorf("%w: vertical offset %d", ErrValue, s.Offset)
	}
	if err := d.validateScrollArea(s.TopFixed, s.Rows); err != nil {
		return err
	}
	if err := d.stopActiveScroll(); err != nil {
		return err
	}

	if err := d.sendCommand(cmdSetVertScrollArea, s.TopFixed, s.Rows); err != nil {
		return err
	}
	// <op>, <dummy>, <start page>, <interval>, <end page>, <vertical offset>
	err := d.sendCommand(
		cmdContinuousScroll+byte(s.Direction),
		0x00,
		s.StartPage,
		byte(s.Interval),
		s.EndPage,
		s.Offset,
	)
	if err != nil {
		return err
	}
	return d.activateScroll(s.Settle)
}

// StopScroll deactivates the hardware scroll.
//
// RAM content must be rewritten afterwards.
func (d *Dev) StopScroll() error {
	return d.commit(func() { d.state.Scroll = ScrollIdle }, cmdDeactivateScroll)
}

// VerticalScroll animates a vertical scroll of the scroll area by stepping
// the display start line, waiting StepDelay between steps. It blocks until
// the animation completes or ctx is done, then restores start line 0.
func (d *Dev) VerticalScroll(ctx context.Context, s VerticalScroll) error {
	if s.Step == 0 {
		return fmt.Errorf("%w: vertical scroll step 0", ErrValue)
	}
	if s.Direction > ScrollDown {
		return fmt.Errorf("%w: vertical direction 0x%02X", ErrValue, byte(s.Direction))
	}
	if err := d.validateScrollArea(s.TopFixed, s.Rows); err != nil {
		return err
	}

	if err := d.sendCommand(cmdSetVertScrollArea, s.TopFixed, s.Rows); err != nil {
		return err
	}

	var cancelled error
	for i := 0; i < int(s.Rows); i += int(s.Step) {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		line := byte(i)
		if s.Direction == ScrollDown {
			line = byte(int(s.Rows)-i) % 64
		}
		if err := d.SetStartLine(line); err != nil {
			return err
		}
		d.delay(s.StepDelay)
	}
	if err := d.SetStartLine(0); err != nil {
		return err
	}
	return cancelled
}

// validateScrollArea checks the vertical scroll area against the multiplex
// ratio.
func (d *Dev) validateScrollArea(topFixed, rows byte) error {
	if int(topFixed)+int(rows) > int(d.state.Multiplex)+1 {
		return fmt.Errorf("%w: scroll area %d+%d exceeds %d rows", ErrValue, topFixed, rows, int(d.state.Multiplex)+1)
	}
	return nil
}

func (d *Dev) stopActiveScroll() error {
	if d.state.Scroll != ScrollActive {
		return nil
	}
	return d.StopScroll()
}

func (d *Dev) activateScroll(settle time.Duration) error {
	if err := d.commit(func() { d.state.Scroll = ScrollActive }, cmdActivateScroll); err != nil {
		return err
	}
	d.delay(settle)
	return nil
}
