package ssd1306

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Command opcodes (datasheet section 9).
const (
	cmdSetLowColumn        = 0x00
	cmdSetHighColumn       = 0x10
	cmdSetAddressingMode   = 0x20
	cmdSetColumnAddr       = 0x21
	cmdSetPageAddr         = 0x22
	cmdRightScroll         = 0x26
	cmdContinuousScroll    = 0x29
	cmdDeactivateScroll    = 0x2E
	cmdActivateScroll      = 0x2F
	cmdSetStartLine        = 0x40
	cmdSetContrast         = 0x81
	cmdSetChargePump       = 0x8D
	cmdSetSegmentRemap     = 0xA0
	cmdSetVertScrollArea   = 0xA3
	cmdEntireDisplayResume = 0xA4
	cmdEntireDisplayOn     = 0xA5
	cmdNormalDisplay       = 0xA6
	cmdInvertDisplay       = 0xA7
	cmdSetMultiplex        = 0xA8
	cmdDisplayOff          = 0xAE
	cmdDisplayOn           = 0xAF
	cmdSetPageStart        = 0xB0
	cmdComScanInc          = 0xC0
	cmdComScanDec          = 0xC8
	cmdSetDisplayOffset    = 0xD3
	cmdSetClockDiv         = 0xD5
	cmdSetPrecharge        = 0xD9
	cmdSetComPins          = 0xDA
	cmdSetVCOMH            = 0xDB
	cmdNOP                 = 0xE3

	chargePumpEnabled  = 0x14
	chargePumpDisabled = 0x10
)

// ResetPulse is how long RST is held low. The datasheet minimum is 3µs.
const ResetPulse = 200 * time.Microsecond

// VCOMHLevel is the VCOMH deselect level as a fraction of Vcc.
type VCOMHLevel byte

const (
	VCOMH065 VCOMHLevel = 0x00 // ~0.65 x Vcc
	VCOMH077 VCOMHLevel = 0x20 // ~0.77 x Vcc (reset value)
	VCOMH083 VCOMHLevel = 0x30 // ~0.83 x Vcc
	VCOMH089 VCOMHLevel = 0x40 // Undocumented, used by most panel vendors
)

// Reset pulses the reset line of the active channel.
//
// If the channel has no reset pin, Reset relies on the power-on reset and
// does nothing.
func (d *Dev) Reset() error {
	rst := d.ports[d.state.Channel].RST
	if rst == nil {
		d.log.Debugf("No reset pin on channel %s, skipping reset", d.state.Channel)
		return nil
	}
	d.log.Debugf("Resetting...")

	if err := rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("ssd1306: failed to pull RST low: %w", err)
	}
	d.delay(ResetPulse)
	if err := rst.Out(gpio.High); err != nil {
		return fmt.Errorf("ssd1306: failed to pull RST high: %w", err)
	}

	// The controller is back at its reset values.
	ch := d.state.Channel
	d.state = defaultState
	d.state.Channel = ch
	return nil
}

// PowerOn enables the panel supply rail.
func (d *Dev) PowerOn() error {
	if d.vddb == nil {
		return nil
	}
	// P-channel switch: low enables.
	if err := d.vddb.Out(gpio.Low); err != nil {
		return fmt.Errorf("ssd1306: failed to enable VDDB: %w", err)
	}
	return nil
}

// PowerOff disables the panel supply rail.
func (d *Dev) PowerOff() error {
	if d.vddb == nil {
		return nil
	}
	if err := d.vddb.Out(gpio.High); err != nil {
		return fmt.Errorf("ssd1306: failed to disable VDDB: %w", err)
	}
	return nil
}

// ChargePumpOn enables the internal DC/DC converter.
func (d *Dev) ChargePumpOn() error {
	d.log.Debugf("Enabling charge pump...")
	return d.sendCommand(cmdSetChargePump, chargePumpEnabled)
}

// ChargePumpOff disables the internal DC/DC converter.
func (d *Dev) ChargePumpOff() error {
	d.log.Debugf("Disabling charge pump...")
	return d.sendCommand(cmdSetChargePump, chargePumpDisabled)
}

// ActivateDisplay turns the display on.
func (d *Dev) ActivateDisplay() error {
	d.log.Debugf("Turning display on...")
	return d.commit(func() { d.state.Active = true }, cmdDisplayOn)
}

// DeactivateDisplay turns the display off (sleep). RAM content is kept.
func (d *Dev) DeactivateDisplay() error {
	d.log.Debugf("Turning display off...")
	return d.commit(func() { d.state.Active = false }, cmdDisplayOff)
}

// EveryPixelOn lights every pixel, ignoring the content of RAM.
func (d *Dev) EveryPixelOn() error {
	return d.sendCommand(cmdEntireDisplayOn)
}

// EveryPixelOff makes the display follow the content of RAM again.
func (d *Dev) EveryPixelOff() error {
	return d.sendCommand(cmdEntireDisplayResume)
}

// Sleep turns the display off with every pixel forced on, so that Wake
// brings the panel back without showing stale RAM during power up.
func (d *Dev) Sleep() error {
	if err := d.DeactivateDisplay(); err != nil {
		return err
	}
	return d.EveryPixelOn()
}

// Wake leaves the state entered by Sleep.
func (d *Dev) Wake() error {
	if err := d.EveryPixelOff(); err != nil {
		return err
	}
	return d.ActivateDisplay()
}

// SetDisplayClock sets the display clock divide ratio (0-15, ratio = value+1)
// and the oscillator frequency (0-15). The reset value is divide 0, frequency 8.
func (d *Dev) SetDisplayClock(divide, freq byte) error {
	if divide > 0x0F || freq > 0x0F {
		return fmt.Errorf("%w: clock divide %d, frequency %d", ErrValue, divide, freq)
	}
	return d.sendCommand(cmdSetClockDiv, freq<<4|divide)
}

// SetMultiplexRatio sets the multiplex ratio to ratio+1 rows (15-63).
func (d *Dev) SetMultiplexRatio(ratio byte) error {
	if ratio < 15 || ratio > 63 {
		return fmt.Errorf("%w: multiplex ratio %d", ErrValue, ratio)
	}
	return d.commit(func() { d.state.Multiplex = ratio }, cmdSetMultiplex, ratio)
}

// SetDisplayOffset shifts the COM mapping by offset rows (0-63).
func (d *Dev) SetDisplayOffset(offset byte) error {
	if offset > 63 {
		return fmt.Errorf("%w: display offset %d", ErrValue, offset)
	}
	return d.sendCommand(cmdSetDisplayOffset, offset)
}

// SetStartLine sets the RAM row mapped to the first display row (0-63).
func (d *Dev) SetStartLine(line byte) error {
	if line > 63 {
		return fmt.Errorf("%w: start line %d", ErrValue, line)
	}
	return d.sendCommand(cmdSetStartLine | line)
}

// SetAddressingMode sets the memory addressing mode.
//
// Region writes (patterns, glyphs, images) require PageAddressing.
func (d *Dev) SetAddressingMode(mode AddressingMode) error {
	if mode > PageAddressing {
		return fmt.Errorf("%w: addressing mode 0x%02X", ErrValue, byte(mode))
	}
	return d.commit(func() { d.state.Mode = mode }, cmdSetAddressingMode, byte(mode))
}

// SetSegmentRemap maps column 0 to SEG127 when remap is true, SEG0 otherwise.
func (d *Dev) SetSegmentRemap(remap bool) error {
	cmd := byte(cmdSetSegmentRemap)
	if remap {
		cmd |= 0x01
	}
	return d.sendCommand(cmd)
}

// SetCommonRemap scans from COM63 to COM0 when remap is true.
func (d *Dev) SetCommonRemap(remap bool) error {
	cmd := byte(cmdComScanInc)
	if remap {
		cmd = cmdComScanDec
	}
	return d.sendCommand(cmd)
}

// SetComPinConfig sets the COM pins hardware configuration.
//
// Panels of 32 rows typically need the sequential layout (alternative false);
// try toggling leftRight if the top and bottom halves appear swapped.
func (d *Dev) SetComPinConfig(alternative, leftRight bool) error {
	cfg := byte(0x02)
	if alternative {
		cfg |= 0x10
	}
	if leftRight {
		cfg |= 0x20
	}
	return d.sendCommand(cmdSetComPins, cfg)
}

// SetContrast sets the contrast (0-255). The segment current increases with
// the contrast.
func (d *Dev) SetContrast(contrast byte) error {
	return d.commit(func() { d.state.Contrast = contrast }, cmdSetContrast, contrast)
}

// SetPrechargePeriod sets the phase 1 (pre-charge) and phase 2 (discharge)
// periods in display clocks, each 1-15. The reset value is 2 and 2.
func (d *Dev) SetPrechargePeriod(phase1, phase2 byte) error {
	if phase1 == 0 || phase1 > 0x0F || phase2 == 0 || phase2 > 0x0F {
		return fmt.Errorf("%w: pre-charge phases %d, %d", ErrValue, phase1, phase2)
	}
	return d.sendCommand(cmdSetPrecharge, phase2<<4|phase1)
}

// SetVCOMH selects the VCOMH deselect level.
func (d *Dev) SetVCOMH(level VCOMHLevel) error {
	switch level {
	case VCOMH065, VCOMH077, VCOMH083, VCOMH089:
	default:
		return fmt.Errorf("%w: VCOMH level 0x%02X", ErrValue, byte(level))
	}
	return d.sendCommand(cmdSetVCOMH, byte(level))
}

// SetInverseDisplay inverts the display when inverse is true: a set RAM bit
// turns the pixel off.
func (d *Dev) SetInverseDisplay(inverse bool) error {
	cmd := byte(cmdNormalDisplay)
	if inverse {
		cmd = cmdInvertDisplay
	}
	return d.commit(func() { d.state.Inverted = inverse }, cmd)
}

// NOP sends the no-operation command.
func (d *Dev) NOP() error {
	return d.sendCommand(cmdNOP)
}

// SetColumnWindow sets the column range used by horizontal and vertical
// addressing modes.
func (d *Dev) SetColumnWindow(start, end byte) error {
	if start > end || end >= Columns {
		return fmt.Errorf("%w: column window %d-%d", ErrValue, start, end)
	}
	return d.sendCommand(cmdSetColumnAddr, start, end)
}

// SetPageWindow sets the page range used by horizontal and vertical
// addressing modes.
func (d *Dev) SetPageWindow(start, end byte) error {
	if start > end || end >= Pages {
		return fmt.Errorf("%w: page window %d-%d", ErrValue, start, end)
	}
	return d.sendCommand(cmdSetPageAddr, start, end)
}
