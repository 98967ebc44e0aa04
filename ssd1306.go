package ssd1306

import (
	"errors"
	"fmt"

	"github.com/flavioheleno/ssd1306/i2cbus"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
)

// Panel geometry.
const (
	Columns = 128 // Columns in display RAM
	Pages   = 8   // 8-pixel pages in display RAM
)

// Slave addresses selected by the SA0 strap.
const (
	AddrSA0Low  = 0x3C
	AddrSA0High = 0x3D
)

// Errors returned by the driver.
var (
	ErrRegion         = errors.New("ssd1306: region out of bounds")
	ErrAddressingMode = errors.New("ssd1306: region writes require page addressing mode")
	ErrChannel        = errors.New("ssd1306: bus channel not configured")
	ErrValue          = errors.New("ssd1306: register value out of range")
	ErrNoGlyph        = errors.New("ssd1306: no glyph for character")
	ErrPatternSize    = errors.New("ssd1306: pattern size does not match region")
	ErrStrap          = errors.New("ssd1306: exactly one SA0 strap must be set")
)

// AddressingMode selects how the RAM pointer advances after each data byte.
type AddressingMode byte

const (
	HorizontalAddressing AddressingMode = 0x00
	VerticalAddressing   AddressingMode = 0x01
	PageAddressing       AddressingMode = 0x02
)

func (m AddressingMode) String() string {
	switch m {
	case HorizontalAddressing:
		return "horizontal"
	case VerticalAddressing:
		return "vertical"
	case PageAddressing:
		return "page"
	default:
		return fmt.Sprintf("AddressingMode(0x%02X)", byte(m))
	}
}

// ScrollState is the state of the hardware scroll engine.
type ScrollState uint8

const (
	ScrollIdle ScrollState = iota
	ScrollActive
)

// State is the controller state as last programmed by the Dev.
type State struct {
	Channel   Channel
	Mode      AddressingMode
	Active    bool // Display on
	Inverted  bool
	Contrast  byte
	Multiplex byte // Multiplex ratio register value (rows - 1)
	Scroll    ScrollState
}

// defaultState matches the controller's power-on reset values.
var defaultState = State{
	Channel:   ChannelA,
	Mode:      PageAddressing,
	Contrast:  0x7F,
	Multiplex: 63,
	Scroll:    ScrollIdle,
}

// Opts is the configuration for the SSD1306 driver.
type Opts struct {
	// I2C address (default: 0x3C). Use AddrFromStrap to derive it from SA0.
	Addr uint16

	// Optional active-low enable of the panel supply rail, nil if not used.
	VDDB gpio.PinOut

	// Logger receives diagnostics (default: logrus standard logger).
	Logger logrus.FieldLogger

	// BestEffort logs bus errors and carries on instead of returning them.
	BestEffort bool
}

// Dev is the device handle for one SSD1306 controller.
//
// Dev is not safe for concurrent use.
type Dev struct {
	// Communication
	ports map[Channel]Port
	addr  uint16
	vddb  gpio.PinOut

	// Diagnostics
	log        logrus.FieldLogger
	bestEffort bool

	// Controller state
	state State
}

// AddrFromStrap returns the slave address for the SA0 strap configuration.
//
// Exactly one of sa0Low and sa0High must be set.
func AddrFromStrap(sa0Low, sa0High bool) (uint16, error) {
	switch {
	case sa0Low && !sa0High:
		return AddrSA0Low, nil
	case sa0High && !sa0Low:
		return AddrSA0High, nil
	default:
		return 0, ErrStrap
	}
}

// New creates a driver for a display reachable through ports.
//
// ports must contain ChannelA, which is active after construction. New does
// not talk to the display; call InitInternalSupply or InitExternalSupply.
//
// opts can be nil to use defaults.
func New(ports map[Channel]Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}

	addr := opts.Addr
	if addr == 0 {
		addr = AddrSA0Low
	}
	if addr != AddrSA0Low && addr != AddrSA0High {
		return nil, fmt.Errorf("ssd1306: invalid address 0x%02X", addr)
	}

	if p, ok := ports[ChannelA]; !ok || p.Bus == nil {
		return nil, ErrChannel
	}
	d := &Dev{
		ports:      make(map[Channel]Port, len(ports)),
		addr:       addr,
		vddb:       opts.VDDB,
		log:        opts.Logger,
		bestEffort: opts.BestEffort,
		state:      defaultState,
	}
	for ch, p := range ports {
		if p.Bus == nil {
			return nil, fmt.Errorf("ssd1306: channel %s has no bus", ch)
		}
		d.ports[ch] = p
	}
	if d.log == nil {
		d.log = logrus.StandardLogger().WithField("dev", "ssd1306")
	}
	return d, nil
}

// NewI2C creates a driver for a display on a periph.io I²C bus.
//
// rst is the optional reset pin, nil if not used.
func NewI2C(b i2c.Bus, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	return New(map[Channel]Port{
		ChannelA: {Bus: i2cbus.FromPeriph(b), RST: rst},
	}, opts)
}

// SelectChannel makes ch the channel used by subsequent operations.
func (d *Dev) SelectChannel(ch Channel) error {
	if _, ok := d.ports[ch]; !ok {
		return fmt.Errorf("%w: %s", ErrChannel, ch)
	}
	d.log.Debugf("Bus channel changed to %s", ch)
	d.state.Channel = ch
	return nil
}

// State returns the controller state as last programmed.
func (d *Dev) State() State {
	return d.state
}

// Addr returns the slave address of the display.
func (d *Dev) Addr() uint16 {
	return d.addr
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{0x%02X, channel %s, %s addressing}", d.addr, d.state.Channel, d.state.Mode)
}
