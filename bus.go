package ssd1306

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"periph.io/x/conn/v3/gpio"
)

// Control bytes sent right after the start condition.
const (
	ctrlCommand = 0x00 // Command bytes follow
	ctrlData    = 0x40 // Display RAM bytes follow
)

// Transport is a byte oriented master/slave bus.
//
// A transaction is Start, one or more WriteByte and Stop. The driver never
// overlaps two transactions on the same Transport.
type Transport interface {
	// Start sends a start condition addressed to the 7-bit slave address.
	Start(addr uint16, read bool) error
	// WriteByte writes one byte inside the current transaction.
	WriteByte(b byte) error
	// Stop sends a stop condition and ends the transaction.
	Stop() error
}

// Delayer is implemented by transports that own the timing of their bus.
//
// Ports whose Transport does not implement Delayer use time.Sleep.
type Delayer interface {
	Delay(d time.Duration)
}

// Channel selects one of the bus channels of a Dev.
type Channel uint8

const (
	ChannelA Channel = 0
	ChannelB Channel = 1
)

func (c Channel) String() string {
	switch c {
	case ChannelA:
		return "A"
	case ChannelB:
		return "B"
	default:
		return fmt.Sprintf("Channel(%d)", uint8(c))
	}
}

// Port is the wiring of one bus channel.
type Port struct {
	Bus Transport   // Bus carrying the display traffic
	RST gpio.PinOut // Reset pin (optional, nil if not used)
}

// BusError reports a transaction during which the transport failed.
//
// Err combines the failure of every step of the transaction.
type BusError struct {
	Channel Channel
	Addr    uint16
	Control byte
	Err     error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("ssd1306: bus error on channel %s (addr 0x%02X, control 0x%02X): %v", e.Channel, e.Addr, e.Control, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// sendCommand sends command bytes in one transaction.
func (d *Dev) sendCommand(cmds ...byte) error {
	return d.busFailure(d.transact(ctrlCommand, cmds))
}

// sendData sends display RAM bytes in one transaction.
func (d *Dev) sendData(data []byte) error {
	return d.busFailure(d.transact(ctrlData, data))
}

// commit sends cmds and runs update only when the transaction went through,
// whatever the error policy.
func (d *Dev) commit(update func(), cmds ...byte) error {
	if err := d.transact(ctrlCommand, cmds); err != nil {
		return d.busFailure(err)
	}
	update()
	return nil
}

// transact frames payload as START, control, payload..., STOP.
//
// Every step is attempted even when an earlier one failed, so that the stop
// condition always releases the bus.
func (d *Dev) transact(control byte, payload []byte) *BusError {
	bus := d.ports[d.state.Channel].Bus

	var err error
	if e := bus.Start(d.addr, false); e != nil {
		err = multierr.Append(err, fmt.Errorf("start: %w", e))
	}
	if e := bus.WriteByte(control); e != nil {
		err = multierr.Append(err, fmt.Errorf("control byte: %w", e))
	}
	for i, b := range payload {
		if e := bus.WriteByte(b); e != nil {
			err = multierr.Append(err, fmt.Errorf("payload byte %d: %w", i, e))
		}
	}
	if e := bus.Stop(); e != nil {
		err = multierr.Append(err, fmt.Errorf("stop: %w", e))
	}
	if err == nil {
		return nil
	}
	return &BusError{
		Channel: d.state.Channel,
		Addr:    d.addr,
		Control: control,
		Err:     err,
	}
}

// busFailure logs a failed transaction and applies the error policy.
func (d *Dev) busFailure(err *BusError) error {
	if err == nil {
		return nil
	}
	d.log.WithFields(logrus.Fields{
		"channel": err.Channel.String(),
		"addr":    fmt.Sprintf("0x%02X", err.Addr),
		"control": fmt.Sprintf("0x%02X", err.Control),
	}).Warnf("Transaction failed: %v", err.Err)
	if d.bestEffort {
		return nil
	}
	return err
}

// delay waits on the active channel.
func (d *Dev) delay(t time.Duration) {
	if t <= 0 {
		return
	}
	if dl, ok := d.ports[d.state.Channel].Bus.(Delayer); ok {
		dl.Delay(t)
		return
	}
	time.Sleep(t)
}
