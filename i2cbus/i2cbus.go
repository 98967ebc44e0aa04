// Package i2cbus adapts transaction oriented I²C buses to the byte oriented
// transport used by the ssd1306 driver.
//
// Bytes written between Start and Stop are buffered and sent as a single
// write transaction when Stop is called.
package i2cbus

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
	"tinygo.org/x/drivers"
)

var (
	// ErrRead is returned by Start for read transactions, which are not
	// supported.
	ErrRead = errors.New("i2cbus: read transactions are not supported")
	// ErrNoTransaction is returned by WriteByte and Stop outside of a
	// transaction.
	ErrNoTransaction = errors.New("i2cbus: no transaction in progress")
)

// Txer is the single method shared by periph.io and TinyGo I²C buses.
type Txer interface {
	Tx(addr uint16, w, r []byte) error
}

// Bus buffers one transaction at a time for a Txer.
//
// Bus is not safe for concurrent use.
type Bus struct {
	tx     Txer
	name   string
	addr   uint16
	open   bool
	failed bool // Start failed, Stop must not send
	buf    []byte
}

// New returns a Bus sending its transactions through tx.
func New(tx Txer, name string) *Bus {
	return &Bus{tx: tx, name: name, buf: make([]byte, 0, 129)}
}

// FromPeriph returns a Bus on a periph.io I²C bus.
func FromPeriph(b i2c.Bus) *Bus {
	return New(b, b.String())
}

// FromTinyGo returns a Bus on a TinyGo drivers I²C bus.
func FromTinyGo(b drivers.I2C) *Bus {
	return New(b, "tinygo")
}

// Start begins a write transaction addressed to addr.
//
// A transaction left open is discarded.
func (b *Bus) Start(addr uint16, read bool) error {
	b.buf = b.buf[:0]
	b.addr = addr
	b.open = true
	b.failed = false
	if read {
		b.failed = true
		return ErrRead
	}
	if addr > 0x7F {
		b.failed = true
		return fmt.Errorf("i2cbus: invalid 7-bit address 0x%X", addr)
	}
	return nil
}

// WriteByte appends c to the current transaction.
func (b *Bus) WriteByte(c byte) error {
	if !b.open {
		return ErrNoTransaction
	}
	b.buf = append(b.buf, c)
	return nil
}

// Stop sends the buffered bytes and ends the transaction.
func (b *Bus) Stop() error {
	if !b.open {
		return ErrNoTransaction
	}
	b.open = false
	if b.failed {
		return nil
	}
	if err := b.tx.Tx(b.addr, b.buf, nil); err != nil {
		return fmt.Errorf("i2cbus: %d byte write to 0x%02X: %w", len(b.buf), b.addr, err)
	}
	return nil
}

// Delay waits for d.
func (b *Bus) Delay(d time.Duration) {
	time.Sleep(d)
}

func (b *Bus) String() string {
	return b.name
}
