package bustrace

import (
	"fmt"
	"time"
)

// Kind is the type of a trace event.
type Kind uint8

const (
	// KindTx is a complete transaction, start to stop.
	KindTx Kind = 0
	// KindDelay is a wait issued between transactions.
	KindDelay Kind = 1
)

func (k Kind) String() string {
	switch k {
	case KindTx:
		return "TX"
	case KindDelay:
		return "DELAY"
	default:
		return "UNKNOWN"
	}
}

// Event is one recorded bus event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event ended.
	Timestamp time.Time `cbor:"1,keyasint"`

	// Session identifies the Recorder (UUID).
	Session string `cbor:"2,keyasint"`

	Kind Kind `cbor:"3,keyasint"`

	// Addr is the slave address of a transaction.
	Addr uint16 `cbor:"4,keyasint,omitempty"`

	// Bytes written during a transaction, control byte first.
	Bytes []byte `cbor:"5,keyasint,omitempty"`

	// Delay is the duration of a KindDelay event.
	Delay time.Duration `cbor:"6,keyasint,omitempty"`

	// Err describes the failed steps of a transaction.
	Err string `cbor:"7,keyasint,omitempty"`
}

// Control returns the control byte of a transaction.
func (e Event) Control() byte {
	if len(e.Bytes) == 0 {
		return 0
	}
	return e.Bytes[0]
}

// Payload returns the bytes following the control byte.
func (e Event) Payload() []byte {
	if len(e.Bytes) < 2 {
		return nil
	}
	return e.Bytes[1:]
}

func (e Event) String() string {
	switch e.Kind {
	case KindTx:
		s := fmt.Sprintf("TX 0x%02X % X", e.Addr, e.Bytes)
		if e.Err != "" {
			s += " (" + e.Err + ")"
		}
		return s
	case KindDelay:
		return fmt.Sprintf("DELAY %s", e.Delay)
	default:
		return e.Kind.String()
	}
}
