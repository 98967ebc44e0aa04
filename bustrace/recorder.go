// Package bustrace records the traffic of a byte oriented bus.
//
// A Recorder sits between a driver and its transport. It keeps every
// transaction and delay in memory and can stream them as CBOR events to a
// trace file, to be read back with Decode.
//
// A Recorder without an inner transport accepts everything and never waits,
// which makes it the fake bus of the driver tests.
package bustrace

import (
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// Transport is the bus being recorded.
type Transport interface {
	Start(addr uint16, read bool) error
	WriteByte(b byte) error
	Stop() error
}

// Delayer is implemented by transports that own their timing.
type Delayer interface {
	Delay(d time.Duration)
}

// Faults are errors injected into the matching transaction steps.
type Faults struct {
	Start error
	Write error
	Stop  error
}

// Recorder is a Transport that records the traffic sent through it.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	inner   Transport
	encoder *cbor.Encoder
	session string
	faults  Faults

	open   bool
	cur    Event
	errs   []string
	events []Event
}

// NewRecorder returns a Recorder forwarding to inner, which may be nil.
//
// When w is not nil every event is also encoded to it as it completes.
func NewRecorder(inner Transport, w io.Writer) *Recorder {
	r := &Recorder{
		inner:   inner,
		session: uuid.New().String(),
	}
	if w != nil {
		r.encoder = traceEncMode.NewEncoder(w)
	}
	return r
}

// Session returns the identifier stamped on every event.
func (r *Recorder) Session() string {
	return r.session
}

// SetFaults makes the following steps fail with f.
func (r *Recorder) SetFaults(f Faults) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faults = f
}

// Start begins recording a transaction.
func (r *Recorder) Start(addr uint16, read bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.open = true
	r.cur = Event{Session: r.session, Kind: KindTx, Addr: addr}
	r.errs = r.errs[:0]

	err := r.faults.Start
	if err == nil && r.inner != nil {
		err = r.inner.Start(addr, read)
	}
	r.fail("start", err)
	return err
}

// WriteByte records b in the current transaction.
func (r *Recorder) WriteByte(b byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.open {
		return errors.New("bustrace: write outside of a transaction")
	}
	r.cur.Bytes = append(r.cur.Bytes, b)

	err := r.faults.Write
	if err == nil && r.inner != nil {
		err = r.inner.WriteByte(b)
	}
	r.fail("write", err)
	return err
}

// Stop ends the current transaction and emits its event.
func (r *Recorder) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.open {
		return errors.New("bustrace: stop outside of a transaction")
	}
	r.open = false

	err := r.faults.Stop
	if err == nil && r.inner != nil {
		err = r.inner.Stop()
	}
	r.fail("stop", err)

	r.cur.Err = strings.Join(r.errs, "; ")
	r.emit(r.cur)
	return err
}

// Delay records a wait and forwards it to the inner transport.
func (r *Recorder) Delay(d time.Duration) {
	r.mu.Lock()
	r.emit(Event{Session: r.session, Kind: KindDelay, Delay: d})
	inner := r.inner
	r.mu.Unlock()

	if inner == nil {
		return
	}
	if dl, ok := inner.(Delayer); ok {
		dl.Delay(d)
		return
	}
	time.Sleep(d)
}

// Events returns a copy of every recorded event.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Frames returns the recorded transactions, without the delays.
func (r *Recorder) Frames() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.Kind == KindTx {
			out = append(out, e)
		}
	}
	return out
}

// Delays returns the durations of the recorded delays.
func (r *Recorder) Delays() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []time.Duration
	for _, e := range r.events {
		if e.Kind == KindDelay {
			out = append(out, e.Delay)
		}
	}
	return out
}

// Reset forgets the recorded events. The trace stream is not affected.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

func (r *Recorder) String() string {
	return "bustrace.Recorder{" + r.session + "}"
}

func (r *Recorder) fail(step string, err error) {
	if err != nil {
		r.errs = append(r.errs, step+": "+err.Error())
	}
}

// emit must be called with mu held.
func (r *Recorder) emit(e Event) {
	e.Timestamp = time.Now()
	r.events = append(r.events, e)
	if r.encoder != nil {
		// Tracing must not disrupt the bus
		_ = r.encoder.Encode(e)
	}
}
