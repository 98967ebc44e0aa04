package ssd1306

import (
	"errors"
	"io"
	"testing"

	"github.com/flavioheleno/ssd1306/bustrace"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

// levelPin records every level driven on it.
type levelPin struct {
	*gpiotest.Pin
	levels []gpio.Level
}

func newLevelPin(name string) *levelPin {
	return &levelPin{Pin: &gpiotest.Pin{N: name}}
}

func (p *levelPin) Out(l gpio.Level) error {
	p.levels = append(p.levels, l)
	return p.Pin.Out(l)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newTestDev returns a Dev on a recording bus.
func newTestDev(t *testing.T, opts *Opts) (*Dev, *bustrace.Recorder) {
	t.Helper()
	rec := bustrace.NewRecorder(nil, nil)
	if opts == nil {
		opts = &Opts{}
	}
	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	d, err := New(map[Channel]Port{ChannelA: {Bus: rec}}, opts)
	require.NoError(t, err)
	return d, rec
}

// frames returns the bytes of every recorded transaction.
func frames(rec *bustrace.Recorder) [][]byte {
	var out [][]byte
	for _, f := range rec.Frames() {
		out = append(out, f.Bytes)
	}
	return out
}

func TestAddrFromStrap(t *testing.T) {
	tests := []struct {
		name    string
		low     bool
		high    bool
		want    uint16
		wantErr bool
	}{
		{"SA0 low", true, false, 0x3C, false},
		{"SA0 high", false, true, 0x3D, false},
		{"both straps", true, true, 0, true},
		{"no strap", false, false, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddrFromStrap(tt.low, tt.high)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrStrap)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	rec := bustrace.NewRecorder(nil, nil)
	tests := []struct {
		name    string
		ports   map[Channel]Port
		opts    *Opts
		wantErr bool
		is      error
	}{
		{"nil options (uses defaults)", map[Channel]Port{ChannelA: {Bus: rec}}, nil, false, nil},
		{"SA0 high", map[Channel]Port{ChannelA: {Bus: rec}}, &Opts{Addr: AddrSA0High}, false, nil},
		{"two channels", map[Channel]Port{ChannelA: {Bus: rec}, ChannelB: {Bus: rec}}, nil, false, nil},
		{"no channel A", map[Channel]Port{ChannelB: {Bus: rec}}, nil, true, ErrChannel},
		{"channel A without bus", map[Channel]Port{ChannelA: {}}, nil, true, ErrChannel},
		{"channel B without bus", map[Channel]Port{ChannelA: {Bus: rec}, ChannelB: {}}, nil, true, nil},
		{"invalid address", map[Channel]Port{ChannelA: {Bus: rec}}, &Opts{Addr: 0x50}, true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.ports, tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				if tt.is != nil {
					assert.ErrorIs(t, err, tt.is)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, defaultState, d.State())
		})
	}
	assert.Empty(t, rec.Events(), "New must not talk to the display")
}

func TestNewI2C(t *testing.T) {
	bus := &i2ctest.Record{}
	d, err := NewI2C(bus, nil, &Opts{Logger: quietLogger()})
	require.NoError(t, err)

	require.NoError(t, d.ActivateDisplay())
	require.Len(t, bus.Ops, 1)
	assert.Equal(t, uint16(0x3C), bus.Ops[0].Addr)
	assert.Equal(t, []byte{0x00, 0xAF}, bus.Ops[0].W)
}

func TestDevString(t *testing.T) {
	d, _ := newTestDev(t, nil)
	assert.Equal(t, "ssd1306.Dev{0x3C, channel A, page addressing}", d.String())
	assert.Equal(t, uint16(0x3C), d.Addr())
}

func TestSelectChannel(t *testing.T) {
	a := bustrace.NewRecorder(nil, nil)
	b := bustrace.NewRecorder(nil, nil)
	d, err := New(map[Channel]Port{ChannelA: {Bus: a}, ChannelB: {Bus: b}}, &Opts{Logger: quietLogger()})
	require.NoError(t, err)

	require.NoError(t, d.NOP())
	require.NoError(t, d.SelectChannel(ChannelB))
	assert.Equal(t, ChannelB, d.State().Channel)
	require.NoError(t, d.SetContrast(0x10))

	assert.Equal(t, [][]byte{{0x00, 0xE3}}, frames(a))
	assert.Equal(t, [][]byte{{0x00, 0x81, 0x10}}, frames(b))

	assert.ErrorIs(t, d.SelectChannel(Channel(7)), ErrChannel)
	assert.Equal(t, ChannelB, d.State().Channel)
}

func TestFraming(t *testing.T) {
	d, rec := newTestDev(t, &Opts{Addr: AddrSA0High})

	require.NoError(t, d.sendCommand(0xAE))
	require.NoError(t, d.sendData([]byte{0x01, 0x02}))

	got := rec.Frames()
	require.Len(t, got, 2)
	for _, f := range got {
		assert.Equal(t, uint16(0x3D), f.Addr)
		assert.Empty(t, f.Err)
	}
	assert.Equal(t, []byte{0x00, 0xAE}, got[0].Bytes)
	assert.Equal(t, []byte{0x40, 0x01, 0x02}, got[1].Bytes)
}

func TestBusError(t *testing.T) {
	boom := errors.New("nack")
	logger, hook := test.NewNullLogger()
	d, rec := newTestDev(t, &Opts{Logger: logger})
	rec.SetFaults(bustrace.Faults{Write: boom})

	err := d.SetContrast(0x42)
	require.Error(t, err)

	var be *BusError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ChannelA, be.Channel)
	assert.Equal(t, uint16(0x3C), be.Addr)
	assert.Equal(t, byte(ctrlCommand), be.Control)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "payload byte 1")

	// The stop condition is still sent and the state is not updated.
	f := rec.Frames()
	require.Len(t, f, 1)
	assert.Equal(t, []byte{0x00, 0x81, 0x42}, f[0].Bytes)
	assert.Equal(t, byte(0x7F), d.State().Contrast)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "0x3C", hook.LastEntry().Data["addr"])
}

func TestBestEffort(t *testing.T) {
	logger, hook := test.NewNullLogger()
	d, rec := newTestDev(t, &Opts{Logger: logger, BestEffort: true})
	rec.SetFaults(bustrace.Faults{Stop: errors.New("arbitration lost")})

	assert.NoError(t, d.SetContrast(0x42))
	assert.NoError(t, d.Fill(0xFF))
	assert.Len(t, rec.Frames(), 13)
	assert.Len(t, hook.AllEntries(), 13)

	// Preconditions still fail fast.
	assert.ErrorIs(t, d.SetMultiplexRatio(64), ErrValue)
	assert.Len(t, rec.Frames(), 13)
}

func TestBestEffortKeepsState(t *testing.T) {
	d, rec := newTestDev(t, &Opts{BestEffort: true})
	require.NoError(t, d.SetAddressingMode(HorizontalAddressing))
	want := d.State()

	rec.SetFaults(bustrace.Faults{Write: errors.New("nack")})
	assert.NoError(t, d.SetAddressingMode(PageAddressing))
	assert.NoError(t, d.SetContrast(0x10))
	assert.NoError(t, d.SetMultiplexRatio(31))
	assert.NoError(t, d.SetInverseDisplay(true))
	assert.NoError(t, d.ActivateDisplay())
	assert.NoError(t, d.StartHorizontalScroll(HorizontalScroll{Direction: ScrollLeft, EndPage: 7, Interval: Interval5Frames}))
	assert.Equal(t, want, d.State())

	// The display is still in horizontal mode, so region writes stay refused.
	rec.SetFaults(bustrace.Faults{})
	rec.Reset()
	assert.ErrorIs(t, d.Fill(0x00), ErrAddressingMode)
	assert.Empty(t, rec.Events())
}

func TestReset(t *testing.T) {
	rst := newLevelPin("RST")
	rec := bustrace.NewRecorder(nil, nil)
	d, err := New(map[Channel]Port{ChannelA: {Bus: rec, RST: rst}}, &Opts{Logger: quietLogger()})
	require.NoError(t, err)

	require.NoError(t, d.SetAddressingMode(HorizontalAddressing))
	require.NoError(t, d.ActivateDisplay())
	require.NoError(t, d.Reset())

	assert.Equal(t, []gpio.Level{gpio.Low, gpio.High}, rst.levels)
	assert.Equal(t, defaultState, d.State())
	assert.Contains(t, rec.Delays(), ResetPulse)
}

func TestResetWithoutPin(t *testing.T) {
	d, rec := newTestDev(t, nil)
	require.NoError(t, d.Reset())
	assert.Empty(t, rec.Events())
}

func TestPower(t *testing.T) {
	vddb := newLevelPin("VDDB")
	d, _ := newTestDev(t, &Opts{VDDB: vddb})

	require.NoError(t, d.PowerOn())
	require.NoError(t, d.PowerOff())
	assert.Equal(t, []gpio.Level{gpio.Low, gpio.High}, vddb.levels)

	// Without a supply pin both are no-ops.
	d, _ = newTestDev(t, nil)
	assert.NoError(t, d.PowerOn())
	assert.NoError(t, d.PowerOff())
}
