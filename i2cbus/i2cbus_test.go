package i2cbus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"tinygo.org/x/drivers"
)

var _ drivers.I2C = (*fakeTinyGo)(nil)

type fakeTinyGo struct {
	addrs  []uint16
	writes [][]byte
	err    error
}

func (f *fakeTinyGo) Tx(addr uint16, w, r []byte) error {
	f.addrs = append(f.addrs, addr)
	f.writes = append(f.writes, append([]byte(nil), w...))
	return f.err
}

func TestTransactionIsOneWrite(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x3C, W: []byte{0x00, 0xAF}},
			{Addr: 0x3C, W: []byte{0x40, 0x01, 0x02, 0x03}},
		},
		DontPanic: true,
	}
	b := FromPeriph(pb)

	require.NoError(t, b.Start(0x3C, false))
	require.NoError(t, b.WriteByte(0x00))
	require.NoError(t, b.WriteByte(0xAF))
	require.NoError(t, b.Stop())

	require.NoError(t, b.Start(0x3C, false))
	for _, c := range []byte{0x40, 0x01, 0x02, 0x03} {
		require.NoError(t, b.WriteByte(c))
	}
	require.NoError(t, b.Stop())

	assert.NoError(t, pb.Close())
}

func TestRecordedTraffic(t *testing.T) {
	rec := &i2ctest.Record{}
	b := FromPeriph(rec)

	require.NoError(t, b.Start(0x3D, false))
	require.NoError(t, b.WriteByte(0x00))
	require.NoError(t, b.WriteByte(0xA6))
	require.NoError(t, b.Stop())

	require.Len(t, rec.Ops, 1)
	assert.Equal(t, uint16(0x3D), rec.Ops[0].Addr)
	assert.Equal(t, []byte{0x00, 0xA6}, rec.Ops[0].W)
	assert.Empty(t, rec.Ops[0].R)
}

func TestTinyGo(t *testing.T) {
	f := &fakeTinyGo{}
	b := FromTinyGo(f)
	assert.Equal(t, "tinygo", b.String())

	require.NoError(t, b.Start(0x3C, false))
	require.NoError(t, b.WriteByte(0x00))
	require.NoError(t, b.WriteByte(0xE3))
	require.NoError(t, b.Stop())

	assert.Equal(t, []uint16{0x3C}, f.addrs)
	assert.Equal(t, [][]byte{{0x00, 0xE3}}, f.writes)
}

func TestTxError(t *testing.T) {
	boom := errors.New("nack")
	b := New(&fakeTinyGo{err: boom}, "fake")

	require.NoError(t, b.Start(0x3C, false))
	require.NoError(t, b.WriteByte(0x00))
	err := b.Stop()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "0x3C")
}

func TestStartErrors(t *testing.T) {
	f := &fakeTinyGo{}
	b := New(f, "fake")

	tests := []struct {
		name string
		addr uint16
		read bool
		want error
	}{
		{name: "read", addr: 0x3C, read: true, want: ErrRead},
		{name: "10-bit address", addr: 0x1FF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.Start(tt.addr, tt.read)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			// The stop condition is still accepted but nothing is sent.
			require.NoError(t, b.WriteByte(0x00))
			assert.NoError(t, b.Stop())
		})
	}
	assert.Empty(t, f.writes)
}

func TestNoTransaction(t *testing.T) {
	b := New(&fakeTinyGo{}, "fake")
	assert.ErrorIs(t, b.WriteByte(0x00), ErrNoTransaction)
	assert.ErrorIs(t, b.Stop(), ErrNoTransaction)

	require.NoError(t, b.Start(0x3C, false))
	require.NoError(t, b.Stop())
	assert.ErrorIs(t, b.Stop(), ErrNoTransaction)
}
