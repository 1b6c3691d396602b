// SPDX-License-Identifier: ice License 1.0

package timeofday

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ice-blockchain/chrono/bstream"
)

func TestIsValid(t *testing.T) {
	t.Parallel()
	assert.True(t, IsValid(0, 0, 0, 0))
	assert.True(t, IsValid(23, 59, 59, 999))
	assert.True(t, IsValid(24, 0, 0, 0))
	assert.False(t, IsValid(24, 0, 0, 1))
	assert.False(t, IsValid(24, 1, 0, 0))
	assert.False(t, IsValid(25, 0, 0, 0))
	assert.False(t, IsValid(-1, 0, 0, 0))
	assert.False(t, IsValid(0, 60, 0, 0))
	assert.False(t, IsValid(0, 0, 60, 0))
	assert.False(t, IsValid(0, 0, 0, 1000))
}

func TestDefaultVersusMidnight(t *testing.T) {
	t.Parallel()
	var def Time
	assert.True(t, def.IsDefault())
	assert.Equal(t, 24, def.Hour())
	assert.Equal(t, 0, def.Minute())
	assert.Equal(t, 0, def.Second())
	assert.Equal(t, 0, def.Millisecond())
	assert.Equal(t, "24:00:00.000", def.String())

	midnight := Midnight()
	assert.False(t, midnight.IsDefault())
	assert.Equal(t, 0, midnight.Hour())
	assert.Equal(t, "00:00:00.000", midnight.String())
	assert.NotEqual(t, def, midnight)

	fromNew, err := New(24, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, def, fromNew)
}

func TestAccessors(t *testing.T) {
	t.Parallel()
	val := UnsafeNew(20, 43, 9, 123)
	assert.Equal(t, 20, val.Hour())
	assert.Equal(t, 43, val.Minute())
	assert.Equal(t, 9, val.Second())
	assert.Equal(t, 123, val.Millisecond())
	assert.Equal(t, "20:43:09.123", val.String())
}

//nolint:funlen // One scenario per wraparound direction, better kept together.
func TestAddMilliseconds(t *testing.T) {
	t.Parallel()
	base := UnsafeNew(20, 43, 0, 0)

	shifted, carry := base.AddMilliseconds(0)
	assert.Equal(t, base, shifted)
	assert.Zero(t, carry)

	shifted, carry = base.AddMilliseconds(6 * 3600 * 1000)
	assert.Equal(t, UnsafeNew(2, 43, 0, 0), shifted)
	assert.EqualValues(t, 1, carry)

	shifted, carry = base.AddMilliseconds(-21 * 3600 * 1000)
	assert.Equal(t, UnsafeNew(23, 43, 0, 0), shifted)
	assert.EqualValues(t, -1, carry)

	shifted, carry = UnsafeNew(0, 0, 0, 0).AddMilliseconds(-1)
	assert.Equal(t, UnsafeNew(23, 59, 59, 999), shifted)
	assert.EqualValues(t, -1, carry)

	shifted, carry = UnsafeNew(23, 59, 59, 999).AddMilliseconds(1)
	assert.Equal(t, UnsafeNew(0, 0, 0, 0), shifted)
	assert.EqualValues(t, 1, carry)

	// The default value behaves as midnight and never survives arithmetic.
	var def Time
	shifted, carry = def.AddMilliseconds(0)
	assert.Equal(t, Midnight(), shifted)
	assert.Zero(t, carry)
	shifted, carry = def.AddMilliseconds(-1)
	assert.Equal(t, UnsafeNew(23, 59, 59, 999), shifted)
	assert.EqualValues(t, -1, carry)

	// Multi-day shifts report a wider carry.
	shifted, carry = Midnight().AddMilliseconds(3 * 24 * 3600 * 1000)
	assert.Equal(t, Midnight(), shifted)
	assert.EqualValues(t, 3, carry)
	shifted, carry = Midnight().AddMilliseconds(-3*24*3600*1000 - 1)
	assert.Equal(t, UnsafeNew(23, 59, 59, 999), shifted)
	assert.EqualValues(t, -4, carry)
}

func TestSub(t *testing.T) {
	t.Parallel()
	assert.EqualValues(t, 6*3600*1000+9*1000, UnsafeNew(8, 43, 9, 0).Sub(UnsafeNew(2, 43, 0, 0)).TotalMilliseconds())
	assert.EqualValues(t, -1, UnsafeNew(0, 0, 0, 0).Sub(UnsafeNew(0, 0, 0, 1)).TotalMilliseconds())
	// Either operand may carry the default value, which counts as midnight.
	var def Time
	assert.EqualValues(t, 0, def.Sub(Midnight()).TotalMilliseconds())
	assert.EqualValues(t, 1000, UnsafeNew(0, 0, 1, 0).Sub(def).TotalMilliseconds())
}

func TestCompare(t *testing.T) {
	t.Parallel()
	assert.Equal(t, -1, Midnight().Compare(UnsafeNew(0, 0, 0, 1)))
	assert.Equal(t, 1, UnsafeNew(12, 0, 0, 0).Compare(UnsafeNew(11, 59, 59, 999)))
	assert.Equal(t, 0, UnsafeNew(12, 0, 0, 0).Compare(UnsafeNew(12, 0, 0, 0)))
	// The default value orders after everything else within a day.
	var def Time
	assert.Equal(t, 1, def.Compare(UnsafeNew(23, 59, 59, 999)))
}

func TestParse(t *testing.T) {
	t.Parallel()
	parsed, err := Parse("20:43:09.123")
	require.NoError(t, err)
	assert.Equal(t, UnsafeNew(20, 43, 9, 123), parsed)
	parsed, err = Parse("24:00:00.000")
	require.NoError(t, err)
	assert.True(t, parsed.IsDefault())
	_, err = Parse("20:43:09")
	require.ErrorIs(t, err, ErrInvalidTime)
	_, err = Parse("25:00:00.000")
	require.ErrorIs(t, err, ErrInvalidTime)
}

func TestStreamRoundTrip(t *testing.T) {
	t.Parallel()
	for _, val := range []Time{{}, Midnight(), UnsafeNew(20, 43, 9, 123), UnsafeNew(23, 59, 59, 999)} {
		out := bstream.NewOutStream()
		val.StreamOut(out, 1)
		require.True(t, out.IsValid())
		assert.Len(t, out.Bytes(), 4)

		var decoded Time
		in := bstream.NewInStream(out.Bytes())
		decoded.StreamIn(in, 1)
		require.True(t, in.IsValid())
		assert.Equal(t, val, decoded)
	}
}

func TestStreamUnsupportedVersion(t *testing.T) {
	t.Parallel()
	out := bstream.NewOutStream()
	Midnight().StreamOut(out, 2)
	assert.False(t, out.IsValid())

	original := UnsafeNew(1, 2, 3, 4)
	decoded := original
	in := bstream.NewInStream([]byte{0x00, 0x00, 0x00, 0x00})
	decoded.StreamIn(in, 2)
	assert.False(t, in.IsValid())
	assert.Equal(t, original, decoded)
}

func TestStreamRejectsOutOfRangeCounter(t *testing.T) {
	t.Parallel()
	var decoded Time
	in := bstream.NewInStream([]byte{0x05, 0x26, 0x5C, 0x01}) // One past a full day.
	decoded.StreamIn(in, 1)
	assert.False(t, in.IsValid())
	assert.Equal(t, Time{}, decoded)
}
