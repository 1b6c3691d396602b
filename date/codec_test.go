// SPDX-License-Identifier: ice License 1.0

package date

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	chronotesting "github.com/ice-blockchain/chrono/testing"
)

func TestBinaryRoundTrip(t *testing.T) {
	t.Parallel()
	for _, val := range []Date{{}, UnsafeNew(2013, 1, 6), UnsafeNew(9999, 12, 31)} {
		data, err := val.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, 3)

		var decoded Date
		require.NoError(t, decoded.UnmarshalBinary(data))
		assert.Equal(t, val, decoded)
	}

	var decoded Date
	require.ErrorIs(t, decoded.UnmarshalBinary([]byte{0x00, 0x00, 0x01, 0x00}), ErrInvalidDate)
	require.ErrorIs(t, decoded.UnmarshalBinary([]byte{0x00, 0x00}), ErrInvalidDate)
	assert.Equal(t, Date{}, decoded)
}

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()
	val := UnsafeNew(2013, 1, 6)
	data, err := val.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2013/01/06", string(data))

	var decoded Date
	require.NoError(t, decoded.UnmarshalText(data))
	assert.Equal(t, val, decoded)

	require.NoError(t, decoded.UnmarshalText(nil))
	assert.Equal(t, Date{}, decoded)

	require.ErrorIs(t, decoded.UnmarshalText([]byte("2013/02/29")), ErrInvalidDate)
}

// The zero value is the minimum date, a real calendar day, so it marshals as
// "0001/01/01" rather than null.
func TestJSONSerialization(t *testing.T) {
	t.Parallel()
	type onContainer struct {
		On Date `json:"on"`
	}
	chronotesting.AssertSymmetricMarshallingUnmarshalling(t,
		&onContainer{On: UnsafeNew(2013, 1, 6)},
		`{"on":"2013/01/06"}`,
		`{"on":"0001/01/01"}`)
}

func TestMsgpackRoundTrip(t *testing.T) {
	t.Parallel()
	for _, val := range []Date{{}, UnsafeNew(2013, 1, 6)} {
		data, err := msgpack.Marshal(&val)
		require.NoError(t, err)

		var decoded Date
		require.NoError(t, msgpack.Unmarshal(data, &decoded))
		assert.Equal(t, val, decoded)
	}
}
