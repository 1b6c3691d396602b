// SPDX-License-Identifier: ice License 1.0

package timeofday

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ice-blockchain/chrono/bstream"
)

func (t Time) MarshalBinary() ([]byte, error) {
	stream := bstream.NewOutStream()
	t.StreamOut(stream, streamVersion)
	if !stream.IsValid() {
		return nil, errors.Wrapf(ErrInvalidTime, "failed to binary encode %v", t.String())
	}

	return stream.Bytes(), nil
}

func (t *Time) UnmarshalBinary(data []byte) error {
	stream := bstream.NewInStream(data)
	var decoded Time
	decoded.StreamIn(stream, streamVersion)
	if !stream.IsValid() || stream.Remaining() != 0 {
		return errors.Wrapf(ErrInvalidTime, "failed to binary decode time of day out of %#x", data)
	}
	*t = decoded

	return nil
}

func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Time) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*t = Time{}

		return nil
	}
	decoded, err := Parse(string(data))
	if err != nil {
		return err
	}
	*t = decoded

	return nil
}

// MarshalJSON renders the default "24:00:00.000" as null (it is the "nothing
// set yet" marker) and everything else as the quoted String representation.
func (t *Time) MarshalJSON(_ context.Context) ([]byte, error) {
	if t.IsDefault() {
		return []byte("null"), nil
	}

	return []byte(`"` + t.String() + `"`), nil
}

func (t *Time) UnmarshalJSON(_ context.Context, data []byte) error {
	val := string(data)
	if val == "null" || val == `""` || val == "" {
		*t = Time{}

		return nil
	}
	decoded, err := Parse(strings.Trim(val, `"`))
	if err != nil {
		return errors.Wrapf(err, "invalid time of day json %v", val)
	}
	*t = decoded

	return nil
}

func (t *Time) EncodeMsgpack(enc *msgpack.Encoder) error {
	data, err := t.MarshalBinary()
	if err != nil {
		return errors.Wrapf(err, "failed to EncodeMsgpack %v", t.String())
	}

	return errors.Wrap(enc.EncodeBytes(data), "failed to EncodeBytes")
}

func (t *Time) DecodeMsgpack(dec *msgpack.Decoder) error {
	data, err := dec.DecodeBytes()
	if err != nil {
		return errors.Wrap(err, "failed to DecodeMsgpack.DecodeBytes")
	}

	return errors.Wrapf(t.UnmarshalBinary(data), "failed to DecodeMsgpack %#x", data)
}
