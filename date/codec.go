// SPDX-License-Identifier: ice License 1.0

package date

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ice-blockchain/chrono/bstream"
)

func (d Date) MarshalBinary() ([]byte, error) {
	stream := bstream.NewOutStream()
	d.StreamOut(stream, streamVersion)
	if !stream.IsValid() {
		return nil, errors.Wrapf(ErrInvalidDate, "failed to binary encode %v", d.String())
	}

	return stream.Bytes(), nil
}

func (d *Date) UnmarshalBinary(data []byte) error {
	stream := bstream.NewInStream(data)
	var decoded Date
	decoded.StreamIn(stream, streamVersion)
	if !stream.IsValid() || stream.Remaining() != 0 {
		return errors.Wrapf(ErrInvalidDate, "failed to binary decode date out of %#x", data)
	}
	*d = decoded

	return nil
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*d = Date{}

		return nil
	}
	decoded, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = decoded

	return nil
}

// MarshalJSON renders the quoted String representation. The zero value is the
// minimum date, a real calendar day, so it renders as "0001/01/01" and never
// as null.
func (d *Date) MarshalJSON(_ context.Context) ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(_ context.Context, data []byte) error {
	val := string(data)
	if val == "null" || val == `""` || val == "" {
		*d = Date{}

		return nil
	}
	decoded, err := Parse(strings.Trim(val, `"`))
	if err != nil {
		return errors.Wrapf(err, "invalid date json %v", val)
	}
	*d = decoded

	return nil
}

func (d *Date) EncodeMsgpack(enc *msgpack.Encoder) error {
	data, err := d.MarshalBinary()
	if err != nil {
		return errors.Wrapf(err, "failed to EncodeMsgpack %v", d.String())
	}

	return errors.Wrap(enc.EncodeBytes(data), "failed to EncodeBytes")
}

func (d *Date) DecodeMsgpack(dec *msgpack.Decoder) error {
	data, err := dec.DecodeBytes()
	if err != nil {
		return errors.Wrap(err, "failed to DecodeMsgpack.DecodeBytes")
	}

	return errors.Wrapf(d.UnmarshalBinary(data), "failed to DecodeMsgpack %#x", data)
}
