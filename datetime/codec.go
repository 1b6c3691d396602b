// SPDX-License-Identifier: ice License 1.0

package datetime

import (
	"context"
	"database/sql/driver"
	"strings"
	stdlibtime "time"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ice-blockchain/chrono/bstream"
	"github.com/ice-blockchain/chrono/date"
	"github.com/ice-blockchain/chrono/timeofday"
)

// MaxSupportedStreamVersion returns the newest binary schema version both
// StreamOut and StreamIn understand.
func MaxSupportedStreamVersion() int {
	return maxStreamVersion
}

// StreamOut writes the date part then the time part in the given schema
// version, each in its own version-1 encoding; no version tag or length
// prefix is emitted. An unsupported version invalidates the stream without
// writing anything.
func (dt Datetime) StreamOut(stream *bstream.OutStream, version int) {
	if !stream.IsValid() {
		return
	}
	switch version {
	case maxStreamVersion:
		dt.datePart.StreamOut(stream, 1)
		dt.timePart.StreamOut(stream, 1)
	default:
		stream.Invalidate()
	}
}

// StreamIn reads the date part then the time part into temporaries and
// commits both at once, so a failed read never leaves the receiver partially
// updated. An unsupported version, a short or corrupt stream, or a decoded
// pairing of the default time of day with a non-default date all invalidate
// the stream and leave the receiver untouched.
func (dt *Datetime) StreamIn(stream *bstream.InStream, version int) {
	if !stream.IsValid() {
		return
	}
	switch version {
	case maxStreamVersion:
		var datePart date.Date
		var timePart timeofday.Time
		datePart.StreamIn(stream, 1)
		timePart.StreamIn(stream, 1)
		if !stream.IsValid() {
			return
		}
		if !IsValidParts(datePart, timePart) {
			stream.Invalidate()

			return
		}
		dt.datePart, dt.timePart = datePart, timePart
	default:
		stream.Invalidate()
	}
}

func (dt Datetime) MarshalBinary() ([]byte, error) {
	stream := bstream.NewOutStream()
	dt.StreamOut(stream, maxStreamVersion)
	if !stream.IsValid() {
		return nil, errors.Wrapf(ErrInvalidFormat, "failed to binary encode %v", dt.String())
	}

	return stream.Bytes(), nil
}

func (dt *Datetime) UnmarshalBinary(data []byte) error {
	stream := bstream.NewInStream(data)
	var decoded Datetime
	decoded.StreamIn(stream, maxStreamVersion)
	if !stream.IsValid() || stream.Remaining() != 0 {
		return errors.Wrapf(ErrInvalidFormat, "failed to binary decode datetime out of %#x", data)
	}
	*dt = decoded

	return nil
}

func (dt Datetime) MarshalText() ([]byte, error) {
	return dt.AppendFormat(make([]byte, 0, printedLength)), nil
}

func (dt *Datetime) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*dt = Datetime{}

		return nil
	}
	decoded, err := Parse(string(data))
	if err != nil {
		return err
	}
	*dt = decoded

	return nil
}

// MarshalJSON renders the default value as null and everything else as the
// quoted String representation.
func (dt *Datetime) MarshalJSON(_ context.Context) ([]byte, error) {
	if dt.IsDefault() {
		return []byte("null"), nil
	}

	return []byte(`"` + dt.String() + `"`), nil
}

func (dt *Datetime) UnmarshalJSON(_ context.Context, data []byte) error {
	val := string(data)
	if val == "null" || val == `""` || val == "" {
		*dt = Datetime{}

		return nil
	}
	decoded, err := Parse(strings.Trim(val, `"`))
	if err != nil {
		return errors.Wrapf(err, "invalid datetime json %v", val)
	}
	*dt = decoded

	return nil
}

func (dt *Datetime) EncodeMsgpack(enc *msgpack.Encoder) error {
	data, err := dt.MarshalBinary()
	if err != nil {
		return errors.Wrapf(err, "failed to EncodeMsgpack %v", dt.String())
	}

	return errors.Wrap(enc.EncodeBytes(data), "failed to EncodeBytes")
}

func (dt *Datetime) DecodeMsgpack(dec *msgpack.Decoder) error {
	data, err := dec.DecodeBytes()
	if err != nil {
		return errors.Wrap(err, "failed to DecodeMsgpack.DecodeBytes")
	}

	return errors.Wrapf(dt.UnmarshalBinary(data), "failed to DecodeMsgpack %#x", data)
}

func (dt *Datetime) Scan(src any) error {
	switch val := src.(type) {
	case nil:
		*dt = Datetime{}

		return nil
	case string:
		return dt.UnmarshalText([]byte(val))
	case []byte:
		return dt.UnmarshalText(val)
	case stdlibtime.Time:
		decoded, err := FromStdTime(val)
		if err != nil {
			return errors.Wrapf(err, "cannot scan %v", val)
		}
		*dt = decoded

		return nil
	default:
		return errors.Wrapf(ErrInvalidFormat, "unsupported sql source type %T", src)
	}
}

// Value stores the default value as NULL and everything else as the String
// representation.
func (dt Datetime) Value() (driver.Value, error) {
	if dt.IsDefault() {
		return nil, nil //nolint:nilnil // Intended, NULL.
	}

	return dt.String(), nil
}
