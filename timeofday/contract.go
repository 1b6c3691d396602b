// SPDX-License-Identifier: ice License 1.0

package timeofday

import (
	"encoding"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Public API.

const (
	// DefaultHour is the hour reported by the default value "24:00:00.000",
	// the only representable time of day outside [00:00:00.000 .. 23:59:59.999].
	DefaultHour = 24
)

var (
	ErrInvalidTime = errors.New("invalid time of day")

	_ json.MarshalerContext      = (*Time)(nil)
	_ json.UnmarshalerContext    = (*Time)(nil)
	_ msgpack.CustomEncoder      = (*Time)(nil)
	_ msgpack.CustomDecoder      = (*Time)(nil)
	_ encoding.TextMarshaler     = Time{}
	_ encoding.TextUnmarshaler   = (*Time)(nil)
	_ encoding.BinaryMarshaler   = Time{}
	_ encoding.BinaryUnmarshaler = (*Time)(nil)
)

type (
	// Time is a time of day with millisecond resolution. The zero value is the
	// default "24:00:00.000", which behaves as midnight under arithmetic but is
	// reported with hour 24 by the accessors. Every other value is an ordinary
	// time of day in [00:00:00.000 .. 23:59:59.999]. Trivially copyable.
	Time struct {
		// Milliseconds since midnight, plus one. 0 encodes the 24:00 default,
		// so that the zero Time is the default value.
		shiftedMsec int32
	}
)

// Private API.

const (
	msecPerSecond = int32(1000)
	msecPerMinute = 60 * msecPerSecond
	msecPerHour   = 60 * msecPerMinute
	msecPerDay    = 24 * msecPerHour

	streamVersion = 1
)
