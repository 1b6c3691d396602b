// SPDX-License-Identifier: ice License 1.0

package datetime

import (
	"database/sql"
	"database/sql/driver"
	"encoding"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ice-blockchain/chrono/date"
	"github.com/ice-blockchain/chrono/timeofday"
)

// Public API.

var (
	ErrInvalidDatetime = errors.New("invalid datetime")
	ErrOutOfRange      = errors.New("datetime out of supported range")
	ErrInvalidFormat   = errors.New("malformed datetime representation")

	_ json.MarshalerContext      = (*Datetime)(nil)
	_ json.UnmarshalerContext    = (*Datetime)(nil)
	_ msgpack.CustomEncoder      = (*Datetime)(nil)
	_ msgpack.CustomDecoder      = (*Datetime)(nil)
	_ sql.Scanner                = (*Datetime)(nil)
	_ driver.Valuer              = Datetime{}
	_ encoding.TextMarshaler     = Datetime{}
	_ encoding.TextUnmarshaler   = (*Datetime)(nil)
	_ encoding.BinaryMarshaler   = Datetime{}
	_ encoding.BinaryUnmarshaler = (*Datetime)(nil)
)

type (
	// Datetime composes a calendar date and a time of day into one value with
	// millisecond resolution. It is trivially copyable, and the zero value is
	// the canonical default "0001/01/01_24:00:00.000", the "nothing set yet"
	// marker of the whole type.
	//
	// The default time of day "24:00:00.000" may be paired only with the
	// default date; every mutator below upholds that by zeroing the time part
	// before a date-changing mutation takes effect (unless the new date is the
	// default date itself). Ordering of values carrying the default time of
	// day is not meaningful; Equal and Sub are the only relational operations
	// defined on them.
	Datetime struct {
		datePart date.Date
		timePart timeofday.Time
	}
)

// Private API.

const (
	maxStreamVersion = 1

	printedLength = 22 // len("06JAN2013_20:43:00.000").
)

//nolint:gochecknoglobals // Immutable lookup table.
var (
	months = [12]string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}
)
