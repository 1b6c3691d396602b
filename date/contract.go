// SPDX-License-Identifier: ice License 1.0

package date

import (
	"encoding"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Public API.

const (
	MinYear = 1
	MaxYear = 9999
)

var (
	ErrInvalidDate = errors.New("invalid calendar date")
	ErrOutOfRange  = errors.New("date out of supported range")

	_ json.MarshalerContext      = (*Date)(nil)
	_ json.UnmarshalerContext    = (*Date)(nil)
	_ msgpack.CustomEncoder      = (*Date)(nil)
	_ msgpack.CustomDecoder      = (*Date)(nil)
	_ encoding.TextMarshaler     = Date{}
	_ encoding.TextUnmarshaler   = (*Date)(nil)
	_ encoding.BinaryMarshaler   = Date{}
	_ encoding.BinaryUnmarshaler = (*Date)(nil)
)

type (
	// Date is a proleptic Gregorian calendar date in the years [1 .. 9999],
	// held as an offset in days from 0001-01-01. It is a trivially copyable
	// value and the zero value is 0001-01-01, the minimum supported date.
	Date struct {
		offsetDays int32
	}
)

// Private API.

const (
	minSerial = int32(1)       // 0001-01-01.
	maxSerial = int32(3652059) // 9999-12-31.

	daysPerEra     = 146097 // 400 Gregorian years.
	yearsPerEra    = 400
	daysBeforeMar1 = 306 // 0001-01-01 relative to 0000-03-01.

	streamVersion = 1
)

//nolint:gochecknoglobals // Immutable lookup tables.
var (
	daysPerMonth       = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	daysBeforeMonth    = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	daysPerYear        = 365
	daysPerLeapYear    = 366
	monthsPerYear      = 12
	februaryLeapLength = 29
)
