// SPDX-License-Identifier: ice License 1.0

package datetime

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/chrono/log"
)

// String renders the value in the fixed "DDMONYYYY_HH:MM:SS.mmm" layout, for
// example "06JAN2013_20:43:00.000". The default value renders with hour 24.
func (dt Datetime) String() string {
	return string(dt.AppendFormat(make([]byte, 0, printedLength)))
}

// AppendFormat appends the String representation to dst and returns the
// extended buffer.
//
//nolint:gomnd // Field widths of the fixed layout.
func (dt Datetime) AppendFormat(dst []byte) []byte {
	year, month, day := dt.datePart.YearMonthDay()
	dst = appendPadded(dst, day, 2)
	dst = append(dst, months[month-1]...)
	dst = appendPadded(dst, year, 4)
	dst = append(dst, '_')
	dst = appendPadded(dst, dt.Hour(), 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, dt.Minute(), 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, dt.Second(), 2)
	dst = append(dst, '.')

	return appendPadded(dst, dt.Millisecond(), 3)
}

// PrintToBuffer writes at most len(buf) bytes of the String representation,
// including a terminating zero byte unless buf is empty, and returns the
// length of the untruncated representation so callers can detect truncation
// or probe for the needed buffer size.
func (dt Datetime) PrintToBuffer(buf []byte) int {
	full := dt.AppendFormat(make([]byte, 0, printedLength))
	if len(buf) == 0 {
		return len(full)
	}
	limit := len(buf) - 1
	if limit > len(full) {
		limit = len(full)
	}
	copy(buf, full[:limit])
	buf[limit] = 0

	return len(full)
}

// Parse is the inverse of String.
func Parse(val string) (Datetime, error) {
	if len(val) != printedLength || val[9] != '_' || val[12] != ':' || val[15] != ':' || val[18] != '.' {
		return Datetime{}, errors.Wrapf(ErrInvalidFormat, "malformed datetime %q", val)
	}
	month := monthNumber(val[2:5])
	if month == 0 {
		return Datetime{}, errors.Wrapf(ErrInvalidFormat, "unknown month in %q", val)
	}
	fields := make([]int, 0, 6) //nolint:gomnd // Day, year, hour, minute, second, millisecond.
	for _, piece := range []string{val[0:2], val[5:9], val[10:12], val[13:15], val[16:18], val[19:22]} {
		parsed, err := strconv.Atoi(piece)
		if err != nil || parsed < 0 {
			return Datetime{}, errors.Wrapf(ErrInvalidFormat, "malformed datetime %q", val)
		}
		fields = append(fields, parsed)
	}
	res, err := New(fields[1], month, fields[0], fields[2], fields[3], fields[4], fields[5])

	return res, errors.Wrapf(err, "unparsable datetime %q", val)
}

func UnsafeParse(val string) Datetime {
	res, err := Parse(val)
	log.Panic(err) //nolint:revive // Intended.

	return res
}

func monthNumber(name string) int {
	for ix, month := range months {
		if strings.EqualFold(name, month) {
			return ix + 1
		}
	}

	return 0
}

func appendPadded(dst []byte, val, width int) []byte {
	digits := strconv.Itoa(val)
	for ix := len(digits); ix < width; ix++ {
		dst = append(dst, '0')
	}

	return append(dst, digits...)
}
