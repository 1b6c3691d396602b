// SPDX-License-Identifier: ice License 1.0

package timeofday

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/chrono/bstream"
	"github.com/ice-blockchain/chrono/interval"
	"github.com/ice-blockchain/chrono/log"
	"github.com/ice-blockchain/chrono/terror"
)

// New builds a time of day out of its four attributes. Hour 24 is accepted
// only with all remaining attributes 0 and yields the default value.
func New(hour, minute, second, millisecond int) (Time, error) {
	if !IsValid(hour, minute, second, millisecond) {
		return Time{}, terror.New(ErrInvalidTime, map[string]any{
			"hour": hour, "minute": minute, "second": second, "millisecond": millisecond,
		})
	}
	if hour == DefaultHour {
		return Time{}, nil
	}

	return fromMillisOfDay(int32(hour)*msecPerHour + int32(minute)*msecPerMinute + int32(second)*msecPerSecond + int32(millisecond)), nil
}

func UnsafeNew(hour, minute, second, millisecond int) Time {
	res, err := New(hour, minute, second, millisecond)
	log.Panic(err) //nolint:revive // Intended.

	return res
}

// Midnight is "00:00:00.000", distinct from the default zero value "24:00:00.000".
func Midnight() Time {
	return fromMillisOfDay(0)
}

func IsValid(hour, minute, second, millisecond int) bool {
	if hour == DefaultHour {
		return minute == 0 && second == 0 && millisecond == 0
	}

	return hour >= 0 && hour < DefaultHour &&
		minute >= 0 && minute < 60 &&
		second >= 0 && second < 60 &&
		millisecond >= 0 && millisecond < int(msecPerSecond)
}

func (t Time) IsDefault() bool {
	return t.shiftedMsec == 0
}

func (t Time) Hour() int {
	if t.IsDefault() {
		return DefaultHour
	}

	return int(t.millisOfDay() / msecPerHour)
}

func (t Time) Minute() int {
	return int(t.effectiveMsec() % msecPerHour / msecPerMinute)
}

func (t Time) Second() int {
	return int(t.effectiveMsec() % msecPerMinute / msecPerSecond)
}

func (t Time) Millisecond() int {
	return int(t.effectiveMsec() % msecPerSecond)
}

// AddMilliseconds returns the time of day shifted by the given signed amount,
// wrapped around midnight, together with the signed whole-day carry consumed
// by the wraparound. The default value behaves as midnight, and the result is
// never the default value, even for a zero shift.
func (t Time) AddMilliseconds(milliseconds int64) (Time, int64) {
	total := int64(t.effectiveMsec()) + milliseconds
	carry := floorDiv(total, int64(msecPerDay))

	return fromMillisOfDay(int32(total - carry*int64(msecPerDay))), carry
}

// Sub returns the signed sub-day span from other to t; either operand may be
// the default value, which counts as midnight.
func (t Time) Sub(other Time) interval.Interval {
	return interval.FromMilliseconds(int64(t.effectiveMsec()) - int64(other.effectiveMsec()))
}

// Compare orders times of day by their position within the day, with the
// default value ordered after "23:59:59.999".
func (t Time) Compare(other Time) int {
	switch {
	case t.millisOfDay() < other.millisOfDay():
		return -1
	case t.millisOfDay() > other.millisOfDay():
		return 1
	default:
		return 0
	}
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour(), t.Minute(), t.Second(), t.Millisecond())
}

func Parse(val string) (Time, error) {
	var hour, minute, second, millisecond int
	if _, err := fmt.Sscanf(val, "%d:%d:%d.%d", &hour, &minute, &second, &millisecond); err != nil {
		return Time{}, errors.Wrapf(ErrInvalidTime, "malformed time of day %q", val)
	}

	return New(hour, minute, second, millisecond)
}

// StreamOut writes the time of day in the given schema version (only 1 is
// supported, a single big-endian 32 bit millisecond-of-day counter, with the
// default value written as a full day). An unsupported version invalidates
// the stream without writing anything.
func (t Time) StreamOut(stream *bstream.OutStream, version int) {
	if !stream.IsValid() {
		return
	}
	switch version {
	case streamVersion:
		stream.PutUint32(uint32(t.millisOfDay()))
	default:
		stream.Invalidate()
	}
}

// StreamIn is the inverse of StreamOut. The receiver is modified only if the
// whole read succeeds and yields an in-range counter.
func (t *Time) StreamIn(stream *bstream.InStream, version int) {
	if !stream.IsValid() {
		return
	}
	switch version {
	case streamVersion:
		millis := int32(stream.Uint32())
		if !stream.IsValid() {
			return
		}
		if millis < 0 || millis > msecPerDay {
			stream.Invalidate()

			return
		}
		if millis == msecPerDay {
			t.shiftedMsec = 0
		} else {
			t.shiftedMsec = millis + 1
		}
	default:
		stream.Invalidate()
	}
}

// millisOfDay reports the default value as a full day of milliseconds.
func (t Time) millisOfDay() int32 {
	if t.shiftedMsec == 0 {
		return msecPerDay
	}

	return t.shiftedMsec - 1
}

// effectiveMsec reports the default value as midnight, the way arithmetic sees it.
func (t Time) effectiveMsec() int32 {
	if t.shiftedMsec == 0 {
		return 0
	}

	return t.shiftedMsec - 1
}

func fromMillisOfDay(millis int32) Time {
	return Time{shiftedMsec: millis + 1}
}

func floorDiv(dividend, divisor int64) int64 {
	quotient := dividend / divisor
	if dividend%divisor != 0 && (dividend < 0) != (divisor < 0) {
		quotient--
	}

	return quotient
}
