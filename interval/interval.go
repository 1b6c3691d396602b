// SPDX-License-Identifier: ice License 1.0

package interval

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/chrono/log"
)

// New composes a span out of independently signed day and sub-day counts.
// It fails with ErrOverflow if the total millisecond count is not representable.
func New(days, hours, minutes, seconds, milliseconds int64) (Interval, error) {
	total := milliseconds
	for _, part := range []struct{ units, scale int64 }{
		{seconds, MillisecondsPerSecond},
		{minutes, MillisecondsPerMinute},
		{hours, MillisecondsPerHour},
		{days, MillisecondsPerDay},
	} {
		scaled, err := mulInt64(part.units, part.scale)
		if err != nil {
			return Interval{}, err
		}
		if total, err = addInt64(total, scaled); err != nil {
			return Interval{}, err
		}
	}

	return Interval{totalMsec: total}, nil
}

func UnsafeNew(days, hours, minutes, seconds, milliseconds int64) Interval {
	iv, err := New(days, hours, minutes, seconds, milliseconds)
	log.Panic(err) //nolint:revive // Intended.

	return iv
}

func FromMilliseconds(milliseconds int64) Interval {
	return Interval{totalMsec: milliseconds}
}

func (i Interval) Days() int64 {
	return i.totalMsec / MillisecondsPerDay
}

func (i Interval) Hours() int64 {
	return (i.totalMsec % MillisecondsPerDay) / MillisecondsPerHour
}

func (i Interval) Minutes() int64 {
	return (i.totalMsec % MillisecondsPerHour) / MillisecondsPerMinute
}

func (i Interval) Seconds() int64 {
	return (i.totalMsec % MillisecondsPerMinute) / MillisecondsPerSecond
}

func (i Interval) Milliseconds() int64 {
	return i.totalMsec % MillisecondsPerSecond
}

func (i Interval) TotalDays() int64 {
	return i.totalMsec / MillisecondsPerDay
}

func (i Interval) TotalHours() int64 {
	return i.totalMsec / MillisecondsPerHour
}

func (i Interval) TotalMinutes() int64 {
	return i.totalMsec / MillisecondsPerMinute
}

func (i Interval) TotalSeconds() int64 {
	return i.totalMsec / MillisecondsPerSecond
}

func (i Interval) TotalMilliseconds() int64 {
	return i.totalMsec
}

func (i Interval) Add(other Interval) (Interval, error) {
	total, err := addInt64(i.totalMsec, other.totalMsec)
	if err != nil {
		return Interval{}, err
	}

	return Interval{totalMsec: total}, nil
}

func (i Interval) Sub(other Interval) (Interval, error) {
	negated, err := other.Negate()
	if err != nil {
		return Interval{}, err
	}

	return i.Add(negated)
}

func (i Interval) Negate() (Interval, error) {
	if i.totalMsec == math.MinInt64 {
		return Interval{}, errors.WithStack(ErrOverflow)
	}

	return Interval{totalMsec: -i.totalMsec}, nil
}

func (i Interval) IsZero() bool {
	return i.totalMsec == 0
}

// Compare returns -1, 0 or +1 as i is shorter than, equal to, or longer than other.
func (i Interval) Compare(other Interval) int {
	switch {
	case i.totalMsec < other.totalMsec:
		return -1
	case i.totalMsec > other.totalMsec:
		return 1
	default:
		return 0
	}
}

func (i Interval) String() string {
	msec := i.totalMsec
	sign := "+"
	if msec < 0 {
		sign = "-"
		msec = -msec // Lossy for math.MinInt64, which is far outside any datetime span.
	}
	span := Interval{totalMsec: msec}

	return fmt.Sprintf("%v%d_%02d:%02d:%02d.%03d", sign, span.Days(), span.Hours(), span.Minutes(), span.Seconds(), span.Milliseconds())
}

func mulInt64(units, scale int64) (int64, error) {
	if units == 0 {
		return 0, nil
	}
	res := units * scale
	if res/units != scale {
		return 0, errors.WithStack(ErrOverflow)
	}

	return res, nil
}

func addInt64(a, b int64) (int64, error) {
	res := a + b
	if (b > 0 && res < a) || (b < 0 && res > a) {
		return 0, errors.WithStack(ErrOverflow)
	}

	return res, nil
}
