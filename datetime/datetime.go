// SPDX-License-Identifier: ice License 1.0

package datetime

import (
	stdlibtime "time"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/chrono/date"
	"github.com/ice-blockchain/chrono/interval"
	"github.com/ice-blockchain/chrono/log"
	"github.com/ice-blockchain/chrono/terror"
	"github.com/ice-blockchain/chrono/timeofday"
)

// IsValid reports whether the seven attributes collectively form a valid
// datetime: a valid calendar date, a valid time of day, and hour 24 only on
// the default date 0001-01-01.
func IsValid(year, month, day, hour, minute, second, millisecond int) bool {
	if !date.IsValidYearMonthDay(year, month, day) || !timeofday.IsValid(hour, minute, second, millisecond) {
		return false
	}
	if hour == timeofday.DefaultHour && !(year == 1 && month == 1 && day == 1) {
		return false
	}

	return true
}

// IsValidParts reports whether the two parts may be paired: any combination
// is fine except the default time of day on a non-default date.
func IsValidParts(datePart date.Date, timePart timeofday.Time) bool {
	return !(timePart.IsDefault() && !datePart.IsDefault())
}

func New(year, month, day, hour, minute, second, millisecond int) (Datetime, error) {
	if !IsValid(year, month, day, hour, minute, second, millisecond) {
		return Datetime{}, terror.New(ErrInvalidDatetime, map[string]any{
			"year": year, "month": month, "day": day,
			"hour": hour, "minute": minute, "second": second, "millisecond": millisecond,
		})
	}

	return Datetime{
		datePart: date.UnsafeNew(year, month, day),
		timePart: timeofday.UnsafeNew(hour, minute, second, millisecond),
	}, nil
}

func UnsafeNew(year, month, day, hour, minute, second, millisecond int) Datetime {
	res, err := New(year, month, day, hour, minute, second, millisecond)
	log.Panic(err) //nolint:revive // Intended.

	return res
}

// FromDate pairs the given date with "00:00:00.000"; the time part never
// inherits the default "24:00:00.000".
func FromDate(datePart date.Date) Datetime {
	return Datetime{datePart: datePart, timePart: timeofday.Midnight()}
}

func FromParts(datePart date.Date, timePart timeofday.Time) (Datetime, error) {
	if !IsValidParts(datePart, timePart) {
		return Datetime{}, terror.New(ErrInvalidDatetime, map[string]any{"date": datePart.String(), "time": timePart.String()})
	}

	return Datetime{datePart: datePart, timePart: timePart}, nil
}

// FromStdTime converts the wall-clock fields of a stdlib time, truncating to
// millisecond resolution. It fails for years outside [1 .. 9999].
func FromStdTime(val stdlibtime.Time) (Datetime, error) {
	return New(val.Year(), int(val.Month()), val.Day(), val.Hour(), val.Minute(), val.Second(), val.Nanosecond()/int(stdlibtime.Millisecond))
}

// StdTime maps the value onto a stdlib UTC time; the default value maps to
// midnight of 0001-01-01.
func (dt Datetime) StdTime() stdlibtime.Time {
	year, month, day := dt.datePart.YearMonthDay()
	hour := dt.Hour()
	if hour == timeofday.DefaultHour {
		hour = 0
	}

	return stdlibtime.Date(year, stdlibtime.Month(month), day, hour, dt.Minute(), dt.Second(), dt.Millisecond()*int(stdlibtime.Millisecond), stdlibtime.UTC)
}

// Min is the smallest orderable value, "0001/01/01_00:00:00.000".
func Min() Datetime {
	return Datetime{timePart: timeofday.Midnight()}
}

// Max is the largest representable value, "9999/12/31_23:59:59.999".
func Max() Datetime {
	return Datetime{datePart: date.UnsafeNew(date.MaxYear, 12, 31), timePart: timeofday.UnsafeNew(23, 59, 59, 999)}
}

func (dt Datetime) Date() date.Date {
	return dt.datePart
}

func (dt Datetime) Time() timeofday.Time {
	return dt.timePart
}

func (dt Datetime) Year() int {
	return dt.datePart.Year()
}

func (dt Datetime) Month() int {
	return dt.datePart.Month()
}

func (dt Datetime) Day() int {
	return dt.datePart.Day()
}

func (dt Datetime) DayOfYear() int {
	return dt.datePart.DayOfYear()
}

func (dt Datetime) DayOfWeek() stdlibtime.Weekday {
	return dt.datePart.DayOfWeek()
}

func (dt Datetime) Hour() int {
	return dt.timePart.Hour()
}

func (dt Datetime) Minute() int {
	return dt.timePart.Minute()
}

func (dt Datetime) Second() int {
	return dt.timePart.Second()
}

func (dt Datetime) Millisecond() int {
	return dt.timePart.Millisecond()
}

// IsDefault reports whether this is the canonical default value
// "0001/01/01_24:00:00.000".
func (dt Datetime) IsDefault() bool {
	return dt.datePart.IsDefault() && dt.timePart.IsDefault()
}

// SetDatetime replaces both parts at once, with no effect unless the seven
// attributes collectively form a valid datetime.
func (dt *Datetime) SetDatetime(year, month, day, hour, minute, second, millisecond int) error {
	res, err := New(year, month, day, hour, minute, second, millisecond)
	if err != nil {
		return err
	}
	*dt = res

	return nil
}

// SetDate replaces the date part. The time part is untouched, except that the
// default "24:00:00.000" is zeroed whenever the new date is not the default
// date.
func (dt *Datetime) SetDate(newDate date.Date) {
	dt.normalizeTimeForDate(newDate)
	dt.datePart = newDate
}

func (dt *Datetime) SetYearMonthDay(year, month, day int) error {
	newDate, err := date.New(year, month, day)
	if err != nil {
		return errors.Wrapf(err, "cannot set year/month/day %v/%v/%v", year, month, day)
	}
	dt.SetDate(newDate)

	return nil
}

func (dt *Datetime) SetYearDay(year, dayOfYear int) error {
	newDate, err := date.NewYearDay(year, dayOfYear)
	if err != nil {
		return errors.Wrapf(err, "cannot set year/dayOfYear %v/%v", year, dayOfYear)
	}
	dt.SetDate(newDate)

	return nil
}

// SetTime replaces the time part; the default "24:00:00.000" is rejected
// unless the date part is the default date.
func (dt *Datetime) SetTime(newTime timeofday.Time) error {
	if !IsValidParts(dt.datePart, newTime) {
		return terror.New(ErrInvalidDatetime, map[string]any{"date": dt.datePart.String(), "time": newTime.String()})
	}
	dt.timePart = newTime

	return nil
}

func (dt *Datetime) SetTimeOfDay(hour, minute, second, millisecond int) error {
	newTime, err := timeofday.New(hour, minute, second, millisecond)
	if err != nil {
		return err
	}

	return dt.SetTime(newTime)
}

// SetHour keeps the remaining time attributes, except that hour 24 zeroes
// them (and is accepted only on the default date).
func (dt *Datetime) SetHour(hour int) error {
	if hour == timeofday.DefaultHour {
		return dt.SetTime(timeofday.Time{})
	}

	return dt.SetTimeOfDay(hour, dt.timePart.Minute(), dt.timePart.Second(), dt.timePart.Millisecond())
}

// SetMinute (like SetSecond and SetMillisecond) zeroes an hour of 24 instead
// of keeping it, so the result is always an ordinary time of day.
func (dt *Datetime) SetMinute(minute int) error {
	return dt.SetTimeOfDay(dt.effectiveHour(), minute, dt.timePart.Second(), dt.timePart.Millisecond())
}

func (dt *Datetime) SetSecond(second int) error {
	return dt.SetTimeOfDay(dt.effectiveHour(), dt.timePart.Minute(), second, dt.timePart.Millisecond())
}

func (dt *Datetime) SetMillisecond(millisecond int) error {
	return dt.SetTimeOfDay(dt.effectiveHour(), dt.timePart.Minute(), dt.timePart.Second(), millisecond)
}

// AddDays shifts the date part by the given signed day count, with no effect
// if the result would leave the supported range. A default "24:00:00.000"
// time part is zeroed, because shifting lands on a concrete day at midnight.
func (dt *Datetime) AddDays(days int) error {
	newDate, err := dt.datePart.AddDays(days)
	if err != nil {
		return terror.New(ErrOutOfRange, map[string]any{"datetime": dt.String(), "days": days})
	}
	if dt.timePart.IsDefault() {
		dt.timePart = timeofday.Midnight()
	}
	dt.datePart = newDate

	return nil
}

// AddTime shifts the value by the given independently signed sub-day counts,
// carrying whole days into the date part. It fails, with no effect, if the
// counts do not form a representable interval or the result would leave the
// supported range.
func (dt *Datetime) AddTime(hours, minutes, seconds, milliseconds int64) error {
	delta, err := interval.New(0, hours, minutes, seconds, milliseconds)
	if err != nil {
		return errors.Wrapf(err, "cannot add %vh %vm %vs %vms", hours, minutes, seconds, milliseconds)
	}

	return dt.AddInterval(delta)
}

func (dt *Datetime) AddHours(hours int64) error {
	return dt.AddTime(hours, 0, 0, 0)
}

func (dt *Datetime) AddMinutes(minutes int64) error {
	return dt.AddTime(0, minutes, 0, 0)
}

func (dt *Datetime) AddSeconds(seconds int64) error {
	return dt.AddTime(0, 0, seconds, 0)
}

func (dt *Datetime) AddMilliseconds(milliseconds int64) error {
	return dt.AddTime(0, 0, 0, milliseconds)
}

// AddInterval shifts the value by the given span, with no effect unless the
// span lies between Min().Sub(*dt) and Max().Sub(*dt). A default time part
// counts as midnight.
func (dt *Datetime) AddInterval(delta interval.Interval) error {
	if delta.Compare(Max().Sub(*dt)) > 0 || delta.Compare(Min().Sub(*dt)) < 0 {
		return terror.New(ErrOutOfRange, map[string]any{"datetime": dt.String(), "delta": delta.String()})
	}
	total := delta.TotalMilliseconds()
	wholeDays := total / interval.MillisecondsPerDay
	normMsec := total - wholeDays*interval.MillisecondsPerDay
	if normMsec < 0 {
		wholeDays--
		normMsec += interval.MillisecondsPerDay
	}
	newTime, carry := dt.timePart.AddMilliseconds(normMsec)
	newDate, err := dt.datePart.AddDays(int(wholeDays + carry))
	if err != nil {
		return terror.New(ErrOutOfRange, map[string]any{"datetime": dt.String(), "delta": delta.String()})
	}
	dt.datePart, dt.timePart = newDate, newTime

	return nil
}

func (dt *Datetime) SubInterval(delta interval.Interval) error {
	negated, err := delta.Negate()
	if err != nil {
		return errors.Wrapf(err, "cannot subtract %v", delta)
	}

	return dt.AddInterval(negated)
}

// Add is the value-returning form of AddInterval.
func Add(dt Datetime, delta interval.Interval) (Datetime, error) {
	err := dt.AddInterval(delta)

	return dt, err
}

// Subtract is the value-returning form of SubInterval.
func Subtract(dt Datetime, delta interval.Interval) (Datetime, error) {
	err := dt.SubInterval(delta)

	return dt, err
}

// Sub returns the signed span from other to dt. It is defined for any pair of
// values; a default "24:00:00.000" time part counts as midnight, which makes
// Sub the one safe relational operation on default values.
func (dt Datetime) Sub(other Datetime) interval.Interval {
	wholeDays := int64(dt.datePart.Sub(other.datePart))

	return interval.FromMilliseconds(wholeDays*interval.MillisecondsPerDay + dt.timePart.Sub(other.timePart).TotalMilliseconds())
}

func (dt Datetime) Equal(other Datetime) bool {
	return dt == other
}

// Compare orders values by date part, then by time part. Values carrying the
// default "24:00:00.000" time part have no meaningful order; they compare
// after "23:59:59.999" of the same date, but callers should normalize them
// before ordering.
func (dt Datetime) Compare(other Datetime) int {
	if cmp := dt.datePart.Compare(other.datePart); cmp != 0 {
		return cmp
	}

	return dt.timePart.Compare(other.timePart)
}

func (dt Datetime) Before(other Datetime) bool {
	return dt.Compare(other) < 0
}

func (dt Datetime) After(other Datetime) bool {
	return dt.Compare(other) > 0
}

func (dt *Datetime) normalizeTimeForDate(newDate date.Date) {
	if dt.timePart.IsDefault() && !newDate.IsDefault() {
		dt.timePart = timeofday.Midnight()
	}
}

func (dt *Datetime) effectiveHour() int {
	if hour := dt.timePart.Hour(); hour != timeofday.DefaultHour {
		return hour
	}

	return 0
}
