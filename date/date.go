// SPDX-License-Identifier: ice License 1.0

package date

import (
	"fmt"
	stdlibtime "time"

	"github.com/pkg/errors"

	"github.com/ice-blockchain/chrono/bstream"
	"github.com/ice-blockchain/chrono/log"
	"github.com/ice-blockchain/chrono/terror"
)

func New(year, month, day int) (Date, error) {
	if !IsValidYearMonthDay(year, month, day) {
		return Date{}, terror.New(ErrInvalidDate, map[string]any{"year": year, "month": month, "day": day})
	}

	return Date{offsetDays: serialFromYearMonthDay(year, month, day) - minSerial}, nil
}

func UnsafeNew(year, month, day int) Date {
	res, err := New(year, month, day)
	log.Panic(err) //nolint:revive // Intended.

	return res
}

func NewYearDay(year, dayOfYear int) (Date, error) {
	if !IsValidYearDay(year, dayOfYear) {
		return Date{}, terror.New(ErrInvalidDate, map[string]any{"year": year, "dayOfYear": dayOfYear})
	}

	return Date{offsetDays: serialFromYearMonthDay(year, 1, 1) - minSerial + int32(dayOfYear) - 1}, nil
}

func IsValidYearMonthDay(year, month, day int) bool {
	if year < MinYear || year > MaxYear || month < 1 || month > monthsPerYear || day < 1 {
		return false
	}
	limit := daysPerMonth[month]
	if month == 2 && isLeapYear(year) {
		limit = februaryLeapLength
	}

	return day <= limit
}

func IsValidYearDay(year, dayOfYear int) bool {
	if year < MinYear || year > MaxYear || dayOfYear < 1 {
		return false
	}
	limit := daysPerYear
	if isLeapYear(year) {
		limit = daysPerLeapYear
	}

	return dayOfYear <= limit
}

func (d Date) Year() int {
	year, _, _ := yearMonthDayFromSerial(d.serial())

	return year
}

func (d Date) Month() int {
	_, month, _ := yearMonthDayFromSerial(d.serial())

	return month
}

func (d Date) Day() int {
	_, _, day := yearMonthDayFromSerial(d.serial())

	return day
}

func (d Date) YearMonthDay() (year, month, day int) {
	return yearMonthDayFromSerial(d.serial())
}

func (d Date) DayOfYear() int {
	year, month, day := yearMonthDayFromSerial(d.serial())
	doy := daysBeforeMonth[month] + day
	if month > 2 && isLeapYear(year) {
		doy++
	}

	return doy
}

// DayOfWeek follows the proleptic Gregorian calendar, under which 0001-01-01
// falls on a Monday.
func (d Date) DayOfWeek() stdlibtime.Weekday {
	return stdlibtime.Weekday(d.serial() % 7) //nolint:gomnd // Days per week.
}

func (d Date) IsDefault() bool {
	return d.offsetDays == 0
}

// AddDays returns the date shifted by the given (signed) number of days and
// fails with ErrOutOfRange if the result leaves [0001-01-01 .. 9999-12-31].
func (d Date) AddDays(days int) (Date, error) {
	shifted := int64(d.serial()) + int64(days)
	if shifted < int64(minSerial) || shifted > int64(maxSerial) {
		return Date{}, terror.New(ErrOutOfRange, map[string]any{"date": d.String(), "days": days})
	}

	return Date{offsetDays: int32(shifted) - minSerial}, nil
}

// Sub returns the signed number of whole days from other to d.
func (d Date) Sub(other Date) int {
	return int(d.serial() - other.serial())
}

func (d Date) Compare(other Date) int {
	switch {
	case d.offsetDays < other.offsetDays:
		return -1
	case d.offsetDays > other.offsetDays:
		return 1
	default:
		return 0
	}
}

func (d Date) String() string {
	year, month, day := yearMonthDayFromSerial(d.serial())

	return fmt.Sprintf("%04d/%02d/%02d", year, month, day)
}

func Parse(val string) (Date, error) {
	var year, month, day int
	if _, err := fmt.Sscanf(val, "%d/%d/%d", &year, &month, &day); err != nil {
		return Date{}, errors.Wrapf(ErrInvalidDate, "malformed date %q", val)
	}

	return New(year, month, day)
}

// StreamOut writes the date in the given schema version (only 1 is supported,
// a single big-endian 24 bit day serial). An unsupported version invalidates
// the stream without writing anything.
func (d Date) StreamOut(stream *bstream.OutStream, version int) {
	if !stream.IsValid() {
		return
	}
	switch version {
	case streamVersion:
		stream.PutUint24(uint32(d.serial()))
	default:
		stream.Invalidate()
	}
}

// StreamIn is the inverse of StreamOut. The receiver is modified only if the
// whole read succeeds and yields an in-range serial.
func (d *Date) StreamIn(stream *bstream.InStream, version int) {
	if !stream.IsValid() {
		return
	}
	switch version {
	case streamVersion:
		serial := int32(stream.Uint24())
		if !stream.IsValid() {
			return
		}
		if serial < minSerial || serial > maxSerial {
			stream.Invalidate()

			return
		}
		d.offsetDays = serial - minSerial
	default:
		stream.Invalidate()
	}
}

func (d Date) serial() int32 {
	return d.offsetDays + minSerial
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// serialFromYearMonthDay counts days since 0000-12-31, so 0001-01-01 is day 1.
// The shifted-March era arithmetic is Hinnant's civil-days algorithm.
func serialFromYearMonthDay(year, month, day int) int32 {
	shiftedYear := year
	if month <= 2 {
		shiftedYear--
	}
	era := shiftedYear / yearsPerEra
	yearOfEra := shiftedYear - era*yearsPerEra
	monthShifted := (month + 9) % 12 //nolint:gomnd // March becomes month 0.
	dayOfShiftedYear := (153*monthShifted+2)/5 + day - 1
	dayOfEra := yearOfEra*daysPerYear + yearOfEra/4 - yearOfEra/100 + dayOfShiftedYear

	return int32(era*daysPerEra + dayOfEra - daysBeforeMar1 + 1)
}

func yearMonthDayFromSerial(serial int32) (year, month, day int) {
	sinceMar1 := int(serial) - 1 + daysBeforeMar1
	era := sinceMar1 / daysPerEra
	dayOfEra := sinceMar1 - era*daysPerEra
	yearOfEra := (dayOfEra - dayOfEra/1460 + dayOfEra/36524 - dayOfEra/146096) / daysPerYear
	dayOfShiftedYear := dayOfEra - (yearOfEra*daysPerYear + yearOfEra/4 - yearOfEra/100)
	monthShifted := (5*dayOfShiftedYear + 2) / 153
	day = dayOfShiftedYear - (153*monthShifted+2)/5 + 1
	month = monthShifted + 3
	if monthShifted >= 10 {
		month = monthShifted - 9
	}
	year = yearOfEra + era*yearsPerEra
	if month <= 2 {
		year++
	}

	return year, month, day
}
