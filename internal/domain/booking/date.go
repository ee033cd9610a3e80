package booking

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	ErrInvalidDateText  = errors.New("date must match YYYY-MM-DD")
	ErrNonexistentDate  = errors.New("date does not exist in the calendar")
	ErrInvalidStayRange = errors.New("invalid date range")
)

var dateTextPattern = regexp.MustCompile(`^\s*(\d{4})-(\d{2})-(\d{2})\s*$`)

// DateValue is a calendar date with no time-of-day component.
type DateValue struct {
	year  int
	month time.Month
	day   int
}

// ParseDate accepts exactly YYYY-MM-DD (optional surrounding whitespace).
// A string that names a day the calendar does not contain is rejected rather
// than normalized, so 2023-02-30 never rolls over into March.
func ParseDate(text string) (DateValue, error) {
	m := dateTextPattern.FindStringSubmatch(text)
	if m == nil {
		return DateValue{}, ErrInvalidDateText
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	if month < 1 || month > 12 {
		return DateValue{}, ErrInvalidDateText
	}
	if day < 1 || day > 31 {
		return DateValue{}, ErrInvalidDateText
	}

	normalized := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if normalized.Year() != year || normalized.Month() != time.Month(month) || normalized.Day() != day {
		return DateValue{}, ErrNonexistentDate
	}

	return DateValue{year: year, month: time.Month(month), day: day}, nil
}

// DateOf truncates an instant to its calendar date.
func DateOf(t time.Time) DateValue {
	return DateValue{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d DateValue) Year() int         { return d.year }
func (d DateValue) Month() time.Month { return d.month }
func (d DateValue) Day() int          { return d.day }

func (d DateValue) IsZero() bool {
	return d == DateValue{}
}

// String re-emits the canonical YYYY-MM-DD form, so ParseDate(d.String()) == d.
func (d DateValue) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Time returns the date as a midnight UTC instant, the serialization used for
// persisted stay ranges.
func (d DateValue) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d DateValue) AddDays(days int) DateValue {
	return DateOf(d.Time().AddDate(0, 0, days))
}

func (d DateValue) Before(other DateValue) bool {
	return d.Time().Before(other.Time())
}

func (d DateValue) After(other DateValue) bool {
	return d.Time().After(other.Time())
}

// DaysUntil returns the whole-day difference from d to other.
func (d DateValue) DaysUntil(other DateValue) int {
	return int(other.Time().Sub(d.Time()) / (24 * time.Hour))
}

// StayRange is a pair of calendar dates where check-out is strictly later
// than check-in.
type StayRange struct {
	checkIn  DateValue
	checkOut DateValue
}

func NewStayRange(checkIn, checkOut DateValue) (StayRange, error) {
	if !checkOut.After(checkIn) {
		return StayRange{}, ErrInvalidStayRange
	}
	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}

func (r StayRange) CheckIn() DateValue  { return r.checkIn }
func (r StayRange) CheckOut() DateValue { return r.checkOut }

// Nights is the whole-day difference between check-out and check-in; for any
// valid StayRange it is at least 1.
func (r StayRange) Nights() int {
	return r.checkIn.DaysUntil(r.checkOut)
}
