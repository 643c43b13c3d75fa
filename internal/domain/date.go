package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CalendarDate is a plain (year, month, day) triple. It carries no time of
// day and no timezone; callers at the boundary must resolve an instant to the
// calendar date the authoring party intended before it reaches this type.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// NewCalendarDate validates the triple against the real calendar, including
// leap-day rules.
func NewCalendarDate(year, month, day int) (CalendarDate, error) {
	if year < 1 {
		return CalendarDate{}, fmt.Errorf("%w: year %d", ErrInvalidRange, year)
	}
	if month < 1 || month > 12 {
		return CalendarDate{}, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidRange)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return CalendarDate{}, fmt.Errorf("%w: day %d out of range for %04d-%02d", ErrInvalidRange, day, year, month)
	}
	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// ParseDate converts a yyyy-mm-dd formatted string into a CalendarDate.
func ParseDate(dateStr string) (CalendarDate, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("%w: expected yyyy-mm-dd, got %q", ErrInvalidRange, dateStr)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: invalid year in %q", ErrInvalidRange, dateStr)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: invalid month in %q", ErrInvalidRange, dateStr)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: invalid day in %q", ErrInvalidRange, dateStr)
	}
	return NewCalendarDate(year, month, day)
}

// DaysInMonth returns the number of days in a given month.
func DaysInMonth(year, month int) int {
	if month == 2 {
		if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
			return 29
		}
		return 28
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}
	return 31
}

// String renders the wire format, yyyy-mm-dd.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// Before orders dates lexicographically on (year, month, day).
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d CalendarDate) After(other CalendarDate) bool {
	return other.Before(d)
}

// Next returns the following calendar day, rolling over months and years.
func (d CalendarDate) Next() CalendarDate {
	if d.Day < DaysInMonth(d.Year, d.Month) {
		return CalendarDate{Year: d.Year, Month: d.Month, Day: d.Day + 1}
	}
	if d.Month < 12 {
		return CalendarDate{Year: d.Year, Month: d.Month + 1, Day: 1}
	}
	return CalendarDate{Year: d.Year + 1, Month: 1, Day: 1}
}

// ordinal returns the count of days since the calendar epoch, used for
// day-difference arithmetic. Standard civil-calendar day numbering.
func (d CalendarDate) ordinal() int {
	y := d.Year
	m := d.Month
	if m <= 2 {
		y--
		m += 12
	}
	return 365*y + y/4 - y/100 + y/400 + (153*(m+1))/5 + d.Day
}

// MarshalJSON writes the date as a plain "yyyy-mm-dd" string.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange is an inclusive span of calendar dates.
type DateRange struct {
	Start CalendarDate `json:"start_date"`
	End   CalendarDate `json:"end_date"`
}

// NewDateRange enforces Start <= End.
func NewDateRange(start, end CalendarDate) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange, start, end)
	}
	return DateRange{Start: start, End: end}, nil
}

// Overlaps reports whether two inclusive ranges share at least one date.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

// Contains reports whether the date falls inside the range, ends included.
func (r DateRange) Contains(d CalendarDate) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// DaysInclusive counts both the start and the end date; minimum 1.
func (r DateRange) DaysInclusive() int {
	return r.End.ordinal() - r.Start.ordinal() + 1
}

// Dates enumerates every date in the range, in order.
func (r DateRange) Dates() []CalendarDate {
	dates := make([]CalendarDate, 0, r.DaysInclusive())
	for d := r.Start; !d.After(r.End); d = d.Next() {
		dates = append(dates, d)
	}
	return dates
}
