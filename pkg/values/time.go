package values

import (
	"fmt"
	"strings"
	"time"
)

// Go's time.Time always carries a zone, while XSD distinguishes
// offset-carrying from offset-less temporal values. Date, TimeOfDay and
// LocalDateTime fill the gap: they are plain comparable value types with
// ISO 8601 lexical forms, used by the codec's fixed encode dispatch.

// Date is a calendar date without a time or zone (xsd:date).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses an ISO 8601 date such as "1970-01-01".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// String returns the ISO 8601 form of the date.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// TimeOfDay is a wall-clock time with an optional UTC offset (xsd:time).
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int

	// Offset is the UTC offset in seconds east. It is only meaningful
	// when HasOffset is set.
	Offset    int
	HasOffset bool
}

// ParseTimeOfDay parses an ISO 8601 time such as "00:00:00",
// "13:37:00.5Z" or "23:59:59+01:00".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if t, err := time.Parse("15:04:05.999999999Z07:00", s); err == nil {
		_, offset := t.Zone()
		return TimeOfDay{
			Hour:       t.Hour(),
			Minute:     t.Minute(),
			Second:     t.Second(),
			Nanosecond: t.Nanosecond(),
			Offset:     offset,
			HasOffset:  true,
		}, nil
	}

	t, err := time.Parse("15:04:05.999999999", s)
	if err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}, nil
}

// String returns the ISO 8601 form of the time.
func (t TimeOfDay) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d%s", t.Hour, t.Minute, t.Second, fraction(t.Nanosecond))
	if !t.HasOffset {
		return s
	}
	return s + offsetSuffix(t.Offset)
}

// LocalDateTime is a date and wall-clock time without a zone offset
// (xsd:dateTime without a timezone part).
type LocalDateTime struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// ParseLocalDateTime parses an ISO 8601 datetime without an offset, such
// as "1970-01-01T00:00:00".
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	t, err := time.Parse("2006-01-02T15:04:05.999999999", s)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{
		Year:       t.Year(),
		Month:      t.Month(),
		Day:        t.Day(),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}, nil
}

// String returns the ISO 8601 form of the datetime.
func (dt LocalDateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d%s",
		dt.Year, int(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second, fraction(dt.Nanosecond))
}

// In resolves the local datetime in a location, yielding a time.Time.
func (dt LocalDateTime) In(loc *time.Location) time.Time {
	return time.Date(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Nanosecond, loc)
}

// fraction renders a nanosecond count as a trimmed ".123" suffix.
func fraction(nsec int) string {
	if nsec == 0 {
		return ""
	}
	return "." + strings.TrimRight(fmt.Sprintf("%09d", nsec), "0")
}

// offsetSuffix renders a UTC offset in seconds as "Z" or "+hh:mm".
func offsetSuffix(offset int) string {
	if offset == 0 {
		return "Z"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offset/3600, (offset%3600)/60)
}
