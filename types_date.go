package vipani

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Today returns the current date in UTC.
func Today() Date { return NewDate(time.Now().UTC().Date()) }

// ParseDate parses a Date from a string. It is lenient and accepts formats
// like "2025-7-1", and relative day offsets like "0d" or "-3d".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)

	// Relative day offsets are handy on the command line.
	if strings.HasSuffix(str, "d") {
		n, err := strconv.Atoi(strings.TrimSuffix(str, "d"))
		if err == nil {
			return Today().Add(n), nil
		}
	}

	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	day, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = day
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Datetime represents an instant with second granularity, persisted as an
// RFC 3339 string in UTC. The zero value means "not set" and is omitted from
// the encoded book.
type Datetime struct {
	t time.Time
}

// NewDatetime returns a Datetime for the given instant, normalized to UTC.
func NewDatetime(t time.Time) Datetime {
	if t.IsZero() {
		return Datetime{}
	}
	return Datetime{t: t.UTC().Truncate(time.Second)}
}

// Time returns the underlying instant.
func (d Datetime) Time() time.Time { return d.t }

// IsZero returns true if the datetime is not set.
func (d Datetime) IsZero() bool { return d.t.IsZero() }

// Day returns the UTC calendar day of the instant.
//
// Matching on this day is equivalent to the historical ISO-string prefix
// match of the backup format, which is timezone-agnostic by construction.
func (d Datetime) Day() Date { return NewDate(d.t.Date()) }

// Before reports whether the instant d is before x.
func (d Datetime) Before(x Datetime) bool { return d.t.Before(x.t) }

// After reports whether the instant d is after x.
func (d Datetime) After(x Datetime) bool { return d.t.After(x.t) }

// String formats the datetime in RFC 3339.
func (d Datetime) String() string { return d.t.Format(time.RFC3339) }

// ParseDatetime parses an RFC 3339 string, with or without fractional
// seconds, into a Datetime.
func ParseDatetime(str string) (Datetime, error) {
	t, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return Datetime{}, fmt.Errorf("invalid datetime %q: %w", str, err)
	}
	return NewDatetime(t), nil
}

// MarshalJSON implements the json.Marshaler interface for Datetime.
func (d Datetime) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// UnmarshalJSON implements the json.Unmarshaler interface for Datetime.
func (d *Datetime) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	dt, err := ParseDatetime(str)
	if err != nil {
		return err
	}
	*d = dt
	return nil
}
