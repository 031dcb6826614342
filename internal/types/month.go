// Package types implements value types shared by the models and the API.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Month is a month in a specific year, always stored as the first day of
// the month at 00:00 UTC.
type Month time.Time

var fullDate = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("could not parse month %q, use the YYYY-MM format", s)
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Time returns the first instant of the month.
func (m Month) Time() time.Time {
	return time.Time(m)
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return time.Time(m).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Accepted are RFC3339 timestamps, full dates (2006-01-02) and
// months (2006-01). Everything except year and month is discarded.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := time.RFC3339
	if fullDate.MatchString(value) {
		pattern = time.DateOnly
	} else if len(value) == len("2006-01") {
		pattern = "2006-01"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*m = MonthOf(t)
	return nil
}

// UnmarshalParam implements gin's BindUnmarshaler for URI and query
// parameters in the YYYY-MM format.
func (m *Month) UnmarshalParam(p string) error {
	if p == "" {
		*m = Month{}
		return nil
	}

	parsed, err := ParseMonth(p)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// Scan writes the value from the database.
func (m *Month) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*m = Month(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "date"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return time.Time(m).AddDate(0, 1, -1).Day()
}

// Day returns the given day of the month at 00:00 UTC. Days after the
// end of the month are clamped to the last day, days below 1 to the first.
func (m Month) Day(day int) time.Time {
	day = min(max(day, 1), m.Days())
	return time.Time(m).AddDate(0, 0, day-1)
}

// MonthsUntil returns the number of months from m to n. The result is
// negative if n is before m.
func (m Month) MonthsUntil(n Month) int {
	from, to := time.Time(m), time.Time(n)
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
