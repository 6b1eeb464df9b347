package model

import (
	"encoding/json"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. Its JSON form is
// an ISO date string (YYYY-MM-DD). Optional dates are represented as *Date
// so that absence is explicit rather than a zero value.
type Date struct {
	time.Time
}

// NewDate constructs a Date in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// AddYears shifts the date by n whole calendar years, keeping month and day.
// Feb 29 normalizes forward per time.AddDate.
func (d Date) AddYears(n int) Date {
	return Date{d.Time.AddDate(n, 0, 0)}
}

func (d Date) String() string { return d.Time.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
