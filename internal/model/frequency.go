package model

import "fmt"

// Frequency is a compounding convention. The six discrete conventions map to a
// fixed number of compounding periods per year; continuous compounding is the
// limiting case and is computed with a separate closed form.
type Frequency string

const (
	Annually     Frequency = "annually"
	SemiAnnually Frequency = "semi-annually"
	Quarterly    Frequency = "quarterly"
	Monthly      Frequency = "monthly"
	Weekly       Frequency = "weekly"
	Daily        Frequency = "daily"
	Continuously Frequency = "continuously"
)

var periodsPerYear = map[Frequency]int{
	Annually:     1,
	SemiAnnually: 2,
	Quarterly:    4,
	Monthly:      12,
	Weekly:       52,
	Daily:        365,
}

// Frequencies returns all supported conventions in canonical order.
func Frequencies() []Frequency {
	return []Frequency{Annually, SemiAnnually, Quarterly, Monthly, Weekly, Daily, Continuously}
}

// ParseFrequency validates a user-supplied frequency string.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown compounding frequency: %q", s)
	}
	return f, nil
}

// Valid reports whether f is one of the seven recognized conventions.
func (f Frequency) Valid() bool {
	if f == Continuously {
		return true
	}
	_, ok := periodsPerYear[f]
	return ok
}

// Continuous reports whether f is the continuous-compounding convention.
func (f Frequency) Continuous() bool { return f == Continuously }

// PeriodsPerYear returns the number of compounding periods per year.
// The second return is false for continuous compounding, which has no
// finite period count.
func (f Frequency) PeriodsPerYear() (int, bool) {
	n, ok := periodsPerYear[f]
	return n, ok
}
