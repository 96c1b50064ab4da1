// Package ndastro computes the ayanamsa, the offset in degrees between the
// tropical and the sidereal zodiac, for sixteen named reference systems.
//
// Every system shares one secular precession series (see EvaluateB6) and only
// differs by its anchor, the ayanamsa at J2000.0:
//
//	ayanamsa = anchor + B6Degrees(EvaluateB6(T))
//
// where T is the number of Julian centuries between J2000.0 and the instant.
// All functions are pure and safe for concurrent use.
package ndastro

import (
	"time"

	"github.com/dhuruvah-apps/ndastro-core/julian"
)

// Date is a proleptic Gregorian calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the UTC calendar date of t.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: m, Day: d}
}

// Validate returns an *InvalidDateError when the date does not exist in the
// Gregorian calendar or falls outside julian.MinYear..julian.MaxYear.
func (d Date) Validate() error {
	switch {
	case !julian.InRange(d.Year):
		return &InvalidDateError{Year: d.Year, Month: d.Month, Day: d.Day, Reason: "year out of supported range"}
	case d.Month < time.January || d.Month > time.December:
		return &InvalidDateError{Year: d.Year, Month: d.Month, Day: d.Day, Reason: "month out of range"}
	}
	//time.Date normalizes overflowing days, any changed field means the day does not exist
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	if t.Year() != d.Year || t.Month() != d.Month || t.Day() != d.Day {
		return &InvalidDateError{Year: d.Year, Month: d.Month, Day: d.Day, Reason: "day out of range"}
	}
	return nil
}

func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// Time returns the instant at hour:min UTC of the date.
func (d Date) Time(hour, min int) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, min, 0, 0, time.UTC)
}

// TimeOffset returns the Julian centuries between J2000.0 and t, the input of
// EvaluateB6. Only the UTC year is range checked, the time of day is kept.
func TimeOffset(t time.Time) (float64, error) {
	if err := DateOf(t).Validate(); err != nil {
		return 0, err
	}
	return julian.Centuries(t), nil
}

// Ayanamsa returns the ayanamsa of system s at instant t in degrees. The value
// is not wrapped into [0, 360).
func Ayanamsa(s System, t time.Time) (float64, error) {
	anchor, err := s.Anchor()
	if err != nil {
		return 0, err
	}
	T, err := TimeOffset(t)
	if err != nil {
		return 0, err
	}
	return anchor + B6Degrees(EvaluateB6(T)), nil
}

// Result is one evaluated (system, instant) pair.
type Result struct {
	System  System    `json:"-"`
	Name    string    `json:"system"`
	Time    time.Time `json:"time"`
	Degrees float64   `json:"degrees"`
}

// AyanamsaAll evaluates every registered system at t, in registry order.
func AyanamsaAll(t time.Time) ([]Result, error) {
	T, err := TimeOffset(t)
	if err != nil {
		return nil, err
	}
	precession := B6Degrees(EvaluateB6(T))
	systems := Systems()
	out := make([]Result, len(systems))
	for i, s := range systems {
		out[i] = Result{System: s, Name: s.String(), Time: t, Degrees: registry[s].anchor + precession}
	}
	return out, nil
}
