// Package julian converts proleptic Gregorian calendar instants to Julian dates
// and to Julian centuries elapsed since the J2000.0 epoch.
package julian

import (
	"math"
	"time"

	"github.com/carlosjhr64/jd"
)

const (
	// J2000 is the Julian date of 2000-01-01T12:00.
	J2000 = 2451545.0

	// J2000DayNumber is the integer Julian day number of 2000-01-01.
	J2000DayNumber = 2451545

	DaysPerCentury = 36525.0
	SecondsPerDay  = 86400.0

	// MinYear and MaxYear bound the supported calendar range.
	MinYear = -4712
	MaxYear = 9999
)

// Epoch is J2000.0 as a time.Time.
var Epoch = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// DayNumber returns the Julian day number of the given Gregorian date.
// The day number changes at noon, so it is the JD of that date at 12:00.
// jd.YMD2J(2006, 1, 2) == 2453738
func DayNumber(year int, month time.Month, day int) int {
	return jd.YMD2J(year, int(month), day)
}

// InRange reports whether year lies in the supported calendar range.
func InRange(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// dayFraction returns the offset of t from noon of its calendar day, in days.
func dayFraction(t time.Time) float64 {
	secs := float64(t.Hour()*3600+t.Minute()*60+t.Second()) + float64(t.Nanosecond())/1e9
	return (secs - SecondsPerDay/2) / SecondsPerDay
}

// FromTime returns the Julian date of t. Times outside UTC are converted first.
func FromTime(t time.Time) float64 {
	t = t.UTC()
	y, m, d := t.Date()
	return float64(DayNumber(y, m, d)) + dayFraction(t)
}

// DaysSinceJ2000 returns the signed number of days between J2000.0 and t.
// The integer part is taken as a day-number difference, so J2000.0 itself
// yields exactly zero.
func DaysSinceJ2000(t time.Time) float64 {
	t = t.UTC()
	y, m, d := t.Date()
	return float64(DayNumber(y, m, d)-J2000DayNumber) + dayFraction(t)
}

// Centuries returns the Julian centuries elapsed between J2000.0 and t,
// negative for instants before the epoch.
func Centuries(t time.Time) float64 {
	return DaysSinceJ2000(t) / DaysPerCentury
}

// CenturiesAtMidnight returns the Julian centuries at 00:00 UTC of the date.
func CenturiesAtMidnight(year int, month time.Month, day int) float64 {
	return (float64(DayNumber(year, month, day)-J2000DayNumber) - 0.5) / DaysPerCentury
}

// ToTime converts a Julian date back to a UTC time, rounded to the microsecond.
func ToTime(julianDate float64) time.Time {
	shifted := julianDate + 0.5
	day := math.Floor(shifted)
	y, m, d := jd.J2YMD(int(day))
	frac := shifted - day
	usec := math.Round(frac * SecondsPerDay * 1e6)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(usec) * time.Microsecond)
}
