package ndastro

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// This file contains helpers converting decimal degrees to and from the
// degree:minute:second notation ayanamsa tables are usually published in.

// DMS is an angle split into whole degrees, whole minutes and seconds.
type DMS struct {
	Negative bool
	Deg      int
	Min      int
	Sec      float64
}

// ToDMS splits deg, with seconds rounded to the millisecond of arc.
func ToDMS(deg float64) DMS {
	mas := int64(math.Round(math.Abs(deg) * 3600 * 1000))
	return DMS{
		Negative: deg < 0 && mas != 0,
		Deg:      int(mas / 3600000),
		Min:      int(mas / 60000 % 60),
		Sec:      float64(mas%60000) / 1000,
	}
}

// Float returns the angle in decimal degrees.
func (d DMS) Float() float64 {
	v := float64(d.Deg) + float64(d.Min)/60 + d.Sec/3600
	if d.Negative {
		return -v
	}
	return v
}

// FromDMS converts degrees, minutes and seconds to decimal degrees. The sign
// of deg applies to the whole angle; use DMS.Float for negative angles under
// one degree.
func FromDMS(deg, min int, sec float64) float64 {
	if deg < 0 {
		return DMS{Negative: true, Deg: -deg, Min: min, Sec: sec}.Float()
	}
	return DMS{Deg: deg, Min: min, Sec: sec}.Float()
}

func (d DMS) String() string {
	sign := ""
	if d.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%d°%02d'%06.3f\"", sign, d.Deg, d.Min, d.Sec)
}

// Colon returns the angle as D:M:S, the notation of the published anchors.
func (d DMS) Colon() string {
	sign := ""
	if d.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%d:%02d:%06.3f", sign, d.Deg, d.Min, d.Sec)
}

// ParseDMS parses "D:M:S" or "D:M" into decimal degrees.
func ParseDMS(s string) (float64, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	parts := strings.Split(strings.TrimPrefix(s, "-"), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid D:M:S angle %q", s)
	}
	deg, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid degrees in %q: %w", s, err)
	}
	if deg < 0 || strings.HasPrefix(parts[0], "+") {
		return 0, fmt.Errorf("invalid degrees in %q", s)
	}
	min, err := strconv.Atoi(parts[1])
	if err != nil || min < 0 || min > 59 {
		return 0, fmt.Errorf("invalid minutes in %q", s)
	}
	var sec float64
	if len(parts) == 3 {
		sec, err = strconv.ParseFloat(parts[2], 64)
		if err != nil || sec < 0 || sec >= 60 {
			return 0, fmt.Errorf("invalid seconds in %q", s)
		}
	}
	return DMS{Negative: neg, Deg: deg, Min: min, Sec: sec}.Float(), nil
}
