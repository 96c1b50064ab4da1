package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ndastro "github.com/dhuruvah-apps/ndastro-core"
	"github.com/dhuruvah-apps/ndastro-core/almanac"
)

// Accepted --date layouts. Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseWhen parses a --date value, an empty value means now.
func parseWhen(value string, now func() time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return now().UTC(), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse %q, use YYYY-MM-DD or RFC3339", ndastro.ErrInvalidDate, value)
}

// errorCode maps library errors onto CLI error codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, ndastro.ErrInvalidDate):
		return ErrCodeInvalidDate
	case errors.Is(err, ndastro.ErrUnknownSystem):
		return ErrCodeUnknownSystem
	case errors.Is(err, almanac.ErrNoSunriseSunset):
		return ErrCodeNoSunrise
	default:
		return ErrCodeInvalidInput
	}
}
