package ndastro

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate   = errors.New("invalid date")            //Returned for malformed or out of range calendar dates
	ErrUnknownSystem = errors.New("unknown ayanamsa system") //Returned for identifiers outside the registry
)

// InvalidDateError describes a date that cannot be normalized.
// It matches ErrInvalidDate with errors.Is.
type InvalidDateError struct {
	Year   int
	Month  time.Month
	Day    int
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s %04d-%02d-%02d: %s", ErrInvalidDate, e.Year, int(e.Month), e.Day, e.Reason)
}

func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// UnknownSystemError carries the identifier that failed to resolve, either the
// raw name passed to ParseSystem or the out of range System value.
type UnknownSystemError struct {
	Name   string
	System System
}

func (e *UnknownSystemError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %q", ErrUnknownSystem, e.Name)
	}
	return fmt.Sprintf("%s: %d", ErrUnknownSystem, int(e.System))
}

func (e *UnknownSystemError) Is(target error) bool {
	return target == ErrUnknownSystem
}
