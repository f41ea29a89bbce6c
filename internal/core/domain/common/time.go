package common

import (
	"errors"
	"time"
)

const (
	HourOfDayLayout = "15:04"
	DateOnlyLayout  = "2006-01-02"
)

var (
	ErrInvalidHourOfDay = errors.New("hour must be in HH:MM format")
	ErrInvalidDateOnly  = errors.New("date must be in YYYY-MM-DD format")
)

// HourOfDay is a wall-clock hour and minute ("HH:MM", 24-hour).
type HourOfDay string

func ParseHourOfDay(raw string) (HourOfDay, error) {
	if len(raw) != len(HourOfDayLayout) {
		return "", ErrInvalidHourOfDay
	}
	if _, err := time.Parse(HourOfDayLayout, raw); err != nil {
		return "", ErrInvalidHourOfDay
	}
	return HourOfDay(raw), nil
}

func (h HourOfDay) String() string {
	return string(h)
}

// HourPrefix returns the "HH" part.
func (h HourOfDay) HourPrefix() string {
	if len(h) < 2 {
		return string(h)
	}
	return string(h)[:2]
}

// DateOnly is a calendar date ("YYYY-MM-DD") with no time component.
type DateOnly string

func ParseDateOnly(raw string) (DateOnly, error) {
	if len(raw) != len(DateOnlyLayout) {
		return "", ErrInvalidDateOnly
	}
	if _, err := time.Parse(DateOnlyLayout, raw); err != nil {
		return "", ErrInvalidDateOnly
	}
	return DateOnly(raw), nil
}

func (d DateOnly) String() string {
	return string(d)
}

func (d DateOnly) Time() time.Time {
	t, _ := time.Parse(DateOnlyLayout, string(d))
	return t
}
