package reminder

import (
	c "medremind/internal/core/domain/common"
	"time"
)

type ID int64

type Reminder struct {
	ID           ID
	Token        string
	Title        string
	Body         string
	Hour         c.HourOfDay
	Frequency    Frequency
	DaysOfWeek   []int
	StartDate    c.Optional[c.DateOnly]
	EndDate      c.Optional[c.DateOnly]
	MedicationID string
	CreatedAt    time.Time
}

// IsDueOn reports whether the reminder applies on the given ISO weekday
// (1 is Monday, 7 is Sunday). Unknown frequency values are never due.
func (r Reminder) IsDueOn(isoWeekday int) bool {
	switch r.Frequency {
	case FrequencyDaily:
		return true
	case FrequencyWeekly:
		for _, day := range r.DaysOfWeek {
			if day == isoWeekday {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ActiveOn reports whether date falls within the reminder's inclusive
// start and end bounds. A missing bound does not constrain.
func (r Reminder) ActiveOn(date c.DateOnly) bool {
	if r.StartDate.IsPresent && date < r.StartDate.Value {
		return false
	}
	if r.EndDate.IsPresent && date > r.EndDate.Value {
		return false
	}
	return true
}

// ValidateSchedule checks that a frequency and days-of-week pair is
// storable: weekly schedules need at least one ISO weekday number.
func ValidateSchedule(frequency Frequency, daysOfWeek []int) error {
	if frequency == FrequencyWeekly && len(daysOfWeek) == 0 {
		return ErrDaysOfWeekRequired
	}
	for _, day := range daysOfWeek {
		if day < 1 || day > 7 {
			return ErrInvalidDayOfWeek
		}
	}
	return nil
}

func ValidateDateRange(startDate, endDate c.Optional[c.DateOnly]) error {
	if startDate.IsPresent && endDate.IsPresent && startDate.Value > endDate.Value {
		return ErrInvalidDateRange
	}
	return nil
}

// ISOWeekday maps t to the ISO-8601 weekday number, 1 (Monday)
// through 7 (Sunday).
func ISOWeekday(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		return 7
	}
	return weekday
}
