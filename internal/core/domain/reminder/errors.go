package reminder

import "errors"

var ErrReminderDoesNotExist = errors.New("reminder does not exist")
var ErrInvalidFrequency = errors.New("frequency must be either daily or weekly")
var ErrDaysOfWeekRequired = errors.New("weekly reminder must define at least one day of week")
var ErrInvalidDayOfWeek = errors.New("day of week must be within 1 (Monday) to 7 (Sunday)")
var ErrInvalidDateRange = errors.New("start date must not be after end date")
