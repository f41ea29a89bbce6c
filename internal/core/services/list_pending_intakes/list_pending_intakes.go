package listpendingintakes

import (
	"context"
	c "medremind/internal/core/domain/common"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/intake"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/domain/reminder"
	"medremind/internal/core/services"
	"time"

	"github.com/golang-module/carbon/v2"
)

type Input struct {
	Token string
	Date  c.Optional[c.DateOnly]
}

// PendingIntake is a dose that is scheduled for the requested date and
// has not been confirmed taken.
type PendingIntake struct {
	ReminderID   reminder.ID
	MedicationID string
	Title        string
	Body         string
	Hour         c.HourOfDay
}

type Result struct {
	Date    c.DateOnly
	Pending []PendingIntake
}

type service struct {
	log       logging.Logger
	reminders reminder.Repository
	intakes   intake.Repository
	now       func() time.Time
}

func New(
	log logging.Logger,
	reminders reminder.Repository,
	intakes intake.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminders == nil {
		panic(e.NewNilArgumentError("reminders"))
	}
	if intakes == nil {
		panic(e.NewNilArgumentError("intakes"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, reminders: reminders, intakes: intakes, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	date := input.Date.Value
	if !input.Date.IsPresent {
		date = c.DateOnly(carbon.Time2Carbon(s.now()).ToDateString())
	}
	result.Date = date
	isoWeekday := reminder.ISOWeekday(date.Time())

	activeReminders, err := s.reminders.ReadActiveOn(ctx, date, input.Token)
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("token", input.Token), logging.Entry("date", date))
		return result, err
	}

	for _, rem := range activeReminders {
		if !rem.IsDueOn(isoWeekday) {
			continue
		}
		key := intake.Key{MedicationID: rem.MedicationID, Date: date, Hour: rem.Hour}
		isTaken, err := s.intakes.IsTaken(ctx, key)
		if err != nil {
			logging.Error(s.log, ctx, err, logging.Entry("reminderID", rem.ID), logging.Entry("date", date))
			return result, err
		}
		if isTaken {
			continue
		}
		result.Pending = append(result.Pending, PendingIntake{
			ReminderID:   rem.ID,
			MedicationID: rem.MedicationID,
			Title:        rem.Title,
			Body:         rem.Body,
			Hour:         rem.Hour,
		})
	}
	return result, nil
}
