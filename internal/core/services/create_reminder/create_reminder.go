package createreminder

import (
	"context"
	c "medremind/internal/core/domain/common"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/domain/reminder"
	"medremind/internal/core/services"
	"time"
)

type Input struct {
	Token        string
	Title        string
	Body         string
	Hour         c.HourOfDay
	Frequency    reminder.Frequency
	DaysOfWeek   []int
	StartDate    c.Optional[c.DateOnly]
	EndDate      c.Optional[c.DateOnly]
	MedicationID string
}

func (i Input) Validate() error {
	if err := reminder.ValidateSchedule(i.Frequency, i.DaysOfWeek); err != nil {
		return err
	}
	return reminder.ValidateDateRange(i.StartDate, i.EndDate)
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log       logging.Logger
	reminders reminder.Repository
	now       func() time.Time
}

func New(
	log logging.Logger,
	reminders reminder.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminders == nil {
		panic(e.NewNilArgumentError("reminders"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, reminders: reminders, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		return result, err
	}

	daysOfWeek := input.DaysOfWeek
	if input.Frequency == reminder.FrequencyDaily {
		daysOfWeek = nil
	}
	createdReminder, err := s.reminders.Create(
		ctx,
		reminder.CreateInput{
			Token:        input.Token,
			Title:        input.Title,
			Body:         input.Body,
			Hour:         input.Hour,
			Frequency:    input.Frequency,
			DaysOfWeek:   daysOfWeek,
			StartDate:    input.StartDate,
			EndDate:      input.EndDate,
			MedicationID: input.MedicationID,
			CreatedAt:    s.now(),
		},
	)
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"New reminder created.",
		logging.Entry("reminderID", createdReminder.ID),
		logging.Entry("medicationID", createdReminder.MedicationID),
		logging.Entry("hour", createdReminder.Hour),
		logging.Entry("frequency", createdReminder.Frequency),
	)
	return Result{Reminder: createdReminder}, nil
}
