package updatereminder

import (
	"context"
	"errors"
	c "medremind/internal/core/domain/common"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/domain/reminder"
	"medremind/internal/core/services"
)

type Input struct {
	ReminderID        reminder.ID
	DoTokenUpdate     bool
	Token             string
	DoTitleUpdate     bool
	Title             string
	DoBodyUpdate      bool
	Body              string
	DoHourUpdate      bool
	Hour              c.HourOfDay
	DoFrequencyUpdate bool
	Frequency         reminder.Frequency
	DaysOfWeek        []int
	DoStartDateUpdate bool
	StartDate         c.Optional[c.DateOnly]
	DoEndDateUpdate   bool
	EndDate           c.Optional[c.DateOnly]
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log       logging.Logger
	reminders reminder.Repository
}

func New(
	log logging.Logger,
	reminders reminder.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminders == nil {
		panic(e.NewNilArgumentError("reminders"))
	}
	return &service{log: log, reminders: reminders}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := s.validate(ctx, input); err != nil {
		return result, err
	}

	daysOfWeek := input.DaysOfWeek
	if input.DoFrequencyUpdate && input.Frequency == reminder.FrequencyDaily {
		daysOfWeek = nil
	}
	updatedReminder, err := s.reminders.Update(
		ctx,
		reminder.UpdateInput{
			ID:                input.ReminderID,
			DoTokenUpdate:     input.DoTokenUpdate,
			Token:             input.Token,
			DoTitleUpdate:     input.DoTitleUpdate,
			Title:             input.Title,
			DoBodyUpdate:      input.DoBodyUpdate,
			Body:              input.Body,
			DoHourUpdate:      input.DoHourUpdate,
			Hour:              input.Hour,
			DoFrequencyUpdate: input.DoFrequencyUpdate,
			Frequency:         input.Frequency,
			DaysOfWeek:        daysOfWeek,
			DoStartDateUpdate: input.DoStartDateUpdate,
			StartDate:         input.StartDate,
			DoEndDateUpdate:   input.DoEndDateUpdate,
			EndDate:           input.EndDate,
		},
	)
	if errors.Is(err, reminder.ErrReminderDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("reminderID", input.ReminderID))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder updated.",
		logging.Entry("reminderID", updatedReminder.ID),
		logging.Entry("hour", updatedReminder.Hour),
		logging.Entry("frequency", updatedReminder.Frequency),
	)
	return Result{Reminder: updatedReminder}, nil
}

// validate checks the updated schedule against the stored reminder so
// a partial update cannot leave an unsatisfiable combination behind.
func (s *service) validate(ctx context.Context, input Input) error {
	if input.DoFrequencyUpdate {
		if err := reminder.ValidateSchedule(input.Frequency, input.DaysOfWeek); err != nil {
			return err
		}
	}
	if !input.DoStartDateUpdate && !input.DoEndDateUpdate {
		return nil
	}

	current, err := s.reminders.GetByID(ctx, input.ReminderID)
	if errors.Is(err, reminder.ErrReminderDoesNotExist) {
		return err
	}
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("reminderID", input.ReminderID))
		return err
	}
	startDate := current.StartDate
	if input.DoStartDateUpdate {
		startDate = input.StartDate
	}
	endDate := current.EndDate
	if input.DoEndDateUpdate {
		endDate = input.EndDate
	}
	return reminder.ValidateDateRange(startDate, endDate)
}
