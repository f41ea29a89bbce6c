package deletereminder

import (
	"context"
	"errors"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/domain/reminder"
	"medremind/internal/core/services"
)

type Input struct {
	ReminderID reminder.ID
}

type Result struct{}

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
	err = s.reminders.Delete(ctx, input.ReminderID)
	if errors.Is(err, reminder.ErrReminderDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("reminderID", input.ReminderID))
		return result, err
	}

	s.log.Info(ctx, "Reminder deleted.", logging.Entry("reminderID", input.ReminderID))
	return result, nil
}
