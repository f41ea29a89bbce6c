package listreminders

import (
	"context"
	c "medremind/internal/core/domain/common"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/domain/reminder"
	"medremind/internal/core/services"
)

type Input struct {
	TokenEquals        c.Optional[string]
	MedicationIDEquals c.Optional[string]
	Limit              c.Optional[uint]
	Offset             uint
}

type Result struct {
	Reminders []reminder.Reminder
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
	reminders, err := s.reminders.Read(
		ctx,
		reminder.ReadOptions{
			TokenEquals:        input.TokenEquals,
			MedicationIDEquals: input.MedicationIDEquals,
			Limit:              input.Limit,
			Offset:             input.Offset,
		},
	)
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("input", input))
		return result, err
	}
	return Result{Reminders: reminders}, nil
}
