package recordintake

import (
	"context"
	c "medremind/internal/core/domain/common"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/intake"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/services"
	"time"
)

type Input struct {
	MedicationID string
	Date         c.DateOnly
	Hour         c.HourOfDay
	Taken        bool
}

type Result struct {
	Intake intake.Intake
}

type service struct {
	log     logging.Logger
	intakes intake.Repository
	now     func() time.Time
}

func New(
	log logging.Logger,
	intakes intake.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if intakes == nil {
		panic(e.NewNilArgumentError("intakes"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, intakes: intakes, now: now}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	recorded, err := s.intakes.Create(
		ctx,
		intake.CreateInput{
			MedicationID: input.MedicationID,
			Date:         input.Date,
			Hour:         input.Hour,
			Taken:        input.Taken,
			TakenAt:      s.now(),
		},
	)
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Intake recorded.",
		logging.Entry("medicationID", recorded.MedicationID),
		logging.Entry("date", recorded.Date),
		logging.Entry("hour", recorded.Hour),
		logging.Entry("taken", recorded.Taken),
	)
	return Result{Intake: recorded}, nil
}
