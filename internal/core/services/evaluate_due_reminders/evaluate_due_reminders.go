package evaluateduereminders

import (
	"context"
	c "medremind/internal/core/domain/common"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/intake"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/domain/notification"
	"medremind/internal/core/domain/reminder"
	"medremind/internal/core/services"
	"time"

	"github.com/golang-module/carbon/v2"
	"github.com/google/uuid"
)

type Input struct {
	At time.Time
}

type Outcome string

const (
	OutcomeDispatched    Outcome = "dispatched"
	OutcomeSkippedNotDue Outcome = "skipped_not_due"
	OutcomeSkippedTaken  Outcome = "skipped_taken"
	OutcomeError         Outcome = "error"
)

type ReminderOutcome struct {
	ReminderID reminder.ID
	Outcome    Outcome
}

type Result struct {
	// Evaluated is false when the pass was a no-op (not at the top
	// of the hour).
	Evaluated bool
	Outcomes  []ReminderOutcome
}

func (r Result) DispatchedCount() int {
	count := 0
	for _, outcome := range r.Outcomes {
		if outcome.Outcome == OutcomeDispatched {
			count++
		}
	}
	return count
}

type service struct {
	log        logging.Logger
	reminders  reminder.Repository
	intakes    intake.Repository
	dispatcher notification.Dispatcher
	policy     reminder.HourMatchPolicy
}

func New(
	log logging.Logger,
	reminders reminder.Repository,
	intakes intake.Repository,
	dispatcher notification.Dispatcher,
	policy reminder.HourMatchPolicy,
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
	if dispatcher == nil {
		panic(e.NewNilArgumentError("dispatcher"))
	}
	return &service{
		log:        log,
		reminders:  reminders,
		intakes:    intakes,
		dispatcher: dispatcher,
		policy:     policy,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	at := carbon.Time2Carbon(input.At)
	if at.Minute() != 0 {
		s.log.Debug(
			ctx,
			"Not at the top of the hour, skipping evaluation pass.",
			logging.Entry("minute", at.Minute()),
		)
		return result, nil
	}

	hour := c.HourOfDay(at.Format("H:i"))
	today := c.DateOnly(at.ToDateString())
	isoWeekday := reminder.ISOWeekday(input.At)

	dueReminders, err := s.reminders.ReadDue(
		ctx,
		reminder.DueQuery{Hour: hour, Today: today, Policy: s.policy},
	)
	if err != nil {
		logging.Error(s.log, ctx, err, logging.Entry("hour", hour), logging.Entry("today", today))
		return result, err
	}
	result.Evaluated = true
	s.log.Info(
		ctx,
		"Got reminders for the current hour.",
		logging.Entry("hour", hour),
		logging.Entry("today", today),
		logging.Entry("policy", s.policy),
		logging.Entry("count", len(dueReminders)),
	)

	for _, rem := range dueReminders {
		outcome := s.evaluateReminder(ctx, rem, isoWeekday, today)
		result.Outcomes = append(result.Outcomes, ReminderOutcome{ReminderID: rem.ID, Outcome: outcome})
	}

	s.log.Info(
		ctx,
		"Evaluation pass finished.",
		logging.Entry("hour", hour),
		logging.Entry("evaluatedCount", len(result.Outcomes)),
		logging.Entry("dispatchedCount", result.DispatchedCount()),
	)
	return result, nil
}

func (s *service) evaluateReminder(
	ctx context.Context,
	rem reminder.Reminder,
	isoWeekday int,
	today c.DateOnly,
) Outcome {
	if !rem.IsDueOn(isoWeekday) {
		return OutcomeSkippedNotDue
	}

	key := intake.Key{MedicationID: rem.MedicationID, Date: today, Hour: rem.Hour}
	isTaken, err := s.intakes.IsTaken(ctx, key)
	if err != nil {
		// A failed dedup check drops the reminder for this cycle
		// rather than risking a duplicate notification.
		logging.Error(s.log, ctx, err, logging.Entry("reminderID", rem.ID), logging.Entry("stage", "dedup"))
		return OutcomeError
	}
	if isTaken {
		s.log.Info(
			ctx,
			"Dose already taken, notification suppressed.",
			logging.Entry("reminderID", rem.ID),
			logging.Entry("medicationID", rem.MedicationID),
			logging.Entry("hour", rem.Hour),
		)
		return OutcomeSkippedTaken
	}

	attempt := notification.Attempt{
		ID:         uuid.NewString(),
		ReminderID: int64(rem.ID),
		Message: notification.Message{
			Token: rem.Token,
			Title: rem.Title,
			Body:  rem.Body,
			Data: map[string]string{
				"medication_id": rem.MedicationID,
				"hora":          rem.Hour.String(),
				"type":          "medication_reminder",
			},
		},
	}
	if err := s.dispatcher.DispatchNotification(ctx, attempt); err != nil {
		logging.Error(
			s.log,
			ctx,
			err,
			logging.Entry("reminderID", rem.ID),
			logging.Entry("attemptID", attempt.ID),
			logging.Entry("stage", "dispatch"),
		)
		return OutcomeError
	}

	s.log.Info(
		ctx,
		"Reminder notification dispatched.",
		logging.Entry("reminderID", rem.ID),
		logging.Entry("attemptID", attempt.ID),
		logging.Entry("hour", rem.Hour),
	)
	return OutcomeDispatched
}
