package sendnotification

import (
	"context"
	"errors"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/domain/notification"
	"medremind/internal/core/services"
	"time"
)

type Input struct {
	Attempt notification.Attempt
}

type Result struct {
	Sent    bool
	Receipt notification.Receipt
}

type service struct {
	log     logging.Logger
	gateway notification.Gateway
	events  notification.EventSink
	now     func() time.Time
}

func New(
	log logging.Logger,
	gateway notification.Gateway,
	events notification.EventSink,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if gateway == nil {
		panic(e.NewNilArgumentError("gateway"))
	}
	if events == nil {
		panic(e.NewNilArgumentError("events"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, gateway: gateway, events: events, now: now}
}

// Run delivers the attempt to the push gateway. Delivery failure is
// terminal for the message: it is logged and reported on the event
// stream, never returned as an error.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	event := notification.Event{
		AttemptID:  input.Attempt.ID,
		ReminderID: input.Attempt.ReminderID,
		At:         s.now(),
	}

	receipt, sendErr := s.gateway.SendPush(ctx, input.Attempt.Message)
	if sendErr != nil {
		entries := []logging.LogEntry{
			logging.Entry("attemptID", input.Attempt.ID),
			logging.Entry("reminderID", input.Attempt.ReminderID),
		}
		gatewayErr := &notification.GatewayError{}
		if errors.As(sendErr, &gatewayErr) {
			entries = append(entries, logging.Entry("code", gatewayErr.Code))
		}
		logging.Error(s.log, ctx, sendErr, entries...)
		event.Error = sendErr.Error()
	} else {
		result.Sent = true
		result.Receipt = receipt
		event.Sent = true
		s.log.Info(
			ctx,
			"Push notification sent.",
			logging.Entry("attemptID", input.Attempt.ID),
			logging.Entry("reminderID", input.Attempt.ReminderID),
			logging.Entry("receipt", receipt),
		)
	}

	if publishErr := s.events.PublishDispatchEvent(ctx, event); publishErr != nil {
		s.log.Warning(
			ctx,
			"Could not publish dispatch event.",
			logging.Entry("attemptID", input.Attempt.ID),
			logging.Entry("err", publishErr),
		)
	}
	return result, nil
}
