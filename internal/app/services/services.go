package services

import (
	"medremind/internal/app/deps"
	drl "medremind/internal/core/domain/rate_limiter"
	"medremind/internal/core/services"
	createreminder "medremind/internal/core/services/create_reminder"
	deletereminder "medremind/internal/core/services/delete_reminder"
	evaluateduereminders "medremind/internal/core/services/evaluate_due_reminders"
	listpendingintakes "medremind/internal/core/services/list_pending_intakes"
	listreminders "medremind/internal/core/services/list_reminders"
	ratelimiting "medremind/internal/core/services/rate_limiting"
	recordintake "medremind/internal/core/services/record_intake"
	sendnotification "medremind/internal/core/services/send_notification"
	sendtestnotification "medremind/internal/core/services/send_test_notification"
	updatereminder "medremind/internal/core/services/update_reminder"
)

type Services struct {
	CreateReminder services.Service[createreminder.Input, createreminder.Result]
	ListReminders  services.Service[listreminders.Input, listreminders.Result]
	UpdateReminder services.Service[updatereminder.Input, updatereminder.Result]
	DeleteReminder services.Service[deletereminder.Input, deletereminder.Result]

	RecordIntake       services.Service[recordintake.Input, recordintake.Result]
	ListPendingIntakes services.Service[listpendingintakes.Input, listpendingintakes.Result]

	EvaluateDueReminders services.Service[evaluateduereminders.Input, evaluateduereminders.Result]
	SendNotification     services.Service[sendnotification.Input, sendnotification.Result]
	SendTestNotification services.Service[sendtestnotification.Input, sendtestnotification.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.CreateReminder = createreminder.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.Now,
	)
	s.ListReminders = listreminders.New(
		deps.Logger,
		deps.ReminderRepository,
	)
	s.UpdateReminder = updatereminder.New(
		deps.Logger,
		deps.ReminderRepository,
	)
	s.DeleteReminder = deletereminder.New(
		deps.Logger,
		deps.ReminderRepository,
	)

	s.RecordIntake = recordintake.New(
		deps.Logger,
		deps.IntakeRepository,
		deps.Now,
	)
	s.ListPendingIntakes = listpendingintakes.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.IntakeRepository,
		deps.Now,
	)

	s.EvaluateDueReminders = evaluateduereminders.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.IntakeRepository,
		deps.NotificationDispatcher,
		deps.HourMatchPolicy,
	)
	s.SendNotification = sendnotification.New(
		deps.Logger,
		deps.NotificationGateway,
		deps.DispatchEventSink,
		deps.Now,
	)
	s.SendTestNotification = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		sendtestnotification.New(
			deps.Logger,
			deps.NotificationGateway,
		),
	)

	return s
}
