package http

import (
	"fmt"
	"medremind/internal/app/deps"
	"medremind/internal/app/services"
	listpendingintakes "medremind/internal/http/handlers/intakes/list_pending_intakes"
	recordintake "medremind/internal/http/handlers/intakes/record_intake"
	dispatchevents "medremind/internal/http/handlers/notifications/dispatch_events"
	sendtestnotification "medremind/internal/http/handlers/notifications/send_test_notification"
	createreminder "medremind/internal/http/handlers/reminders/create_reminder"
	deletereminder "medremind/internal/http/handlers/reminders/delete_reminder"
	listreminders "medremind/internal/http/handlers/reminders/list_reminders"
	updatereminder "medremind/internal/http/handlers/reminders/update_reminder"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	reminderRouter := chi.NewRouter()
	reminderRouter.Method(http.MethodPost, "/", createreminder.New(s.CreateReminder))
	reminderRouter.Method(http.MethodGet, "/", listreminders.New(s.ListReminders))
	reminderRouter.Method(http.MethodPatch, "/{reminderID:[0-9]+}", updatereminder.New(s.UpdateReminder))
	reminderRouter.Method(http.MethodDelete, "/{reminderID:[0-9]+}", deletereminder.New(s.DeleteReminder))

	intakesRouter := chi.NewRouter()
	intakesRouter.Method(http.MethodPost, "/", recordintake.New(s.RecordIntake))
	intakesRouter.Method(http.MethodGet, "/pending", listpendingintakes.New(s.ListPendingIntakes))

	notificationsRouter := chi.NewRouter()
	notificationsRouter.Method(http.MethodPost, "/test", sendtestnotification.New(s.SendTestNotification))
	notificationsRouter.Method(http.MethodGet, "/events", dispatchevents.New(deps.Logger, deps.SseServer))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/reminders", reminderRouter)
	router.Mount("/intakes", intakesRouter)
	router.Mount("/notifications", notificationsRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
