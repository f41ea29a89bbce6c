package main

import (
	"context"
	"medremind/internal/app/deps"
	"medremind/internal/app/services"
	"medremind/internal/core/domain/logging"
	evaluateduereminders "medremind/internal/core/services/evaluate_due_reminders"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	ticker := time.NewTicker(deps.Config.TickPeriod)
	defer ticker.Stop()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Starting periodic reminder evaluation.",
		logging.Entry("periodMinutes", (deps.Config.TickPeriod).Minutes()),
		logging.Entry("hourMatchPolicy", deps.Config.HourMatchPolicy),
	)

loop:
	for {
		select {
		case <-stopCh:
			log.Info(context.Background(), "Stopping periodic reminder evaluation.")
			break loop
		case at := <-ticker.C:
			result, err := services.EvaluateDueReminders.Run(
				context.Background(),
				evaluateduereminders.Input{At: at.UTC()},
			)
			if err != nil {
				log.Error(context.Background(), "Evaluation pass returned an error.", logging.Entry("err", err))
				continue
			}
			if result.Evaluated {
				log.Info(
					context.Background(),
					"Evaluation pass finished.",
					logging.Entry("evaluated", len(result.Outcomes)),
					logging.Entry("dispatched", result.DispatchedCount()),
				)
			}
		}
	}
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
