package consumers

import (
	"context"
	"medremind/internal/app/deps"
	"medremind/internal/app/services"
	dl "medremind/internal/core/domain/logging"
	notificationdispatch "medremind/internal/rabbitmq/consumers/notification_dispatch"
)

func initNotificationDispatchConsumer(deps *deps.Deps, services *services.Services) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqDispatchQueue
	notificationDispatchConsumer := notificationdispatch.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		services.SendNotification,
	)
	if err = notificationDispatchConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps, services *services.Services) func() {
	shutdownNotificationDispatchConsumer := initNotificationDispatchConsumer(deps, services)

	return func() {
		shutdownNotificationDispatchConsumer()
	}
}
