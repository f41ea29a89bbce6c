package notificationdispatcher

import (
	"context"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/domain/notification"
	"medremind/internal/rabbitmq"
	"medremind/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type RabbitMQ struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, queue string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	return &RabbitMQ{log: log, channel: channel, queue: queue}
}

func (d *RabbitMQ) DispatchNotification(ctx context.Context, attempt notification.Attempt) error {
	message := schema.DispatchMessage{
		AttemptID:  attempt.ID,
		ReminderID: attempt.ReminderID,
		Token:      attempt.Message.Token,
		Title:      attempt.Message.Title,
		Body:       attempt.Message.Body,
		Data:       attempt.Message.Data,
	}
	body, err := message.Marshal()
	if err != nil {
		return err
	}

	// Attempts are ephemeral, so messages are not persisted: a broker
	// restart drops queued attempts instead of replaying stale ones.
	err = d.channel.PublishWithContext(ctx, "", d.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Transient,
		Body:         body,
	})
	if err != nil {
		logging.Error(d.log, ctx, err, logging.Entry("attemptID", attempt.ID))
		return err
	}

	d.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("queue", d.queue),
		logging.Entry("attemptID", attempt.ID),
		logging.Entry("reminderID", attempt.ReminderID),
	)
	return nil
}
