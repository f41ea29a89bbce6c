package notificationdispatch

import (
	"context"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/domain/notification"
	"medremind/internal/core/services"
	sendnotification "medremind/internal/core/services/send_notification"
	"medremind/internal/rabbitmq"
	"medremind/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	service services.Service[sendnotification.Input, sendnotification.Result]
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	service services.Service[sendnotification.Input, sendnotification.Result],
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Consumer{log: log, channel: channel, queue: queue, service: service}
}

// Consume delivers each queued attempt exactly once to the service.
// Every delivery is acked regardless of the outcome: a failed push is
// never redelivered.
func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			message := &schema.DispatchMessage{}
			if err := message.Unmarshal(delivery.Body); err != nil {
				c.log.Error(
					context.Background(),
					"Could not unmarshal dispatch message.",
					logging.Entry("err", err),
					logging.Entry("delivery", delivery),
				)
				c.Ack(delivery)
				continue
			}

			c.log.Info(
				context.Background(),
				"Got notification dispatch message.",
				logging.Entry("attemptID", message.AttemptID),
				logging.Entry("reminderID", message.ReminderID),
			)
			_, err := c.service.Run(
				context.Background(),
				sendnotification.Input{
					Attempt: notification.Attempt{
						ID:         message.AttemptID,
						ReminderID: message.ReminderID,
						Message: notification.Message{
							Token: message.Token,
							Title: message.Title,
							Body:  message.Body,
							Data:  message.Data,
						},
					},
				},
			)
			if err != nil {
				c.log.Error(
					context.Background(),
					"Could not process dispatch message, service returned an error.",
					logging.Entry("attemptID", message.AttemptID),
					logging.Entry("err", err),
				)
			}
			c.Ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
