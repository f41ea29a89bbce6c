package notification

import (
	"context"
	"fmt"
	"time"
)

// Receipt is the provider-assigned identifier of an accepted push.
type Receipt string

type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// Attempt is one dispatch of a reminder notification. Attempts are
// ephemeral: the ID exists only to correlate scheduler and notifier
// logs, nothing is persisted.
type Attempt struct {
	ID         string
	ReminderID int64
	Message    Message
}

// Gateway delivers a push message to the device, synchronously.
type Gateway interface {
	SendPush(ctx context.Context, message Message) (Receipt, error)
}

// Dispatcher hands an attempt off for delivery. Dispatching must not
// block on the actual gateway call.
type Dispatcher interface {
	DispatchNotification(ctx context.Context, attempt Attempt) error
}

// Event describes the outcome of a delivery attempt, for live
// monitoring streams.
type Event struct {
	AttemptID  string    `json:"attempt_id"`
	ReminderID int64     `json:"reminder_id"`
	Sent       bool      `json:"sent"`
	Error      string    `json:"error,omitempty"`
	At         time.Time `json:"at"`
}

type EventSink interface {
	PublishDispatchEvent(ctx context.Context, event Event) error
}

// GatewayError is a delivery failure reported by the push provider.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("push gateway error (%s): %s", e.Code, e.Message)
}
