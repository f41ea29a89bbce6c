package dispatchevents

import (
	"context"
	"encoding/json"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/notification"

	"github.com/r3labs/sse/v2"
)

const Stream = "dispatches"

// SSEPublisher broadcasts dispatch outcomes to SSE subscribers of the
// dispatches stream. Events are not persisted; late subscribers miss
// earlier events.
type SSEPublisher struct {
	server *sse.Server
}

func NewSSEPublisher(server *sse.Server) *SSEPublisher {
	if server == nil {
		panic(e.NewNilArgumentError("server"))
	}
	server.CreateStream(Stream)
	return &SSEPublisher{server: server}
}

func (p *SSEPublisher) PublishDispatchEvent(ctx context.Context, event notification.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	p.server.Publish(Stream, &sse.Event{Data: data})
	return nil
}
