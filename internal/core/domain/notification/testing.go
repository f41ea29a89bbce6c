package notification

import (
	"context"
	"sync"
)

type FakeGateway struct {
	Receipt   Receipt
	SendError error
	Sent      []Message

	lock sync.Mutex
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{Receipt: Receipt("test-receipt")}
}

func (g *FakeGateway) SendPush(ctx context.Context, message Message) (Receipt, error) {
	g.lock.Lock()
	defer g.lock.Unlock()
	if g.SendError != nil {
		return Receipt(""), g.SendError
	}
	g.Sent = append(g.Sent, message)
	return g.Receipt, nil
}

type FakeDispatcher struct {
	DispatchError error
	Dispatched    []Attempt

	lock sync.Mutex
}

func NewFakeDispatcher() *FakeDispatcher {
	return &FakeDispatcher{}
}

func (d *FakeDispatcher) DispatchNotification(ctx context.Context, attempt Attempt) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.DispatchError != nil {
		return d.DispatchError
	}
	d.Dispatched = append(d.Dispatched, attempt)
	return nil
}

type FakeEventSink struct {
	PublishError error
	Published    []Event

	lock sync.Mutex
}

func NewFakeEventSink() *FakeEventSink {
	return &FakeEventSink{}
}

func (s *FakeEventSink) PublishDispatchEvent(ctx context.Context, event Event) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.PublishError != nil {
		return s.PublishError
	}
	s.Published = append(s.Published, event)
	return nil
}
