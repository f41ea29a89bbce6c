package sendnotification

import (
	"context"
	"errors"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/domain/notification"
	"medremind/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2024, 6, 3, 8, 0, 1, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger  *logging.FakeLogger
	gateway *notification.FakeGateway
	events  *notification.FakeEventSink
	service services.Service[Input, Result]
	input   Input
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.gateway = notification.NewFakeGateway()
	suite.events = notification.NewFakeEventSink()
	suite.service = New(
		suite.logger,
		suite.gateway,
		suite.events,
		func() time.Time { return Now },
	)
	suite.input = Input{
		Attempt: notification.Attempt{
			ID:         "attempt-1",
			ReminderID: 42,
			Message: notification.Message{
				Token: "device-token-1",
				Title: "Aspirin",
				Body:  "Time to take your dose",
				Data:  map[string]string{"type": "medication_reminder"},
			},
		},
	}
}

func TestSendNotificationService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSendsMessageAndPublishesEvent() {
	result, err := s.service.Run(context.Background(), s.input)

	s.Nil(err)
	s.True(result.Sent)
	s.Equal(s.gateway.Receipt, result.Receipt)
	s.Require().Len(s.gateway.Sent, 1)
	s.Equal("device-token-1", s.gateway.Sent[0].Token)

	s.Require().Len(s.events.Published, 1)
	event := s.events.Published[0]
	s.Equal("attempt-1", event.AttemptID)
	s.Equal(int64(42), event.ReminderID)
	s.True(event.Sent)
	s.Empty(event.Error)
	s.Equal(Now, event.At)
}

func (s *testSuite) TestGatewayFailureIsTerminal() {
	s.gateway.SendError = &notification.GatewayError{Code: "NotRegistered", Message: "stale token"}

	result, err := s.service.Run(context.Background(), s.input)

	s.Nil(err)
	s.False(result.Sent)
	s.Greater(len(s.logger.LoggedWithLevel(logging.ERROR)), 0)

	s.Require().Len(s.events.Published, 1)
	event := s.events.Published[0]
	s.False(event.Sent)
	s.Contains(event.Error, "NotRegistered")
}

func (s *testSuite) TestEventSinkFailureDoesNotFailSending() {
	s.events.PublishError = errors.New("no subscribers")

	result, err := s.service.Run(context.Background(), s.input)

	s.Nil(err)
	s.True(result.Sent)
	s.Greater(len(s.logger.LoggedWithLevel(logging.WARNING)), 0)
}
