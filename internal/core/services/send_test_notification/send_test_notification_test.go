package sendtestnotification

import (
	"context"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/domain/notification"
	ratelimiter "medremind/internal/core/domain/rate_limiter"
	ratelimiting "medremind/internal/core/services/rate_limiting"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendTestNotification(t *testing.T) {
	logger := logging.NewFakeLogger()
	gateway := notification.NewFakeGateway()
	service := New(logger, gateway)

	result, err := service.Run(
		context.Background(),
		Input{Token: "device-token-1", Title: "Hello", Body: "Test push"},
	)

	assert.Nil(t, err)
	assert.Equal(t, gateway.Receipt, result.Receipt)
	assert.Len(t, gateway.Sent, 1)
	assert.Equal(t, "test_notification", gateway.Sent[0].Data["type"])
}

func TestSendTestNotificationGatewayError(t *testing.T) {
	logger := logging.NewFakeLogger()
	gateway := notification.NewFakeGateway()
	gateway.SendError = &notification.GatewayError{Code: "InvalidRegistration", Message: "bad token"}
	service := New(logger, gateway)

	_, err := service.Run(context.Background(), Input{Token: "bad-token"})

	assert.NotNil(t, err)
	assert.Greater(t, len(logger.LoggedWithLevel(logging.WARNING)), 0)
}

func TestSendTestNotificationRateLimited(t *testing.T) {
	logger := logging.NewFakeLogger()
	gateway := notification.NewFakeGateway()
	limiter := ratelimiter.NewFakeRateLimiter(false)
	service := ratelimiting.WithRateLimiting(
		logger,
		limiter,
		ratelimiter.Limit{Value: 3, Interval: ratelimiter.Minute},
		New(logger, gateway),
	)

	_, err := service.Run(context.Background(), Input{Token: "device-token-1"})

	assert.ErrorIs(t, err, ratelimiter.ErrRateLimitExceeded)
	assert.Len(t, gateway.Sent, 0)
	assert.Equal(t, []string{"test-notification::device-token-1"}, limiter.Keys)
}
