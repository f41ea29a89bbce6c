package sendtestnotification

import (
	"context"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/domain/notification"
	"medremind/internal/core/services"
)

type Input struct {
	Token string
	Title string
	Body  string
}

func (i Input) GetRateLimitKey() string {
	return "test-notification::" + i.Token
}

type Result struct {
	Receipt notification.Receipt
}

type service struct {
	log     logging.Logger
	gateway notification.Gateway
}

// New sends a push directly through the gateway so the caller gets
// immediate feedback about the token. Production traffic goes through
// the dispatch queue instead.
func New(
	log logging.Logger,
	gateway notification.Gateway,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if gateway == nil {
		panic(e.NewNilArgumentError("gateway"))
	}
	return &service{log: log, gateway: gateway}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	receipt, err := s.gateway.SendPush(
		ctx,
		notification.Message{
			Token: input.Token,
			Title: input.Title,
			Body:  input.Body,
			Data:  map[string]string{"type": "test_notification"},
		},
	)
	if err != nil {
		s.log.Warning(
			ctx,
			"Test notification was not delivered.",
			logging.Entry("token", input.Token),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "Test notification sent.", logging.Entry("receipt", receipt))
	return Result{Receipt: receipt}, nil
}
