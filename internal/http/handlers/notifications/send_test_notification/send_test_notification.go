package sendtestnotification

import (
	"encoding/json"
	"errors"
	"io"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/notification"
	ratelimiter "medremind/internal/core/domain/rate_limiter"
	"medremind/internal/core/services"
	service "medremind/internal/core/services/send_test_notification"
	"medremind/internal/http/handlers/response"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Token string `json:"token"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Result struct {
	Receipt string `json:"receipt"`
}

func (i *Input) FromJSON(r io.Reader) error {
	decoder := json.NewDecoder(r)
	return decoder.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Required, validation.Length(1, 4096)),
		validation.Field(&i.Title, validation.Length(0, 256)),
		validation.Field(&i.Body, validation.Length(0, 1024)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{Token: input.Token, Title: input.Title, Body: input.Body},
	)
	if err != nil {
		gatewayErr := &notification.GatewayError{}
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		case errors.As(err, &gatewayErr):
			response.RenderError(rw, gatewayErr.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, Result{Receipt: string(result.Receipt)}, http.StatusOK)
}
