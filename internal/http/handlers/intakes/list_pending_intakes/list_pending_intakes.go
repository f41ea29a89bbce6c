package listpendingintakes

import (
	c "medremind/internal/core/domain/common"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/services"
	service "medremind/internal/core/services/list_pending_intakes"
	"medremind/internal/http/handlers/response"
	"net/http"
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

type Result struct {
	Date    string                   `json:"date"`
	Pending []response.PendingIntake `json:"pending"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		response.RenderError(rw, "token query parameter is required", http.StatusBadRequest)
		return
	}

	input := service.Input{Token: token}
	if rawDate := r.URL.Query().Get("date"); rawDate != "" {
		date, err := c.ParseDateOnly(rawDate)
		if err != nil {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
		input.Date = c.NewOptional(date, true)
	}

	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	pending := make([]response.PendingIntake, 0, len(result.Pending))
	for _, dp := range result.Pending {
		p := response.PendingIntake{}
		p.FromDomainType(dp)
		pending = append(pending, p)
	}
	response.Render(rw, Result{Date: result.Date.String(), Pending: pending}, http.StatusOK)
}
