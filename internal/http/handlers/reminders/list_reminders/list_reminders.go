package listreminders

import (
	"fmt"
	c "medremind/internal/core/domain/common"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/services"
	service "medremind/internal/core/services/list_reminders"
	"medremind/internal/http/handlers/response"
	"net/http"
	"strconv"
)

const MAX_LIMIT = 100

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
	Reminders []response.Reminder `json:"reminders"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		response.RenderError(rw, "invalid limit query parameter", http.StatusBadRequest)
		return
	}
	offset, err := parseOffset(r.URL.Query().Get("offset"))
	if err != nil {
		response.RenderError(rw, "invalid offset query parameter", http.StatusBadRequest)
		return
	}

	input := service.Input{Limit: limit, Offset: offset}
	if token := r.URL.Query().Get("token"); token != "" {
		input.TokenEquals = c.NewOptional(token, true)
	}
	if medicationID := r.URL.Query().Get("medication_id"); medicationID != "" {
		input.MedicationIDEquals = c.NewOptional(medicationID, true)
	}

	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	respReminders := make([]response.Reminder, 0, len(result.Reminders))
	for _, rem := range result.Reminders {
		respReminder := response.Reminder{}
		respReminder.FromDomainType(rem)
		respReminders = append(respReminders, respReminder)
	}
	response.Render(rw, Result{Reminders: respReminders}, http.StatusOK)
}

func parseLimit(raw string) (limit c.Optional[uint], err error) {
	if raw == "" {
		return limit, nil
	}
	l, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return limit, err
	}
	if l > MAX_LIMIT {
		return limit, fmt.Errorf("limit must be less than or equal to %v", MAX_LIMIT)
	}
	limit.IsPresent = true
	limit.Value = uint(l)
	return limit, nil
}

func parseOffset(raw string) (offset uint, err error) {
	if raw == "" {
		return offset, nil
	}
	o, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return offset, err
	}
	return uint(o), nil
}
