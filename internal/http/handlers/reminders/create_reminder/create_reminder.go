package createreminder

import (
	"encoding/json"
	"errors"
	"io"
	c "medremind/internal/core/domain/common"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/reminder"
	"medremind/internal/core/services"
	service "medremind/internal/core/services/create_reminder"
	"medremind/internal/http/handlers/response"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	MAX_TITLE_LEN = 256
	MAX_BODY_LEN  = 1024
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
	Token        string  `json:"token"`
	Title        string  `json:"title"`
	Body         string  `json:"body"`
	Hour         string  `json:"hour"`
	Frequency    string  `json:"frequency"`
	DaysOfWeek   []int   `json:"days_of_week"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	MedicationID string  `json:"medication_id"`
}

type Result struct {
	Reminder response.Reminder `json:"reminder"`
}

func (i *Input) FromJSON(r io.Reader) error {
	decoder := json.NewDecoder(r)
	return decoder.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Required, validation.Length(1, 4096)),
		validation.Field(&i.Title, validation.Required, validation.Length(1, MAX_TITLE_LEN)),
		validation.Field(&i.Body, validation.Length(0, MAX_BODY_LEN)),
		validation.Field(&i.Hour, validation.Required),
		validation.Field(&i.Frequency, validation.Required, validation.In("daily", "weekly")),
		validation.Field(&i.MedicationID, validation.Required, validation.Length(1, 256)),
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

	hour, err := c.ParseHourOfDay(input.Hour)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}
	frequency, err := reminder.ParseFrequency(input.Frequency)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}
	startDate, err := parseOptionalDate(input.StartDate)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}
	endDate, err := parseOptionalDate(input.EndDate)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Token:        input.Token,
			Title:        input.Title,
			Body:         input.Body,
			Hour:         hour,
			Frequency:    frequency,
			DaysOfWeek:   input.DaysOfWeek,
			StartDate:    startDate,
			EndDate:      endDate,
			MedicationID: input.MedicationID,
		},
	)
	if err != nil {
		switch {
		case isExpectedError(err):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	createdReminder := response.Reminder{}
	createdReminder.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: createdReminder}, http.StatusCreated)
}

func parseOptionalDate(raw *string) (date c.Optional[c.DateOnly], err error) {
	if raw == nil {
		return date, nil
	}
	parsed, err := c.ParseDateOnly(*raw)
	if err != nil {
		return date, err
	}
	return c.NewOptional(parsed, true), nil
}

func isExpectedError(err error) bool {
	return (errors.Is(err, reminder.ErrDaysOfWeekRequired) ||
		errors.Is(err, reminder.ErrInvalidDayOfWeek) ||
		errors.Is(err, reminder.ErrInvalidDateRange))
}
