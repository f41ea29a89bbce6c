package updatereminder

import (
	"encoding/json"
	"errors"
	"io"
	c "medremind/internal/core/domain/common"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/reminder"
	"medremind/internal/core/services"
	service "medremind/internal/core/services/update_reminder"
	"medremind/internal/http/handlers/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
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
	Token             *string `json:"token"`
	Title             *string `json:"title"`
	Body              *string `json:"body"`
	Hour              *string `json:"hour"`
	Frequency         *string `json:"frequency"`
	DaysOfWeek        []int   `json:"days_of_week"`
	DoStartDateUpdate bool    `json:"do_start_date_update"`
	StartDate         *string `json:"start_date"`
	DoEndDateUpdate   bool    `json:"do_end_date_update"`
	EndDate           *string `json:"end_date"`
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
		validation.Field(&i.Token, validation.Length(1, 4096)),
		validation.Field(&i.Title, validation.Length(1, 256)),
		validation.Field(&i.Frequency, validation.In("daily", "weekly")),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawReminderID := chi.URLParam(r, "reminderID")
	reminderID, err := strconv.ParseInt(rawReminderID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid reminder ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := service.Input{ReminderID: reminder.ID(reminderID)}
	if input.Token != nil {
		serviceInput.DoTokenUpdate = true
		serviceInput.Token = *input.Token
	}
	if input.Title != nil {
		serviceInput.DoTitleUpdate = true
		serviceInput.Title = *input.Title
	}
	if input.Body != nil {
		serviceInput.DoBodyUpdate = true
		serviceInput.Body = *input.Body
	}
	if input.Hour != nil {
		hour, err := c.ParseHourOfDay(*input.Hour)
		if err != nil {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
		serviceInput.DoHourUpdate = true
		serviceInput.Hour = hour
	}
	if input.Frequency != nil {
		frequency, err := reminder.ParseFrequency(*input.Frequency)
		if err != nil {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
		serviceInput.DoFrequencyUpdate = true
		serviceInput.Frequency = frequency
		serviceInput.DaysOfWeek = input.DaysOfWeek
	}
	if input.DoStartDateUpdate {
		startDate, err := parseOptionalDate(input.StartDate)
		if err != nil {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
		serviceInput.DoStartDateUpdate = true
		serviceInput.StartDate = startDate
	}
	if input.DoEndDateUpdate {
		endDate, err := parseOptionalDate(input.EndDate)
		if err != nil {
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
			return
		}
		serviceInput.DoEndDateUpdate = true
		serviceInput.EndDate = endDate
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrReminderDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		case isExpectedError(err):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	updatedReminder := response.Reminder{}
	updatedReminder.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: updatedReminder}, http.StatusOK)
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
