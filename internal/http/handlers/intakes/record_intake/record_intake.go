package recordintake

import (
	"encoding/json"
	"io"
	c "medremind/internal/core/domain/common"
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/services"
	service "medremind/internal/core/services/record_intake"
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
	MedicationID string `json:"medication_id"`
	Date         string `json:"date"`
	Hour         string `json:"hour"`
	Taken        bool   `json:"taken"`
}

type Result struct {
	Intake response.Intake `json:"intake"`
}

func (i *Input) FromJSON(r io.Reader) error {
	decoder := json.NewDecoder(r)
	return decoder.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.MedicationID, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Date, validation.Required),
		validation.Field(&i.Hour, validation.Required),
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

	date, err := c.ParseDateOnly(input.Date)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}
	hour, err := c.ParseHourOfDay(input.Hour)
	if err != nil {
		response.RenderError(rw, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			MedicationID: input.MedicationID,
			Date:         date,
			Hour:         hour,
			Taken:        input.Taken,
		},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	recordedIntake := response.Intake{}
	recordedIntake.FromDomainType(result.Intake)
	response.Render(rw, Result{Intake: recordedIntake}, http.StatusCreated)
}
