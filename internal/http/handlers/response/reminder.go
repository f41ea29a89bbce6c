package response

import (
	"medremind/internal/core/domain/reminder"
	"time"
)

type Reminder struct {
	ID           int64     `json:"id"`
	Token        string    `json:"token"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Hour         string    `json:"hour"`
	Frequency    string    `json:"frequency"`
	DaysOfWeek   []int     `json:"days_of_week,omitempty"`
	StartDate    *string   `json:"start_date"`
	EndDate      *string   `json:"end_date"`
	MedicationID string    `json:"medication_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r *Reminder) FromDomainType(dr reminder.Reminder) {
	r.ID = int64(dr.ID)
	r.Token = dr.Token
	r.Title = dr.Title
	r.Body = dr.Body
	r.Hour = dr.Hour.String()
	r.Frequency = dr.Frequency.String()
	r.DaysOfWeek = dr.DaysOfWeek
	if dr.StartDate.IsPresent {
		startDate := dr.StartDate.Value.String()
		r.StartDate = &startDate
	}
	if dr.EndDate.IsPresent {
		endDate := dr.EndDate.Value.String()
		r.EndDate = &endDate
	}
	r.MedicationID = dr.MedicationID
	r.CreatedAt = dr.CreatedAt
}
