package response

import (
	"medremind/internal/core/domain/intake"
	listpendingintakes "medremind/internal/core/services/list_pending_intakes"
	"time"
)

type Intake struct {
	ID           int64     `json:"id"`
	MedicationID string    `json:"medication_id"`
	Date         string    `json:"date"`
	Hour         string    `json:"hour"`
	Taken        bool      `json:"taken"`
	TakenAt      time.Time `json:"taken_at"`
}

func (i *Intake) FromDomainType(di intake.Intake) {
	i.ID = di.ID
	i.MedicationID = di.MedicationID
	i.Date = di.Date.String()
	i.Hour = di.Hour.String()
	i.Taken = di.Taken
	i.TakenAt = di.TakenAt
}

type PendingIntake struct {
	ReminderID   int64  `json:"reminder_id"`
	MedicationID string `json:"medication_id"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	Hour         string `json:"hour"`
}

func (p *PendingIntake) FromDomainType(dp listpendingintakes.PendingIntake) {
	p.ReminderID = int64(dp.ReminderID)
	p.MedicationID = dp.MedicationID
	p.Title = dp.Title
	p.Body = dp.Body
	p.Hour = dp.Hour.String()
}
