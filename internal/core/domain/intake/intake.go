package intake

import (
	"context"
	c "medremind/internal/core/domain/common"
	"time"
)

// Key identifies a single scheduled dose: one medication, one date,
// one reminder hour.
type Key struct {
	MedicationID string
	Date         c.DateOnly
	Hour         c.HourOfDay
}

type Intake struct {
	ID           int64
	MedicationID string
	Date         c.DateOnly
	Hour         c.HourOfDay
	Taken        bool
	TakenAt      time.Time
}

func (i Intake) Key() Key {
	return Key{MedicationID: i.MedicationID, Date: i.Date, Hour: i.Hour}
}

type CreateInput struct {
	MedicationID string
	Date         c.DateOnly
	Hour         c.HourOfDay
	Taken        bool
	TakenAt      time.Time
}

type Repository interface {
	// Create records an intake, overwriting the taken flag if the
	// dose was already recorded.
	Create(ctx context.Context, input CreateInput) (Intake, error)
	// IsTaken reports whether the dose has been confirmed taken.
	IsTaken(ctx context.Context, key Key) (bool, error)
}
