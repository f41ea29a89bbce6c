package reminder

import (
	"context"
	"errors"
	c "medremind/internal/core/domain/common"
	"time"
)

// HourMatchPolicy controls how a reminder's stored hour is matched
// against the wall clock during an evaluation pass.
type HourMatchPolicy struct {
	v string
}

var (
	// HourMatchExact fires reminders whose stored hour equals the
	// current "HH:MM". With passes gated to minute zero, a reminder
	// stored off the hour (e.g. "08:30") never fires.
	HourMatchExact = HourMatchPolicy{v: "exact"}
	// HourMatchPrefix fires every reminder stored within the current
	// hour ("08:00" and "08:30" both fire at 08:00).
	HourMatchPrefix = HourMatchPolicy{v: "prefix"}
)

var ErrInvalidHourMatchPolicy = errors.New("hour match policy must be either exact or prefix")

func ParseHourMatchPolicy(raw string) (HourMatchPolicy, error) {
	switch raw {
	case "", "exact":
		return HourMatchExact, nil
	case "prefix":
		return HourMatchPrefix, nil
	}
	return HourMatchPolicy{}, ErrInvalidHourMatchPolicy
}

func (p HourMatchPolicy) String() string {
	return p.v
}

// DueQuery selects the candidate reminders for one evaluation pass:
// hour matched per policy, date within the inclusive start/end bounds.
type DueQuery struct {
	Hour   c.HourOfDay
	Today  c.DateOnly
	Policy HourMatchPolicy
}

type CreateInput struct {
	Token        string
	Title        string
	Body         string
	Hour         c.HourOfDay
	Frequency    Frequency
	DaysOfWeek   []int
	StartDate    c.Optional[c.DateOnly]
	EndDate      c.Optional[c.DateOnly]
	MedicationID string
	CreatedAt    time.Time
}

type UpdateInput struct {
	ID                ID
	DoTokenUpdate     bool
	Token             string
	DoTitleUpdate     bool
	Title             string
	DoBodyUpdate      bool
	Body              string
	DoHourUpdate      bool
	Hour              c.HourOfDay
	DoFrequencyUpdate bool
	Frequency         Frequency
	DaysOfWeek        []int
	DoStartDateUpdate bool
	StartDate         c.Optional[c.DateOnly]
	DoEndDateUpdate   bool
	EndDate           c.Optional[c.DateOnly]
}

type ReadOptions struct {
	TokenEquals        c.Optional[string]
	MedicationIDEquals c.Optional[string]
	Limit              c.Optional[uint]
	Offset             uint
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Reminder, error)
	GetByID(ctx context.Context, id ID) (Reminder, error)
	Read(ctx context.Context, options ReadOptions) ([]Reminder, error)
	// ReadDue returns the reminders matching the query hour whose
	// date bounds admit the query date. Weekday filtering is not the
	// store's concern.
	ReadDue(ctx context.Context, query DueQuery) ([]Reminder, error)
	// ReadActiveOn returns the token's reminders whose date bounds
	// admit the given date, regardless of hour.
	ReadActiveOn(ctx context.Context, date c.DateOnly, token string) ([]Reminder, error)
	Update(ctx context.Context, input UpdateInput) (Reminder, error)
	Delete(ctx context.Context, id ID) error
}
