package reminder

import (
	"context"
	c "medremind/internal/core/domain/common"
	"sync"
)

type TestReminderRepository struct {
	Created         []Reminder
	CreateError     error
	GetByIDReminder Reminder
	GetByIDError    error
	ReadReminders   []Reminder
	ReadError       error
	ReadWith        []ReadOptions
	DueReminders    []Reminder
	ReadDueError    error
	ReadDueWith     []DueQuery
	ActiveReminders []Reminder
	ReadActiveError error
	UpdatedReminder Reminder
	UpdateError     error
	UpdatedWith     []UpdateInput
	DeletedIDs      []ID
	DeleteError     error

	lock sync.Mutex
}

func NewTestReminderRepository() *TestReminderRepository {
	return &TestReminderRepository{}
}

func (r *TestReminderRepository) Create(ctx context.Context, input CreateInput) (Reminder, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.CreateError != nil {
		return Reminder{}, r.CreateError
	}
	created := Reminder{
		ID:           ID(len(r.Created) + 1),
		Token:        input.Token,
		Title:        input.Title,
		Body:         input.Body,
		Hour:         input.Hour,
		Frequency:    input.Frequency,
		DaysOfWeek:   input.DaysOfWeek,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		MedicationID: input.MedicationID,
		CreatedAt:    input.CreatedAt,
	}
	r.Created = append(r.Created, created)
	return created, nil
}

func (r *TestReminderRepository) GetByID(ctx context.Context, id ID) (Reminder, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.GetByIDError != nil {
		return Reminder{}, r.GetByIDError
	}
	return r.GetByIDReminder, nil
}

func (r *TestReminderRepository) Read(ctx context.Context, options ReadOptions) ([]Reminder, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	return r.ReadReminders, nil
}

func (r *TestReminderRepository) ReadDue(ctx context.Context, query DueQuery) ([]Reminder, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadDueWith = append(r.ReadDueWith, query)
	if r.ReadDueError != nil {
		return nil, r.ReadDueError
	}
	return r.DueReminders, nil
}

func (r *TestReminderRepository) ReadActiveOn(
	ctx context.Context,
	date c.DateOnly,
	token string,
) ([]Reminder, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReadActiveError != nil {
		return nil, r.ReadActiveError
	}
	return r.ActiveReminders, nil
}

func (r *TestReminderRepository) Update(ctx context.Context, input UpdateInput) (Reminder, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.UpdatedWith = append(r.UpdatedWith, input)
	if r.UpdateError != nil {
		return Reminder{}, r.UpdateError
	}
	return r.UpdatedReminder, nil
}

func (r *TestReminderRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.DeletedIDs = append(r.DeletedIDs, id)
	return nil
}
