package intake

import (
	"context"
	"sync"
)

type FakeIntakeRepository struct {
	Created      []Intake
	CreateError  error
	Taken        map[Key]bool
	IsTakenError error
	IsTakenWith  []Key

	lock sync.Mutex
}

func NewFakeIntakeRepository() *FakeIntakeRepository {
	return &FakeIntakeRepository{Taken: make(map[Key]bool)}
}

func (r *FakeIntakeRepository) Create(ctx context.Context, input CreateInput) (Intake, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.CreateError != nil {
		return Intake{}, r.CreateError
	}
	created := Intake{
		ID:           int64(len(r.Created) + 1),
		MedicationID: input.MedicationID,
		Date:         input.Date,
		Hour:         input.Hour,
		Taken:        input.Taken,
		TakenAt:      input.TakenAt,
	}
	r.Created = append(r.Created, created)
	r.Taken[created.Key()] = created.Taken
	return created, nil
}

func (r *FakeIntakeRepository) IsTaken(ctx context.Context, key Key) (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.IsTakenWith = append(r.IsTakenWith, key)
	if r.IsTakenError != nil {
		return false, r.IsTakenError
	}
	return r.Taken[key], nil
}
