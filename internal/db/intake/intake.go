package intake

import (
	"context"
	c "medremind/internal/core/domain/common"
	"medremind/internal/core/domain/intake"
	"medremind/internal/db"
	"time"

	"github.com/jackc/pgx/v4"
)

const createSQL = `
INSERT INTO intake (medication_id, date, hour, taken, taken_at)
VALUES ($1, $2::date, $3, $4, $5)
ON CONFLICT (medication_id, date, hour)
DO UPDATE SET taken = EXCLUDED.taken, taken_at = EXCLUDED.taken_at
RETURNING id, medication_id, date, hour, taken, taken_at`

const isTakenSQL = `
SELECT EXISTS (
    SELECT 1 FROM intake
    WHERE medication_id = $1 AND date = $2::date AND hour = $3 AND taken
)`

type PgxIntakeRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxIntakeRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxIntakeRepository{db: db}
}

func (r *PgxIntakeRepository) Create(
	ctx context.Context,
	input intake.CreateInput,
) (intake.Intake, error) {
	row := r.db.QueryRow(
		ctx,
		createSQL,
		input.MedicationID,
		input.Date.String(),
		input.Hour.String(),
		input.Taken,
		input.TakenAt,
	)
	return decodeIntake(row)
}

func (r *PgxIntakeRepository) IsTaken(ctx context.Context, key intake.Key) (bool, error) {
	var isTaken bool
	err := r.db.QueryRow(
		ctx,
		isTakenSQL,
		key.MedicationID,
		key.Date.String(),
		key.Hour.String(),
	).Scan(&isTaken)
	return isTaken, err
}

func decodeIntake(row pgx.Row) (i intake.Intake, err error) {
	var (
		date time.Time
		hour string
	)
	err = row.Scan(&i.ID, &i.MedicationID, &date, &hour, &i.Taken, &i.TakenAt)
	if err != nil {
		return i, err
	}
	i.Date = c.DateOnly(date.Format(c.DateOnlyLayout))
	i.Hour = c.HourOfDay(hour)
	return i, nil
}
