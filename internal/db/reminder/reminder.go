package reminder

import (
	"context"
	"database/sql"
	"errors"
	c "medremind/internal/core/domain/common"
	"medremind/internal/core/domain/reminder"
	"medremind/internal/db"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const readColumns = `id, token, title, body, hour, frequency, days_of_week, start_date, end_date, medication_id, created_at`

const createSQL = `
INSERT INTO reminder (token, title, body, hour, frequency, days_of_week, start_date, end_date, medication_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8::date, $9, $10)
RETURNING ` + readColumns

const getByIDSQL = `SELECT ` + readColumns + ` FROM reminder WHERE id = $1`

const readSQL = `
SELECT ` + readColumns + `
FROM reminder
WHERE ($1::bool OR token = $2)
  AND ($3::bool OR medication_id = $4)
ORDER BY id
LIMIT CASE WHEN $5::bool THEN $6::bigint END
OFFSET $7`

const readDueExactSQL = `
SELECT ` + readColumns + `
FROM reminder
WHERE hour = $1
  AND (start_date IS NULL OR start_date <= $2::date)
  AND (end_date IS NULL OR end_date >= $2::date)
ORDER BY id`

const readDuePrefixSQL = `
SELECT ` + readColumns + `
FROM reminder
WHERE hour LIKE $1
  AND (start_date IS NULL OR start_date <= $2::date)
  AND (end_date IS NULL OR end_date >= $2::date)
ORDER BY id`

const readActiveOnSQL = `
SELECT ` + readColumns + `
FROM reminder
WHERE token = $1
  AND (start_date IS NULL OR start_date <= $2::date)
  AND (end_date IS NULL OR end_date >= $2::date)
ORDER BY hour, id`

const updateSQL = `
UPDATE reminder SET
    token = CASE WHEN $2::bool THEN $3 ELSE token END,
    title = CASE WHEN $4::bool THEN $5 ELSE title END,
    body = CASE WHEN $6::bool THEN $7 ELSE body END,
    hour = CASE WHEN $8::bool THEN $9 ELSE hour END,
    frequency = CASE WHEN $10::bool THEN $11 ELSE frequency END,
    days_of_week = CASE WHEN $10::bool THEN $12 ELSE days_of_week END,
    start_date = CASE WHEN $13::bool THEN $14::date ELSE start_date END,
    end_date = CASE WHEN $15::bool THEN $16::date ELSE end_date END
WHERE id = $1
RETURNING ` + readColumns

const deleteSQL = `DELETE FROM reminder WHERE id = $1 RETURNING id`

type PgxReminderRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxReminderRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxReminderRepository{db: db}
}

func (r *PgxReminderRepository) Create(
	ctx context.Context,
	input reminder.CreateInput,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		createSQL,
		input.Token,
		input.Title,
		input.Body,
		input.Hour.String(),
		input.Frequency.String(),
		encodeDaysOfWeek(input.DaysOfWeek),
		encodeDate(input.StartDate),
		encodeDate(input.EndDate),
		input.MedicationID,
		input.CreatedAt,
	)
	return decodeReminder(row)
}

func (r *PgxReminderRepository) GetByID(ctx context.Context, id reminder.ID) (reminder.Reminder, error) {
	rem, err := decodeReminder(r.db.QueryRow(ctx, getByIDSQL, int64(id)))
	if errors.Is(err, pgx.ErrNoRows) {
		return rem, reminder.ErrReminderDoesNotExist
	}
	return rem, err
}

func (r *PgxReminderRepository) Read(
	ctx context.Context,
	options reminder.ReadOptions,
) ([]reminder.Reminder, error) {
	rows, err := r.db.Query(
		ctx,
		readSQL,
		!options.TokenEquals.IsPresent,
		options.TokenEquals.Value,
		!options.MedicationIDEquals.IsPresent,
		options.MedicationIDEquals.Value,
		options.Limit.IsPresent,
		int64(options.Limit.Value),
		int64(options.Offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return decodeReminders(rows)
}

func (r *PgxReminderRepository) ReadDue(
	ctx context.Context,
	query reminder.DueQuery,
) ([]reminder.Reminder, error) {
	sqlQuery := readDueExactSQL
	hourArg := query.Hour.String()
	if query.Policy == reminder.HourMatchPrefix {
		sqlQuery = readDuePrefixSQL
		hourArg = query.Hour.HourPrefix() + "%"
	}
	rows, err := r.db.Query(ctx, sqlQuery, hourArg, query.Today.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return decodeReminders(rows)
}

func (r *PgxReminderRepository) ReadActiveOn(
	ctx context.Context,
	date c.DateOnly,
	token string,
) ([]reminder.Reminder, error) {
	rows, err := r.db.Query(ctx, readActiveOnSQL, token, date.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return decodeReminders(rows)
}

func (r *PgxReminderRepository) Update(
	ctx context.Context,
	input reminder.UpdateInput,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		updateSQL,
		int64(input.ID),
		input.DoTokenUpdate,
		input.Token,
		input.DoTitleUpdate,
		input.Title,
		input.DoBodyUpdate,
		input.Body,
		input.DoHourUpdate,
		input.Hour.String(),
		input.DoFrequencyUpdate,
		input.Frequency.String(),
		encodeDaysOfWeek(input.DaysOfWeek),
		input.DoStartDateUpdate,
		encodeDate(input.StartDate),
		input.DoEndDateUpdate,
		encodeDate(input.EndDate),
	)
	rem, err = decodeReminder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return rem, reminder.ErrReminderDoesNotExist
	}
	return rem, err
}

func (r *PgxReminderRepository) Delete(ctx context.Context, id reminder.ID) error {
	var deletedID int64
	err := r.db.QueryRow(ctx, deleteSQL, int64(id)).Scan(&deletedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return reminder.ErrReminderDoesNotExist
	}
	return err
}

func encodeDaysOfWeek(daysOfWeek []int) pgtype.Int2Array {
	arr := pgtype.Int2Array{}
	if daysOfWeek == nil {
		arr.Status = pgtype.Null
		return arr
	}
	elements := make([]int16, len(daysOfWeek))
	for ix, day := range daysOfWeek {
		elements[ix] = int16(day)
	}
	if err := arr.Set(elements); err != nil {
		arr.Status = pgtype.Null
	}
	return arr
}

func encodeDate(date c.Optional[c.DateOnly]) sql.NullString {
	return sql.NullString{String: date.Value.String(), Valid: date.IsPresent}
}

func decodeDate(date sql.NullTime) c.Optional[c.DateOnly] {
	if !date.Valid {
		return c.Optional[c.DateOnly]{}
	}
	return c.NewOptional(c.DateOnly(date.Time.Format(c.DateOnlyLayout)), true)
}

func decodeReminder(row pgx.Row) (rem reminder.Reminder, err error) {
	var (
		id         int64
		hour       string
		frequency  string
		daysOfWeek pgtype.Int2Array
		startDate  sql.NullTime
		endDate    sql.NullTime
	)
	err = row.Scan(
		&id,
		&rem.Token,
		&rem.Title,
		&rem.Body,
		&hour,
		&frequency,
		&daysOfWeek,
		&startDate,
		&endDate,
		&rem.MedicationID,
		&rem.CreatedAt,
	)
	if err != nil {
		return rem, err
	}
	rem.ID = reminder.ID(id)
	rem.Hour = c.HourOfDay(hour)
	rem.Frequency = reminder.Frequency(frequency)
	if daysOfWeek.Status == pgtype.Present {
		days := make([]int, 0, len(daysOfWeek.Elements))
		for _, element := range daysOfWeek.Elements {
			if element.Status == pgtype.Present {
				days = append(days, int(element.Int))
			}
		}
		rem.DaysOfWeek = days
	}
	rem.StartDate = decodeDate(startDate)
	rem.EndDate = decodeDate(endDate)
	return rem, nil
}

func decodeReminders(rows pgx.Rows) ([]reminder.Reminder, error) {
	reminders := make([]reminder.Reminder, 0)
	for rows.Next() {
		rem, err := decodeReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}
