package recordintake

import (
	"context"
	"errors"
	c "medremind/internal/core/domain/common"
	"medremind/internal/core/domain/intake"
	"medremind/internal/core/domain/logging"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var Now = time.Date(2024, 6, 3, 8, 5, 0, 0, time.UTC)

func TestRecordIntake(t *testing.T) {
	logger := logging.NewFakeLogger()
	intakes := intake.NewFakeIntakeRepository()
	service := New(logger, intakes, func() time.Time { return Now })

	result, err := service.Run(
		context.Background(),
		Input{
			MedicationID: "M1",
			Date:         c.DateOnly("2024-06-03"),
			Hour:         c.HourOfDay("08:00"),
			Taken:        true,
		},
	)

	assert.Nil(t, err)
	assert.True(t, result.Intake.Taken)
	assert.Equal(t, Now, result.Intake.TakenAt)

	isTaken, err := intakes.IsTaken(
		context.Background(),
		intake.Key{MedicationID: "M1", Date: c.DateOnly("2024-06-03"), Hour: c.HourOfDay("08:00")},
	)
	assert.Nil(t, err)
	assert.True(t, isTaken)
}

func TestRecordIntakeError(t *testing.T) {
	logger := logging.NewFakeLogger()
	intakes := intake.NewFakeIntakeRepository()
	intakes.CreateError = errors.New("connection refused")
	service := New(logger, intakes, func() time.Time { return Now })

	_, err := service.Run(
		context.Background(),
		Input{MedicationID: "M1", Date: c.DateOnly("2024-06-03"), Hour: c.HourOfDay("08:00")},
	)

	assert.NotNil(t, err)
	assert.Greater(t, len(logger.LoggedWithLevel(logging.ERROR)), 0)
}
