package intake

import (
	"context"
	c "medremind/internal/core/domain/common"
	"medremind/internal/core/domain/intake"
	"medremind/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

var Now = time.Now().UTC().Truncate(time.Millisecond)

var key = intake.Key{
	MedicationID: "M1",
	Date:         c.DateOnly("2024-06-03"),
	Hour:         c.HourOfDay("08:00"),
}

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxIntakeRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxIntakeRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateAndIsTaken() {
	ctx := context.Background()
	created, err := s.repo.Create(
		ctx,
		intake.CreateInput{
			MedicationID: key.MedicationID,
			Date:         key.Date,
			Hour:         key.Hour,
			Taken:        true,
			TakenAt:      Now,
		},
	)
	s.Nil(err)
	s.NotZero(created.ID)
	s.Equal(key, created.Key())

	isTaken, err := s.repo.IsTaken(ctx, key)
	s.Nil(err)
	s.True(isTaken)
}

func (s *testSuite) TestIsTakenUnknownDose() {
	isTaken, err := s.repo.IsTaken(context.Background(), key)
	s.Nil(err)
	s.False(isTaken)
}

func (s *testSuite) TestNotTakenRecordDoesNotSuppress() {
	ctx := context.Background()
	_, err := s.repo.Create(
		ctx,
		intake.CreateInput{
			MedicationID: key.MedicationID,
			Date:         key.Date,
			Hour:         key.Hour,
			Taken:        false,
			TakenAt:      Now,
		},
	)
	s.Nil(err)

	isTaken, err := s.repo.IsTaken(ctx, key)
	s.Nil(err)
	s.False(isTaken)
}

func (s *testSuite) TestCreateUpsertsOnSameDose() {
	ctx := context.Background()
	first, err := s.repo.Create(
		ctx,
		intake.CreateInput{
			MedicationID: key.MedicationID,
			Date:         key.Date,
			Hour:         key.Hour,
			Taken:        false,
			TakenAt:      Now,
		},
	)
	s.Nil(err)

	second, err := s.repo.Create(
		ctx,
		intake.CreateInput{
			MedicationID: key.MedicationID,
			Date:         key.Date,
			Hour:         key.Hour,
			Taken:        true,
			TakenAt:      Now.Add(time.Minute),
		},
	)
	s.Nil(err)
	s.Equal(first.ID, second.ID)
	s.True(second.Taken)

	isTaken, err := s.repo.IsTaken(ctx, key)
	s.Nil(err)
	s.True(isTaken)
}

func (s *testSuite) TestDosesAreIndependent() {
	ctx := context.Background()
	_, err := s.repo.Create(
		ctx,
		intake.CreateInput{
			MedicationID: key.MedicationID,
			Date:         key.Date,
			Hour:         key.Hour,
			Taken:        true,
			TakenAt:      Now,
		},
	)
	s.Nil(err)

	eveningKey := key
	eveningKey.Hour = c.HourOfDay("21:00")
	isTaken, err := s.repo.IsTaken(ctx, eveningKey)
	s.Nil(err)
	s.False(isTaken)

	nextDayKey := key
	nextDayKey.Date = c.DateOnly("2024-06-04")
	isTaken, err = s.repo.IsTaken(ctx, nextDayKey)
	s.Nil(err)
	s.False(isTaken)
}
