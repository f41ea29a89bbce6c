package evaluateduereminders

import (
	"context"
	"errors"
	c "medremind/internal/core/domain/common"
	"medremind/internal/core/domain/intake"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/domain/notification"
	"medremind/internal/core/domain/reminder"
	"medremind/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// 2024-06-03 is a Monday.
var Monday8AM = time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger     *logging.FakeLogger
	reminders  *reminder.TestReminderRepository
	intakes    *intake.FakeIntakeRepository
	dispatcher *notification.FakeDispatcher
	service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.reminders = reminder.NewTestReminderRepository()
	suite.intakes = intake.NewFakeIntakeRepository()
	suite.dispatcher = notification.NewFakeDispatcher()
	suite.service = New(
		suite.logger,
		suite.reminders,
		suite.intakes,
		suite.dispatcher,
		reminder.HourMatchExact,
	)
}

func TestEvaluateDueRemindersService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) weeklyReminder() reminder.Reminder {
	return reminder.Reminder{
		ID:           reminder.ID(1),
		Token:        "device-token-1",
		Title:        "Aspirin",
		Body:         "Time to take your 100mg dose",
		Hour:         c.HourOfDay("08:00"),
		Frequency:    reminder.FrequencyWeekly,
		DaysOfWeek:   []int{1, 3, 5},
		MedicationID: "M1",
	}
}

func (s *testSuite) TestSkipsPassWhenNotAtTopOfHour() {
	s.reminders.DueReminders = []reminder.Reminder{s.weeklyReminder()}

	result, err := s.service.Run(context.Background(), Input{At: Monday8AM.Add(17 * time.Minute)})

	s.Nil(err)
	s.False(result.Evaluated)
	s.Len(s.reminders.ReadDueWith, 0)
	s.Len(s.dispatcher.Dispatched, 0)
}

func (s *testSuite) TestDispatchesWeeklyReminderOnMatchingWeekday() {
	s.reminders.DueReminders = []reminder.Reminder{s.weeklyReminder()}

	result, err := s.service.Run(context.Background(), Input{At: Monday8AM})

	s.Nil(err)
	s.True(result.Evaluated)
	s.Equal(1, result.DispatchedCount())
	s.Require().Len(s.dispatcher.Dispatched, 1)

	attempt := s.dispatcher.Dispatched[0]
	s.NotEmpty(attempt.ID)
	s.Equal(int64(1), attempt.ReminderID)
	s.Equal("device-token-1", attempt.Message.Token)
	s.Equal("Aspirin", attempt.Message.Title)
	s.Equal("Time to take your 100mg dose", attempt.Message.Body)
	s.Equal(
		map[string]string{
			"medication_id": "M1",
			"hora":          "08:00",
			"type":          "medication_reminder",
		},
		attempt.Message.Data,
	)
}

func (s *testSuite) TestQueriesStoreWithEvaluationContext() {
	_, err := s.service.Run(context.Background(), Input{At: Monday8AM})

	s.Nil(err)
	s.Require().Len(s.reminders.ReadDueWith, 1)
	query := s.reminders.ReadDueWith[0]
	s.Equal(c.HourOfDay("08:00"), query.Hour)
	s.Equal(c.DateOnly("2024-06-03"), query.Today)
	s.Equal(reminder.HourMatchExact, query.Policy)
}

func (s *testSuite) TestSkipsWeeklyReminderOnOtherWeekday() {
	s.reminders.DueReminders = []reminder.Reminder{s.weeklyReminder()}
	tuesday := Monday8AM.AddDate(0, 0, 1)

	result, err := s.service.Run(context.Background(), Input{At: tuesday})

	s.Nil(err)
	s.Len(s.dispatcher.Dispatched, 0)
	s.Len(s.intakes.IsTakenWith, 0)
	s.Require().Len(result.Outcomes, 1)
	s.Equal(OutcomeSkippedNotDue, result.Outcomes[0].Outcome)
}

func (s *testSuite) TestDailyReminderDueEveryDay() {
	rem := s.weeklyReminder()
	rem.Frequency = reminder.FrequencyDaily
	rem.DaysOfWeek = nil
	s.reminders.DueReminders = []reminder.Reminder{rem}

	for day := 0; day < 7; day++ {
		result, err := s.service.Run(context.Background(), Input{At: Monday8AM.AddDate(0, 0, day)})
		s.Nil(err)
		s.Equal(1, result.DispatchedCount())
	}
	s.Len(s.dispatcher.Dispatched, 7)
}

func (s *testSuite) TestUnknownFrequencyNeverDue() {
	rem := s.weeklyReminder()
	rem.Frequency = reminder.Frequency("hourly")
	s.reminders.DueReminders = []reminder.Reminder{rem}

	result, err := s.service.Run(context.Background(), Input{At: Monday8AM})

	s.Nil(err)
	s.Len(s.dispatcher.Dispatched, 0)
	s.Require().Len(result.Outcomes, 1)
	s.Equal(OutcomeSkippedNotDue, result.Outcomes[0].Outcome)
}

func (s *testSuite) TestSuppressesNotificationWhenDoseTaken() {
	s.reminders.DueReminders = []reminder.Reminder{s.weeklyReminder()}
	s.intakes.Taken[intake.Key{
		MedicationID: "M1",
		Date:         c.DateOnly("2024-06-03"),
		Hour:         c.HourOfDay("08:00"),
	}] = true

	result, err := s.service.Run(context.Background(), Input{At: Monday8AM})

	s.Nil(err)
	s.Len(s.dispatcher.Dispatched, 0)
	s.Require().Len(result.Outcomes, 1)
	s.Equal(OutcomeSkippedTaken, result.Outcomes[0].Outcome)
}

func (s *testSuite) TestDedupChecksReminderHourNotWallClock() {
	rem := s.weeklyReminder()
	rem.Hour = c.HourOfDay("08:30")
	s.reminders.DueReminders = []reminder.Reminder{rem}

	_, err := s.service.Run(context.Background(), Input{At: Monday8AM})

	s.Nil(err)
	s.Require().Len(s.intakes.IsTakenWith, 1)
	s.Equal(c.HourOfDay("08:30"), s.intakes.IsTakenWith[0].Hour)
}

func (s *testSuite) TestDedupErrorSkipsReminderOnly() {
	s.reminders.DueReminders = []reminder.Reminder{s.weeklyReminder()}
	s.intakes.IsTakenError = errors.New("store is down")

	result, err := s.service.Run(context.Background(), Input{At: Monday8AM})

	s.Nil(err)
	s.Len(s.dispatcher.Dispatched, 0)
	s.Require().Len(result.Outcomes, 1)
	s.Equal(OutcomeError, result.Outcomes[0].Outcome)
	s.Greater(len(s.logger.LoggedWithLevel(logging.ERROR)), 0)
}

func (s *testSuite) TestDispatchFailureDoesNotAffectSiblings() {
	first := s.weeklyReminder()
	second := s.weeklyReminder()
	second.ID = reminder.ID(2)
	second.Token = "device-token-2"
	second.MedicationID = "M2"
	s.reminders.DueReminders = []reminder.Reminder{first, second}

	failOnFirst := &failingDispatcher{inner: s.dispatcher, failTokens: map[string]bool{"device-token-1": true}}
	s.service = New(s.logger, s.reminders, s.intakes, failOnFirst, reminder.HourMatchExact)

	result, err := s.service.Run(context.Background(), Input{At: Monday8AM})

	s.Nil(err)
	s.Require().Len(result.Outcomes, 2)
	s.Equal(OutcomeError, result.Outcomes[0].Outcome)
	s.Equal(OutcomeDispatched, result.Outcomes[1].Outcome)
	s.Require().Len(s.dispatcher.Dispatched, 1)
	s.Equal("device-token-2", s.dispatcher.Dispatched[0].Message.Token)
}

func (s *testSuite) TestRepeatedPassesDispatchAgainWithoutIntake() {
	s.reminders.DueReminders = []reminder.Reminder{s.weeklyReminder()}

	for i := 0; i < 2; i++ {
		result, err := s.service.Run(context.Background(), Input{At: Monday8AM})
		s.Nil(err)
		s.Equal(1, result.DispatchedCount())
	}
	s.Len(s.dispatcher.Dispatched, 2)
}

func (s *testSuite) TestReadDueErrorFailsPass() {
	s.reminders.ReadDueError = errors.New("connection refused")

	result, err := s.service.Run(context.Background(), Input{At: Monday8AM})

	s.NotNil(err)
	s.False(result.Evaluated)
	s.Len(s.dispatcher.Dispatched, 0)
}

type failingDispatcher struct {
	inner      notification.Dispatcher
	failTokens map[string]bool
}

func (d *failingDispatcher) DispatchNotification(ctx context.Context, attempt notification.Attempt) error {
	if d.failTokens[attempt.Message.Token] {
		return errors.New("broker unavailable")
	}
	return d.inner.DispatchNotification(ctx, attempt)
}
