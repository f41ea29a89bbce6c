package listreminders

import (
	"context"
	"errors"
	c "medremind/internal/core/domain/common"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/domain/reminder"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListReminders(t *testing.T) {
	logger := logging.NewFakeLogger()
	reminders := reminder.NewTestReminderRepository()
	reminders.ReadReminders = []reminder.Reminder{
		{ID: reminder.ID(1), MedicationID: "M1"},
		{ID: reminder.ID(2), MedicationID: "M2"},
	}
	service := New(logger, reminders)

	result, err := service.Run(
		context.Background(),
		Input{TokenEquals: c.NewOptional("device-token-1", true), Limit: c.NewOptional(uint(10), true)},
	)

	assert.Nil(t, err)
	assert.Len(t, result.Reminders, 2)
	assert.Len(t, reminders.ReadWith, 1)
	assert.Equal(t, c.NewOptional("device-token-1", true), reminders.ReadWith[0].TokenEquals)
	assert.Equal(t, c.NewOptional(uint(10), true), reminders.ReadWith[0].Limit)
}

func TestListRemindersError(t *testing.T) {
	logger := logging.NewFakeLogger()
	reminders := reminder.NewTestReminderRepository()
	reminders.ReadError = errors.New("connection refused")
	service := New(logger, reminders)

	_, err := service.Run(context.Background(), Input{})

	assert.NotNil(t, err)
	assert.Greater(t, len(logger.LoggedWithLevel(logging.ERROR)), 0)
}
