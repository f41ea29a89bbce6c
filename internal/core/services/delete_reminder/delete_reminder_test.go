package deletereminder

import (
	"context"
	"medremind/internal/core/domain/logging"
	"medremind/internal/core/domain/reminder"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeleteReminder(t *testing.T) {
	logger := logging.NewFakeLogger()
	reminders := reminder.NewTestReminderRepository()
	service := New(logger, reminders)

	_, err := service.Run(context.Background(), Input{ReminderID: reminder.ID(7)})

	assert.Nil(t, err)
	assert.Equal(t, []reminder.ID{reminder.ID(7)}, reminders.DeletedIDs)
}

func TestDeleteReminderNotFound(t *testing.T) {
	logger := logging.NewFakeLogger()
	reminders := reminder.NewTestReminderRepository()
	reminders.DeleteError = reminder.ErrReminderDoesNotExist
	service := New(logger, reminders)

	_, err := service.Run(context.Background(), Input{ReminderID: reminder.ID(404)})

	assert.ErrorIs(t, err, reminder.ErrReminderDoesNotExist)
}
