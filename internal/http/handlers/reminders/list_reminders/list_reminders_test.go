package listreminders

import (
	"context"
	c "medremind/internal/core/domain/common"
	"medremind/internal/core/domain/reminder"
	service "medremind/internal/core/services/list_reminders"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var Reminders []reminder.Reminder = []reminder.Reminder{
	{
		ID:           reminder.ID(1),
		Token:        "device-token",
		Title:        "Aspirin",
		Hour:         c.HourOfDay("08:00"),
		Frequency:    reminder.FrequencyDaily,
		MedicationID: "med-1",
		CreatedAt:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	},
	{
		ID:           reminder.ID(2),
		Token:        "device-token",
		Title:        "Ibuprofen",
		Hour:         c.HourOfDay("21:30"),
		Frequency:    reminder.FrequencyWeekly,
		DaysOfWeek:   []int{1, 3, 5},
		MedicationID: "med-2",
		CreatedAt:    time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC),
	},
}

type stubService struct {
	reminders []reminder.Reminder
	err       error
	input     *service.Input
}

func newStubService() *stubService {
	return &stubService{reminders: Reminders}
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Reminders = s.reminders
	return result, nil
}

func TestListRemindersHandler(t *testing.T) {
	cases := []struct {
		url            string
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			url:            "/reminders",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{},
		},
		{
			url:            "/reminders?token=device-token",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{TokenEquals: c.NewOptional("device-token", true)},
		},
		{
			url:            "/reminders?medication_id=med-1",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{MedicationIDEquals: c.NewOptional("med-1", true)},
		},
		{
			url:            "/reminders?limit=0",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Limit: c.NewOptional[uint](0, true)},
		},
		{
			url:            "/reminders?limit=100",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Limit: c.NewOptional[uint](100, true)},
		},
		{
			url:            "/reminders?limit=101",
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			url:            "/reminders?limit=aaaa",
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			url:            "/reminders?offset=40",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Offset: 40},
		},
		{
			url:            "/reminders?offset=asd",
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			url:            "/reminders?token=device-token&medication_id=med-2&limit=20&offset=40",
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				TokenEquals:        c.NewOptional("device-token", true),
				MedicationIDEquals: c.NewOptional("med-2", true),
				Limit:              c.NewOptional[uint](20, true),
				Offset:             40,
			},
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.url, func(t *testing.T) {
			req, err := http.NewRequest("GET", testcase.url, nil)
			if err != nil {
				t.Fatal(err)
			}

			service := newStubService()
			rr := httptest.NewRecorder()
			handler := New(service)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, service.input)
		})
	}
}
