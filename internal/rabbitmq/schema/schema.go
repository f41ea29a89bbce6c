package schema

import "encoding/json"

// DispatchMessage is the queue representation of a notification
// dispatch attempt.
type DispatchMessage struct {
	AttemptID  string            `json:"attempt_id"`
	ReminderID int64             `json:"reminder_id"`
	Token      string            `json:"token"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Data       map[string]string `json:"data,omitempty"`
}

func (m *DispatchMessage) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *DispatchMessage) Unmarshal(data []byte) error {
	return json.Unmarshal(data, m)
}
