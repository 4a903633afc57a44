package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RecordEventMessage describes one store mutation for downstream consumers
// (activity archiving, external integrations). It carries the record's kind,
// id and display label rather than the full payload; consumers that need more
// fetch it themselves.
type RecordEventMessage struct {
	EventID   string    `json:"event_id"`
	Kind      string    `json:"kind"`
	Op        string    `json:"op"`
	RecordID  int64     `json:"record_id"`
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRecordEventMessage creates an event message with a fresh uuid.
func NewRecordEventMessage(kind, op string, recordID int64, label string) *RecordEventMessage {
	return &RecordEventMessage{
		EventID:   uuid.NewString(),
		Kind:      kind,
		Op:        op,
		RecordID:  recordID,
		Label:     label,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *RecordEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RecordEventMessageFromJSON decodes a message from JSON bytes.
func RecordEventMessageFromJSON(data []byte) (*RecordEventMessage, error) {
	var msg RecordEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
