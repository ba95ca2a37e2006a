package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BatchAppendedMessage announces that a generated batch was committed to the
// expense store. Consumers read the rows themselves; the message only carries
// what identifies the batch.
type BatchAppendedMessage struct {
	BatchID   uuid.UUID `json:"batch_id"`
	Month     string    `json:"month"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

// NewBatchAppendedMessage creates a message with a fresh batch ID
func NewBatchAppendedMessage(month string, count int) *BatchAppendedMessage {
	return &BatchAppendedMessage{
		BatchID:   uuid.New(),
		Month:     month,
		Count:     count,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *BatchAppendedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// BatchAppendedMessageFromJSON decodes a message from JSON bytes
func BatchAppendedMessageFromJSON(data []byte) (*BatchAppendedMessage, error) {
	var msg BatchAppendedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
