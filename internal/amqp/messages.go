package amqp

import (
	"encoding/json"
	"time"
)

// ExpenseSavedMessage tells the sync worker a new expense landed.
// It carries only the id; the worker loads the row from the database.
type ExpenseSavedMessage struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewExpenseSavedMessage(id string) *ExpenseSavedMessage {
	return &ExpenseSavedMessage{ID: id, Timestamp: time.Now()}
}

func (m *ExpenseSavedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ExpenseSavedMessageFromJSON(data []byte) (*ExpenseSavedMessage, error) {
	var msg ExpenseSavedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
