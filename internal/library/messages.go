package library

import (
	"fmt"

	"github.com/zulandar/messagecraft/internal/models"
	"github.com/zulandar/messagecraft/internal/store"
)

// Messages manages the generated-message history.
type Messages struct {
	col *store.Collection[models.Message]
}

// NewMessages creates a history manager over kv.
func NewMessages(kv store.KV) *Messages {
	return &Messages{col: store.Messages(kv)}
}

// List returns all saved messages, most recent first.
func (m *Messages) List() ([]models.Message, error) {
	return m.col.Get()
}

// Get returns the message with the given id.
func (m *Messages) Get(id string) (*models.Message, error) {
	msgs, err := m.col.Get()
	if err != nil {
		return nil, err
	}
	for _, msg := range msgs {
		if msg.ID == id {
			return &msg, nil
		}
	}
	return nil, fmt.Errorf("library: message %s not found", id)
}

// Delete removes a message. Unknown ids are a no-op.
func (m *Messages) Delete(id string) error {
	return m.col.Delete(id)
}

// Clear removes the whole history.
func (m *Messages) Clear() error {
	return m.col.Clear()
}
