// Package models defines the records persisted by the collection store.
package models

import "time"

// Message is a generated message together with the inputs that produced it.
// Messages are immutable once created; they can only be deleted.
type Message struct {
	ID               string    `json:"id"`
	Recipient        string    `json:"recipient"`
	Context          string    `json:"context"`
	Tone             Tone      `json:"tone"`
	Details          string    `json:"details"`
	GeneratedMessage string    `json:"generatedMessage"`
	CreatedAt        time.Time `json:"createdAt"`
}

// RecordID implements store.Record.
func (m Message) RecordID() string { return m.ID }
