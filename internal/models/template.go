package models

import "time"

// MessageTemplate is a reusable starting point for composing: it carries
// everything except the recipient, which stays per-message.
type MessageTemplate struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Context    string    `json:"context"`
	Tone       Tone      `json:"tone"`
	Details    string    `json:"details"`
	CategoryID string    `json:"categoryId,omitempty"` // soft reference, may dangle
	CreatedAt  time.Time `json:"createdAt"`
}

// RecordID implements store.Record.
func (t MessageTemplate) RecordID() string { return t.ID }
