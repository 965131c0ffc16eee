package models

import "time"

// MessageCategory groups templates for display. Deleting a category
// never touches the templates referencing it.
type MessageCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RecordID implements store.Record.
func (c MessageCategory) RecordID() string { return c.ID }
