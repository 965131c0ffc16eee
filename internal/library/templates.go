// Package library provides the managers for saved messages, templates,
// and categories on top of the collection store.
package library

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zulandar/messagecraft/internal/models"
	"github.com/zulandar/messagecraft/internal/store"
)

// Templates manages the reusable template collection.
type Templates struct {
	col *store.Collection[models.MessageTemplate]

	mu       sync.Mutex
	selected string
}

// NewTemplates creates a template manager over kv.
func NewTemplates(kv store.KV) *Templates {
	return &Templates{col: store.Templates(kv)}
}

// TemplateOpts holds the fields for a new template.
type TemplateOpts struct {
	Name       string
	Context    string
	Tone       models.Tone
	Details    string
	CategoryID string // soft reference, may be empty or dangling
}

// List returns all templates, most recent first.
func (t *Templates) List() ([]models.MessageTemplate, error) {
	return t.col.Get()
}

// Create validates opts and stores a new template.
func (t *Templates) Create(opts TemplateOpts) (*models.MessageTemplate, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("library: template name is required")
	}
	if opts.Context == "" {
		return nil, fmt.Errorf("library: template context is required")
	}
	if _, err := models.ParseTone(string(opts.Tone)); err != nil {
		return nil, err
	}

	tpl := models.MessageTemplate{
		ID:         uuid.NewString(),
		Name:       opts.Name,
		Context:    opts.Context,
		Tone:       opts.Tone,
		Details:    opts.Details,
		CategoryID: opts.CategoryID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := t.col.Add(tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// Delete removes a template. Unknown ids are a no-op. A held selection
// pointing at the deleted template is cleared.
func (t *Templates) Delete(id string) error {
	if err := t.col.Delete(id); err != nil {
		return err
	}
	t.mu.Lock()
	if t.selected == id {
		t.selected = ""
	}
	t.mu.Unlock()
	return nil
}

// Select marks a template as the current selection and returns it.
func (t *Templates) Select(id string) (*models.MessageTemplate, error) {
	tpls, err := t.col.Get()
	if err != nil {
		return nil, err
	}
	for _, tpl := range tpls {
		if tpl.ID == id {
			t.mu.Lock()
			t.selected = id
			t.mu.Unlock()
			return &tpl, nil
		}
	}
	return nil, fmt.Errorf("library: template %s not found", id)
}

// Selected returns the id of the current selection, empty when none.
func (t *Templates) Selected() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selected
}
