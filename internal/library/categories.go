package library

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zulandar/messagecraft/internal/models"
	"github.com/zulandar/messagecraft/internal/store"
)

// defaultColor matches the form's default swatch.
const defaultColor = "#3B82F6"

// NoCategory is rendered for templates whose category reference is
// empty or dangling.
const NoCategory = "No category"

// Categories manages the category collection.
type Categories struct {
	col *store.Collection[models.MessageCategory]

	mu       sync.Mutex
	selected string
}

// NewCategories creates a category manager over kv.
func NewCategories(kv store.KV) *Categories {
	return &Categories{col: store.Categories(kv)}
}

// CategoryOpts holds the fields for a new category.
type CategoryOpts struct {
	Name        string
	Description string
	Color       string
}

// List returns all categories in creation order.
func (c *Categories) List() ([]models.MessageCategory, error) {
	return c.col.Get()
}

// Create validates opts and stores a new category.
func (c *Categories) Create(opts CategoryOpts) (*models.MessageCategory, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("library: category name is required")
	}
	if opts.Color == "" {
		opts.Color = defaultColor
	}

	cat := models.MessageCategory{
		ID:          uuid.NewString(),
		Name:        opts.Name,
		Description: opts.Description,
		Color:       opts.Color,
		CreatedAt:   time.Now().UTC(),
	}
	if err := c.col.Add(cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Delete removes a category. Templates referencing it are left alone;
// their reference dangles and renders as NoCategory.
func (c *Categories) Delete(id string) error {
	if err := c.col.Delete(id); err != nil {
		return err
	}
	c.mu.Lock()
	if c.selected == id {
		c.selected = ""
	}
	c.mu.Unlock()
	return nil
}

// Select marks a category as the current selection and returns it.
// Selection affects display only.
func (c *Categories) Select(id string) (*models.MessageCategory, error) {
	cats, err := c.col.Get()
	if err != nil {
		return nil, err
	}
	for _, cat := range cats {
		if cat.ID == id {
			c.mu.Lock()
			c.selected = id
			c.mu.Unlock()
			return &cat, nil
		}
	}
	return nil, fmt.Errorf("library: category %s not found", id)
}

// Selected returns the id of the current selection, empty when none.
func (c *Categories) Selected() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// NameFor resolves a template's category reference to a display name.
func (c *Categories) NameFor(categoryID string) string {
	if categoryID == "" {
		return NoCategory
	}
	cats, err := c.col.Get()
	if err != nil {
		return NoCategory
	}
	for _, cat := range cats {
		if cat.ID == categoryID {
			return cat.Name
		}
	}
	return NoCategory
}
