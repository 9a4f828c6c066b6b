package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Item represents a stored item. JSON field names are part of the public API
// contract, so changing a tag is a breaking change.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Patch is a partial item payload. A nil field was absent from the request
// and keeps its existing value on update.
type Patch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	IsActive    *bool    `json:"isActive"`
}

// ValidationError reports a payload that violates an item constraint.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// NewItem builds an item from a create payload. Name, description and price
// are required; quantity defaults to 0 and isActive to true.
func NewItem(p Patch) (*Item, error) {
	item := &Item{IsActive: true}

	if p.Name == nil {
		return nil, invalid("name is required")
	}
	item.Name = *p.Name

	if p.Description == nil {
		return nil, invalid("description is required")
	}
	item.Description = *p.Description

	if p.Price == nil {
		return nil, invalid("price is required")
	}
	item.Price = *p.Price

	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.IsActive != nil {
		item.IsActive = *p.IsActive
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// ApplyTo merges the patch into an existing item. The merged result must be
// re-validated before it is written back.
func (p Patch) ApplyTo(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.IsActive != nil {
		item.IsActive = *p.IsActive
	}
}

// Validate checks the full constraint set over a complete item. It trims
// surrounding whitespace from the name as a side effect.
func (i *Item) Validate() error {
	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		return invalid("name is required")
	}
	if utf8.RuneCountInString(i.Name) > 100 {
		return invalid("name cannot be more than 100 characters")
	}
	if i.Description == "" {
		return invalid("description is required")
	}
	if utf8.RuneCountInString(i.Description) > 500 {
		return invalid("description cannot be more than 500 characters")
	}
	if i.Price < 0 {
		return invalid("price cannot be negative")
	}
	if i.Quantity < 0 {
		return invalid("quantity cannot be negative")
	}
	return nil
}
