package model

import (
	"errors"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int { return &n }
func boolPtr(b bool) *bool { return &b }

func validPatch() Patch {
	return Patch{
		Name:        strPtr("Laptop"),
		Description: strPtr("Dell XPS 15"),
		Price:       floatPtr(999.99),
	}
}

func TestNewItemDefaults(t *testing.T) {
	item, err := NewItem(validPatch())
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	if item.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", item.Quantity)
	}
	if !item.IsActive {
		t.Error("expected new item to be active")
	}
}

func TestNewItemExplicitInactive(t *testing.T) {
	p := validPatch()
	p.IsActive = boolPtr(false)
	item, err := NewItem(p)
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	if item.IsActive {
		t.Error("expected explicit isActive=false to be honored")
	}
}

func TestNewItemTrimsName(t *testing.T) {
	p := validPatch()
	p.Name = strPtr("  Laptop  ")
	item, err := NewItem(p)
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	if item.Name != "Laptop" {
		t.Errorf("expected trimmed name, got %q", item.Name)
	}
}

func TestNewItemConstraints(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Patch)
		wantErr string
	}{
		{"missing name", func(p *Patch) { p.Name = nil }, "name is required"},
		{"blank name", func(p *Patch) { p.Name = strPtr("   ") }, "name is required"},
		{"long name", func(p *Patch) { p.Name = strPtr(strings.Repeat("a", 101)) }, "name cannot be more than 100 characters"},
		{"long multibyte name", func(p *Patch) { p.Name = strPtr(strings.Repeat("é", 101)) }, "name cannot be more than 100 characters"},
		{"missing description", func(p *Patch) { p.Description = nil }, "description is required"},
		{"empty description", func(p *Patch) { p.Description = strPtr("") }, "description is required"},
		{"long description", func(p *Patch) { p.Description = strPtr(strings.Repeat("a", 501)) }, "description cannot be more than 500 characters"},
		{"missing price", func(p *Patch) { p.Price = nil }, "price is required"},
		{"negative price", func(p *Patch) { p.Price = floatPtr(-0.01) }, "price cannot be negative"},
		{"negative quantity", func(p *Patch) { p.Quantity = intPtr(-1) }, "quantity cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPatch()
			tt.modify(&p)
			_, err := NewItem(p)
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if valErr.Message != tt.wantErr {
				t.Errorf("expected %q, got %q", tt.wantErr, valErr.Message)
			}
		})
	}
}

func TestNewItemBoundaryLengths(t *testing.T) {
	p := validPatch()
	p.Name = strPtr(strings.Repeat("a", 100))
	p.Description = strPtr(strings.Repeat("b", 500))
	if _, err := NewItem(p); err != nil {
		t.Errorf("expected boundary lengths to validate, got %v", err)
	}

	// Limits are in characters, not bytes.
	p = validPatch()
	p.Name = strPtr(strings.Repeat("é", 100))
	p.Description = strPtr(strings.Repeat("ž", 500))
	if _, err := NewItem(p); err != nil {
		t.Errorf("expected multibyte boundary lengths to validate, got %v", err)
	}
}

func TestPatchApplyTo(t *testing.T) {
	item := Item{Name: "Old", Description: "Old description", Price: 5, Quantity: 3, IsActive: true}

	Patch{Price: floatPtr(7.5), Quantity: intPtr(9)}.ApplyTo(&item)

	if item.Name != "Old" || item.Description != "Old description" {
		t.Error("expected absent fields to keep existing values")
	}
	if item.Price != 7.5 || item.Quantity != 9 {
		t.Errorf("expected merged price/quantity, got %v/%d", item.Price, item.Quantity)
	}
}

func TestValidateMergedRecord(t *testing.T) {
	item := Item{Name: "Widget", Description: "A widget", Price: 1, Quantity: 2, IsActive: true}
	Patch{Quantity: intPtr(-5)}.ApplyTo(&item)

	err := item.Validate()
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if valErr.Message != "quantity cannot be negative" {
		t.Errorf("unexpected message %q", valErr.Message)
	}
}
