package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExpenseCategory classifies an expense for the per-category breakdown.
type ExpenseCategory string

const (
	CategoryAccommodation  ExpenseCategory = "accommodation"
	CategoryTransportation ExpenseCategory = "transportation"
	CategoryAttractions    ExpenseCategory = "attractions"
	CategoryFood           ExpenseCategory = "food"
	CategoryOther          ExpenseCategory = "other"
)

// Valid reports whether c is one of the known expense categories.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case CategoryAccommodation, CategoryTransportation, CategoryAttractions, CategoryFood, CategoryOther:
		return true
	}
	return false
}

// UnmarshalText rejects unknown category values at the decode boundary.
func (c *ExpenseCategory) UnmarshalText(text []byte) error {
	v := ExpenseCategory(text)
	if !v.Valid() {
		return fmt.Errorf("%w: unknown expense category %q", ErrValidation, string(text))
	}
	*c = v
	return nil
}

// Expense is a single recorded cost against a trip's budget.
// Expenses live inside the owning trip's jsonb column, so the struct carries
// json tags for the stored representation.
type Expense struct {
	ID          uuid.UUID       `json:"id"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Currency    string          `json:"currency"`
	Date        time.Time       `json:"date"`
}
