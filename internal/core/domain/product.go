package domain

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

type Product struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// NewProduct returns a Product from a price given in its decimal text form.
// It panics on a malformed price, so it is only meant for literals.
func NewProduct(name, price, description string) Product {
	return Product{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Description: description,
	}
}

// String renders the display line.
func (p Product) String() string {
	return fmt.Sprintf("Product: %s, Price: %s, Description: %s", p.Name, p.PriceText(), p.Description)
}

// PriceText renders the price at the scale it was written with, so 1.0
// stays 1.0 rather than collapsing to 1.
func (p Product) PriceText() string {
	if exp := p.Price.Exponent(); exp < 0 {
		return p.Price.StringFixed(-exp)
	}
	return p.Price.String()
}

// Display writes the display line followed by a newline.
func (p Product) Display(w io.Writer) error {
	_, err := fmt.Fprintln(w, p.String())
	return err
}

func (p Product) Equal(other Product) bool {
	return p.Name == other.Name &&
		p.Price.Equal(other.Price) &&
		p.Description == other.Description
}

// Validate checks the product against the catalog rules. Creation paths do
// not call it; callers opt in.
func (p Product) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if p.Price.IsNegative() {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if p.Description == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	return nil
}
