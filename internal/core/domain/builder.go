package domain

import "github.com/shopspring/decimal"

// Builder assembles a Product step by step. Build returns a copy of the
// record, so results from successive calls never share state. A Builder is
// not safe for concurrent use.
type Builder struct {
	product Product
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetName(name string) *Builder {
	b.product.Name = name
	return b
}

func (b *Builder) SetPrice(price decimal.Decimal) *Builder {
	b.product.Price = price
	return b
}

func (b *Builder) SetDescription(description string) *Builder {
	b.product.Description = description
	return b
}

func (b *Builder) Build() Product {
	return b.product
}

// BuildValid is Build followed by Validate.
func (b *Builder) BuildValid() (Product, error) {
	p := b.Build()
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}
