package domain

// Prototype keeps its own copy of a source product and hands out clones of it.
type Prototype struct {
	source Product
}

func NewPrototype(source Product) *Prototype {
	return &Prototype{source: source}
}

// Clone returns a product equal to the source field for field. Product holds
// only values and decimal.Decimal is immutable, so the copy shares nothing a
// caller can mutate.
func (p *Prototype) Clone() Product {
	return Product{
		Name:        p.source.Name,
		Price:       p.source.Price,
		Description: p.source.Description,
	}
}
