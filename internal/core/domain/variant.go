package domain

import (
	"fmt"
	"strings"
)

// Variant selects one of the fixed creation strategies.
type Variant int

const (
	VariantMilk Variant = iota + 1
	VariantBread
	VariantFood
	VariantHousehold
)

// Family tells whether a variant creates a specific product or stands for a
// whole product category.
type Family string

const (
	FamilyProduct  Family = "product"
	FamilyCategory Family = "category"
)

type strategy struct {
	name   string
	family Family
	create func() Product
}

var strategies = map[Variant]strategy{
	VariantMilk: {
		name:   "milk",
		family: FamilyProduct,
		create: func() Product { return NewProduct("Milk", "2.5", "Fresh cow milk") },
	},
	VariantBread: {
		name:   "bread",
		family: FamilyProduct,
		create: func() Product { return NewProduct("Bread", "1.0", "Whole wheat bread") },
	},
	VariantFood: {
		name:   "food",
		family: FamilyCategory,
		create: func() Product { return NewProduct("Apple", "0.5", "Fresh red apple") },
	},
	VariantHousehold: {
		name:   "household",
		family: FamilyCategory,
		create: func() Product { return NewProduct("Soap", "1.2", "Gentle skin soap") },
	},
}

// Variants returns every variant in catalog order.
func Variants() []Variant {
	return []Variant{VariantMilk, VariantBread, VariantFood, VariantHousehold}
}

func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, v := range Variants() {
		if strategies[v].name == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

func (v Variant) String() string {
	if s, ok := strategies[v]; ok {
		return s.name
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

func (v Variant) Family() Family {
	return strategies[v].family
}

func (v Variant) Valid() bool {
	_, ok := strategies[v]
	return ok
}

// CreateProduct runs the variant's strategy. Only values outside the declared
// constants can fail.
func (v Variant) CreateProduct() (Product, error) {
	s, ok := strategies[v]
	if !ok {
		return Product{}, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	return s.create(), nil
}
