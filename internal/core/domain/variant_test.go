package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariant_CreateProduct(t *testing.T) {
	tests := []struct {
		variant     Variant
		name        string
		price       string
		description string
		family      Family
	}{
		{VariantMilk, "Milk", "2.5", "Fresh cow milk", FamilyProduct},
		{VariantBread, "Bread", "1.0", "Whole wheat bread", FamilyProduct},
		{VariantFood, "Apple", "0.5", "Fresh red apple", FamilyCategory},
		{VariantHousehold, "Soap", "1.2", "Gentle skin soap", FamilyCategory},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			p, err := tt.variant.CreateProduct()
			require.NoError(t, err)

			assert.Equal(t, tt.name, p.Name)
			assert.True(t, p.Price.Equal(NewProduct("", tt.price, "").Price), "price %s", p.Price)
			assert.Equal(t, tt.description, p.Description)
			assert.Equal(t, tt.family, tt.variant.Family())
			assert.NoError(t, p.Validate())
		})
	}
}

func TestVariant_CreateProductReturnsFreshValues(t *testing.T) {
	first, err := VariantMilk.CreateProduct()
	require.NoError(t, err)
	first.Name = "Goat milk"

	second, err := VariantMilk.CreateProduct()
	require.NoError(t, err)
	assert.Equal(t, "Milk", second.Name)
}

func TestVariant_Unknown(t *testing.T) {
	v := Variant(42)

	assert.False(t, v.Valid())
	assert.Equal(t, "variant(42)", v.String())

	_, err := v.CreateProduct()
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		parsed, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}

	v, err := ParseVariant("  Household ")
	require.NoError(t, err)
	assert.Equal(t, VariantHousehold, v)

	_, err = ParseVariant("electronics")
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}
