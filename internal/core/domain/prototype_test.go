package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrototype_CloneMatchesSource(t *testing.T) {
	apple, err := VariantFood.CreateProduct()
	require.NoError(t, err)

	clone := NewPrototype(apple).Clone()

	assert.Equal(t, apple.Name, clone.Name)
	assert.True(t, apple.Price.Equal(clone.Price))
	assert.Equal(t, apple.Description, clone.Description)
	assert.Equal(t, "Product: Apple, Price: 0.5, Description: Fresh red apple", clone.String())
}

func TestPrototype_CloneIsIndependent(t *testing.T) {
	source := NewProduct("Apple", "0.5", "Fresh red apple")
	proto := NewPrototype(source)

	clone := proto.Clone()
	clone.Name = "Pear"
	clone.Price = clone.Price.Add(decimal.NewFromInt(1))
	clone.Description = "Ripe pear"

	assert.Equal(t, "Apple", source.Name)
	assert.Equal(t, "0.5", source.Price.String())
	assert.Equal(t, "Fresh red apple", source.Description)
	assert.True(t, proto.Clone().Equal(source))

	source.Name = "Green apple"
	assert.Equal(t, "Apple", proto.Clone().Name)
}
