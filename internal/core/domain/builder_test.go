package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Chain(t *testing.T) {
	p := NewBuilder().
		SetName("Custom Product").
		SetPrice(decimal.RequireFromString("3.5")).
		SetDescription("Custom description").
		Build()

	assert.Equal(t, "Custom Product", p.Name)
	assert.Equal(t, "3.5", p.Price.String())
	assert.Equal(t, "Custom description", p.Description)
}

func TestBuilder_LastValueWins(t *testing.T) {
	p := NewBuilder().
		SetName("first").
		SetPrice(decimal.NewFromInt(1)).
		SetName("second").
		SetPrice(decimal.NewFromInt(2)).
		SetDescription("a").
		SetDescription("b").
		Build()

	assert.Equal(t, "second", p.Name)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, "b", p.Description)
}

func TestBuilder_UnsetFieldsKeepDefaults(t *testing.T) {
	p := NewBuilder().SetName("Only name").Build()

	assert.Equal(t, "Only name", p.Name)
	assert.True(t, p.Price.IsZero())
	assert.Empty(t, p.Description)

	assert.Equal(t, Product{}, NewBuilder().Build())
}

func TestBuilder_BuildCopies(t *testing.T) {
	b := NewBuilder().SetName("Tea").SetDescription("Green tea")

	first := b.Build()
	second := b.Build()
	second.Name = "Coffee"

	b.SetDescription("Black tea")

	assert.Equal(t, "Tea", first.Name)
	assert.Equal(t, "Green tea", first.Description)
	assert.Equal(t, "Black tea", b.Build().Description)
	assert.Equal(t, "Tea", b.Build().Name)
}

func TestBuilder_BuildValid(t *testing.T) {
	_, err := NewBuilder().SetName("Nameless description").BuildValid()
	assert.True(t, errors.Is(err, ErrInvalidProductData))

	p, err := NewBuilder().
		SetName("Jam").
		SetPrice(decimal.RequireFromString("4.10")).
		SetDescription("Strawberry jam").
		BuildValid()
	require.NoError(t, err)
	assert.Equal(t, "Jam", p.Name)
}
