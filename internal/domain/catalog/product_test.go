package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSellableRef(t *testing.T) {
	t.Run("accepts each known kind", func(t *testing.T) {
		for _, kind := range []SellableKind{SellableKindProduct, SellableKindProductSet, SellableKindAttar} {
			_, err := NewSellableRef(kind, uuid.New())
			assert.NoError(t, err, "kind %s", kind)
		}
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := NewSellableRef(SellableKind("bundle"), uuid.New())
		assert.Error(t, err)
	})

	t.Run("rejects nil id", func(t *testing.T) {
		_, err := NewSellableRef(SellableKindProduct, uuid.Nil)
		assert.Error(t, err)
	})
}

func TestNewProduct(t *testing.T) {
	t.Run("creates active product with uppercased code", func(t *testing.T) {
		p, err := NewProduct("rose-12", "Rose Soap", decimal.NewFromInt(45))

		require.NoError(t, err)
		assert.Equal(t, "ROSE-12", p.Code)
		assert.Equal(t, ProductStatusActive, p.Status)
		assert.Equal(t, SellableKindProduct, p.Ref().Kind)
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := NewProduct("", "Rose Soap", decimal.NewFromInt(45))
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("R1", "Rose Soap", decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}

func TestNewAttar(t *testing.T) {
	t.Run("creates attar with bottle size", func(t *testing.T) {
		a, err := NewAttar("OUD-6", "Oud Royal", 6, decimal.NewFromInt(250))

		require.NoError(t, err)
		assert.Equal(t, 6, a.SizeML)
		assert.Equal(t, SellableKindAttar, a.Ref().Kind)
	})

	t.Run("rejects non-positive size", func(t *testing.T) {
		_, err := NewAttar("OUD-6", "Oud Royal", 0, decimal.NewFromInt(250))
		assert.Error(t, err)
	})
}

func TestProduct_Update(t *testing.T) {
	p, err := NewProduct("R1", "Rose Soap", decimal.NewFromInt(45))
	require.NoError(t, err)

	t.Run("updates fields and the update stamp", func(t *testing.T) {
		before := p.UpdatedAt
		require.NoError(t, p.Update("Rose Soap Deluxe", "with kewra", decimal.NewFromInt(55)))
		assert.Equal(t, "Rose Soap Deluxe", p.Name)
		assert.True(t, p.UnitPrice.Equal(decimal.NewFromInt(55)))
		assert.False(t, p.UpdatedAt.Before(before))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		assert.Error(t, p.Update("", "", decimal.NewFromInt(55)))
	})
}
