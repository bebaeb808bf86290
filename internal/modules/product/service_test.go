package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUpstream struct {
	res any
	err error
}

func (s *stubUpstream) ListProducts(context.Context) (any, error) { return s.res, s.err }

func TestListProductsNormalizesWrappedCatalog(t *testing.T) {
	svc := NewService(&stubUpstream{res: map[string]any{
		"data": []any{
			map[string]any{"id": 1.0, "title": "Café", "price": 1.2, "stock_total": 100.0},
			map[string]any{"id": 2.0, "name": "Artigo misterioso"},
		},
	}}, DefaultRules)

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Café", products[0].Name)
	assert.Equal(t, "bebidas", products[0].Category)
	assert.Equal(t, 1.2, products[0].Price)

	assert.Equal(t, DefaultCategory, products[1].Category)
	assert.Nil(t, products[1].Stock)
}

func TestListProductsPropagatesUpstreamError(t *testing.T) {
	svc := NewService(&stubUpstream{err: assert.AnError}, DefaultRules)
	_, err := svc.ListProducts(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
