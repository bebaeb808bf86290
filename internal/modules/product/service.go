package product

import (
	"context"

	"github.com/cantinhoapps/vendus-gateway/internal/vendus"
)

// Upstream is the slice of the Vendus client this module needs.
type Upstream interface {
	ListProducts(ctx context.Context) (any, error)
}

// Service defines the product listing business logic.
type Service interface {
	ListProducts(ctx context.Context) ([]Product, error)
}

type service struct {
	upstream Upstream
	rules    []Rule
}

// NewService creates a new product service.
func NewService(upstream Upstream, rules []Rule) Service {
	return &service{upstream: upstream, rules: rules}
}

func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	res, err := s.upstream.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	recs := vendus.UnwrapList(res)
	products := make([]Product, 0, len(recs))
	for _, r := range recs {
		products = append(products, Normalize(vendus.AsMap(r), s.rules))
	}
	return products, nil
}
