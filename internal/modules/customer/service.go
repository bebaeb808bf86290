package customer

import (
	"context"

	"github.com/cantinhoapps/vendus-gateway/internal/vendus"
	"github.com/cantinhoapps/vendus-gateway/internal/web"
)

// Upstream is the slice of the Vendus client this module needs.
type Upstream interface {
	ListCustomers(ctx context.Context) (any, error)
	CreateCustomer(ctx context.Context, payload map[string]any) (any, error)
}

// Service defines the customer dedup-and-create logic.
type Service interface {
	// EnsureCustomer finds an existing Vendus customer by phone or fiscal id,
	// creating one only when no match exists. The search-then-create window
	// is racy under concurrent identical requests; uniqueness enforcement
	// belongs to Vendus, which holds the records.
	EnsureCustomer(ctx context.Context, req CreateCustomerRequest) (*EnsureResult, error)
}

type service struct {
	upstream Upstream
}

// NewService creates a new customer service.
func NewService(upstream Upstream) Service {
	return &service{upstream: upstream}
}

func (s *service) EnsureCustomer(ctx context.Context, req CreateCustomerRequest) (*EnsureResult, error) {
	if req.Nome == "" {
		return nil, web.Invalid("Nome é obrigatório.")
	}
	if req.Telefone == "" {
		return nil, web.Invalid("Telefone é obrigatório.")
	}

	listed, err := s.upstream.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range vendus.UnwrapList(listed) {
		m := vendus.AsMap(rec)
		if m == nil {
			continue
		}
		phone := vendus.Str(m, "phone", "mobile")
		fiscal := vendus.Str(m, "fiscal_id")
		if phone == req.Telefone || (req.NIF != "" && fiscal == req.NIF) {
			return &EnsureResult{CustomerID: vendus.ExtractID(m), Created: false}, nil
		}
	}

	// Vendus rejects malformed fiscal ids outright, so anything that is not
	// a 9-digit NIF is sent empty.
	fiscal := ""
	if len(req.NIF) == 9 {
		fiscal = req.NIF
	}
	created, err := s.upstream.CreateCustomer(ctx, map[string]any{
		"name":      req.Nome,
		"email":     req.Email,
		"phone":     req.Telefone,
		"fiscal_id": fiscal,
	})
	if err != nil {
		return nil, err
	}
	return &EnsureResult{CustomerID: vendus.ExtractID(created), Created: true}, nil
}
