package document

import (
	"context"

	"github.com/cantinhoapps/vendus-gateway/internal/vendus"
	"github.com/cantinhoapps/vendus-gateway/internal/web"
)

// Upstream is the slice of the Vendus client this module needs.
type Upstream interface {
	CreateDocument(ctx context.Context, payload map[string]any) (any, error)
}

// Service defines the invoice creation logic.
type Service interface {
	CreateInvoice(ctx context.Context, req CreateDocumentRequest) (*Invoice, error)
}

type service struct {
	upstream Upstream
}

// NewService creates a new document service.
func NewService(upstream Upstream) Service {
	return &service{upstream: upstream}
}

func (s *service) CreateInvoice(ctx context.Context, req CreateDocumentRequest) (*Invoice, error) {
	if vendus.IDKey(req.OrderID) == "" {
		return nil, web.Invalid("orderId é obrigatório.")
	}
	if vendus.IDKey(req.CustomerID) == "" {
		return nil, web.Invalid("customerId é obrigatório.")
	}

	res, err := s.upstream.CreateDocument(ctx, map[string]any{
		"type":        "invoice",
		"order_id":    req.OrderID,
		"customer_id": req.CustomerID,
	})
	if err != nil {
		return nil, err
	}

	// The document sometimes comes wrapped under "data", sometimes bare.
	d := vendus.AsMap(res)
	if inner := vendus.AsMap(d["data"]); inner != nil {
		d = inner
	}

	inv := &Invoice{
		InvoiceID:     d["id"],
		InvoiceNumber: d["number"],
		TotalNet:      d["total_net"],
		TotalGross:    d["total_gross"],
		IssuedAt:      d["created_at"],
		Status:        "INVOICE_CREATED",
	}
	if out := vendus.AsMap(d["output"]); out != nil {
		inv.LinkFatura = out["url"]
	}
	return inv, nil
}
