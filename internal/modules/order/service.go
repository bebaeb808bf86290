package order

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cantinhoapps/vendus-gateway/internal/vendus"
	"github.com/cantinhoapps/vendus-gateway/internal/web"
	"github.com/google/uuid"
)

// Upstream is the slice of the Vendus client this module needs.
type Upstream interface {
	ListProducts(ctx context.Context) (any, error)
	CreateOrder(ctx context.Context, payload map[string]any) (any, error)
	ListOrders(ctx context.Context, customerID string) (any, error)
}

// Service defines the order business logic.
type Service interface {
	// PlaceOrder validates the requested items against the live Vendus
	// catalog, prices them from it, and submits the order. The steps are
	// strictly sequential; a failure at any step aborts the flow before
	// the next upstream call.
	PlaceOrder(ctx context.Context, req CreateOrderRequest) (*PlaceOrderResult, error)

	// ListCustomerOrders passes the Vendus order listing through untouched.
	ListCustomerOrders(ctx context.Context, customerID string) (any, error)
}

type service struct {
	upstream Upstream

	// strict rejects the whole order on an unknown product or insufficient
	// stock; lenient logs a warning, prices unknown products at zero and
	// submits anyway.
	strict bool
}

// NewService creates a new order service.
func NewService(upstream Upstream, strict bool) Service {
	return &service{upstream: upstream, strict: strict}
}

func (s *service) PlaceOrder(ctx context.Context, req CreateOrderRequest) (*PlaceOrderResult, error) {
	if vendus.IDKey(req.CustomerID) == "" {
		return nil, web.Invalid("Pedido inválido. Cliente é obrigatório.")
	}
	if len(req.Items) == 0 {
		return nil, web.Invalid("Pedido inválido. Itens são obrigatórios.")
	}
	if req.PaymentMethod == "" {
		return nil, web.Invalid("Método de pagamento obrigatório.")
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, web.Invalid("Quantidade inválida para o produto %v.", item.ProductID)
		}
	}

	catalogRes, err := s.upstream.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	catalog := indexCatalog(catalogRes)

	var lines []Line
	var total float64
	for _, item := range req.Items {
		rec, ok := catalog[vendus.IDKey(item.ProductID)]
		if !ok {
			if s.strict {
				return nil, web.Invalid("Produto %v inválido.", item.ProductID)
			}
			log.Printf("aviso: produto %v não consta do catálogo, linha segue a preço zero", item.ProductID)
			lines = append(lines, Line{ProductID: item.ProductID, Qty: item.Quantity, Price: 0})
			continue
		}

		if stock, known := vendus.Num(rec, "stock_total", "stock"); known && stock < float64(item.Quantity) {
			name := vendus.Str(rec, "title", "name")
			if s.strict {
				return nil, web.Invalid("Stock insuficiente para o produto %s.", name)
			}
			log.Printf("aviso: stock insuficiente para %q (%v < %d), linha segue", name, stock, item.Quantity)
		}

		price, _ := vendus.Num(rec, "price", "gross_price")
		total += price * float64(item.Quantity)
		lines = append(lines, Line{ProductID: rec["id"], Qty: item.Quantity, Price: price})
	}

	payload := map[string]any{
		"customer_id":    req.CustomerID,
		"payment_method": req.PaymentMethod,
		"products":       lines,
		"total":          round2(total),
		"external_ref":   externalRef(req.ExternalRef),
	}
	if req.Notes != "" {
		payload["notes"] = req.Notes
	}

	res, err := s.upstream.CreateOrder(ctx, payload)
	if err != nil {
		return nil, err
	}
	return &PlaceOrderResult{OrderID: vendus.ExtractID(res), Details: res}, nil
}

func (s *service) ListCustomerOrders(ctx context.Context, customerID string) (any, error) {
	return s.upstream.ListOrders(ctx, customerID)
}

// indexCatalog keys every catalog record by its normalized id.
func indexCatalog(res any) map[string]map[string]any {
	idx := make(map[string]map[string]any)
	for _, rec := range vendus.UnwrapList(res) {
		m := vendus.AsMap(rec)
		if m == nil {
			continue
		}
		if k := vendus.IDKey(m["id"]); k != "" {
			idx[k] = m
		}
	}
	return idx
}

// externalRef keeps the caller's reference when given, otherwise generates
// a human-readable one: ORD-YYYYMMDD-XXXX.
func externalRef(given string) string {
	if given != "" {
		return given
	}
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("ORD-%s-%s", date, suffix)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
