package order

import (
	"context"
	"strings"
	"testing"

	"github.com/cantinhoapps/vendus-gateway/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUpstream struct {
	catalogRes any
	catalogErr error
	orderRes   any
	orderErr   error
	listRes    any

	catalogCalled bool
	orderCalled   bool
	orderPayload  map[string]any
	listCustomer  string
}

func (s *stubUpstream) ListProducts(context.Context) (any, error) {
	s.catalogCalled = true
	return s.catalogRes, s.catalogErr
}

func (s *stubUpstream) CreateOrder(_ context.Context, payload map[string]any) (any, error) {
	s.orderCalled = true
	s.orderPayload = payload
	return s.orderRes, s.orderErr
}

func (s *stubUpstream) ListOrders(_ context.Context, customerID string) (any, error) {
	s.listCustomer = customerID
	return s.listRes, nil
}

func cafeCatalog() any {
	return map[string]any{"data": []any{
		map[string]any{"id": 1.0, "title": "Café", "price": 1.2, "stock_total": 100.0},
		map[string]any{"id": 2.0, "title": "Sandes", "price": 3.5, "stock_total": 1.0},
	}}
}

func TestPlaceOrderValidatesBeforeAnyUpstreamCall(t *testing.T) {
	cases := []CreateOrderRequest{
		{Items: []OrderItem{{ProductID: 1.0, Quantity: 1}}, PaymentMethod: "mb"},
		{CustomerID: "c1", PaymentMethod: "mb"},
		{CustomerID: "c1", Items: []OrderItem{{ProductID: 1.0, Quantity: 1}}},
		{CustomerID: "c1", Items: []OrderItem{{ProductID: 1.0, Quantity: 0}}, PaymentMethod: "mb"},
	}
	for i, req := range cases {
		up := &stubUpstream{catalogRes: cafeCatalog()}
		_, err := NewService(up, true).PlaceOrder(context.Background(), req)

		var valErr *web.ValidationError
		require.ErrorAs(t, err, &valErr, "case %d", i)
		assert.False(t, up.catalogCalled, "case %d", i)
		assert.False(t, up.orderCalled, "case %d", i)
	}
}

func TestPlaceOrderRejectsUnknownProductBeforeSubmission(t *testing.T) {
	up := &stubUpstream{catalogRes: cafeCatalog()}
	_, err := NewService(up, true).PlaceOrder(context.Background(), CreateOrderRequest{
		CustomerID:    "c1",
		Items:         []OrderItem{{ProductID: 999.0, Quantity: 1}},
		PaymentMethod: "mb",
	})

	var valErr *web.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Message, "999")
	assert.True(t, up.catalogCalled)
	assert.False(t, up.orderCalled)
}

func TestPlaceOrderRejectsInsufficientStock(t *testing.T) {
	up := &stubUpstream{catalogRes: cafeCatalog()}
	_, err := NewService(up, true).PlaceOrder(context.Background(), CreateOrderRequest{
		CustomerID:    "c1",
		Items:         []OrderItem{{ProductID: 2.0, Quantity: 5}},
		PaymentMethod: "mb",
	})

	var valErr *web.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Message, "Sandes")
	assert.False(t, up.orderCalled)
}

func TestPlaceOrderPricesLinesFromCatalog(t *testing.T) {
	up := &stubUpstream{
		catalogRes: cafeCatalog(),
		orderRes:   map[string]any{"id": 55.0},
	}
	res, err := NewService(up, true).PlaceOrder(context.Background(), CreateOrderRequest{
		CustomerID:    "c1",
		Items:         []OrderItem{{ProductID: 1.0, Quantity: 2}},
		PaymentMethod: "numerario",
	})
	require.NoError(t, err)
	assert.Equal(t, 55.0, res.OrderID)

	require.True(t, up.orderCalled)
	lines, ok := up.orderPayload["products"].([]Line)
	require.True(t, ok)
	require.Len(t, lines, 1)
	assert.Equal(t, Line{ProductID: 1.0, Qty: 2, Price: 1.2}, lines[0])
	assert.Equal(t, 2.4, up.orderPayload["total"])
	assert.Equal(t, "numerario", up.orderPayload["payment_method"])
}

func TestPlaceOrderLenientContinuesPastInvalidLines(t *testing.T) {
	up := &stubUpstream{
		catalogRes: cafeCatalog(),
		orderRes:   map[string]any{"data": map[string]any{"id": 8.0}},
	}
	res, err := NewService(up, false).PlaceOrder(context.Background(), CreateOrderRequest{
		CustomerID: "c1",
		Items: []OrderItem{
			{ProductID: 999.0, Quantity: 1}, // desconhecido: segue a preço zero
			{ProductID: 2.0, Quantity: 5},   // stock insuficiente: segue na mesma
		},
		PaymentMethod: "mb",
	})
	require.NoError(t, err)
	assert.Equal(t, 8.0, res.OrderID)

	lines := up.orderPayload["products"].([]Line)
	require.Len(t, lines, 2)
	assert.Equal(t, 0.0, lines[0].Price)
	assert.Equal(t, 3.5, lines[1].Price)
	assert.Equal(t, 17.5, up.orderPayload["total"])
}

func TestPlaceOrderExternalRef(t *testing.T) {
	up := &stubUpstream{catalogRes: cafeCatalog(), orderRes: map[string]any{"id": 1.0}}
	svc := NewService(up, true)

	_, err := svc.PlaceOrder(context.Background(), CreateOrderRequest{
		CustomerID:    "c1",
		Items:         []OrderItem{{ProductID: 1.0, Quantity: 1}},
		PaymentMethod: "mb",
		ExternalRef:   "PA-0042",
	})
	require.NoError(t, err)
	assert.Equal(t, "PA-0042", up.orderPayload["external_ref"])

	_, err = svc.PlaceOrder(context.Background(), CreateOrderRequest{
		CustomerID:    "c1",
		Items:         []OrderItem{{ProductID: 1.0, Quantity: 1}},
		PaymentMethod: "mb",
	})
	require.NoError(t, err)
	ref, _ := up.orderPayload["external_ref"].(string)
	assert.True(t, strings.HasPrefix(ref, "ORD-"), ref)
}

func TestPlaceOrderAbortsOnCatalogFailure(t *testing.T) {
	up := &stubUpstream{catalogErr: assert.AnError}
	_, err := NewService(up, true).PlaceOrder(context.Background(), CreateOrderRequest{
		CustomerID:    "c1",
		Items:         []OrderItem{{ProductID: 1.0, Quantity: 1}},
		PaymentMethod: "mb",
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, up.orderCalled)
}

func TestListCustomerOrdersPassthrough(t *testing.T) {
	up := &stubUpstream{listRes: map[string]any{"data": []any{}}}
	data, err := NewService(up, true).ListCustomerOrders(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, up.listRes, data)
	assert.Equal(t, "42", up.listCustomer)
}
