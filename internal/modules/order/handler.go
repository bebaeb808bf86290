package order

import (
	"encoding/json"
	"net/http"

	"github.com/cantinhoapps/vendus-gateway/internal/web"
	"github.com/go-chi/chi/v5"
)

// Handler exposes order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/orders", h.placeOrder)
	r.Get("/orders", h.listOrders)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, http.StatusBadRequest, "Corpo do pedido inválido.")
		return
	}
	res, err := h.service.PlaceOrder(r.Context(), req)
	if err != nil {
		web.Error(w, err, "Erro ao criar pedido no Vendus")
		return
	}
	web.OK(w, map[string]any{"orderId": res.OrderID, "details": res.Details})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ListCustomerOrders(r.Context(), r.URL.Query().Get("customerId"))
	if err != nil {
		web.Error(w, err, "Erro ao listar pedidos do Vendus")
		return
	}
	web.OK(w, map[string]any{"data": data})
}
