package customer

import (
	"encoding/json"
	"net/http"

	"github.com/cantinhoapps/vendus-gateway/internal/web"
	"github.com/go-chi/chi/v5"
)

// Handler exposes customer HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/customers", h.ensureCustomer)
}

func (h *Handler) ensureCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, http.StatusBadRequest, "Corpo do pedido inválido.")
		return
	}
	res, err := h.service.EnsureCustomer(r.Context(), req)
	if err != nil {
		web.Error(w, err, "Erro ao processar cliente")
		return
	}
	web.OK(w, map[string]any{"customerId": res.CustomerID, "created": res.Created})
}
