package product

import (
	"net/http"

	"github.com/cantinhoapps/vendus-gateway/internal/web"
	"github.com/go-chi/chi/v5"
)

// Handler exposes product HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/products", h.listProducts)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		web.Error(w, err, "Erro ao obter produtos do Vendus")
		return
	}
	web.OK(w, map[string]any{"data": products})
}
