package document

import (
	"encoding/json"
	"net/http"

	"github.com/cantinhoapps/vendus-gateway/internal/web"
	"github.com/go-chi/chi/v5"
)

// Handler exposes document HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/documents", h.createInvoice)
}

func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	var req CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Fail(w, http.StatusBadRequest, "Corpo do pedido inválido.")
		return
	}
	inv, err := h.service.CreateInvoice(r.Context(), req)
	if err != nil {
		web.Error(w, err, "Erro ao criar fatura no Vendus")
		return
	}
	web.OK(w, map[string]any{
		"invoiceId":     inv.InvoiceID,
		"invoiceNumber": inv.InvoiceNumber,
		"totalNet":      inv.TotalNet,
		"totalGross":    inv.TotalGross,
		"issuedAt":      inv.IssuedAt,
		"status":        inv.Status,
		"LinkFatura":    inv.LinkFatura,
	})
}
