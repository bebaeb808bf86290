package document

// CreateDocumentRequest asks Vendus to invoice an existing order.
type CreateDocumentRequest struct {
	OrderID    any `json:"orderId"`
	CustomerID any `json:"customerId"`
}

// Invoice is the normalized subset of the Vendus document response the
// frontend consumes. LinkFatura keeps its historical casing: the PowerApps
// screens bind to it by that exact name.
type Invoice struct {
	InvoiceID     any    `json:"invoiceId"`
	InvoiceNumber any    `json:"invoiceNumber"`
	TotalNet      any    `json:"totalNet"`
	TotalGross    any    `json:"totalGross"`
	IssuedAt      any    `json:"issuedAt"`
	Status        string `json:"status"`
	LinkFatura    any    `json:"LinkFatura,omitempty"`
}
