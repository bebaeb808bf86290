package customer

// CreateCustomerRequest is what PowerApps sends; field names stay in
// Portuguese because the frontend forms are.
type CreateCustomerRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone"`
	NIF      string `json:"nif,omitempty"`
}

// EnsureResult reports which Vendus customer the request resolved to and
// whether a new record was created.
type EnsureResult struct {
	CustomerID any  `json:"customerId"`
	Created    bool `json:"created"`
}
