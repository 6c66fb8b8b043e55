package dto

// ErrorResponse corpo de erro HTTP.
// Details carrega mensagens por campo ou por item (lote de vendas).
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
