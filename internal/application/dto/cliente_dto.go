package dto

// CreateClienteRequest body para POST /api/clientes.
type CreateClienteRequest struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone,omitempty"`
	Email    string `json:"email,omitempty"`
	Endereco string `json:"endereco,omitempty"`
}

// UpdateClienteRequest body para PUT /api/clientes/:id (campos opcionais).
type UpdateClienteRequest struct {
	Nome     *string `json:"nome"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"`
	Endereco *string `json:"endereco"`
}

// ClienteResponse cliente nas respostas. DataCadastro no formato YYYY-MM-DD.
type ClienteResponse struct {
	ID           string `json:"id"`
	Nome         string `json:"nome"`
	Telefone     string `json:"telefone,omitempty"`
	Email        string `json:"email,omitempty"`
	Endereco     string `json:"endereco,omitempty"`
	DataCadastro string `json:"data_cadastro"`
}
