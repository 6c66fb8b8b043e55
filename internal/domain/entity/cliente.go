package entity

import "time"

// Cliente representa um cliente da loja.
type Cliente struct {
	ID           string
	Nome         string
	Telefone     string
	Email        string
	Endereco     string
	DataCadastro time.Time // somente a data; preenchida no cadastro
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
