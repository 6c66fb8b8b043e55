package dto

import "github.com/shopspring/decimal"

// CreateProdutoRequest body para POST /api/produtos.
type CreateProdutoRequest struct {
	Nome       string          `json:"nome"`
	Descricao  string          `json:"descricao,omitempty"`
	PrecoCusto decimal.Decimal `json:"preco_custo"`
	PrecoVenda decimal.Decimal `json:"preco_venda"`
	Estoque    int             `json:"estoque"`
	Categoria  string          `json:"categoria,omitempty"`
	Ativo      *bool           `json:"ativo"`
}

// UpdateProdutoRequest body para PUT /api/produtos/:id (campos opcionais).
// Estoque não é alterado por aqui quando nulo; vendas são o único efeito colateral sobre ele.
type UpdateProdutoRequest struct {
	Nome       *string          `json:"nome"`
	Descricao  *string          `json:"descricao"`
	PrecoCusto *decimal.Decimal `json:"preco_custo"`
	PrecoVenda *decimal.Decimal `json:"preco_venda"`
	Estoque    *int             `json:"estoque"`
	Categoria  *string          `json:"categoria"`
	Ativo      *bool            `json:"ativo"`
}

// ProdutoResponse produto nas respostas (sem preco_custo, que é interno).
type ProdutoResponse struct {
	ID         string          `json:"id"`
	Nome       string          `json:"nome"`
	Descricao  string          `json:"descricao,omitempty"`
	PrecoVenda decimal.Decimal `json:"preco_venda"`
	Estoque    int             `json:"estoque"`
	Categoria  string          `json:"categoria"`
	Ativo      bool            `json:"ativo"`
}
