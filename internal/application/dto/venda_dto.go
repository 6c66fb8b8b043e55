package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVendaRequest body para POST /api/vendas (um item do carrinho).
// Quantidade zero assume 1; FormaPagamento vazia assume "Dinheiro".
// ValorUnitario/ValorTotal em zero são calculados a partir do preço do produto.
type CreateVendaRequest struct {
	ClienteID      string          `json:"cliente"`
	ProdutoID      string          `json:"produto"`
	Quantidade     int             `json:"quantidade"`
	ValorUnitario  decimal.Decimal `json:"valor_unitario"`
	ValorTotal     decimal.Decimal `json:"valor_total"`
	FormaPagamento string          `json:"forma_pagamento,omitempty"`
	Observacoes    string          `json:"observacoes,omitempty"`
}

// UpdateVendaRequest body para PUT /api/vendas/:id.
// Somente quantidade, forma de pagamento e observações; estoque não é reajustado.
type UpdateVendaRequest struct {
	Quantidade     *int    `json:"quantidade"`
	FormaPagamento *string `json:"forma_pagamento"`
	Observacoes    *string `json:"observacoes"`
}

// VendaResponse projeção de leitura: venda com cliente e produto embutidos.
type VendaResponse struct {
	ID             string          `json:"id"`
	DataVenda      time.Time       `json:"data_venda"`
	Cliente        ClienteResponse `json:"cliente"`
	Produto        ProdutoResponse `json:"produto"`
	Quantidade     int             `json:"quantidade"`
	ValorUnitario  decimal.Decimal `json:"valor_unitario"`
	ValorTotal     decimal.Decimal `json:"valor_total"`
	FormaPagamento string          `json:"forma_pagamento"`
	Observacoes    string          `json:"observacoes,omitempty"`
}
