package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um produto à venda.
// Estoque é decrementado somente pela criação de vendas; nunca fica negativo.
type Produto struct {
	ID         string
	Nome       string
	Descricao  string
	PrecoCusto decimal.Decimal
	PrecoVenda decimal.Decimal
	Estoque    int
	Categoria  string
	Ativo      bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
