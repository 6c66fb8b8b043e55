package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FormaPagamentoPadrao é aplicada quando a requisição não informa forma de pagamento.
const FormaPagamentoPadrao = "Dinheiro"

// Venda representa uma venda concluída de um produto para um cliente.
// ValorUnitario e ValorTotal são calculados na criação quando não informados.
type Venda struct {
	ID             string
	DataVenda      time.Time
	ClienteID      string
	ProdutoID      string
	Quantidade     int
	ValorUnitario  decimal.Decimal
	ValorTotal     decimal.Decimal
	FormaPagamento string
	Observacoes    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
