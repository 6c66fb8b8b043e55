package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Servico representa um serviço prestado, usado apenas em relatórios.
// Vendas não alteram serviços.
type Servico struct {
	ID        string
	Nome      string
	Valor     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
