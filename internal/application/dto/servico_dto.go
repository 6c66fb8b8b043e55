package dto

import "github.com/shopspring/decimal"

// CreateServicoRequest body para POST /api/servicos.
type CreateServicoRequest struct {
	Servico string          `json:"servico"`
	Valor   decimal.Decimal `json:"valor"`
}

// UpdateServicoRequest body para PUT /api/servicos/:id (campos opcionais).
type UpdateServicoRequest struct {
	Servico *string          `json:"servico"`
	Valor   *decimal.Decimal `json:"valor"`
}

// ServicoResponse serviço nas respostas.
type ServicoResponse struct {
	ID      string          `json:"id"`
	Servico string          `json:"servico"`
	Valor   decimal.Decimal `json:"valor"`
}

// ServicoEstatistica participação de um serviço no total (porcentagem com 1 casa decimal).
type ServicoEstatistica struct {
	ID          string          `json:"id"`
	Servico     string          `json:"servico"`
	Valor       decimal.Decimal `json:"valor"`
	Porcentagem decimal.Decimal `json:"porcentagem"`
}

// EstatisticasResponse relatório de GET /api/servicos/estatisticas.
type EstatisticasResponse struct {
	Dados         []ServicoEstatistica `json:"dados"`
	TotalServicos int                  `json:"total_servicos"`
	ValorTotal    decimal.Decimal      `json:"valor_total"`
}
