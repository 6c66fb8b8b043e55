package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andrelmbraga/pacoca-api/internal/application/dto"
	"github.com/andrelmbraga/pacoca-api/internal/domain"
	"github.com/andrelmbraga/pacoca-api/internal/domain/entity"
	"github.com/andrelmbraga/pacoca-api/internal/domain/repository"
)

var cem = decimal.NewFromInt(100)

// ServicoUseCase casos de uso CRUD para serviços e o relatório de participação.
type ServicoUseCase struct {
	repo repository.ServicoRepository
}

// NewServicoUseCase constrói o caso de uso.
func NewServicoUseCase(repo repository.ServicoRepository) *ServicoUseCase {
	return &ServicoUseCase{repo: repo}
}

// Create cria um novo serviço.
func (uc *ServicoUseCase) Create(in dto.CreateServicoRequest, now time.Time) (*dto.ServicoResponse, error) {
	if in.Servico == "" || in.Valor.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	servico := &entity.Servico{
		ID:        uuid.New().String(),
		Nome:      in.Servico,
		Valor:     in.Valor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(servico); err != nil {
		return nil, err
	}
	return toServicoResponse(servico), nil
}

// GetByID busca um serviço. Retorna nil, nil quando não existe.
func (uc *ServicoUseCase) GetByID(id string) (*dto.ServicoResponse, error) {
	servico, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if servico == nil {
		return nil, nil
	}
	return toServicoResponse(servico), nil
}

// List lista todos os serviços.
func (uc *ServicoUseCase) List() ([]*dto.ServicoResponse, error) {
	lista, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServicoResponse, 0, len(lista))
	for _, s := range lista {
		out = append(out, toServicoResponse(s))
	}
	return out, nil
}

// Update atualiza os campos informados do serviço.
func (uc *ServicoUseCase) Update(id string, in dto.UpdateServicoRequest, now time.Time) (*dto.ServicoResponse, error) {
	servico, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if servico == nil {
		return nil, nil
	}
	if in.Servico != nil {
		if *in.Servico == "" {
			return nil, domain.ErrInvalidInput
		}
		servico.Nome = *in.Servico
	}
	if in.Valor != nil {
		if in.Valor.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		servico.Valor = *in.Valor
	}
	servico.UpdatedAt = now
	if err := uc.repo.Update(servico); err != nil {
		return nil, err
	}
	return toServicoResponse(servico), nil
}

// Delete exclui um serviço.
func (uc *ServicoUseCase) Delete(id string) error {
	servico, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if servico == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Estatisticas calcula o valor total dos serviços e a participação percentual
// de cada um (1 casa decimal). Leitura pura, sem mutação de estado.
func (uc *ServicoUseCase) Estatisticas() (*dto.EstatisticasResponse, error) {
	lista, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, s := range lista {
		total = total.Add(s.Valor)
	}

	dados := make([]dto.ServicoEstatistica, 0, len(lista))
	for _, s := range lista {
		porcentagem := decimal.Zero
		if total.IsPositive() {
			porcentagem = s.Valor.Mul(cem).Div(total).Round(1)
		}
		dados = append(dados, dto.ServicoEstatistica{
			ID:          s.ID,
			Servico:     s.Nome,
			Valor:       s.Valor,
			Porcentagem: porcentagem,
		})
	}
	return &dto.EstatisticasResponse{
		Dados:         dados,
		TotalServicos: len(lista),
		ValorTotal:    total,
	}, nil
}

func toServicoResponse(s *entity.Servico) *dto.ServicoResponse {
	return &dto.ServicoResponse{
		ID:      s.ID,
		Servico: s.Nome,
		Valor:   s.Valor,
	}
}
