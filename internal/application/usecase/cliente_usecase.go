package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/andrelmbraga/pacoca-api/internal/application/dto"
	"github.com/andrelmbraga/pacoca-api/internal/domain"
	"github.com/andrelmbraga/pacoca-api/internal/domain/entity"
	"github.com/andrelmbraga/pacoca-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create cria um novo cliente. A data de cadastro é o dia da criação.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest, now time.Time) (*dto.ClienteResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	cliente := &entity.Cliente{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		Telefone:     in.Telefone,
		Email:        in.Email,
		Endereco:     in.Endereco,
		DataCadastro: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID busca um cliente. Retorna nil, nil quando não existe.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	return toClienteResponse(cliente), nil
}

// List lista clientes com paginação.
func (uc *ClienteUseCase) List(limit, offset int) ([]*dto.ClienteResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	lista, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(lista))
	for _, c := range lista {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// Update atualiza os campos informados do cliente.
func (uc *ClienteUseCase) Update(id string, in dto.UpdateClienteRequest, now time.Time) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	if in.Nome != nil {
		if *in.Nome == "" {
			return nil, domain.ErrInvalidInput
		}
		cliente.Nome = *in.Nome
	}
	if in.Telefone != nil {
		cliente.Telefone = *in.Telefone
	}
	if in.Email != nil {
		cliente.Email = *in.Email
	}
	if in.Endereco != nil {
		cliente.Endereco = *in.Endereco
	}
	cliente.UpdatedAt = now
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// Delete exclui um cliente; as vendas dele caem junto (cascade).
func (uc *ClienteUseCase) Delete(id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:           c.ID,
		Nome:         c.Nome,
		Telefone:     c.Telefone,
		Email:        c.Email,
		Endereco:     c.Endereco,
		DataCadastro: c.DataCadastro.Format("2006-01-02"),
	}
}
