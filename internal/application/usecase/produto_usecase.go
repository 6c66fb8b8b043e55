package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/andrelmbraga/pacoca-api/internal/application/dto"
	"github.com/andrelmbraga/pacoca-api/internal/domain"
	"github.com/andrelmbraga/pacoca-api/internal/domain/entity"
	"github.com/andrelmbraga/pacoca-api/internal/domain/repository"
)

// CategoriaPadrao aplicada quando o cadastro não informa categoria.
const CategoriaPadrao = "Paçoca"

// ProdutoUseCase casos de uso CRUD para produtos.
// Estoque só é decrementado pelo processador de vendas.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Create cria um novo produto. Preço de venda obrigatório e não negativo.
func (uc *ProdutoUseCase) Create(in dto.CreateProdutoRequest, now time.Time) (*dto.ProdutoResponse, error) {
	if in.Nome == "" || in.PrecoVenda.IsNegative() || in.PrecoCusto.IsNegative() || in.Estoque < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Categoria == "" {
		in.Categoria = CategoriaPadrao
	}
	ativo := true
	if in.Ativo != nil {
		ativo = *in.Ativo
	}
	produto := &entity.Produto{
		ID:         uuid.New().String(),
		Nome:       in.Nome,
		Descricao:  in.Descricao,
		PrecoCusto: in.PrecoCusto,
		PrecoVenda: in.PrecoVenda,
		Estoque:    in.Estoque,
		Categoria:  in.Categoria,
		Ativo:      ativo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// GetByID busca um produto. Retorna nil, nil quando não existe.
func (uc *ProdutoUseCase) GetByID(id string) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	return toProdutoResponse(produto), nil
}

// List lista somente produtos ativos.
func (uc *ProdutoUseCase) List(limit, offset int) ([]*dto.ProdutoResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	lista, err := uc.repo.ListAtivos(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProdutoResponse, 0, len(lista))
	for _, p := range lista {
		out = append(out, toProdutoResponse(p))
	}
	return out, nil
}

// Update atualiza os campos informados do produto.
func (uc *ProdutoUseCase) Update(id string, in dto.UpdateProdutoRequest, now time.Time) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	if in.Nome != nil {
		if *in.Nome == "" {
			return nil, domain.ErrInvalidInput
		}
		produto.Nome = *in.Nome
	}
	if in.Descricao != nil {
		produto.Descricao = *in.Descricao
	}
	if in.PrecoCusto != nil {
		if in.PrecoCusto.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		produto.PrecoCusto = *in.PrecoCusto
	}
	if in.PrecoVenda != nil {
		if in.PrecoVenda.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		produto.PrecoVenda = *in.PrecoVenda
	}
	if in.Estoque != nil {
		if *in.Estoque < 0 {
			return nil, domain.ErrInvalidInput
		}
		produto.Estoque = *in.Estoque
	}
	if in.Categoria != nil {
		produto.Categoria = *in.Categoria
	}
	if in.Ativo != nil {
		produto.Ativo = *in.Ativo
	}
	produto.UpdatedAt = now
	if err := uc.repo.Update(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// Delete exclui um produto; as vendas que o referenciam caem junto (cascade).
func (uc *ProdutoUseCase) Delete(id string) error {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:         p.ID,
		Nome:       p.Nome,
		Descricao:  p.Descricao,
		PrecoVenda: p.PrecoVenda,
		Estoque:    p.Estoque,
		Categoria:  p.Categoria,
		Ativo:      p.Ativo,
	}
}
