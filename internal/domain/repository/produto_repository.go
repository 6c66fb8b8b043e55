package repository

import "github.com/andrelmbraga/pacoca-api/internal/domain/entity"

// ProdutoRepository define o porto de persistência para Produto.
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	// GetByIDForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
	// Usar somente dentro de transação, antes de decrementar estoque.
	GetByIDForUpdate(id string) (*entity.Produto, error)
	// ListAtivos lista somente produtos com ativo = true.
	ListAtivos(limit, offset int) ([]*entity.Produto, error)
	Update(produto *entity.Produto) error
	// UpdateEstoque grava somente o novo estoque (usado pelo processador de vendas).
	UpdateEstoque(id string, estoque int) error
	// Delete remove o produto; as vendas que o referenciam são removidas em cascata (FK).
	Delete(id string) error
}
