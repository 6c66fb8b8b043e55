package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/andrelmbraga/pacoca-api/internal/domain"
	"github.com/andrelmbraga/pacoca-api/internal/domain/entity"
	"github.com/andrelmbraga/pacoca-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação de ProdutoRepository sobre PostgreSQL (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoColunas = `id, nome, descricao, preco_custo, preco_venda, estoque, categoria, ativo, created_at, updated_at`

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	err := row.Scan(
		&p.ID, &p.Nome, &p.Descricao, &p.PrecoCusto, &p.PrecoVenda, &p.Estoque,
		&p.Categoria, &p.Ativo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste um novo produto.
func (r *ProdutoRepo) Create(produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (id, nome, descricao, preco_custo, preco_venda, estoque, categoria, ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.Descricao, produto.PrecoCusto, produto.PrecoVenda,
		produto.Estoque, produto.Categoria, produto.Ativo, produto.CreatedAt, produto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE id = $1`
	p, err := scanProduto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
// Serializa escritores concorrentes sobre o mesmo estoque; usar dentro de tx.
func (r *ProdutoRepo) GetByIDForUpdate(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE id = $1 FOR UPDATE`
	p, err := scanProduto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto for update: %w", err)
	}
	return p, nil
}

// ListAtivos lista somente produtos ativos, com paginação.
func (r *ProdutoRepo) ListAtivos(limit, offset int) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColunas + ` FROM produtos WHERE ativo = true ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var lista []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		lista = append(lista, p)
	}
	return lista, rows.Err()
}

// Update atualiza um produto.
func (r *ProdutoRepo) Update(produto *entity.Produto) error {
	query := `
		UPDATE produtos SET nome = $2, descricao = $3, preco_custo = $4, preco_venda = $5,
			estoque = $6, categoria = $7, ativo = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.Descricao, produto.PrecoCusto, produto.PrecoVenda,
		produto.Estoque, produto.Categoria, produto.Ativo, produto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// UpdateEstoque grava somente o novo estoque (usado pelo processador de vendas, sob lock).
func (r *ProdutoRepo) UpdateEstoque(id string, estoque int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET estoque = $2, updated_at = now() WHERE id = $1`,
		id, estoque,
	)
	if err != nil {
		return fmt.Errorf("update estoque: %w", err)
	}
	return nil
}

// Delete exclui um produto por ID. As vendas que o referenciam caem em cascata (FK).
func (r *ProdutoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}
