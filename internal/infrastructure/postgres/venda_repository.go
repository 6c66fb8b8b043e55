package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/andrelmbraga/pacoca-api/internal/domain/entity"
	"github.com/andrelmbraga/pacoca-api/internal/domain/repository"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaRepo implementação de VendaRepository sobre PostgreSQL (usável com pool ou tx).
type VendaRepo struct {
	q Querier
}

// NewVendaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

const vendaColunas = `id, data_venda, cliente_id, produto_id, quantidade, valor_unitario, valor_total, forma_pagamento, observacoes, created_at, updated_at`

func scanVenda(row pgx.Row) (*entity.Venda, error) {
	var v entity.Venda
	err := row.Scan(
		&v.ID, &v.DataVenda, &v.ClienteID, &v.ProdutoID, &v.Quantidade,
		&v.ValorUnitario, &v.ValorTotal, &v.FormaPagamento, &v.Observacoes,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create persiste uma nova venda.
func (r *VendaRepo) Create(venda *entity.Venda) error {
	query := `
		INSERT INTO vendas (id, data_venda, cliente_id, produto_id, quantidade, valor_unitario, valor_total, forma_pagamento, observacoes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		venda.ID, venda.DataVenda, venda.ClienteID, venda.ProdutoID, venda.Quantidade,
		venda.ValorUnitario, venda.ValorTotal, venda.FormaPagamento, venda.Observacoes,
		venda.CreatedAt, venda.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

// GetByID obtém uma venda por ID.
func (r *VendaRepo) GetByID(id string) (*entity.Venda, error) {
	query := `SELECT ` + vendaColunas + ` FROM vendas WHERE id = $1`
	v, err := scanVenda(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	return v, nil
}

// List lista vendas ordenadas por data_venda decrescente, com paginação.
func (r *VendaRepo) List(limit, offset int) ([]*entity.Venda, error) {
	query := `SELECT ` + vendaColunas + ` FROM vendas ORDER BY data_venda DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()
	var lista []*entity.Venda
	for rows.Next() {
		v, err := scanVenda(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		lista = append(lista, v)
	}
	return lista, rows.Err()
}

// Update atualiza os campos editáveis de uma venda.
func (r *VendaRepo) Update(venda *entity.Venda) error {
	query := `
		UPDATE vendas SET quantidade = $2, valor_total = $3, forma_pagamento = $4, observacoes = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		venda.ID, venda.Quantidade, venda.ValorTotal, venda.FormaPagamento, venda.Observacoes, venda.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update venda: %w", err)
	}
	return nil
}

// Delete exclui uma venda por ID.
func (r *VendaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vendas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venda: %w", err)
	}
	return nil
}
