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

var _ repository.ServicoRepository = (*ServicoRepo)(nil)

// ServicoRepo implementação de ServicoRepository sobre PostgreSQL.
type ServicoRepo struct {
	q Querier
}

// NewServicoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewServicoRepository(q Querier) *ServicoRepo {
	return &ServicoRepo{q: q}
}

// Create persiste um novo serviço.
func (r *ServicoRepo) Create(servico *entity.Servico) error {
	query := `
		INSERT INTO servicos (id, servico, valor, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		servico.ID, servico.Nome, servico.Valor, servico.CreatedAt, servico.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert servico: %w", err)
	}
	return nil
}

// GetByID obtém um serviço por ID.
func (r *ServicoRepo) GetByID(id string) (*entity.Servico, error) {
	query := `SELECT id, servico, valor, created_at, updated_at FROM servicos WHERE id = $1`
	var s entity.Servico
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Nome, &s.Valor, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get servico: %w", err)
	}
	return &s, nil
}

// List lista todos os serviços (o relatório de estatísticas precisa do conjunto completo).
func (r *ServicoRepo) List() ([]*entity.Servico, error) {
	query := `SELECT id, servico, valor, created_at, updated_at FROM servicos ORDER BY servico`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list servicos: %w", err)
	}
	defer rows.Close()
	var lista []*entity.Servico
	for rows.Next() {
		var s entity.Servico
		if err := rows.Scan(&s.ID, &s.Nome, &s.Valor, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan servico: %w", err)
		}
		lista = append(lista, &s)
	}
	return lista, rows.Err()
}

// Update atualiza um serviço.
func (r *ServicoRepo) Update(servico *entity.Servico) error {
	query := `UPDATE servicos SET servico = $2, valor = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		servico.ID, servico.Nome, servico.Valor, servico.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update servico: %w", err)
	}
	return nil
}

// Delete exclui um serviço por ID.
func (r *ServicoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM servicos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete servico: %w", err)
	}
	return nil
}
