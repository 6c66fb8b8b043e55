package repository

import "github.com/andrelmbraga/pacoca-api/internal/domain/entity"

// VendaRepository define o porto de persistência para Venda.
type VendaRepository interface {
	Create(venda *entity.Venda) error
	GetByID(id string) (*entity.Venda, error)
	// List retorna vendas ordenadas por data_venda decrescente.
	List(limit, offset int) ([]*entity.Venda, error)
	Update(venda *entity.Venda) error
	Delete(id string) error
}
