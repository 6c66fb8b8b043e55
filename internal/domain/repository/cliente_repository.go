package repository

import "github.com/andrelmbraga/pacoca-api/internal/domain/entity"

// ClienteRepository define o porto de persistência para Cliente (DIP).
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	// Delete remove o cliente; as vendas dele são removidas em cascata (FK).
	Delete(id string) error
}
