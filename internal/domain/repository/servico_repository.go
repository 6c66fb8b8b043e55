package repository

import "github.com/andrelmbraga/pacoca-api/internal/domain/entity"

// ServicoRepository define o porto de persistência para Servico.
type ServicoRepository interface {
	Create(servico *entity.Servico) error
	GetByID(id string) (*entity.Servico, error)
	List() ([]*entity.Servico, error)
	Update(servico *entity.Servico) error
	Delete(id string) error
}
