package repository

import "github.com/aurabikers/tienda-api/internal/domain/entity"

// PQRSRepository define el puerto de persistencia para casos PQRS.
type PQRSRepository interface {
	Create(p *entity.PQRS) error
	GetByID(id string) (*entity.PQRS, error)
	Update(p *entity.PQRS) error
	ListByCliente(clienteID string, limit, offset int) ([]*entity.PQRS, error)
	List(estado string, limit, offset int) ([]*entity.PQRS, error)
}
