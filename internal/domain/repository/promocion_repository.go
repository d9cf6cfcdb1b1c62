package repository

import "github.com/aurabikers/tienda-api/internal/domain/entity"

// PromocionRepository define el puerto de persistencia para promociones.
// ListActivas devuelve las marcadas activas; la vigencia por fechas se evalúa
// en dominio (entity.Promocion.Vigente).
type PromocionRepository interface {
	Create(p *entity.Promocion) error
	GetByID(id string) (*entity.Promocion, error)
	Update(p *entity.Promocion) error
	List(limit, offset int) ([]*entity.Promocion, error)
	ListActivas() ([]*entity.Promocion, error)
}
