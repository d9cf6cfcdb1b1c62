package repository

import "github.com/aurabikers/tienda-api/internal/domain/entity"

// FiltroCatalogo agrupa los filtros de búsqueda del catálogo.
// Marca se compara sin distinguir mayúsculas (contiene).
type FiltroCatalogo struct {
	Gama        string
	Tipo        string
	Marca       string
	SoloActivas bool
}

// BicicletaRepository define el puerto de persistencia para Bicicleta.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar los ajustes
// de stock dentro de una transacción.
type BicicletaRepository interface {
	Create(b *entity.Bicicleta) error
	GetByID(id string) (*entity.Bicicleta, error)
	GetForUpdate(id string) (*entity.Bicicleta, error)
	Update(b *entity.Bicicleta) error
	UpdateStock(id string, stock int) error
	List(filtro FiltroCatalogo, limit, offset int) ([]*entity.Bicicleta, error)
	CountBajoStock(umbral int) (int, error)
}
