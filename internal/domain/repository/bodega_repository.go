package repository

import "github.com/aurabikers/tienda-api/internal/domain/entity"

// BodegaRepository define el puerto para los registros operativos de bodega:
// ingresos de stock, reportes de daño y confirmaciones de despacho.
type BodegaRepository interface {
	CreateIngreso(ingreso *entity.IngresoStock) error
	ListIngresos(limit, offset int) ([]*entity.IngresoStock, error)
	CreateDano(dano *entity.ProductoDanado) error
	GetDano(id string) (*entity.ProductoDanado, error)
	UpdateDano(dano *entity.ProductoDanado) error
	ListDanos(soloPendientes bool, limit, offset int) ([]*entity.ProductoDanado, error)
	CreateConfirmacionDespacho(c *entity.ConfirmacionDespacho) error
	GetConfirmacionByPedido(pedidoID string) (*entity.ConfirmacionDespacho, error)
}
