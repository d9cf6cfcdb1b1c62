package repository

import (
	"github.com/shopspring/decimal"

	"github.com/aurabikers/tienda-api/internal/domain/entity"
)

// PedidoRepository define el puerto de persistencia para Pedido, sus detalles
// y su historial de estados. El historial es append-only: no hay Update/Delete.
// GetForUpdate bloquea la fila del pedido para serializar despachos
// concurrentes sobre el mismo pedido.
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	CreateDetalle(detalle *entity.DetallePedido) error
	GetByID(id string) (*entity.Pedido, error)
	GetForUpdate(id string) (*entity.Pedido, error)
	GetDetalles(pedidoID string) ([]*entity.DetallePedido, error)
	UpdateEstado(id string, estado entity.EstadoPedido) error
	UpdateVendedor(id, vendedorID string) error
	UpdateTotal(id string, total decimal.Decimal) error
	ListByCliente(clienteID string, limit, offset int) ([]*entity.Pedido, error)
	ListByVendedor(vendedorID string, limit, offset int) ([]*entity.Pedido, error)
	ListByEstados(estados []entity.EstadoPedido, limit, offset int) ([]*entity.Pedido, error)
	List(limit, offset int) ([]*entity.Pedido, error)
	CreateHistorial(h *entity.HistorialEstadoPedido) error
	GetHistorial(pedidoID string) ([]*entity.HistorialEstadoPedido, error)
}
