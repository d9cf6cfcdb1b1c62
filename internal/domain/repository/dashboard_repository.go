package repository

import (
	"github.com/shopspring/decimal"

	"github.com/aurabikers/tienda-api/internal/domain/entity"
)

// DashboardRepository define consultas agregadas para el panel del administrador.
type DashboardRepository interface {
	TotalPedidos() (int, error)
	PedidosPorEstado(estado entity.EstadoPedido) (int, error)
	MargenPromedio() (decimal.Decimal, error)
	PQRSPorEstado(estado string) (int, error)
	PromocionesActivas() (int, error)
}
