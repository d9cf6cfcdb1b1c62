package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aurabikers/tienda-api/internal/domain/entity"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas para el panel del administrador.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de consultas agregadas.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// TotalPedidos cuenta todos los pedidos.
func (r *DashboardRepo) TotalPedidos() (int, error) {
	return r.count(`SELECT COUNT(*) FROM pedidos`)
}

// PedidosPorEstado cuenta pedidos en el estado dado.
func (r *DashboardRepo) PedidosPorEstado(estado entity.EstadoPedido) (int, error) {
	return r.count(`SELECT COUNT(*) FROM pedidos WHERE estado = $1`, estado.String())
}

// MargenPromedio calcula el margen de ganancia promedio del catálogo activo,
// en porcentaje sobre el costo. Productos con costo cero quedan fuera.
func (r *DashboardRepo) MargenPromedio() (decimal.Decimal, error) {
	var margen decimal.Decimal
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(AVG((precio - costo) / costo * 100), 0)
		FROM bicicletas WHERE activo = true AND costo > 0`,
	).Scan(&margen)
	if err != nil {
		return decimal.Zero, fmt.Errorf("margen promedio: %w", err)
	}
	return margen, nil
}

// PQRSPorEstado cuenta casos PQRS en el estado dado.
func (r *DashboardRepo) PQRSPorEstado(estado string) (int, error) {
	return r.count(`SELECT COUNT(*) FROM pqrs WHERE estado = $1`, estado)
}

// PromocionesActivas cuenta promociones activas y vigentes hoy.
func (r *DashboardRepo) PromocionesActivas() (int, error) {
	return r.count(`
		SELECT COUNT(*) FROM promociones
		WHERE activa = true AND CURRENT_DATE BETWEEN fecha_inicio AND fecha_fin`)
}

func (r *DashboardRepo) count(query string, args ...any) (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return n, nil
}
