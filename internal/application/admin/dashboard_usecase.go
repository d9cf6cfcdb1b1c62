package admin

import (
	"github.com/aurabikers/tienda-api/internal/application/dto"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

// Umbral de unidades bajo el cual un producto cuenta como de bajo stock.
const umbralBajoStock = 3

// DashboardUseCase arma las métricas del panel del administrador.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
	bicicletaRepo repository.BicicletaRepository
}

// NewDashboardUseCase construye el caso de uso del panel.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository, bicicletaRepo repository.BicicletaRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo, bicicletaRepo: bicicletaRepo}
}

// Resumen consulta los agregados del negocio: volumen de pedidos, entregas,
// margen promedio del catálogo, PQRS abiertos, promociones vigentes y
// productos con poco inventario.
func (uc *DashboardUseCase) Resumen() (*dto.DashboardResponse, error) {
	total, err := uc.dashboardRepo.TotalPedidos()
	if err != nil {
		return nil, err
	}
	entregados, err := uc.dashboardRepo.PedidosPorEstado(entity.EstadoEntregado)
	if err != nil {
		return nil, err
	}
	margen, err := uc.dashboardRepo.MargenPromedio()
	if err != nil {
		return nil, err
	}
	pqrsAbiertos, err := uc.dashboardRepo.PQRSPorEstado(entity.PQRSAbierto)
	if err != nil {
		return nil, err
	}
	promociones, err := uc.dashboardRepo.PromocionesActivas()
	if err != nil {
		return nil, err
	}
	bajoStock, err := uc.bicicletaRepo.CountBajoStock(umbralBajoStock)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		TotalPedidos:       total,
		PedidosEntregados:  entregados,
		MargenPromedio:     margen,
		PQRSAbiertos:       pqrsAbiertos,
		PromocionesActivas: promociones,
		BajoStock:          bajoStock,
	}, nil
}
