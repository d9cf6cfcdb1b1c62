package bodega

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aurabikers/tienda-api/internal/application/dto"
	"github.com/aurabikers/tienda-api/internal/domain"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta una función con repositorios atados a una transacción.
// El registro del movimiento y el ajuste de stock van juntos o no van.
type TxRunner interface {
	RunBodega(ctx context.Context, fn func(
		bicicletaRepo repository.BicicletaRepository,
		bodegaRepo repository.BodegaRepository,
	) error) error
}

// BodegaUseCase cubre la operación de bodega: ingresos de stock, reportes de
// producto dañado y el panel del bodeguero. Todo ajuste de inventario queda
// documentado con quién lo hizo y por qué.
type BodegaUseCase struct {
	txRunner      TxRunner
	bicicletaRepo repository.BicicletaRepository
	bodegaRepo    repository.BodegaRepository
	pedidoRepo    repository.PedidoRepository
	ahora         func() time.Time
}

// NewBodegaUseCase construye el caso de uso de bodega.
func NewBodegaUseCase(
	txRunner TxRunner,
	bicicletaRepo repository.BicicletaRepository,
	bodegaRepo repository.BodegaRepository,
	pedidoRepo repository.PedidoRepository,
	ahora func() time.Time,
) *BodegaUseCase {
	if ahora == nil {
		ahora = time.Now
	}
	return &BodegaUseCase{
		txRunner:      txRunner,
		bicicletaRepo: bicicletaRepo,
		bodegaRepo:    bodegaRepo,
		pedidoRepo:    pedidoRepo,
		ahora:         ahora,
	}
}

// RegistrarIngreso documenta la llegada de unidades y suma el stock en la
// misma transacción, con bloqueo de fila sobre el producto.
func (uc *BodegaUseCase) RegistrarIngreso(ctx context.Context, bodegueroID string, in dto.RegistrarIngresoRequest) (*dto.IngresoStockResponse, error) {
	if in.BicicletaID == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	ingreso := &entity.IngresoStock{
		ID:            uuid.New().String(),
		BicicletaID:   in.BicicletaID,
		Cantidad:      in.Cantidad,
		ConfirmadoPor: bodegueroID,
		Fecha:         uc.ahora(),
		Notas:         in.Notas,
	}
	err := uc.txRunner.RunBodega(ctx, func(
		bicicletaRepo repository.BicicletaRepository,
		bodegaRepo repository.BodegaRepository,
	) error {
		b, err := bicicletaRepo.GetForUpdate(in.BicicletaID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if err := bicicletaRepo.UpdateStock(b.ID, b.Stock+in.Cantidad); err != nil {
			return err
		}
		return bodegaRepo.CreateIngreso(ingreso)
	})
	if err != nil {
		return nil, err
	}
	return toIngresoResponse(ingreso), nil
}

// RegistrarDano reporta unidades dañadas y descuenta el stock afectado en la
// misma transacción. No se puede reportar más unidades de las disponibles.
func (uc *BodegaUseCase) RegistrarDano(ctx context.Context, bodegueroID string, in dto.RegistrarDanoRequest) (*dto.ProductoDanadoResponse, error) {
	if in.BicicletaID == "" || in.CantidadAfectada <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.MotivoDanoValido(in.MotivoTipo) {
		return nil, domain.ErrInvalidInput
	}
	dano := &entity.ProductoDanado{
		ID:                uuid.New().String(),
		BicicletaID:       in.BicicletaID,
		MotivoTipo:        in.MotivoTipo,
		MotivoDescripcion: in.MotivoDescripcion,
		CantidadAfectada:  in.CantidadAfectada,
		ReportadoPor:      bodegueroID,
		Fecha:             uc.ahora(),
	}
	err := uc.txRunner.RunBodega(ctx, func(
		bicicletaRepo repository.BicicletaRepository,
		bodegaRepo repository.BodegaRepository,
	) error {
		b, err := bicicletaRepo.GetForUpdate(in.BicicletaID)
		if err != nil {
			return err
		}
		if b == nil {
			return domain.ErrNotFound
		}
		if b.Stock < in.CantidadAfectada {
			return fmt.Errorf("%w: disponible %d, reportado %d",
				domain.ErrStockInsuficiente, b.Stock, in.CantidadAfectada)
		}
		if err := bicicletaRepo.UpdateStock(b.ID, b.Stock-in.CantidadAfectada); err != nil {
			return err
		}
		return bodegaRepo.CreateDano(dano)
	})
	if err != nil {
		return nil, err
	}
	return toDanoResponse(dano), nil
}

// ResolverDano cierra un reporte de daño. No repone stock: las unidades
// dañadas no vuelven al inventario.
func (uc *BodegaUseCase) ResolverDano(danoID string, in dto.ResolverDanoRequest) (*dto.ProductoDanadoResponse, error) {
	dano, err := uc.bodegaRepo.GetDano(danoID)
	if err != nil {
		return nil, err
	}
	if dano == nil {
		return nil, domain.ErrNotFound
	}
	if dano.Resuelto {
		return nil, domain.ErrEstadoInvalido
	}
	dano.Resuelto = true
	dano.NotasResolucion = in.NotasResolucion
	if err := uc.bodegaRepo.UpdateDano(dano); err != nil {
		return nil, err
	}
	return toDanoResponse(dano), nil
}

// ListarIngresos devuelve los ingresos de stock más recientes.
func (uc *BodegaUseCase) ListarIngresos(page dto.PageRequest) ([]dto.IngresoStockResponse, error) {
	page.DefaultPage()
	ingresos, err := uc.bodegaRepo.ListIngresos(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IngresoStockResponse, 0, len(ingresos))
	for _, i := range ingresos {
		out = append(out, *toIngresoResponse(i))
	}
	return out, nil
}

// ListarDanos devuelve los reportes de daño, opcionalmente solo los abiertos.
func (uc *BodegaUseCase) ListarDanos(soloPendientes bool, page dto.PageRequest) ([]dto.ProductoDanadoResponse, error) {
	page.DefaultPage()
	danos, err := uc.bodegaRepo.ListDanos(soloPendientes, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoDanadoResponse, 0, len(danos))
	for _, d := range danos {
		out = append(out, *toDanoResponse(d))
	}
	return out, nil
}

// Panel arma el resumen operativo del bodeguero: pedidos por atender,
// ingresos recientes y daños sin resolver.
func (uc *BodegaUseCase) Panel() (*dto.PanelBodegaResponse, error) {
	pedidos, err := uc.pedidoRepo.ListByEstados(
		[]entity.EstadoPedido{entity.EstadoPendiente, entity.EstadoConfirmado}, 20, 0)
	if err != nil {
		return nil, err
	}
	ingresos, err := uc.bodegaRepo.ListIngresos(10, 0)
	if err != nil {
		return nil, err
	}
	danos, err := uc.bodegaRepo.ListDanos(true, 10, 0)
	if err != nil {
		return nil, err
	}

	panel := &dto.PanelBodegaResponse{
		PedidosPendientes: make([]dto.PedidoResponse, 0, len(pedidos)),
		IngresosRecientes: make([]dto.IngresoStockResponse, 0, len(ingresos)),
		DanosPendientes:   make([]dto.ProductoDanadoResponse, 0, len(danos)),
	}
	for _, p := range pedidos {
		panel.PedidosPendientes = append(panel.PedidosPendientes, dto.PedidoResponse{
			ID:                p.ID,
			ClienteID:         p.ClienteID,
			VendedorID:        p.VendedorID,
			Estado:            p.Estado.String(),
			DireccionEnvio:    p.DireccionEnvio,
			Total:             p.Total,
			CreadoPorVendedor: p.CreadoPorVendedor,
			CreatedAt:         p.CreatedAt,
			UpdatedAt:         p.UpdatedAt,
		})
	}
	for _, i := range ingresos {
		panel.IngresosRecientes = append(panel.IngresosRecientes, *toIngresoResponse(i))
	}
	for _, d := range danos {
		panel.DanosPendientes = append(panel.DanosPendientes, *toDanoResponse(d))
	}
	return panel, nil
}

func toIngresoResponse(i *entity.IngresoStock) *dto.IngresoStockResponse {
	return &dto.IngresoStockResponse{
		ID:            i.ID,
		BicicletaID:   i.BicicletaID,
		Cantidad:      i.Cantidad,
		ConfirmadoPor: i.ConfirmadoPor,
		Fecha:         i.Fecha,
		Notas:         i.Notas,
	}
}

func toDanoResponse(d *entity.ProductoDanado) *dto.ProductoDanadoResponse {
	return &dto.ProductoDanadoResponse{
		ID:                d.ID,
		BicicletaID:       d.BicicletaID,
		MotivoTipo:        d.MotivoTipo,
		MotivoDescripcion: d.MotivoDescripcion,
		CantidadAfectada:  d.CantidadAfectada,
		ReportadoPor:      d.ReportadoPor,
		Fecha:             d.Fecha,
		Resuelto:          d.Resuelto,
		NotasResolucion:   d.NotasResolucion,
	}
}
