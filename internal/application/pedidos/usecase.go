package pedidos

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aurabikers/tienda-api/internal/application/dto"
	"github.com/aurabikers/tienda-api/internal/domain"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
	domped "github.com/aurabikers/tienda-api/internal/domain/pedidos"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

// PedidoUseCase orquesta el ciclo de vida de los pedidos: creación desde el
// carrito, reclamo por vendedor, transiciones de estado con auditoría, despacho
// con descuento de stock y cancelación con reposición. Toda mutación de estado
// pasa por transicionar(): no hay otro camino que cambie el estado de un pedido.
type PedidoUseCase struct {
	txRunner      TxRunner
	pedidoRepo    repository.PedidoRepository
	bicicletaRepo repository.BicicletaRepository
	bodegaRepo    repository.BodegaRepository
	usuarioRepo   repository.UsuarioRepository
	ahora         func() time.Time
}

// NewPedidoUseCase construye el caso de uso. ahora permite inyectar el reloj
// para auditoría determinista en tests.
func NewPedidoUseCase(
	txRunner TxRunner,
	pedidoRepo repository.PedidoRepository,
	bicicletaRepo repository.BicicletaRepository,
	bodegaRepo repository.BodegaRepository,
	usuarioRepo repository.UsuarioRepository,
	ahora func() time.Time,
) *PedidoUseCase {
	if ahora == nil {
		ahora = time.Now
	}
	return &PedidoUseCase{
		txRunner:      txRunner,
		pedidoRepo:    pedidoRepo,
		bicicletaRepo: bicicletaRepo,
		bodegaRepo:    bodegaRepo,
		usuarioRepo:   usuarioRepo,
		ahora:         ahora,
	}
}

// Reclamar asigna el pedido al vendedor que lo reclama. No es una transición
// de estado: no genera entrada de historial. Un segundo reclamo sobre un
// pedido ya asignado falla con conflicto de estado, nunca reasigna.
func (uc *PedidoUseCase) Reclamar(ctx context.Context, pedidoID string, actor domped.Actor) error {
	return uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		_ repository.BicicletaRepository,
		_ repository.BodegaRepository,
	) error {
		pedido, err := pedidoRepo.GetForUpdate(pedidoID)
		if err != nil {
			return err
		}
		if pedido == nil {
			return domain.ErrNotFound
		}
		if err := domped.AutorizarReclamo(actor, pedido); err != nil {
			return err
		}
		return pedidoRepo.UpdateVendedor(pedidoID, actor.ID)
	})
}

// CambiarEstado mueve el pedido al estado nuevo si el grafo y el rol lo
// permiten. Las transiciones con efectos sobre stock se delegan: despachar
// descuenta y cancelar repone; así el endpoint genérico conserva la semántica
// completa sin duplicar lógica.
func (uc *PedidoUseCase) CambiarEstado(ctx context.Context, pedidoID string, nuevo entity.EstadoPedido, actor domped.Actor, notas string) error {
	if !nuevo.EsValido() {
		return domain.ErrInvalidInput
	}
	switch nuevo {
	case entity.EstadoDespachado:
		return uc.Despachar(ctx, pedidoID, actor, notas)
	case entity.EstadoCancelado:
		return uc.Cancelar(ctx, pedidoID, actor, notas)
	}

	return uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		_ repository.BicicletaRepository,
		_ repository.BodegaRepository,
	) error {
		pedido, err := pedidoRepo.GetForUpdate(pedidoID)
		if err != nil {
			return err
		}
		if pedido == nil {
			return domain.ErrNotFound
		}
		if err := domped.AutorizarTransicion(actor, pedido, nuevo, ""); err != nil {
			return err
		}
		return uc.transicionar(pedidoRepo, pedido, nuevo, actor, notas)
	})
}

// Despachar libera un pedido confirmado para entrega: verifica stock de todas
// las líneas con bloqueo de fila, descuenta, registra la confirmación de
// despacho y transiciona, todo en una transacción. Si alguna línea no tiene
// stock suficiente la operación completa se aborta sin descontar nada.
func (uc *PedidoUseCase) Despachar(ctx context.Context, pedidoID string, actor domped.Actor, notas string) error {
	if actor.Rol != entity.RolBodeguero && actor.Rol != entity.RolAdmin {
		return domain.ErrForbidden
	}
	return uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		bicicletaRepo repository.BicicletaRepository,
		bodegaRepo repository.BodegaRepository,
	) error {
		pedido, err := pedidoRepo.GetForUpdate(pedidoID)
		if err != nil {
			return err
		}
		if pedido == nil {
			return domain.ErrNotFound
		}
		if err := domped.AutorizarTransicion(actor, pedido, entity.EstadoDespachado, ""); err != nil {
			return err
		}

		detalles, err := pedidoRepo.GetDetalles(pedidoID)
		if err != nil {
			return err
		}
		if len(detalles) == 0 {
			return domain.ErrInvalidInput
		}
		// Orden estable de bloqueo para evitar interbloqueos entre despachos concurrentes.
		sort.Slice(detalles, func(i, j int) bool { return detalles[i].BicicletaID < detalles[j].BicicletaID })

		for _, d := range detalles {
			b, err := bicicletaRepo.GetForUpdate(d.BicicletaID)
			if err != nil {
				return err
			}
			if b == nil {
				return domain.ErrNotFound
			}
			if b.Stock < d.Cantidad {
				return fmt.Errorf("%w: %s %s (disponible %d, requerido %d)",
					domain.ErrStockInsuficiente, b.Marca, b.Modelo, b.Stock, d.Cantidad)
			}
			if err := bicicletaRepo.UpdateStock(b.ID, b.Stock-d.Cantidad); err != nil {
				return err
			}
		}

		confirmacion := &entity.ConfirmacionDespacho{
			ID:                uuid.New().String(),
			PedidoID:          pedidoID,
			ConfirmadoPor:     actor.ID,
			FechaConfirmacion: uc.ahora(),
			Notas:             notas,
		}
		if err := bodegaRepo.CreateConfirmacionDespacho(confirmacion); err != nil {
			return err
		}
		return uc.transicionar(pedidoRepo, pedido, entity.EstadoDespachado, actor, notas)
	})
}

// Cancelar mueve el pedido a cancelado. Si el pedido ya fue despachado (hay
// confirmación de despacho) repone el stock de todas las líneas en la misma
// transacción. El motivo es obligatorio salvo para el cliente cancelando su
// propio pedido pendiente.
func (uc *PedidoUseCase) Cancelar(ctx context.Context, pedidoID string, actor domped.Actor, motivo string) error {
	return uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		bicicletaRepo repository.BicicletaRepository,
		bodegaRepo repository.BodegaRepository,
	) error {
		pedido, err := pedidoRepo.GetForUpdate(pedidoID)
		if err != nil {
			return err
		}
		if pedido == nil {
			return domain.ErrNotFound
		}
		if err := domped.AutorizarTransicion(actor, pedido, entity.EstadoCancelado, motivo); err != nil {
			return err
		}

		// El stock solo se descontó si hubo despacho; la confirmación de
		// despacho es el registro de ese hecho.
		confirmacion, err := bodegaRepo.GetConfirmacionByPedido(pedidoID)
		if err != nil {
			return err
		}
		if confirmacion != nil {
			detalles, err := pedidoRepo.GetDetalles(pedidoID)
			if err != nil {
				return err
			}
			sort.Slice(detalles, func(i, j int) bool { return detalles[i].BicicletaID < detalles[j].BicicletaID })
			for _, d := range detalles {
				b, err := bicicletaRepo.GetForUpdate(d.BicicletaID)
				if err != nil {
					return err
				}
				if b == nil {
					return domain.ErrNotFound
				}
				if err := bicicletaRepo.UpdateStock(b.ID, b.Stock+d.Cantidad); err != nil {
					return err
				}
			}
		}
		return uc.transicionar(pedidoRepo, pedido, entity.EstadoCancelado, actor, motivo)
	})
}

// RecalcularTotal suma los subtotales de las líneas y persiste el total.
// Idempotente; no valida stock ni estado.
func (uc *PedidoUseCase) RecalcularTotal(ctx context.Context, pedidoID string) (decimal.Decimal, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return decimal.Zero, err
	}
	if pedido == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	detalles, err := uc.pedidoRepo.GetDetalles(pedidoID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, d := range detalles {
		total = total.Add(d.Subtotal())
	}
	if err := uc.pedidoRepo.UpdateTotal(pedidoID, total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// GetByID devuelve el pedido con líneas e historial, aplicando visibilidad
// por rol: el cliente solo ve los suyos; el vendedor los asignados a él o los
// pendientes sin asignar (para poder reclamarlos); bodega y admin ven todos.
func (uc *PedidoUseCase) GetByID(pedidoID string, actor domped.Actor) (*dto.PedidoDetalleResponse, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.autorizarLectura(actor, pedido); err != nil {
		return nil, err
	}

	detalles, err := uc.pedidoRepo.GetDetalles(pedidoID)
	if err != nil {
		return nil, err
	}
	historial, err := uc.pedidoRepo.GetHistorial(pedidoID)
	if err != nil {
		return nil, err
	}

	out := &dto.PedidoDetalleResponse{
		PedidoResponse: toPedidoResponse(pedido),
		Detalles:       make([]dto.DetallePedidoResponse, 0, len(detalles)),
		Historial:      make([]dto.HistorialResponse, 0, len(historial)),
	}
	for _, d := range detalles {
		linea := dto.DetallePedidoResponse{
			BicicletaID:    d.BicicletaID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal(),
		}
		if b, err := uc.bicicletaRepo.GetByID(d.BicicletaID); err == nil && b != nil {
			linea.Marca, linea.Modelo = b.Marca, b.Modelo
		}
		out.Detalles = append(out.Detalles, linea)
	}
	for _, h := range historial {
		out.Historial = append(out.Historial, dto.HistorialResponse{
			EstadoAnterior: h.EstadoAnterior.String(),
			EstadoNuevo:    h.EstadoNuevo.String(),
			CambiadoPor:    h.CambiadoPor,
			Fecha:          h.Fecha,
			Notas:          h.Notas,
		})
	}
	return out, nil
}

// Listar devuelve los pedidos visibles para el actor según su rol.
func (uc *PedidoUseCase) Listar(actor domped.Actor, page dto.PageRequest) (*dto.PedidoListResponse, error) {
	page.DefaultPage()

	var (
		pedidos []*entity.Pedido
		err     error
	)
	switch actor.Rol {
	case entity.RolCliente:
		pedidos, err = uc.pedidoRepo.ListByCliente(actor.ID, page.Limit, page.Offset)
	case entity.RolVendedor:
		pedidos, err = uc.pedidoRepo.ListByVendedor(actor.ID, page.Limit, page.Offset)
	case entity.RolBodeguero:
		pedidos, err = uc.pedidoRepo.ListByEstados(
			[]entity.EstadoPedido{entity.EstadoPendiente, entity.EstadoConfirmado},
			page.Limit, page.Offset,
		)
	case entity.RolAdmin:
		pedidos, err = uc.pedidoRepo.List(page.Limit, page.Offset)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	out := &dto.PedidoListResponse{
		Items: make([]dto.PedidoResponse, 0, len(pedidos)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range pedidos {
		out.Items = append(out.Items, toPedidoResponse(p))
	}
	return out, nil
}

// ListarSinAsignar devuelve pedidos pendientes sin vendedor, para que los
// vendedores elijan cuáles reclamar.
func (uc *PedidoUseCase) ListarSinAsignar(actor domped.Actor, page dto.PageRequest) (*dto.PedidoListResponse, error) {
	if actor.Rol != entity.RolVendedor && actor.Rol != entity.RolAdmin {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	pedidos, err := uc.pedidoRepo.ListByEstados([]entity.EstadoPedido{entity.EstadoPendiente}, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PedidoListResponse{
		Items: []dto.PedidoResponse{},
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range pedidos {
		if p.Asignado() {
			continue
		}
		out.Items = append(out.Items, toPedidoResponse(p))
	}
	return out, nil
}

// transicionar es la única frontera de mutación de estado: escribe el estado
// nuevo y agrega exactamente una entrada de historial, dentro de la
// transacción del caller.
func (uc *PedidoUseCase) transicionar(
	pedidoRepo repository.PedidoRepository,
	pedido *entity.Pedido,
	nuevo entity.EstadoPedido,
	actor domped.Actor,
	notas string,
) error {
	if err := pedidoRepo.UpdateEstado(pedido.ID, nuevo); err != nil {
		return err
	}
	derivada := fmt.Sprintf("Cambio de %s a %s", pedido.Estado, nuevo)
	if notas != "" {
		derivada = derivada + ": " + notas
	}
	h := &entity.HistorialEstadoPedido{
		ID:             uuid.New().String(),
		PedidoID:       pedido.ID,
		EstadoAnterior: pedido.Estado,
		EstadoNuevo:    nuevo,
		CambiadoPor:    actor.ID,
		Fecha:          uc.ahora(),
		Notas:          derivada,
	}
	if err := pedidoRepo.CreateHistorial(h); err != nil {
		return err
	}
	pedido.Estado = nuevo
	return nil
}

func (uc *PedidoUseCase) autorizarLectura(actor domped.Actor, pedido *entity.Pedido) error {
	switch actor.Rol {
	case entity.RolAdmin, entity.RolBodeguero:
		return nil
	case entity.RolCliente:
		if pedido.ClienteID != actor.ID {
			return domain.ErrForbidden
		}
		return nil
	case entity.RolVendedor:
		if pedido.VendedorID != nil && *pedido.VendedorID == actor.ID {
			return nil
		}
		if !pedido.Asignado() && pedido.Estado == entity.EstadoPendiente {
			return nil
		}
		return domain.ErrForbidden
	}
	return domain.ErrForbidden
}

func toPedidoResponse(p *entity.Pedido) dto.PedidoResponse {
	return dto.PedidoResponse{
		ID:                p.ID,
		ClienteID:         p.ClienteID,
		VendedorID:        p.VendedorID,
		Estado:            p.Estado.String(),
		DireccionEnvio:    p.DireccionEnvio,
		Total:             p.Total,
		Notas:             p.Notas,
		CreadoPorVendedor: p.CreadoPorVendedor,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
