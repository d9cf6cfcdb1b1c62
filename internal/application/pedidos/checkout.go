package pedidos

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aurabikers/tienda-api/internal/application/carrito"
	"github.com/aurabikers/tienda-api/internal/application/catalogo"
	"github.com/aurabikers/tienda-api/internal/application/dto"
	"github.com/aurabikers/tienda-api/internal/domain"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
	domped "github.com/aurabikers/tienda-api/internal/domain/pedidos"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

// CheckoutUseCase convierte carritos y ventas telefónicas en pedidos
// pendientes. La creación no descuenta stock; el descuento ocurre al
// despachar. Sí valida disponibilidad al crear para no aceptar pedidos
// imposibles de satisfacer con el inventario actual.
type CheckoutUseCase struct {
	txRunner      TxRunner
	bicicletaRepo repository.BicicletaRepository
	usuarioRepo   repository.UsuarioRepository
	carritoUC     *carrito.CarritoUseCase
	catalogoUC    *catalogo.CatalogoUseCase
	ahora         func() time.Time
}

// NewCheckoutUseCase construye el caso de uso de creación de pedidos.
func NewCheckoutUseCase(
	txRunner TxRunner,
	bicicletaRepo repository.BicicletaRepository,
	usuarioRepo repository.UsuarioRepository,
	carritoUC *carrito.CarritoUseCase,
	catalogoUC *catalogo.CatalogoUseCase,
	ahora func() time.Time,
) *CheckoutUseCase {
	if ahora == nil {
		ahora = time.Now
	}
	return &CheckoutUseCase{
		txRunner:      txRunner,
		bicicletaRepo: bicicletaRepo,
		usuarioRepo:   usuarioRepo,
		carritoUC:     carritoUC,
		catalogoUC:    catalogoUC,
		ahora:         ahora,
	}
}

type lineaCheckout struct {
	bicicletaID string
	cantidad    int
	precio      decimal.Decimal
}

// Checkout crea un pedido pendiente a partir del carrito del cliente y lo
// vacía si la creación fue exitosa. El precio de cada línea es el precio
// vigente del catálogo (con promoción si aplica) capturado en este momento.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, clienteID string, in dto.CheckoutRequest) (string, error) {
	contenido := uc.carritoUC.Contenido(clienteID)
	if len(contenido) == 0 {
		return "", domain.ErrInvalidInput
	}

	lineas := make([]lineaCheckout, 0, len(contenido))
	for bicicletaID, item := range contenido {
		b, err := uc.bicicletaRepo.GetByID(bicicletaID)
		if err != nil {
			return "", err
		}
		if b == nil || !b.Activo {
			return "", domain.ErrNotFound
		}
		if b.Stock < item.Cantidad {
			return "", domain.ErrStockInsuficiente
		}
		// El precio se vuelve a resolver aquí: el snapshot del carrito puede
		// haber quedado atrás si una promoción empezó o terminó entre tanto.
		precio, err := uc.catalogoUC.PrecioVigente(b)
		if err != nil {
			return "", err
		}
		lineas = append(lineas, lineaCheckout{bicicletaID: bicicletaID, cantidad: item.Cantidad, precio: precio})
	}
	sort.Slice(lineas, func(i, j int) bool { return lineas[i].bicicletaID < lineas[j].bicicletaID })

	direccion := in.DireccionEnvio
	if direccion == "" {
		usuario, err := uc.usuarioRepo.GetByID(clienteID)
		if err != nil {
			return "", err
		}
		if usuario == nil {
			return "", domain.ErrUserNotFound
		}
		direccion = usuario.Direccion
	}

	pedidoID, err := uc.crearPedido(ctx, clienteID, nil, false, direccion, in.Notas, lineas)
	if err != nil {
		return "", err
	}
	uc.carritoUC.Vaciar(clienteID)
	return pedidoID, nil
}

// VentaTelefonica crea un pedido a nombre de un cliente, ya asignado al
// vendedor que lo registra. El cliente debe existir y tener rol cliente.
func (uc *CheckoutUseCase) VentaTelefonica(ctx context.Context, actor domped.Actor, in dto.VentaTelefonicaRequest) (string, error) {
	if actor.Rol != entity.RolVendedor && actor.Rol != entity.RolAdmin {
		return "", domain.ErrForbidden
	}
	if len(in.Items) == 0 || in.ClienteID == "" {
		return "", domain.ErrInvalidInput
	}

	cliente, err := uc.usuarioRepo.GetByID(in.ClienteID)
	if err != nil {
		return "", err
	}
	if cliente == nil || cliente.Rol != entity.RolCliente {
		return "", domain.ErrUserNotFound
	}

	lineas := make([]lineaCheckout, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Cantidad <= 0 {
			return "", domain.ErrInvalidInput
		}
		b, err := uc.bicicletaRepo.GetByID(item.BicicletaID)
		if err != nil {
			return "", err
		}
		if b == nil || !b.Activo {
			return "", domain.ErrNotFound
		}
		if b.Stock < item.Cantidad {
			return "", domain.ErrStockInsuficiente
		}
		precio, err := uc.catalogoUC.PrecioVigente(b)
		if err != nil {
			return "", err
		}
		lineas = append(lineas, lineaCheckout{bicicletaID: item.BicicletaID, cantidad: item.Cantidad, precio: precio})
	}
	sort.Slice(lineas, func(i, j int) bool { return lineas[i].bicicletaID < lineas[j].bicicletaID })

	direccion := in.DireccionEnvio
	if direccion == "" {
		direccion = cliente.Direccion
	}
	return uc.crearPedido(ctx, in.ClienteID, &actor.ID, true, direccion, in.Notas, lineas)
}

// crearPedido persiste cabecera y líneas en una transacción. El total se
// calcula de las líneas; no hay entrada de historial por la creación.
func (uc *CheckoutUseCase) crearPedido(
	ctx context.Context,
	clienteID string,
	vendedorID *string,
	porVendedor bool,
	direccion, notas string,
	lineas []lineaCheckout,
) (string, error) {
	pedidoID := uuid.New().String()
	err := uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		_ repository.BicicletaRepository,
		_ repository.BodegaRepository,
	) error {
		total := decimal.Zero
		for _, l := range lineas {
			total = total.Add(l.precio.Mul(decimal.NewFromInt(int64(l.cantidad))))
		}
		pedido := &entity.Pedido{
			ID:                pedidoID,
			ClienteID:         clienteID,
			VendedorID:        vendedorID,
			Estado:            entity.EstadoPendiente,
			DireccionEnvio:    direccion,
			Total:             total,
			Notas:             notas,
			CreadoPorVendedor: porVendedor,
			CreatedAt:         uc.ahora(),
			UpdatedAt:         uc.ahora(),
		}
		if err := pedidoRepo.Create(pedido); err != nil {
			return err
		}
		for _, l := range lineas {
			detalle := &entity.DetallePedido{
				ID:             uuid.New().String(),
				PedidoID:       pedidoID,
				BicicletaID:    l.bicicletaID,
				Cantidad:       l.cantidad,
				PrecioUnitario: l.precio,
			}
			if err := pedidoRepo.CreateDetalle(detalle); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return pedidoID, nil
}
