package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoPedido es el estado del flujo de un pedido.
type EstadoPedido string

// Estados del flujo: Pendiente -> Confirmado -> Despachado -> En Camino -> Entregado.
// Cancelado es terminal y puede alcanzarse desde cualquier estado no terminal.
const (
	EstadoPendiente  EstadoPedido = "pendiente"
	EstadoConfirmado EstadoPedido = "confirmado"
	EstadoDespachado EstadoPedido = "despachado"
	EstadoEnCamino   EstadoPedido = "en_camino"
	EstadoEntregado  EstadoPedido = "entregado"
	EstadoCancelado  EstadoPedido = "cancelado"
)

// EsValido indica si el valor es un estado conocido.
func (e EstadoPedido) EsValido() bool {
	switch e {
	case EstadoPendiente, EstadoConfirmado, EstadoDespachado,
		EstadoEnCamino, EstadoEntregado, EstadoCancelado:
		return true
	}
	return false
}

// EsTerminal indica si el estado no admite más transiciones.
func (e EstadoPedido) EsTerminal() bool {
	return e == EstadoEntregado || e == EstadoCancelado
}

// String devuelve el valor textual del estado.
func (e EstadoPedido) String() string { return string(e) }

// Pedido representa una compra de un cliente.
// Total refleja la suma de subtotales al momento del último recálculo explícito;
// no se mantiene sincronizado automáticamente con los detalles.
// Un pedido nunca se elimina: la cancelación es un estado terminal.
type Pedido struct {
	ID                string
	ClienteID         string
	VendedorID        *string // nil hasta que un vendedor lo reclama
	Estado            EstadoPedido
	DireccionEnvio    string
	Total             decimal.Decimal
	Notas             string
	CreadoPorVendedor bool // venta telefónica
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Asignado indica si el pedido ya tiene vendedor.
func (p *Pedido) Asignado() bool {
	return p.VendedorID != nil && *p.VendedorID != ""
}

// DetallePedido es una línea de producto dentro de un pedido.
// PrecioUnitario es el precio capturado al momento de la venta y no cambia
// aunque el precio del catálogo cambie después.
type DetallePedido struct {
	ID             string
	PedidoID       string
	BicicletaID    string
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// Subtotal = cantidad × precio unitario.
func (d *DetallePedido) Subtotal() decimal.Decimal {
	return d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
}

// HistorialEstadoPedido es el registro de auditoría de un cambio de estado.
// Append-only: nunca se actualiza ni se borra. Hay exactamente una entrada por
// transición; la creación del pedido y el reclamo por un vendedor no generan entrada.
type HistorialEstadoPedido struct {
	ID             string
	PedidoID       string
	EstadoAnterior EstadoPedido
	EstadoNuevo    EstadoPedido
	CambiadoPor    string
	Fecha          time.Time
	Notas          string
}
