package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest finaliza el carrito del cliente como un pedido pendiente.
type CheckoutRequest struct {
	DireccionEnvio string `json:"direccion_envio"`
	Notas          string `json:"notas,omitempty"`
}

// ItemVentaRequest línea de una venta telefónica.
type ItemVentaRequest struct {
	BicicletaID string `json:"bicicleta_id"`
	Cantidad    int    `json:"cantidad"`
}

// VentaTelefonicaRequest pedido creado por un vendedor a nombre de un cliente.
type VentaTelefonicaRequest struct {
	ClienteID      string             `json:"cliente_id"`
	DireccionEnvio string             `json:"direccion_envio"`
	Notas          string             `json:"notas,omitempty"`
	Items          []ItemVentaRequest `json:"items"`
}

// CambiarEstadoRequest transición explícita de estado.
type CambiarEstadoRequest struct {
	Estado string `json:"estado"`
	Notas  string `json:"notas,omitempty"`
}

// CancelarRequest cancelación con motivo (obligatorio salvo cliente
// cancelando su propio pedido pendiente).
type CancelarRequest struct {
	Motivo string `json:"motivo,omitempty"`
}

// DespacharRequest confirmación de despacho por bodega.
type DespacharRequest struct {
	Notas string `json:"notas,omitempty"`
}

// DetallePedidoResponse línea de pedido con su snapshot de precio.
type DetallePedidoResponse struct {
	BicicletaID    string          `json:"bicicleta_id"`
	Marca          string          `json:"marca,omitempty"`
	Modelo         string          `json:"modelo,omitempty"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// HistorialResponse entrada del historial de estados.
type HistorialResponse struct {
	EstadoAnterior string    `json:"estado_anterior"`
	EstadoNuevo    string    `json:"estado_nuevo"`
	CambiadoPor    string    `json:"cambiado_por"`
	Fecha          time.Time `json:"fecha"`
	Notas          string    `json:"notas,omitempty"`
}

// PedidoResponse cabecera de pedido.
type PedidoResponse struct {
	ID                string          `json:"id"`
	ClienteID         string          `json:"cliente_id"`
	VendedorID        *string         `json:"vendedor_id,omitempty"`
	Estado            string          `json:"estado"`
	DireccionEnvio    string          `json:"direccion_envio"`
	Total             decimal.Decimal `json:"total"`
	Notas             string          `json:"notas,omitempty"`
	CreadoPorVendedor bool            `json:"creado_por_vendedor"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// PedidoDetalleResponse pedido con líneas e historial.
type PedidoDetalleResponse struct {
	PedidoResponse
	Detalles  []DetallePedidoResponse `json:"detalles"`
	Historial []HistorialResponse     `json:"historial"`
}

// PedidoListResponse listado paginado.
type PedidoListResponse struct {
	Items []PedidoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
