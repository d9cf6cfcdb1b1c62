package pedidos

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/aurabikers/tienda-api/internal/domain/entity"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el cambio de estado, la entrada
// de historial y los ajustes de stock se apliquen todos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		bicicletaRepo repository.BicicletaRepository,
		bodegaRepo repository.BodegaRepository,
	) error) error
}

// LineaFactura es una línea ya resuelta para la factura PDF.
type LineaFactura struct {
	Marca          string
	Modelo         string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

// DatosFactura agrupa todo lo necesario para generar la factura de un pedido.
type DatosFactura struct {
	Pedido  *entity.Pedido
	Cliente *entity.Usuario
	Lineas  []LineaFactura
	Total   decimal.Decimal
}

// GeneradorFactura es el puerto del generador de PDF de facturas.
type GeneradorFactura interface {
	GenerarFactura(ctx context.Context, datos DatosFactura) ([]byte, error)
}
