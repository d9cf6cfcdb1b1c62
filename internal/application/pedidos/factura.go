package pedidos

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/aurabikers/tienda-api/internal/domain"
	domped "github.com/aurabikers/tienda-api/internal/domain/pedidos"
)

// FacturaPDF arma los datos de la factura del pedido y delega el render al
// generador. Aplica la misma visibilidad por rol que GetByID.
func (uc *PedidoUseCase) FacturaPDF(ctx context.Context, generador GeneradorFactura, pedidoID string, actor domped.Actor) ([]byte, error) {
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

	cliente, err := uc.usuarioRepo.GetByID(pedido.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrUserNotFound
	}

	detalles, err := uc.pedidoRepo.GetDetalles(pedidoID)
	if err != nil {
		return nil, err
	}

	datos := DatosFactura{
		Pedido:  pedido,
		Cliente: cliente,
		Lineas:  make([]LineaFactura, 0, len(detalles)),
		Total:   decimal.Zero,
	}
	for _, d := range detalles {
		linea := LineaFactura{
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal(),
		}
		if b, err := uc.bicicletaRepo.GetByID(d.BicicletaID); err == nil && b != nil {
			linea.Marca, linea.Modelo = b.Marca, b.Modelo
		} else {
			linea.Modelo = d.BicicletaID
		}
		datos.Lineas = append(datos.Lineas, linea)
		datos.Total = datos.Total.Add(linea.Subtotal)
	}
	return generador.GenerarFactura(ctx, datos)
}
