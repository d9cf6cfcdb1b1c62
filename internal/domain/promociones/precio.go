// Package promociones contiene el cálculo puro de precios con descuento.
package promociones

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aurabikers/tienda-api/internal/domain/entity"
)

var cien = decimal.NewFromInt(100)

// MejorDescuento devuelve el mayor porcentaje de descuento entre las
// promociones vigentes que cubren la bicicleta. Cero si ninguna aplica.
func MejorDescuento(promos []*entity.Promocion, bicicletaID string, hoy time.Time) decimal.Decimal {
	mejor := decimal.Zero
	for _, p := range promos {
		if !p.Vigente(hoy) || !p.Cubre(bicicletaID) {
			continue
		}
		if p.Descuento.GreaterThan(mejor) {
			mejor = p.Descuento
		}
	}
	return mejor
}

// PrecioConDescuento aplica el porcentaje al precio y redondea a 2 decimales.
// Descuentos fuera de [0, 100] se ignoran.
func PrecioConDescuento(precio, descuento decimal.Decimal) decimal.Decimal {
	if descuento.LessThanOrEqual(decimal.Zero) || descuento.GreaterThan(cien) {
		return precio
	}
	factor := cien.Sub(descuento).Div(cien)
	return precio.Mul(factor).Round(2)
}
