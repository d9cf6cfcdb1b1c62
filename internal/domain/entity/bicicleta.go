package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gamas del catálogo.
const (
	GamaMedia = "media"
	GamaAlta  = "alta"
)

// Tipos de bicicleta.
const (
	TipoRuta = "ruta"
	TipoMTB  = "mtb"
)

// Medidas de marco disponibles.
const (
	MarcoXS = "xs"
	MarcoS  = "s"
	MarcoM  = "m"
	MarcoL  = "l"
	MarcoXL = "xl"
)

// Bicicleta representa un producto del catálogo (media y alta gama, ruta y MTB).
// Stock se modifica únicamente vía operaciones explícitas (ingresos, daños, despachos),
// nunca como efecto secundario de un guardado genérico.
type Bicicleta struct {
	ID          string
	Marca       string
	Modelo      string
	Gama        string // media, alta
	Tipo        string // ruta, mtb
	MedidaMarco string // xs, s, m, l, xl
	Precio      decimal.Decimal // precio de venta
	Costo       decimal.Decimal // costo de adquisición, para margen
	Stock       int
	Descripcion string
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Disponible indica si hay stock y el producto está activo.
func (b *Bicicleta) Disponible() bool {
	return b.Stock > 0 && b.Activo
}

// GananciaUnitaria es la ganancia por unidad vendida.
func (b *Bicicleta) GananciaUnitaria() decimal.Decimal {
	return b.Precio.Sub(b.Costo)
}

// MargenGanancia calcula el margen en porcentaje sobre el costo. Costo cero da 0.
func (b *Bicicleta) MargenGanancia() decimal.Decimal {
	if !b.Costo.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	cien := decimal.NewFromInt(100)
	return b.Precio.Sub(b.Costo).Div(b.Costo).Mul(cien)
}

// GamaValida y TipoValido validan los valores de filtro/creación.
func GamaValida(g string) bool  { return g == GamaMedia || g == GamaAlta }
func TipoValido(t string) bool  { return t == TipoRuta || t == TipoMTB }
func MarcoValido(m string) bool {
	switch m {
	case MarcoXS, MarcoS, MarcoM, MarcoL, MarcoXL:
		return true
	}
	return false
}
