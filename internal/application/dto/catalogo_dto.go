package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBicicletaRequest alta de producto en el catálogo (solo admin).
type CreateBicicletaRequest struct {
	Marca       string          `json:"marca"`
	Modelo      string          `json:"modelo"`
	Gama        string          `json:"gama"`
	Tipo        string          `json:"tipo"`
	MedidaMarco string          `json:"medida_marco"`
	Precio      decimal.Decimal `json:"precio"`
	Costo       decimal.Decimal `json:"costo"`
	Descripcion string          `json:"descripcion,omitempty"`
}

// UpdateBicicletaRequest actualización de producto. Stock no se toca por aquí:
// se maneja vía ingresos de bodega, daños y despachos.
type UpdateBicicletaRequest struct {
	Marca       string           `json:"marca,omitempty"`
	Modelo      string           `json:"modelo,omitempty"`
	Gama        string           `json:"gama,omitempty"`
	Tipo        string           `json:"tipo,omitempty"`
	MedidaMarco string           `json:"medida_marco,omitempty"`
	Precio      *decimal.Decimal `json:"precio,omitempty"`
	Costo       *decimal.Decimal `json:"costo,omitempty"`
	Descripcion *string          `json:"descripcion,omitempty"`
	Activo      *bool            `json:"activo,omitempty"`
}

// FiltroCatalogoRequest filtros del catálogo público.
type FiltroCatalogoRequest struct {
	Gama  string `query:"gama"`
	Tipo  string `query:"tipo"`
	Marca string `query:"marca"`
	PageRequest
}

// BicicletaResponse producto con precio de oferta si hay promoción vigente.
type BicicletaResponse struct {
	ID           string           `json:"id"`
	Marca        string           `json:"marca"`
	Modelo       string           `json:"modelo"`
	Gama         string           `json:"gama"`
	Tipo         string           `json:"tipo"`
	MedidaMarco  string           `json:"medida_marco"`
	Precio       decimal.Decimal  `json:"precio"`
	PrecioOferta *decimal.Decimal `json:"precio_oferta,omitempty"`
	Descuento    *decimal.Decimal `json:"descuento,omitempty"`
	Stock        int              `json:"stock"`
	Disponible   bool             `json:"disponible"`
	Descripcion  string           `json:"descripcion,omitempty"`
	Activo       bool             `json:"activo"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// BicicletaAdminResponse incluye además costo y márgenes (solo admin).
type BicicletaAdminResponse struct {
	BicicletaResponse
	Costo            decimal.Decimal `json:"costo"`
	MargenGanancia   decimal.Decimal `json:"margen_ganancia"`
	GananciaUnitaria decimal.Decimal `json:"ganancia_unitaria"`
}

// CatalogoResponse listado paginado del catálogo.
type CatalogoResponse struct {
	Items []BicicletaResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
