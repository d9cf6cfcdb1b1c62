package dto

import "github.com/shopspring/decimal"

// AgregarItemRequest agrega unidades de una bicicleta al carrito.
type AgregarItemRequest struct {
	BicicletaID string `json:"bicicleta_id"`
	Cantidad    int    `json:"cantidad"`
}

// ActualizarCantidadRequest fija la cantidad de un item. Cero lo elimina.
type ActualizarCantidadRequest struct {
	Cantidad int `json:"cantidad"`
}

// ItemCarritoResponse una línea del carrito con su snapshot de precio.
type ItemCarritoResponse struct {
	BicicletaID string          `json:"bicicleta_id"`
	Marca       string          `json:"marca"`
	Modelo      string          `json:"modelo"`
	Cantidad    int             `json:"cantidad"`
	Precio      decimal.Decimal `json:"precio"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CarritoResponse estado completo del carrito.
type CarritoResponse struct {
	Items []ItemCarritoResponse `json:"items"`
	Total decimal.Decimal       `json:"total"`
}
