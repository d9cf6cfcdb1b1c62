package carrito

import "github.com/shopspring/decimal"

// Item es una línea del carrito: cantidad y snapshot de precio al momento de
// agregar. El snapshot es informativo; el checkout vuelve a leer el precio
// vigente para el pedido.
type Item struct {
	Cantidad int
	Precio   decimal.Decimal
}

// Store es el puerto de almacenamiento del carrito, con alcance de sesión por
// usuario. Los carritos no se persisten en la base de datos.
type Store interface {
	Get(usuarioID string) map[string]Item
	Set(usuarioID, bicicletaID string, item Item)
	Remove(usuarioID, bicicletaID string)
	Clear(usuarioID string)
}
