package carrito

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/aurabikers/tienda-api/internal/application/catalogo"
	"github.com/aurabikers/tienda-api/internal/application/dto"
	"github.com/aurabikers/tienda-api/internal/domain"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

// CarritoUseCase maneja el carrito de compras por usuario. Al agregar o
// actualizar se valida que la cantidad no supere el stock actual; el precio
// guardado es un snapshot con promoción aplicada, solo para mostrar.
type CarritoUseCase struct {
	store         Store
	bicicletaRepo repository.BicicletaRepository
	catalogoUC    *catalogo.CatalogoUseCase
}

// NewCarritoUseCase construye el caso de uso.
func NewCarritoUseCase(store Store, bicicletaRepo repository.BicicletaRepository, catalogoUC *catalogo.CatalogoUseCase) *CarritoUseCase {
	return &CarritoUseCase{store: store, bicicletaRepo: bicicletaRepo, catalogoUC: catalogoUC}
}

// Agregar suma unidades de una bicicleta al carrito.
// Rechaza productos agotados o inactivos y cantidades que superen el stock.
func (uc *CarritoUseCase) Agregar(usuarioID, bicicletaID string, cantidad int) error {
	if cantidad <= 0 {
		return domain.ErrInvalidInput
	}
	b, err := uc.bicicletaRepo.GetByID(bicicletaID)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	if !b.Disponible() {
		return domain.ErrStockInsuficiente
	}

	items := uc.store.Get(usuarioID)
	actual := 0
	if item, ok := items[bicicletaID]; ok {
		actual = item.Cantidad
	}
	total := actual + cantidad
	if total > b.Stock {
		return domain.ErrStockInsuficiente
	}

	precio, err := uc.catalogoUC.PrecioVigente(b)
	if err != nil {
		return err
	}
	uc.store.Set(usuarioID, bicicletaID, Item{Cantidad: total, Precio: precio})
	return nil
}

// ActualizarCantidad fija la cantidad de un item. Cero o negativo lo elimina.
func (uc *CarritoUseCase) ActualizarCantidad(usuarioID, bicicletaID string, cantidad int) error {
	items := uc.store.Get(usuarioID)
	item, ok := items[bicicletaID]
	if !ok {
		return domain.ErrNotFound
	}
	if cantidad <= 0 {
		uc.store.Remove(usuarioID, bicicletaID)
		return nil
	}
	b, err := uc.bicicletaRepo.GetByID(bicicletaID)
	if err != nil {
		return err
	}
	if b == nil {
		uc.store.Remove(usuarioID, bicicletaID)
		return domain.ErrNotFound
	}
	if cantidad > b.Stock {
		return domain.ErrStockInsuficiente
	}
	item.Cantidad = cantidad
	uc.store.Set(usuarioID, bicicletaID, item)
	return nil
}

// Eliminar quita una bicicleta del carrito.
func (uc *CarritoUseCase) Eliminar(usuarioID, bicicletaID string) {
	uc.store.Remove(usuarioID, bicicletaID)
}

// Vaciar limpia el carrito completo.
func (uc *CarritoUseCase) Vaciar(usuarioID string) {
	uc.store.Clear(usuarioID)
}

// Items devuelve el contenido del carrito con datos del producto, ordenado
// por id de bicicleta para una salida estable.
func (uc *CarritoUseCase) Items(usuarioID string) (*dto.CarritoResponse, error) {
	items := uc.store.Get(usuarioID)
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := &dto.CarritoResponse{Items: []dto.ItemCarritoResponse{}, Total: decimal.Zero}
	for _, id := range ids {
		item := items[id]
		b, err := uc.bicicletaRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		marca, modelo := "", ""
		if b != nil {
			marca, modelo = b.Marca, b.Modelo
		}
		subtotal := item.Precio.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		out.Items = append(out.Items, dto.ItemCarritoResponse{
			BicicletaID: id,
			Marca:       marca,
			Modelo:      modelo,
			Cantidad:    item.Cantidad,
			Precio:      item.Precio,
			Subtotal:    subtotal,
		})
		out.Total = out.Total.Add(subtotal)
	}
	return out, nil
}

// Contenido devuelve el mapa crudo del carrito (para el checkout).
func (uc *CarritoUseCase) Contenido(usuarioID string) map[string]Item {
	return uc.store.Get(usuarioID)
}
