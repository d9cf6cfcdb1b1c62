package catalogo

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/aurabikers/tienda-api/internal/application/dto"
	"github.com/aurabikers/tienda-api/internal/domain"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
	"github.com/aurabikers/tienda-api/internal/domain/promociones"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

// CatalogoUseCase casos de uso del catálogo: navegación pública con precios de
// promoción y CRUD de productos para el administrador. Stock no se modifica
// por aquí: se maneja vía bodega y despachos.
type CatalogoUseCase struct {
	bicicletaRepo repository.BicicletaRepository
	promocionRepo repository.PromocionRepository
	ahora         func() time.Time
}

// NewCatalogoUseCase construye el caso de uso. ahora permite inyectar el reloj en tests.
func NewCatalogoUseCase(bicicletaRepo repository.BicicletaRepository, promocionRepo repository.PromocionRepository, ahora func() time.Time) *CatalogoUseCase {
	if ahora == nil {
		ahora = time.Now
	}
	return &CatalogoUseCase{bicicletaRepo: bicicletaRepo, promocionRepo: promocionRepo, ahora: ahora}
}

// quitarAcentos normaliza el texto de búsqueda: minúsculas y sin diacríticos,
// para que "Cérvelo" y "cervelo" encuentren la misma marca.
func quitarAcentos(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	limpio, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(limpio)
}

// Listar devuelve el catálogo activo con filtros gama/tipo/marca y precio de
// oferta cuando hay promoción vigente.
func (uc *CatalogoUseCase) Listar(in dto.FiltroCatalogoRequest) (*dto.CatalogoResponse, error) {
	in.DefaultPage()
	if in.Gama != "" && !entity.GamaValida(in.Gama) {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != "" && !entity.TipoValido(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}

	filtro := repository.FiltroCatalogo{
		Gama:        in.Gama,
		Tipo:        in.Tipo,
		Marca:       quitarAcentos(in.Marca),
		SoloActivas: true,
	}
	bicicletas, err := uc.bicicletaRepo.List(filtro, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	promos, err := uc.promocionRepo.ListActivas()
	if err != nil {
		return nil, err
	}

	hoy := uc.ahora()
	items := make([]dto.BicicletaResponse, 0, len(bicicletas))
	for _, b := range bicicletas {
		items = append(items, uc.toResponse(b, promos, hoy))
	}
	return &dto.CatalogoResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// GetByID devuelve una bicicleta activa con su precio de oferta. Nil si no existe.
func (uc *CatalogoUseCase) GetByID(id string) (*dto.BicicletaResponse, error) {
	b, err := uc.bicicletaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil || !b.Activo {
		return nil, nil
	}
	promos, err := uc.promocionRepo.ListActivas()
	if err != nil {
		return nil, err
	}
	out := uc.toResponse(b, promos, uc.ahora())
	return &out, nil
}

// PrecioVigente devuelve el precio efectivo de venta de la bicicleta hoy
// (con el mejor descuento vigente aplicado). Lo usa el checkout para el
// snapshot de precio de las líneas del pedido.
func (uc *CatalogoUseCase) PrecioVigente(b *entity.Bicicleta) (decimal.Decimal, error) {
	promos, err := uc.promocionRepo.ListActivas()
	if err != nil {
		return decimal.Zero, err
	}
	desc := promociones.MejorDescuento(promos, b.ID, uc.ahora())
	return promociones.PrecioConDescuento(b.Precio, desc), nil
}

// Crear da de alta un producto (solo admin).
func (uc *CatalogoUseCase) Crear(in dto.CreateBicicletaRequest) (*dto.BicicletaAdminResponse, error) {
	if in.Marca == "" || in.Modelo == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.GamaValida(in.Gama) || !entity.TipoValido(in.Tipo) || !entity.MarcoValido(in.MedidaMarco) {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.LessThanOrEqual(decimal.Zero) || in.Costo.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := uc.ahora()
	b := &entity.Bicicleta{
		ID:          uuid.New().String(),
		Marca:       in.Marca,
		Modelo:      in.Modelo,
		Gama:        in.Gama,
		Tipo:        in.Tipo,
		MedidaMarco: in.MedidaMarco,
		Precio:      in.Precio,
		Costo:       in.Costo,
		Stock:       0, // el stock entra por ingresos de bodega
		Descripcion: in.Descripcion,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.bicicletaRepo.Create(b); err != nil {
		return nil, err
	}
	return uc.toAdminResponse(b), nil
}

// Actualizar modifica un producto existente. Desactivar (Activo=false) es la
// forma de retirarlo del catálogo: nunca se elimina físicamente.
func (uc *CatalogoUseCase) Actualizar(id string, in dto.UpdateBicicletaRequest) (*dto.BicicletaAdminResponse, error) {
	b, err := uc.bicicletaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if in.Marca != "" {
		b.Marca = in.Marca
	}
	if in.Modelo != "" {
		b.Modelo = in.Modelo
	}
	if in.Gama != "" {
		if !entity.GamaValida(in.Gama) {
			return nil, domain.ErrInvalidInput
		}
		b.Gama = in.Gama
	}
	if in.Tipo != "" {
		if !entity.TipoValido(in.Tipo) {
			return nil, domain.ErrInvalidInput
		}
		b.Tipo = in.Tipo
	}
	if in.MedidaMarco != "" {
		if !entity.MarcoValido(in.MedidaMarco) {
			return nil, domain.ErrInvalidInput
		}
		b.MedidaMarco = in.MedidaMarco
	}
	if in.Precio != nil {
		if in.Precio.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		b.Precio = *in.Precio
	}
	if in.Costo != nil {
		if in.Costo.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		b.Costo = *in.Costo
	}
	if in.Descripcion != nil {
		b.Descripcion = *in.Descripcion
	}
	if in.Activo != nil {
		b.Activo = *in.Activo
	}
	b.UpdatedAt = uc.ahora()
	if err := uc.bicicletaRepo.Update(b); err != nil {
		return nil, err
	}
	return uc.toAdminResponse(b), nil
}

func (uc *CatalogoUseCase) toResponse(b *entity.Bicicleta, promos []*entity.Promocion, hoy time.Time) dto.BicicletaResponse {
	out := dto.BicicletaResponse{
		ID:          b.ID,
		Marca:       b.Marca,
		Modelo:      b.Modelo,
		Gama:        b.Gama,
		Tipo:        b.Tipo,
		MedidaMarco: b.MedidaMarco,
		Precio:      b.Precio,
		Stock:       b.Stock,
		Disponible:  b.Disponible(),
		Descripcion: b.Descripcion,
		Activo:      b.Activo,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	desc := promociones.MejorDescuento(promos, b.ID, hoy)
	if desc.GreaterThan(decimal.Zero) {
		oferta := promociones.PrecioConDescuento(b.Precio, desc)
		out.PrecioOferta = &oferta
		out.Descuento = &desc
	}
	return out
}

func (uc *CatalogoUseCase) toAdminResponse(b *entity.Bicicleta) *dto.BicicletaAdminResponse {
	promos, _ := uc.promocionRepo.ListActivas()
	return &dto.BicicletaAdminResponse{
		BicicletaResponse: uc.toResponse(b, promos, uc.ahora()),
		Costo:             b.Costo,
		MargenGanancia:    b.MargenGanancia(),
		GananciaUnitaria:  b.GananciaUnitaria(),
	}
}
