package admin

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aurabikers/tienda-api/internal/application/dto"
	"github.com/aurabikers/tienda-api/internal/domain"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

const formatoFecha = "2006-01-02"

// PromocionUseCase administra promociones: porcentaje de descuento sobre
// bicicletas puntuales o todo el catálogo, con vigencia por fechas.
type PromocionUseCase struct {
	promocionRepo repository.PromocionRepository
	ahora         func() time.Time
}

// NewPromocionUseCase construye el caso de uso de promociones.
func NewPromocionUseCase(promocionRepo repository.PromocionRepository, ahora func() time.Time) *PromocionUseCase {
	if ahora == nil {
		ahora = time.Now
	}
	return &PromocionUseCase{promocionRepo: promocionRepo, ahora: ahora}
}

// Crear da de alta una promoción activa. El descuento debe estar en (0, 100]
// y el rango de fechas ser coherente.
func (uc *PromocionUseCase) Crear(adminID string, in dto.CrearPromocionRequest) (*dto.PromocionResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if !descuentoValido(in.Descuento) {
		return nil, domain.ErrInvalidInput
	}
	inicio, fin, err := parseVigencia(in.FechaInicio, in.FechaFin)
	if err != nil {
		return nil, err
	}
	if !in.AplicaATodas && len(in.BicicletaIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.Promocion{
		ID:            uuid.New().String(),
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		Descuento:     in.Descuento,
		FechaInicio:   inicio,
		FechaFin:      fin,
		Activa:        true,
		AplicaATodas:  in.AplicaATodas,
		BicicletaIDs:  in.BicicletaIDs,
		CreadaPor:     adminID,
		FechaCreacion: uc.ahora(),
	}
	if in.AplicaATodas {
		p.BicicletaIDs = nil
	}
	if err := uc.promocionRepo.Create(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p), nil
}

// Actualizar aplica cambios parciales sobre una promoción existente.
func (uc *PromocionUseCase) Actualizar(id string, in dto.ActualizarPromocionRequest) (*dto.PromocionResponse, error) {
	p, err := uc.promocionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Descuento != nil {
		if !descuentoValido(*in.Descuento) {
			return nil, domain.ErrInvalidInput
		}
		p.Descuento = *in.Descuento
	}
	if in.FechaInicio != nil {
		t, err := time.Parse(formatoFecha, *in.FechaInicio)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		p.FechaInicio = t
	}
	if in.FechaFin != nil {
		t, err := time.Parse(formatoFecha, *in.FechaFin)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		p.FechaFin = t
	}
	if p.FechaFin.Before(p.FechaInicio) {
		return nil, domain.ErrInvalidInput
	}
	if in.Activa != nil {
		p.Activa = *in.Activa
	}
	if in.AplicaATodas != nil {
		p.AplicaATodas = *in.AplicaATodas
	}
	if in.BicicletaIDs != nil {
		p.BicicletaIDs = in.BicicletaIDs
	}
	if p.AplicaATodas {
		p.BicicletaIDs = nil
	} else if len(p.BicicletaIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.promocionRepo.Update(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p), nil
}

// Desactivar apaga la promoción sin borrarla.
func (uc *PromocionUseCase) Desactivar(id string) error {
	p, err := uc.promocionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	p.Activa = false
	return uc.promocionRepo.Update(p)
}

// Listar devuelve todas las promociones con su vigencia calculada.
func (uc *PromocionUseCase) Listar(page dto.PageRequest) ([]dto.PromocionResponse, error) {
	page.DefaultPage()
	promos, err := uc.promocionRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PromocionResponse, 0, len(promos))
	for _, p := range promos {
		out = append(out, *uc.toResponse(p))
	}
	return out, nil
}

// GetByID devuelve una promoción.
func (uc *PromocionUseCase) GetByID(id string) (*dto.PromocionResponse, error) {
	p, err := uc.promocionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(p), nil
}

func (uc *PromocionUseCase) toResponse(p *entity.Promocion) *dto.PromocionResponse {
	return &dto.PromocionResponse{
		ID:           p.ID,
		Nombre:       p.Nombre,
		Descripcion:  p.Descripcion,
		Descuento:    p.Descuento,
		FechaInicio:  p.FechaInicio.Format(formatoFecha),
		FechaFin:     p.FechaFin.Format(formatoFecha),
		Activa:       p.Activa,
		Vigente:      p.Vigente(uc.ahora()),
		AplicaATodas: p.AplicaATodas,
		BicicletaIDs: p.BicicletaIDs,
	}
}

func descuentoValido(d decimal.Decimal) bool {
	return d.GreaterThan(decimal.Zero) && !d.GreaterThan(decimal.NewFromInt(100))
}

func parseVigencia(inicio, fin string) (time.Time, time.Time, error) {
	i, err := time.Parse(formatoFecha, inicio)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	f, err := time.Parse(formatoFecha, fin)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	if f.Before(i) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return i, f, nil
}
