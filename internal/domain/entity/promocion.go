package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promocion aplica un porcentaje de descuento a bicicletas puntuales o a todo
// el catálogo durante un rango de fechas.
type Promocion struct {
	ID            string
	Nombre        string
	Descripcion   string
	Descuento     decimal.Decimal // porcentaje, ej: 15.00 para 15%
	FechaInicio   time.Time
	FechaFin      time.Time
	Activa        bool
	AplicaATodas  bool
	BicicletaIDs  []string // vacío si AplicaATodas
	CreadaPor     string
	FechaCreacion time.Time
}

// Vigente indica si la promoción aplica en la fecha dada (inclusive en ambos extremos).
func (p *Promocion) Vigente(hoy time.Time) bool {
	if !p.Activa {
		return false
	}
	dia := hoy.Truncate(24 * time.Hour)
	inicio := p.FechaInicio.Truncate(24 * time.Hour)
	fin := p.FechaFin.Truncate(24 * time.Hour)
	return !dia.Before(inicio) && !dia.After(fin)
}

// Cubre indica si la promoción aplica a la bicicleta dada.
func (p *Promocion) Cubre(bicicletaID string) bool {
	if p.AplicaATodas {
		return true
	}
	for _, id := range p.BicicletaIDs {
		if id == bicicletaID {
			return true
		}
	}
	return false
}
