package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aurabikers/tienda-api/internal/domain/entity"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

var _ repository.PromocionRepository = (*PromocionRepo)(nil)

// PromocionRepo implementación del puerto PromocionRepository sobre PostgreSQL.
// Las bicicletas cubiertas se guardan como arreglo de texto (columna text[]).
type PromocionRepo struct {
	q Querier
}

// NewPromocionRepository construye el adaptador de persistencia para promociones.
func NewPromocionRepository(q Querier) *PromocionRepo {
	return &PromocionRepo{q: q}
}

const columnasPromocion = "id, nombre, descripcion, descuento, fecha_inicio, fecha_fin, activa, aplica_a_todas, bicicleta_ids, creada_por, fecha_creacion"

// Create persiste una promoción nueva.
func (r *PromocionRepo) Create(p *entity.Promocion) error {
	query := `
		INSERT INTO promociones (` + columnasPromocion + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Descuento, p.FechaInicio, p.FechaFin,
		p.Activa, p.AplicaATodas, p.BicicletaIDs, p.CreadaPor, p.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("insert promocion: %w", err)
	}
	return nil
}

// GetByID obtiene una promoción por ID.
func (r *PromocionRepo) GetByID(id string) (*entity.Promocion, error) {
	query := `SELECT ` + columnasPromocion + ` FROM promociones WHERE id = $1`
	var p entity.Promocion
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Descuento, &p.FechaInicio, &p.FechaFin,
		&p.Activa, &p.AplicaATodas, &p.BicicletaIDs, &p.CreadaPor, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promocion: %w", err)
	}
	return &p, nil
}

// Update persiste los cambios de una promoción.
func (r *PromocionRepo) Update(p *entity.Promocion) error {
	query := `
		UPDATE promociones SET nombre = $2, descripcion = $3, descuento = $4,
			fecha_inicio = $5, fecha_fin = $6, activa = $7, aplica_a_todas = $8, bicicleta_ids = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Descuento, p.FechaInicio, p.FechaFin,
		p.Activa, p.AplicaATodas, p.BicicletaIDs,
	)
	if err != nil {
		return fmt.Errorf("update promocion: %w", err)
	}
	return nil
}

// List lista promociones con paginación.
func (r *PromocionRepo) List(limit, offset int) ([]*entity.Promocion, error) {
	query := `SELECT ` + columnasPromocion + ` FROM promociones
		ORDER BY fecha_creacion DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListActivas devuelve las promociones marcadas activas. La vigencia por
// fechas se evalúa en dominio con el reloj inyectado.
func (r *PromocionRepo) ListActivas() ([]*entity.Promocion, error) {
	query := `SELECT ` + columnasPromocion + ` FROM promociones WHERE activa = true`
	return r.list(query)
}

func (r *PromocionRepo) list(query string, args ...any) ([]*entity.Promocion, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list promociones: %w", err)
	}
	defer rows.Close()

	var promos []*entity.Promocion
	for rows.Next() {
		var p entity.Promocion
		if err := rows.Scan(
			&p.ID, &p.Nombre, &p.Descripcion, &p.Descuento, &p.FechaInicio, &p.FechaFin,
			&p.Activa, &p.AplicaATodas, &p.BicicletaIDs, &p.CreadaPor, &p.FechaCreacion,
		); err != nil {
			return nil, fmt.Errorf("scan promocion: %w", err)
		}
		promos = append(promos, &p)
	}
	return promos, rows.Err()
}
