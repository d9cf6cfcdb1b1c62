package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aurabikers/tienda-api/internal/domain/entity"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

var _ repository.PQRSRepository = (*PQRSRepo)(nil)

// PQRSRepo implementación del puerto PQRSRepository sobre PostgreSQL.
type PQRSRepo struct {
	q Querier
}

// NewPQRSRepository construye el adaptador de persistencia para casos PQRS.
func NewPQRSRepository(q Querier) *PQRSRepo {
	return &PQRSRepo{q: q}
}

const columnasPQRS = "id, cliente_id, tipo, asunto, descripcion, estado, respuesta, resuelto_por, fecha_creacion, fecha_resolucion"

// Create persiste un caso nuevo.
func (r *PQRSRepo) Create(p *entity.PQRS) error {
	query := `
		INSERT INTO pqrs (` + columnasPQRS + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ClienteID, p.Tipo, p.Asunto, p.Descripcion, p.Estado,
		p.Respuesta, p.ResueltoPor, p.FechaCreacion, p.FechaResolucion,
	)
	if err != nil {
		return fmt.Errorf("insert pqrs: %w", err)
	}
	return nil
}

// GetByID obtiene un caso por ID.
func (r *PQRSRepo) GetByID(id string) (*entity.PQRS, error) {
	query := `SELECT ` + columnasPQRS + ` FROM pqrs WHERE id = $1`
	var p entity.PQRS
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ClienteID, &p.Tipo, &p.Asunto, &p.Descripcion, &p.Estado,
		&p.Respuesta, &p.ResueltoPor, &p.FechaCreacion, &p.FechaResolucion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pqrs: %w", err)
	}
	return &p, nil
}

// Update persiste la respuesta y el estado del caso.
func (r *PQRSRepo) Update(p *entity.PQRS) error {
	query := `
		UPDATE pqrs SET estado = $2, respuesta = $3, resuelto_por = $4, fecha_resolucion = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Estado, p.Respuesta, p.ResueltoPor, p.FechaResolucion,
	)
	if err != nil {
		return fmt.Errorf("update pqrs: %w", err)
	}
	return nil
}

// ListByCliente lista los casos de un cliente.
func (r *PQRSRepo) ListByCliente(clienteID string, limit, offset int) ([]*entity.PQRS, error) {
	query := `SELECT ` + columnasPQRS + ` FROM pqrs WHERE cliente_id = $1
		ORDER BY fecha_creacion DESC LIMIT $2 OFFSET $3`
	return r.list(query, clienteID, limit, offset)
}

// List lista todos los casos, opcionalmente filtrados por estado.
func (r *PQRSRepo) List(estado string, limit, offset int) ([]*entity.PQRS, error) {
	if estado != "" {
		query := `SELECT ` + columnasPQRS + ` FROM pqrs WHERE estado = $1
			ORDER BY fecha_creacion DESC LIMIT $2 OFFSET $3`
		return r.list(query, estado, limit, offset)
	}
	query := `SELECT ` + columnasPQRS + ` FROM pqrs ORDER BY fecha_creacion DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *PQRSRepo) list(query string, args ...any) ([]*entity.PQRS, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pqrs: %w", err)
	}
	defer rows.Close()

	var casos []*entity.PQRS
	for rows.Next() {
		var p entity.PQRS
		if err := rows.Scan(
			&p.ID, &p.ClienteID, &p.Tipo, &p.Asunto, &p.Descripcion, &p.Estado,
			&p.Respuesta, &p.ResueltoPor, &p.FechaCreacion, &p.FechaResolucion,
		); err != nil {
			return nil, fmt.Errorf("scan pqrs: %w", err)
		}
		casos = append(casos, &p)
	}
	return casos, rows.Err()
}
