package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aurabikers/tienda-api/internal/domain"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

var _ repository.BodegaRepository = (*BodegaRepo)(nil)

// BodegaRepo implementación del puerto BodegaRepository sobre PostgreSQL (usable con pool o tx).
type BodegaRepo struct {
	q Querier
}

// NewBodegaRepository construye el adaptador de persistencia para registros de bodega. Pasar pool o tx (Querier).
func NewBodegaRepository(q Querier) *BodegaRepo {
	return &BodegaRepo{q: q}
}

// CreateIngreso persiste un ingreso de stock.
func (r *BodegaRepo) CreateIngreso(ingreso *entity.IngresoStock) error {
	query := `
		INSERT INTO ingresos_stock (id, bicicleta_id, cantidad, confirmado_por, fecha, notas)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		ingreso.ID, ingreso.BicicletaID, ingreso.Cantidad, ingreso.ConfirmadoPor,
		ingreso.Fecha, ingreso.Notas,
	)
	if err != nil {
		return fmt.Errorf("insert ingreso stock: %w", err)
	}
	return nil
}

// ListIngresos lista los ingresos más recientes.
func (r *BodegaRepo) ListIngresos(limit, offset int) ([]*entity.IngresoStock, error) {
	query := `
		SELECT id, bicicleta_id, cantidad, confirmado_por, fecha, notas
		FROM ingresos_stock ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ingresos: %w", err)
	}
	defer rows.Close()

	var ingresos []*entity.IngresoStock
	for rows.Next() {
		var i entity.IngresoStock
		if err := rows.Scan(&i.ID, &i.BicicletaID, &i.Cantidad, &i.ConfirmadoPor, &i.Fecha, &i.Notas); err != nil {
			return nil, fmt.Errorf("scan ingreso: %w", err)
		}
		ingresos = append(ingresos, &i)
	}
	return ingresos, rows.Err()
}

const columnasDano = "id, bicicleta_id, motivo_tipo, motivo_descripcion, cantidad_afectada, reportado_por, fecha, resuelto, notas_resolucion"

// CreateDano persiste un reporte de producto dañado.
func (r *BodegaRepo) CreateDano(dano *entity.ProductoDanado) error {
	query := `
		INSERT INTO productos_danados (` + columnasDano + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		dano.ID, dano.BicicletaID, dano.MotivoTipo, dano.MotivoDescripcion,
		dano.CantidadAfectada, dano.ReportadoPor, dano.Fecha, dano.Resuelto, dano.NotasResolucion,
	)
	if err != nil {
		return fmt.Errorf("insert producto danado: %w", err)
	}
	return nil
}

// GetDano obtiene un reporte de daño por ID.
func (r *BodegaRepo) GetDano(id string) (*entity.ProductoDanado, error) {
	query := `SELECT ` + columnasDano + ` FROM productos_danados WHERE id = $1`
	var d entity.ProductoDanado
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.BicicletaID, &d.MotivoTipo, &d.MotivoDescripcion,
		&d.CantidadAfectada, &d.ReportadoPor, &d.Fecha, &d.Resuelto, &d.NotasResolucion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto danado: %w", err)
	}
	return &d, nil
}

// UpdateDano persiste la resolución del reporte.
func (r *BodegaRepo) UpdateDano(dano *entity.ProductoDanado) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos_danados SET resuelto = $2, notas_resolucion = $3 WHERE id = $1`,
		dano.ID, dano.Resuelto, dano.NotasResolucion,
	)
	if err != nil {
		return fmt.Errorf("update producto danado: %w", err)
	}
	return nil
}

// ListDanos lista reportes de daño, opcionalmente solo los no resueltos.
func (r *BodegaRepo) ListDanos(soloPendientes bool, limit, offset int) ([]*entity.ProductoDanado, error) {
	query := `SELECT ` + columnasDano + ` FROM productos_danados`
	if soloPendientes {
		query += ` WHERE resuelto = false`
	}
	query += ` ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos danados: %w", err)
	}
	defer rows.Close()

	var danos []*entity.ProductoDanado
	for rows.Next() {
		var d entity.ProductoDanado
		if err := rows.Scan(
			&d.ID, &d.BicicletaID, &d.MotivoTipo, &d.MotivoDescripcion,
			&d.CantidadAfectada, &d.ReportadoPor, &d.Fecha, &d.Resuelto, &d.NotasResolucion,
		); err != nil {
			return nil, fmt.Errorf("scan producto danado: %w", err)
		}
		danos = append(danos, &d)
	}
	return danos, rows.Err()
}

// CreateConfirmacionDespacho persiste la confirmación del bodeguero. Hay a lo
// sumo una por pedido (constraint único sobre pedido_id).
func (r *BodegaRepo) CreateConfirmacionDespacho(c *entity.ConfirmacionDespacho) error {
	query := `
		INSERT INTO confirmaciones_despacho (id, pedido_id, confirmado_por, fecha_confirmacion, notas)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.PedidoID, c.ConfirmadoPor, c.FechaConfirmacion, c.Notas,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert confirmacion despacho: %w", err)
	}
	return nil
}

// GetConfirmacionByPedido devuelve la confirmación de despacho del pedido, o
// nil si el pedido nunca fue despachado.
func (r *BodegaRepo) GetConfirmacionByPedido(pedidoID string) (*entity.ConfirmacionDespacho, error) {
	query := `
		SELECT id, pedido_id, confirmado_por, fecha_confirmacion, notas
		FROM confirmaciones_despacho WHERE pedido_id = $1`
	var c entity.ConfirmacionDespacho
	err := r.q.QueryRow(context.Background(), query, pedidoID).Scan(
		&c.ID, &c.PedidoID, &c.ConfirmadoPor, &c.FechaConfirmacion, &c.Notas,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get confirmacion despacho: %w", err)
	}
	return &c, nil
}
