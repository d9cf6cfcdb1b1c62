package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/aurabikers/tienda-api/internal/domain"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL (usable con pool o tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

const columnasPedido = "id, cliente_id, vendedor_id, estado, direccion_envio, total, notas, creado_por_vendedor, created_at, updated_at"

// Create persiste la cabecera del pedido.
func (r *PedidoRepo) Create(pedido *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (` + columnasPedido + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.ClienteID, pedido.VendedorID, pedido.Estado.String(),
		pedido.DireccionEnvio, pedido.Total, pedido.Notas, pedido.CreadoPorVendedor,
		pedido.CreatedAt, pedido.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea del pedido con su precio capturado.
func (r *PedidoRepo) CreateDetalle(detalle *entity.DetallePedido) error {
	query := `
		INSERT INTO detalles_pedido (id, pedido_id, bicicleta_id, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		detalle.ID, detalle.PedidoID, detalle.BicicletaID, detalle.Cantidad, detalle.PrecioUnitario,
	)
	if err != nil {
		return fmt.Errorf("insert detalle pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `SELECT ` + columnasPedido + ` FROM pedidos WHERE id = $1`
	return r.scanUno(r.q.QueryRow(context.Background(), query, id), "get pedido")
}

// GetForUpdate obtiene el pedido bloqueando la fila. Serializa despachos y
// reclamos concurrentes sobre el mismo pedido dentro de una transacción.
func (r *PedidoRepo) GetForUpdate(id string) (*entity.Pedido, error) {
	query := `SELECT ` + columnasPedido + ` FROM pedidos WHERE id = $1 FOR UPDATE`
	return r.scanUno(r.q.QueryRow(context.Background(), query, id), "get pedido for update")
}

// GetDetalles devuelve las líneas del pedido.
func (r *PedidoRepo) GetDetalles(pedidoID string) ([]*entity.DetallePedido, error) {
	query := `
		SELECT id, pedido_id, bicicleta_id, cantidad, precio_unitario
		FROM detalles_pedido WHERE pedido_id = $1 ORDER BY bicicleta_id`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("get detalles pedido: %w", err)
	}
	defer rows.Close()

	var detalles []*entity.DetallePedido
	for rows.Next() {
		var d entity.DetallePedido
		if err := rows.Scan(&d.ID, &d.PedidoID, &d.BicicletaID, &d.Cantidad, &d.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		detalles = append(detalles, &d)
	}
	return detalles, rows.Err()
}

// UpdateEstado persiste el estado nuevo. La entrada de historial va aparte, en
// la misma transacción.
func (r *PedidoRepo) UpdateEstado(id string, estado entity.EstadoPedido) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET estado = $2, updated_at = now() WHERE id = $1`,
		id, estado.String(),
	)
	if err != nil {
		return fmt.Errorf("update estado pedido: %w", err)
	}
	return nil
}

// UpdateVendedor asigna el vendedor al pedido (reclamo).
func (r *PedidoRepo) UpdateVendedor(id, vendedorID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET vendedor_id = $2, updated_at = now() WHERE id = $1`,
		id, vendedorID,
	)
	if err != nil {
		return fmt.Errorf("update vendedor pedido: %w", err)
	}
	return nil
}

// UpdateTotal persiste el total recalculado.
func (r *PedidoRepo) UpdateTotal(id string, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET total = $2, updated_at = now() WHERE id = $1`,
		id, total,
	)
	if err != nil {
		return fmt.Errorf("update total pedido: %w", err)
	}
	return nil
}

// ListByCliente lista los pedidos de un cliente.
func (r *PedidoRepo) ListByCliente(clienteID string, limit, offset int) ([]*entity.Pedido, error) {
	query := `SELECT ` + columnasPedido + ` FROM pedidos WHERE cliente_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, clienteID, limit, offset)
}

// ListByVendedor lista los pedidos asignados a un vendedor.
func (r *PedidoRepo) ListByVendedor(vendedorID string, limit, offset int) ([]*entity.Pedido, error) {
	query := `SELECT ` + columnasPedido + ` FROM pedidos WHERE vendedor_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, vendedorID, limit, offset)
}

// ListByEstados lista pedidos en cualquiera de los estados dados.
func (r *PedidoRepo) ListByEstados(estados []entity.EstadoPedido, limit, offset int) ([]*entity.Pedido, error) {
	valores := make([]string, 0, len(estados))
	for _, e := range estados {
		valores = append(valores, e.String())
	}
	query := `SELECT ` + columnasPedido + ` FROM pedidos WHERE estado = ANY($1)
		ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	return r.list(query, valores, limit, offset)
}

// List lista todos los pedidos con paginación.
func (r *PedidoRepo) List(limit, offset int) ([]*entity.Pedido, error) {
	query := `SELECT ` + columnasPedido + ` FROM pedidos ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// CreateHistorial agrega una entrada de auditoría. Nunca hay update ni delete
// sobre esta tabla.
func (r *PedidoRepo) CreateHistorial(h *entity.HistorialEstadoPedido) error {
	query := `
		INSERT INTO historial_estados_pedido (id, pedido_id, estado_anterior, estado_nuevo, cambiado_por, fecha, notas)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.PedidoID, h.EstadoAnterior.String(), h.EstadoNuevo.String(),
		h.CambiadoPor, h.Fecha, h.Notas,
	)
	if err != nil {
		return fmt.Errorf("insert historial pedido: %w", err)
	}
	return nil
}

// GetHistorial devuelve el historial del pedido en orden cronológico.
func (r *PedidoRepo) GetHistorial(pedidoID string) ([]*entity.HistorialEstadoPedido, error) {
	query := `
		SELECT id, pedido_id, estado_anterior, estado_nuevo, cambiado_por, fecha, notas
		FROM historial_estados_pedido WHERE pedido_id = $1 ORDER BY fecha ASC`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("get historial pedido: %w", err)
	}
	defer rows.Close()

	var historial []*entity.HistorialEstadoPedido
	for rows.Next() {
		var h entity.HistorialEstadoPedido
		var anterior, nuevo string
		if err := rows.Scan(&h.ID, &h.PedidoID, &anterior, &nuevo, &h.CambiadoPor, &h.Fecha, &h.Notas); err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}
		h.EstadoAnterior = entity.EstadoPedido(anterior)
		h.EstadoNuevo = entity.EstadoPedido(nuevo)
		historial = append(historial, &h)
	}
	return historial, rows.Err()
}

func (r *PedidoRepo) list(query string, args ...any) ([]*entity.Pedido, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()

	var pedidos []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		var estado string
		if err := rows.Scan(
			&p.ID, &p.ClienteID, &p.VendedorID, &estado, &p.DireccionEnvio,
			&p.Total, &p.Notas, &p.CreadoPorVendedor, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		p.Estado = entity.EstadoPedido(estado)
		pedidos = append(pedidos, &p)
	}
	return pedidos, rows.Err()
}

func (r *PedidoRepo) scanUno(row pgx.Row, op string) (*entity.Pedido, error) {
	var p entity.Pedido
	var estado string
	err := row.Scan(
		&p.ID, &p.ClienteID, &p.VendedorID, &estado, &p.DireccionEnvio,
		&p.Total, &p.Notas, &p.CreadoPorVendedor, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.Estado = entity.EstadoPedido(estado)
	return &p, nil
}
