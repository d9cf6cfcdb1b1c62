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

var _ repository.BicicletaRepository = (*BicicletaRepo)(nil)

// BicicletaRepo implementación del puerto BicicletaRepository sobre PostgreSQL (usable con pool o tx).
type BicicletaRepo struct {
	q Querier
}

// NewBicicletaRepository construye el adaptador de persistencia para bicicletas. Pasar pool o tx (Querier).
func NewBicicletaRepository(q Querier) *BicicletaRepo {
	return &BicicletaRepo{q: q}
}

const columnasBicicleta = "id, marca, modelo, gama, tipo, medida_marco, precio, costo, stock, descripcion, activo, created_at, updated_at"

// Create persiste una bicicleta nueva. El stock inicia en 0 y solo crece vía ingresos de bodega.
func (r *BicicletaRepo) Create(b *entity.Bicicleta) error {
	query := `
		INSERT INTO bicicletas (` + columnasBicicleta + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Marca, b.Modelo, b.Gama, b.Tipo, b.MedidaMarco,
		b.Precio, b.Costo, b.Stock, b.Descripcion, b.Activo, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bicicleta: %w", err)
	}
	return nil
}

// GetByID obtiene una bicicleta por ID.
func (r *BicicletaRepo) GetByID(id string) (*entity.Bicicleta, error) {
	query := `SELECT ` + columnasBicicleta + ` FROM bicicletas WHERE id = $1`
	return r.scanUna(r.q.QueryRow(context.Background(), query, id), "get bicicleta")
}

// GetForUpdate obtiene la bicicleta bloqueando la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción; serializa los ajustes de stock.
func (r *BicicletaRepo) GetForUpdate(id string) (*entity.Bicicleta, error) {
	query := `SELECT ` + columnasBicicleta + ` FROM bicicletas WHERE id = $1 FOR UPDATE`
	return r.scanUna(r.q.QueryRow(context.Background(), query, id), "get bicicleta for update")
}

// Update actualiza los datos comerciales. No toca el stock (se maneja vía UpdateStock en transacción).
func (r *BicicletaRepo) Update(b *entity.Bicicleta) error {
	query := `
		UPDATE bicicletas SET marca = $2, modelo = $3, gama = $4, tipo = $5, medida_marco = $6,
			precio = $7, costo = $8, descripcion = $9, activo = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Marca, b.Modelo, b.Gama, b.Tipo, b.MedidaMarco,
		b.Precio, b.Costo, b.Descripcion, b.Activo, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bicicleta: %w", err)
	}
	return nil
}

// UpdateStock fija el stock absoluto. El caller calcula el nuevo valor bajo
// bloqueo de fila (GetForUpdate) dentro de la misma transacción.
func (r *BicicletaRepo) UpdateStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE bicicletas SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// List lista bicicletas aplicando los filtros del catálogo con paginación.
// El filtro de marca es un contiene sin distinguir mayúsculas.
func (r *BicicletaRepo) List(filtro repository.FiltroCatalogo, limit, offset int) ([]*entity.Bicicleta, error) {
	query := `SELECT ` + columnasBicicleta + ` FROM bicicletas WHERE 1=1`
	args := []any{}
	n := 0
	next := func() string { n++; return fmt.Sprintf("$%d", n) }

	if filtro.SoloActivas {
		query += ` AND activo = true`
	}
	if filtro.Gama != "" {
		query += ` AND gama = ` + next()
		args = append(args, filtro.Gama)
	}
	if filtro.Tipo != "" {
		query += ` AND tipo = ` + next()
		args = append(args, filtro.Tipo)
	}
	if filtro.Marca != "" {
		query += ` AND marca ILIKE ` + next()
		args = append(args, "%"+filtro.Marca+"%")
	}
	query += ` ORDER BY marca, modelo LIMIT ` + next()
	args = append(args, limit)
	query += ` OFFSET ` + next()
	args = append(args, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bicicletas: %w", err)
	}
	defer rows.Close()

	var bicicletas []*entity.Bicicleta
	for rows.Next() {
		var b entity.Bicicleta
		if err := rows.Scan(
			&b.ID, &b.Marca, &b.Modelo, &b.Gama, &b.Tipo, &b.MedidaMarco,
			&b.Precio, &b.Costo, &b.Stock, &b.Descripcion, &b.Activo, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bicicleta: %w", err)
		}
		bicicletas = append(bicicletas, &b)
	}
	return bicicletas, rows.Err()
}

// CountBajoStock cuenta productos activos con stock bajo el umbral.
func (r *BicicletaRepo) CountBajoStock(umbral int) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM bicicletas WHERE activo = true AND stock < $1`,
		umbral,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bajo stock: %w", err)
	}
	return count, nil
}

func (r *BicicletaRepo) scanUna(row pgx.Row, op string) (*entity.Bicicleta, error) {
	var b entity.Bicicleta
	err := row.Scan(
		&b.ID, &b.Marca, &b.Modelo, &b.Gama, &b.Tipo, &b.MedidaMarco,
		&b.Precio, &b.Costo, &b.Stock, &b.Descripcion, &b.Activo, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &b, nil
}
