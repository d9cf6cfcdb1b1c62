package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aurabikers/tienda-api/internal/application/bodega"
	"github.com/aurabikers/tienda-api/internal/application/pedidos"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

// Ensure TxRunner implements pedidos.TxRunner and bodega.TxRunner.
var _ pedidos.TxRunner = (*TxRunner)(nil)
var _ bodega.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Cubre las operaciones de pedidos: despacho, cancelación
// con reposición y creación con detalles.
func (r *TxRunner) Run(ctx context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
	bicicletaRepo repository.BicicletaRepository,
	bodegaRepo repository.BodegaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	pedidoRepo := NewPedidoRepository(tx)
	bicicletaRepo := NewBicicletaRepository(tx)
	bodegaRepo := NewBodegaRepository(tx)

	if err := fn(pedidoRepo, bicicletaRepo, bodegaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBodega inicia una transacción con los repos que usan los movimientos de
// bodega (ingresos de stock y reportes de daño).
func (r *TxRunner) RunBodega(ctx context.Context, fn func(
	bicicletaRepo repository.BicicletaRepository,
	bodegaRepo repository.BodegaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	bicicletaRepo := NewBicicletaRepository(tx)
	bodegaRepo := NewBodegaRepository(tx)

	if err := fn(bicicletaRepo, bodegaRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
