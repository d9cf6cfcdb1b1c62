package bodega_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurabikers/tienda-api/internal/application/bodega"
	"github.com/aurabikers/tienda-api/internal/application/dto"
	"github.com/aurabikers/tienda-api/internal/domain"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
	"github.com/aurabikers/tienda-api/internal/domain/repository"
)

const bodegueroID = "bodeguero-1"

var relojFijo = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type bicicletaRepoFake struct {
	bicicletas map[string]*entity.Bicicleta
}

var _ repository.BicicletaRepository = (*bicicletaRepoFake)(nil)

func (r *bicicletaRepoFake) Create(b *entity.Bicicleta) error { r.bicicletas[b.ID] = b; return nil }

func (r *bicicletaRepoFake) GetByID(id string) (*entity.Bicicleta, error) {
	b, ok := r.bicicletas[id]
	if !ok {
		return nil, nil
	}
	cb := *b
	return &cb, nil
}

func (r *bicicletaRepoFake) GetForUpdate(id string) (*entity.Bicicleta, error) { return r.GetByID(id) }

func (r *bicicletaRepoFake) Update(*entity.Bicicleta) error { return nil }

func (r *bicicletaRepoFake) UpdateStock(id string, stock int) error {
	b, ok := r.bicicletas[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Stock = stock
	return nil
}

func (r *bicicletaRepoFake) List(repository.FiltroCatalogo, int, int) ([]*entity.Bicicleta, error) {
	return nil, nil
}
func (r *bicicletaRepoFake) CountBajoStock(int) (int, error) { return 0, nil }

type bodegaRepoFake struct {
	ingresos []*entity.IngresoStock
	danos    map[string]*entity.ProductoDanado
}

var _ repository.BodegaRepository = (*bodegaRepoFake)(nil)

func (r *bodegaRepoFake) CreateIngreso(i *entity.IngresoStock) error {
	ci := *i
	r.ingresos = append(r.ingresos, &ci)
	return nil
}

func (r *bodegaRepoFake) ListIngresos(limit, offset int) ([]*entity.IngresoStock, error) {
	return r.ingresos, nil
}

func (r *bodegaRepoFake) CreateDano(d *entity.ProductoDanado) error {
	cd := *d
	r.danos[d.ID] = &cd
	return nil
}

func (r *bodegaRepoFake) GetDano(id string) (*entity.ProductoDanado, error) {
	d, ok := r.danos[id]
	if !ok {
		return nil, nil
	}
	cd := *d
	return &cd, nil
}

func (r *bodegaRepoFake) UpdateDano(d *entity.ProductoDanado) error {
	if _, ok := r.danos[d.ID]; !ok {
		return domain.ErrNotFound
	}
	cd := *d
	r.danos[d.ID] = &cd
	return nil
}

func (r *bodegaRepoFake) ListDanos(soloPendientes bool, limit, offset int) ([]*entity.ProductoDanado, error) {
	out := make([]*entity.ProductoDanado, 0, len(r.danos))
	for _, d := range r.danos {
		if soloPendientes && d.Resuelto {
			continue
		}
		cd := *d
		out = append(out, &cd)
	}
	return out, nil
}

func (r *bodegaRepoFake) CreateConfirmacionDespacho(*entity.ConfirmacionDespacho) error { return nil }
func (r *bodegaRepoFake) GetConfirmacionByPedido(string) (*entity.ConfirmacionDespacho, error) {
	return nil, nil
}

type pedidoRepoStub struct {
	pedidos []*entity.Pedido
}

var _ repository.PedidoRepository = (*pedidoRepoStub)(nil)

func (r *pedidoRepoStub) Create(*entity.Pedido) error { return nil }

func (r *pedidoRepoStub) CreateDetalle(*entity.DetallePedido) error { return nil }

func (r *pedidoRepoStub) GetByID(string) (*entity.Pedido, error) { return nil, nil }

func (r *pedidoRepoStub) GetForUpdate(string) (*entity.Pedido, error) { return nil, nil }

func (r *pedidoRepoStub) GetDetalles(string) ([]*entity.DetallePedido, error) {
	return nil, nil
}

func (r *pedidoRepoStub) UpdateEstado(string, entity.EstadoPedido) error { return nil }

func (r *pedidoRepoStub) UpdateVendedor(string, string) error { return nil }

func (r *pedidoRepoStub) UpdateTotal(string, decimal.Decimal) error { return nil }

func (r *pedidoRepoStub) ListByCliente(string, int, int) ([]*entity.Pedido, error) {
	return nil, nil
}

func (r *pedidoRepoStub) ListByVendedor(string, int, int) ([]*entity.Pedido, error) {
	return nil, nil
}

func (r *pedidoRepoStub) ListByEstados(estados []entity.EstadoPedido, limit, offset int) ([]*entity.Pedido, error) {
	out := make([]*entity.Pedido, 0)
	for _, p := range r.pedidos {
		for _, e := range estados {
			if p.Estado == e {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *pedidoRepoStub) List(int, int) ([]*entity.Pedido, error) { return nil, nil }

func (r *pedidoRepoStub) CreateHistorial(*entity.HistorialEstadoPedido) error { return nil }

func (r *pedidoRepoStub) GetHistorial(string) ([]*entity.HistorialEstadoPedido, error) {
	return nil, nil
}

// txRunnerFake ejecuta la función directamente y restaura el stock si falla,
// imitando el rollback de la transacción real.
type txRunnerFake struct {
	bicicletas *bicicletaRepoFake
	bodega     *bodegaRepoFake
}

func (tx *txRunnerFake) RunBodega(_ context.Context, fn func(
	repository.BicicletaRepository,
	repository.BodegaRepository,
) error) error {
	snapshot := make(map[string]entity.Bicicleta, len(tx.bicicletas.bicicletas))
	for id, b := range tx.bicicletas.bicicletas {
		snapshot[id] = *b
	}
	if err := fn(tx.bicicletas, tx.bodega); err != nil {
		for id, b := range snapshot {
			cb := b
			tx.bicicletas.bicicletas[id] = &cb
		}
		return err
	}
	return nil
}

type entorno struct {
	uc         *bodega.BodegaUseCase
	bicicletas *bicicletaRepoFake
	bodega     *bodegaRepoFake
	pedidos    *pedidoRepoStub
}

func nuevoEntorno(t *testing.T) *entorno {
	t.Helper()
	e := &entorno{
		bicicletas: &bicicletaRepoFake{bicicletas: make(map[string]*entity.Bicicleta)},
		bodega:     &bodegaRepoFake{danos: make(map[string]*entity.ProductoDanado)},
		pedidos:    &pedidoRepoStub{},
	}
	tx := &txRunnerFake{bicicletas: e.bicicletas, bodega: e.bodega}
	e.uc = bodega.NewBodegaUseCase(tx, e.bicicletas, e.bodega, e.pedidos,
		func() time.Time { return relojFijo })
	return e
}

func (e *entorno) conBicicleta(id string, stock int) {
	_ = e.bicicletas.Create(&entity.Bicicleta{
		ID:     id,
		Marca:  "Scott",
		Modelo: "Spark",
		Stock:  stock,
		Activo: true,
	})
}

func (e *entorno) stockDe(t *testing.T, id string) int {
	t.Helper()
	b, err := e.bicicletas.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, b)
	return b.Stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Ingresos de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarIngreso_SumaStockYDocumenta(t *testing.T) {
	e := nuevoEntorno(t)
	e.conBicicleta("b1", 3)

	out, err := e.uc.RegistrarIngreso(context.Background(), bodegueroID, dto.RegistrarIngresoRequest{
		BicicletaID: "b1",
		Cantidad:    7,
		Notas:       "contenedor marzo",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, e.stockDe(t, "b1"))
	assert.Equal(t, bodegueroID, out.ConfirmadoPor)
	assert.Equal(t, relojFijo, out.Fecha)
	require.Len(t, e.bodega.ingresos, 1)
	assert.Equal(t, 7, e.bodega.ingresos[0].Cantidad)
}

func TestRegistrarIngreso_ProductoInexistente(t *testing.T) {
	e := nuevoEntorno(t)

	_, err := e.uc.RegistrarIngreso(context.Background(), bodegueroID, dto.RegistrarIngresoRequest{
		BicicletaID: "no-existe",
		Cantidad:    5,
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Empty(t, e.bodega.ingresos)
}

func TestRegistrarIngreso_CantidadInvalida(t *testing.T) {
	e := nuevoEntorno(t)
	e.conBicicleta("b1", 3)

	_, err := e.uc.RegistrarIngreso(context.Background(), bodegueroID, dto.RegistrarIngresoRequest{
		BicicletaID: "b1",
		Cantidad:    0,
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, 3, e.stockDe(t, "b1"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos dañados
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarDano_DescuentaStock(t *testing.T) {
	e := nuevoEntorno(t)
	e.conBicicleta("b1", 5)

	out, err := e.uc.RegistrarDano(context.Background(), bodegueroID, dto.RegistrarDanoRequest{
		BicicletaID:       "b1",
		MotivoTipo:        entity.MotivoTransporte,
		MotivoDescripcion: "caja aplastada",
		CantidadAfectada:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, e.stockDe(t, "b1"))
	assert.False(t, out.Resuelto)
	assert.Equal(t, entity.MotivoTransporte, out.MotivoTipo)
}

func TestRegistrarDano_MasQueElStockDisponible(t *testing.T) {
	e := nuevoEntorno(t)
	e.conBicicleta("b1", 2)

	_, err := e.uc.RegistrarDano(context.Background(), bodegueroID, dto.RegistrarDanoRequest{
		BicicletaID:      "b1",
		MotivoTipo:       entity.MotivoAlmacenamiento,
		CantidadAfectada: 5,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStockInsuficiente))

	assert.Equal(t, 2, e.stockDe(t, "b1"), "el rechazo no toca el stock")
	assert.Empty(t, e.bodega.danos, "tampoco queda reporte")
}

func TestRegistrarDano_MotivoDesconocido(t *testing.T) {
	e := nuevoEntorno(t)
	e.conBicicleta("b1", 5)

	_, err := e.uc.RegistrarDano(context.Background(), bodegueroID, dto.RegistrarDanoRequest{
		BicicletaID:      "b1",
		MotivoTipo:       "meteorito",
		CantidadAfectada: 1,
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestResolverDano_CierraSinReponerStock(t *testing.T) {
	e := nuevoEntorno(t)
	e.conBicicleta("b1", 5)

	reporte, err := e.uc.RegistrarDano(context.Background(), bodegueroID, dto.RegistrarDanoRequest{
		BicicletaID:      "b1",
		MotivoTipo:       entity.MotivoExhibicion,
		CantidadAfectada: 2,
	})
	require.NoError(t, err)
	require.Equal(t, 3, e.stockDe(t, "b1"))

	out, err := e.uc.ResolverDano(reporte.ID, dto.ResolverDanoRequest{
		NotasResolucion: "dado de baja y reciclado",
	})
	require.NoError(t, err)
	assert.True(t, out.Resuelto)
	assert.Equal(t, "dado de baja y reciclado", out.NotasResolucion)

	assert.Equal(t, 3, e.stockDe(t, "b1"),
		"resolver el reporte no devuelve unidades dañadas al inventario")
}

func TestResolverDano_YaResuelto(t *testing.T) {
	e := nuevoEntorno(t)
	e.conBicicleta("b1", 5)

	reporte, err := e.uc.RegistrarDano(context.Background(), bodegueroID, dto.RegistrarDanoRequest{
		BicicletaID:      "b1",
		MotivoTipo:       entity.MotivoOtro,
		CantidadAfectada: 1,
	})
	require.NoError(t, err)

	_, err = e.uc.ResolverDano(reporte.ID, dto.ResolverDanoRequest{})
	require.NoError(t, err)

	_, err = e.uc.ResolverDano(reporte.ID, dto.ResolverDanoRequest{})
	assert.True(t, errors.Is(err, domain.ErrEstadoInvalido))
}

func TestResolverDano_Inexistente(t *testing.T) {
	e := nuevoEntorno(t)

	_, err := e.uc.ResolverDano("no-existe", dto.ResolverDanoRequest{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Panel
// ──────────────────────────────────────────────────────────────────────────────

func TestPanel_ResumenOperativo(t *testing.T) {
	e := nuevoEntorno(t)
	e.conBicicleta("b1", 10)
	e.pedidos.pedidos = []*entity.Pedido{
		{ID: "p1", Estado: entity.EstadoPendiente},
		{ID: "p2", Estado: entity.EstadoConfirmado},
		{ID: "p3", Estado: entity.EstadoEntregado}, // fuera del panel
	}

	_, err := e.uc.RegistrarIngreso(context.Background(), bodegueroID, dto.RegistrarIngresoRequest{
		BicicletaID: "b1", Cantidad: 2,
	})
	require.NoError(t, err)

	reporte, err := e.uc.RegistrarDano(context.Background(), bodegueroID, dto.RegistrarDanoRequest{
		BicicletaID: "b1", MotivoTipo: entity.MotivoTransporte, CantidadAfectada: 1,
	})
	require.NoError(t, err)

	panel, err := e.uc.Panel()
	require.NoError(t, err)
	assert.Len(t, panel.PedidosPendientes, 2, "solo pendientes y confirmados")
	assert.Len(t, panel.IngresosRecientes, 1)
	require.Len(t, panel.DanosPendientes, 1)
	assert.Equal(t, reporte.ID, panel.DanosPendientes[0].ID)

	// Un daño resuelto sale del panel.
	_, err = e.uc.ResolverDano(reporte.ID, dto.ResolverDanoRequest{})
	require.NoError(t, err)
	panel, err = e.uc.Panel()
	require.NoError(t, err)
	assert.Empty(t, panel.DanosPendientes)
}
