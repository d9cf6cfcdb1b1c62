package pedidos_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurabikers/tienda-api/internal/application/carrito"
	"github.com/aurabikers/tienda-api/internal/application/catalogo"
	"github.com/aurabikers/tienda-api/internal/application/dto"
	app "github.com/aurabikers/tienda-api/internal/application/pedidos"
	"github.com/aurabikers/tienda-api/internal/domain"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
	domped "github.com/aurabikers/tienda-api/internal/domain/pedidos"
	"github.com/aurabikers/tienda-api/internal/infrastructure/memoria"
)

type entornoCheckout struct {
	uc          *app.CheckoutUseCase
	carritoUC   *carrito.CarritoUseCase
	pedidos     *pedidoRepoFake
	bicicletas  *bicicletaRepoFake
	promociones *promocionRepoFake
	usuarios    *usuarioRepoFake
}

func nuevoEntornoCheckout(t *testing.T) *entornoCheckout {
	t.Helper()
	e := &entornoCheckout{
		pedidos:     newPedidoRepoFake(),
		bicicletas:  newBicicletaRepoFake(),
		promociones: newPromocionRepoFake(),
		usuarios:    newUsuarioRepoFake(),
	}
	reloj := func() time.Time { return relojFijo }
	catalogoUC := catalogo.NewCatalogoUseCase(e.bicicletas, e.promociones, reloj)
	e.carritoUC = carrito.NewCarritoUseCase(memoria.NewCarritoStore(), e.bicicletas, catalogoUC)
	tx := &txRunnerFake{
		pedidoRepo:    e.pedidos,
		bicicletaRepo: e.bicicletas,
		bodegaRepo:    newBodegaRepoFake(),
	}
	e.uc = app.NewCheckoutUseCase(tx, e.bicicletas, e.usuarios, e.carritoUC, catalogoUC, reloj)
	return e
}

func (e *entornoCheckout) conBicicleta(id string, stock int, precio int64) {
	_ = e.bicicletas.Create(&entity.Bicicleta{
		ID:     id,
		Marca:  "Specialized",
		Modelo: "Allez " + id,
		Gama:   entity.GamaAlta,
		Tipo:   entity.TipoRuta,
		Precio: decimal.NewFromInt(precio),
		Costo:  decimal.NewFromInt(precio / 2),
		Stock:  stock,
		Activo: true,
	})
}

func (e *entornoCheckout) conCliente(id, direccion string) {
	_ = e.usuarios.Create(&entity.Usuario{
		ID:        id,
		Email:     id + "@test.com",
		Nombre:    "Cliente " + id,
		Rol:       entity.RolCliente,
		Direccion: direccion,
		Activo:    true,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Checkout de carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_CreaPendienteYVaciaCarrito(t *testing.T) {
	e := nuevoEntornoCheckout(t)
	e.conBicicleta("b1", 5, 300)
	e.conBicicleta("b2", 4, 100)
	e.conCliente(clienteID, "Calle 10 #5-23")

	require.NoError(t, e.carritoUC.Agregar(clienteID, "b1", 1))
	require.NoError(t, e.carritoUC.Agregar(clienteID, "b2", 2))

	pedidoID, err := e.uc.Checkout(context.Background(), clienteID, dto.CheckoutRequest{
		DireccionEnvio: "Carrera 7 #45-10",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pedidoID)

	p, _ := e.pedidos.GetByID(pedidoID)
	require.NotNil(t, p)
	assert.Equal(t, entity.EstadoPendiente, p.Estado)
	assert.Equal(t, clienteID, p.ClienteID)
	assert.Nil(t, p.VendedorID, "el checkout no asigna vendedor")
	assert.False(t, p.CreadoPorVendedor)
	assert.Equal(t, "Carrera 7 #45-10", p.DireccionEnvio)
	assert.True(t, decimal.NewFromInt(500).Equal(p.Total))

	detalles, _ := e.pedidos.GetDetalles(pedidoID)
	assert.Len(t, detalles, 2)

	historial, _ := e.pedidos.GetHistorial(pedidoID)
	assert.Empty(t, historial, "la creación no genera entrada de historial")

	assert.Empty(t, e.carritoUC.Contenido(clienteID), "el carrito se vacía tras crear el pedido")
}

func TestCheckout_NoDescuentaStock(t *testing.T) {
	e := nuevoEntornoCheckout(t)
	e.conBicicleta("b1", 5, 300)
	e.conCliente(clienteID, "Calle 10")

	require.NoError(t, e.carritoUC.Agregar(clienteID, "b1", 3))

	_, err := e.uc.Checkout(context.Background(), clienteID, dto.CheckoutRequest{DireccionEnvio: "Calle 10"})
	require.NoError(t, err)

	b, _ := e.bicicletas.GetByID("b1")
	assert.Equal(t, 5, b.Stock, "el stock se descuenta al despachar, no al crear")
}

func TestCheckout_CarritoVacio(t *testing.T) {
	e := nuevoEntornoCheckout(t)
	e.conCliente(clienteID, "Calle 10")

	_, err := e.uc.Checkout(context.Background(), clienteID, dto.CheckoutRequest{})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCheckout_StockCayoDesdeQueSeAgrego(t *testing.T) {
	e := nuevoEntornoCheckout(t)
	e.conBicicleta("b1", 3, 300)
	e.conCliente(clienteID, "Calle 10")

	require.NoError(t, e.carritoUC.Agregar(clienteID, "b1", 3))
	// Otro proceso consumió el stock después de agregar al carrito.
	require.NoError(t, e.bicicletas.UpdateStock("b1", 2))

	_, err := e.uc.Checkout(context.Background(), clienteID, dto.CheckoutRequest{DireccionEnvio: "Calle 10"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStockInsuficiente))

	assert.NotEmpty(t, e.carritoUC.Contenido(clienteID), "un checkout fallido conserva el carrito")
}

func TestCheckout_DireccionPorDefectoDelPerfil(t *testing.T) {
	e := nuevoEntornoCheckout(t)
	e.conBicicleta("b1", 5, 300)
	e.conCliente(clienteID, "Avenida Siempre Viva 742")

	require.NoError(t, e.carritoUC.Agregar(clienteID, "b1", 1))

	pedidoID, err := e.uc.Checkout(context.Background(), clienteID, dto.CheckoutRequest{})
	require.NoError(t, err)

	p, _ := e.pedidos.GetByID(pedidoID)
	assert.Equal(t, "Avenida Siempre Viva 742", p.DireccionEnvio)
}

func TestCheckout_CapturaPrecioConPromocionVigente(t *testing.T) {
	e := nuevoEntornoCheckout(t)
	e.conBicicleta("b1", 5, 1000)
	e.conCliente(clienteID, "Calle 10")
	_ = e.promociones.Create(&entity.Promocion{
		ID:           "promo-1",
		Nombre:       "Aniversario",
		Descuento:    decimal.NewFromInt(20),
		FechaInicio:  relojFijo.AddDate(0, 0, -1),
		FechaFin:     relojFijo.AddDate(0, 0, 1),
		Activa:       true,
		AplicaATodas: true,
	})

	require.NoError(t, e.carritoUC.Agregar(clienteID, "b1", 1))

	pedidoID, err := e.uc.Checkout(context.Background(), clienteID, dto.CheckoutRequest{DireccionEnvio: "Calle 10"})
	require.NoError(t, err)

	detalles, _ := e.pedidos.GetDetalles(pedidoID)
	require.Len(t, detalles, 1)
	assert.True(t, decimal.NewFromInt(800).Equal(detalles[0].PrecioUnitario),
		"la línea captura el precio promocional vigente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Venta telefónica
// ──────────────────────────────────────────────────────────────────────────────

func TestVentaTelefonica_QuedaAsignadaAlVendedor(t *testing.T) {
	e := nuevoEntornoCheckout(t)
	e.conBicicleta("b1", 5, 300)
	e.conCliente(clienteID, "Calle 10")

	vendedor := domped.Actor{ID: vendedorID, Rol: entity.RolVendedor}
	pedidoID, err := e.uc.VentaTelefonica(context.Background(), vendedor, dto.VentaTelefonicaRequest{
		ClienteID: clienteID,
		Items:     []dto.ItemVentaRequest{{BicicletaID: "b1", Cantidad: 2}},
	})
	require.NoError(t, err)

	p, _ := e.pedidos.GetByID(pedidoID)
	require.NotNil(t, p)
	assert.Equal(t, clienteID, p.ClienteID)
	require.NotNil(t, p.VendedorID)
	assert.Equal(t, vendedorID, *p.VendedorID)
	assert.True(t, p.CreadoPorVendedor)
	assert.Equal(t, entity.EstadoPendiente, p.Estado)
	assert.Equal(t, "Calle 10", p.DireccionEnvio, "sin dirección explícita usa la del perfil")
}

func TestVentaTelefonica_ClienteNoPuede(t *testing.T) {
	e := nuevoEntornoCheckout(t)
	e.conBicicleta("b1", 5, 300)
	e.conCliente(clienteID, "Calle 10")

	cliente := domped.Actor{ID: clienteID, Rol: entity.RolCliente}
	_, err := e.uc.VentaTelefonica(context.Background(), cliente, dto.VentaTelefonicaRequest{
		ClienteID: clienteID,
		Items:     []dto.ItemVentaRequest{{BicicletaID: "b1", Cantidad: 1}},
	})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestVentaTelefonica_ClienteDebeExistirConRolCliente(t *testing.T) {
	e := nuevoEntornoCheckout(t)
	e.conBicicleta("b1", 5, 300)
	// vendedor-2 existe pero no es cliente
	_ = e.usuarios.Create(&entity.Usuario{ID: "vendedor-2", Email: "v2@test.com", Rol: entity.RolVendedor, Activo: true})

	vendedor := domped.Actor{ID: vendedorID, Rol: entity.RolVendedor}

	_, err := e.uc.VentaTelefonica(context.Background(), vendedor, dto.VentaTelefonicaRequest{
		ClienteID: "no-existe",
		Items:     []dto.ItemVentaRequest{{BicicletaID: "b1", Cantidad: 1}},
	})
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))

	_, err = e.uc.VentaTelefonica(context.Background(), vendedor, dto.VentaTelefonicaRequest{
		ClienteID: "vendedor-2",
		Items:     []dto.ItemVentaRequest{{BicicletaID: "b1", Cantidad: 1}},
	})
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}

func TestVentaTelefonica_CantidadInvalida(t *testing.T) {
	e := nuevoEntornoCheckout(t)
	e.conBicicleta("b1", 5, 300)
	e.conCliente(clienteID, "Calle 10")

	vendedor := domped.Actor{ID: vendedorID, Rol: entity.RolVendedor}
	_, err := e.uc.VentaTelefonica(context.Background(), vendedor, dto.VentaTelefonicaRequest{
		ClienteID: clienteID,
		Items:     []dto.ItemVentaRequest{{BicicletaID: "b1", Cantidad: 0}},
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
