package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aurabikers/tienda-api/internal/application/admin"
	"github.com/aurabikers/tienda-api/internal/application/auth"
	"github.com/aurabikers/tienda-api/internal/application/bodega"
	"github.com/aurabikers/tienda-api/internal/application/carrito"
	"github.com/aurabikers/tienda-api/internal/application/catalogo"
	"github.com/aurabikers/tienda-api/internal/application/pedidos"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogoUC  *catalogo.CatalogoUseCase
	CarritoUC   *carrito.CarritoUseCase
	PedidoUC    *pedidos.PedidoUseCase
	CheckoutUC  *pedidos.CheckoutUseCase
	FacturaGen  pedidos.GeneradorFactura
	BodegaUC    *bodega.BodegaUseCase
	PQRSUC      *admin.PQRSUseCase
	PromocionUC *admin.PromocionUseCase
	DashboardUC *admin.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (público: cualquiera puede ver las bicicletas)
	catalogoGroup := api.Group("/catalogo")
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	catalogoGroup.Get("/", catalogoHandler.Listar)
	catalogoGroup.Get("/:id", catalogoHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Carrito (cualquier usuario autenticado)
	carritoGroup := protected.Group("/carrito")
	carritoHandler := NewCarritoHandler(deps.CarritoUC)
	carritoGroup.Get("/", carritoHandler.Items)
	carritoGroup.Delete("/", carritoHandler.Vaciar)
	carritoGroup.Post("/items", carritoHandler.Agregar)
	carritoGroup.Put("/items/:bicicletaId", carritoHandler.ActualizarCantidad)
	carritoGroup.Delete("/items/:bicicletaId", carritoHandler.Eliminar)

	// Pedidos: la autorización fina (rol y propiedad) vive en el dominio,
	// aquí solo se restringen los endpoints claramente exclusivos de un rol.
	pedidosGroup := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC, deps.CheckoutUC, deps.FacturaGen)
	pedidosGroup.Get("/", pedidoHandler.Listar)
	pedidosGroup.Get("/sin-asignar", RequireRole(entity.RolVendedor, entity.RolAdmin), pedidoHandler.ListarSinAsignar)
	pedidosGroup.Post("/checkout", RequireRole(entity.RolCliente), pedidoHandler.Checkout)
	pedidosGroup.Post("/venta-telefonica", RequireRole(entity.RolVendedor, entity.RolAdmin), pedidoHandler.VentaTelefonica)
	pedidosGroup.Get("/:id", pedidoHandler.GetByID)
	pedidosGroup.Post("/:id/reclamar", RequireRole(entity.RolVendedor, entity.RolAdmin), pedidoHandler.Reclamar)
	pedidosGroup.Put("/:id/estado", pedidoHandler.CambiarEstado)
	pedidosGroup.Post("/:id/despachar", RequireRole(entity.RolBodeguero, entity.RolAdmin), pedidoHandler.Despachar)
	pedidosGroup.Post("/:id/cancelar", pedidoHandler.Cancelar)
	pedidosGroup.Post("/:id/recalcular-total", RequireRole(entity.RolAdmin), pedidoHandler.RecalcularTotal)
	pedidosGroup.Get("/:id/factura", pedidoHandler.Factura)

	// Bodega (bodeguero y admin)
	bodegaGroup := protected.Group("/bodega", RequireRole(entity.RolBodeguero, entity.RolAdmin))
	bodegaHandler := NewBodegaHandler(deps.BodegaUC)
	bodegaGroup.Get("/panel", bodegaHandler.Panel)
	bodegaGroup.Post("/ingresos", bodegaHandler.RegistrarIngreso)
	bodegaGroup.Get("/ingresos", bodegaHandler.ListarIngresos)
	bodegaGroup.Post("/danos", bodegaHandler.RegistrarDano)
	bodegaGroup.Get("/danos", bodegaHandler.ListarDanos)
	bodegaGroup.Post("/danos/:id/resolver", bodegaHandler.ResolverDano)

	// PQRS (cliente crea y consulta los suyos)
	pqrsGroup := protected.Group("/pqrs")
	pqrsHandler := NewPQRSHandler(deps.PQRSUC)
	pqrsGroup.Post("/", pqrsHandler.Crear)
	pqrsGroup.Get("/", pqrsHandler.ListarPropios)
	pqrsGroup.Get("/:id", pqrsHandler.GetByID)

	// Admin
	adminGroup := protected.Group("/admin", RequireRole(entity.RolAdmin))
	adminGroup.Post("/usuarios", NewAuthHandler(deps.AuthUC).RegisterStaff)
	adminGroup.Post("/catalogo", catalogoHandler.Crear)
	adminGroup.Put("/catalogo/:id", catalogoHandler.Actualizar)
	adminGroup.Get("/pqrs", pqrsHandler.ListarTodos)
	adminGroup.Post("/pqrs/:id/responder", pqrsHandler.Responder)

	promocionHandler := NewPromocionHandler(deps.PromocionUC)
	adminGroup.Post("/promociones", promocionHandler.Crear)
	adminGroup.Get("/promociones", promocionHandler.Listar)
	adminGroup.Get("/promociones/:id", promocionHandler.GetByID)
	adminGroup.Put("/promociones/:id", promocionHandler.Actualizar)
	adminGroup.Delete("/promociones/:id", promocionHandler.Desactivar)

	adminGroup.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).Resumen)
}
