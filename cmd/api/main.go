package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/aurabikers/tienda-api/internal/application/admin"
	"github.com/aurabikers/tienda-api/internal/application/auth"
	"github.com/aurabikers/tienda-api/internal/application/bodega"
	"github.com/aurabikers/tienda-api/internal/application/carrito"
	"github.com/aurabikers/tienda-api/internal/application/catalogo"
	"github.com/aurabikers/tienda-api/internal/application/pedidos"
	"github.com/aurabikers/tienda-api/internal/infrastructure/memoria"
	infrapdf "github.com/aurabikers/tienda-api/internal/infrastructure/pdf"
	"github.com/aurabikers/tienda-api/internal/infrastructure/postgres"
	httpRouter "github.com/aurabikers/tienda-api/internal/interfaces/http"
	"github.com/aurabikers/tienda-api/pkg/config"
	"github.com/aurabikers/tienda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	bicicletaRepo := postgres.NewBicicletaRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	bodegaRepo := postgres.NewBodegaRepository(pool)
	pqrsRepo := postgres.NewPQRSRepository(pool)
	promocionRepo := postgres.NewPromocionRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogoUC := catalogo.NewCatalogoUseCase(bicicletaRepo, promocionRepo, nil)
	carritoStore := memoria.NewCarritoStore()
	carritoUC := carrito.NewCarritoUseCase(carritoStore, bicicletaRepo, catalogoUC)
	pedidoUC := pedidos.NewPedidoUseCase(txRunner, pedidoRepo, bicicletaRepo, bodegaRepo, usuarioRepo, nil)
	checkoutUC := pedidos.NewCheckoutUseCase(txRunner, bicicletaRepo, usuarioRepo, carritoUC, catalogoUC, nil)
	bodegaUC := bodega.NewBodegaUseCase(txRunner, bicicletaRepo, bodegaRepo, pedidoRepo, nil)
	pqrsUC := admin.NewPQRSUseCase(pqrsRepo, nil)
	promocionUC := admin.NewPromocionUseCase(promocionRepo, nil)
	dashboardUC := admin.NewDashboardUseCase(dashboardRepo, bicicletaRepo)

	facturaGen := infrapdf.NewMarotoFacturaGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Aura Bikers API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CatalogoUC:  catalogoUC,
		CarritoUC:   carritoUC,
		PedidoUC:    pedidoUC,
		CheckoutUC:  checkoutUC,
		FacturaGen:  facturaGen,
		BodegaUC:    bodegaUC,
		PQRSUC:      pqrsUC,
		PromocionUC: promocionUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
