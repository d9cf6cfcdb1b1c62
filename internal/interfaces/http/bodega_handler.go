package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aurabikers/tienda-api/internal/application/bodega"
	"github.com/aurabikers/tienda-api/internal/application/dto"
)

// BodegaHandler maneja la operación de bodega (protegido con RequireRole).
type BodegaHandler struct {
	uc *bodega.BodegaUseCase
}

// NewBodegaHandler construye el handler.
func NewBodegaHandler(uc *bodega.BodegaUseCase) *BodegaHandler {
	return &BodegaHandler{uc: uc}
}

// Panel godoc
// @Summary      Panel del bodeguero
// @Description  Pedidos por atender, ingresos recientes y daños sin resolver.
// @Tags         bodega
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PanelBodegaResponse
// @Router       /api/bodega/panel [get]
func (h *BodegaHandler) Panel(c *fiber.Ctx) error {
	out, err := h.uc.Panel()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegistrarIngreso godoc
// @Summary      Registrar ingreso de stock
// @Description  Documenta la llegada de unidades y suma el stock en una transacción.
// @Tags         bodega
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarIngresoRequest  true  "Bicicleta y cantidad"
// @Success      201   {object}  dto.IngresoStockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bodega/ingresos [post]
func (h *BodegaHandler) RegistrarIngreso(c *fiber.Ctx) error {
	var in dto.RegistrarIngresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarIngreso(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarIngresos godoc
// @Summary      Listar ingresos de stock
// @Tags         bodega
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.IngresoStockResponse
// @Router       /api/bodega/ingresos [get]
func (h *BodegaHandler) ListarIngresos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.ListarIngresos(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegistrarDano godoc
// @Summary      Reportar producto dañado
// @Description  Descuenta del stock la cantidad afectada; falla si supera lo disponible.
// @Tags         bodega
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarDanoRequest  true  "Bicicleta, motivo y cantidad"
// @Success      201   {object}  dto.ProductoDanadoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bodega/danos [post]
func (h *BodegaHandler) RegistrarDano(c *fiber.Ctx) error {
	var in dto.RegistrarDanoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarDano(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarDanos godoc
// @Summary      Listar reportes de daño
// @Tags         bodega
// @Security     Bearer
// @Produce      json
// @Param        pendientes  query  bool  false  "Solo no resueltos"
// @Param        limit       query  int   false  "Límite"   default(20)
// @Param        offset      query  int   false  "Offset"   default(0)
// @Success      200  {array}  dto.ProductoDanadoResponse
// @Router       /api/bodega/danos [get]
func (h *BodegaHandler) ListarDanos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.ListarDanos(c.QueryBool("pendientes", false), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ResolverDano godoc
// @Summary      Resolver reporte de daño
// @Description  Cierra el reporte; las unidades dañadas no vuelven al inventario.
// @Tags         bodega
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del reporte"
// @Param        body  body  dto.ResolverDanoRequest  true  "Notas de resolución"
// @Success      200   {object}  dto.ProductoDanadoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bodega/danos/{id}/resolver [post]
func (h *BodegaHandler) ResolverDano(c *fiber.Ctx) error {
	var in dto.ResolverDanoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ResolverDano(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
