package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aurabikers/tienda-api/internal/application/dto"
	"github.com/aurabikers/tienda-api/internal/application/pedidos"
	"github.com/aurabikers/tienda-api/internal/domain/entity"
)

// PedidoHandler maneja el ciclo de vida de los pedidos.
type PedidoHandler struct {
	pedidoUC   *pedidos.PedidoUseCase
	checkoutUC *pedidos.CheckoutUseCase
	facturaGen pedidos.GeneradorFactura
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(pedidoUC *pedidos.PedidoUseCase, checkoutUC *pedidos.CheckoutUseCase, facturaGen pedidos.GeneradorFactura) *PedidoHandler {
	return &PedidoHandler{pedidoUC: pedidoUC, checkoutUC: checkoutUC, facturaGen: facturaGen}
}

// Listar godoc
// @Summary      Listar pedidos visibles para el rol
// @Description  Cliente: los suyos. Vendedor: los asignados. Bodeguero: pendientes y confirmados. Admin: todos.
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PedidoListResponse
// @Router       /api/pedidos [get]
func (h *PedidoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.pedidoUC.Listar(GetActor(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListarSinAsignar godoc
// @Summary      Pedidos pendientes sin vendedor
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PedidoListResponse
// @Router       /api/pedidos/sin-asignar [get]
func (h *PedidoHandler) ListarSinAsignar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.pedidoUC.ListarSinAsignar(GetActor(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle del pedido con líneas e historial
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.PedidoDetalleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [get]
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.pedidoUC.GetByID(c.Params("id"), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Finalizar carrito como pedido
// @Description  Crea el pedido pendiente con el precio vigente de cada línea y vacía el carrito. No descuenta stock.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Dirección de envío y notas"
// @Success      201   {object}  dto.PedidoDetalleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos/checkout [post]
func (h *PedidoHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor := GetActor(c)
	pedidoID, err := h.checkoutUC.Checkout(c.Context(), actor.ID, in)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.pedidoUC.GetByID(pedidoID, actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// VentaTelefonica godoc
// @Summary      Crear pedido a nombre de un cliente (vendedor)
// @Description  El pedido queda asignado al vendedor que lo registra.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VentaTelefonicaRequest  true  "Cliente, dirección e items"
// @Success      201   {object}  dto.PedidoDetalleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos/venta-telefonica [post]
func (h *PedidoHandler) VentaTelefonica(c *fiber.Ctx) error {
	var in dto.VentaTelefonicaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor := GetActor(c)
	pedidoID, err := h.checkoutUC.VentaTelefonica(c.Context(), actor, in)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.pedidoUC.GetByID(pedidoID, actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Reclamar godoc
// @Summary      Reclamar pedido (vendedor)
// @Description  Asigna el pedido pendiente al vendedor autenticado. Falla con conflicto si ya tiene vendedor.
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.PedidoDetalleResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/reclamar [post]
func (h *PedidoHandler) Reclamar(c *fiber.Ctx) error {
	actor := GetActor(c)
	if err := h.pedidoUC.Reclamar(c.Context(), c.Params("id"), actor); err != nil {
		return respondError(c, err)
	}
	out, err := h.pedidoUC.GetByID(c.Params("id"), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CambiarEstado godoc
// @Summary      Cambiar estado del pedido
// @Description  Aplica la transición si el rol lo permite. Despachar descuenta stock y cancelar lo repone si ya hubo despacho.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.CambiarEstadoRequest  true  "Estado nuevo y notas"
// @Success      200   {object}  dto.PedidoDetalleResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/estado [put]
func (h *PedidoHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actor := GetActor(c)
	if err := h.pedidoUC.CambiarEstado(c.Context(), c.Params("id"), entity.EstadoPedido(in.Estado), actor, in.Notas); err != nil {
		return respondError(c, err)
	}
	out, err := h.pedidoUC.GetByID(c.Params("id"), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Despachar godoc
// @Summary      Despachar pedido (bodega)
// @Description  Verifica stock de todas las líneas, descuenta y registra la confirmación de despacho en una transacción.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.DespacharRequest  false  "Notas del despacho"
// @Success      200   {object}  dto.PedidoDetalleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/despachar [post]
func (h *PedidoHandler) Despachar(c *fiber.Ctx) error {
	var in dto.DespacharRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	actor := GetActor(c)
	if err := h.pedidoUC.Despachar(c.Context(), c.Params("id"), actor, in.Notas); err != nil {
		return respondError(c, err)
	}
	out, err := h.pedidoUC.GetByID(c.Params("id"), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancelar godoc
// @Summary      Cancelar pedido
// @Description  El motivo es obligatorio salvo para el cliente cancelando su pedido pendiente. Repone stock si ya hubo despacho.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.CancelarRequest  false  "Motivo de cancelación"
// @Success      200   {object}  dto.PedidoDetalleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/cancelar [post]
func (h *PedidoHandler) Cancelar(c *fiber.Ctx) error {
	var in dto.CancelarRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	actor := GetActor(c)
	if err := h.pedidoUC.Cancelar(c.Context(), c.Params("id"), actor, in.Motivo); err != nil {
		return respondError(c, err)
	}
	out, err := h.pedidoUC.GetByID(c.Params("id"), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RecalcularTotal godoc
// @Summary      Recalcular total del pedido (admin)
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.PedidoDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/recalcular-total [post]
func (h *PedidoHandler) RecalcularTotal(c *fiber.Ctx) error {
	if _, err := h.pedidoUC.RecalcularTotal(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	out, err := h.pedidoUC.GetByID(c.Params("id"), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Factura godoc
// @Summary      Descargar factura PDF del pedido
// @Tags         pedidos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/factura [get]
func (h *PedidoHandler) Factura(c *fiber.Ctx) error {
	pdfBytes, err := h.pedidoUC.FacturaPDF(c.Context(), h.facturaGen, c.Params("id"), GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="factura-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
