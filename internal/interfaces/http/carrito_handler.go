package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aurabikers/tienda-api/internal/application/carrito"
	"github.com/aurabikers/tienda-api/internal/application/dto"
)

// CarritoHandler maneja el carrito del usuario autenticado.
type CarritoHandler struct {
	uc *carrito.CarritoUseCase
}

// NewCarritoHandler construye el handler.
func NewCarritoHandler(uc *carrito.CarritoUseCase) *CarritoHandler {
	return &CarritoHandler{uc: uc}
}

// Items godoc
// @Summary      Ver carrito
// @Tags         carrito
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CarritoResponse
// @Router       /api/carrito [get]
func (h *CarritoHandler) Items(c *fiber.Ctx) error {
	out, err := h.uc.Items(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Agregar godoc
// @Summary      Agregar al carrito
// @Description  Rechaza cantidades que superen el stock disponible.
// @Tags         carrito
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AgregarItemRequest  true  "Bicicleta y cantidad"
// @Success      200   {object}  dto.CarritoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/carrito/items [post]
func (h *CarritoHandler) Agregar(c *fiber.Ctx) error {
	var in dto.AgregarItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.BicicletaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bicicleta_id es requerido"})
	}
	usuarioID := GetUserID(c)
	if err := h.uc.Agregar(usuarioID, in.BicicletaID, in.Cantidad); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Items(usuarioID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ActualizarCantidad godoc
// @Summary      Cambiar cantidad de un item
// @Description  Cantidad cero o negativa elimina el item.
// @Tags         carrito
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        bicicletaId  path  string  true  "ID de la bicicleta"
// @Param        body         body  dto.ActualizarCantidadRequest  true  "Cantidad nueva"
// @Success      200  {object}  dto.CarritoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/carrito/items/{bicicletaId} [put]
func (h *CarritoHandler) ActualizarCantidad(c *fiber.Ctx) error {
	bicicletaID := c.Params("bicicletaId")
	var in dto.ActualizarCantidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	usuarioID := GetUserID(c)
	if err := h.uc.ActualizarCantidad(usuarioID, bicicletaID, in.Cantidad); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Items(usuarioID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Quitar un item del carrito
// @Tags         carrito
// @Security     Bearer
// @Param        bicicletaId  path  string  true  "ID de la bicicleta"
// @Success      204
// @Router       /api/carrito/items/{bicicletaId} [delete]
func (h *CarritoHandler) Eliminar(c *fiber.Ctx) error {
	h.uc.Eliminar(GetUserID(c), c.Params("bicicletaId"))
	return c.SendStatus(fiber.StatusNoContent)
}

// Vaciar godoc
// @Summary      Vaciar carrito
// @Tags         carrito
// @Security     Bearer
// @Success      204
// @Router       /api/carrito [delete]
func (h *CarritoHandler) Vaciar(c *fiber.Ctx) error {
	h.uc.Vaciar(GetUserID(c))
	return c.SendStatus(fiber.StatusNoContent)
}
