package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aurabikers/tienda-api/internal/application/admin"
	"github.com/aurabikers/tienda-api/internal/application/dto"
)

// PQRSHandler maneja los casos PQRS: el cliente crea y consulta, el admin responde.
type PQRSHandler struct {
	uc *admin.PQRSUseCase
}

// NewPQRSHandler construye el handler.
func NewPQRSHandler(uc *admin.PQRSUseCase) *PQRSHandler {
	return &PQRSHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear caso PQRS
// @Tags         pqrs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPQRSRequest  true  "Tipo, asunto y descripción"
// @Success      201   {object}  dto.PQRSResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pqrs [post]
func (h *PQRSHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearPQRSRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarPropios godoc
// @Summary      Mis casos PQRS
// @Tags         pqrs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PQRSResponse
// @Router       /api/pqrs [get]
func (h *PQRSHandler) ListarPropios(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.ListarPropios(GetUserID(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un caso PQRS
// @Tags         pqrs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del caso"
// @Success      200  {object}  dto.PQRSResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pqrs/{id} [get]
func (h *PQRSHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), GetUserID(c), GetRole(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListarTodos godoc
// @Summary      Listar casos PQRS (admin)
// @Tags         pqrs
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "abierto | en_proceso | resuelto"
// @Success      200  {array}  dto.PQRSResponse
// @Router       /api/admin/pqrs [get]
func (h *PQRSHandler) ListarTodos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.Listar(c.Query("estado"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Responder godoc
// @Summary      Responder caso PQRS (admin)
// @Tags         pqrs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del caso"
// @Param        body  body  dto.ResponderPQRSRequest  true  "Respuesta y estado nuevo"
// @Success      200   {object}  dto.PQRSResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/pqrs/{id}/responder [post]
func (h *PQRSHandler) Responder(c *fiber.Ctx) error {
	var in dto.ResponderPQRSRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Responder(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PromocionHandler maneja las promociones (admin; el catálogo público ya las aplica).
type PromocionHandler struct {
	uc *admin.PromocionUseCase
}

// NewPromocionHandler construye el handler.
func NewPromocionHandler(uc *admin.PromocionUseCase) *PromocionHandler {
	return &PromocionHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear promoción (admin)
// @Tags         promociones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPromocionRequest  true  "Descuento, vigencia y alcance"
// @Success      201   {object}  dto.PromocionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/promociones [post]
func (h *PromocionHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearPromocionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar promociones (admin)
// @Tags         promociones
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PromocionResponse
// @Router       /api/admin/promociones [get]
func (h *PromocionHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.Listar(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de promoción (admin)
// @Tags         promociones
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la promoción"
// @Success      200  {object}  dto.PromocionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/promociones/{id} [get]
func (h *PromocionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar promoción (admin)
// @Tags         promociones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la promoción"
// @Param        body  body  dto.ActualizarPromocionRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.PromocionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/promociones/{id} [put]
func (h *PromocionHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarPromocionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Desactivar godoc
// @Summary      Desactivar promoción (admin)
// @Tags         promociones
// @Security     Bearer
// @Param        id   path  string  true  "ID de la promoción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/promociones/{id} [delete]
func (h *PromocionHandler) Desactivar(c *fiber.Ctx) error {
	if err := h.uc.Desactivar(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DashboardHandler expone las métricas del panel del administrador.
type DashboardHandler struct {
	uc *admin.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *admin.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumen godoc
// @Summary      Panel del administrador
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
