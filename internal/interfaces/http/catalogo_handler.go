package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aurabikers/tienda-api/internal/application/catalogo"
	"github.com/aurabikers/tienda-api/internal/application/dto"
)

// CatalogoHandler maneja el catálogo: consulta pública y administración.
type CatalogoHandler struct {
	uc *catalogo.CatalogoUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *catalogo.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar catálogo
// @Description  Catálogo público con filtros por gama, tipo y marca. La marca no distingue mayúsculas ni tildes.
// @Tags         catalogo
// @Produce      json
// @Param        gama    query  string  false  "media | alta"
// @Param        tipo    query  string  false  "ruta | mtb"
// @Param        marca   query  string  false  "Búsqueda por marca (contiene)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.CatalogoResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/catalogo [get]
func (h *CatalogoHandler) Listar(c *fiber.Ctx) error {
	var in dto.FiltroCatalogoRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	out, err := h.uc.Listar(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de bicicleta
// @Tags         catalogo
// @Produce      json
// @Param        id   path  string  true  "ID de la bicicleta"
// @Success      200  {object}  dto.BicicletaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogo/{id} [get]
func (h *CatalogoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bicicleta no encontrada"})
	}
	return c.JSON(out)
}

// Crear godoc
// @Summary      Crear bicicleta (admin)
// @Tags         catalogo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBicicletaRequest  true  "Datos del producto"
// @Success      201   {object}  dto.BicicletaAdminResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/catalogo [post]
func (h *CatalogoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CreateBicicletaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar bicicleta (admin)
// @Description  No modifica stock; el inventario cambia solo por ingresos, daños y despachos.
// @Tags         catalogo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la bicicleta"
// @Param        body  body  dto.UpdateBicicletaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.BicicletaAdminResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/catalogo/{id} [put]
func (h *CatalogoHandler) Actualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateBicicletaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
