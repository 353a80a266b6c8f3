package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Monitoreo-api/internal/application/dto"
	"github.com/jhoicas/Monitoreo-api/internal/application/templates"
)

// TemplateHandler maneja el catálogo de plantillas de ítems de una familia (protegido).
type TemplateHandler struct {
	uc  *templates.TemplateUseCase
	log zerolog.Logger
}

// NewTemplateHandler construye el handler.
func NewTemplateHandler(uc *templates.TemplateUseCase, log zerolog.Logger) *TemplateHandler {
	return &TemplateHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear plantilla de ítem
// @Tags         templates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        family  path  string                     true  "Familia"  Enums(quotations, service-orders, purchase-orders)
// @Param        body    body  dto.CreateTemplateRequest  true  "Datos de la plantilla"
// @Success      201     {object}  dto.TemplateResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/{family}-templates [post]
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if userID == "" {
		return err
	}
	var in dto.CreateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), userID, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener plantilla por ID
// @Tags         templates
// @Security     Bearer
// @Produce      json
// @Param        family  path  string  true  "Familia"  Enums(quotations, service-orders, purchase-orders)
// @Param        id      path  string  true  "ID de la plantilla"
// @Success      200     {object}  dto.TemplateResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/{family}-templates/{id} [get]
func (h *TemplateHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar plantillas
// @Tags         templates
// @Security     Bearer
// @Produce      json
// @Param        family  path   string  true   "Familia"  Enums(quotations, service-orders, purchase-orders)
// @Param        page    query  int     false  "Página"   default(1)
// @Param        limit   query  int     false  "Límite"   default(10)
// @Param        search  query  string  false  "Código, nombre o descripción"
// @Success      200     {object}  dto.TemplateListResponse
// @Router       /api/{family}-templates [get]
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	q := dto.TemplateListQuery{
		PageRequest: dto.PageRequest{
			Page:  c.QueryInt("page", 1),
			Limit: c.QueryInt("limit", dto.DefaultPageLimit),
		},
		Search: c.Query("search"),
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar plantilla
// @Tags         templates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        family  path  string                     true  "Familia"  Enums(quotations, service-orders, purchase-orders)
// @Param        id      path  string                     true  "ID de la plantilla"
// @Param        body    body  dto.UpdateTemplateRequest  true  "Campos a actualizar"
// @Success      200     {object}  dto.TemplateResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/{family}-templates/{id} [put]
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if userID == "" {
		return err
	}
	var in dto.UpdateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar plantilla (soft delete)
// @Tags         templates
// @Security     Bearer
// @Param        family  path  string  true  "Familia"  Enums(quotations, service-orders, purchase-orders)
// @Param        id      path  string  true  "ID de la plantilla"
// @Success      204
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/{family}-templates/{id} [delete]
func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if userID == "" {
		return err
	}
	if err := h.uc.SoftDelete(c.UserContext(), userID, c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Item godoc
// @Summary      Línea de documento a partir de la plantilla
// @Description  Copia sin vínculo: editar la plantilla después no cambia documentos existentes.
// @Tags         templates
// @Security     Bearer
// @Produce      json
// @Param        family  path  string  true  "Familia"  Enums(quotations, service-orders, purchase-orders)
// @Param        id      path  string  true  "ID de la plantilla"
// @Success      200     {object}  dto.DocumentItemRequest
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/{family}-templates/{id}/item [get]
func (h *TemplateHandler) Item(c *fiber.Ctx) error {
	out, err := h.uc.Materialize(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
