package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Monitoreo-api/internal/application/documents"
	"github.com/jhoicas/Monitoreo-api/internal/application/dto"
)

// DocumentHandler maneja las peticiones HTTP de una familia de documentos (protegido).
type DocumentHandler struct {
	uc  *documents.DocumentUseCase
	pdf *documents.PDFUseCase
	log zerolog.Logger
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *documents.DocumentUseCase, pdf *documents.PDFUseCase, log zerolog.Logger) *DocumentHandler {
	return &DocumentHandler{uc: uc, pdf: pdf, log: log}
}

// Create godoc
// @Summary      Crear documento
// @Description  Si number va vacío se asigna el siguiente correlativo de la familia.
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        family  path  string                     true  "Familia"  Enums(quotations, service-orders, purchase-orders)
// @Param        body    body  dto.CreateDocumentRequest  true  "Cabecera e ítems"
// @Success      201     {object}  dto.DocumentResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/{family} [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if userID == "" {
		return err
	}
	var in dto.CreateDocumentRequest
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
// @Summary      Obtener documento por ID
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        family  path  string  true  "Familia"  Enums(quotations, service-orders, purchase-orders)
// @Param        id      path  string  true  "ID del documento"
// @Success      200     {object}  dto.DocumentResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/{family}/{id} [get]
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar documentos
// @Description  Activos, ordenados por fecha descendente. search busca en número y descripción.
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        family    path   string  true   "Familia"  Enums(quotations, service-orders, purchase-orders)
// @Param        page      query  int     false  "Página"   default(1)
// @Param        limit     query  int     false  "Límite"   default(10)
// @Param        search    query  string  false  "Texto a buscar"
// @Param        status    query  string  false  "Estado"
// @Param        party_id  query  string  false  "Cliente o proveedor"
// @Success      200       {object}  dto.DocumentListResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/{family} [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	q := dto.DocumentListQuery{
		PageRequest: dto.PageRequest{
			Page:  c.QueryInt("page", 1),
			Limit: c.QueryInt("limit", dto.DefaultPageLimit),
		},
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		PartyID: c.Query("party_id"),
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar documento
// @Description  Si items viene, reemplaza todas las líneas activas y recalcula los totales.
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        family  path  string                     true  "Familia"  Enums(quotations, service-orders, purchase-orders)
// @Param        id      path  string                     true  "ID del documento"
// @Param        body    body  dto.UpdateDocumentRequest  true  "Campos a actualizar"
// @Success      200     {object}  dto.DocumentResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/{family}/{id} [put]
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if userID == "" {
		return err
	}
	var in dto.UpdateDocumentRequest
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
// @Summary      Eliminar documento (soft delete)
// @Tags         documents
// @Security     Bearer
// @Param        family  path  string  true  "Familia"  Enums(quotations, service-orders, purchase-orders)
// @Param        id      path  string  true  "ID del documento"
// @Success      204
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/{family}/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	userID, err := requireUser(c)
	if userID == "" {
		return err
	}
	if err := h.uc.SoftDelete(c.UserContext(), userID, c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// NextNumber godoc
// @Summary      Sugerir el siguiente número
// @Description  Valor orientativo: la unicidad se comprueba al crear.
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        family  path  string  true  "Familia"  Enums(quotations, service-orders, purchase-orders)
// @Success      200     {object}  dto.NextNumberResponse
// @Router       /api/{family}/next-number [get]
func (h *DocumentHandler) NextNumber(c *fiber.Ctx) error {
	out, err := h.uc.NextNumber(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar PDF del documento
// @Tags         documents
// @Security     Bearer
// @Produce      application/pdf
// @Param        family  path  string  true  "Familia"  Enums(quotations, service-orders, purchase-orders)
// @Param        id      path  string  true  "ID del documento"
// @Success      200     {file}    binary
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/{family}/{id}/pdf [get]
func (h *DocumentHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.Download(c.UserContext(), h.uc.Config().Family, c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
