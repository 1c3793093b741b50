package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/VictorHerdz10/ACRP-API/internal/api/dto"
	"github.com/VictorHerdz10/ACRP-API/internal/service"
)

// PagesHandler exposes page CRUD endpoints.
type PagesHandler struct {
	pages *service.PageService
}

// NewPagesHandler constructs handler.
func NewPagesHandler(pageService *service.PageService) *PagesHandler {
	return &PagesHandler{pages: pageService}
}

// List handles GET /api/page.
func (h *PagesHandler) List(c *fiber.Ctx) error {
	pages, err := h.pages.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPageResponses(pages))
}

// Get handles GET /api/page/:id.
func (h *PagesHandler) Get(c *fiber.Ctx) error {
	page, err := h.pages.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPageResponse(page))
}

// Create handles POST /api/page.
func (h *PagesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Description == "" || req.SectionID == "" || req.Category == "" {
		return fiber.NewError(http.StatusBadRequest, "name, description, sectionId and category are required")
	}

	page, err := h.pages.Create(c.UserContext(), service.PageInput{
		Name:               req.Name,
		Description:        req.Description,
		SectionID:          req.SectionID,
		Category:           req.Category,
		SpecificAttributes: req.SpecificAttributes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPageResponse(page))
}

// Update handles PUT /api/page/:id.
func (h *PagesHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdatePageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	page, err := h.pages.Update(c.UserContext(), c.Params("id"), service.PageUpdate{
		Name:               req.Name,
		Description:        req.Description,
		SectionID:          req.SectionID,
		Category:           req.Category,
		SpecificAttributes: req.SpecificAttributes,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPageResponse(page))
}

// Delete handles DELETE /api/page/:id.
func (h *PagesHandler) Delete(c *fiber.Ctx) error {
	if err := h.pages.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "page deleted successfully"})
}
