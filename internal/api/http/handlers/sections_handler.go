package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/VictorHerdz10/ACRP-API/internal/api/dto"
	"github.com/VictorHerdz10/ACRP-API/internal/service"
)

// SectionsHandler exposes section CRUD endpoints.
type SectionsHandler struct {
	sections *service.SectionService
}

// NewSectionsHandler constructs handler.
func NewSectionsHandler(sectionService *service.SectionService) *SectionsHandler {
	return &SectionsHandler{sections: sectionService}
}

// List handles GET /api/section.
func (h *SectionsHandler) List(c *fiber.Ctx) error {
	sections, err := h.sections.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSectionResponses(sections))
}

// Get handles GET /api/section/:id.
func (h *SectionsHandler) Get(c *fiber.Ctx) error {
	section, err := h.sections.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSectionResponse(section))
}

// Create handles POST /api/section.
func (h *SectionsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" || req.Description == "" {
		return fiber.NewError(http.StatusBadRequest, "title and description are required")
	}

	section, err := h.sections.Create(c.UserContext(), req.Title, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewSectionResponse(section))
}

// Update handles PUT /api/section/:id.
func (h *SectionsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	section, err := h.sections.Update(c.UserContext(), c.Params("id"), req.Title, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSectionResponse(section))
}

// Delete handles DELETE /api/section/:id.
func (h *SectionsHandler) Delete(c *fiber.Ctx) error {
	if err := h.sections.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "section deleted successfully"})
}
