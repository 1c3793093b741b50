package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/VictorHerdz10/ACRP-API/internal/admission"
	"github.com/VictorHerdz10/ACRP-API/internal/api/dto"
	"github.com/VictorHerdz10/ACRP-API/internal/service"
)

// UsersHandler exposes account endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Register handles POST /api/user/register.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email, username and password are required")
	}

	if _, err := h.auth.Register(c.UserContext(), req.Email, req.Username, req.NameFull, req.Password); err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.MessageResponse{Message: "user registered successfully"})
}

// Login handles POST /api/user/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password are required")
	}

	token, _, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{Token: token})
}

// List handles GET /api/user/all.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers(c.UserContext())
	if err != nil {
		return err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, dto.NewUserResponse(user))
	}
	return c.JSON(out)
}

// Profile handles GET /api/user/profile, resolving the account from the
// admitted claims' email.
func (h *UsersHandler) Profile(c *fiber.Ctx) error {
	claims, ok := admission.ClaimsFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusBadRequest, "could not find user information")
	}

	user, err := h.auth.Profile(c.UserContext(), claims.Email)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProfileResponse(user))
}

// UpdateRole handles PUT /api/user/role/:id.
func (h *UsersHandler) UpdateRole(c *fiber.Ctx) error {
	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Role == "" {
		return fiber.NewError(http.StatusBadRequest, "role is required")
	}

	if err := h.auth.UpdateRole(c.UserContext(), c.Params("id"), req.Role); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "user role updated successfully"})
}

// Delete handles DELETE /api/user/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.auth.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "user deleted successfully"})
}
