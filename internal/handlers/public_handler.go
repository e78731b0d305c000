package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/dto"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
)

// PublicHandler serves the unauthenticated site surface: content reads
// and form writes.
type PublicHandler struct {
	content *services.ContentService
	leads   *services.LeadService
}

func NewPublicHandler(content *services.ContentService, leads *services.LeadService) *PublicHandler {
	return &PublicHandler{content: content, leads: leads}
}

func (h *PublicHandler) ListSolutions(c *fiber.Ctx) error {
	solutions, err := h.content.ActiveSolutions(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load solutions")
	}
	return c.JSON(solutions)
}

func (h *PublicHandler) GetSolution(c *fiber.Ctx) error {
	solution, err := h.content.SolutionBySlug(c.Context(), c.Params("slug"))
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Solution not found",
		})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load solution")
	}
	return c.JSON(solution)
}

func (h *PublicHandler) ListPosts(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	posts, err := h.content.PublishedPosts(c.Context(), limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load posts")
	}
	return c.JSON(posts)
}

func (h *PublicHandler) GetPost(c *fiber.Ctx) error {
	post, err := h.content.PostBySlug(c.Context(), c.Params("slug"))
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Post not found",
		})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load post")
	}
	return c.JSON(post)
}

func (h *PublicHandler) ListTeam(c *fiber.Ctx) error {
	members, err := h.content.ActiveTeamMembers(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load team")
	}
	return c.JSON(members)
}

func (h *PublicHandler) CreateLead(c *fiber.Ctx) error {
	var req dto.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "name, email and message are required",
		})
	}

	lead, err := h.leads.CreateLead(c.Context(), &req)
	if err != nil {
		slog.Error("lead creation failed", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create lead")
	}
	return c.Status(fiber.StatusCreated).JSON(lead)
}

func (h *PublicHandler) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "a valid email is required",
		})
	}

	sub, err := h.leads.Subscribe(c.Context(), req.Email)
	if errors.Is(err, services.ErrDuplicateEmail) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: "Email is already subscribed",
		})
	}
	if err != nil {
		slog.Error("newsletter signup failed", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to subscribe")
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}
