package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/dto"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/models"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DocumentHandler is the admin-panel CRUD surface for CMS documents.
// Saves run the sync pipeline; a hook failure fails the save.
type DocumentHandler struct {
	docs *services.DocumentService
}

func NewDocumentHandler(docs *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{docs: docs}
}

func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var req dto.SaveDocumentRequest
	if err := c.BodyParser(&req); err != nil || len(req.Data) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid document body",
		})
	}

	doc := models.Document{
		Collection: c.Params("collection"),
		Data:       datatypes.JSON(req.Data),
	}
	if err := h.docs.Save(c.Context(), &doc); err != nil {
		slog.Error("document save failed", "collection", doc.Collection, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save document")
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid document id",
		})
	}

	var req dto.SaveDocumentRequest
	if err := c.BodyParser(&req); err != nil || len(req.Data) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid document body",
		})
	}

	doc, err := h.docs.Update(c.Context(), c.Params("collection"), id, datatypes.JSON(req.Data))
	if errors.Is(err, services.ErrDocumentNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Document not found",
		})
	}
	if err != nil {
		slog.Error("document update failed", "collection", c.Params("collection"), "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update document")
	}
	return c.JSON(doc)
}

func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid document id",
		})
	}

	doc, err := h.docs.Get(c.Context(), c.Params("collection"), id)
	if errors.Is(err, services.ErrDocumentNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Document not found",
		})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load document")
	}
	return c.JSON(doc)
}

func (h *DocumentHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	docs, err := h.docs.List(c.Context(), c.Params("collection"), limit, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list documents")
	}
	return c.JSON(docs)
}

func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid document id",
		})
	}

	err = h.docs.Delete(c.Context(), c.Params("collection"), id)
	if errors.Is(err, services.ErrDocumentNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Document not found",
		})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete document")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
