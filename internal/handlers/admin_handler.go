package handlers

import (
	"strconv"

	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/models"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminHandler serves the read-only admin panel listings: captured leads,
// newsletter subscribers, and the sync-event observability feed.
type AdminHandler struct {
	db    *gorm.DB
	leads *services.LeadService
}

func NewAdminHandler(db *gorm.DB, leads *services.LeadService) *AdminHandler {
	return &AdminHandler{db: db, leads: leads}
}

func (h *AdminHandler) ListLeads(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	leads, err := h.leads.ListLeads(c.Context(), limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list leads")
	}
	return c.JSON(leads)
}

func (h *AdminHandler) ListSubscribers(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	subs, err := h.leads.ListSubscribers(c.Context(), limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list subscribers")
	}
	return c.JSON(subs)
}

func (h *AdminHandler) ListSyncEvents(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))

	q := h.db.WithContext(c.Context()).Order("created_at DESC").Limit(limit)
	if collection := c.Query("collection"); collection != "" {
		q = q.Where("collection = ?", collection)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var events []models.SyncEvent
	if err := q.Find(&events).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list sync events")
	}
	return c.JSON(events)
}
