package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"

	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/dto"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ProfileEventHandler mirrors profile trigger events into the external
// CMS.
type ProfileEventHandler interface {
	HandleEvent(ctx context.Context, event string, profile, previous *dto.ProfileRow) (*dto.PayloadSyncResult, error)
}

// PayloadSyncHandler serves the database-trigger-invoked sync function.
type PayloadSyncHandler struct {
	events ProfileEventHandler
	secret string
}

func NewPayloadSyncHandler(events ProfileEventHandler, secret string) *PayloadSyncHandler {
	return &PayloadSyncHandler{events: events, secret: secret}
}

// Handle processes POST /api/functions/payload-sync. Authentication is a
// bearer shared secret; failures from the external CMS come back as 500
// with the error message so the trigger source can re-deliver.
func (h *PayloadSyncHandler) Handle(c *fiber.Ctx) error {
	if h.secret == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Payload sync not configured",
		})
	}

	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.PayloadSyncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "event and profile (user_id, email) are required",
		})
	}

	result, err := h.events.HandleEvent(c.Context(), req.Event, req.Profile, req.PreviousProfile)
	if err != nil {
		slog.Error("payload sync failed", "event", req.Event, "user_id", req.Profile.UserID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

var _ ProfileEventHandler = (*services.PayloadSyncService)(nil)
