package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/dto"
	"github.com/Monynha-Softwares/Monynha-com-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AdminSyncer applies promote/demote actions to the CMS user store.
type AdminSyncer interface {
	Promote(ctx context.Context, profile *dto.SyncProfile) (string, error)
	Demote(ctx context.Context, profile *dto.SyncProfile) (string, error)
}

// AdminSyncHandler serves the identity-provider role-change webhook.
type AdminSyncHandler struct {
	syncer AdminSyncer
	secret string
}

func NewAdminSyncHandler(syncer AdminSyncer, secret string) *AdminSyncHandler {
	return &AdminSyncHandler{syncer: syncer, secret: secret}
}

// Handle processes POST /api/hooks/admin-sync. The shared secret is
// checked before the body is even parsed; a mismatch makes no store or
// CMS call.
func (h *AdminSyncHandler) Handle(c *fiber.Ctx) error {
	if h.secret == "" {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin sync not configured",
		})
	}

	provided := c.Get("x-admin-sync-secret")
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.secret)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.AdminSyncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "action and profile (user_id, email) are required",
		})
	}

	var (
		result string
		err    error
	)
	switch req.Action {
	case "promote":
		result, err = h.syncer.Promote(c.Context(), req.Profile)
	case "demote":
		result, err = h.syncer.Demote(c.Context(), req.Profile)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Unsupported action: " + req.Action,
		})
	}
	if err != nil {
		slog.Error("admin sync failed", "action", req.Action, "user_id", req.Profile.UserID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to process admin sync",
		})
	}

	slog.Info("admin sync processed", "action", req.Action, "result", result)
	return c.JSON(dto.SyncResultResponse{Result: result})
}

var _ AdminSyncer = (*services.AdminSyncService)(nil)
