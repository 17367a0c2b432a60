package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tmapay/escrow_service/internal/dto"
	"github.com/tmapay/escrow_service/internal/helper/utils"
	"github.com/tmapay/escrow_service/internal/services"
)

type SupportHandler struct {
	svc services.SupportService
}

func NewSupportHandler(svc services.SupportService) *SupportHandler {
	return &SupportHandler{svc: svc}
}

func (h *SupportHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/support", h.Submit)
}

// Submit accepts whatever is given, including an empty body.
func (h *SupportHandler) Submit(ctx *fiber.Ctx) error {
	var requestBody dto.SupportRequest
	_ = ctx.BodyParser(&requestBody)

	id, err := h.svc.Submit(requestBody.Email, requestBody.Message)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseOK(ctx, fiber.Map{"id": id})
}
