package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/tmapay/escrow_service/internal/dto"
	"github.com/tmapay/escrow_service/internal/helper/utils"
	"github.com/tmapay/escrow_service/internal/services"
)

type TransactionHandler struct {
	svc services.EscrowService
}

func NewTransactionHandler(svc services.EscrowService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

func (h *TransactionHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	tx := api.Group("/transactions")
	tx.Post("/", h.Create)
	tx.Get("/:email", h.ListForUser)
	tx.Post("/:id/confirm", h.ConfirmDelivery)
	tx.Post("/:id/refund", h.RequestRefund)

	api.Post("/admin/review", h.AdminReview)
	api.Get("/debug/transactions", h.DebugSnapshot)
}

func (h *TransactionHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.CreateTransactionRequest
	_ = ctx.BodyParser(&requestBody)

	tx, err := h.svc.Create(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseOK(ctx, fiber.Map{"tx": tx})
}

func (h *TransactionHandler) ListForUser(ctx *fiber.Ctx) error {
	email := ctx.Params("email")
	if decoded, err := url.PathUnescape(email); err == nil {
		email = decoded
	}

	txs, err := h.svc.ListByBuyer(email)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseOK(ctx, fiber.Map{"transactions": txs})
}

func (h *TransactionHandler) ConfirmDelivery(ctx *fiber.Ctx) error {
	tx, err := h.svc.ConfirmDelivery(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseOK(ctx, fiber.Map{"tx": tx})
}

func (h *TransactionHandler) RequestRefund(ctx *fiber.Ctx) error {
	var requestBody dto.RefundRequest
	_ = ctx.BodyParser(&requestBody) // reason is optional

	tx, err := h.svc.RequestRefund(ctx.Params("id"), requestBody.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseOK(ctx, fiber.Map{"tx": tx})
}

func (h *TransactionHandler) AdminReview(ctx *fiber.Ctx) error {
	var requestBody dto.AdminReviewRequest
	_ = ctx.BodyParser(&requestBody)

	result, err := h.svc.AdminReview(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}

	if result.FlaggedBVN != "" {
		return utils.ResponseOK(ctx, fiber.Map{"flagged": result.FlaggedBVN})
	}
	return utils.ResponseOK(ctx, fiber.Map{"tx": result.Tx})
}

// DebugSnapshot dumps all top-level state. No ok envelope; this mirrors the
// debug shape the frontend expects.
func (h *TransactionHandler) DebugSnapshot(ctx *fiber.Ctx) error {
	snapshot, err := h.svc.DebugSnapshot()
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(snapshot)
}
