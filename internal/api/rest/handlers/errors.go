package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/tmapay/escrow_service/internal/domain"
	"github.com/tmapay/escrow_service/internal/helper/utils"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrBVNFlagged):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBuyerNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrInvalidBVNFormat),
		errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, domain.ErrCannotConfirm),
		errors.Is(err, domain.ErrRefundNotAllowed):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(ctx *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", ctx.Method(), ctx.Path(), err)
		return utils.ResponseError(ctx, status, "Internal error")
	}
	return utils.ResponseError(ctx, status, err.Error())
}
