package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tmapay/escrow_service/internal/dto"
	"github.com/tmapay/escrow_service/internal/helper/utils"
	"github.com/tmapay/escrow_service/internal/services"
)

type UserHandler struct {
	svc services.AccountService
}

func NewUserHandler(svc services.AccountService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/signup", h.Signup)
	api.Post("/login", h.Login)
}

// Body parse failures are not rejected here: the zeroed request runs through
// the service checks, which yields the same status an absent field would.
func (h *UserHandler) Signup(ctx *fiber.Ctx) error {
	var requestBody dto.SignupRequest
	_ = ctx.BodyParser(&requestBody)

	user, err := h.svc.Register(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseOK(ctx, fiber.Map{"user": user})
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	_ = ctx.BodyParser(&requestBody)

	user, err := h.svc.Login(requestBody.Email)
	if err != nil {
		return respondError(ctx, err)
	}

	return utils.ResponseOK(ctx, fiber.Map{"user": user})
}
