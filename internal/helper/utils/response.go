package utils

import "github.com/gofiber/fiber/v2"

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

// ResponseOK writes the {ok:true, ...} success envelope every endpoint uses.
func ResponseOK(ctx *fiber.Ctx, fields fiber.Map) error {
	body := fiber.Map{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	return ctx.JSON(body)
}
