package controller

import (
	"strconv"

	"storefront-bot/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func pageQuery(ctx *fiber.Ctx) dto.PageQuery {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
	return dto.PageQuery{Page: page, Limit: limit}
}

func paramID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}

// actor is the admin username set by the JWT middleware.
func actor(ctx *fiber.Ctx) string {
	if name, ok := ctx.Locals("username").(string); ok {
		return name
	}
	return "unknown"
}
