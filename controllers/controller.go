package controllers

import (
	"errors"

	"transport-app/models"
	"transport-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// respondError maps service failures onto the response codes the frontend
// expects: business rule violations 422, missing rows 404, the rest 500.
func respondError(ctx *fiber.Ctx, err error) error {
	if services.IsValidationError(err) {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func currentUserID(ctx *fiber.Ctx) int {
	if v, ok := ctx.Locals("userID").(float64); ok {
		return int(v)
	}
	return 0
}

func paginationFromQuery(ctx *fiber.Ctx) *models.Pagination {
	return &models.Pagination{
		Page:  ctx.QueryInt("page", 1),
		Limit: ctx.QueryInt("limit", 20),
	}
}
