package controllers

import (
	"time"

	"transport-app/services"
	"transport-app/utils"

	"github.com/gofiber/fiber/v2"
)

type TruckController struct {
	Service *services.TruckService
}

func NewTruckController(service *services.TruckService) *TruckController {
	return &TruckController{Service: service}
}

func (c *TruckController) Create(ctx *fiber.Ctx) error {
	var input services.TruckInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	truck, err := c.Service.Create(&input, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Truck created successfully", "data": truck})
}

func (c *TruckController) GetByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	truck, err := c.Service.GetByID(uint(id))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Truck found", "data": truck})
}

func (c *TruckController) GetAll(ctx *fiber.Ctx) error {
	p := paginationFromQuery(ctx)
	trucks, err := c.Service.GetAll(ctx.Query("search"), ctx.Query("status"), p)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": trucks, "pagination": p})
}

func (c *TruckController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input services.TruckInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	truck, err := c.Service.Update(uint(id), &input, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Truck updated successfully", "data": truck})
}

func (c *TruckController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.Service.Delete(uint(id), currentUserID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Truck deleted successfully"})
}

func (c *TruckController) Retire(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	truck, err := c.Service.Retire(uint(id), currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Truck retired", "data": truck})
}

func (c *TruckController) Valuation(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	asOf := time.Now()
	if raw := ctx.Query("as_of"); raw != "" {
		asOf, err = utils.ParseDate(raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid as_of date"})
		}
	}

	valuation, err := c.Service.Valuation(uint(id), asOf)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": valuation})
}

func (c *TruckController) DocumentsExpiring(ctx *fiber.Ctx) error {
	trucks, err := c.Service.DocumentsExpiring(ctx.QueryInt("days", 30))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": trucks})
}
