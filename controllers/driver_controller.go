package controllers

import (
	"transport-app/services"

	"github.com/gofiber/fiber/v2"
)

type DriverController struct {
	Service *services.DriverService
}

func NewDriverController(service *services.DriverService) *DriverController {
	return &DriverController{Service: service}
}

func (c *DriverController) Create(ctx *fiber.Ctx) error {
	var input services.DriverInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	driver, err := c.Service.Create(&input, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Driver created successfully", "data": driver})
}

func (c *DriverController) GetByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	driver, err := c.Service.GetByID(uint(id))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Driver found", "data": driver})
}

func (c *DriverController) GetAll(ctx *fiber.Ctx) error {
	p := paginationFromQuery(ctx)
	drivers, err := c.Service.GetAll(ctx.Query("search"), ctx.Query("status"), p)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": drivers, "pagination": p})
}

func (c *DriverController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input services.DriverInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	driver, err := c.Service.Update(uint(id), &input, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Driver updated successfully", "data": driver})
}

func (c *DriverController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.Service.Delete(uint(id), currentUserID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Driver deleted successfully"})
}

func (c *DriverController) SetStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	driver, err := c.Service.SetStatus(uint(id), input.Status, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Driver status updated", "data": driver})
}

func (c *DriverController) LicenseExpiring(ctx *fiber.Ctx) error {
	drivers, err := c.Service.LicenseExpiring(ctx.QueryInt("days", 30))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": drivers})
}
