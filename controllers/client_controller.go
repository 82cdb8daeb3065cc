package controllers

import (
	"fmt"
	"net/http"

	"transport-app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type ClientController struct {
	Service *services.ClientService
}

func NewClientController(service *services.ClientService) *ClientController {
	return &ClientController{Service: service}
}

func (c *ClientController) Create(ctx *fiber.Ctx) error {
	var input services.ClientInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	client, err := c.Service.Create(&input, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Client created successfully", "data": client})
}

func (c *ClientController) GetByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	client, err := c.Service.GetByID(uint(id))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Client found", "data": client})
}

func (c *ClientController) GetAll(ctx *fiber.Ctx) error {
	p := paginationFromQuery(ctx)
	clients, err := c.Service.GetAll(ctx.Query("search"), ctx.Query("status"), p)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": clients, "pagination": p})
}

func (c *ClientController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input services.ClientInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	client, err := c.Service.Update(uint(id), &input, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Client updated successfully", "data": client})
}

func (c *ClientController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.Service.Delete(uint(id), currentUserID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Client deleted successfully"})
}

func (c *ClientController) SetStatus(ctx *fiber.Ctx) error {
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

	client, err := c.Service.SetStatus(uint(id), input.Status, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Client status updated", "data": client})
}

func (c *ClientController) Outstanding(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	outstanding, err := c.Service.Outstanding(uint(id))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"outstanding": outstanding}})
}

// ExportOutstanding streams the receivables position per client as Excel.
func (c *ClientController) ExportOutstanding(ctx *fiber.Ctx) error {
	p := paginationFromQuery(ctx)
	p.Limit = 200

	clients, err := c.Service.GetAll("", "", p)
	if err != nil {
		return respondError(ctx, err)
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Client Code")
	f.SetCellValue(sheet, "B1", "Client Name")
	f.SetCellValue(sheet, "C1", "GST Number")
	f.SetCellValue(sheet, "D1", "Credit Limit")
	f.SetCellValue(sheet, "E1", "Outstanding")

	for i, client := range clients {
		outstanding, err := c.Service.Outstanding(client.ID)
		if err != nil {
			return respondError(ctx, err)
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), client.ClientCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), client.ClientName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), client.GSTNumber)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), client.CreditLimit)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), outstanding)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="client_outstanding.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}
	return nil
}
