package controllers

import (
	"fmt"
	"time"

	"transport-app/models"
	"transport-app/repositories"
	"transport-app/services"
	"transport-app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type IncomeController struct {
	Service *services.IncomeService
}

func NewIncomeController(service *services.IncomeService) *IncomeController {
	return &IncomeController{Service: service}
}

func (c *IncomeController) Create(ctx *fiber.Ctx) error {
	var input services.IncomeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	income, err := c.Service.Create(&input, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Income recorded successfully", "data": income})
}

func (c *IncomeController) GetByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	income, err := c.Service.GetByID(uint(id))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Income found", "data": income})
}

func (c *IncomeController) GetAll(ctx *fiber.Ctx) error {
	p := paginationFromQuery(ctx)

	filter, err := incomeFilterFromQuery(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	incomes, err := c.Service.GetAll(filter, p)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": incomes, "pagination": p})
}

func (c *IncomeController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input services.IncomeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	income, err := c.Service.Update(uint(id), &input, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Income updated successfully", "data": income})
}

func (c *IncomeController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.Service.Delete(uint(id), currentUserID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Income deleted successfully"})
}

func (c *IncomeController) TotalByTruck(ctx *fiber.Ctx) error {
	truckID, err := ctx.ParamsInt("truck_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid truck ID"})
	}

	from, to, err := dateRangeFromQuery(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	total, err := c.Service.TotalByTruck(uint(truckID), from, to)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"truck_id": truckID, "total": total}})
}

func (c *IncomeController) TotalByCategory(ctx *fiber.Ctx) error {
	from, to, err := dateRangeFromQuery(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	totals, err := c.Service.TotalByCategory(from, to)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": totals})
}

func (c *IncomeController) MonthlyStatement(ctx *fiber.Ctx) error {
	year := ctx.QueryInt("year", time.Now().Year())
	statement, err := c.Service.MonthlyStatement(year)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"year": year, "months": statement}})
}

// ExportIncomes writes the filtered income register into an Excel workbook.
func (c *IncomeController) ExportIncomes(ctx *fiber.Ctx) error {
	filter, err := incomeFilterFromQuery(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	page := &models.Pagination{Page: 1, Limit: 200}
	incomes, err := c.Service.GetAll(filter, page)
	if err != nil {
		return respondError(ctx, err)
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Income No", "Date", "Truck ID", "Category", "Amount", "Payer", "Payment Mode", "Reference", "Notes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, income := range incomes {
		values := []interface{}{
			income.IncomeNumber,
			income.ReceivedDate.Format("2006-01-02"),
			income.TruckID,
			income.Category,
			income.Amount,
			income.Payer,
			income.PaymentMode,
			income.ReferenceNo,
			income.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	fileName := fmt.Sprintf("income_register_%s.xlsx", time.Now().Format("20060102_150405"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", "attachment; filename="+fileName)

	return f.Write(ctx.Response().BodyWriter())
}

func incomeFilterFromQuery(ctx *fiber.Ctx) (repositories.IncomeFilter, error) {
	filter := repositories.IncomeFilter{
		TruckID:  uint(ctx.QueryInt("truck_id")),
		Category: ctx.Query("category"),
	}
	if raw := ctx.Query("from"); raw != "" {
		from, err := utils.ParseDate(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid from date")
		}
		filter.From = from
	}
	if raw := ctx.Query("to"); raw != "" {
		to, err := utils.ParseDate(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid to date")
		}
		filter.To = to
	}
	return filter, nil
}

// dateRangeFromQuery defaults to the current calendar year when the caller
// gives no bounds.
func dateRangeFromQuery(ctx *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	to := time.Date(now.Year(), time.December, 31, 23, 59, 59, 0, now.Location())

	var err error
	if raw := ctx.Query("from"); raw != "" {
		if from, err = utils.ParseDate(raw); err != nil {
			return from, to, fmt.Errorf("invalid from date")
		}
	}
	if raw := ctx.Query("to"); raw != "" {
		if to, err = utils.ParseDate(raw); err != nil {
			return from, to, fmt.Errorf("invalid to date")
		}
	}
	return from, to, nil
}
