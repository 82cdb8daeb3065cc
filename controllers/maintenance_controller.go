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

type MaintenanceController struct {
	Service *services.MaintenanceService
}

func NewMaintenanceController(service *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{Service: service}
}

func (c *MaintenanceController) Schedule(ctx *fiber.Ctx) error {
	var input services.MaintenanceInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	job, err := c.Service.Schedule(&input, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Maintenance scheduled successfully", "data": job})
}

func (c *MaintenanceController) GetByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	job, err := c.Service.GetByID(uint(id))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Maintenance job found", "data": job})
}

func (c *MaintenanceController) GetAll(ctx *fiber.Ctx) error {
	p := paginationFromQuery(ctx)

	filter, err := maintenanceFilterFromQuery(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	jobs, err := c.Service.GetAll(filter, p)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": jobs, "pagination": p})
}

func (c *MaintenanceController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input services.MaintenanceInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	job, err := c.Service.Update(uint(id), &input, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Maintenance job updated", "data": job})
}

func (c *MaintenanceController) OverdueSweep(ctx *fiber.Ctx) error {
	flipped, err := c.Service.OverdueSweep(time.Now())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Overdue sweep finished", "data": fiber.Map{"flipped": flipped}})
}

func (c *MaintenanceController) Start(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	job, err := c.Service.Start(uint(id), currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Maintenance started", "data": job})
}

func (c *MaintenanceController) Complete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input services.MaintenanceCompletionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	job, err := c.Service.Complete(uint(id), &input, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Maintenance completed", "data": job})
}

func (c *MaintenanceController) Cancel(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	job, err := c.Service.Cancel(uint(id), currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Maintenance cancelled", "data": job})
}

func (c *MaintenanceController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.Service.Delete(uint(id), currentUserID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Maintenance job deleted"})
}

func (c *MaintenanceController) CostByTruck(ctx *fiber.Ctx) error {
	truckID, err := ctx.ParamsInt("truck_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid truck ID"})
	}

	from, to, err := dateRangeFromQuery(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	total, err := c.Service.CostByTruck(uint(truckID), from, to)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"truck_id": truckID, "total_cost": total}})
}

func (c *MaintenanceController) Upcoming(ctx *fiber.Ctx) error {
	jobs, err := c.Service.Upcoming(ctx.QueryInt("days", 14))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": jobs})
}

// ExportJobs writes the filtered maintenance register into an Excel workbook.
func (c *MaintenanceController) ExportJobs(ctx *fiber.Ctx) error {
	filter, err := maintenanceFilterFromQuery(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	page := &models.Pagination{Page: 1, Limit: 200}
	jobs, err := c.Service.GetAll(filter, page)
	if err != nil {
		return respondError(ctx, err)
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Job No", "Truck ID", "Service Type", "Scheduled", "Completed", "Odometer", "Labor Cost", "Parts Cost", "Total Cost", "Workshop", "Priority", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, job := range jobs {
		completed := ""
		if job.CompletedDate != nil {
			completed = job.CompletedDate.Format("2006-01-02")
		}
		values := []interface{}{
			job.JobNumber,
			job.TruckID,
			job.ServiceType,
			job.ScheduledDate.Format("2006-01-02"),
			completed,
			job.OdometerKm,
			job.LaborCost,
			job.PartsCost,
			job.TotalCost,
			job.Workshop,
			job.Priority,
			job.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	fileName := fmt.Sprintf("maintenance_register_%s.xlsx", time.Now().Format("20060102_150405"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", "attachment; filename="+fileName)

	return f.Write(ctx.Response().BodyWriter())
}

func maintenanceFilterFromQuery(ctx *fiber.Ctx) (repositories.MaintenanceFilter, error) {
	filter := repositories.MaintenanceFilter{
		TruckID:     uint(ctx.QueryInt("truck_id")),
		Status:      ctx.Query("status"),
		ServiceType: ctx.Query("service_type"),
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
