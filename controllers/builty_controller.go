package controllers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"transport-app/models"
	"transport-app/repositories"
	"transport-app/services"
	"transport-app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type BuiltyController struct {
	Service *services.BuiltyService
}

func NewBuiltyController(service *services.BuiltyService) *BuiltyController {
	return &BuiltyController{Service: service}
}

type BuiltyUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	ErrorCount    int      `json:"error_count"`
	ErrorMessages []string `json:"error_messages"`
}

func (c *BuiltyController) Create(ctx *fiber.Ctx) error {
	var input services.BuiltyInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	builty, err := c.Service.Create(&input, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Builty created successfully", "data": builty})
}

func (c *BuiltyController) GetByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	builty, err := c.Service.GetByID(uint(id))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Builty found", "data": builty})
}

func (c *BuiltyController) GetAll(ctx *fiber.Ctx) error {
	p := paginationFromQuery(ctx)

	filter, err := builtyFilterFromQuery(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	builties, err := c.Service.GetAll(filter, p)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": builties, "pagination": p})
}

func (c *BuiltyController) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input services.BuiltyInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	builty, err := c.Service.Update(uint(id), &input, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Builty updated successfully", "data": builty})
}

func (c *BuiltyController) RecordPayment(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Amount float64 `json:"amount"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	builty, err := c.Service.RecordPayment(uint(id), input.Amount, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Payment recorded", "data": builty})
}

func (c *BuiltyController) SetDeliveryStatus(ctx *fiber.Ctx) error {
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

	builty, err := c.Service.SetDeliveryStatus(uint(id), input.Status, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Delivery status updated", "data": builty})
}

func (c *BuiltyController) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := c.Service.Delete(uint(id), currentUserID(ctx)); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Builty deleted successfully"})
}

func (c *BuiltyController) AttachPdf(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Path string `json:"path"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	builty, err := c.Service.AttachPdf(uint(id), input.Path, currentUserID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "PDF attached", "data": builty})
}

// ExportRegister writes the filtered builty register as an Excel workbook
// straight into the response body.
func (c *BuiltyController) ExportRegister(ctx *fiber.Ctx) error {
	filter, err := builtyFilterFromQuery(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	page := &models.Pagination{Page: 1, Limit: 200}
	builties, err := c.Service.GetAll(filter, page)
	if err != nil {
		return respondError(ctx, err)
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Builty No", "Date", "Client", "From", "To", "Goods", "Charged Wt", "Freight", "GST", "Grand Total", "Paid", "Balance", "Payment Status", "Delivery Status", "Due Date"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, b := range builties {
		values := []interface{}{
			b.BuiltyNo.String(),
			b.BuiltyDate.Format("2006-01-02"),
			b.Client.ClientName,
			b.FromLocation,
			b.ToLocation,
			b.GoodsDescription,
			b.ChargedWeight,
			b.FreightCharges,
			b.CGSTAmount + b.SGSTAmount + b.IGSTAmount,
			b.GrandTotal,
			b.PaidAmount,
			b.Balance(),
			b.PaymentStatus,
			b.DeliveryStatus,
			b.DueDate.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	fileName := fmt.Sprintf("builty_register_%s.xlsx", time.Now().Format("20060102_150405"))
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", "attachment; filename="+fileName)

	return f.Write(ctx.Response().BodyWriter())
}

// ImportBuilties bulk-creates builties from an uploaded Excel sheet. Each row
// goes through the same validation and credit checks as a single create.
func (c *BuiltyController) ImportBuilties(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "File is required"})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Only Excel files (.xlsx, .xls) are allowed"})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to open file"})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Failed to read Excel file"})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "No sheets found in Excel file"})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to read rows"})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Excel file must contain header and at least one data row"})
	}

	result := BuiltyUploadResult{
		TotalRows:     len(rows) - 1,
		ErrorMessages: []string{},
	}
	userID := currentUserID(ctx)

	for i, row := range rows[1:] {
		rowNum := i + 2

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		if len(row) < 11 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Insufficient columns (expected 11)", rowNum))
			continue
		}

		input, err := builtyInputFromRow(row)
		if err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}

		if _, err := c.Service.Create(input, userID); err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		result.SuccessCount++
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Builty import finished",
		"data":    result,
	})
}

// Expected columns: TRIP_ID, CONSIGNOR, CONSIGNEE, GOODS, PACKAGES,
// ACTUAL_WT, CHARGED_WT, RATE_PER_TON, HAMALI, DD_CHARGES, OTHER_CHARGES
// and optionally GST_RATE and BUILTY_DATE.
func builtyInputFromRow(row []string) (*services.BuiltyInput, error) {
	tripID, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid trip id %q", row[0])
	}

	nums := make([]float64, 7)
	for i, col := range []int{4, 5, 6, 7, 8, 9, 10} {
		raw := strings.TrimSpace(row[col])
		if raw == "" {
			continue
		}
		if nums[i], err = strconv.ParseFloat(raw, 64); err != nil {
			return nil, fmt.Errorf("invalid number %q in column %d", raw, col+1)
		}
	}

	input := &services.BuiltyInput{
		TripID:           uint(tripID),
		ConsignorName:    strings.TrimSpace(row[1]),
		ConsigneeName:    strings.TrimSpace(row[2]),
		GoodsDescription: strings.TrimSpace(row[3]),
		Packages:         int(nums[0]),
		ActualWeight:     nums[1],
		ChargedWeight:    nums[2],
		RatePerTon:       nums[3],
		Hamali:           nums[4],
		DDCharges:        nums[5],
		OtherCharges:     nums[6],
	}

	if len(row) > 11 && strings.TrimSpace(row[11]) != "" {
		if input.GSTRate, err = strconv.ParseFloat(strings.TrimSpace(row[11]), 64); err != nil {
			return nil, fmt.Errorf("invalid GST rate %q", row[11])
		}
	}
	if len(row) > 12 {
		input.BuiltyDate = strings.TrimSpace(row[12])
	}
	return input, nil
}

func builtyFilterFromQuery(ctx *fiber.Ctx) (repositories.BuiltyFilter, error) {
	filter := repositories.BuiltyFilter{
		PaymentStatus:  ctx.Query("payment_status"),
		DeliveryStatus: ctx.Query("delivery_status"),
		ClientID:       uint(ctx.QueryInt("client_id")),
		TripID:         uint(ctx.QueryInt("trip_id")),
		Search:         ctx.Query("search"),
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
