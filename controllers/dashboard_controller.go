package controllers

import (
	"time"

	"transport-app/repositories"
	"transport-app/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/slices"
)

// DashboardController aggregates the read side the back office landing page
// needs. It talks to the repositories directly since every figure is a plain
// aggregate with no business rule behind it.
type DashboardController struct {
	Trucks      *repositories.TruckRepository
	Drivers     *repositories.DriverRepository
	Trips       *repositories.TripRepository
	Builties    *repositories.BuiltyRepository
	Incomes     *repositories.IncomeRepository
	Maintenance *repositories.MaintenanceRepository
}

func NewDashboardController(
	trucks *repositories.TruckRepository,
	drivers *repositories.DriverRepository,
	trips *repositories.TripRepository,
	builties *repositories.BuiltyRepository,
	incomes *repositories.IncomeRepository,
	maintenance *repositories.MaintenanceRepository,
) *DashboardController {
	return &DashboardController{
		Trucks:      trucks,
		Drivers:     drivers,
		Trips:       trips,
		Builties:    builties,
		Incomes:     incomes,
		Maintenance: maintenance,
	}
}

// Overview is the single-call fleet summary: truck and trip status counts
// plus the receivable figure.
func (c *DashboardController) Overview(ctx *fiber.Ctx) error {
	truckCounts, err := c.Trucks.CountByStatus()
	if err != nil {
		return respondError(ctx, err)
	}
	tripCounts, err := c.Trips.CountByStatus()
	if err != nil {
		return respondError(ctx, err)
	}
	outstanding, err := c.Builties.OutstandingTotal()
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"trucks":      truckCounts,
			"trips":       tripCounts,
			"outstanding": utils.RoundMoney(outstanding),
		},
	})
}

// ProfitAndLoss nets income against trip running costs and maintenance spend
// for the requested period.
func (c *DashboardController) ProfitAndLoss(ctx *fiber.Ctx) error {
	from, to, err := dateRangeFromQuery(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	income, err := c.Incomes.Total(from, to)
	if err != nil {
		return respondError(ctx, err)
	}
	tripExpense, err := c.Trips.ExpenseTotal(from, to)
	if err != nil {
		return respondError(ctx, err)
	}
	maintenanceCost, err := c.Maintenance.CostTotal(from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"from":             from.Format("2006-01-02"),
			"to":               to.Format("2006-01-02"),
			"income":           utils.RoundMoney(income),
			"trip_expense":     utils.RoundMoney(tripExpense),
			"maintenance_cost": utils.RoundMoney(maintenanceCost),
			"net":              utils.RoundMoney(income - tripExpense - maintenanceCost),
		},
	})
}

// TopClients ranks clients by total billing inside the period.
func (c *DashboardController) TopClients(ctx *fiber.Ctx) error {
	from, to, err := dateRangeFromQuery(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rows, err := c.Builties.BilledByClient(from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	slices.SortFunc(rows, func(a, b repositories.ClientBilling) int {
		switch {
		case a.Billed > b.Billed:
			return -1
		case a.Billed < b.Billed:
			return 1
		default:
			return 0
		}
	})

	limit := ctx.QueryInt("limit", 5)
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": rows})
}

// ExpiringDocuments gathers everything with a compliance date coming up:
// truck papers, driver licenses, and scheduled maintenance.
func (c *DashboardController) ExpiringDocuments(ctx *fiber.Ctx) error {
	days := ctx.QueryInt("days", 30)
	now := time.Now()
	until := now.AddDate(0, 0, days)

	trucks, err := c.Trucks.DocumentsExpiring(now, until)
	if err != nil {
		return respondError(ctx, err)
	}
	drivers, err := c.Drivers.LicenseExpiring(now, until)
	if err != nil {
		return respondError(ctx, err)
	}
	jobs, err := c.Maintenance.Upcoming(now, until)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"trucks":      trucks,
			"drivers":     drivers,
			"maintenance": jobs,
		},
	})
}
