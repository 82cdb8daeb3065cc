package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalize(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults applied", 0, 0, 1, 20},
		{"negative page reset", -3, 50, 1, 50},
		{"limit over cap reset", 2, 500, 2, 20},
		{"valid values kept", 3, 100, 3, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{Page: tt.page, Limit: tt.limit}
			p.Normalize()
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestPaginationOffsetAndTotals(t *testing.T) {
	p := Pagination{Page: 3, Limit: 25}
	p.Normalize()
	assert.Equal(t, 50, p.Offset())

	p.SetTotal(101)
	assert.Equal(t, int64(101), p.TotalRows)
	assert.Equal(t, 5, p.TotalPages)
}

func TestTripProfit(t *testing.T) {
	trip := Trip{
		FreightAmount:   50000,
		FuelCost:        18000,
		TollCost:        2500,
		DriverAllowance: 3000,
		OtherExpense:    500,
	}

	assert.Equal(t, 24000.0, trip.TotalExpense())
	assert.Equal(t, 26000.0, trip.Profit())

	lossTrip := Trip{FreightAmount: 10000, FuelCost: 12000}
	assert.Equal(t, -2000.0, lossTrip.Profit())
}

func TestBuiltyAmounts(t *testing.T) {
	builty := Builty{
		FreightCharges: 20000,
		Hamali:         500,
		DDCharges:      300,
		OtherCharges:   200,
		GrandTotal:     23520,
		PaidAmount:     10000,
		PaymentStatus:  PaymentPartial,
	}

	assert.Equal(t, 21000.0, builty.TaxableAmount())
	assert.Equal(t, 13520.0, builty.Balance())
	assert.True(t, builty.IsUnpaid())

	builty.PaidAmount = builty.GrandTotal
	builty.PaymentStatus = PaymentPaid
	assert.Equal(t, 0.0, builty.Balance())
	assert.False(t, builty.IsUnpaid())
}

func TestMaintenanceIsOverdueAsOf(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	scheduled := Maintenance{Status: MaintenanceScheduled, ScheduledDate: now.AddDate(0, 0, -2)}
	assert.True(t, scheduled.IsOverdueAsOf(now))

	future := Maintenance{Status: MaintenanceScheduled, ScheduledDate: now.AddDate(0, 0, 2)}
	assert.False(t, future.IsOverdueAsOf(now))

	inProgress := Maintenance{Status: MaintenanceInProgress, ScheduledDate: now.AddDate(0, 0, -2)}
	assert.False(t, inProgress.IsOverdueAsOf(now))
}
