package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeGST(t *testing.T) {
	tests := []struct {
		name         string
		taxable      float64
		rate         float64
		clientGSTIN  string
		companyGSTIN string
		want         GSTBreakup
	}{
		{
			name:         "intra-state splits into CGST and SGST",
			taxable:      10000,
			rate:         12,
			clientGSTIN:  "27AAPFU0939F1ZV",
			companyGSTIN: "27AABCU9603R1ZM",
			want:         GSTBreakup{TaxableAmount: 10000, CGST: 600, SGST: 600, GrandTotal: 11200},
		},
		{
			name:         "inter-state charges IGST",
			taxable:      10000,
			rate:         12,
			clientGSTIN:  "09AAPFU0939F1ZV",
			companyGSTIN: "27AABCU9603R1ZM",
			want:         GSTBreakup{TaxableAmount: 10000, IGST: 1200, GrandTotal: 11200},
		},
		{
			name:         "unregistered client treated as inter-state",
			taxable:      5000,
			rate:         5,
			clientGSTIN:  "",
			companyGSTIN: "27AABCU9603R1ZM",
			want:         GSTBreakup{TaxableAmount: 5000, IGST: 250, GrandTotal: 5250},
		},
		{
			name:         "zero rate leaves total untouched",
			taxable:      7500.50,
			rate:         0,
			clientGSTIN:  "27AAPFU0939F1ZV",
			companyGSTIN: "27AABCU9603R1ZM",
			want:         GSTBreakup{TaxableAmount: 7500.50, GrandTotal: 7500.50},
		},
		{
			name:         "odd amounts round to paise",
			taxable:      999.99,
			rate:         18,
			clientGSTIN:  "27AAPFU0939F1ZV",
			companyGSTIN: "27AABCU9603R1ZM",
			want:         GSTBreakup{TaxableAmount: 999.99, CGST: 90, SGST: 90, GrandTotal: 1179.99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeGST(tt.taxable, tt.rate, tt.clientGSTIN, tt.companyGSTIN))
		})
	}
}

func TestDueDate(t *testing.T) {
	builtyDate := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, builtyDate.AddDate(0, 0, 45), DueDate(builtyDate, 45, 30))
	assert.Equal(t, builtyDate.AddDate(0, 0, 30), DueDate(builtyDate, 0, 30))
	assert.Equal(t, builtyDate.AddDate(0, 0, 30), DueDate(builtyDate, -5, 30))
}

func TestAnnualDepreciation(t *testing.T) {
	assert.Equal(t, 270000.0, AnnualDepreciation(3000000, 300000, 10))
	assert.Equal(t, 0.0, AnnualDepreciation(3000000, 300000, 0))
	assert.Equal(t, 0.0, AnnualDepreciation(100000, 200000, 5))
	assert.Equal(t, 33333.33, AnnualDepreciation(250000, 50000, 6))
}

func TestBookValue(t *testing.T) {
	purchase := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		asOf time.Time
		want float64
	}{
		{"before purchase keeps full price", purchase.AddDate(0, -1, 0), 3000000},
		{"under one year keeps full price", purchase.AddDate(0, 11, 0), 3000000},
		{"exactly one year writes off one slab", purchase.AddDate(1, 0, 0), 2730000},
		{"three and a half years writes off three", purchase.AddDate(3, 6, 0), 2190000},
		{"beyond useful life floors at salvage", purchase.AddDate(15, 0, 0), 300000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BookValue(3000000, 300000, 10, purchase, tt.asOf))
		})
	}
}
