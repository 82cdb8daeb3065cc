package services

import (
	"time"

	"transport-app/utils"
)

// GSTBreakup is the tax split on a builty. Intra-state supplies split the tax
// evenly into CGST and SGST; inter-state supplies charge IGST instead.
type GSTBreakup struct {
	TaxableAmount float64 `json:"taxable_amount"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	IGST          float64 `json:"igst"`
	GrandTotal    float64 `json:"grand_total"`
}

// ComputeGST applies the rate to the taxable base and splits by the state
// prefixes of the two GSTINs.
func ComputeGST(taxable, rate float64, clientGSTIN, companyGSTIN string) GSTBreakup {
	tax := taxable * rate / 100

	breakup := GSTBreakup{TaxableAmount: utils.RoundMoney(taxable)}
	if utils.SameState(clientGSTIN, companyGSTIN) {
		breakup.CGST = utils.RoundMoney(tax / 2)
		breakup.SGST = utils.RoundMoney(tax / 2)
	} else {
		breakup.IGST = utils.RoundMoney(tax)
	}
	breakup.GrandTotal = utils.RoundMoney(breakup.TaxableAmount + breakup.CGST + breakup.SGST + breakup.IGST)
	return breakup
}

// DueDate pushes the builty date out by the client's credit period.
// A client with no period configured falls back to the default.
func DueDate(builtyDate time.Time, creditPeriodDays, defaultDays int) time.Time {
	days := creditPeriodDays
	if days <= 0 {
		days = defaultDays
	}
	return builtyDate.AddDate(0, 0, days)
}

// AnnualDepreciation is the straight-line write-off per full year.
func AnnualDepreciation(purchasePrice, salvageValue float64, usefulLifeYears int) float64 {
	if usefulLifeYears <= 0 {
		return 0
	}
	if salvageValue > purchasePrice {
		return 0
	}
	return utils.RoundMoney((purchasePrice - salvageValue) / float64(usefulLifeYears))
}

// BookValue depreciates the truck by full years elapsed since purchase,
// never dropping below salvage value.
func BookValue(purchasePrice, salvageValue float64, usefulLifeYears int, purchaseDate, asOf time.Time) float64 {
	if asOf.Before(purchaseDate) {
		return utils.RoundMoney(purchasePrice)
	}

	years := 0
	for d := purchaseDate.AddDate(1, 0, 0); !d.After(asOf); d = d.AddDate(1, 0, 0) {
		years++
	}

	value := purchasePrice - AnnualDepreciation(purchasePrice, salvageValue, usefulLifeYears)*float64(years)
	if value < salvageValue {
		value = salvageValue
	}
	return utils.RoundMoney(value)
}
