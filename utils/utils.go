package utils

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)

// IsValidGSTIN checks the 15 character GSTIN layout.
func IsValidGSTIN(gstin string) bool {
	return gstinPattern.MatchString(strings.ToUpper(strings.TrimSpace(gstin)))
}

// StateCode returns the two digit state prefix of a GSTIN.
func StateCode(gstin string) string {
	gstin = strings.TrimSpace(gstin)
	if len(gstin) < 2 {
		return ""
	}
	return gstin[:2]
}

// SameState reports whether two GSTINs are registered in the same state,
// which decides the CGST/SGST vs IGST split.
func SameState(gstinA, gstinB string) bool {
	a, b := StateCode(gstinA), StateCode(gstinB)
	return a != "" && a == b
}

// RoundMoney rounds to two decimals, the precision every amount is stored at.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// ParseDate accepts the date formats the frontend sends.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", time.RFC3339, "02-01-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %s", s)
}

// SequentialCode builds master codes like CLT-0007 from the last used number.
func SequentialCode(prefix string, lastNumber int64) string {
	return fmt.Sprintf("%s-%04d", prefix, lastNumber+1)
}
