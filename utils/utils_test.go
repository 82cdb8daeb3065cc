package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidGSTIN(t *testing.T) {
	tests := []struct {
		name  string
		gstin string
		want  bool
	}{
		{"valid maharashtra", "27AAPFU0939F1ZV", true},
		{"valid with lowercase input", "27aapfu0939f1zv", true},
		{"valid with surrounding spaces", "  27AAPFU0939F1ZV  ", true},
		{"too short", "27AAPFU0939F1Z", false},
		{"missing Z at position 14", "27AAPFU0939F1XV", false},
		{"letters in state code", "XXAAPFU0939F1ZV", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidGSTIN(tt.gstin))
		})
	}
}

func TestStateCode(t *testing.T) {
	assert.Equal(t, "27", StateCode("27AAPFU0939F1ZV"))
	assert.Equal(t, "09", StateCode(" 09AABCU9603R1ZM"))
	assert.Equal(t, "", StateCode("7"))
	assert.Equal(t, "", StateCode(""))
}

func TestSameState(t *testing.T) {
	assert.True(t, SameState("27AAPFU0939F1ZV", "27AABCU9603R1ZM"))
	assert.False(t, SameState("27AAPFU0939F1ZV", "09AABCU9603R1ZM"))
	assert.False(t, SameState("", ""))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 10.56, RoundMoney(10.555))
	assert.Equal(t, 10.55, RoundMoney(10.554))
	assert.Equal(t, 0.0, RoundMoney(0))
	assert.Equal(t, -2.35, RoundMoney(-2.345))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-03-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("15-03-2025")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("2025/03/15")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestSequentialCode(t *testing.T) {
	assert.Equal(t, "CLT-0001", SequentialCode("CLT", 0))
	assert.Equal(t, "TRK-0042", SequentialCode("TRK", 41))
	assert.Equal(t, "INC-10000", SequentialCode("INC", 9999))
}
