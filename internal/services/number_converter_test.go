package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"zero", 0, "ZERO RUPEES"},
		{"single digit", 5, "FIVE RUPEES"},
		{"teens", 17, "SEVENTEEN RUPEES"},
		{"tens with unit", 42, "FORTY TWO RUPEES"},
		{"hundreds", 305, "THREE HUNDRED FIVE RUPEES"},
		{"thousands", 12000, "TWELVE THOUSAND RUPEES"},
		{"lakh with paise", 1550000.50, "FIFTEEN LAKH FIFTY THOUSAND RUPEES AND 50 PAISE"},
		{"crore", 25000000, "TWO CRORE FIFTY LAKH RUPEES"},
		{"crore mixed", 10203040, "ONE CRORE TWO LAKH THREE THOUSAND FORTY RUPEES"},
		{"paise rounding", 99.99, "NINETY NINE RUPEES AND 99 PAISE"},
		{"single paisa", 1.01, "ONE RUPEES AND 01 PAISE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NumberToWords(tt.amount))
		})
	}
}
