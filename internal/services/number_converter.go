package services

import (
	"fmt"
	"math"
	"strings"
)

// NumberToWords converts a float64 amount to Indian-English words with
// currency, using the lakh/crore grouping.
// Example: 1550000.50 -> "FIFTEEN LAKH FIFTY THOUSAND RUPEES AND 50 PAISE"
func NumberToWords(amount float64) string {
	if amount == 0 {
		return "ZERO RUPEES"
	}

	integerPart := int64(amount)
	paise := int64(math.Round((amount - float64(integerPart)) * 100))

	words := strings.ToUpper(convertNumberToWords(integerPart))

	if paise == 0 {
		return fmt.Sprintf("%s RUPEES", words)
	}
	return fmt.Sprintf("%s RUPEES AND %02d PAISE", words, paise)
}

func convertNumberToWords(n int64) string {
	if n == 0 {
		return "ZERO"
	}

	if n < 0 {
		return "MINUS " + convertNumberToWords(-n)
	}

	if n < 20 {
		return belowTwenty[n]
	}

	if n < 100 {
		u := n % 10
		t := n / 10
		if u == 0 {
			return tens[t]
		}
		return fmt.Sprintf("%s %s", tens[t], belowTwenty[u])
	}

	if n < 1000 {
		remainder := n % 100
		hundredsText := belowTwenty[n/100] + " HUNDRED"
		if remainder == 0 {
			return hundredsText
		}
		return fmt.Sprintf("%s %s", hundredsText, convertNumberToWords(remainder))
	}

	// Indian grouping: thousand (10^3), lakh (10^5), crore (10^7)
	if n < 100000 {
		remainder := n % 1000
		thousandsText := convertNumberToWords(n/1000) + " THOUSAND"
		if remainder == 0 {
			return thousandsText
		}
		return fmt.Sprintf("%s %s", thousandsText, convertNumberToWords(remainder))
	}

	if n < 10000000 {
		remainder := n % 100000
		lakhText := convertNumberToWords(n/100000) + " LAKH"
		if remainder == 0 {
			return lakhText
		}
		return fmt.Sprintf("%s %s", lakhText, convertNumberToWords(remainder))
	}

	if n < 1000000000000 {
		remainder := n % 10000000
		croreText := convertNumberToWords(n/10000000) + " CRORE"
		if remainder == 0 {
			return croreText
		}
		return fmt.Sprintf("%s %s", croreText, convertNumberToWords(remainder))
	}

	return "NUMBER TOO LARGE"
}

var belowTwenty = []string{
	"", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
	"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN", "SIXTEEN",
	"SEVENTEEN", "EIGHTEEN", "NINETEEN",
}

var tens = []string{
	"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY", "EIGHTY", "NINETY",
}
