package utils

import (
	"fmt"
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// NumberToWords spells out a non-negative integer in the Indian numbering
// system (thousand, lakh, crore).
func NumberToWords(num int) string {
	switch {
	case num == 0:
		return ""
	case num < 20:
		return ones[num]
	case num < 100:
		return strings.TrimSpace(tens[num/10] + " " + ones[num%10])
	case num < 1000:
		return joinScale(num, 100, "Hundred")
	case num < 100000:
		return joinScale(num, 1000, "Thousand")
	case num < 10000000:
		return joinScale(num, 100000, "Lakh")
	default:
		return joinScale(num, 10000000, "Crore")
	}
}

func joinScale(num, scale int, label string) string {
	head := NumberToWords(num/scale) + " " + label
	if rem := num % scale; rem != 0 {
		return head + " " + NumberToWords(rem)
	}
	return head
}

// RupeesInWords formats an amount for the report's payment summary,
// e.g. "Rupees One Thousand Five Hundred and Fifty Paise Only".
func RupeesInWords(amount float64) string {
	rupees := int(amount)
	paise := int(math.Round((amount - float64(rupees)) * 100))

	switch {
	case rupees == 0 && paise == 0:
		return "Zero Rupees Only"
	case paise == 0:
		return fmt.Sprintf("Rupees %s Only", NumberToWords(rupees))
	case rupees == 0:
		return fmt.Sprintf("%s Paise Only", NumberToWords(paise))
	default:
		return fmt.Sprintf("Rupees %s and %s Paise Only", NumberToWords(rupees), NumberToWords(paise))
	}
}
