package utils

import "fmt"

// FormatAmount renders cents as a two-decimal currency string, e.g. 3350 -> "33.50".
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
