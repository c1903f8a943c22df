package utils

import "fmt"

func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

func TruncateText(text string, maxLength int) string {
	if len(text) > maxLength {
		return text[:maxLength] + "..."
	}
	return text
}
