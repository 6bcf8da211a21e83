package main

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// FormatSize renders a byte count with binary (1024) unit steps and two
// decimal places. The scale stops at GB; larger values still render in GB.
func FormatSize(bytes int64) string {
	units := []string{"B", "KB", "MB", "GB"}
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", size, units[unit])
}

// FormatNumber renders an integer with locale-aware thousands grouping.
func FormatNumber(n int) string {
	return numberPrinter.Sprintf("%d", n)
}
