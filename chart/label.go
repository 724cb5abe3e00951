package chart

import "strings"

// MonthLabel derives the display label from an SPI matrix header such as
// "SPI فروردین" by removing every "SPI" and trimming whitespace.
func MonthLabel(header string) string {
	return strings.TrimSpace(strings.ReplaceAll(header, "SPI", ""))
}

// ImageName is the file name used for the chart of label.
func ImageName(label string) string {
	return label + ".png"
}
