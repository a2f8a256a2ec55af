package view

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatMoney renders a USD amount rounded to whole dollars, e.g. "$2,500".
// A nil, NaN or infinite amount renders as "-".
func FormatMoney(n *float64) string {
	if n == nil || math.IsNaN(*n) || math.IsInf(*n, 0) {
		return "-"
	}
	v := math.Round(*n)
	if v < 0 {
		return printer.Sprintf("-$%.0f", -v)
	}
	return printer.Sprintf("$%.0f", math.Abs(v))
}

// FormatDuration renders minutes as "2h 5m", or "45m" below an hour.
// Negative input clamps to "0m".
func FormatDuration(mins float64) string {
	m := int(math.Max(0, math.Round(mins)))
	h, mm := m/60, m%60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, mm)
	}
	return fmt.Sprintf("%dm", mm)
}

// FormatDistance renders kilometres with one decimal place.
func FormatDistance(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}

// Point is a position in map pixel space.
type Point struct {
	X float64
	Y float64
}

// Project maps latitude/longitude onto a width x height equirectangular map.
func Project(lat, lon, width, height float64) Point {
	return Point{
		X: (lon + 180) / 360 * width,
		Y: (90 - lat) / 180 * height,
	}
}
