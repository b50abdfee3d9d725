// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatMoney formats a rounded USD amount with comma separators.
// e.g., 1238.4 -> "$1,238"
func FormatMoney(v float64) string {
	return "$" + FormatNumber(int64(math.Round(v)))
}

// FormatMoneyExact keeps cents when they are present.
// e.g., 680 -> "$680", 12.5 -> "$12.50"
func FormatMoneyExact(v float64) string {
	if v == math.Trunc(v) {
		return FormatMoney(v)
	}
	return fmt.Sprintf("$%.2f", v)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteString(",")
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0..1 ratio as a whole percentage.
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}

// FormatDate renders an ISO date as a short display date.
// e.g., "2026-09-05" -> "Sep 5". Unparseable input passes through.
func FormatDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2")
}

// TimeAgo renders how long ago a timestamp was, coarsely.
func TimeAgo(t time.Time, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// StatusLabel renders an item or health status for display.
// e.g., "booked" -> "Booked", "on-track" -> "On Track"
func StatusLabel(status string) string {
	words := strings.Split(strings.ReplaceAll(status, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
