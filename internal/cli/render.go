package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tripdeck/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	ColorBg        = lipgloss.Color("#100F0F")
	ColorSurface   = lipgloss.Color("#1C1B1A")
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
	ColorPurple    = lipgloss.Color("#8B7EC8")
	ColorYellow    = lipgloss.Color("#D0A215")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// PillLabel returns the budget status pill text. The pill uses its own
// ±250 thresholds, separate from the ±200 health band in the summary.
func PillLabel(perPersonTotal, target float64) string {
	switch {
	case perPersonTotal > target+250:
		return "Over Target"
	case perPersonTotal > target-250:
		return "Near Limit"
	default:
		return "On Track"
	}
}

// BudgetPill renders the colored budget status pill.
func BudgetPill(perPersonTotal, target float64) string {
	label := PillLabel(perPersonTotal, target)

	color := ColorGreen
	switch label {
	case "Over Target":
		color = ColorRed
	case "Near Limit":
		color = ColorYellow
	}

	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render("● " + label)
}

// StatusColor maps an item status to its display color.
func StatusColor(status model.ItemStatus) lipgloss.Color {
	switch status {
	case model.StatusBooked:
		return ColorGreen
	case model.StatusAgreed:
		return ColorAccent
	case model.StatusProposed:
		return ColorBlue
	case model.StatusCancelled:
		return ColorRed
	default: // idea
		return ColorTextMuted
	}
}

// RenderStatus renders a colored item status label.
func RenderStatus(status model.ItemStatus) string {
	return lipgloss.NewStyle().
		Foreground(StatusColor(status)).
		Render(StatusLabel(string(status)))
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if len(h) > widths[i] {
				widths[i] = len(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && len(cell) > widths[i] {
					widths[i] = len(cell)
				}
			}
		}
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	// Top border
	b.WriteString(dimStyle.Render("╭"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┬"))
		}
	}
	b.WriteString(dimStyle.Render("╮"))
	b.WriteString("\n")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			w := widths[i]
			padded := fmt.Sprintf(" %-*s ", w, h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")

		// Header separator
		b.WriteString(dimStyle.Render("├"))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("┼"))
			}
		}
		b.WriteString(dimStyle.Render("┤"))
		b.WriteString("\n")
	}

	// Data rows
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			// Separator row
			b.WriteString(dimStyle.Render("├"))
			for i, w := range widths {
				b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
				if i < numCols-1 {
					b.WriteString(dimStyle.Render("┼"))
				}
			}
			b.WriteString(dimStyle.Render("┤"))
			b.WriteString("\n")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", w, cell)
			} else {
				padded = fmt.Sprintf(" %*s ", w, cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	// Bottom border
	b.WriteString(dimStyle.Render("╰"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┴"))
		}
	}
	b.WriteString(dimStyle.Render("╯"))
	b.WriteString("\n")

	return b.String()
}

// RenderProgressBar renders a simple text progress bar with a count.
// A zero or negative total renders as an empty string rather than NaN.
func RenderProgressBar(current, total int, width int) string {
	if total <= 0 {
		return ""
	}

	pct := float64(current) / float64(total)
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s/%s",
		mutedStyle.Render(bar),
		FormatNumber(int64(current)),
		FormatNumber(int64(total)),
	)
}

// RenderBucketBar renders the planning-progress bar with one colored
// segment per status bucket. Cancelled items widen the denominator
// without filling any segment, mirroring the summary's bucket counts.
func RenderBucketBar(counts model.ItemCounts, width int) string {
	if width < 0 {
		width = 0
	}
	if counts.Total <= 0 {
		return strings.Repeat("░", width)
	}

	segment := func(n int) int {
		return int(float64(n) / float64(counts.Total) * float64(width))
	}

	booked := segment(counts.Booked)
	agreed := segment(counts.Agreed)
	proposed := segment(counts.Proposed)
	idea := segment(counts.Idea)

	rest := width - booked - agreed - proposed - idea
	if rest < 0 {
		rest = 0
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(ColorGreen).Render(strings.Repeat("█", booked)))
	b.WriteString(lipgloss.NewStyle().Foreground(ColorAccent).Render(strings.Repeat("█", agreed)))
	b.WriteString(lipgloss.NewStyle().Foreground(ColorBlue).Render(strings.Repeat("█", proposed)))
	b.WriteString(lipgloss.NewStyle().Foreground(ColorTextMuted).Render(strings.Repeat("█", idea)))
	b.WriteString(dimStyle.Render(strings.Repeat("░", rest)))
	return b.String()
}
