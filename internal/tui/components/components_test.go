package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"tripdeck/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
	theme.SetActive("flexoki-dark")
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct {
		total, n int
	}{
		{100, 3},
		{99, 4},
		{7, 7},
		{10, 1},
	} {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d): got %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d): widths sum to %d", tc.total, tc.n, sum)
		}
	}
}

func TestLayoutRowZeroCards(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestCardRowMatchesTallestCard(t *testing.T) {
	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	tallLines := len(strings.Split(tallCard, "\n"))

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")

	if len(lines) != tallLines {
		t.Errorf("joined height = %d, want %d (tallest card)", len(lines), tallLines)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('i'); got != 1 {
		t.Errorf("TabIdxByKey('i') = %d, want 1", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestTabVisualWidth(t *testing.T) {
	tab := Tab{Name: "Overview", Key: 'o', KeyPos: 0}
	if got := TabVisualWidth(tab, true); got != len("Overview") {
		t.Errorf("active width = %d, want %d", got, len("Overview"))
	}
	// Inactive tabs carry bracket characters around the shortcut
	if got := TabVisualWidth(tab, false); got != len("Overview")+2 {
		t.Errorf("inactive width = %d, want %d", got, len("Overview")+2)
	}
}

func TestProgressBarClampsFill(t *testing.T) {
	over := ProgressBar(1.5, 10)
	if !strings.Contains(over, strings.Repeat("█", 10)) {
		t.Error("overfull bar should render fully filled")
	}
	under := ProgressBar(-0.2, 10)
	if strings.Contains(under, "█") {
		t.Error("negative pct should render no filled cells")
	}
}

func TestSparklinePeakUsesFullBlock(t *testing.T) {
	out := Sparkline([]float64{1, 2, 8}, lipgloss.Color("#3AA99F"))
	if !strings.Contains(out, "█") {
		t.Error("peak value should render the full block rune")
	}
}
