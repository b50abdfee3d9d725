package cli

import (
	"testing"
	"time"

	"tripdeck/internal/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{680, "$680"},
		{1238.4, "$1,238"},
		{3250, "$3,250"},
		{1234567, "$1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoneyExact(t *testing.T) {
	if got := FormatMoneyExact(680); got != "$680" {
		t.Fatalf("FormatMoneyExact(680) = %q", got)
	}
	if got := FormatMoneyExact(12.5); got != "$12.50" {
		t.Fatalf("FormatMoneyExact(12.5) = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2026-09-05"); got != "Sep 5" {
		t.Fatalf("FormatDate = %q, want Sep 5", got)
	}
	if got := FormatDate("garbage"); got != "garbage" {
		t.Fatalf("FormatDate passthrough = %q", got)
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-50 * time.Hour), "2d ago"},
	}
	for _, tt := range tests {
		if got := TimeAgo(tt.at, now); got != tt.want {
			t.Fatalf("TimeAgo(%v) = %q, want %q", tt.at, got, tt.want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	if got := StatusLabel("booked"); got != "Booked" {
		t.Fatalf("StatusLabel(booked) = %q", got)
	}
	if got := StatusLabel("on-track"); got != "On Track" {
		t.Fatalf("StatusLabel(on-track) = %q", got)
	}
}

// The pill is the display layer's own ±250 classification, distinct from
// the summarizer's ±200 band.
func TestPillLabel_Bands(t *testing.T) {
	const target = 3250.0
	tests := []struct {
		total float64
		want  string
	}{
		{2999, "On Track"},
		{3000, "On Track"},
		{3001, "Near Limit"},
		{3250, "Near Limit"},
		{3500, "Near Limit"},
		{3501, "Over Target"},
	}
	for _, tt := range tests {
		if got := PillLabel(tt.total, target); got != tt.want {
			t.Fatalf("PillLabel(%v) = %q, want %q", tt.total, got, tt.want)
		}
	}
}

func TestRenderProgressBar_ZeroTotalGuard(t *testing.T) {
	if got := RenderProgressBar(0, 0, 10); got != "" {
		t.Fatalf("RenderProgressBar with zero total = %q, want empty", got)
	}
}

func TestRenderBucketBar_ZeroTotalGuard(t *testing.T) {
	got := RenderBucketBar(model.ItemCounts{}, 10)
	if got != "░░░░░░░░░░" {
		t.Fatalf("RenderBucketBar with zero total = %q, want all-empty bar", got)
	}
}
