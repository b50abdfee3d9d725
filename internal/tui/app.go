// Package tui provides the interactive Bubble Tea dashboard for tripdeck.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"tripdeck/internal/advisor"
	"tripdeck/internal/cli"
	"tripdeck/internal/session"
	"tripdeck/internal/tui/components"
	"tripdeck/internal/tui/theme"
)

// AdvisorMsg carries the result of a background advisory call.
type AdvisorMsg struct {
	Title string
	Text  string
}

// App is the root Bubble Tea model.
type App struct {
	sess       *session.Session
	svc        *advisor.Service
	travelerID string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Transient confirmation shown in the status bar
	flash string

	// Advisor panel (esc dismisses)
	advisorTitle string
	advisorText  string
	advisorBusy  bool
	spinner      spinner.Model

	// Per-tab state
	itin itineraryState
	dec  decisionsState
	feed feedState

	// Active huh form (booking or pivot), nil when none. Values are
	// heap-allocated so the form's pointers stay valid across the model
	// copies Bubble Tea makes on every Update.
	form     *huh.Form
	formDone func(a *App)
	bookVals *bookingValues
	pivot    *pivotValues
}

type itineraryState struct {
	cursor int
	scroll int
}

type decisionsState struct {
	cursor    int
	optCursor int
}

type feedState struct {
	scroll int
}

const (
	minTerminalWidth = 70
	compactWidth     = 110
	maxContentWidth  = 160

	minContentHeight = 5
)

// NewApp creates a new TUI app model bound to a live session.
func NewApp(sess *session.Session, svc *advisor.Service, travelerID string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		sess:       sess,
		svc:        svc,
		travelerID: travelerID,
		spinner:    sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.form != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return a.scrollActive(-1), nil
		case tea.MouseButtonWheelDown:
			return a.scrollActive(1), nil
		case tea.MouseButtonLeft:
			if msg.Y <= 1 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case AdvisorMsg:
		a.advisorBusy = false
		a.advisorTitle = msg.Title
		a.advisorText = msg.Text
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	// Forward unhandled messages to the active form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// Any key press retires the last confirmation
	a.flash = ""

	// Active form intercepts all keys
	if a.form != nil {
		return a.updateForm(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Advisor panel dismiss
	if key == "esc" && a.advisorText != "" {
		a.advisorTitle = ""
		a.advisorText = ""
		return a, nil
	}

	if key == "q" {
		return a, tea.Quit
	}

	// Tab navigation
	switch key {
	case "o":
		a.activeTab = 0
		return a, nil
	case "i":
		a.activeTab = 1
		return a, nil
	case "d":
		a.activeTab = 2
		return a, nil
	case "f":
		a.activeTab = 3
		return a, nil
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		if key == "tab" && a.activeTab == 2 {
			break // decisions tab uses tab to cycle options
		}
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	switch a.activeTab {
	case 0:
		return a.handleOverviewKey(key)
	case 1:
		return a.handleItineraryKey(key)
	case 2:
		return a.handleDecisionsKey(key)
	case 3:
		return a.handleFeedKey(key)
	}
	return a, nil
}

func (a App) scrollActive(delta int) App {
	switch a.activeTab {
	case 1:
		a.itin.scroll += delta
		if a.itin.scroll < 0 {
			a.itin.scroll = 0
		}
	case 3:
		a.feed.scroll += delta
		if a.feed.scroll < 0 {
			a.feed.scroll = 0
		}
	}
	return a
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		done := a.formDone
		a.form = nil
		a.formDone = nil
		if done != nil {
			done(&a)
		}
		return a, a.advisorCmdIfPending()
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formDone = nil
		return a, nil
	}

	return a, cmd
}

// advisorCmdIfPending fires the pivot request queued by a completed form.
func (a *App) advisorCmdIfPending() tea.Cmd {
	if a.pivot == nil || !a.pivot.pending {
		return nil
	}
	a.pivot.pending = false
	a.advisorBusy = true
	doc := a.sess.Document()
	dayID := a.pivot.dayID
	reason := a.pivot.reason
	remaining := a.sess.BudgetRemaining()
	svc := a.svc
	return tea.Batch(a.spinner.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		return AdvisorMsg{
			Title: "Pivot Suggestion",
			Text:  svc.PivotDay(ctx, doc, dayID, reason, remaining),
		}
	})
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  tripdeck needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o i d f", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
		{"J K", "Scroll"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"Enter", "Cast vote (Decisions)"},
		{"Tab", "Cycle options (Decisions)"},
		{"a", "Agree selected day (Itinerary)"},
		{"b", "Book an item (Itinerary)"},
		{"p", "Pivot selected day (Itinerary)"},
		{"g", "Advisory budget summary (Overview)"},
		{"Esc", "Dismiss advisor panel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	doc := a.sess.Document()
	budget := a.sess.Budget()

	// 1. Header: tab bar + trip name
	namePillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)
	nameAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	nameStr := namePillStyle.Render(" ") + nameAccentStyle.Render(doc.Trip.Name)
	nameRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + nameRowStyle.Render(nameStr)

	// 2. Status bar
	pill := cli.PillLabel(budget.PerPersonTotal, budget.Target)
	flash := a.flash
	if a.advisorBusy {
		flash = a.spinner.View() + " asking the advisor..."
	}
	statusBar := components.RenderStatusBar(w, a.travelerName(), pill, flash)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderItineraryTab(cw, contentH)
	case 2:
		content = a.renderDecisionsTab(cw)
	case 3:
		content = a.renderFeedTab(cw, contentH)
	}

	// Advisor panel sits above the tab content until dismissed
	if a.advisorText != "" {
		panel := components.ContentCard(
			a.advisorTitle,
			wrapText(a.advisorText, components.CardInnerWidth(cw)),
			cw,
		)
		content = panel + "\n" + content
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background (fixes gaps between cards)
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// travelerName resolves the configured traveler id to a display name.
func (a App) travelerName() string {
	doc := a.sess.Document()
	for _, tr := range doc.Trip.Travelers {
		if tr.ID == a.travelerID {
			return tr.Name
		}
	}
	return a.travelerID
}

// ─── Handlers ───────────────────────────────────────────────────

func (a App) handleOverviewKey(key string) (tea.Model, tea.Cmd) {
	if key == "g" && !a.advisorBusy {
		a.advisorBusy = true
		doc := a.sess.Document()
		svc := a.svc
		return a, tea.Batch(a.spinner.Tick, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
			defer cancel()
			return AdvisorMsg{
				Title: "Budget Summary",
				Text:  svc.BudgetSummary(ctx, doc),
			}
		})
	}
	return a, nil
}

func (a App) handleItineraryKey(key string) (tea.Model, tea.Cmd) {
	doc := a.sess.Document()
	days := doc.Itinerary

	switch key {
	case "j", "down":
		if a.itin.cursor < len(days)-1 {
			a.itin.cursor++
		}
		return a, nil
	case "k", "up":
		if a.itin.cursor > 0 {
			a.itin.cursor--
		}
		return a, nil
	case "J":
		a.itin.scroll++
		return a, nil
	case "K":
		if a.itin.scroll > 0 {
			a.itin.scroll--
		}
		return a, nil
	case "g":
		a.itin.cursor = 0
		a.itin.scroll = 0
		return a, nil
	case "G":
		a.itin.cursor = len(days) - 1
		if a.itin.cursor < 0 {
			a.itin.cursor = 0
		}
		return a, nil
	case "a":
		if a.itin.cursor < len(days) {
			day := days[a.itin.cursor]
			a.sess.AgreeDay(day.ID)
			a.flash = fmt.Sprintf("Agreed linked items for Day %d", day.DayNumber)
		}
		return a, nil
	case "b":
		return a.openBookingForm()
	case "p":
		if a.itin.cursor < len(days) && !a.advisorBusy {
			return a.openPivotForm(days[a.itin.cursor])
		}
		return a, nil
	}
	return a, nil
}

func (a App) handleDecisionsKey(key string) (tea.Model, tea.Cmd) {
	doc := a.sess.Document()
	decs := doc.Decisions

	switch key {
	case "j", "down":
		if a.dec.cursor < len(decs)-1 {
			a.dec.cursor++
			a.dec.optCursor = 0
		}
		return a, nil
	case "k", "up":
		if a.dec.cursor > 0 {
			a.dec.cursor--
			a.dec.optCursor = 0
		}
		return a, nil
	case "tab":
		if a.dec.cursor < len(decs) {
			n := len(decs[a.dec.cursor].Options)
			if n > 0 {
				a.dec.optCursor = (a.dec.optCursor + 1) % n
			}
		}
		return a, nil
	case "enter":
		if a.dec.cursor < len(decs) {
			d := decs[a.dec.cursor]
			if a.dec.optCursor < len(d.Options) {
				opt := d.Options[a.dec.optCursor]
				a.sess.Vote(d.ID, opt.ID, a.travelerID)
				a.flash = fmt.Sprintf("Voted for %s", opt.Label)
			}
		}
		return a, nil
	}

	// Number keys vote directly on the selected decision
	if n, err := strconv.Atoi(key); err == nil && n >= 1 {
		if a.dec.cursor < len(decs) {
			d := decs[a.dec.cursor]
			if n <= len(d.Options) {
				opt := d.Options[n-1]
				a.sess.Vote(d.ID, opt.ID, a.travelerID)
				a.flash = fmt.Sprintf("Voted for %s", opt.Label)
			}
		}
		return a, nil
	}

	return a, nil
}

func (a App) handleFeedKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down", "J":
		a.feed.scroll++
	case "k", "up", "K":
		if a.feed.scroll > 0 {
			a.feed.scroll--
		}
	case "g":
		a.feed.scroll = 0
	}
	return a, nil
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space before the first tab
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator between tabs
	}
	return -1
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// wrapText performs naive word wrapping at width w.
func wrapText(s string, w int) string {
	if w < 10 {
		w = 10
	}
	words := strings.Fields(s)
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		wl := len([]rune(word))
		if lineLen > 0 && lineLen+1+wl > w {
			b.WriteString("\n")
			lineLen = 0
		} else if i > 0 && lineLen > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += wl
	}
	return b.String()
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
