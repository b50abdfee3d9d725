package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tripdeck/internal/cli"
	"tripdeck/internal/model"
	"tripdeck/internal/trip"
)

type bookingValues struct {
	itemID string
	cost   string
}

type pivotValues struct {
	dayID   string
	reason  string
	pending bool
}

// openBookingForm builds a huh form over every item that can still be
// booked. Leaving the cost blank keeps the estimate.
func (a App) openBookingForm() (tea.Model, tea.Cmd) {
	doc := a.sess.Document()

	var opts []huh.Option[string]
	for _, item := range doc.AllItems() {
		st := item.ItemStatus()
		if st == model.StatusBooked || st == model.StatusCancelled {
			continue
		}
		label := fmt.Sprintf("%s  (%s, est %s)",
			item.DisplayName(), cli.StatusLabel(string(st)), cli.FormatMoneyExact(item.CostPerPerson()))
		opts = append(opts, huh.NewOption(label, item.ItemID()))
	}
	if len(opts) == 0 {
		a.flash = "Nothing left to book"
		return a, nil
	}

	a.bookVals = &bookingValues{}
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Book which item?").
				Options(opts...).
				Value(&a.bookVals.itemID),
			huh.NewInput().
				Title("Actual cost per person").
				Description("Leave blank to keep the estimate").
				Placeholder("680").
				Validate(validateOptionalMoney).
				Value(&a.bookVals.cost),
		),
	)
	a.formDone = func(app *App) {
		var costPtr *float64
		if v := strings.TrimSpace(app.bookVals.cost); v != "" {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				costPtr = &parsed
			}
		}
		app.sess.SetItemStatus(app.bookVals.itemID, model.StatusBooked, costPtr)
		if item, ok := trip.FindItem(app.sess.Document(), app.bookVals.itemID); ok {
			app.flash = fmt.Sprintf("Booked %s", item.DisplayName())
		}
	}
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

// openPivotForm asks for a reason, then queues an advisory pivot request
// for the given day.
func (a App) openPivotForm(day model.ItineraryDay) (tea.Model, tea.Cmd) {
	a.pivot = &pivotValues{dayID: day.ID}
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Pivot Day %d (%s)", day.DayNumber, day.City)).
				Description("Why does this day need a rethink?").
				Placeholder("Weather looks bad").
				Value(&a.pivot.reason),
		),
	)
	a.formDone = func(app *App) {
		if strings.TrimSpace(app.pivot.reason) == "" {
			app.pivot.reason = "The group wants a cheaper or more flexible option for this day."
		}
		app.pivot.pending = true
	}
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func validateOptionalMoney(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("cost cannot be negative")
	}
	return nil
}
