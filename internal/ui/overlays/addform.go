package overlays

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/i18n"
	"github.com/zhang1786/fuel-tracker-app/internal/theme"
)

// AddRecordMsg carries a form submission that already passed validation.
type AddRecordMsg struct {
	Input domain.RecordInput
}

const (
	fieldDate = iota
	fieldOdometer
	fieldFuelAmount
	fieldFuelPrice
	fieldStation
	fieldNote
	fieldCount
)

// AddForm collects one fill-up. Validation runs on submit; the form stays
// open with the error shown until the input parses.
type AddForm struct {
	inputs   []textinput.Model
	labels   []string
	focus    int
	err      string
	animTick uint
}

// NewAddForm prefills the date with today and, when a previous fill exists,
// the price and station from it.
func NewAddForm(today string, last *domain.FuelRecord) *AddForm {
	f := &AddForm{
		inputs: make([]textinput.Model, fieldCount),
		labels: []string{
			i18n.T("field_date"),
			i18n.T("field_odometer"),
			i18n.T("field_fuel_amount"),
			i18n.T("field_fuel_price"),
			i18n.T("field_station"),
			i18n.T("field_note"),
		},
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 28
		f.inputs[i] = ti
	}
	f.inputs[fieldDate].SetValue(today)
	f.inputs[fieldDate].Placeholder = "YYYY-MM-DD"
	f.inputs[fieldOdometer].Placeholder = "12500"
	f.inputs[fieldFuelAmount].Placeholder = "40.5"
	f.inputs[fieldFuelPrice].Placeholder = "7.50"
	if last != nil {
		f.inputs[fieldOdometer].Placeholder = "> " + strconv.FormatFloat(last.Odometer, 'f', -1, 64)
		f.inputs[fieldFuelPrice].SetValue(strconv.FormatFloat(last.FuelPrice, 'f', -1, 64))
		f.inputs[fieldStation].SetValue(last.Station)
	}
	f.focus = fieldOdometer
	f.inputs[f.focus].Focus()
	return f
}

func (f *AddForm) SetAnimTick(tick uint) {
	f.animTick = tick
}

// Input returns the raw field values.
func (f *AddForm) Input() domain.RecordInput {
	return domain.RecordInput{
		Date:       f.inputs[fieldDate].Value(),
		Odometer:   f.inputs[fieldOdometer].Value(),
		FuelAmount: f.inputs[fieldFuelAmount].Value(),
		FuelPrice:  f.inputs[fieldFuelPrice].Value(),
		Station:    f.inputs[fieldStation].Value(),
		Note:       f.inputs[fieldNote].Value(),
	}
}

// Err is the validation message from the last submit, if any.
func (f *AddForm) Err() string {
	return f.err
}

// Update reports closed=true when the form is cancelled or submitted.
func (f *AddForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return false, cmd
	}

	switch km.String() {
	case "esc":
		return true, nil
	case "tab", "down":
		return false, f.setFocus((f.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return false, f.setFocus((f.focus + fieldCount - 1) % fieldCount)
	case "enter":
		if f.focus < fieldCount-1 && f.inputs[f.focus].Value() == "" {
			return false, f.setFocus(f.focus + 1)
		}
		return f.submit()
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return false, cmd
}

func (f *AddForm) submit() (bool, tea.Cmd) {
	in := f.Input()
	if _, err := domain.ParseRecordInput(in); err != nil {
		f.err = err.Error()
		var fe *domain.FieldError
		if errors.As(err, &fe) {
			if idx := fieldIndex(fe.Field); idx >= 0 {
				return false, f.setFocus(idx)
			}
		}
		return false, nil
	}
	f.err = ""
	return true, func() tea.Msg { return AddRecordMsg{Input: in} }
}

func (f *AddForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

func fieldIndex(name string) int {
	switch name {
	case "date":
		return fieldDate
	case "odometer":
		return fieldOdometer
	case "fuel_amount":
		return fieldFuelAmount
	case "fuel_price":
		return fieldFuelPrice
	}
	return -1
}

func (f *AddForm) Render(width, height int) string {
	bg := theme.ColorCardBg
	title := theme.AnimatedGradientText(i18n.T("add_record"), f.animTick, bg)

	labelW := 0
	for _, l := range f.labels {
		labelW = max(labelW, lipgloss.Width(l))
	}

	var rows []string
	for i, in := range f.inputs {
		labelStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)
		arrow := "  "
		if i == f.focus {
			labelStyle = lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true).Background(bg)
			arrow = lipgloss.NewStyle().Foreground(theme.ColorGold).Background(bg).Render("> ")
		}
		label := labelStyle.Render(padTo(f.labels[i], labelW))
		rows = append(rows, fmt.Sprintf("  %s%s  %s", arrow, label, in.View()))
	}

	content := title + "\n\n" + strings.Join(rows, "\n")
	if f.err != "" {
		content += "\n\n" + theme.ErrorStyle.Render("  "+f.err)
	}
	content += "\n\n" + lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(i18n.T("add_help"))

	boxWidth := 60
	if width < 64 {
		boxWidth = width - 4
	}
	return theme.CardStyle.Width(boxWidth).Render(content)
}

func padTo(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
