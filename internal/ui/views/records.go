package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/i18n"
	"github.com/zhang1786/fuel-tracker-app/internal/theme"
	"github.com/zhang1786/fuel-tracker-app/internal/ui/components"
)

// RecordsView lists the ledger in stored order. The # column is the
// record's position, the same number delete commands take.
type RecordsView struct {
	records  []domain.FuelRecord
	nav      listNav
	AnimTick uint
}

func NewRecordsView() *RecordsView {
	return &RecordsView{}
}

func (v *RecordsView) SetData(records []domain.FuelRecord) {
	prev := len(v.records)
	v.records = records
	if prev > 0 && len(records) > prev && v.nav.cursor == prev-1 {
		// Follow the tail when the newest row was selected.
		v.nav.cursor = len(records) - 1
	}
	v.nav.clamp(len(v.records))
}

// Selected returns the highlighted record and its position.
func (v *RecordsView) Selected() (int, domain.FuelRecord, bool) {
	if len(v.records) == 0 {
		return 0, domain.FuelRecord{}, false
	}
	return v.nav.cursor, v.records[v.nav.cursor], true
}

func (v *RecordsView) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		if v.nav.handleKey(km.String(), len(v.records)) {
			return KeyHandledCmd
		}
	}
	return nil
}

func (v *RecordsView) Render(width, height int, compact bool) string {
	cardWidth := width - 4
	title := fmt.Sprintf("%s (%d)", i18n.T("records_title"), len(v.records))
	card := components.Card{
		Title:   theme.AnimatedGradientText(title, v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}

	if len(v.records) == 0 {
		card.Content = theme.MutedStyle.Render(i18n.T("no_records"))
		return card.Render()
	}

	innerW := card.InnerWidth()
	visible := max(height-8, 3)
	v.nav.page = visible
	v.nav.scroll = components.ScrollOffset(v.nav.cursor, v.nav.scroll, visible)

	rows := make([][]string, len(v.records))
	for i, r := range v.records {
		rows[i] = []string{
			fmt.Sprintf("%d", i),
			r.Date,
			components.FormatOdometer(r.Odometer),
			components.FormatFloat(r.FuelAmount, 2),
			components.FormatFloat(r.FuelPrice, 2),
			components.FormatMoney(r.Cost),
			r.Station,
			r.Note,
		}
	}

	table := components.Table{
		Columns: []components.Column{
			{Header: i18n.T("col_index"), Width: 3, Align: lipgloss.Right, Color: theme.ColorMutedText},
			{Header: i18n.T("col_date"), Width: 10},
			{Header: i18n.T("col_odometer"), Width: 10, Align: lipgloss.Right, Color: theme.ColorLavender},
			{Header: i18n.T("col_fuel"), Width: 9, Align: lipgloss.Right, Color: theme.ColorMauve},
			{Header: i18n.T("col_price"), Width: 8, Align: lipgloss.Right, Color: theme.ColorPeach},
			{Header: i18n.T("col_cost"), Width: 11, Align: lipgloss.Right, Color: theme.ColorGold},
			{Header: i18n.T("col_station"), Width: 8, Flex: true, Color: theme.ColorSkyBlue},
			{Header: i18n.T("col_note"), Width: 6, Flex: true},
		},
		Rows:   rows,
		Width:  innerW,
		Height: visible,
		Cursor: v.nav.cursor,
		Offset: v.nav.scroll,
	}

	card.Content = table.Render()
	card.Footer = i18n.T("records_help")
	return card.Render()
}
