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

type EfficiencyView struct {
	entries  []domain.EfficiencyEntry
	average  float64 // mean L/100km, for coloring
	nav      listNav
	AnimTick uint
}

func NewEfficiencyView() *EfficiencyView {
	return &EfficiencyView{}
}

func (v *EfficiencyView) SetData(entries []domain.EfficiencyEntry, averageConsumption float64) {
	v.entries = entries
	v.average = averageConsumption
	v.nav.clamp(len(entries))
}

func (v *EfficiencyView) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		if v.nav.handleKey(km.String(), len(v.entries)) {
			return KeyHandledCmd
		}
	}
	return nil
}

func (v *EfficiencyView) Render(width, height int, compact bool) string {
	card := components.Card{
		Title:   theme.AnimatedGradientText(fmt.Sprintf("%s (%d)", i18n.T("efficiency_title"), len(v.entries)), v.AnimTick),
		Width:   width - 4,
		Compact: compact,
	}
	if len(v.entries) == 0 {
		card.Content = theme.MutedStyle.Render(i18n.T("no_efficiency"))
		return card.Render()
	}

	visible := max(height-7, 3)
	v.nav.page = visible
	v.nav.scroll = components.ScrollOffset(v.nav.cursor, v.nav.scroll, visible)

	rows := make([][]string, len(v.entries))
	for i, e := range v.entries {
		rows[i] = []string{
			e.Date,
			components.FormatFloat(e.Distance, 2),
			components.FormatFloat(e.FuelUsed, 2),
			components.FormatFloat(e.EfficiencyKmPerL, 2),
			components.FormatFloat(e.ConsumptionLPer100Km, 2),
			components.FormatOdometer(e.FromOdometer) + " → " + components.FormatOdometer(e.ToOdometer),
		}
	}

	const consumptionCol = 4
	table := components.Table{
		Columns: []components.Column{
			{Header: i18n.T("col_date"), Width: 10},
			{Header: i18n.T("col_distance"), Width: 13, Align: lipgloss.Right, Color: theme.ColorLavender},
			{Header: i18n.T("col_fuel_used"), Width: 13, Align: lipgloss.Right, Color: theme.ColorMauve},
			{Header: i18n.T("col_km_per_l"), Width: 7, Align: lipgloss.Right, Color: theme.ColorGold},
			{Header: i18n.T("col_l_per_100km"), Width: 8, Align: lipgloss.Right},
			{Header: i18n.T("col_span"), Width: 16, Flex: true, Color: theme.ColorMutedText},
		},
		Rows:   rows,
		Width:  card.InnerWidth(),
		Height: visible,
		Cursor: v.nav.cursor,
		Offset: v.nav.scroll,
		CellColor: func(row, col int) lipgloss.Color {
			if col != consumptionCol {
				return ""
			}
			return theme.ConsumptionColor(v.entries[row].ConsumptionLPer100Km, v.average)
		},
	}
	card.Content = table.Render()
	return card.Render()
}
