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

type StatisticsView struct {
	stats    domain.Statistics
	monthly  []domain.MonthlyAggregate
	nav      listNav
	AnimTick uint
}

func NewStatisticsView() *StatisticsView {
	return &StatisticsView{}
}

func (v *StatisticsView) SetData(stats domain.Statistics, monthly []domain.MonthlyAggregate) {
	v.stats = stats
	v.monthly = monthly
	v.nav.clamp(len(monthly))
}

func (v *StatisticsView) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		if v.nav.handleKey(km.String(), len(v.monthly)) {
			return KeyHandledCmd
		}
	}
	return nil
}

func (v *StatisticsView) Render(width, height int, compact bool) string {
	cardWidth := width - 4
	summary := components.Card{
		Title:   theme.AnimatedGradientText(i18n.T("statistics_title"), v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}
	summary.Content = v.renderSummary(summary.InnerWidth())
	out := summary.Render()

	if len(v.monthly) == 0 {
		return out
	}

	monthly := components.Card{
		Title:   theme.AnimatedGradientText(i18n.T("monthly_title"), v.AnimTick+20),
		Width:   cardWidth,
		Compact: compact,
	}
	used := lipgloss.Height(out)
	visible := max(height-used-6, 2)
	v.nav.page = visible
	v.nav.scroll = components.ScrollOffset(v.nav.cursor, v.nav.scroll, visible)

	rows := make([][]string, len(v.monthly))
	for i, m := range v.monthly {
		rows[i] = []string{
			m.Month,
			fmt.Sprintf("%d", m.Fills),
			components.FormatFloat(m.TotalFuel, 2),
			components.FormatMoney(m.TotalCost),
			components.FormatMoney(m.AveragePrice),
		}
	}
	table := components.Table{
		Columns: []components.Column{
			{Header: i18n.T("col_month"), Width: 8, Flex: true},
			{Header: i18n.T("col_fills"), Width: 6, Align: lipgloss.Right, Color: theme.ColorLavender},
			{Header: i18n.T("col_fuel"), Width: 10, Align: lipgloss.Right, Color: theme.ColorMauve},
			{Header: i18n.T("col_cost"), Width: 12, Align: lipgloss.Right, Color: theme.ColorGold},
			{Header: i18n.T("col_avg_price"), Width: 10, Align: lipgloss.Right, Color: theme.ColorPeach},
		},
		Rows:   rows,
		Width:  monthly.InnerWidth(),
		Height: visible,
		Cursor: v.nav.cursor,
		Offset: v.nav.scroll,
	}
	monthly.Content = table.Render()
	return out + "\n" + monthly.Render()
}

func (v *StatisticsView) renderSummary(innerW int) string {
	s := v.stats
	const gap = 2

	w := components.StatCardWidth(innerW, 4, gap)
	top := components.RenderStatRow([]components.StatCard{
		{Value: components.FormatNumber(s.TotalRecords), Label: i18n.T("stat_total_records"), Width: w, Color: theme.ColorBrightText},
		{Value: components.FormatMoney(s.TotalCost), Label: i18n.T("stat_total_cost"), Width: w, Color: theme.ColorGold},
		{Value: components.FormatFloat(s.TotalFuel, 2), Label: i18n.T("stat_total_fuel"), Width: w, Color: theme.ColorMauve},
		{Value: components.FormatMoney(s.AveragePrice), Label: i18n.T("stat_average_price"), Width: w, Color: theme.ColorPeach},
	}, gap)

	period := "-"
	if s.FirstDate != nil && s.LastDate != nil {
		period = *s.FirstDate + " → " + *s.LastDate
	}
	w = components.StatCardWidth(innerW, 3, gap)
	distanceSub := ""
	if s.SegmentDistance != s.TotalDistance {
		distanceSub = i18n.T("stat_segment_distance") + " " + components.FormatFloat(s.SegmentDistance, 2)
	}
	bottom := components.RenderStatRow([]components.StatCard{
		{Value: components.FormatFloat(s.TotalDistance, 2), Detail: distanceSub, Label: i18n.T("stat_total_distance"), Width: w, Color: theme.ColorLavender},
		{Value: components.FormatFloat(s.AverageConsumption, 2), Label: i18n.T("stat_average_consumption"), Width: w, Color: theme.ColorSkyBlue},
		{Value: period, Label: i18n.T("stat_period"), Width: w, Color: theme.ColorBodyText},
	}, gap)

	return top + "\n\n" + bottom
}
