package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/zhang1786/fuel-tracker-app/internal/i18n"
	"github.com/zhang1786/fuel-tracker-app/internal/theme"
	"github.com/zhang1786/fuel-tracker-app/internal/ui/components"
)

const (
	minWidth        = 80
	minHeight       = 24
	compactBelow    = 30
	chromeRows      = 4 // tab bar and status line, each with a separator
	minContentLines = 5
)

func (a App) View() string {
	switch {
	case !a.ready:
		return i18n.T("initializing")
	case a.width < minWidth || a.height < minHeight:
		msg := i18n.T("terminal_too_small") + "\n" + i18n.Tf("current_size", a.width, a.height)
		return a.centered(lipgloss.NewStyle().Foreground(theme.ColorPeach).Render(msg))
	case a.overlay != OverlayNone:
		return a.centered(a.renderOverlay(), lipgloss.WithWhitespaceBackground(theme.ColorOverlayBg))
	}

	body := max(a.height-chromeRows, minContentLines)
	content := lipgloss.NewStyle().
		Width(a.width).
		Height(body).
		MaxHeight(body).
		Render(a.renderActiveView(body, a.height < compactBelow))

	return a.renderTabs() + "\n" + content + "\n" + a.renderFooter()
}

func (a App) centered(s string, opts ...lipgloss.WhitespaceOption) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, s, opts...)
}

// renderFooter shows the notification banner in place of the status bar
// while one is active.
func (a App) renderFooter() string {
	if banner := a.notifications.RenderBanner(a.width); banner != "" {
		return banner
	}
	return a.renderStatusBar()
}

func (a App) renderTabs() string {
	viewNames := []string{i18n.T("tab_records"), i18n.T("tab_efficiency"), i18n.T("tab_statistics")}
	return components.TabBar{
		ViewNames:   viewNames,
		ActiveIndex: int(a.activeView),
		Width:       a.width,
		Location:    a.ledger.Location(),
	}.Render()
}

func (a App) renderActiveView(contentHeight int, compact bool) string {
	switch a.activeView {
	case ViewRecords:
		return a.recordsView.Render(a.width, contentHeight, compact)
	case ViewEfficiency:
		return a.efficiencyView.Render(a.width, contentHeight, compact)
	case ViewStatistics:
		return a.statisticsView.Render(a.width, contentHeight, compact)
	}
	return ""
}

func (a App) renderStatusBar() string {
	hints := []components.KeyHint{{Key: "a", Desc: i18n.T("status_add")}}
	if a.activeView == ViewRecords && a.ledger.Len() > 0 {
		hints = append(hints, components.KeyHint{Key: "d", Desc: i18n.T("status_delete")})
	}
	hints = append(hints,
		components.KeyHint{Key: "r", Desc: i18n.T("status_refresh")},
		components.KeyHint{Key: "s", Desc: i18n.T("status_settings")},
		components.KeyHint{Key: "?", Desc: i18n.T("status_help")},
		components.KeyHint{Key: "q", Desc: i18n.T("status_quit")},
	)
	return components.StatusBar{
		Width:  a.width,
		Hints:  hints,
		Status: i18n.Tf("status_records", a.ledger.Len()),
	}.Render()
}

func (a App) renderOverlay() string {
	switch a.overlay {
	case OverlayHelp:
		return a.helpOverlay.Render(a.width, a.height)
	case OverlaySettings:
		if a.settingsOverlay != nil {
			return a.settingsOverlay.Render(a.width, a.height)
		}
	case OverlayAdd:
		if a.addForm != nil {
			return a.addForm.Render(a.width, a.height)
		}
	case OverlayConfirmDelete:
		return a.renderConfirmDelete()
	}
	return ""
}

func (a App) renderConfirmDelete() string {
	bg := theme.ColorCardBg
	r := a.pendingRecord
	question := i18n.Tf("confirm_delete", r.Date, components.FormatOdometer(r.Odometer))
	content := theme.WarningStyle.Background(bg).Render(question) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(i18n.T("confirm_delete_help"))
	return theme.CardStyle.Width(min(56, a.width-4)).Render(content)
}
