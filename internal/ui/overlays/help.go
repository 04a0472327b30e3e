package overlays

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zhang1786/fuel-tracker-app/internal/i18n"
	"github.com/zhang1786/fuel-tracker-app/internal/theme"
	"github.com/zhang1786/fuel-tracker-app/internal/ui/components"
)

type binding struct {
	keys string
	desc string // i18n key
}

type bindingGroup struct {
	title    string // i18n key
	bindings []binding
}

var helpGroups = []bindingGroup{
	{"help_group_views", []binding{
		{"1 2 3", "help_switch_views"},
		{"Tab ⇧Tab", "help_cycle_views"},
	}},
	{"help_group_ledger", []binding{
		{"j k ↓ ↑", "help_navigate"},
		{"g G", "help_top_bottom"},
		{"a", "help_add"},
		{"d", "help_delete"},
		{"r", "help_reload"},
	}},
	{"help_group_general", []binding{
		{"s", "help_open_settings"},
		{"?", "help_toggle_help"},
		{"q ^C", "help_quit"},
	}},
}

type HelpOverlay struct {
	AnimTick uint
}

func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{}
}

func (h *HelpOverlay) Render(width, height int) string {
	bg := theme.ColorCardBg
	groupStyle := lipgloss.NewStyle().Foreground(theme.ColorLavender).Bold(true).Background(bg)
	keyStyle := lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)
	muted := lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg)

	keyWidth := 0
	for _, g := range helpGroups {
		for _, b := range g.bindings {
			keyWidth = max(keyWidth, lipgloss.Width(b.keys))
		}
	}

	var sb strings.Builder
	sb.WriteString(theme.AnimatedGradientText(i18n.T("keyboard_shortcuts"), h.AnimTick, bg))
	for _, g := range helpGroups {
		sb.WriteString("\n\n" + groupStyle.Render(i18n.T(g.title)))
		for _, b := range g.bindings {
			sb.WriteString("\n  " + keyStyle.Render(components.PadRight(b.keys, keyWidth)) +
				descStyle.Render("  "+i18n.T(b.desc)))
		}
	}
	sb.WriteString("\n\n" + muted.Render(i18n.T("help_close")))

	return theme.CardStyle.Width(min(60, width-4)).Render(sb.String())
}
