package overlays

import (
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zhang1786/fuel-tracker-app/internal/config"
	"github.com/zhang1786/fuel-tracker-app/internal/i18n"
	"github.com/zhang1786/fuel-tracker-app/internal/theme"
	"github.com/zhang1786/fuel-tracker-app/internal/ui/components"
)

// ConfigChangedMsg signals that config has been updated. SaveErr is set
// when the new settings apply to this session only.
type ConfigChangedMsg struct {
	Config  config.Config
	SaveErr error
}

// setting is one editable config value cycled through a fixed option list.
type setting struct {
	label   string // i18n key
	options []string
	get     func(config.Config) string
	set     func(*config.Config, string)
	restart bool // only read at startup
}

var settings = []setting{
	{
		label:   "setting_refresh",
		options: []string{"5", "10", "15", "30", "60"},
		get:     func(c config.Config) string { return strconv.Itoa(c.General.Interval) },
		set: func(c *config.Config, v string) {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				c.General.Interval = n
			}
		},
	},
	{
		label:   "setting_language",
		options: i18n.Languages(),
		get:     func(c config.Config) string { return c.General.Language },
		set:     func(c *config.Config, v string) { c.General.Language = v },
	},
	{
		label:   "setting_bell",
		options: []string{"off", "on"},
		get:     func(c config.Config) string { return onOff(c.Notifications.Bell) },
		set:     func(c *config.Config, v string) { c.Notifications.Bell = v == "on" },
	},
	{
		label:   "setting_banner",
		options: []string{"off", "on"},
		get:     func(c config.Config) string { return onOff(c.Notifications.Enabled) },
		set:     func(c *config.Config, v string) { c.Notifications.Enabled = v == "on" },
	},
	{
		label:   "setting_backend",
		options: []string{"file", "sqlite", "redis"},
		get:     func(c config.Config) string { return c.Storage.Backend },
		set:     func(c *config.Config, v string) { c.Storage.Backend = v },
		restart: true,
	},
}

type SettingsOverlay struct {
	cfg      config.Config
	cfgPath  string
	cursor   int
	dirty    bool
	animTick uint
}

func NewSettingsOverlay(cfg config.Config, cfgPath string) *SettingsOverlay {
	return &SettingsOverlay{cfg: cfg, cfgPath: cfgPath}
}

func (s *SettingsOverlay) SetAnimTick(tick uint) {
	s.animTick = tick
}

// Update handles a key. It reports true when the overlay should close; a
// changed config is saved then and announced with ConfigChangedMsg.
func (s *SettingsOverlay) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		s.cursor = min(s.cursor+1, len(settings)-1)
	case "k", "up":
		s.cursor = max(s.cursor-1, 0)
	case "enter", " ", "l", "right":
		s.cycle(1)
	case "h", "left":
		s.cycle(-1)
	case "esc", "s":
		if !s.dirty {
			return true, nil
		}
		cfg := s.cfg
		err := config.Save(cfg, s.cfgPath)
		return true, func() tea.Msg { return ConfigChangedMsg{Config: cfg, SaveErr: err} }
	}
	return false, nil
}

func (s *SettingsOverlay) cycle(dir int) {
	st := settings[s.cursor]
	n := len(st.options)
	idx := max(slices.Index(st.options, st.get(s.cfg)), 0)
	st.set(&s.cfg, st.options[(idx+dir+n)%n])
	s.dirty = true
}

func (s *SettingsOverlay) Render(width, height int) string {
	bg := theme.ColorCardBg
	label := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)
	value := lipgloss.NewStyle().Foreground(theme.ColorSkyBlue).Background(bg)
	activeLabel := lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true).Background(bg)
	activeValue := lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true).Background(bg)
	muted := lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg)

	labelWidth := 0
	for _, st := range settings {
		labelWidth = max(labelWidth, lipgloss.Width(i18n.T(st.label)))
	}

	var sb strings.Builder
	sb.WriteString(theme.AnimatedGradientText(i18n.T("settings"), s.animTick, bg) + "\n")
	for i, st := range settings {
		text := components.PadRight(i18n.T(st.label), labelWidth)
		v := st.get(s.cfg)
		if st.restart {
			v += " *"
		}
		if i == s.cursor {
			sb.WriteString("\n" + activeLabel.Render("› "+text) + activeValue.Render("  ‹ "+v+" ›"))
		} else {
			sb.WriteString("\n" + label.Render("  "+text) + value.Render("    "+v))
		}
	}
	sb.WriteString("\n\n" + muted.Render("* "+i18n.T("setting_restart")))
	sb.WriteString("\n" + muted.Render(i18n.T("settings_help")))

	return theme.CardStyle.Width(min(54, width-4)).Render(sb.String())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
