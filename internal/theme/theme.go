// Package theme holds the TUI palette and shared lipgloss styles.
package theme

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Accent palette. Table columns and key hints cycle through these.
var (
	ColorLavender = lipgloss.Color("#9f99d1")
	ColorSkyBlue  = lipgloss.Color("#86bada")
	ColorMauve    = lipgloss.Color("#dbaad7")
	ColorPeach    = lipgloss.Color("#f6bcb0")
	ColorGold     = lipgloss.Color("#ffe3b3")
)

// Surfaces and text (dark theme).
var (
	ColorCardBg     = lipgloss.Color("#232438")
	ColorElevatedBg = lipgloss.Color("#2a2b42")
	ColorOverlayBg  = lipgloss.Color("#111122")
	ColorBorder     = lipgloss.Color("#3a3b52")
	ColorMutedText  = lipgloss.Color("#6b6d8a")
	ColorBodyText   = lipgloss.Color("#c8cad8")
	ColorBrightText = lipgloss.Color("#ecedf5")
)

// Consumption relative to the ledger average.
var (
	ColorGood = ColorSkyBlue
	ColorBad  = lipgloss.Color("#f07070")
)

// ConsumptionColor picks the color for an L/100km figure. Lower is better;
// with no average to compare against the figure stays neutral.
func ConsumptionColor(value, average float64) lipgloss.Color {
	switch {
	case average <= 0 || value == average:
		return ColorBodyText
	case value < average:
		return ColorGood
	default:
		return ColorBad
	}
}

var (
	CardStyle = lipgloss.NewStyle().
			Background(ColorCardBg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMutedText)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorPeach).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorBad).
			Bold(true)
)

type rgb struct{ r, g, b uint8 }

func parseHex(hex string) rgb {
	var c rgb
	fmt.Sscanf(strings.TrimPrefix(hex, "#"), "%02x%02x%02x", &c.r, &c.g, &c.b)
	return c
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// mix blends from a toward b; t is clamped to [0, 1].
func mix(a, b rgb, t float64) rgb {
	t = math.Max(0, math.Min(1, t))
	ch := func(x, y uint8) uint8 {
		return uint8(float64(x) + t*(float64(y)-float64(x)))
	}
	return rgb{ch(a.r, b.r), ch(a.g, b.g), ch(a.b, b.b)}
}

// titleStops loop: the last stop blends back into the first.
var titleStops = []rgb{
	parseHex(string(ColorSkyBlue)),
	parseHex(string(ColorLavender)),
	parseHex(string(ColorMauve)),
	parseHex(string(ColorPeach)),
	parseHex(string(ColorGold)),
}

// gradientAt returns the looped title gradient color at position t.
func gradientAt(t float64) string {
	t -= math.Floor(t)
	pos := t * float64(len(titleStops))
	i := int(pos) % len(titleStops)
	next := (i + 1) % len(titleStops)
	return mix(titleStops[i], titleStops[next], pos-math.Floor(pos)).hex()
}

// AnimatedGradientText colors text with a window of the title gradient that
// slides one full loop every 100 ticks. An optional background is applied
// to every rune so the text can sit on a card.
func AnimatedGradientText(text string, tick uint, bg ...lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	style := lipgloss.NewStyle()
	if len(bg) > 0 {
		style = style.Background(bg[0])
	}

	// The text spans about one and a half color stops.
	window := 1.5 / float64(len(titleStops))
	phase := float64(tick%100) / 100

	var sb strings.Builder
	span := float64(max(len(runes)-1, 1))
	for i, r := range runes {
		c := gradientAt(phase + float64(i)/span*window)
		sb.WriteString(style.Foreground(lipgloss.Color(c)).Render(string(r)))
	}
	return sb.String()
}
