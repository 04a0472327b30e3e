package theme

import "testing"

func TestParseHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#ff8040", "#000000", "#9f99d1"} {
		if got := parseHex(hex).hex(); got != hex {
			t.Errorf("parseHex(%q).hex() = %q", hex, got)
		}
	}
	if got := parseHex("ff8040"); got != (rgb{0xff, 0x80, 0x40}) {
		t.Errorf("without hash: got %+v", got)
	}
}

func TestMix(t *testing.T) {
	black, white := rgb{}, rgb{255, 255, 255}
	tests := []struct {
		name string
		t    float64
		want string
	}{
		{"start", 0, "#000000"},
		{"end", 1, "#ffffff"},
		{"midpoint", 0.5, "#7f7f7f"},
		{"clamped low", -1, "#000000"},
		{"clamped high", 2, "#ffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mix(black, white, tt.t).hex(); got != tt.want {
				t.Errorf("mix(t=%v) = %s, want %s", tt.t, got, tt.want)
			}
		})
	}
}

func TestGradientAtLoops(t *testing.T) {
	if got, want := gradientAt(0), string(ColorSkyBlue); got != want {
		t.Errorf("gradientAt(0) = %s, want %s", got, want)
	}
	if gradientAt(0.25) != gradientAt(1.25) {
		t.Error("gradient should repeat every 1.0")
	}
}

func TestConsumptionColor(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		average float64
		want    string
	}{
		{"no average", 7, 0, string(ColorBodyText)},
		{"below average", 6.5, 7, string(ColorGood)},
		{"above average", 8, 7, string(ColorBad)},
		{"equal", 7, 7, string(ColorBodyText)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(ConsumptionColor(tt.value, tt.average)); got != tt.want {
				t.Errorf("ConsumptionColor(%v, %v) = %s, want %s", tt.value, tt.average, got, tt.want)
			}
		})
	}
}

func TestAnimatedGradientText(t *testing.T) {
	if got := AnimatedGradientText("", 3); got != "" {
		t.Errorf("empty input should render empty, got %q", got)
	}
	if got := AnimatedGradientText("Records", 3, ColorCardBg); got == "" {
		t.Error("AnimatedGradientText returned empty string")
	}
}
