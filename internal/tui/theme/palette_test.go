package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewPalette(t *testing.T) {
	th, err := Load("frappe")
	if err != nil {
		t.Fatalf("loading theme: %v", err)
	}

	p := NewPalette(th)
	if p.Bg != lipgloss.Color(th.Bg) {
		t.Errorf("bg = %v, want %v", p.Bg, th.Bg)
	}
	if p.TodayBg == "" || p.DisabledFg == "" {
		t.Error("derived shades not computed")
	}
	if p.TodayBg == p.Bg {
		t.Error("today shade should differ from base background")
	}
}

func TestNewPaletteNilTheme(t *testing.T) {
	p := NewPalette(nil)
	if p.Fg == "" {
		t.Error("nil theme should fall back to a bundled theme")
	}
}

func TestChooseTextColor(t *testing.T) {
	// On a light accent, the dark background color reads better than light text.
	got := chooseTextColor("#e5c890", "#303446", "#c6d0f5")
	if got != "#303446" {
		t.Errorf("chooseTextColor = %q, want dark text on light accent", got)
	}
}

func TestBlendColors(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		ratio float64
		want  string
	}{
		{name: "no blend", a: "#ff0000", b: "#000000", ratio: 0, want: "#ff0000"},
		{name: "full blend", a: "#ff0000", b: "#000000", ratio: 1, want: "#000000"},
		{name: "half blend", a: "#ff0000", b: "#0000ff", ratio: 0.5, want: "#7f007f"},
		{name: "invalid input passes through", a: "red", b: "#000000", ratio: 0.5, want: "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blendColors(tt.a, tt.b, tt.ratio); got != tt.want {
				t.Errorf("blendColors = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRelativeLuminance(t *testing.T) {
	if l := relativeLuminance("#ffffff"); l < 0.99 {
		t.Errorf("white luminance = %f, want ~1", l)
	}
	if l := relativeLuminance("#000000"); l > 0.01 {
		t.Errorf("black luminance = %f, want ~0", l)
	}
	if !isLightTheme("#eff1f5") {
		t.Error("latte background should be detected as light")
	}
	if isLightTheme("#1e1e2e") {
		t.Error("mocha background should be detected as dark")
	}
}
