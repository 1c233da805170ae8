// Package theme provides color themes for the TUI.
package theme

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Theme holds all colors for a TUI theme as hex strings.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Cards, subtle highlight
	BgSelection string `toml:"bg_selection"` // Cursor, selection
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Disabled dates, placeholders
	Accent      string `toml:"accent"`       // Titles, focused borders, today marker
	Success     string `toml:"success"`      // Completed steps, valid fields
	Warning     string `toml:"warning"`      // Soft validation hints
	Error       string `toml:"error"`        // Rejected input, blocked submit

	// Popup palette (can override base theme values)
	PopupBg     string `toml:"popup_bg"`
	PopupBorder string `toml:"popup_border"`
}

// builtin holds the bundled Catppuccin variants.
var builtin = map[string]Theme{
	"mocha": {
		Name: "mocha", Bg: "#1e1e2e", BgHighlight: "#313244", BgSelection: "#45475a",
		Fg: "#cdd6f4", FgMuted: "#6c7086", Accent: "#cba6f7",
		Success: "#a6e3a1", Warning: "#f9e2af", Error: "#f38ba8",
	},
	"macchiato": {
		Name: "macchiato", Bg: "#24273a", BgHighlight: "#363a4f", BgSelection: "#494d64",
		Fg: "#cad3f5", FgMuted: "#6e738d", Accent: "#c6a0f6",
		Success: "#a6da95", Warning: "#eed49f", Error: "#ed8796",
	},
	"frappe": {
		Name: "frappe", Bg: "#303446", BgHighlight: "#414559", BgSelection: "#51576d",
		Fg: "#c6d0f5", FgMuted: "#737994", Accent: "#ca9ee6",
		Success: "#a6d189", Warning: "#e5c890", Error: "#e78284",
	},
	"latte": {
		Name: "latte", Bg: "#eff1f5", BgHighlight: "#ccd0da", BgSelection: "#bcc0cc",
		Fg: "#4c4f69", FgMuted: "#9ca0b0", Accent: "#8839ef",
		Success: "#40a02b", Warning: "#df8e1d", Error: "#d20f39",
	},
}

// Load returns a bundled theme by name.
// Falls back to frappe if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "frappe"
	}
	name = strings.ToLower(name)

	t, ok := builtin[name]
	if !ok {
		if name != "frappe" {
			return Load("frappe")
		}
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	t.applyDefaults()
	return &t, nil
}

// LoadFile loads a custom theme from a TOML file.
// Missing fields fall back to the frappe values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	t := builtin["frappe"]
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}
	t.applyDefaults()
	return &t, nil
}

func (t *Theme) applyDefaults() {
	if t.PopupBg == "" {
		t.PopupBg = coalesce(t.BgHighlight, t.Bg)
	}
	if t.PopupBorder == "" {
		t.PopupBorder = t.Accent
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns the bundled theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is bundled.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
