// Package theme provides color themes for the TUI.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string
	Bg          string // Base background
	BgHighlight string // Grid cells, subtle highlight
	BgSelection string // Cursor, drag selection
	Fg          string // Primary foreground
	FgMuted     string // Empty hours, muted elements
	Accent      string // Title, primary accent, borders
	Current     string // Today's column marker
	Warning     string // Warnings, unsaved state
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// builtins holds the Catppuccin-flavored built-in themes.
var builtins = map[string]Theme{
	"mocha": {
		Name: "mocha", Bg: "#1e1e2e", BgHighlight: "#313244", BgSelection: "#45475a",
		Fg: "#cdd6f4", FgMuted: "#6c7086", Accent: "#cba6f7", Current: "#89b4fa", Warning: "#f9e2af",
	},
	"macchiato": {
		Name: "macchiato", Bg: "#24273a", BgHighlight: "#363a4f", BgSelection: "#494d64",
		Fg: "#cad3f5", FgMuted: "#6e738d", Accent: "#c6a0f6", Current: "#8aadf4", Warning: "#eed49f",
	},
	"frappe": {
		Name: "frappe", Bg: "#303446", BgHighlight: "#414559", BgSelection: "#51576d",
		Fg: "#c6d0f5", FgMuted: "#737994", Accent: "#ca9ee6", Current: "#8caaee", Warning: "#e5c890",
	},
	"latte": {
		Name: "latte", Bg: "#eff1f5", BgHighlight: "#ccd0da", BgSelection: "#bcc0cc",
		Fg: "#4c4f69", FgMuted: "#9ca0b0", Accent: "#8839ef", Current: "#1e66f5", Warning: "#df8e1d",
	},
}

// Load returns a built-in theme by name, falling back to mocha for
// unknown names.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)

	t, ok := builtins[name]
	if !ok {
		if name != "mocha" {
			return Load("mocha")
		}
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return &t, nil
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "macchiato", "frappe", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
