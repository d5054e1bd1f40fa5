package theme

import "github.com/charmbracelet/lipgloss"

// staffPalette is the fixed 12-color palette staff ids hash into.
// It is theme-independent so a staff member keeps the same color across
// theme switches, sessions, and reloads. The exact hex values are part of
// the contract: a re-implementation hashing the same ids reproduces the
// same colors.
var staffPalette = [12]string{
	"#e78284", // red
	"#ef9f76", // peach
	"#e5c890", // yellow
	"#a6d189", // green
	"#81c8be", // teal
	"#99d1db", // sky
	"#8caaee", // blue
	"#babbf1", // lavender
	"#ca9ee6", // mauve
	"#f4b8e4", // pink
	"#ea999c", // maroon
	"#85c1dc", // sapphire
}

// StaffColorHex returns the stable display color for a staff id as a hex
// string. The id is hashed with 64-bit FNV-1a over its decimal digits and
// folded into the palette, so the same id always yields the same color
// with no persisted state.
func StaffColorHex(staffID int64) string {
	return staffPalette[staffPaletteIndex(staffID)]
}

// StaffColor returns the stable display color for a staff id.
func StaffColor(staffID int64) lipgloss.Color {
	return lipgloss.Color(StaffColorHex(staffID))
}

// staffPaletteIndex hashes a staff id into a palette slot.
func staffPaletteIndex(staffID int64) int {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)

	// FNV-1a over the decimal representation keeps the mapping portable
	// across languages that lack the same integer byte layout.
	hash := uint64(offset64)
	if staffID == 0 {
		hash ^= '0'
		hash *= prime64
	}
	digits := make([]byte, 0, 20)
	n := staffID
	if n < 0 {
		hash ^= '-'
		hash *= prime64
		n = -n
	}
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i := len(digits) - 1; i >= 0; i-- {
		hash ^= uint64(digits[i])
		hash *= prime64
	}

	return int(hash % uint64(len(staffPalette)))
}
