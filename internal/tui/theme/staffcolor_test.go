package theme

import "testing"

func TestStaffColorStable(t *testing.T) {
	// The same staff id must always map to the same color, with no state.
	for _, id := range []int64{1, 2, 42, 1000, 0, -7} {
		first := StaffColorHex(id)
		for i := 0; i < 5; i++ {
			if got := StaffColorHex(id); got != first {
				t.Fatalf("staff %d color changed: %q then %q", id, first, got)
			}
		}
	}
}

func TestStaffColorInPalette(t *testing.T) {
	for _, id := range []int64{0, 1, 7, 99, 12345, -3} {
		hex := StaffColorHex(id)
		found := false
		for _, p := range staffPalette {
			if p == hex {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("staff %d color %q not in palette", id, hex)
		}
	}
}

func TestStaffColorDistribution(t *testing.T) {
	// Sequential ids should spread over the palette, not bunch on one slot.
	seen := make(map[string]bool)
	for id := int64(1); id <= 100; id++ {
		seen[StaffColorHex(id)] = true
	}
	if len(seen) < 8 {
		t.Errorf("100 sequential ids hit only %d of %d palette colors", len(seen), len(staffPalette))
	}
}

func TestStaffPaletteIndexInRange(t *testing.T) {
	for id := int64(-50); id < 50; id++ {
		idx := staffPaletteIndex(id)
		if idx < 0 || idx >= len(staffPalette) {
			t.Fatalf("index %d out of range for id %d", idx, id)
		}
	}
}
