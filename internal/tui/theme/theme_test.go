package theme

import "testing"

func TestLoad(t *testing.T) {
	t.Run("known themes", func(t *testing.T) {
		for _, name := range Available() {
			th, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q): %v", name, err)
			}
			if th.Name != name {
				t.Errorf("Load(%q).Name = %q", name, th.Name)
			}
			if th.Bg == "" || th.Fg == "" || th.Accent == "" {
				t.Errorf("theme %q has empty colors: %+v", name, th)
			}
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		th, err := Load("LATTE")
		if err != nil {
			t.Fatal(err)
		}
		if th.Name != "latte" {
			t.Errorf("name = %q, want latte", th.Name)
		}
	})

	t.Run("unknown falls back to mocha", func(t *testing.T) {
		th, err := Load("dracula")
		if err != nil {
			t.Fatal(err)
		}
		if th.Name != "mocha" {
			t.Errorf("fallback theme = %q, want mocha", th.Name)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		th, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if th.Name != "mocha" {
			t.Errorf("theme = %q, want mocha", th.Name)
		}
	})
}

func TestIsAvailable(t *testing.T) {
	if !IsAvailable("frappe") || !IsAvailable("Frappe") {
		t.Error("frappe should be available in any case")
	}
	if IsAvailable("solarized") {
		t.Error("solarized is not a built-in")
	}
}
