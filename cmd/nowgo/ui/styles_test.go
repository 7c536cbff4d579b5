package ui

import "testing"

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme for black background")
	}

	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Fatalf("expected light theme for white background")
	}

	t.Setenv("COLORFGBG", "")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark default with no COLORFGBG")
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("light").IsDark {
		t.Error("light resolved to dark theme")
	}
	if !ThemeByName("dark").IsDark {
		t.Error("dark resolved to light theme")
	}
}

func TestNewStylesCarriesTheme(t *testing.T) {
	s := NewStyles(DarkTheme())
	if !s.Theme.IsDark {
		t.Error("styles lost theme")
	}
	if s.RenderDivider(4) == "" {
		t.Error("divider empty")
	}
}
