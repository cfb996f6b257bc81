package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Ello" {
		t.Fatalf("ThemeNames()[0] = %q, want Ello", names[0])
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Ello"); got != "Nightfox" {
		t.Fatalf("NextTheme(Ello) = %q, want Nightfox", got)
	}
	if got := NextTheme("Slate"); got != "Ello" {
		t.Fatalf("NextTheme(Slate) = %q, want Ello", got)
	}
	if got := NextTheme("Unknown"); got != "Ello" {
		t.Fatalf("NextTheme(Unknown) = %q, want Ello", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Ello" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Ello (fallback)", got)
	}
}

func TestThemesDefineEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for field, value := range map[string]string{
			"Background": th.Background, "Surface": th.Surface, "FocusBg": th.FocusBg,
			"Border": th.Border, "BorderFocus": th.BorderFocus, "Text": th.Text,
			"Muted": th.Muted, "Faint": th.Faint, "Accent": th.Accent,
			"Button": th.Button, "Success": th.Success, "Warning": th.Warning, "Danger": th.Danger,
		} {
			if value == "" {
				t.Errorf("%s.%s is empty", name, field)
			}
		}
	}
}
