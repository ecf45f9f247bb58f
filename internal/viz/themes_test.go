package viz

import (
	"slices"
	"testing"

	"github.com/san-kum/cplane/internal/render"
)

func TestThemeNamesMatchPalettes(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(Themes) || names[0] != ThemeRetro.Name {
		t.Fatalf("names = %v", names)
	}
	for _, name := range names {
		if !slices.Contains(render.PaletteNames(), name) {
			t.Errorf("theme %s has no scene palette", name)
		}
		if GetTheme(name).Name != name {
			t.Errorf("GetTheme(%s) fell back", name)
		}
	}
}
