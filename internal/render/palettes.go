package render

import (
	"image/color"
	"sort"
)

// Palettes holds the built-in colour schemes by name. "retro" is the
// default scheme.
var Palettes = map[string]Palette{
	"retro": DefaultPalette,
	"cyberpunk": {
		Background: color.RGBA{10, 10, 10, 255},
		Fine:       color.RGBA{255, 0, 255, 255},
		Sub:        color.RGBA{90, 0, 90, 255},
		Major:      color.RGBA{0, 255, 255, 255},
		Axis:       color.RGBA{255, 255, 0, 255},
		Curve:      color.RGBA{255, 136, 0, 255},
	},
	"ocean": {
		Background: color.RGBA{0, 26, 51, 255},
		Fine:       color.RGBA{0, 168, 204, 255},
		Sub:        color.RGBA{68, 136, 170, 255},
		Major:      color.RGBA{0, 119, 190, 255},
		Axis:       color.RGBA{224, 240, 255, 255},
		Curve:      color.RGBA{255, 215, 0, 255},
	},
	"minimal": {
		Background: color.RGBA{0, 0, 0, 255},
		Fine:       color.RGBA{136, 136, 136, 255},
		Sub:        color.RGBA{68, 68, 68, 255},
		Major:      color.RGBA{204, 204, 204, 255},
		Axis:       color.RGBA{255, 255, 255, 255},
		Curve:      color.RGBA{0, 136, 255, 255},
	},
}

// GetPalette returns the named palette, or DefaultPalette when the name is
// unknown.
func GetPalette(name string) Palette {
	if p, ok := Palettes[name]; ok {
		return p
	}
	return DefaultPalette
}

func PaletteNames() []string {
	names := make([]string, 0, len(Palettes))
	for n := range Palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
