package fortune

import "image/color"

// Color is a named palette entry.
type Color struct {
	Name string
	RGBA color.RGBA
}

// Palette is the fixed set round colors are drawn from. Values match the Tk
// named colors.
var Palette = []Color{
	{"red", color.RGBA{0xff, 0x00, 0x00, 0xff}},
	{"blue", color.RGBA{0x00, 0x00, 0xff, 0xff}},
	{"green", color.RGBA{0x00, 0x80, 0x00, 0xff}},
	{"yellow", color.RGBA{0xff, 0xff, 0x00, 0xff}},
	{"orange", color.RGBA{0xff, 0xa5, 0x00, 0xff}},
	{"purple", color.RGBA{0x80, 0x00, 0x80, 0xff}},
	{"pink", color.RGBA{0xff, 0xc0, 0xcb, 0xff}},
	{"cyan", color.RGBA{0x00, 0xff, 0xff, 0xff}},
}

// InPalette reports whether c is one of the palette colors.
func InPalette(c Color) bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}
