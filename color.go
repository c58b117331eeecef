package mushaf

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
//
// The zero value (fully transparent black) doubles as the "auto"
// sentinel in the config structs.
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
	Transparent = RGBA{}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// RGBAFromUint32 unpacks a 0xRRGGBBAA value.
func RGBAFromUint32(v uint32) RGBA {
	return RGBA{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}
}

// Uint32 packs the color as 0xRRGGBBAA.
func (c RGBA) Uint32() uint32 {
	return uint32(clamp255(c.R*255))<<24 |
		uint32(clamp255(c.G*255))<<16 |
		uint32(clamp255(c.B*255))<<8 |
		uint32(clamp255(c.A*255))
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// Luminance returns the perceptual luminance of the color in [0, 1]
// using the 0.299/0.587/0.114 weighting. The integer weights keep the
// sum exact for c.R == c.G == c.B, so the 0.5 boundary is stable.
func (c RGBA) Luminance() float64 {
	return (299*c.R + 587*c.G + 114*c.B) / 1000
}

// IsZero reports whether the color is the zero value, i.e. the "auto"
// sentinel.
func (c RGBA) IsZero() bool {
	return c == RGBA{}
}

// textColorFor returns the text color that contrasts with the
// background: black on a light background, white on a dark one.
// A luminance of exactly 0.5 counts as light.
func textColorFor(background RGBA) RGBA {
	if background.Luminance() >= 0.5 {
		return Black
	}
	return White
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
