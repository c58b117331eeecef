package mushaf

import "github.com/digitalkhatt/mushaf/shape"

// glyphColor resolves the paint color for one glyph.
//
// Glyphs produced by a lookup at or past the tajweed threshold carry
// their color packed in the Aux side channel; everything else paints
// in the resolved foreground. The embedded path is only trusted when
// the loaded font passed capability detection, so fonts without
// tajweed data can never misread stale Aux bits.
func (r *Renderer) glyphColor(g shape.Glyph, foreground RGBA, tajweed bool) RGBA {
	if tajweed && r.tajweedCapable && g.LookupIndex >= r.threshold {
		return RGBA{
			R: float64(g.Aux>>8&0xff) / 255,
			G: float64(g.Aux>>16&0xff) / 255,
			B: float64(g.Aux>>24&0xff) / 255,
			A: 1,
		}
	}
	return foreground
}

// resolveForeground picks the text color: the explicit config color
// when given, otherwise the luminance-based contrast color for the
// background.
func resolveForeground(explicit, background RGBA) RGBA {
	if !explicit.IsZero() {
		return explicit
	}
	return textColorFor(background)
}
