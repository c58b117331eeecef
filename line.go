package mushaf

import (
	"github.com/digitalkhatt/mushaf/corpus"
	"github.com/digitalkhatt/mushaf/shape"
)

// underfillTolerance is the fraction of the measure a shaped line may
// fall short by before the leftover is distributed across spaces.
// Empirically tuned against reference renders.
const underfillTolerance = 0.01

// lineStyle carries the per-line paint settings of a draw call.
type lineStyle struct {
	justify            bool
	tajweed            bool
	foreground         RGBA
	foregroundOverride bool
}

// drawLine shapes and paints one line of text at the canvas origin,
// emitting glyphs right to left, and returns the painted width in
// font units.
//
// The canvas transform must already map font units to device pixels
// with the origin at the right end of the measure. The measure is in
// font units; zero means "no target": no justification, no shrink, no
// stretch.
func (r *Renderer) drawLine(cv *canvas, text string, just corpus.Justify, measure float64, style lineStyle) float64 {
	opts := shape.Options{Tajweed: style.tajweed}
	if style.justify && just == corpus.JustifyStretch && measure > 0 {
		opts.JustifyTo = measure
	}
	glyphs := r.engine.Shape(text, opts)
	if len(glyphs) == 0 {
		return 0
	}

	// currentWidth counts every advance; textWidth excludes spaces, so
	// the space-stretch math hands all leftover measure to the spaces.
	currentWidth, textWidth := 0.0, 0.0
	spaces := 0
	for _, g := range glyphs {
		if g.Space {
			spaces++
		} else {
			textWidth += g.XAdvance
		}
		currentWidth += g.XAdvance
	}

	applySpace := false
	var spaceWidth float64
	switch {
	case measure <= 0:
		// No target width: paint at natural size.
	case currentWidth > measure:
		// Shrink to fit rather than truncate.
		ratio := measure / currentWidth
		cv.scale(ratio, ratio)
		currentWidth = measure
		textWidth *= ratio
	case spaces > 0 && measure-textWidth > measure*underfillTolerance:
		// Kashida left the line short (or was unavailable): stretch
		// the inter-word spaces to fill.
		spaceWidth = (measure - textWidth) / float64(spaces)
		applySpace = true
	}

	if just == corpus.JustifyCenter && measure > 0 {
		pad := (measure - currentWidth) / 2
		cv.translate(-pad, 0)
	}

	stretchSpaces := applySpace && just == corpus.JustifyStretch
	for _, g := range glyphs {
		if g.Space && stretchSpaces {
			cv.translate(-spaceWidth, 0)
		} else {
			cv.translate(-g.XAdvance, 0)
		}
		cv.translate(g.XOffset, g.YOffset)
		r.paintGlyph(cv, g, r.glyphColor(g, style.foreground, style.tajweed), style.foregroundOverride)
		cv.translate(-g.XOffset, -g.YOffset)
	}

	if stretchSpaces {
		return measure
	}
	return currentWidth
}

// paintGlyph fills one glyph at the canvas origin. Color glyphs paint
// their layers bottom to top; foreground layers (and, under the
// override, palette layers too) use the resolved color.
func (r *Renderer) paintGlyph(cv *canvas, g shape.Glyph, col RGBA, foregroundOverride bool) {
	if layers := r.engine.ColorLayers(g.GID); len(layers) > 0 {
		for _, l := range layers {
			layerCol := col
			if !l.Foreground && !foregroundOverride {
				layerCol = RGBA{
					R: float64(l.R) / 255,
					G: float64(l.G) / 255,
					B: float64(l.B) / 255,
					A: float64(l.A) / 255,
				}
			}
			// Layer glyphs inherit the base glyph's elongation so a
			// stretched colored letter keeps its layers aligned.
			cv.fill(r.engine.GlyphOutline(shape.Glyph{
				GID:          l.GID,
				KashidaLeft:  g.KashidaLeft,
				KashidaRight: g.KashidaRight,
			}), layerCol)
		}
		return
	}
	cv.fill(r.engine.GlyphOutline(g), col)
}
