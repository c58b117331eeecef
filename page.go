package mushaf

import (
	"github.com/digitalkhatt/mushaf/corpus"
	"github.com/digitalkhatt/mushaf/shape"
)

// Page geometry constants of the Madina layout: glyph size as a
// fraction of the width-derived column, the 15-line pitch, and the
// side padding divisor.
const (
	glyphSizeFactor   = 0.9
	columnsPerPage    = 17
	defaultDivisor    = 15
	paddingDivisor    = 42.5
	firstBaselineFrac = 0.72
	openingTopMargin  = 3.5
)

// DrawPage paints page pageIndex (0-based) into buf. Invalid handles,
// buffers and page indexes are rejected without drawing.
func (r *Renderer) DrawPage(buf *PixelBuffer, pageIndex int, cfg RenderConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		Logger().Warn("mushaf: DrawPage on closed renderer")
		return
	}
	if !buf.valid() {
		Logger().Warn("mushaf: DrawPage with invalid buffer")
		return
	}
	if pageIndex < 0 || pageIndex >= len(r.pages) {
		Logger().Warn("mushaf: DrawPage with out-of-range page", "page", pageIndex)
		return
	}

	bg := cfg.BackgroundColor
	if bg.IsZero() {
		bg = White
	}
	fg := textColorFor(bg)
	buf.Fill(bg)

	fontScale := cfg.FontScale
	if fontScale == 0 {
		fontScale = 1
	}
	if fontScale < 0.5 {
		fontScale = 0.5
	} else if fontScale > 2 {
		fontScale = 2
	}

	glyphSize := float64(buf.Width/columnsPerPage) * glyphSizeFactor * fontScale
	if cfg.FontSizePx > 0 {
		glyphSize = float64(cfg.FontSizePx)
	}
	divisor := cfg.LineHeightDivisor
	if divisor <= 0 {
		divisor = defaultDivisor
	}
	interLine := float64(buf.Height) / divisor
	// The baseline creeps down slightly as the glyphs shrink, keeping
	// small text optically centered in its row.
	yStart := interLine*firstBaselineFrac + interLine*(1-fontScale)*0.3
	xPadding := float64(buf.Width) / paddingDivisor
	scale := glyphSize / float64(r.upem)
	xStart := float64(buf.Width) - xPadding
	pageMeasure := (float64(buf.Width) - 2*xPadding) / scale

	topMargin := cfg.TopMarginLines
	if topMargin == 0 && pageIndex < 2 {
		topMargin = openingTopMargin
	}
	yStart += topMargin * interLine

	cv := newCanvas(buf)
	for lineIndex, line := range r.pages[pageIndex] {
		cv.resetMatrix()
		measure := pageMeasure
		tx := xStart
		if frac, ok := corpus.WidthFraction(pageIndex, lineIndex); ok {
			// Narrowed lines stay centered in the full measure.
			measure = pageMeasure * frac
			tx -= (pageMeasure - measure) / 2 * scale
		}
		cv.translate(tx, yStart+float64(lineIndex)*interLine)
		cv.scale(scale, -scale)

		style := lineStyle{
			justify:            cfg.Justify,
			tajweed:            cfg.Tajweed,
			foreground:         fg,
			foregroundOverride: cfg.UseForegroundOverride,
		}
		if line.Role == corpus.RoleSurahHeader {
			r.drawHeaderFrame(cv, measure, fg)
			// Header text is plain: no tajweed color, ornament layers
			// follow the foreground.
			style.tajweed = false
			style.foregroundOverride = true
		}
		r.drawLine(cv, line.Text, line.Justify, measure, style)
	}
}

// Header frame proportions in em units.
const (
	frameAscent    = 0.62
	frameDescent   = 0.26
	frameRadius    = 0.12
	frameThickness = 0.035
)

// drawHeaderFrame paints the decorative ring around a surah title:
// two rounded rectangles wound in opposite directions so the signed
// coverage leaves only the band between them.
func (r *Renderer) drawHeaderFrame(cv *canvas, measure float64, col RGBA) {
	if measure <= 0 {
		return
	}
	em := float64(r.upem)
	outer := roundedRect(-measure, -frameDescent*em, 0, frameAscent*em, frameRadius*em, false)
	t := frameThickness * em
	inner := roundedRect(-measure+t, -frameDescent*em+t, -t, frameAscent*em-t, frameRadius*em-t, true)
	cv.fill(append(outer, inner...), col)
}

// roundedRect builds a rounded rectangle contour with quadratic
// corners. reverse flips the winding direction.
func roundedRect(x0, y0, x1, y1, rad float64, reverse bool) []shape.Segment {
	if rad < 0 {
		rad = 0
	}
	if max := (x1 - x0) / 2; rad > max {
		rad = max
	}
	if max := (y1 - y0) / 2; rad > max {
		rad = max
	}

	move := func(x, y float64) shape.Segment {
		return shape.Segment{Op: shape.SegmentOpMoveTo, Args: [3]shape.Point{{X: x, Y: y}}}
	}
	line := func(x, y float64) shape.Segment {
		return shape.Segment{Op: shape.SegmentOpLineTo, Args: [3]shape.Point{{X: x, Y: y}}}
	}
	quad := func(cx, cy, x, y float64) shape.Segment {
		return shape.Segment{Op: shape.SegmentOpQuadTo, Args: [3]shape.Point{{X: cx, Y: cy}, {X: x, Y: y}}}
	}

	if !reverse {
		return []shape.Segment{
			move(x0+rad, y0),
			line(x1-rad, y0),
			quad(x1, y0, x1, y0+rad),
			line(x1, y1-rad),
			quad(x1, y1, x1-rad, y1),
			line(x0+rad, y1),
			quad(x0, y1, x0, y1-rad),
			line(x0, y0+rad),
			quad(x0, y0, x0+rad, y0),
		}
	}
	return []shape.Segment{
		move(x0+rad, y0),
		quad(x0, y0, x0, y0+rad),
		line(x0, y1-rad),
		quad(x0, y1, x0+rad, y1),
		line(x1-rad, y1),
		quad(x1, y1, x1, y1-rad),
		line(x1, y0+rad),
		quad(x1, y0, x1-rad, y0),
		line(x0+rad, y0),
	}
}
