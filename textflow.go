package mushaf

import (
	"math"
	"strings"

	"github.com/digitalkhatt/mushaf/corpus"
	"github.com/digitalkhatt/mushaf/shape"
)

// DrawText paints a single line of text right-aligned into buf and
// returns the painted width in pixels, or -1 on invalid input.
//
// With FontSize zero the size is chosen so the text exactly fills the
// target measure (LineWidth, or the buffer width). With Justify the
// line is stretched to the measure; otherwise it renders at natural
// width. The baseline sits one em below the top edge.
func (r *Renderer) DrawText(buf *PixelBuffer, text string, cfg TextConfig) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.textArgsValid(buf, text, "DrawText") {
		return -1
	}

	target := cfg.LineWidth
	if target <= 0 {
		target = float64(buf.Width)
	}
	naturalFU := r.measureFU(text, cfg.Tajweed)
	if naturalFU <= 0 {
		return -1
	}
	fontSize := float64(cfg.FontSize)
	if fontSize <= 0 {
		fontSize = target / naturalFU * float64(r.upem)
	}
	scale := fontSize / float64(r.upem)

	fg := r.prepareSurface(buf, cfg)

	cv := newCanvas(buf)
	cv.translate(float64(buf.Width), fontSize)
	cv.scale(scale, -scale)

	measure := 0.0
	if cfg.Justify {
		measure = target / scale
	}
	drawn := r.drawLine(cv, text, corpus.JustifyStretch, measure, lineStyle{
		justify:    cfg.Justify,
		tajweed:    cfg.Tajweed,
		foreground: fg,
	})
	return int(math.Round(drawn * scale))
}

// MeasureText returns the natural pixel width of text at the given em
// size, and the line height (the em size itself). ok is false for
// empty text, a non-positive size, or a closed renderer.
func (r *Renderer) MeasureText(text string, fontSizePx int) (width, height float64, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || text == "" || fontSizePx <= 0 {
		return 0, 0, false
	}
	fu := r.measureFU(text, false)
	scale := float64(fontSizePx) / float64(r.upem)
	return fu * scale, float64(fontSizePx), true
}

// DrawMultilineText paints newline-delimited text with a fixed line
// height of fontSize times lineSpacing, and returns the number of
// lines, or -1 on invalid input. With FontSize zero the size fits the
// widest line to the measure.
func (r *Renderer) DrawMultilineText(buf *PixelBuffer, text string, cfg TextConfig, lineSpacing float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.textArgsValid(buf, text, "DrawMultilineText") {
		return -1
	}
	lines := strings.Split(text, "\n")
	r.paintLines(buf, lines, cfg, lineSpacing)
	return len(lines)
}

// DrawWrappedText greedily wraps text at word boundaries to the
// measure, paints the resulting lines, and returns their count, or -1
// on invalid input. FontSize must be set: wrapping needs a fixed size.
// A single word wider than the measure is placed alone on its line,
// never broken.
func (r *Renderer) DrawWrappedText(buf *PixelBuffer, text string, cfg TextConfig, lineSpacing float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.textArgsValid(buf, text, "DrawWrappedText") {
		return -1
	}
	if cfg.FontSize <= 0 {
		Logger().Warn("mushaf: DrawWrappedText requires an explicit font size")
		return -1
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return -1
	}

	target := cfg.LineWidth
	if target <= 0 {
		target = float64(buf.Width)
	}
	scale := float64(cfg.FontSize) / float64(r.upem)
	spaceWidth := r.spaceWidth(cfg) * scale

	lines := wrapWords(words, func(w string) float64 {
		return r.measureFU(w, cfg.Tajweed) * scale
	}, spaceWidth, target)
	r.paintLines(buf, lines, cfg, lineSpacing)
	return len(lines)
}

// wrapWords assembles words into lines: a word joins the current line
// while the accumulated width plus a space and the word still fits.
func wrapWords(words []string, widthOf func(string) float64, spaceWidth, maxWidth float64) []string {
	var lines []string
	current := words[0]
	currentWidth := widthOf(words[0])
	for _, w := range words[1:] {
		wWidth := widthOf(w)
		if currentWidth+spaceWidth+wWidth <= maxWidth {
			current += " " + w
			currentWidth += spaceWidth + wWidth
			continue
		}
		lines = append(lines, current)
		current = w
		currentWidth = wWidth
	}
	return append(lines, current)
}

// paintLines renders pre-split lines top to bottom with a fixed pitch
// of fontSize times lineSpacing.
func (r *Renderer) paintLines(buf *PixelBuffer, lines []string, cfg TextConfig, lineSpacing float64) {
	if lineSpacing <= 0 {
		lineSpacing = 1
	}
	target := cfg.LineWidth
	if target <= 0 {
		target = float64(buf.Width)
	}
	fontSize := float64(cfg.FontSize)
	if fontSize <= 0 {
		widest := 0.0
		for _, ln := range lines {
			if fu := r.measureFU(ln, cfg.Tajweed); fu > widest {
				widest = fu
			}
		}
		if widest <= 0 {
			return
		}
		fontSize = target / widest * float64(r.upem)
	}
	scale := fontSize / float64(r.upem)
	pitch := fontSize * lineSpacing

	fg := r.prepareSurface(buf, cfg)

	cv := newCanvas(buf)
	for i, ln := range lines {
		if ln == "" {
			continue
		}
		cv.resetMatrix()
		cv.translate(float64(buf.Width), fontSize+float64(i)*pitch)
		cv.scale(scale, -scale)
		measure := 0.0
		// The last line keeps its natural width; stretching it would
		// scatter a few trailing words across the whole measure.
		if cfg.Justify && i < len(lines)-1 {
			measure = target / scale
		}
		r.drawLine(cv, ln, corpus.JustifyStretch, measure, lineStyle{
			justify:    cfg.Justify,
			tajweed:    cfg.Tajweed,
			foreground: fg,
		})
	}
}

// prepareSurface fills the background when one is configured and
// returns the resolved foreground.
func (r *Renderer) prepareSurface(buf *PixelBuffer, cfg TextConfig) RGBA {
	bg := cfg.BackgroundColor
	if !bg.IsZero() {
		buf.Fill(bg)
	} else {
		bg = White
	}
	return resolveForeground(cfg.TextColor, bg)
}

// textArgsValid checks the shared draw-call preconditions.
func (r *Renderer) textArgsValid(buf *PixelBuffer, text, op string) bool {
	if r.closed {
		Logger().Warn("mushaf: " + op + " on closed renderer")
		return false
	}
	if !buf.valid() {
		Logger().Warn("mushaf: " + op + " with invalid buffer")
		return false
	}
	if text == "" {
		return false
	}
	return true
}

// measureFU returns the natural advance of text in font units.
func (r *Renderer) measureFU(text string, tajweed bool) float64 {
	total := 0.0
	for _, g := range r.engine.Shape(text, shape.Options{Tajweed: tajweed}) {
		total += g.XAdvance
	}
	return total
}

// spaceProbe is a pair of non-joining letters used to derive the
// shaped width of a word space: the difference between the pair with
// and without an embedded space.
const (
	spaceProbeJoined = "اا"
	spaceProbeSplit  = "ا ا"
)

// spaceWidth returns the width of an inter-word space in font units,
// falling back to a quarter em when the probe is degenerate.
func (r *Renderer) spaceWidth(cfg TextConfig) float64 {
	w := r.measureFU(spaceProbeSplit, cfg.Tajweed) - r.measureFU(spaceProbeJoined, cfg.Tajweed)
	if w <= 0 {
		w = float64(r.upem) / 4
	}
	return w
}
