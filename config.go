package mushaf

// RenderConfig controls a single DrawPage call. It is a pure value:
// the renderer never mutates or retains it.
//
// Zero values select the documented defaults, so configure only what
// deviates or start from DefaultRenderConfig.
type RenderConfig struct {
	// Tajweed enables tajweed coloring when the font supports it.
	Tajweed bool

	// Justify enables line justification (kashida when the shaping
	// engine provides it, space stretching otherwise).
	Justify bool

	// FontScale scales the page glyph size. Clamped to [0.5, 2].
	// Zero means 1.
	FontScale float64

	// BackgroundColor fills the page before drawing. The zero value
	// means white.
	BackgroundColor RGBA

	// FontSizePx overrides the computed glyph size in pixels.
	// Zero means auto (derived from the buffer width).
	FontSizePx int

	// UseForegroundOverride paints palette layers of color glyphs in
	// the resolved text color, producing plain uncolored ornaments.
	UseForegroundOverride bool

	// LineHeightDivisor sets the line pitch to height/divisor.
	// Zero means the classical 15-line grid.
	LineHeightDivisor float64

	// TopMarginLines shifts the first baseline down by this many line
	// pitches. Zero means auto: 3.5 on the opening spread, 0 elsewhere.
	TopMarginLines float64
}

// DefaultRenderConfig returns the config DrawPage treats as baseline:
// tajweed and justification on, everything else auto.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Tajweed:   true,
		Justify:   true,
		FontScale: 1,
	}
}

// TextConfig controls the free-form text calls (DrawText,
// DrawMultilineText, DrawWrappedText).
type TextConfig struct {
	// FontSize is the em size in pixels. Zero means auto: the size is
	// chosen so the text fills the target line width.
	FontSize int

	// LineWidth is the target measure in pixels for justification,
	// auto sizing and wrapping. Zero means the buffer width.
	LineWidth float64

	// BackgroundColor fills the buffer before drawing. The zero value
	// leaves the buffer untouched.
	BackgroundColor RGBA

	// TextColor is the foreground. The zero value means auto: black
	// on light backgrounds, white on dark ones.
	TextColor RGBA

	// Tajweed enables tajweed coloring.
	Tajweed bool

	// Justify stretches the line to LineWidth.
	Justify bool
}

// DefaultTextConfig returns a TextConfig with tajweed enabled and all
// sizes auto.
func DefaultTextConfig() TextConfig {
	return TextConfig{Tajweed: true}
}
