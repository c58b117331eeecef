// Package shape is the boundary between the page layout engine and the
// OpenType shaping machinery.
//
// The Engine interface produces positioned glyph runs from Arabic text
// and extracts glyph outlines in font units. The default implementation
// (NewEngine) is backed by go-text/typesetting's HarfBuzz port. Glyph
// carries two side channels that stock shapers leave empty: the lookup
// provenance used for tajweed color resolution, and the per-glyph
// tatweel elongation used for kashida justification. An engine built on
// a shaper that computes these fills them in; the layout code treats
// zero values as "not available" and falls back to space stretching and
// plain foreground color.
package shape

import "errors"

// Sentinel errors for the shape package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("shape: empty font data")

	// ErrInvalidFontData is returned when the font cannot be parsed.
	ErrInvalidFontData = errors.New("shape: invalid font data")

	// ErrEngineClosed is returned when a closed engine is used.
	ErrEngineClosed = errors.New("shape: engine is closed")
)

// Glyph is one shaped glyph in visual order, positioned in font units.
type Glyph struct {
	// GID is the glyph ID in the font.
	GID uint32

	// Cluster is the rune index in the source text this glyph maps to.
	Cluster int

	// XAdvance is the horizontal advance in font units.
	XAdvance float64

	// XOffset and YOffset are fine positioning adjustments in font
	// units, applied on top of the pen position.
	XOffset float64
	YOffset float64

	// LookupIndex is the index of the OpenType lookup that produced
	// this glyph, or -1 when the shaper does not report provenance.
	// Tajweed coloring keys off this value.
	LookupIndex int

	// Aux is a packed color side channel: bits 8..15 red, 16..23
	// green, 24..31 blue. Only meaningful when LookupIndex is at or
	// past the tajweed threshold.
	Aux uint32

	// KashidaLeft and KashidaRight are the tatweel elongation amounts
	// this glyph was stretched by during justification, in design-axis
	// units. Zero means the glyph was not elongated.
	KashidaLeft  float64
	KashidaRight float64

	// Space marks a word-space glyph. Space glyphs absorb leftover
	// measure during space-stretch justification and are excluded from
	// the text width.
	Space bool
}

// Elongated reports whether the glyph carries a kashida elongation.
func (g Glyph) Elongated() bool {
	return g.KashidaLeft != 0 || g.KashidaRight != 0
}

// Options selects the shaping behavior for one line.
type Options struct {
	// Tajweed enables the font's tajweed feature.
	Tajweed bool

	// JustifyTo is the target measure in font units. Engines that
	// support kashida justification stretch the run to this width
	// during shaping. Zero disables justification.
	JustifyTo float64
}

// Point is an outline point in font units, y-up.
type Point struct {
	X, Y float64
}

// SegmentOp is an outline path operation.
type SegmentOp uint8

const (
	// SegmentOpMoveTo starts a new contour at Args[0].
	SegmentOpMoveTo SegmentOp = iota

	// SegmentOpLineTo draws a line to Args[0].
	SegmentOpLineTo

	// SegmentOpQuadTo draws a quadratic bezier; Args[0] is the
	// control, Args[1] the target.
	SegmentOpQuadTo

	// SegmentOpCubeTo draws a cubic bezier; Args[0] and Args[1] are
	// controls, Args[2] the target.
	SegmentOpCubeTo
)

// Segment is one outline path segment in font units.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// Layer is one layer of a color glyph, bottom to top.
type Layer struct {
	// GID is the glyph whose outline this layer paints.
	GID uint32

	// R, G, B, A is the palette color for the layer. Ignored when
	// Foreground is set.
	R, G, B, A uint8

	// Foreground marks a layer painted in the current text color
	// rather than a palette entry.
	Foreground bool
}

// Engine shapes text and extracts glyph geometry.
//
// Implementations are not required to be safe for concurrent use; the
// renderer serializes access to its engine.
type Engine interface {
	// Shape converts one line of text into positioned glyphs in visual
	// order, in font units.
	Shape(text string, opts Options) []Glyph

	// UnitsPerEm returns the font's design grid size.
	UnitsPerEm() int

	// GlyphOutline returns the outline of g in font units, honoring
	// the glyph's kashida elongation. A nil or empty slice means the
	// glyph has no outline (e.g. a space).
	GlyphOutline(g Glyph) []Segment

	// ColorLayers returns the color layers of gid, bottom to top, or
	// nil if gid is not a color glyph.
	ColorLayers(gid uint32) []Layer

	// LookupCount returns the number of GPOS lookups in the font.
	// Tajweed capability detection compares this against a threshold.
	LookupCount() int

	// Close releases the engine's font resources.
	Close() error
}
