package shape

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// OpenType tags used by the mushaf fonts: the tajweed coloring feature
// and the left/right tatweel elongation axes.
var (
	tagTajweed      = ot.MustNewTag("tjwd")
	tagLeftTatweel  = ot.MustNewTag("LTAT")
	tagRightTatweel = ot.MustNewTag("RTAT")
)

// GoTextEngine is the default Engine, backed by go-text/typesetting's
// HarfBuzz implementation.
//
// It shapes at the font's design grid size so glyph positions stay in
// font units; the renderer scales them onto the page. The stock shaper
// does not report lookup provenance or perform kashida justification,
// so LookupIndex is always -1 and the kashida fields stay zero; the
// layout engine's space-stretch fallback fills justified lines.
//
// GoTextEngine serializes access internally: font.Face carries mutable
// glyph caches and variation coordinates, and the elongated-glyph
// outline path temporarily applies per-glyph tatweel coordinates that
// must not leak into other lookups.
type GoTextEngine struct {
	mu     sync.Mutex
	face   *font.Face
	shaper shaping.HarfbuzzShaper

	upem        int
	lookupCount int
	colr        *colrTable
	closed      bool
}

// NewEngine parses fontData and builds the default shaping engine.
func NewEngine(fontData []byte) (*GoTextEngine, error) {
	if len(fontData) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFontData, err)
	}

	e := &GoTextEngine{
		face: face,
		upem: int(face.Upem()),
	}

	count, err := gposLookupCount(fontData)
	if err != nil {
		logger().Warn("shape: unreadable GPOS table, assuming no lookups", "err", err)
		count = 0
	}
	e.lookupCount = count

	colrData, colrErr := rawTable(fontData, "COLR")
	cpalData, cpalErr := rawTable(fontData, "CPAL")
	if colrErr == nil && cpalErr == nil {
		t, err := parseCOLR(colrData, cpalData)
		if err != nil {
			logger().Warn("shape: unreadable COLR/CPAL tables", "err", err)
		} else {
			e.colr = t
		}
	}

	logger().Debug("shape: engine ready",
		"upem", e.upem,
		"gposLookups", e.lookupCount,
		"colorLayers", e.colr != nil)
	return e, nil
}

// Shape implements Engine. Text is shaped as right-to-left Arabic at
// design grid scale; the returned glyphs are ordered for right-to-left
// emission, so the first glyph is painted at the right end of the line.
func (e *GoTextEngine) Shape(text string, opts Options) []Glyph {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || text == "" {
		return nil
	}

	runes := []rune(text)
	tajweed := uint32(0)
	if opts.Tajweed {
		tajweed = 1
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionRTL,
		Face:      e.face,
		Size:      fixed.Int26_6(e.upem * 64),
		Script:    language.Arabic,
		Language:  language.NewLanguage("ar"),
		FontFeatures: []shaping.FontFeature{
			{Tag: tagTajweed, Value: tajweed},
		},
	}
	out := e.shaper.Shape(input)

	// HarfBuzz returns RTL runs in visual order, leftmost glyph first.
	// The layout engine walks from the right page edge, so reverse.
	glyphs := make([]Glyph, len(out.Glyphs))
	for i := range out.Glyphs {
		g := out.Glyphs[len(out.Glyphs)-1-i]
		cluster := g.TextIndex()
		space := cluster >= 0 && cluster < len(runes) && runes[cluster] == ' '
		glyphs[i] = Glyph{
			GID:         uint32(g.GlyphID),
			Cluster:     cluster,
			XAdvance:    fixedToFloat(g.Advance),
			XOffset:     fixedToFloat(g.XOffset),
			YOffset:     fixedToFloat(g.YOffset),
			LookupIndex: -1,
			Space:       space,
		}
	}
	return glyphs
}

// UnitsPerEm implements Engine.
func (e *GoTextEngine) UnitsPerEm() int { return e.upem }

// LookupCount implements Engine.
func (e *GoTextEngine) LookupCount() int { return e.lookupCount }

// ColorLayers implements Engine.
func (e *GoTextEngine) ColorLayers(gid uint32) []Layer {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	return e.colr.layersFor(gid)
}

// GlyphOutline implements Engine. For elongated glyphs the tatweel
// variation coordinates are applied for this lookup only and reverted
// before the method returns.
func (e *GoTextEngine) GlyphOutline(g Glyph) []Segment {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}

	if g.Elongated() {
		e.face.SetVariations([]font.Variation{
			{Tag: tagLeftTatweel, Value: float32(g.KashidaLeft)},
			{Tag: tagRightTatweel, Value: float32(g.KashidaRight)},
		})
		defer e.face.SetVariations(nil)
	}

	data := e.face.GlyphData(font.GID(g.GID))
	outline, ok := data.(font.GlyphOutline)
	if !ok {
		return nil
	}

	segs := make([]Segment, len(outline.Segments))
	for i, fseg := range outline.Segments {
		seg := Segment{}
		switch fseg.Op {
		case ot.SegmentOpMoveTo:
			seg.Op = SegmentOpMoveTo
		case ot.SegmentOpLineTo:
			seg.Op = SegmentOpLineTo
		case ot.SegmentOpQuadTo:
			seg.Op = SegmentOpQuadTo
		case ot.SegmentOpCubeTo:
			seg.Op = SegmentOpCubeTo
		}
		for j, p := range fseg.Args {
			seg.Args[j] = Point{X: float64(p.X), Y: float64(p.Y)}
		}
		segs[i] = seg
	}
	return segs
}

// Close implements Engine. Close is idempotent.
func (e *GoTextEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.face = nil
	e.colr = nil
	return nil
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
