package mushaf

import (
	"strings"

	"github.com/digitalkhatt/mushaf/shape"
)

// fakeEngine is a deterministic shape.Engine for layout tests: every
// rune becomes one glyph with a fixed advance, outlines are plain
// squares, and kashida justification (when enabled) pads non-space
// glyphs evenly like the reference shaper does.
type fakeEngine struct {
	upem    int
	lookups int
	advance float64
	kashida bool

	// aux/lookup per rune, for tajweed resolution tests.
	lookupFor map[rune]int
	auxFor    map[rune]uint32

	// layers per glyph ID, for color glyph tests.
	layersFor map[uint32][]shape.Layer

	closed bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{upem: 1000, advance: 100}
}

func (e *fakeEngine) Shape(text string, opts shape.Options) []shape.Glyph {
	if e.closed || text == "" {
		return nil
	}
	runes := []rune(text)
	glyphs := make([]shape.Glyph, 0, len(runes))
	nonSpaces := 0
	total := 0.0
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		g := shape.Glyph{
			GID:         uint32(r),
			Cluster:     i,
			XAdvance:    e.advance,
			LookupIndex: -1,
			Space:       r == ' ',
		}
		if !g.Space {
			nonSpaces++
		}
		if idx, ok := e.lookupFor[r]; ok {
			g.LookupIndex = idx
		}
		if aux, ok := e.auxFor[r]; ok {
			g.Aux = aux
		}
		total += g.XAdvance
		glyphs = append(glyphs, g)
	}
	if e.kashida && opts.JustifyTo > total && nonSpaces > 0 {
		extra := (opts.JustifyTo - total) / float64(nonSpaces)
		for i := range glyphs {
			if !glyphs[i].Space {
				glyphs[i].XAdvance += extra
				glyphs[i].KashidaRight = extra / float64(e.upem)
			}
		}
	}
	return glyphs
}

func (e *fakeEngine) UnitsPerEm() int  { return e.upem }
func (e *fakeEngine) LookupCount() int { return e.lookups }
func (e *fakeEngine) Close() error     { e.closed = true; return nil }

func (e *fakeEngine) ColorLayers(gid uint32) []shape.Layer {
	return e.layersFor[gid]
}

// GlyphOutline returns a square pen-relative box: the glyph's advance
// wide (including any elongation) and half an em tall.
func (e *fakeEngine) GlyphOutline(g shape.Glyph) []shape.Segment {
	if e.closed || g.Space {
		return nil
	}
	w := e.advance + (g.KashidaLeft+g.KashidaRight)*float64(e.upem)
	h := float64(e.upem) / 2
	pt := func(x, y float64) [3]shape.Point {
		return [3]shape.Point{{X: x, Y: y}}
	}
	return []shape.Segment{
		{Op: shape.SegmentOpMoveTo, Args: pt(0, 0)},
		{Op: shape.SegmentOpLineTo, Args: pt(w, 0)},
		{Op: shape.SegmentOpLineTo, Args: pt(w, h)},
		{Op: shape.SegmentOpLineTo, Args: pt(0, h)},
	}
}

// testCorpus builds a minimal but valid corpus blob. Page 0 carries
// the opening-spread shape: a centered title row and six body rows.
func testCorpus() []byte {
	page0 := strings.Join([]string{
		"سُورَة ٱلۡفَاتِحَة",
		"بِسْمِ ٱللَّهِ ٱلرَّحْمَٰنِ ٱلرَّحِيمِ",
		"ٱلۡحَمۡدُ لِلَّهِ رَبِّ ٱلۡعَٰلَمِينَ",
		"ٱلرَّحۡمَٰنِ ٱلرَّحِيمِ",
		"مَٰلِكِ يَوۡمِ ٱلدِّينِ",
		"إِيَّاكَ نَعۡبُدُ وَإِيَّاكَ نَسۡتَعِينُ",
		"ٱهۡدِنَا ٱلصِّرَٰطَ ٱلۡمُسۡتَقِيمَ",
	}, "\n")
	pages := make([]string, 604)
	pages[0] = page0
	for i := 1; i < 604; i++ {
		pages[i] = "كَلِمَة أُخۡرَى"
	}
	return []byte(strings.Join(pages, "\f"))
}

// newFakeRenderer builds a Renderer over a fakeEngine.
func newFakeRenderer(e *fakeEngine) (*Renderer, error) {
	return New(nil, testCorpus(), WithEngine(e))
}

// inkBounds returns the bounding box of pixels that differ from the
// background, or ok=false for an empty surface.
func inkBounds(buf *PixelBuffer, bg RGBA) (minX, minY, maxX, maxY int, ok bool) {
	minX, minY = buf.Width, buf.Height
	maxX, maxY = -1, -1
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			if buf.At(x, y) == bg {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	return minX, minY, maxX, maxY, maxX >= 0
}
