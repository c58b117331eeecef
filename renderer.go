package mushaf

import (
	"errors"
	"fmt"
	"sync"

	"github.com/digitalkhatt/mushaf/corpus"
	"github.com/digitalkhatt/mushaf/quran"
	"github.com/digitalkhatt/mushaf/shape"
)

// Sentinel errors for renderer construction and lifecycle.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("mushaf: empty font data")

	// ErrClosed is returned when a closed renderer is used.
	ErrClosed = errors.New("mushaf: renderer is closed")

	// ErrCorruptTables is returned when the compiled metadata tables
	// fail their load-time verification.
	ErrCorruptTables = errors.New("mushaf: metadata tables failed verification")
)

// DefaultTajweedLookupThreshold is the GPOS lookup index at which
// embedded tajweed color data is assumed to begin. The value is a
// heuristic tied to the DigitalKhatt font builds, hence the option to
// override it.
const DefaultTajweedLookupThreshold = 150

// Option configures a Renderer during creation.
type Option func(*Renderer)

// WithTajweedLookupThreshold overrides the GPOS lookup threshold used
// for tajweed capability detection and per-glyph color resolution.
func WithTajweedLookupThreshold(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.threshold = n
		}
	}
}

// WithEngine substitutes the shaping engine. The renderer takes
// ownership and closes the engine on Close. Intended for engines that
// implement kashida justification or lookup provenance beyond what the
// default go-text engine reports.
func WithEngine(e shape.Engine) Option {
	return func(r *Renderer) {
		if e != nil {
			r.engine = e
		}
	}
}

// Renderer lays out and paints mushaf pages and free-form text.
//
// Independent Renderer instances do not share state. A single instance
// serializes its draw calls internally, so it is safe to share across
// goroutines, though draws do not run in parallel.
type Renderer struct {
	mu     sync.Mutex
	engine shape.Engine
	pages  [][]corpus.Line

	upem           int
	threshold      int
	tajweedCapable bool
	closed         bool
}

// New builds a Renderer from raw font bytes and the corpus blob (604
// form-feed-separated pages, one text line per layout row).
func New(fontData, corpusData []byte, opts ...Option) (*Renderer, error) {
	r := &Renderer{threshold: DefaultTajweedLookupThreshold}
	for _, opt := range opts {
		opt(r)
	}

	if r.engine == nil {
		if len(fontData) == 0 {
			return nil, ErrEmptyFontData
		}
		engine, err := shape.NewEngine(fontData)
		if err != nil {
			return nil, fmt.Errorf("mushaf: %w", err)
		}
		r.engine = engine
	}

	if !quran.Verify() {
		r.engine.Close()
		return nil, ErrCorruptTables
	}

	pages, err := corpus.Parse(corpusData)
	if err != nil {
		r.engine.Close()
		return nil, fmt.Errorf("mushaf: %w", err)
	}
	r.pages = pages

	r.upem = r.engine.UnitsPerEm()
	r.tajweedCapable = r.engine.LookupCount() > r.threshold
	Logger().Debug("mushaf: renderer ready",
		"upem", r.upem,
		"gposLookups", r.engine.LookupCount(),
		"tajweedCapable", r.tajweedCapable)
	return r, nil
}

// Close releases the renderer's font resources. Close is idempotent;
// draw calls after Close are rejected.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	r.pages = nil
	return r.engine.Close()
}

// PageCount returns the number of renderable pages.
func (r *Renderer) PageCount() int {
	return quran.PageCount
}

// TajweedCapable reports whether the loaded font was detected to carry
// embedded tajweed color data.
func (r *Renderer) TajweedCapable() bool {
	return r.tajweedCapable
}
