// Package mushaf renders the pages of the Madina mushaf, and free-form
// Arabic text, into caller-owned pixel buffers.
//
// A Renderer is built from raw font bytes and the 604-page corpus blob:
//
//	r, err := mushaf.New(fontData, corpusData)
//	if err != nil { ... }
//	defer r.Close()
//
//	buf := mushaf.NewPixelBuffer(1080, 1710, mushaf.FormatRGBA8888)
//	r.DrawPage(buf, 0, mushaf.DefaultRenderConfig())
//
// Pages are laid out on the classical 15-line grid with kashida or
// space-stretch justification, tajweed coloring when the font carries
// the lookups for it, and the circular layout of the opening spread.
// The quran subpackage exposes the static surah and page-location
// tables; corpus and shape hold the text classifier and the shaping
// engine boundary.
//
// Draw calls never panic on bad input: out-of-range pages, nil
// buffers, and empty text are rejected with sentinel return values.
// The package is silent by default; call SetLogger to receive
// diagnostics.
package mushaf
