package shape

import (
	"encoding/binary"
	"errors"
)

// COLR/CPAL format errors.
var (
	// ErrInvalidCOLRData indicates a malformed COLR table.
	ErrInvalidCOLRData = errors.New("shape: invalid COLR table data")

	// ErrInvalidCPALData indicates a malformed CPAL table.
	ErrInvalidCPALData = errors.New("shape: invalid CPAL table data")
)

// foregroundPalette is the CPAL sentinel for "use the text color".
const foregroundPalette = 0xFFFF

// colrTable holds the parsed COLRv0 layer records and the first CPAL
// palette. Surah header ornaments in the mushaf fonts are COLR glyphs;
// their foreground entries follow the resolved text color.
type colrTable struct {
	baseGlyphs []colrBaseGlyph
	layers     []colrLayer
	palette    []colrColor
}

type colrBaseGlyph struct {
	glyphID    uint16
	firstLayer uint16
	numLayers  uint16
}

type colrLayer struct {
	glyphID      uint16
	paletteIndex uint16
}

type colrColor struct {
	r, g, b, a uint8
}

// parseCOLR parses the raw COLR and CPAL tables. Both must be present;
// the engine probes for them before calling.
func parseCOLR(colrData, cpalData []byte) (*colrTable, error) {
	if len(colrData) < 14 {
		return nil, ErrInvalidCOLRData
	}
	version := binary.BigEndian.Uint16(colrData[0:2])
	if version > 1 {
		return nil, ErrInvalidCOLRData
	}
	numGlyphs := int(binary.BigEndian.Uint16(colrData[2:4]))
	baseGlyphOffset := int(binary.BigEndian.Uint32(colrData[4:8]))
	layerOffset := int(binary.BigEndian.Uint32(colrData[8:12]))
	numLayers := int(binary.BigEndian.Uint16(colrData[12:14]))

	t := &colrTable{
		baseGlyphs: make([]colrBaseGlyph, 0, numGlyphs),
		layers:     make([]colrLayer, 0, numLayers),
	}

	for i := 0; i < numGlyphs; i++ {
		pos := baseGlyphOffset + i*6
		if pos+6 > len(colrData) {
			return nil, ErrInvalidCOLRData
		}
		t.baseGlyphs = append(t.baseGlyphs, colrBaseGlyph{
			glyphID:    binary.BigEndian.Uint16(colrData[pos : pos+2]),
			firstLayer: binary.BigEndian.Uint16(colrData[pos+2 : pos+4]),
			numLayers:  binary.BigEndian.Uint16(colrData[pos+4 : pos+6]),
		})
	}
	for i := 0; i < numLayers; i++ {
		pos := layerOffset + i*4
		if pos+4 > len(colrData) {
			return nil, ErrInvalidCOLRData
		}
		t.layers = append(t.layers, colrLayer{
			glyphID:      binary.BigEndian.Uint16(colrData[pos : pos+2]),
			paletteIndex: binary.BigEndian.Uint16(colrData[pos+2 : pos+4]),
		})
	}

	if err := t.parseCPAL(cpalData); err != nil {
		return nil, err
	}
	return t, nil
}

// parseCPAL reads the first palette. CPAL stores colors as BGRA.
func (t *colrTable) parseCPAL(data []byte) error {
	if len(data) < 12 {
		return ErrInvalidCPALData
	}
	numEntries := int(binary.BigEndian.Uint16(data[2:4]))
	numPalettes := int(binary.BigEndian.Uint16(data[4:6]))
	colorRecordsOffset := int(binary.BigEndian.Uint32(data[8:12]))
	if numPalettes == 0 || 12+2 > len(data) {
		return ErrInvalidCPALData
	}
	firstOffset := int(binary.BigEndian.Uint16(data[12:14]))

	t.palette = make([]colrColor, numEntries)
	for j := 0; j < numEntries; j++ {
		pos := colorRecordsOffset + (firstOffset+j)*4
		if pos+4 > len(data) {
			return ErrInvalidCPALData
		}
		t.palette[j] = colrColor{
			b: data[pos],
			g: data[pos+1],
			r: data[pos+2],
			a: data[pos+3],
		}
	}
	return nil
}

// layersFor returns the color layers of gid bottom to top, or nil if
// gid has no COLR record. Base glyph records are sorted by glyph ID.
func (t *colrTable) layersFor(gid uint32) []Layer {
	if t == nil || gid > 0xFFFF {
		return nil
	}
	id := uint16(gid)
	lo, hi := 0, len(t.baseGlyphs)
	for lo < hi {
		mid := (lo + hi) / 2
		if t.baseGlyphs[mid].glyphID < id {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo >= len(t.baseGlyphs) || t.baseGlyphs[lo].glyphID != id {
		return nil
	}
	rec := t.baseGlyphs[lo]

	out := make([]Layer, 0, rec.numLayers)
	for i := 0; i < int(rec.numLayers); i++ {
		idx := int(rec.firstLayer) + i
		if idx >= len(t.layers) {
			return nil
		}
		l := t.layers[idx]
		layer := Layer{GID: uint32(l.glyphID)}
		if l.paletteIndex == foregroundPalette {
			layer.Foreground = true
		} else if int(l.paletteIndex) < len(t.palette) {
			c := t.palette[l.paletteIndex]
			layer.R, layer.G, layer.B, layer.A = c.r, c.g, c.b, c.a
		}
		out = append(out, layer)
	}
	return out
}
