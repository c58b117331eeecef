package shape

import (
	"encoding/binary"
	"errors"
	"sort"
	"testing"
)

// buildSFNT assembles a minimal sfnt blob from raw tables. The
// directory scan is linear, so entry order is irrelevant.
func buildSFNT(tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	dirSize := 12 + 16*len(tags)
	blob := make([]byte, dirSize)
	binary.BigEndian.PutUint32(blob[0:4], sfntVersionTrueType)
	binary.BigEndian.PutUint16(blob[4:6], uint16(len(tags)))

	offset := dirSize
	for i, tag := range tags {
		pos := 12 + 16*i
		copy(blob[pos:pos+4], tag)
		binary.BigEndian.PutUint32(blob[pos+8:pos+12], uint32(offset))
		binary.BigEndian.PutUint32(blob[pos+12:pos+16], uint32(len(tables[tag])))
		offset += len(tables[tag])
	}
	for _, tag := range tags {
		blob = append(blob, tables[tag]...)
	}
	return blob
}

// buildGPOS assembles a GPOS table whose lookup list holds count lookups.
func buildGPOS(count int) []byte {
	gpos := make([]byte, 12)
	binary.BigEndian.PutUint16(gpos[0:2], 1) // major
	binary.BigEndian.PutUint16(gpos[8:10], 10)
	binary.BigEndian.PutUint16(gpos[10:12], uint16(count))
	return gpos
}

func TestRawTable(t *testing.T) {
	blob := buildSFNT(map[string][]byte{
		"GPOS": buildGPOS(3),
		"head": {1, 2, 3, 4},
	})

	head, err := rawTable(blob, "head")
	if err != nil {
		t.Fatalf("rawTable(head): %v", err)
	}
	if len(head) != 4 || head[0] != 1 {
		t.Errorf("head = %v, want [1 2 3 4]", head)
	}

	if _, err := rawTable(blob, "COLR"); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("rawTable(COLR) err = %v, want ErrTableNotFound", err)
	}
	if _, err := rawTable([]byte{1, 2}, "head"); !errors.Is(err, ErrInvalidTableDirectory) {
		t.Errorf("truncated blob err = %v, want ErrInvalidTableDirectory", err)
	}
}

func TestGPOSLookupCount(t *testing.T) {
	tests := []struct {
		name  string
		blob  []byte
		want  int
		isErr bool
	}{
		{"seven lookups", buildSFNT(map[string][]byte{"GPOS": buildGPOS(7)}), 7, false},
		{"zero lookups", buildSFNT(map[string][]byte{"GPOS": buildGPOS(0)}), 0, false},
		{"no GPOS table", buildSFNT(map[string][]byte{"head": {0}}), 0, false},
		{"truncated GPOS", buildSFNT(map[string][]byte{"GPOS": {0, 1}}), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gposLookupCount(tt.blob)
			if tt.isErr != (err != nil) {
				t.Fatalf("err = %v, want error: %v", err, tt.isErr)
			}
			if got != tt.want {
				t.Errorf("count = %d, want %d", got, tt.want)
			}
		})
	}
}

// buildCOLR assembles a COLRv0 table with one base glyph (id 5) of two
// layers: glyph 10 in palette entry 0, glyph 11 in the foreground.
func buildCOLR() []byte {
	colr := make([]byte, 14+6+8)
	binary.BigEndian.PutUint16(colr[2:4], 1)   // numBaseGlyphs
	binary.BigEndian.PutUint32(colr[4:8], 14)  // baseGlyphOffset
	binary.BigEndian.PutUint32(colr[8:12], 20) // layerOffset
	binary.BigEndian.PutUint16(colr[12:14], 2) // numLayers
	binary.BigEndian.PutUint16(colr[14:16], 5)
	binary.BigEndian.PutUint16(colr[16:18], 0)
	binary.BigEndian.PutUint16(colr[18:20], 2)
	binary.BigEndian.PutUint16(colr[20:22], 10)
	binary.BigEndian.PutUint16(colr[22:24], 0)
	binary.BigEndian.PutUint16(colr[24:26], 11)
	binary.BigEndian.PutUint16(colr[26:28], foregroundPalette)
	return colr
}

// buildCPAL assembles a CPAL table with a single one-entry palette
// holding RGBA (0x10, 0x20, 0x30, 0xFF).
func buildCPAL() []byte {
	cpal := make([]byte, 14+4)
	binary.BigEndian.PutUint16(cpal[2:4], 1)   // numPaletteEntries
	binary.BigEndian.PutUint16(cpal[4:6], 1)   // numPalettes
	binary.BigEndian.PutUint16(cpal[6:8], 1)   // numColorRecords
	binary.BigEndian.PutUint32(cpal[8:12], 14) // colorRecordsOffset
	binary.BigEndian.PutUint16(cpal[12:14], 0) // palette 0 first index
	// BGRA on disk.
	cpal[14], cpal[15], cpal[16], cpal[17] = 0x30, 0x20, 0x10, 0xFF
	return cpal
}

func TestCOLRLayers(t *testing.T) {
	table, err := parseCOLR(buildCOLR(), buildCPAL())
	if err != nil {
		t.Fatalf("parseCOLR: %v", err)
	}

	layers := table.layersFor(5)
	if len(layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(layers))
	}
	if layers[0].GID != 10 || layers[0].Foreground {
		t.Errorf("layer 0 = %+v, want palette glyph 10", layers[0])
	}
	if layers[0].R != 0x10 || layers[0].G != 0x20 || layers[0].B != 0x30 || layers[0].A != 0xFF {
		t.Errorf("layer 0 color = %+v, want 10/20/30/FF", layers[0])
	}
	if layers[1].GID != 11 || !layers[1].Foreground {
		t.Errorf("layer 1 = %+v, want foreground glyph 11", layers[1])
	}

	if got := table.layersFor(6); got != nil {
		t.Errorf("layersFor(6) = %v, want nil", got)
	}
	var nilTable *colrTable
	if got := nilTable.layersFor(5); got != nil {
		t.Errorf("nil table layersFor = %v, want nil", got)
	}
}

func TestParseCOLRErrors(t *testing.T) {
	if _, err := parseCOLR([]byte{0, 0}, buildCPAL()); !errors.Is(err, ErrInvalidCOLRData) {
		t.Errorf("short COLR err = %v, want ErrInvalidCOLRData", err)
	}
	if _, err := parseCOLR(buildCOLR(), []byte{0}); !errors.Is(err, ErrInvalidCPALData) {
		t.Errorf("short CPAL err = %v, want ErrInvalidCPALData", err)
	}
}
