package shape

import (
	"encoding/binary"
	"errors"
)

// Raw table access errors.
var (
	// ErrInvalidTableDirectory indicates a malformed sfnt directory.
	ErrInvalidTableDirectory = errors.New("shape: invalid sfnt table directory")

	// ErrTableNotFound indicates the requested table is absent.
	ErrTableNotFound = errors.New("shape: table not found")

	// ErrInvalidGPOSData indicates a malformed GPOS table.
	ErrInvalidGPOSData = errors.New("shape: invalid GPOS table data")
)

const (
	sfntVersionTrueType = 0x00010000
	sfntVersionOpenType = 0x4F54544F // 'OTTO'
	sfntVersionTTC      = 0x74746366 // 'ttcf'
)

// rawTable returns the bytes of the named sfnt table, resolving a TTC
// header to its first face like the reference loader does.
func rawTable(fontData []byte, tag string) ([]byte, error) {
	if len(tag) != 4 {
		return nil, ErrTableNotFound
	}
	data := fontData
	if len(data) < 12 {
		return nil, ErrInvalidTableDirectory
	}

	base := 0
	if binary.BigEndian.Uint32(data[0:4]) == sfntVersionTTC {
		numFonts := binary.BigEndian.Uint32(data[8:12])
		if numFonts == 0 || len(data) < 16 {
			return nil, ErrInvalidTableDirectory
		}
		base = int(binary.BigEndian.Uint32(data[12:16]))
		if base < 0 || base+12 > len(data) {
			return nil, ErrInvalidTableDirectory
		}
	}

	version := binary.BigEndian.Uint32(data[base : base+4])
	if version != sfntVersionTrueType && version != sfntVersionOpenType {
		return nil, ErrInvalidTableDirectory
	}
	numTables := int(binary.BigEndian.Uint16(data[base+4 : base+6]))

	want := binary.BigEndian.Uint32([]byte(tag))
	for i := 0; i < numTables; i++ {
		pos := base + 12 + i*16
		if pos+16 > len(data) {
			return nil, ErrInvalidTableDirectory
		}
		if binary.BigEndian.Uint32(data[pos:pos+4]) != want {
			continue
		}
		offset := int(binary.BigEndian.Uint32(data[pos+8 : pos+12]))
		length := int(binary.BigEndian.Uint32(data[pos+12 : pos+16]))
		if offset < 0 || length < 0 || offset+length > len(data) {
			return nil, ErrInvalidTableDirectory
		}
		return data[offset : offset+length], nil
	}
	return nil, ErrTableNotFound
}

// gposLookupCount reads the number of lookups in the font's GPOS
// lookup list. Fonts without a GPOS table have zero lookups.
func gposLookupCount(fontData []byte) (int, error) {
	gpos, err := rawTable(fontData, "GPOS")
	if err != nil {
		if errors.Is(err, ErrTableNotFound) {
			return 0, nil
		}
		return 0, err
	}
	// GPOS header: major, minor, scriptListOffset, featureListOffset,
	// lookupListOffset, all uint16.
	if len(gpos) < 10 {
		return 0, ErrInvalidGPOSData
	}
	major := binary.BigEndian.Uint16(gpos[0:2])
	if major != 1 {
		return 0, ErrInvalidGPOSData
	}
	lookupListOffset := int(binary.BigEndian.Uint16(gpos[8:10]))
	if lookupListOffset == 0 {
		return 0, nil
	}
	if lookupListOffset+2 > len(gpos) {
		return 0, ErrInvalidGPOSData
	}
	return int(binary.BigEndian.Uint16(gpos[lookupListOffset : lookupListOffset+2])), nil
}
