// Package ttf implements a minimal TrueType table parser sufficient to
// retrieve glyph outlines and horizontal metrics, without shaping,
// hinting, or hardening against malicious fonts beyond basic bounds
// checks.
package ttf

import (
	"encoding/binary"
	"errors"
)

var requiredTables = []string{"cmap", "glyf", "head", "hhea", "hmtx", "loca", "maxp", "OS/2"}

// ErrInvalidFont is returned by Parse for any structural failure: bad
// version, a missing required table, or a table whose declared
// offset+length falls outside the source bytes.
var ErrInvalidFont = errors.New("ttf: invalid font data")

// Face holds the parsed subset of a TrueType font needed to extract glyph
// outlines and horizontal metrics.
type Face struct {
	tables map[string][]byte

	unitsPerEm        int
	indexToLocFormat  int16
	numGlyphs         int
	numHMetrics       int
	typoAscender      int16
	typoDescender     int16

	loca []uint32
	cmap map[rune]uint16
}

// Parse validates and parses the table directory, copying the required
// tables' bytes out, then parses head/maxp/hhea/loca/cmap eagerly (glyf
// outlines are extracted lazily per glyph).
func Parse(data []byte) (*Face, error) {
	if len(data) < 12 {
		return nil, ErrInvalidFont
	}
	version := binary.BigEndian.Uint32(data[0:4])
	if version != 0x00010000 && version != 0x74727565 {
		return nil, ErrInvalidFont
	}
	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	if 12+numTables*16 > len(data) {
		return nil, ErrInvalidFont
	}

	tables := map[string][]byte{}
	for i := 0; i < numTables; i++ {
		rec := data[12+i*16 : 12+i*16+16]
		tag := string(rec[0:4])
		offset := binary.BigEndian.Uint32(rec[8:12])
		length := binary.BigEndian.Uint32(rec[12:16])
		if int(offset)+int(length) > len(data) || int(offset) < 0 {
			return nil, ErrInvalidFont
		}
		tables[tag] = append([]byte(nil), data[offset:offset+length]...)
	}
	for _, req := range requiredTables {
		if _, ok := tables[req]; !ok {
			return nil, ErrInvalidFont
		}
	}

	f := &Face{tables: tables}
	if err := f.parseHead(); err != nil {
		return nil, err
	}
	if err := f.parseMaxp(); err != nil {
		return nil, err
	}
	if err := f.parseHhea(); err != nil {
		return nil, err
	}
	if err := f.parseOS2(); err != nil {
		return nil, err
	}
	if err := f.parseLoca(); err != nil {
		return nil, err
	}
	f.parseCmap()
	return f, nil
}

func (f *Face) parseHead() error {
	t := f.tables["head"]
	if len(t) < 54 {
		return ErrInvalidFont
	}
	f.unitsPerEm = int(binary.BigEndian.Uint16(t[18:20]))
	f.indexToLocFormat = int16(binary.BigEndian.Uint16(t[50:52]))
	if f.unitsPerEm == 0 {
		return ErrInvalidFont
	}
	return nil
}

func (f *Face) parseMaxp() error {
	t := f.tables["maxp"]
	if len(t) < 6 {
		return ErrInvalidFont
	}
	f.numGlyphs = int(binary.BigEndian.Uint16(t[4:6]))
	return nil
}

func (f *Face) parseHhea() error {
	t := f.tables["hhea"]
	if len(t) < 36 {
		return ErrInvalidFont
	}
	f.numHMetrics = int(binary.BigEndian.Uint16(t[34:36]))
	return nil
}

func (f *Face) parseOS2() error {
	t := f.tables["OS/2"]
	if len(t) < 72 {
		return ErrInvalidFont
	}
	f.typoAscender = int16(binary.BigEndian.Uint16(t[68:70]))
	f.typoDescender = int16(binary.BigEndian.Uint16(t[70:72]))
	return nil
}

func (f *Face) parseLoca() error {
	t := f.tables["loca"]
	n := f.numGlyphs + 1
	f.loca = make([]uint32, n)
	if f.indexToLocFormat == 0 {
		if len(t) < n*2 {
			return ErrInvalidFont
		}
		for i := 0; i < n; i++ {
			f.loca[i] = uint32(binary.BigEndian.Uint16(t[i*2:i*2+2])) * 2
		}
	} else {
		if len(t) < n*4 {
			return ErrInvalidFont
		}
		for i := 0; i < n; i++ {
			f.loca[i] = binary.BigEndian.Uint32(t[i*4 : i*4+4])
		}
	}
	return nil
}

// UnitsPerEm returns the font's design grid resolution.
func (f *Face) UnitsPerEm() int { return f.unitsPerEm }

// TypoAscender returns OS/2.sTypoAscender.
func (f *Face) TypoAscender() int16 { return f.typoAscender }

// TypoDescender returns OS/2.sTypoDescender.
func (f *Face) TypoDescender() int16 { return f.typoDescender }

// Advance returns the glyph's horizontal advance width in font units.
func (f *Face) Advance(glyph uint16) int {
	t := f.tables["hmtx"]
	idx := int(glyph)
	if idx >= f.numHMetrics {
		idx = f.numHMetrics - 1
	}
	if idx < 0 || idx*4+2 > len(t) {
		return 0
	}
	return int(binary.BigEndian.Uint16(t[idx*4 : idx*4+2]))
}

// GlyphIndex maps a rune to a glyph index via the selected cmap sub-table,
// returning 0 (the missing-glyph index) if unmapped.
func (f *Face) GlyphIndex(r rune) uint16 {
	if g, ok := f.cmap[r]; ok {
		return g
	}
	return 0
}
