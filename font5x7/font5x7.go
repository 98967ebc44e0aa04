package font5x7

import "fmt"

// Width is the number of pixel columns in a glyph.
const Width = 5

// NoBreakSpace is the code of the blank glyph in Basic.
const NoBreakSpace = 96

// Glyph is the bitmap of one character, one byte per column.
type Glyph [Width]byte

// entry binds a glyph to the Unicode character it draws.
type entry struct {
	r rune
	g Glyph
}

// Font is a read-only glyph table.
type Font struct {
	name    string
	entries []entry
	index   map[rune]byte
}

var (
	// Basic is the printable ASCII / Latin-1 table.
	Basic = newFont("basic", basicEntries)
	// Extended is the Greek / Katakana table.
	Extended = newFont("extended", extendedEntries)
)

func newFont(name string, entries []entry) *Font {
	if len(entries) > 255 {
		panic("font5x7: table " + name + " exceeds 255 glyphs")
	}
	f := &Font{
		name:    name,
		entries: entries,
		index:   make(map[rune]byte, len(entries)),
	}
	for i, e := range entries {
		f.index[e.r] = byte(i + 1)
	}
	return f
}

// Len returns the number of glyphs in the table.
func (f *Font) Len() int {
	return len(f.entries)
}

// Glyph returns the glyph at table position code (1-based).
func (f *Font) Glyph(code byte) (Glyph, bool) {
	if code == 0 || int(code) > len(f.entries) {
		return Glyph{}, false
	}
	return f.entries[code-1].g, true
}

// Encode returns the table position of the glyph drawing r.
//
// The tables carry no plain space, so U+0020 is drawn with the no-break space
// glyph when the table has one.
func (f *Font) Encode(r rune) (byte, bool) {
	if c, ok := f.index[r]; ok {
		return c, true
	}
	if r == ' ' {
		c, ok := f.index['\u00a0']
		return c, ok
	}
	return 0, false
}

// Rune returns the Unicode character drawn by the glyph at code.
func (f *Font) Rune(code byte) (rune, bool) {
	if code == 0 || int(code) > len(f.entries) {
		return 0, false
	}
	return f.entries[code-1].r, true
}

// String returns a string representation of the font.
func (f *Font) String() string {
	return fmt.Sprintf("font5x7.Font{%s, %d glyphs}", f.name, len(f.entries))
}
