// Package font5x7 provides the fixed 5x7 glyph tables used by the SSD1306 text
// renderer.
//
// A glyph is 5 columns wide. Each column is one byte holding a vertical run of
// 8 pixels with the least significant bit at the top, which is the same layout
// the SSD1306 uses for one page of display RAM:
//
//	Glyph 'A' (Basic, code 33):
//
//	bit   col0 col1 col2 col3 col4
//	 0     .    #    #    #    .
//	 1     #    .    .    .    #
//	 2     #    .    .    .    #
//	 3     #    .    .    .    #
//	 4     #    #    #    #    #
//	 5     #    .    .    .    #
//	 6     #    .    .    .    #
//	 7     .    .    .    .    .
//
// Two tables are available:
//
// - Basic: printable ASCII, Latin-1 supplement and a handful of symbols (240 glyphs)
// - Extended: Greek letters and half-width Katakana (107 glyphs)
//
// Glyphs are addressed by their 1-based table position ("code"). Encode maps a
// Unicode character to its code in a given table:
//
//	code, ok := font5x7.Basic.Encode('A') // 33, true
//	g, ok := font5x7.Basic.Glyph(code)
package font5x7
