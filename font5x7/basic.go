package font5x7

// basicEntries lists printable ASCII, Latin-1 and symbol glyphs in table
// order. Table position n (1-based) is basicEntries[n-1].
var basicEntries = []entry{
	{0x0021, Glyph{0x00, 0x00, 0x4F, 0x00, 0x00}}, // Exclamation Mark
	{0x0022, Glyph{0x00, 0x07, 0x00, 0x07, 0x00}}, // Quotation Mark
	{0x0023, Glyph{0x14, 0x7F, 0x14, 0x7F, 0x14}}, // Number Sign
	{0x0024, Glyph{0x24, 0x2A, 0x7F, 0x2A, 0x12}}, // Dollar Sign
	{0x0025, Glyph{0x23, 0x13, 0x08, 0x64, 0x62}}, // Percent Sign
	{0x0026, Glyph{0x36, 0x49, 0x55, 0x22, 0x50}}, // Ampersand
	{0x0027, Glyph{0x00, 0x05, 0x03, 0x00, 0x00}}, // Apostrophe
	{0x0028, Glyph{0x00, 0x1C, 0x22, 0x41, 0x00}}, // Left Parenthesis
	{0x0029, Glyph{0x00, 0x41, 0x22, 0x1C, 0x00}}, // Right Parenthesis
	{0x002A, Glyph{0x14, 0x08, 0x3E, 0x08, 0x14}}, // Asterisk
	{0x002B, Glyph{0x08, 0x08, 0x3E, 0x08, 0x08}}, // Plus Sign
	{0x002C, Glyph{0x00, 0x50, 0x30, 0x00, 0x00}}, // Comma
	{0x002D, Glyph{0x08, 0x08, 0x08, 0x08, 0x08}}, // Hyphen-Minus
	{0x002E, Glyph{0x00, 0x60, 0x60, 0x00, 0x00}}, // Full Stop
	{0x002F, Glyph{0x20, 0x10, 0x08, 0x04, 0x02}}, // Solidus
	{0x0030, Glyph{0x3E, 0x51, 0x49, 0x45, 0x3E}}, // Digit Zero
	{0x0031, Glyph{0x00, 0x42, 0x7F, 0x40, 0x00}}, // Digit One
	{0x0032, Glyph{0x42, 0x61, 0x51, 0x49, 0x46}}, // Digit Two
	{0x0033, Glyph{0x21, 0x41, 0x45, 0x4B, 0x31}}, // Digit Three
	{0x0034, Glyph{0x18, 0x14, 0x12, 0x7F, 0x10}}, // Digit Four
	{0x0035, Glyph{0x27, 0x45, 0x45, 0x45, 0x39}}, // Digit Five
	{0x0036, Glyph{0x3C, 0x4A, 0x49, 0x49, 0x30}}, // Digit Six
	{0x0037, Glyph{0x01, 0x71, 0x09, 0x05, 0x03}}, // Digit Seven
	{0x0038, Glyph{0x36, 0x49, 0x49, 0x49, 0x36}}, // Digit Eight
	{0x0039, Glyph{0x06, 0x49, 0x49, 0x29, 0x1E}}, // Dight Nine
	{0x003A, Glyph{0x00, 0x36, 0x36, 0x00, 0x00}}, // Colon
	{0x003B, Glyph{0x00, 0x56, 0x36, 0x00, 0x00}}, // Semicolon
	{0x003C, Glyph{0x08, 0x14, 0x22, 0x41, 0x00}}, // Less-Than Sign
	{0x003D, Glyph{0x14, 0x14, 0x14, 0x14, 0x14}}, // Equals Sign
	{0x003E, Glyph{0x00, 0x41, 0x22, 0x14, 0x08}}, // Greater-Than Sign
	{0x003F, Glyph{0x02, 0x01, 0x51, 0x09, 0x06}}, // Question Mark
	{0x0040, Glyph{0x32, 0x49, 0x79, 0x41, 0x3E}}, // Commercial At
	{0x0041, Glyph{0x7E, 0x11, 0x11, 0x11, 0x7E}}, // Latin Capital Letter A
	{0x0042, Glyph{0x7F, 0x49, 0x49, 0x49, 0x36}}, // Latin Capital Letter B
	{0x0043, Glyph{0x3E, 0x41, 0x41, 0x41, 0x22}}, // Latin Capital Letter C
	{0x0044, Glyph{0x7F, 0x41, 0x41, 0x22, 0x1C}}, // Latin Capital Letter D
	{0x0045, Glyph{0x7F, 0x49, 0x49, 0x49, 0x41}}, // Latin Capital Letter E
	{0x0046, Glyph{0x7F, 0x09, 0x09, 0x09, 0x01}}, // Latin Capital Letter F
	{0x0047, Glyph{0x3E, 0x41, 0x49, 0x49, 0x7A}}, // Latin Capital Letter G
	{0x0048, Glyph{0x7F, 0x08, 0x08, 0x08, 0x7F}}, // Latin Capital Letter H
	{0x0049, Glyph{0x00, 0x41, 0x7F, 0x41, 0x00}}, // Latin Capital Letter I
	{0x004A, Glyph{0x20, 0x40, 0x41, 0x3F, 0x01}}, // Latin Capital Letter J
	{0x004B, Glyph{0x7F, 0x08, 0x14, 0x22, 0x41}}, // Latin Capital Letter K
	{0x004C, Glyph{0x7F, 0x40, 0x40, 0x40, 0x40}}, // Latin Capital Letter L
	{0x004D, Glyph{0x7F, 0x02, 0x0C, 0x02, 0x7F}}, // Latin Capital Letter M
	{0x004E, Glyph{0x7F, 0x04, 0x08, 0x10, 0x7F}}, // Latin Capital Letter N
	{0x004F, Glyph{0x3E, 0x41, 0x41, 0x41, 0x3E}}, // Latin Capital Letter O
	{0x0050, Glyph{0x7F, 0x09, 0x09, 0x09, 0x06}}, // Latin Capital Letter P
	{0x0051, Glyph{0x3E, 0x41, 0x51, 0x21, 0x5E}}, // Latin Capital Letter Q
	{0x0052, Glyph{0x7F, 0x09, 0x19, 0x29, 0x46}}, // Latin Capital Letter R
	{0x0053, Glyph{0x46, 0x49, 0x49, 0x49, 0x31}}, // Latin Capital Letter S
	{0x0054, Glyph{0x01, 0x01, 0x7F, 0x01, 0x01}}, // Latin Capital Letter T
	{0x0055, Glyph{0x3F, 0x40, 0x40, 0x40, 0x3F}}, // Latin Capital Letter U
	{0x0056, Glyph{0x1F, 0x20, 0x40, 0x20, 0x1F}}, // Latin Capital Letter V
	{0x0057, Glyph{0x3F, 0x40, 0x38, 0x40, 0x3F}}, // Latin Capital Letter W
	{0x0058, Glyph{0x63, 0x14, 0x08, 0x14, 0x63}}, // Latin Capital Letter X
	{0x0059, Glyph{0x07, 0x08, 0x70, 0x08, 0x07}}, // Latin Capital Letter Y
	{0x005A, Glyph{0x61, 0x51, 0x49, 0x45, 0x43}}, // Latin Capital Letter Z
	{0x005B, Glyph{0x00, 0x7F, 0x41, 0x41, 0x00}}, // Left Square Bracket
	{0x005C, Glyph{0x02, 0x04, 0x08, 0x10, 0x20}}, // Reverse Solidus
	{0x005D, Glyph{0x00, 0x41, 0x41, 0x7F, 0x00}}, // Right Square Bracket
	{0x005E, Glyph{0x04, 0x02, 0x01, 0x02, 0x04}}, // Circumflex Accent
	{0x005F, Glyph{0x40, 0x40, 0x40, 0x40, 0x40}}, // Low Line
	{0x0060, Glyph{0x01, 0x02, 0x04, 0x00, 0x00}}, // Grave Accent
	{0x0061, Glyph{0x20, 0x54, 0x54, 0x54, 0x78}}, // Latin Small Letter A
	{0x0062, Glyph{0x7F, 0x48, 0x44, 0x44, 0x38}}, // Latin Small Letter B
	{0x0063, Glyph{0x38, 0x44, 0x44, 0x44, 0x20}}, // Latin Small Letter C
	{0x0064, Glyph{0x38, 0x44, 0x44, 0x48, 0x7F}}, // Latin Small Letter D
	{0x0065, Glyph{0x38, 0x54, 0x54, 0x54, 0x18}}, // Latin Small Letter E
	{0x0066, Glyph{0x08, 0x7E, 0x09, 0x01, 0x02}}, // Latin Small Letter F
	{0x0067, Glyph{0x06, 0x49, 0x49, 0x49, 0x3F}}, // Latin Small Letter G
	{0x0068, Glyph{0x7F, 0x08, 0x04, 0x04, 0x78}}, // Latin Small Letter H
	{0x0069, Glyph{0x00, 0x44, 0x7D, 0x40, 0x00}}, // Latin Small Letter I
	{0x006A, Glyph{0x20, 0x40, 0x44, 0x3D, 0x00}}, // Latin Small Letter J
	{0x006B, Glyph{0x7F, 0x10, 0x28, 0x44, 0x00}}, // Latin Small Letter K
	{0x006C, Glyph{0x00, 0x41, 0x7F, 0x40, 0x00}}, // Latin Small Letter L
	{0x006D, Glyph{0x7C, 0x04, 0x18, 0x04, 0x7C}}, // Latin Small Letter M
	{0x006E, Glyph{0x7C, 0x08, 0x04, 0x04, 0x78}}, // Latin Small Letter N
	{0x006F, Glyph{0x38, 0x44, 0x44, 0x44, 0x38}}, // Latin Small Letter O
	{0x0070, Glyph{0x7C, 0x14, 0x14, 0x14, 0x08}}, // Latin Small Letter P
	{0x0071, Glyph{0x08, 0x14, 0x14, 0x18, 0x7C}}, // Latin Small Letter Q
	{0x0072, Glyph{0x7C, 0x08, 0x04, 0x04, 0x08}}, // Latin Small Letter R
	{0x0073, Glyph{0x48, 0x54, 0x54, 0x54, 0x20}}, // Latin Small Letter S
	{0x0074, Glyph{0x04, 0x3F, 0x44, 0x40, 0x20}}, // Latin Small Letter T
	{0x0075, Glyph{0x3C, 0x40, 0x40, 0x20, 0x7C}}, // Latin Small Letter U
	{0x0076, Glyph{0x1C, 0x20, 0x40, 0x20, 0x1C}}, // Latin Small Letter V
	{0x0077, Glyph{0x3C, 0x40, 0x30, 0x40, 0x3C}}, // Latin Small Letter W
	{0x0078, Glyph{0x44, 0x28, 0x10, 0x28, 0x44}}, // Latin Small Letter X
	{0x0079, Glyph{0x0C, 0x50, 0x50, 0x50, 0x3C}}, // Latin Small Letter Y
	{0x007A, Glyph{0x44, 0x64, 0x54, 0x4C, 0x44}}, // Latin Small Letter Z
	{0x007B, Glyph{0x00, 0x08, 0x36, 0x41, 0x00}}, // Left Curly Bracket
	{0x007C, Glyph{0x00, 0x00, 0x7F, 0x00, 0x00}}, // Vertical Line
	{0x007D, Glyph{0x00, 0x41, 0x36, 0x08, 0x00}}, // Right Curly Bracket
	{0x007E, Glyph{0x02, 0x01, 0x02, 0x04, 0x02}}, // Tilde
	{0x0080, Glyph{0x3E, 0x55, 0x55, 0x41, 0x22}}, // <Control>
	{0x00A0, Glyph{0x00, 0x00, 0x00, 0x00, 0x00}}, // No-Break Space
	{0x00A1, Glyph{0x00, 0x00, 0x79, 0x00, 0x00}}, // Inverted Exclamation Mark
	{0x00A2, Glyph{0x18, 0x24, 0x74, 0x2E, 0x24}}, // Cent Sign
	{0x00A3, Glyph{0x48, 0x7E, 0x49, 0x42, 0x40}}, // Pound Sign
	{0x00A4, Glyph{0x5D, 0x22, 0x22, 0x22, 0x5D}}, // Currency Sign
	{0x00A5, Glyph{0x15, 0x16, 0x7C, 0x16, 0x15}}, // Yen Sign
	{0x00A6, Glyph{0x00, 0x00, 0x77, 0x00, 0x00}}, // Broken Bar
	{0x00A7, Glyph{0x0A, 0x55, 0x55, 0x55, 0x28}}, // Section Sign
	{0x00A8, Glyph{0x00, 0x01, 0x00, 0x01, 0x00}}, // Diaeresis
	{0x00AA, Glyph{0x00, 0x0A, 0x0D, 0x0A, 0x04}}, // Feminine Ordinal Indicator
	{0x00AB, Glyph{0x08, 0x14, 0x2A, 0x14, 0x22}}, // Left-Pointing Double Angle Quotation Mark
	{0x00AC, Glyph{0x04, 0x04, 0x04, 0x04, 0x1C}}, // Not Sign
	{0x00AD, Glyph{0x00, 0x08, 0x08, 0x08, 0x00}}, // Soft Hyphen
	{0x00AF, Glyph{0x01, 0x01, 0x01, 0x01, 0x01}}, // Macron
	{0x00B0, Glyph{0x00, 0x02, 0x05, 0x02, 0x00}}, // Degree Sign
	{0x00B1, Glyph{0x44, 0x44, 0x5F, 0x44, 0x44}}, // Plus-Minus Sign
	{0x00B4, Glyph{0x00, 0x00, 0x04, 0x02, 0x01}}, // Acute Accent
	{0x00B5, Glyph{0x7E, 0x20, 0x20, 0x10, 0x3E}}, // Micro Sign
	{0x00B6, Glyph{0x06, 0x0F, 0x7F, 0x00, 0x7F}}, // Pilcrow Sign
	{0x00B7, Glyph{0x00, 0x18, 0x18, 0x00, 0x00}}, // Middle Dot
	{0x00B8, Glyph{0x00, 0x40, 0x50, 0x20, 0x00}}, // Cedilla
	{0x00BA, Glyph{0x00, 0x0A, 0x0D, 0x0A, 0x00}}, // Masculine Ordinal Indicator
	{0x00BB, Glyph{0x22, 0x14, 0x2A, 0x14, 0x08}}, // Right-Pointing Double Angle Quotation Mark
	{0x00BC, Glyph{0x17, 0x08, 0x34, 0x2A, 0x7D}}, // Vulgar Fraction One Quarter
	{0x00BD, Glyph{0x17, 0x08, 0x04, 0x6A, 0x59}}, // Vulgar Fraction One Half
	{0x00BF, Glyph{0x30, 0x48, 0x45, 0x40, 0x20}}, // Inverted Question Mark
	{0x00C0, Glyph{0x70, 0x29, 0x26, 0x28, 0x70}}, // Latin Capital Letter A with Grave
	{0x00C1, Glyph{0x70, 0x28, 0x26, 0x29, 0x70}}, // Latin Capital Letter A with Acute
	{0x00C2, Glyph{0x70, 0x2A, 0x25, 0x2A, 0x70}}, // Latin Capital Letter A with Circumflex
	{0x00C3, Glyph{0x72, 0x29, 0x26, 0x29, 0x70}}, // Latin Capital Letter A with Tilde
	{0x00C4, Glyph{0x70, 0x29, 0x24, 0x29, 0x70}}, // Latin Capital Letter A with Diaeresis
	{0x00C5, Glyph{0x70, 0x2A, 0x2D, 0x2A, 0x70}}, // Latin Capital Letter A with Ring Above
	{0x00C6, Glyph{0x7E, 0x11, 0x7F, 0x49, 0x49}}, // Latin Capital Letter Ae
	{0x00C7, Glyph{0x0E, 0x51, 0x51, 0x71, 0x11}}, // Latin Capital Letter C with Cedilla
	{0x00C8, Glyph{0x7C, 0x55, 0x56, 0x54, 0x44}}, // Latin Capital Letter E with Grave
	{0x00C9, Glyph{0x7C, 0x55, 0x56, 0x54, 0x44}}, // Latin Capital Letter E with Acute
	{0x00CA, Glyph{0x7C, 0x56, 0x55, 0x56, 0x44}}, // Latin Capital Letter E with Circumflex
	{0x00CB, Glyph{0x7C, 0x55, 0x54, 0x55, 0x44}}, // Latin Capital Letter E with Diaeresis
	{0x00CC, Glyph{0x00, 0x45, 0x7E, 0x44, 0x00}}, // Latin Capital Letter I with Grave
	{0x00CD, Glyph{0x00, 0x44, 0x7E, 0x45, 0x00}}, // Latin Capital Letter I with Acute
	{0x00CE, Glyph{0x00, 0x46, 0x7D, 0x46, 0x00}}, // Latin Capital Letter I with Circumflex
	{0x00CF, Glyph{0x00, 0x45, 0x7C, 0x45, 0x00}}, // Latin Capital Letter I with Diaeresis
	{0x00D0, Glyph{0x7F, 0x49, 0x49, 0x41, 0x3E}}, // Latin Capital Letter Eth
	{0x00D1, Glyph{0x7C, 0x0A, 0x11, 0x22, 0x7D}}, // Latin Capital Letter N with Tilde
	{0x00D2, Glyph{0x38, 0x45, 0x46, 0x44, 0x38}}, // Latin Capital Letter O with Grave
	{0x00D3, Glyph{0x38, 0x44, 0x46, 0x45, 0x38}}, // Latin Capital Letter O with Acute
	{0x00D4, Glyph{0x38, 0x46, 0x45, 0x46, 0x38}}, // Latin Capital Letter O with Circumflex
	{0x00D5, Glyph{0x38, 0x46, 0x45, 0x46, 0x39}}, // Latin Capital Letter O with Tilde
	{0x00D6, Glyph{0x38, 0x45, 0x44, 0x45, 0x38}}, // Latin Capital Letter O with Diaeresis
	{0x00D7, Glyph{0x22, 0x14, 0x08, 0x14, 0x22}}, // Multiplcation Sign
	{0x00D8, Glyph{0x2E, 0x51, 0x49, 0x45, 0x3A}}, // Latin Capital Letter O with Stroke
	{0x00D9, Glyph{0x3C, 0x41, 0x42, 0x40, 0x3C}}, // Latin Capital Letter U with Grave
	{0x00DA, Glyph{0x3C, 0x40, 0x42, 0x41, 0x3C}}, // Latin Capital Letter U with Acute
	{0x00DB, Glyph{0x3C, 0x42, 0x41, 0x42, 0x3C}}, // Latin Capital Letter U with Circumflex
	{0x00DC, Glyph{0x3C, 0x41, 0x40, 0x41, 0x3C}}, // Latin Capital Letter U with Diaeresis
	{0x00DD, Glyph{0x0C, 0x10, 0x62, 0x11, 0x0C}}, // Latin Capital Letter Y with Acute
	{0x00DE, Glyph{0x7F, 0x12, 0x12, 0x12, 0x0C}}, // Latin Capital Letter Thom
	{0x00DF, Glyph{0x40, 0x3E, 0x01, 0x49, 0x36}}, // Latin Small Letter Sharp S
	{0x00E0, Glyph{0x20, 0x55, 0x56, 0x54, 0x78}}, // Latin Small Letter A with Grave
	{0x00E1, Glyph{0x20, 0x54, 0x56, 0x55, 0x78}}, // Latin Small Letter A with Acute
	{0x00E2, Glyph{0x20, 0x56, 0x55, 0x56, 0x78}}, // Latin Small Letter A with Circumflex
	{0x00E3, Glyph{0x20, 0x55, 0x56, 0x55, 0x78}}, // Latin Small Letter A with Tilde
	{0x00E4, Glyph{0x20, 0x55, 0x54, 0x55, 0x78}}, // Latin Small Letter A with Diaeresis
	{0x00E5, Glyph{0x20, 0x56, 0x57, 0x56, 0x78}}, // Latin Small Letter A with Ring Above
	{0x00E6, Glyph{0x24, 0x54, 0x78, 0x54, 0x58}}, // Latin Small Letter Ae
	{0x00E7, Glyph{0x0C, 0x52, 0x52, 0x72, 0x13}}, // Latin Small Letter c with Cedilla
	{0x00E8, Glyph{0x38, 0x55, 0x56, 0x54, 0x18}}, // Latin Small Letter E with Grave
	{0x00E9, Glyph{0x38, 0x54, 0x56, 0x55, 0x18}}, // Latin Small Letter E with Acute
	{0x00EA, Glyph{0x38, 0x56, 0x55, 0x56, 0x18}}, // Latin Small Letter E with Circumflex
	{0x00EB, Glyph{0x38, 0x55, 0x54, 0x55, 0x18}}, // Latin Small Letter E with Diaeresis
	{0x00EC, Glyph{0x00, 0x49, 0x7A, 0x40, 0x00}}, // Latin Small Letter I with Grave
	{0x00ED, Glyph{0x00, 0x48, 0x7A, 0x41, 0x00}}, // Latin Small Letter I with Acute
	{0x00EE, Glyph{0x00, 0x4A, 0x79, 0x42, 0x00}}, // Latin Small Letter I with Circumflex
	{0x00EF, Glyph{0x00, 0x4A, 0x78, 0x42, 0x00}}, // Latin Small Letter I with Diaeresis
	{0x00F0, Glyph{0x31, 0x4A, 0x4E, 0x4A, 0x30}}, // Latin Small Letter Eth
	{0x00F1, Glyph{0x7A, 0x11, 0x0A, 0x09, 0x70}}, // Latin Small Letter N with Tilde
	{0x00F2, Glyph{0x30, 0x49, 0x4A, 0x48, 0x30}}, // Latin Small Letter O with Grave
	{0x00F3, Glyph{0x30, 0x48, 0x4A, 0x49, 0x30}}, // Latin Small Letter O with Acute
	{0x00F4, Glyph{0x30, 0x4A, 0x49, 0x4A, 0x30}}, // Latin Small Letter O with Circumflex
	{0x00F5, Glyph{0x30, 0x4A, 0x49, 0x4A, 0x31}}, // Latin Small Letter O with Tilde
	{0x00F6, Glyph{0x30, 0x4A, 0x48, 0x4A, 0x30}}, // Latin Small Letter O with Diaeresis
	{0x00F7, Glyph{0x08, 0x08, 0x2A, 0x08, 0x08}}, // Division Sign
	{0x00F8, Glyph{0x38, 0x64, 0x54, 0x4C, 0x38}}, // Latin Small Letter O with Stroke
	{0x00F9, Glyph{0x38, 0x41, 0x42, 0x20, 0x78}}, // Latin Small Letter U with Grave
	{0x00FA, Glyph{0x38, 0x40, 0x42, 0x21, 0x78}}, // Latin Small Letter U with Acute
	{0x00FB, Glyph{0x38, 0x42, 0x41, 0x22, 0x78}}, // Latin Small Letter U with Circumflex
	{0x00FC, Glyph{0x38, 0x42, 0x40, 0x22, 0x78}}, // Latin Small Letter U with Diaeresis
	{0x00FD, Glyph{0x0C, 0x50, 0x52, 0x51, 0x3C}}, // Latin Small Letter Y with Acute
	{0x00FE, Glyph{0x7E, 0x14, 0x14, 0x14, 0x08}}, // Latin Small Letter Thom
	{0x00FF, Glyph{0x0C, 0x51, 0x50, 0x51, 0x3C}}, // Latin Small Letter Y with Diaeresis
	{0x0104, Glyph{0x1E, 0x09, 0x09, 0x29, 0x5E}}, // Latin Capital Letter A with Ogonek
	{0x0105, Glyph{0x08, 0x15, 0x15, 0x35, 0x4E}}, // Latin Small Letter A with Ogonek
	{0x0106, Glyph{0x38, 0x44, 0x46, 0x45, 0x20}}, // Latin Capital Letter C with Acute
	{0x0107, Glyph{0x30, 0x48, 0x4A, 0x49, 0x20}}, // Latin Small Letter C with Acute
	{0x010C, Glyph{0x38, 0x45, 0x46, 0x45, 0x20}}, // Latin Capital Letter C with Caron
	{0x010D, Glyph{0x30, 0x49, 0x4A, 0x49, 0x20}}, // Latin Small Letter C with Caron
	{0x010E, Glyph{0x7C, 0x45, 0x46, 0x45, 0x38}}, // Latin Capital Letter D with Caron
	{0x010F, Glyph{0x20, 0x50, 0x50, 0x7C, 0x03}}, // Latin Small Letter D with Caron
	{0x0118, Glyph{0x1F, 0x15, 0x15, 0x35, 0x51}}, // Latin Capital Letter E with Ogonek
	{0x0119, Glyph{0x0E, 0x15, 0x15, 0x35, 0x46}}, // Latin Small Letter E with Ogonek
	{0x011A, Glyph{0x7C, 0x55, 0x56, 0x55, 0x44}}, // Latin Capital Letter E with Caron
	{0x011B, Glyph{0x38, 0x55, 0x56, 0x55, 0x18}}, // Latin Small Letter E with Caron
	{0x0131, Glyph{0x00, 0x44, 0x7C, 0x40, 0x00}}, // Latin Small Letter Dotless I
	{0x0141, Glyph{0x7F, 0x48, 0x44, 0x40, 0x40}}, // Latin Capital Letter L with Stroke
	{0x0142, Glyph{0x00, 0x49, 0x7F, 0x44, 0x00}}, // Latin Small Letter L with Stroke
	{0x0143, Glyph{0x7C, 0x08, 0x12, 0x21, 0x7C}}, // Latin Capital Letter N with Acute
	{0x0144, Glyph{0x78, 0x10, 0x0A, 0x09, 0x70}}, // Latin Small Letter N with Acute
	{0x0147, Glyph{0x7C, 0x09, 0x12, 0x21, 0x7C}}, // Latin Capital Letter N with Caron
	{0x0148, Glyph{0x78, 0x11, 0x0A, 0x09, 0x70}}, // Latin Small Letter N with Caron
	{0x0150, Glyph{0x38, 0x47, 0x44, 0x47, 0x38}}, // Latin Capital Letter O with Double Acute
	{0x0151, Glyph{0x30, 0x4B, 0x48, 0x4B, 0x30}}, // Latin Small Letter O with Double Acute
	{0x0152, Glyph{0x3E, 0x41, 0x7F, 0x49, 0x49}}, // Latin Capital Ligature Oe
	{0x0153, Glyph{0x38, 0x44, 0x38, 0x54, 0x58}}, // Latin Small Ligature Oe
	{0x0158, Glyph{0x7C, 0x15, 0x16, 0x35, 0x48}}, // Latin Capital Letter R with Caron
	{0x0159, Glyph{0x78, 0x11, 0x0A, 0x09, 0x10}}, // Latin Small Letter R with Caron
	{0x015A, Glyph{0x48, 0x54, 0x56, 0x55, 0x20}}, // Latin Capital Letter S with Acute
	{0x015B, Glyph{0x20, 0x48, 0x56, 0x55, 0x20}}, // Latin Small Letter S with Acute
	{0x0160, Glyph{0x48, 0x55, 0x56, 0x55, 0x20}}, // Latin Capital Letter S with Caron
	{0x0161, Glyph{0x20, 0x49, 0x56, 0x55, 0x20}}, // Latin Small Letter S with Caron
	{0x0164, Glyph{0x04, 0x05, 0x7E, 0x05, 0x04}}, // Latin Capital Letter T with Caron
	{0x0165, Glyph{0x08, 0x3C, 0x48, 0x22, 0x01}}, // Latin Small Letter T with Caron
	{0x016E, Glyph{0x3C, 0x42, 0x45, 0x42, 0x3C}}, // Latin Capital Letter U with Ring Above
	{0x016F, Glyph{0x38, 0x42, 0x45, 0x22, 0x78}}, // Latin Small Letter U with Ring Above
	{0x0170, Glyph{0x3C, 0x43, 0x40, 0x43, 0x3C}}, // Latin Capital Letter U with Double Acute
	{0x0171, Glyph{0x38, 0x43, 0x40, 0x23, 0x78}}, // Latin Small Letter U with Double Acute
	{0x0178, Glyph{0x0C, 0x11, 0x60, 0x11, 0x0C}}, // Latin Capital Letter Y with Diaeresis
	{0x0179, Glyph{0x44, 0x66, 0x55, 0x4C, 0x44}}, // Latin Capital Letter Z with Acute
	{0x017A, Glyph{0x48, 0x6A, 0x59, 0x48, 0x00}}, // Latin Small Letter Z with Acute
	{0x017B, Glyph{0x44, 0x64, 0x55, 0x4C, 0x44}}, // Latin Capital Letter Z with Dot Above
	{0x017C, Glyph{0x48, 0x68, 0x5A, 0x48, 0x00}}, // Latin Small Letter Z with Dot Above
	{0x017D, Glyph{0x44, 0x65, 0x56, 0x4D, 0x44}}, // Latin Capital Letter Z with Caron
	{0x017E, Glyph{0x48, 0x69, 0x5A, 0x49, 0x00}}, // Latin Small Letter Z with Caron
	{0x02C6, Glyph{0x00, 0x02, 0x01, 0x02, 0x00}}, // Modifier Letter Circumflex Accent
	{0x02C7, Glyph{0x00, 0x01, 0x02, 0x01, 0x00}}, // Caron
	{0x02C9, Glyph{0x00, 0x01, 0x01, 0x01, 0x00}}, // Modifier Letter Macron
	{0x02D8, Glyph{0x01, 0x02, 0x02, 0x01, 0x00}}, // Breve
	{0x02D9, Glyph{0x00, 0x00, 0x01, 0x00, 0x00}}, // Dot Above
	{0x02DA, Glyph{0x00, 0x02, 0x05, 0x02, 0x00}}, // Ring Above
	{0x02DC, Glyph{0x02, 0x01, 0x02, 0x01, 0x00}}, // Small Tilde
	{0x20A7, Glyph{0x7F, 0x05, 0x15, 0x3A, 0x50}}, // Peseta Sign
	{0x20AC, Glyph{0x3E, 0x55, 0x55, 0x41, 0x22}}, // Euro Sign
	{0x221E, Glyph{0x18, 0x14, 0x08, 0x14, 0x0C}}, // Infinity
	{0x2264, Glyph{0x44, 0x4A, 0x4A, 0x51, 0x51}}, // Less-Than or Equal to
	{0x2265, Glyph{0x51, 0x51, 0x4A, 0x4A, 0x44}}, // Greater-Than or Equal to
	{0x2302, Glyph{0x74, 0x42, 0x41, 0x42, 0x74}}, // House
}
