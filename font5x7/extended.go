package font5x7

// extendedEntries lists the Greek and half-width Katakana glyphs in table
// order.
var extendedEntries = []entry{
	{0x0391, Glyph{0x7E, 0x11, 0x11, 0x11, 0x7E}}, // Greek Capital Letter Alpha
	{0x0392, Glyph{0x7F, 0x49, 0x49, 0x49, 0x36}}, // Greek Capital Letter Beta
	{0x0393, Glyph{0x7F, 0x02, 0x01, 0x01, 0x03}}, // Greek Capital Letter Gamma
	{0x0394, Glyph{0x70, 0x4E, 0x41, 0x4E, 0x70}}, // Greek Capital Letter Delta
	{0x0395, Glyph{0x7F, 0x49, 0x49, 0x49, 0x41}}, // Greek Capital Letter Epsilon
	{0x0396, Glyph{0x61, 0x51, 0x49, 0x45, 0x43}}, // Greek Capital Letter Zeta
	{0x0397, Glyph{0x7F, 0x08, 0x08, 0x08, 0x7F}}, // Greek Capital Letter Eta
	{0x0398, Glyph{0x3E, 0x49, 0x49, 0x49, 0x3E}}, // Greek Capital Letter Theta
	{0x0399, Glyph{0x00, 0x41, 0x7F, 0x41, 0x00}}, // Greek Capital Letter Iota
	{0x039A, Glyph{0x7F, 0x08, 0x14, 0x22, 0x41}}, // Greek Capital Letter Kappa
	{0x039B, Glyph{0x70, 0x0E, 0x01, 0x0E, 0x70}}, // Greek Capital Letter Lamda
	{0x039C, Glyph{0x7F, 0x02, 0x0C, 0x02, 0x7F}}, // Greek Capital Letter Mu
	{0x039D, Glyph{0x7F, 0x04, 0x08, 0x10, 0x7F}}, // Greek Capital Letter Nu
	{0x039E, Glyph{0x63, 0x5D, 0x49, 0x5D, 0x63}}, // Greek Capital Letter Xi
	{0x039F, Glyph{0x3E, 0x41, 0x41, 0x41, 0x3E}}, // Greek Capital Letter Omicron
	{0x03A0, Glyph{0x41, 0x3F, 0x01, 0x3F, 0x41}}, // Greek Capital Letter Pi
	{0x03A1, Glyph{0x7F, 0x09, 0x09, 0x09, 0x06}}, // Greek Capital Letter Rho
	{0x03A3, Glyph{0x63, 0x55, 0x49, 0x41, 0x41}}, // Greek Capital Letter Sigma
	{0x03A4, Glyph{0x01, 0x01, 0x7F, 0x01, 0x01}}, // Greek Capital Letter Tau
	{0x03A5, Glyph{0x03, 0x01, 0x7E, 0x01, 0x03}}, // Greek Capital Letter Upsilon
	{0x03A6, Glyph{0x08, 0x55, 0x7F, 0x55, 0x08}}, // Greek Capital Letter Phi
	{0x03A7, Glyph{0x63, 0x14, 0x08, 0x14, 0x63}}, // Greek Capital Letter Chi
	{0x03A8, Glyph{0x07, 0x48, 0x7F, 0x48, 0x07}}, // Greek Capital Letter Psi
	{0x03A9, Glyph{0x5E, 0x61, 0x01, 0x61, 0x5E}}, // Greek Capital Letter Omega
	{0x03B1, Glyph{0x38, 0x44, 0x48, 0x30, 0x4C}}, // Greek Small Letter Alpha
	{0x03B2, Glyph{0x7C, 0x2A, 0x2A, 0x2A, 0x14}}, // Greek Small Letter Beta
	{0x03B3, Glyph{0x44, 0x38, 0x04, 0x04, 0x08}}, // Greek Small Letter Gamma
	{0x03B4, Glyph{0x30, 0x4B, 0x4D, 0x59, 0x30}}, // Greek Small Letter Delta
	{0x03B5, Glyph{0x28, 0x54, 0x54, 0x44, 0x20}}, // Greek Small Letter Epsilon
	{0x03B6, Glyph{0x00, 0x18, 0x55, 0x52, 0x22}}, // Greek Small Letter Zeta
	{0x03B7, Glyph{0x3E, 0x04, 0x02, 0x02, 0x7C}}, // Greek Small Letter Eta
	{0x03B8, Glyph{0x3C, 0x4A, 0x4A, 0x4A, 0x3C}}, // Greek Small Letter Theta
	{0x03B9, Glyph{0x00, 0x3C, 0x40, 0x20, 0x00}}, // Greek Small Letter Iota
	{0x03BA, Glyph{0x7C, 0x10, 0x28, 0x44, 0x40}}, // Greek Small Letter Kappa
	{0x03BB, Glyph{0x41, 0x32, 0x0C, 0x30, 0x40}}, // Greek Small Letter Lamda
	{0x03BC, Glyph{0x7E, 0x20, 0x20, 0x10, 0x3E}}, // Greek Small Letter Mu
	{0x03BD, Glyph{0x1C, 0x20, 0x40, 0x20, 0x1C}}, // Greek Small Letter Nu
	{0x03BE, Glyph{0x14, 0x2B, 0x2A, 0x2A, 0x60}}, // Greek Small Letter Xi
	{0x03BF, Glyph{0x38, 0x44, 0x44, 0x44, 0x38}}, // Greek Small Letter Omicron
	{0x03C0, Glyph{0x44, 0x3C, 0x04, 0x7C, 0x44}}, // Greek Small Letter Pi
	{0x03C1, Glyph{0x70, 0x28, 0x24, 0x24, 0x18}}, // Greek Small Letter Rho
	{0x03C2, Glyph{0x0C, 0x12, 0x12, 0x52, 0x60}}, // Greek Small Letter Final Sigma
	{0x03C3, Glyph{0x38, 0x44, 0x4C, 0x54, 0x24}}, // Greek Small Letter Sigma
	{0x03C4, Glyph{0x04, 0x3C, 0x44, 0x20, 0x00}}, // Greek Small Letter Tau
	{0x03C5, Glyph{0x3C, 0x40, 0x40, 0x20, 0x1C}}, // Greek Small Letter Upsilon
	{0x03C6, Glyph{0x18, 0x24, 0x7E, 0x24, 0x18}}, // Greek Small Letter Phi
	{0x03C7, Glyph{0x44, 0x28, 0x10, 0x28, 0x44}}, // Greek Small Letter Chi
	{0x03C8, Glyph{0x0C, 0x10, 0x7E, 0x10, 0x0C}}, // Greek Small Letter Psi
	{0x03C9, Glyph{0x38, 0x44, 0x30, 0x44, 0x38}}, // Greek Small Letter Omega
	{0xFF66, Glyph{0x0A, 0x0A, 0x4A, 0x2A, 0x1E}}, // Katakana Letter Wo
	{0xFF67, Glyph{0x04, 0x44, 0x34, 0x14, 0x0C}}, // Katakana Letter Small A
	{0xFF68, Glyph{0x20, 0x10, 0x78, 0x04, 0x00}}, // Katakana Letter Small I
	{0xFF69, Glyph{0x18, 0x08, 0x4C, 0x48, 0x38}}, // Katakana Letter Small U
	{0xFF6A, Glyph{0x48, 0x48, 0x78, 0x48, 0x48}}, // Katakana Letter Small E
	{0xFF6B, Glyph{0x48, 0x28, 0x18, 0x7C, 0x08}}, // Katakana Letter Small O
	{0xFF6C, Glyph{0x08, 0x7C, 0x08, 0x28, 0x18}}, // Katakana Letter Small Ya
	{0xFF6D, Glyph{0x40, 0x48, 0x48, 0x78, 0x40}}, // Katakana Letter Small Yu
	{0xFF6E, Glyph{0x54, 0x54, 0x54, 0x7C, 0x00}}, // Katakana Letter Small Yo
	{0xFF6F, Glyph{0x18, 0x00, 0x58, 0x40, 0x38}}, // Katakana Letter Small Tu
	{0xFF70, Glyph{0x08, 0x08, 0x08, 0x08, 0x08}}, // Katakana-Hiragana Prolonged Sound Mark
	{0xFF71, Glyph{0x01, 0x41, 0x3D, 0x09, 0x07}}, // Katakana Letter A
	{0xFF72, Glyph{0x10, 0x08, 0x7C, 0x02, 0x01}}, // Katakana Letter I
	{0xFF73, Glyph{0x0E, 0x02, 0x43, 0x22, 0x1E}}, // Katakana Letter U
	{0xFF74, Glyph{0x42, 0x42, 0x7E, 0x42, 0x42}}, // Katakana Letter E
	{0xFF75, Glyph{0x22, 0x12, 0x0A, 0x7F, 0x02}}, // Katakana Letter O
	{0xFF76, Glyph{0x42, 0x3F, 0x02, 0x42, 0x3E}}, // Katakana Letter Ka
	{0xFF77, Glyph{0x0A, 0x0A, 0x7F, 0x0A, 0x0A}}, // Katakana Letter Ki
	{0xFF78, Glyph{0x08, 0x46, 0x42, 0x22, 0x1E}}, // Katakana Letter Ku
	{0xFF79, Glyph{0x04, 0x03, 0x42, 0x3E, 0x02}}, // Katakana Letter Ke
	{0xFF7A, Glyph{0x42, 0x42, 0x42, 0x42, 0x7E}}, // Katakana Letter Ko
	{0xFF7B, Glyph{0x02, 0x4F, 0x22, 0x1F, 0x02}}, // Katakana Letter Sa
	{0xFF7C, Glyph{0x4A, 0x4A, 0x40, 0x20, 0x1C}}, // Katakana Letter Shi
	{0xFF7D, Glyph{0x42, 0x22, 0x12, 0x2A, 0x46}}, // Katakana Letter Su
	{0xFF7E, Glyph{0x02, 0x3F, 0x42, 0x4A, 0x46}}, // Katakana Letter Se
	{0xFF7F, Glyph{0x06, 0x48, 0x40, 0x20, 0x1E}}, // Katakana Letter So
	{0xFF80, Glyph{0x08, 0x46, 0x4A, 0x32, 0x1E}}, // Katakana Letter Ta
	{0xFF81, Glyph{0x0A, 0x4A, 0x3E, 0x09, 0x08}}, // Katakana Letter Chi
	{0xFF82, Glyph{0x0E, 0x00, 0x4E, 0x20, 0x1E}}, // Katakana Letter Tsu
	{0xFF83, Glyph{0x04, 0x45, 0x3D, 0x05, 0x04}}, // Katakana Letter Te
	{0xFF84, Glyph{0x00, 0x7F, 0x08, 0x10, 0x00}}, // Katakana Letter To
	{0xFF85, Glyph{0x44, 0x24, 0x1F, 0x04, 0x04}}, // Katakana Letter Na
	{0xFF86, Glyph{0x40, 0x42, 0x42, 0x42, 0x40}}, // Katakana Letter Ni
	{0xFF87, Glyph{0x42, 0x2A, 0x12, 0x2A, 0x06}}, // Katakana Letter Nu
	{0xFF88, Glyph{0x22, 0x12, 0x7B, 0x16, 0x22}}, // Katakana Letter Ne
	{0xFF89, Glyph{0x00, 0x40, 0x20, 0x1F, 0x00}}, // Katakana Letter No
	{0xFF8A, Glyph{0x78, 0x00, 0x02, 0x04, 0x78}}, // Katakana Letter Ha
	{0xFF8B, Glyph{0x3F, 0x44, 0x44, 0x44, 0x44}}, // Katakana Letter Hi
	{0xFF8C, Glyph{0x02, 0x42, 0x42, 0x22, 0x1E}}, // Katakana Letter Fu
	{0xFF8D, Glyph{0x04, 0x02, 0x04, 0x08, 0x30}}, // Katakana Letter He
	{0xFF8E, Glyph{0x32, 0x02, 0x7F, 0x02, 0x32}}, // Katakana Letter Ho
	{0xFF8F, Glyph{0x02, 0x12, 0x22, 0x52, 0x0E}}, // Katakana Letter Ma
	{0xFF90, Glyph{0x00, 0x2A, 0x2A, 0x2A, 0x40}}, // Katakana Letter Mi
	{0xFF91, Glyph{0x38, 0x24, 0x22, 0x20, 0x70}}, // Katakana Letter Mu
	{0xFF92, Glyph{0x40, 0x28, 0x10, 0x28, 0x06}}, // Katakana Letter Me
	{0xFF93, Glyph{0x0A, 0x3E, 0x4A, 0x4A, 0x4A}}, // Katakana Letter Mo
	{0xFF94, Glyph{0x04, 0x7F, 0x04, 0x14, 0x0C}}, // Katakana Letter Ya
	{0xFF95, Glyph{0x40, 0x42, 0x42, 0x7E, 0x40}}, // Katakana Letter Yu
	{0xFF96, Glyph{0x4A, 0x4A, 0x4A, 0x4A, 0x7E}}, // Katakana Letter Yo
	{0xFF97, Glyph{0x04, 0x05, 0x45, 0x25, 0x1C}}, // Katakana Letter Ra
	{0xFF98, Glyph{0x0F, 0x40, 0x20, 0x1F, 0x00}}, // Katakana Letter Ri
	{0xFF99, Glyph{0x7C, 0x00, 0x7E, 0x40, 0x30}}, // Katakana Letter Ru
	{0xFF9A, Glyph{0x7E, 0x40, 0x20, 0x10, 0x08}}, // Katakana Letter Re
	{0xFF9B, Glyph{0x7E, 0x42, 0x42, 0x42, 0x7E}}, // Katakana Letter Ro
	{0xFF9C, Glyph{0x0E, 0x02, 0x42, 0x22, 0x1E}}, // Katakana Letter Wa
	{0xFF9D, Glyph{0x42, 0x42, 0x40, 0x20, 0x18}}, // Katakana Letter N
	{0xFF9E, Glyph{0x02, 0x04, 0x01, 0x02, 0x00}}, // Katakana Voiced Sound Mark
	{0xFF9F, Glyph{0x07, 0x05, 0x07, 0x00, 0x00}}, // Katakana Semi-Voiced Sound Mark
}
