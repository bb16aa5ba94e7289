package table

// entries is the MacRoman mapping table. It lists every scalar value
// MacRoman can represent and, for accented Latin letters, the decomposed
// spelling (base letter + combining mark) alongside the precomposed one.
//
// Entries must stay sorted by source in byte order. Lookup depends on it,
// and Check verifies it.
var entries = [...]Entry{
	{"\u0000", 0x00},
	{"\u0001", 0x01},
	{"\u0002", 0x02},
	{"\u0003", 0x03},
	{"\u0004", 0x04},
	{"\u0005", 0x05},
	{"\u0006", 0x06},
	{"\u0007", 0x07},
	{"\u0008", 0x08},
	{"\u0009", 0x09},
	{"\u000A", 0x0A},
	{"\u000B", 0x0B},
	{"\u000C", 0x0C},
	{"\u000D", 0x0D},
	{"\u000E", 0x0E},
	{"\u000F", 0x0F},
	{"\u0010", 0x10},
	{"\u0011", 0x11},
	{"\u0012", 0x12},
	{"\u0013", 0x13},
	{"\u0014", 0x14},
	{"\u0015", 0x15},
	{"\u0016", 0x16},
	{"\u0017", 0x17},
	{"\u0018", 0x18},
	{"\u0019", 0x19},
	{"\u001A", 0x1A},
	{"\u001B", 0x1B},
	{"\u001C", 0x1C},
	{"\u001D", 0x1D},
	{"\u001E", 0x1E},
	{"\u001F", 0x1F},
	{"\u0020", 0x20},        // space
	{"\u0021", 0x21},        // !
	{"\u0022", 0x22},        // "
	{"\u0023", 0x23},        // #
	{"\u0024", 0x24},        // $
	{"\u0025", 0x25},        // %
	{"\u0026", 0x26},        // &
	{"\u0027", 0x27},        // '
	{"\u0028", 0x28},        // (
	{"\u0029", 0x29},        // )
	{"\u002A", 0x2A},        // *
	{"\u002B", 0x2B},        // +
	{"\u002C", 0x2C},        // ,
	{"\u002D", 0x2D},        // -
	{"\u002E", 0x2E},        // .
	{"\u002F", 0x2F},        // /
	{"\u0030", 0x30},        // 0
	{"\u0031", 0x31},        // 1
	{"\u0032", 0x32},        // 2
	{"\u0033", 0x33},        // 3
	{"\u0034", 0x34},        // 4
	{"\u0035", 0x35},        // 5
	{"\u0036", 0x36},        // 6
	{"\u0037", 0x37},        // 7
	{"\u0038", 0x38},        // 8
	{"\u0039", 0x39},        // 9
	{"\u003A", 0x3A},        // :
	{"\u003B", 0x3B},        // ;
	{"\u003C", 0x3C},        // <
	{"\u003D", 0x3D},        // =
	{"\u003E", 0x3E},        // >
	{"\u003F", 0x3F},        // ?
	{"\u0040", 0x40},        // @
	{"\u0041", 0x41},        // A
	{"\u0041\u0300", 0xCB},  // À decomposed
	{"\u0041\u0301", 0xE7},  // Á decomposed
	{"\u0041\u0302", 0xE5},  // Â decomposed
	{"\u0041\u0303", 0xCC},  // Ã decomposed
	{"\u0041\u0308", 0x80},  // Ä decomposed
	{"\u0041\u030A", 0x81},  // Å decomposed
	{"\u0042", 0x42},        // B
	{"\u0043", 0x43},        // C
	{"\u0043\u0327", 0x82},  // Ç decomposed
	{"\u0044", 0x44},        // D
	{"\u0045", 0x45},        // E
	{"\u0045\u0300", 0xE9},  // È decomposed
	{"\u0045\u0301", 0x83},  // É decomposed
	{"\u0045\u0302", 0xE6},  // Ê decomposed
	{"\u0045\u0308", 0xE8},  // Ë decomposed
	{"\u0046", 0x46},        // F
	{"\u0047", 0x47},        // G
	{"\u0048", 0x48},        // H
	{"\u0049", 0x49},        // I
	{"\u0049\u0300", 0xED},  // Ì decomposed
	{"\u0049\u0301", 0xEA},  // Í decomposed
	{"\u0049\u0302", 0xEB},  // Î decomposed
	{"\u0049\u0308", 0xEC},  // Ï decomposed
	{"\u004A", 0x4A},        // J
	{"\u004B", 0x4B},        // K
	{"\u004C", 0x4C},        // L
	{"\u004D", 0x4D},        // M
	{"\u004E", 0x4E},        // N
	{"\u004E\u0303", 0x84},  // Ñ decomposed
	{"\u004F", 0x4F},        // O
	{"\u004F\u0300", 0xF1},  // Ò decomposed
	{"\u004F\u0301", 0xEE},  // Ó decomposed
	{"\u004F\u0302", 0xEF},  // Ô decomposed
	{"\u004F\u0303", 0xCD},  // Õ decomposed
	{"\u004F\u0308", 0x85},  // Ö decomposed
	{"\u0050", 0x50},        // P
	{"\u0051", 0x51},        // Q
	{"\u0052", 0x52},        // R
	{"\u0053", 0x53},        // S
	{"\u0054", 0x54},        // T
	{"\u0055", 0x55},        // U
	{"\u0055\u0300", 0xF4},  // Ù decomposed
	{"\u0055\u0301", 0xF2},  // Ú decomposed
	{"\u0055\u0302", 0xF3},  // Û decomposed
	{"\u0055\u0308", 0x86},  // Ü decomposed
	{"\u0056", 0x56},        // V
	{"\u0057", 0x57},        // W
	{"\u0058", 0x58},        // X
	{"\u0059", 0x59},        // Y
	{"\u0059\u0308", 0xD9},  // Ÿ decomposed
	{"\u005A", 0x5A},        // Z
	{"\u005B", 0x5B},        // [
	{"\u005C", 0x5C},        // \
	{"\u005D", 0x5D},        // ]
	{"\u005E", 0x5E},        // ^
	{"\u005F", 0x5F},        // _
	{"\u0060", 0x60},        // `
	{"\u0061", 0x61},        // a
	{"\u0061\u0300", 0x88},  // à decomposed
	{"\u0061\u0301", 0x87},  // á decomposed
	{"\u0061\u0302", 0x89},  // â decomposed
	{"\u0061\u0303", 0x8B},  // ã decomposed
	{"\u0061\u0308", 0x8A},  // ä decomposed
	{"\u0061\u030A", 0x8C},  // å decomposed
	{"\u0062", 0x62},        // b
	{"\u0063", 0x63},        // c
	{"\u0063\u0327", 0x8D},  // ç decomposed
	{"\u0064", 0x64},        // d
	{"\u0065", 0x65},        // e
	{"\u0065\u0300", 0x8F},  // è decomposed
	{"\u0065\u0301", 0x8E},  // é decomposed
	{"\u0065\u0302", 0x90},  // ê decomposed
	{"\u0065\u0308", 0x91},  // ë decomposed
	{"\u0066", 0x66},        // f
	{"\u0067", 0x67},        // g
	{"\u0068", 0x68},        // h
	{"\u0069", 0x69},        // i
	{"\u0069\u0300", 0x93},  // ì decomposed
	{"\u0069\u0301", 0x92},  // í decomposed
	{"\u0069\u0302", 0x94},  // î decomposed
	{"\u0069\u0308", 0x95},  // ï decomposed
	{"\u006A", 0x6A},        // j
	{"\u006B", 0x6B},        // k
	{"\u006C", 0x6C},        // l
	{"\u006D", 0x6D},        // m
	{"\u006E", 0x6E},        // n
	{"\u006E\u0303", 0x96},  // ñ decomposed
	{"\u006F", 0x6F},        // o
	{"\u006F\u0300", 0x98},  // ò decomposed
	{"\u006F\u0301", 0x97},  // ó decomposed
	{"\u006F\u0302", 0x99},  // ô decomposed
	{"\u006F\u0303", 0x9B},  // õ decomposed
	{"\u006F\u0308", 0x9A},  // ö decomposed
	{"\u0070", 0x70},        // p
	{"\u0071", 0x71},        // q
	{"\u0072", 0x72},        // r
	{"\u0073", 0x73},        // s
	{"\u0074", 0x74},        // t
	{"\u0075", 0x75},        // u
	{"\u0075\u0300", 0x9D},  // ù decomposed
	{"\u0075\u0301", 0x9C},  // ú decomposed
	{"\u0075\u0302", 0x9E},  // û decomposed
	{"\u0075\u0308", 0x9F},  // ü decomposed
	{"\u0076", 0x76},        // v
	{"\u0077", 0x77},        // w
	{"\u0078", 0x78},        // x
	{"\u0079", 0x79},        // y
	{"\u0079\u0308", 0xD8},  // ÿ decomposed
	{"\u007A", 0x7A},        // z
	{"\u007B", 0x7B},        // {
	{"\u007C", 0x7C},        // |
	{"\u007D", 0x7D},        // }
	{"\u007E", 0x7E},        // ~
	{"\u007F", 0x7F},
	{"\u00A0", 0xCA},        // no-break space
	{"\u00A1", 0xC1},        // ¡
	{"\u00A2", 0xA2},        // ¢
	{"\u00A3", 0xA3},        // £
	{"\u00A4", 0xDB},        // ¤ before Mac OS 8.5
	{"\u00A5", 0xB4},        // ¥
	{"\u00A7", 0xA4},        // §
	{"\u00A8", 0xAC},        // ¨
	{"\u00A9", 0xA9},        // ©
	{"\u00AA", 0xBB},        // ª
	{"\u00AB", 0xC7},        // «
	{"\u00AC", 0xC2},        // ¬
	{"\u00AE", 0xA8},        // ®
	{"\u00AF", 0xF8},        // ¯
	{"\u00B0", 0xA1},        // °
	{"\u00B1", 0xB1},        // ±
	{"\u00B4", 0xAB},        // ´
	{"\u00B5", 0xB5},        // µ
	{"\u00B6", 0xA6},        // ¶
	{"\u00B7", 0xE1},        // ·
	{"\u00B8", 0xFC},        // ¸
	{"\u00BA", 0xBC},        // º
	{"\u00BB", 0xC8},        // »
	{"\u00BF", 0xC0},        // ¿
	{"\u00C0", 0xCB},        // À
	{"\u00C1", 0xE7},        // Á
	{"\u00C2", 0xE5},        // Â
	{"\u00C3", 0xCC},        // Ã
	{"\u00C4", 0x80},        // Ä
	{"\u00C5", 0x81},        // Å
	{"\u00C6", 0xAE},        // Æ
	{"\u00C7", 0x82},        // Ç
	{"\u00C8", 0xE9},        // È
	{"\u00C9", 0x83},        // É
	{"\u00CA", 0xE6},        // Ê
	{"\u00CB", 0xE8},        // Ë
	{"\u00CC", 0xED},        // Ì
	{"\u00CD", 0xEA},        // Í
	{"\u00CE", 0xEB},        // Î
	{"\u00CF", 0xEC},        // Ï
	{"\u00D1", 0x84},        // Ñ
	{"\u00D2", 0xF1},        // Ò
	{"\u00D3", 0xEE},        // Ó
	{"\u00D4", 0xEF},        // Ô
	{"\u00D5", 0xCD},        // Õ
	{"\u00D6", 0x85},        // Ö
	{"\u00D8", 0xAF},        // Ø
	{"\u00D9", 0xF4},        // Ù
	{"\u00DA", 0xF2},        // Ú
	{"\u00DB", 0xF3},        // Û
	{"\u00DC", 0x86},        // Ü
	{"\u00DF", 0xA7},        // ß
	{"\u00E0", 0x88},        // à
	{"\u00E1", 0x87},        // á
	{"\u00E2", 0x89},        // â
	{"\u00E3", 0x8B},        // ã
	{"\u00E4", 0x8A},        // ä
	{"\u00E5", 0x8C},        // å
	{"\u00E6", 0xBE},        // æ
	{"\u00E7", 0x8D},        // ç
	{"\u00E8", 0x8F},        // è
	{"\u00E9", 0x8E},        // é
	{"\u00EA", 0x90},        // ê
	{"\u00EB", 0x91},        // ë
	{"\u00EC", 0x93},        // ì
	{"\u00ED", 0x92},        // í
	{"\u00EE", 0x94},        // î
	{"\u00EF", 0x95},        // ï
	{"\u00F1", 0x96},        // ñ
	{"\u00F2", 0x98},        // ò
	{"\u00F3", 0x97},        // ó
	{"\u00F4", 0x99},        // ô
	{"\u00F5", 0x9B},        // õ
	{"\u00F6", 0x9A},        // ö
	{"\u00F7", 0xD6},        // ÷
	{"\u00F8", 0xBF},        // ø
	{"\u00F9", 0x9D},        // ù
	{"\u00FA", 0x9C},        // ú
	{"\u00FB", 0x9E},        // û
	{"\u00FC", 0x9F},        // ü
	{"\u00FF", 0xD8},        // ÿ
	{"\u0131", 0xF5},        // ı
	{"\u0152", 0xCE},        // Œ
	{"\u0153", 0xCF},        // œ
	{"\u0178", 0xD9},        // Ÿ
	{"\u0192", 0xC4},        // ƒ
	{"\u02C6", 0xF6},        // ˆ
	{"\u02C7", 0xFF},        // ˇ
	{"\u02D8", 0xF9},        // ˘
	{"\u02D9", 0xFA},        // ˙
	{"\u02DA", 0xFB},        // ˚
	{"\u02DB", 0xFE},        // ˛
	{"\u02DC", 0xF7},        // ˜
	{"\u02DD", 0xFD},        // ˝
	{"\u03A9", 0xBD},        // Ω
	{"\u03C0", 0xB9},        // π
	{"\u2013", 0xD0},        // –
	{"\u2014", 0xD1},        // —
	{"\u2018", 0xD4},        // ‘
	{"\u2019", 0xD5},        // ’
	{"\u201A", 0xE2},        // ‚
	{"\u201C", 0xD2},        // “
	{"\u201D", 0xD3},        // ”
	{"\u201E", 0xE3},        // „
	{"\u2020", 0xA0},        // †
	{"\u2021", 0xE0},        // ‡
	{"\u2022", 0xA5},        // •
	{"\u2026", 0xC9},        // …
	{"\u2030", 0xE4},        // ‰
	{"\u2039", 0xDC},        // ‹
	{"\u203A", 0xDD},        // ›
	{"\u2044", 0xDA},        // ⁄
	{"\u20AC", 0xDB},        // € since Mac OS 8.5
	{"\u2122", 0xAA},        // ™
	{"\u2126", 0xBD},        // Ω ohm sign
	{"\u2202", 0xB6},        // ∂
	{"\u2206", 0xC6},        // ∆
	{"\u220F", 0xB8},        // ∏
	{"\u2211", 0xB7},        // ∑
	{"\u221A", 0xC3},        // √
	{"\u221E", 0xB0},        // ∞
	{"\u222B", 0xBA},        // ∫
	{"\u2248", 0xC5},        // ≈
	{"\u2260", 0xAD},        // ≠
	{"\u2264", 0xB2},        // ≤
	{"\u2265", 0xB3},        // ≥
	{"\u25CA", 0xD7},        // ◊
	{"\uF8FF", 0xF0},        // Apple logo
	{"\uFB01", 0xDE},        // ﬁ
	{"\uFB02", 0xDF},        // ﬂ
}
