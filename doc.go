/*
Package macroman converts Unicode text into MacRoman byte codes.

MacRoman is the 8-bit character encoding of the classic Macintosh. Old
Macintosh bitmap fonts are laid out in MacRoman, so a program drawing text
with them has to know, for every piece of its Unicode input, which of the
256 glyph positions to use.

Conversion is a longest-match scan over a fixed table of Unicode sequences.
A base letter followed by a combining mark maps to the precomposed MacRoman
code whenever the encoding has one, so both "é" (U+00E9) and "e"+U+0301
produce code 142. Scalar values without a MacRoman counterpart are reported
inline as unmappable, and scanning resumes right behind them.

Package structure is as follows:

■ table: the static, sorted mapping table and its prefix lookup.

■ scanner: the longest-match scanner. scanner.Encode is the entry point.

■ scanner/lexmach: an alternative scanner backed by a lexmachine DFA.

■ transcode: an adapter to golang.org/x/text/encoding.

The base package contains data types which are used throughout all the
other packages.

A few characters deserve a note:

	¤ vs €   both convert to 0xDB; which one is right depends on whether a
	         font predates Mac OS 8.5
	Ω vs Ω   capital omega and the ohm sign both convert to 0xBD
	U+F8FF   Apple uses this private use character for its logo; it
	         converts to 0xF0

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package macroman
