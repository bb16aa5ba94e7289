/*
Package lexmach provides a MacRoman scanner backed by the lexmachine scanner generator.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Every entry of the mapping table becomes a literal pattern of a lexmachine
lexer, and lexmachine compiles the patterns into a single DFA. A DFA
prefers the longest match by construction, so this scanner needs neither
the sort order of the table nor a candidate check. It produces the same
steps as scanner.Encode and serves as a second opinion on it.

	enc, err := lexmach.Encode("Ærøskøbing")
	if err != nil {
		// compiling the DFA failed
	}
	for step, ok := enc.Next(); ok; step, ok = enc.Next() {
		…
	}

The DFA is compiled once, on first use, and shared between all scanners
of this package.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
