/*
Package mrepl/main provides an interactive command line tool (M.REPL)
for converting text to MacRoman. Every line entered is encoded, and
M.REPL displays the steps the scanner produced together with the
resulting MacRoman codes.

	mrepl [-trace Debug] [-engine binsearch|dfa|stream] [-subst ?] [text …]
	mrepl -check
	mrepl -dump > macroman.yaml
	mrepl -i notes.txt -o notes.mac -subst ?

Lines starting with a colon are commands:

	:engine dfa     switch to another scanner engine
	:subst @        substitute '@' for unmappable scalar values
	:subst          encode strictly again
	:sources $DB    list the sources mapping to a MacRoman code
	:quit           leave M.REPL

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'macroman.repl'
func tracer() tracing.Trace {
	return tracing.Select("macroman.repl")
}
