/*
Package transcode adapts the MacRoman scanner to golang.org/x/text/encoding.

Transformer is a transform.Transformer converting UTF-8 to MacRoman with the
same longest-match rules as package scanner. It streams, i.e. it works on
buffers of any size, holding back a trailing scalar value whenever a
combining mark might follow in the next buffer.

	enc := transcode.NewEncoder()
	b, err := enc.Bytes([]byte("Crème brûlée"))

Unmappable scalar values make the encoder fail with a *RepertoireError.
Wrap the encoder with encoding.ReplaceUnsupported to get '?' instead, or
with encoding.HTMLEscapeUnsupported to get HTML character references.

Decoding is not provided; use golang.org/x/text/encoding/charmap.Macintosh.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package transcode

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/macroman/table"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// tracer traces with key 'macroman.transcode'.
func tracer() tracing.Trace {
	return tracing.Select("macroman.transcode")
}

// Replacement is the MacRoman code encoding.ReplaceUnsupported substitutes
// for unmappable scalar values.
const Replacement byte = '?'

// maxWindow is the maximum size of a table entry's source in bytes.
const maxWindow = table.MaxSourceLen * utf8.UTFMax

// RepertoireError reports a scalar value without a MacRoman counterpart.
// It satisfies the contract of the error handlers of package
// golang.org/x/text/encoding.
type RepertoireError struct {
	Rune rune
}

func (e *RepertoireError) Error() string {
	return fmt.Sprintf("macroman: no code for %#U", e.Rune)
}

// Replacement returns the code to substitute for e.Rune.
func (e *RepertoireError) Replacement() byte {
	return Replacement
}

// NewEncoder returns an encoder from UTF-8 to MacRoman.
func NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: Transformer{}}
}

// Transformer converts UTF-8 to MacRoman.
type Transformer struct {
	transform.NopResetter
}

var _ transform.Transformer = Transformer{}

// Transform is part of the transform.Transformer interface.
func (Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		rem := src[nSrc:]
		if !atEOF && !utf8.FullRune(rem) {
			err = transform.ErrShortSrc
			break
		}
		r, size := utf8.DecodeRune(rem)
		if !atEOF && !utf8.FullRune(rem[size:]) { // a combining mark may follow
			err = transform.ErrShortSrc
			break
		}
		if nDst >= len(dst) {
			err = transform.ErrShortDst
			break
		}
		window := rem
		if len(window) > maxWindow {
			window = window[:maxWindow]
		}
		e, ok := table.Lookup(string(window))
		if !ok {
			tracer().Debugf("transcode: no code for %#U", r)
			err = &RepertoireError{Rune: r}
			break
		}
		dst[nDst] = e.Code
		nDst++
		nSrc += len(e.Source)
	}
	return nDst, nSrc, err
}
