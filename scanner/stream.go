package scanner

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/macroman"
	"github.com/npillmayer/macroman/table"
)

// --- Stream encoder --------------------------------------------------------

// StreamEncoder produces MacRoman steps for input read from an io.RuneReader.
// It buffers no more than table.MaxSourceLen runes of lookahead.
//
// Steps are identical to the ones an Encoder produces for the same text.
// Offsets and lengths count the bytes the reader reports for its runes.
type StreamEncoder struct {
	reader io.RuneReader
	la     [table.MaxSourceLen]pendingRune // lookahead
	n      int                             // number of runes in la
	pos    int                             // byte offset of la[0]
	isEOF  bool
	err    error
	Error  func(error) // error handler
}

type pendingRune struct {
	r    rune
	size int
}

var _ StepReader = (*StreamEncoder)(nil)

// NewStreamEncoder creates a StreamEncoder reading from r. Nothing is read
// before the first call to Next.
func NewStreamEncoder(r io.RuneReader, opts ...Option) *StreamEncoder {
	o := MakeOptions(opts...)
	return &StreamEncoder{
		reader: r,
		Error:  o.ErrorHandler,
	}
}

// Err returns the first error the reader returned, other than io.EOF.
// A read error ends the sequence of steps.
func (se *StreamEncoder) Err() error {
	return se.err
}

// Next is part of the StepReader interface.
func (se *StreamEncoder) Next() (macroman.Step, bool) {
	n := se.lookahead(table.MaxSourceLen)
	if n == 0 {
		return macroman.Step{}, false
	}
	var buf [table.MaxSourceLen * utf8.UTFMax]byte
	b := buf[:0]
	for i := 0; i < n; i++ {
		b = utf8.AppendRune(b, se.la[i].r)
	}
	pos := se.pos
	if e, ok := table.Lookup(string(b)); ok {
		k := 1
		if len(e.Source) > utf8.RuneLen(se.la[0].r) {
			k = 2
		}
		size := se.match(k)
		return macroman.Step{Offset: pos, Length: size, Outcome: macroman.Mapped(e.Code)}, true
	}
	r := se.la[0].r
	size := se.match(1)
	step := macroman.Step{Offset: pos, Length: size, Outcome: macroman.Unmappable(r)}
	se.Error(step.Err())
	return step, true
}

// lookahead tries to buffer k runes and returns the number of runes
// buffered.
func (se *StreamEncoder) lookahead(k int) int {
	for se.n < k && !se.isEOF {
		r, size, err := se.reader.ReadRune()
		if err != nil {
			se.isEOF = true
			if err != io.EOF {
				se.err = fmt.Errorf("stream encoder cannot read input (%w)", err)
				tracer().Errorf(se.err.Error())
			}
			break
		}
		se.la[se.n] = pendingRune{r: r, size: size}
		se.n++
	}
	return se.n
}

// match consumes k buffered runes and returns their size in bytes.
func (se *StreamEncoder) match(k int) int {
	size := 0
	for i := 0; i < k; i++ {
		size += se.la[i].size
	}
	copy(se.la[:], se.la[k:se.n])
	se.n -= k
	se.pos += size
	return size
}
