package lexmach

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/macroman"
	"github.com/npillmayer/macroman/scanner"
	"github.com/npillmayer/macroman/table"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'macroman.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("macroman.scanner")
}

// hit is the token value the lexer produces for a matched table entry.
type hit struct {
	entry table.Entry
	size  int // bytes matched
}

var (
	lexer     *lexmachine.Lexer
	lexerErr  error
	lexerOnce sync.Once // monitors one-time compilation
)

// Lexer returns the lexmachine lexer for the mapping table, compiling it on
// first call.
func Lexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lexer, lexerErr = compile(table.Entries())
	})
	return lexer, lexerErr
}

func compile(entries []table.Entry) (*lexmachine.Lexer, error) {
	lx := lexmachine.NewLexer()
	for _, e := range entries {
		lx.Add(Literal(e.Source), MakeHit(e))
	}
	if err := lx.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	tracer().Debugf("compiled DFA for %d table entries", len(entries))
	return lx, nil
}

// Literal turns s into a lexmachine pattern matching exactly s.
// ASCII punctuation is escaped, any other byte stands for itself.
func Literal(s string) []byte {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c > ' ' && c < utf8.RuneSelf && !isAlnum(c) && c != 0x7f {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return []byte(b.String())
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// MakeHit is an action which reports a match of table entry e.
func MakeHit(e table.Entry) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return hit{entry: e, size: len(m.Bytes)}, nil
	}
}

// ---------------------------------------------------------------------------

// Encoder is a MacRoman scanner driven by a lexmachine DFA, implementing the
// scanner.StepReader interface.
type Encoder struct {
	scanner *lexmachine.Scanner
	input   string
	pos     int
	Error   func(error)
}

var _ scanner.StepReader = (*Encoder)(nil)

// Encode creates an Encoder for input. It returns an error if compiling the
// DFA failed.
func Encode(input string, opts ...scanner.Option) (*Encoder, error) {
	lx, err := Lexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	o := scanner.MakeOptions(opts...)
	return &Encoder{scanner: s, input: input, Error: o.ErrorHandler}, nil
}

// SetErrorHandler sets an error handler for the encoder.
func (enc *Encoder) SetErrorHandler(h func(error)) {
	if h == nil {
		enc.Error = scanner.MakeOptions().ErrorHandler
		return
	}
	enc.Error = h
}

// Next is part of the scanner.StepReader interface.
//
// Input the DFA cannot match is taken one scalar value at a time: the
// scalar value at the failing position makes up an unmappable step, and the
// DFA resumes right behind it.
func (enc *Encoder) Next() (macroman.Step, bool) {
	if enc.pos >= len(enc.input) {
		return macroman.Step{}, false
	}
	pos := enc.pos
	tok, err, eof := enc.scanner.Next()
	if eof {
		enc.pos = len(enc.input)
		return macroman.Step{}, false
	}
	if err == nil {
		h := tok.(hit)
		enc.pos += h.size
		return macroman.Step{Offset: pos, Length: h.size, Outcome: macroman.Mapped(h.entry.Code)}, true
	}
	if _, is := err.(*machines.UnconsumedInput); !is {
		tracer().Errorf("DFA scanner error: %v", err)
	}
	r, size := utf8.DecodeRuneInString(enc.input[pos:])
	enc.pos += size
	enc.scanner.TC = enc.pos
	step := macroman.Step{Offset: pos, Length: size, Outcome: macroman.Unmappable(r)}
	enc.Error(step.Err())
	return step, true
}
