package macroman

import (
	"fmt"
	"unicode/utf8"
)

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. Every scan step
// tracks which input positions it covers. A span denotes a start position
// and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Outcomes --------------------------------------------------------------

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind tells the two variants of an Outcome apart.
type Kind uint8

const (
	KindMapped     Kind = iota // input mapped to a MacRoman code
	KindUnmappable             // input scalar has no MacRoman code
)

// Outcome is the tagged result of a single scan step: either a MacRoman
// byte code, or the scalar value which could not be mapped.
//
// The zero value is Mapped(0), i.e. the NUL character.
type Outcome struct {
	kind Kind
	code byte
	r    rune
}

// Mapped creates a successful outcome for a MacRoman code.
func Mapped(code byte) Outcome {
	return Outcome{kind: KindMapped, code: code}
}

// Unmappable creates a failed outcome for a scalar value.
func Unmappable(r rune) Outcome {
	return Outcome{kind: KindUnmappable, r: r}
}

// Kind returns the variant of o.
func (o Outcome) Kind() Kind {
	return o.kind
}

// IsMapped is true if o carries a MacRoman code.
func (o Outcome) IsMapped() bool {
	return o.kind == KindMapped
}

// Code returns the MacRoman code of a mapped outcome. The flag is false for
// unmappable outcomes.
func (o Outcome) Code() (byte, bool) {
	if o.kind != KindMapped {
		return 0, false
	}
	return o.code, true
}

// Rune returns the offending scalar value of an unmappable outcome. The flag
// is false for mapped outcomes.
func (o Outcome) Rune() (rune, bool) {
	if o.kind != KindUnmappable {
		return utf8.RuneError, false
	}
	return o.r, true
}

func (o Outcome) String() string {
	if o.kind == KindMapped {
		return fmt.Sprintf("%s($%02X)", o.kind, o.code)
	}
	return fmt.Sprintf("%s(%U)", o.kind, o.r)
}

// --- Steps -----------------------------------------------------------------

// Step is one unit of scanner output. It pairs a span of source bytes with
// the outcome of converting them.
//
// The steps of a complete scan partition the input: they are contiguous,
// non-overlapping and cover every input byte exactly once.
type Step struct {
	Offset  int // byte offset of the span in the input
	Length  int // number of input bytes consumed, always > 0
	Outcome Outcome
}

// Span returns the input bytes covered by s.
func (s Step) Span() Span {
	return Span{uint64(s.Offset), uint64(s.Offset + s.Length)}
}

// Err returns an *UnmappableError for unmappable steps and nil otherwise.
func (s Step) Err() error {
	if r, ok := s.Outcome.Rune(); ok {
		return &UnmappableError{Rune: r, Offset: s.Offset}
	}
	return nil
}

func (s Step) String() string {
	return fmt.Sprintf("%v %v", s.Span(), s.Outcome)
}

// --- Errors ----------------------------------------------------------------

// UnmappableError reports a scalar value without a MacRoman counterpart.
// Scanners never return it on their own; it is for clients which have to
// turn an unmappable step into an error.
type UnmappableError struct {
	Rune   rune // the offending scalar value
	Offset int  // byte offset of the scalar value in the input
}

func (e *UnmappableError) Error() string {
	return fmt.Sprintf("macroman: no code for %#U at byte offset %d", e.Rune, e.Offset)
}
