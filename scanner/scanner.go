package scanner

import (
	"unicode/utf8"

	"github.com/npillmayer/macroman"
	"github.com/npillmayer/macroman/table"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'macroman.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("macroman.scanner")
}

// StepReader is the interface all MacRoman scanners implement.
//
// Next returns the next step and true, or false after the end of input has
// been reached. A StepReader is exhausted after having returned false once.
type StepReader interface {
	Next() (macroman.Step, bool)
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Debugf("scanner: " + e.Error())
}

// --- Options ---------------------------------------------------------------

// Options holds the settings of a scanner. Scanners in other packages
// collect them with MakeOptions.
type Options struct {
	ErrorHandler func(error) // called for every unmappable step
}

// Option configures a scanner.
type Option func(*Options)

// MakeOptions applies opts to the default settings.
func MakeOptions(opts ...Option) Options {
	o := Options{ErrorHandler: logError}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ErrorHandler == nil {
		o.ErrorHandler = logError
	}
	return o
}

// WithErrorHandler sets a handler to be notified of unmappable scalar
// values. It receives a *macroman.UnmappableError. The unmappable step is
// handed out by Next all the same; the handler cannot suppress it.
//
// The default handler traces the error on level Debug.
func WithErrorHandler(h func(error)) Option {
	return func(o *Options) {
		o.ErrorHandler = h
	}
}

// --- Encoder ---------------------------------------------------------------

// Encoder scans a string and produces MacRoman steps. Create one with Encode.
type Encoder struct {
	rem   string      // unconsumed suffix of the input
	pos   int         // byte offset of rem in the input
	Error func(error) // error handler
}

var _ StepReader = (*Encoder)(nil)

// Encode creates an Encoder for input. No conversion happens before the
// first call to Next.
func Encode(input string, opts ...Option) *Encoder {
	o := MakeOptions(opts...)
	return &Encoder{
		rem:   input,
		Error: o.ErrorHandler,
	}
}

// SetErrorHandler sets an error handler for the encoder.
func (enc *Encoder) SetErrorHandler(h func(error)) {
	if h == nil {
		enc.Error = logError
		return
	}
	enc.Error = h
}

// Done is true if the input is exhausted.
func (enc *Encoder) Done() bool {
	return enc.rem == ""
}

// Next is part of the StepReader interface.
//
// It selects the longest table entry which is a prefix of the remaining
// input. If there is none, the first scalar value of the remaining input
// makes up an unmappable step. Either way at least one scalar value is
// consumed.
func (enc *Encoder) Next() (macroman.Step, bool) {
	if enc.rem == "" {
		return macroman.Step{}, false
	}
	pos := enc.pos
	if e, ok := table.Lookup(enc.rem); ok {
		enc.advance(len(e.Source))
		return macroman.Step{Offset: pos, Length: len(e.Source), Outcome: macroman.Mapped(e.Code)}, true
	}
	r, size := utf8.DecodeRuneInString(enc.rem)
	enc.advance(size)
	step := macroman.Step{Offset: pos, Length: size, Outcome: macroman.Unmappable(r)}
	enc.Error(step.Err())
	return step, true
}

func (enc *Encoder) advance(n int) {
	enc.rem = enc.rem[n:]
	enc.pos += n
}

// --- Consumers -------------------------------------------------------------

// Collect drains a StepReader and returns all its steps.
func Collect(sr StepReader) []macroman.Step {
	var steps []macroman.Step
	for step, ok := sr.Next(); ok; step, ok = sr.Next() {
		steps = append(steps, step)
	}
	return steps
}

// Substitute returns a substitution policy which replaces every unmappable
// scalar value by code.
func Substitute(code byte) func(rune) (byte, bool) {
	return func(rune) (byte, bool) {
		return code, true
	}
}

// Bytes drains a StepReader and returns the MacRoman codes. Unmappable
// scalar values are passed to subst. If subst is nil or declines a scalar
// value, Bytes stops and returns the codes so far together with a
// *macroman.UnmappableError.
func Bytes(sr StepReader, subst func(rune) (byte, bool)) ([]byte, error) {
	var codes []byte
	for step, ok := sr.Next(); ok; step, ok = sr.Next() {
		if code, ok := step.Outcome.Code(); ok {
			codes = append(codes, code)
			continue
		}
		r, _ := step.Outcome.Rune()
		if subst != nil {
			if code, ok := subst(r); ok {
				codes = append(codes, code)
				continue
			}
		}
		return codes, step.Err()
	}
	return codes, nil
}
