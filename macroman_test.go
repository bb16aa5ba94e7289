package macroman

import (
	"errors"
	"testing"
)

func TestSpan(t *testing.T) {
	s := Span{3, 7}
	if s.From() != 3 || s.To() != 7 || s.Len() != 4 {
		t.Errorf("expected span (3…7) of length 4, have %v of length %d", s, s.Len())
	}
	if s.IsNull() || !(Span{}).IsNull() {
		t.Errorf("null span not recognized")
	}
	if x := s.Extend(Span{1, 5}); x != (Span{1, 7}) {
		t.Errorf("expected extended span to be (1…7), is %v", x)
	}
	if s.String() != "(3…7)" {
		t.Errorf("unexpected span string %q", s.String())
	}
}

func TestOutcome(t *testing.T) {
	m := Mapped(0x8E)
	if code, ok := m.Code(); !ok || code != 0x8E {
		t.Errorf("expected mapped outcome to carry $8E, has %v", m)
	}
	if _, ok := m.Rune(); ok {
		t.Errorf("mapped outcome should not carry a rune")
	}
	if !m.IsMapped() || m.Kind() != KindMapped {
		t.Errorf("expected kind Mapped, is %v", m.Kind())
	}
	u := Unmappable('😀')
	if r, ok := u.Rune(); !ok || r != '😀' {
		t.Errorf("expected unmappable outcome to carry U+1F600, has %v", u)
	}
	if _, ok := u.Code(); ok || u.IsMapped() {
		t.Errorf("unmappable outcome should not carry a code")
	}
	for _, test := range []struct {
		o Outcome
		s string
	}{
		{o: m, s: "Mapped($8E)"},
		{o: u, s: "Unmappable(U+1F600)"},
		{o: Outcome{}, s: "Mapped($00)"},
	} {
		if test.o.String() != test.s {
			t.Errorf("expected %q, have %q", test.s, test.o.String())
		}
	}
	if Kind(7).String() != "Kind(7)" {
		t.Errorf("unexpected name for unknown kind: %q", Kind(7).String())
	}
}

func TestStepErr(t *testing.T) {
	step := Step{Offset: 4, Length: 4, Outcome: Unmappable('😀')}
	if step.Span() != (Span{4, 8}) {
		t.Errorf("expected span (4…8), have %v", step.Span())
	}
	err := step.Err()
	var uerr *UnmappableError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected an UnmappableError, have %v", err)
	}
	if uerr.Rune != '😀' || uerr.Offset != 4 {
		t.Errorf("error carries wrong data: %v", uerr)
	}
	t.Logf("err = %v", err)
	if err := (Step{Length: 1, Outcome: Mapped('a')}).Err(); err != nil {
		t.Errorf("mapped step should not produce an error, has %v", err)
	}
}
