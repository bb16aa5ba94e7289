package table

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/encoding/charmap"
)

func TestTableInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macroman.table")
	defer teardown()
	//
	if err := Check(); err != nil {
		t.Fatal(err)
	}
	if Len() != len(Entries()) {
		t.Errorf("Len and Entries disagree: %d vs %d", Len(), len(Entries()))
	}
}

func TestCheckRejectsBrokenTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macroman.table")
	defer teardown()
	//
	for i, tab := range [][]Entry{
		{},
		{{"b", 1}, {"a", 2}},                 // unsorted
		{{"a", 1}, {"a", 2}},                 // duplicate
		{{"", 1}},                            // empty source
		{{"\xff", 1}},                        // invalid UTF-8
		{{"a\u0300\u0301", 1}},               // too long
		{{"e\u0301", 1}},                     // missing base
		{{"d", 1}, {"e\u0301", 2}},           // missing base
		{{"e", 1}, {"ex", 2}},                // no combining mark
		{{"\u0301", 1}, {"\u0301\u0301", 2}}, // base is a mark
	} {
		err := check(tab)
		if err == nil {
			t.Errorf("test %d: expected table %v to be rejected", i, tab)
			continue
		}
		t.Logf("test %d: %v", i, err)
	}
}

func TestLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macroman.table")
	defer teardown()
	//
	for i, test := range []struct {
		rem    string
		source string
		code   byte
		ok     bool
	}{
		{rem: "abc", source: "a", code: 'a', ok: true},
		{rem: "\u00E9", source: "\u00E9", code: 0x8E, ok: true},
		{rem: "e\u0301t", source: "e\u0301", code: 0x8E, ok: true},
		{rem: "e\u0301", source: "e\u0301", code: 0x8E, ok: true},
		{rem: "A\u030Ax", source: "A\u030A", code: 0x81, ok: true},
		{rem: "a\u20AC", source: "a", code: 'a', ok: true}, // sorts behind extensions of a
		{rem: "A\u0304", source: "A", code: 'A', ok: true}, // mark without MacRoman code
		{rem: "y\u0308", source: "y\u0308", code: 0xD8, ok: true},
		{rem: "\uFB02x", source: "\uFB02", code: 0xDF, ok: true}, // last entry
		{rem: "\x00", source: "\x00", code: 0, ok: true},         // first entry
		{rem: "\U0001F600", ok: false},
		{rem: "\uFFFF", ok: false}, // behind all entries
		{rem: "\u0301e", ok: false},
		{rem: "", ok: false},
	} {
		e, ok := Lookup(test.rem)
		if ok != test.ok {
			t.Errorf("test %d: expected lookup of %+q to be %v, is %v", i, test.rem, test.ok, ok)
			continue
		}
		if ok && (e.Source != test.source || e.Code != test.code) {
			t.Errorf("test %d: expected %+q→$%02X for %+q, have %v", i, test.source, test.code, test.rem, e)
		}
	}
}

// Any input starting with an entry's source matches at least that source.
func TestLookupFindsEveryEntry(t *testing.T) {
	for i := 0; i < Len(); i++ {
		e := At(i)
		for _, suffix := range []string{"", "x", "\u0301", "\u20AC", "\U0001F600"} {
			rem := e.Source + suffix
			found, ok := Lookup(rem)
			if !ok || len(found.Source) < len(e.Source) || !strings.HasPrefix(rem, found.Source) {
				t.Errorf("entry #%d %v not found for input %+q, have %v", i, e, rem, found)
			} else if found.Source == e.Source && found.Code != e.Code {
				t.Errorf("entry #%d %v found with wrong code %v", i, e, found)
			}
		}
	}
}

func TestSearch(t *testing.T) {
	i, found := Search("a")
	if !found || At(i).Source != "a" {
		t.Errorf("expected to find entry for 'a', have #%d %v", i, At(i))
	}
	i, found = Search("a\u20AC")
	if found || At(i-1).Source != "a\u030A" {
		t.Errorf("expected 'a\u20AC' to sort behind \"a\\u030A\", predecessor is %v", At(i-1))
	}
	if i, found = Search("\x00"); !found || i != 0 {
		t.Errorf("expected NUL to be entry #0, is #%d", i)
	}
	if i, _ = Search("\U0010FFFF"); i != Len() {
		t.Errorf("expected max scalar value to sort behind all entries, position is %d", i)
	}
}

// Every single scalar value entry has to agree with the Macintosh charmap of
// golang.org/x/text, and every byte has to be reachable.
func TestTableAgreesWithCharmap(t *testing.T) {
	for b := 0; b < 256; b++ {
		r := charmap.Macintosh.DecodeByte(byte(b))
		e, ok := Lookup(string(r))
		if !ok || e.Code != byte(b) || e.Source != string(r) {
			t.Errorf("expected %#U to map to $%02X, have %v", r, b, e)
		}
	}
	for _, e := range Entries() {
		if utf8.RuneCountInString(e.Source) != 1 {
			continue
		}
		r, _ := utf8.DecodeRuneInString(e.Source)
		if code, ok := charmap.Macintosh.EncodeRune(r); ok && code != e.Code {
			t.Errorf("table maps %#U to $%02X, charmap to $%02X", r, e.Code, code)
		}
	}
}

func TestCodesAndSources(t *testing.T) {
	codes := Codes()
	if len(codes) != 256 {
		t.Errorf("expected all 256 codes to be reachable, have %d", len(codes))
	}
	for i, c := range codes {
		if int(c) != i {
			t.Errorf("expected code #%d to be $%02X, is $%02X", i, i, c)
			break
		}
	}
	for _, test := range []struct {
		code    byte
		sources []string
	}{
		{code: 0xDB, sources: []string{"\u00A4", "\u20AC"}},
		{code: 0xBD, sources: []string{"\u03A9", "\u2126"}},
		{code: 0x8E, sources: []string{"e\u0301", "\u00E9"}},
		{code: 0xF0, sources: []string{"\uF8FF"}},
		{code: 'x', sources: []string{"x"}},
	} {
		sources := Sources(test.code)
		if strings.Join(sources, "|") != strings.Join(test.sources, "|") {
			t.Errorf("expected sources %+q for $%02X, have %+q", test.sources, test.code, sources)
		}
	}
}

func TestFingerprint(t *testing.T) {
	fp1, err := Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	fp2, _ := Fingerprint()
	if fp1 != fp2 {
		t.Errorf("fingerprint not stable: %s vs %s", fp1, fp2)
	}
	if !strings.HasPrefix(fp1, "v1_") {
		t.Errorf("unexpected fingerprint format: %s", fp1)
	}
	t.Logf("table fingerprint = %s", fp1)
}
