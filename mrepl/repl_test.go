package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/macroman/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"gopkg.in/yaml.v2"
)

func TestParseCode(t *testing.T) {
	for _, test := range []struct {
		s    string
		code byte
		ok   bool
	}{
		{s: "$DB", code: 0xDB, ok: true},
		{s: "0xbd", code: 0xBD, ok: true},
		{s: "65", code: 65, ok: true},
		{s: "256", ok: false},
		{s: "$", ok: false},
		{s: "x", ok: false},
	} {
		code, err := parseCode(test.s)
		if (err == nil) != test.ok || code != test.code {
			t.Errorf("expected %q to parse as (%d, %v), have (%d, %v)", test.s, test.code, test.ok, code, err)
		}
	}
}

func TestEvalCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macroman.repl")
	defer teardown()
	//
	intp := &Intp{engine: engineBinSearch}
	for _, test := range []struct {
		line string
		quit bool
		ok   bool
	}{
		{line: ":engine dfa", ok: true},
		{line: ":engine lalr", ok: false},
		{line: ":subst @", ok: true},
		{line: "Ek get eti\u00F0 gler", ok: true},
		{line: ":subst", ok: true},
		{line: "Ek get eti\u00F0 gler", ok: false},
		{line: ":subst \U0001F600", ok: false},
		{line: ":sources $DB", ok: true},
		{line: ":frobnicate", ok: false},
		{line: ":quit", quit: true, ok: true},
	} {
		quit, err := intp.Eval(test.line)
		if quit != test.quit || (err == nil) != test.ok {
			t.Errorf("%q: expected (%v, ok=%v), have (%v, %v)", test.line, test.quit, test.ok, quit, err)
		}
	}
	if intp.engine != engineDFA {
		t.Errorf("expected engine to be %s, is %s", engineDFA, intp.engine)
	}
}

func TestEnginesEncodeAlike(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macroman.repl")
	defer teardown()
	//
	intp := &Intp{}
	input := "Cre\u0300me bru\u0302le\u0301e \U0001F600"
	var results []string
	for _, engine := range []string{engineBinSearch, engineDFA, engineStream} {
		if err := intp.setEngine(engine); err != nil {
			t.Fatal(err)
		}
		sr, err := intp.stepReader(input)
		if err != nil {
			t.Fatal(err)
		}
		codes := []byte{}
		for step, ok := sr.Next(); ok; step, ok = sr.Next() {
			code, _ := step.Outcome.Code()
			codes = append(codes, code)
		}
		results = append(results, hex(codes))
	}
	if results[0] != results[1] || results[0] != results[2] {
		t.Errorf("engines disagree: %v", results)
	}
}

func TestDumpTable(t *testing.T) {
	var buf bytes.Buffer
	if err := dumpTable(&buf); err != nil {
		t.Fatal(err)
	}
	var dump yamlTable
	if err := yaml.Unmarshal(buf.Bytes(), &dump); err != nil {
		t.Fatal(err)
	}
	if len(dump.Entries) != table.Len() {
		t.Errorf("expected %d entries in dump, have %d", table.Len(), len(dump.Entries))
	}
	if e := dump.Entries[0]; e.Source != "\x00" || e.Code != "$00" {
		t.Errorf("unexpected first entry %v", e)
	}
	fp, _ := table.Fingerprint()
	if dump.Fingerprint != fp {
		t.Errorf("expected fingerprint %s, have %s", fp, dump.Fingerprint)
	}
}

func TestEncodeFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "macroman.repl")
	defer teardown()
	//
	dir := t.TempDir()
	inf := filepath.Join(dir, "in.txt")
	outf := filepath.Join(dir, "out.mac")
	if err := os.WriteFile(inf, []byte("caf\u00E9 \U0001F600\n"), 0644); err != nil {
		t.Fatal(err)
	}
	intp := &Intp{}
	if err := intp.encodeFile(inf, outf); err == nil {
		t.Errorf("expected strict encoding of emoji to fail")
	}
	if err := intp.setSubst("?"); err != nil {
		t.Fatal(err)
	}
	if err := intp.encodeFile(inf, outf); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(outf)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "caf\x8E ?\n" {
		t.Errorf("expected %q, have %q", "caf\x8E ?\n", b)
	}
}
