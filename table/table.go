/*
Package table holds the static mapping from Unicode sequences to MacRoman codes.

The table is a sorted array of (source, code) pairs. A source is a single
scalar value or a base letter followed by one combining mark. Sort order
is byte order of the UTF-8 sources, which equals the order of their scalar
values. This order doubles as the index structure: an extension "e"+U+0301
sorts directly behind its base "e", so a binary search for the remaining
input of a scanner lands on the longest candidate entry.

Several sources may share a code: "é", "e"+U+0301 both give $8E, ¤ and €
both give $DB, capital omega and the ohm sign both give $BD.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package table

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/slices"
)

// tracer traces with key 'macroman.table'.
func tracer() tracing.Trace {
	return tracing.Select("macroman.table")
}

// MaxSourceLen is the maximum number of scalar values in an entry's source.
// Lookup checks a single candidate per position, which is only sound for
// sources of at most two scalar values.
const MaxSourceLen = 2

// Entry maps a Unicode sequence to a MacRoman code.
type Entry struct {
	Source string // one scalar value, or base letter + combining mark
	Code   byte   // MacRoman code
}

func (e Entry) String() string {
	return fmt.Sprintf("%+q→$%02X", e.Source, e.Code)
}

// Len returns the number of entries in the table.
func Len() int {
	return len(entries)
}

// At returns entry #i.
func At(i int) Entry {
	return entries[i]
}

// Entries returns a copy of the table, in table order.
func Entries() []Entry {
	c := make([]Entry, len(entries))
	copy(c, entries[:])
	return c
}

// --- Lookup ----------------------------------------------------------------

// Search returns the position where rem would be inserted into the table,
// and whether an entry's source is equal to rem.
func Search(rem string) (int, bool) {
	return search(entries[:], rem)
}

func search(tab []Entry, rem string) (int, bool) {
	return slices.BinarySearchFunc(tab, rem, func(e Entry, target string) int {
		return strings.Compare(e.Source, target)
	})
}

// Lookup finds the longest entry whose source is a prefix of rem.
//
// The candidate is the entry rem would be inserted behind. If that one is
// no literal prefix of rem (rem continues a base letter with a mark the
// table does not know, or with anything sorting behind the base letter's
// extensions), the first scalar value of rem gets a second, exact probe.
func Lookup(rem string) (Entry, bool) {
	return lookup(entries[:], rem)
}

func lookup(tab []Entry, rem string) (Entry, bool) {
	if rem == "" {
		return Entry{}, false
	}
	i, found := search(tab, rem)
	if found {
		return tab[i], true
	}
	if i > 0 && strings.HasPrefix(rem, tab[i-1].Source) {
		return tab[i-1], true
	}
	_, size := utf8.DecodeRuneInString(rem)
	if size == len(rem) { // already probed
		return Entry{}, false
	}
	if j, found := search(tab, rem[:size]); found {
		return tab[j], true
	}
	return Entry{}, false
}

// --- Invariants ------------------------------------------------------------

// Check verifies the invariants Lookup relies on:
//
//   - sources are non-empty, valid UTF-8 and at most MaxSourceLen scalar values long
//   - sources are strictly ascending, i.e. sorted and unique
//   - a two-value source is a base letter followed by a combining mark
//   - the base letter has an entry of its own, and nothing but extensions of
//     the base sorts between the base and the extension
//
// Check returns the first violation found.
func Check() error {
	return check(entries[:])
}

func check(tab []Entry) error {
	if len(tab) == 0 {
		return fmt.Errorf("table is empty")
	}
	for i, e := range tab {
		if e.Source == "" {
			return fmt.Errorf("entry #%d has an empty source", i)
		}
		if !utf8.ValidString(e.Source) {
			return fmt.Errorf("entry #%d %v is not valid UTF-8", i, e)
		}
		n := utf8.RuneCountInString(e.Source)
		if n > MaxSourceLen {
			return fmt.Errorf("entry #%d %v has %d scalar values, max is %d", i, e, n, MaxSourceLen)
		}
		if i > 0 && tab[i-1].Source >= e.Source {
			return fmt.Errorf("entry #%d %v out of order after %v", i, e, tab[i-1])
		}
		if n == 2 {
			if err := checkExtension(tab, i); err != nil {
				return err
			}
		}
	}
	tracer().Debugf("checked %d table entries", len(tab))
	return nil
}

func checkExtension(tab []Entry, i int) error {
	e := tab[i]
	base, size := utf8.DecodeRuneInString(e.Source)
	mark, _ := utf8.DecodeRuneInString(e.Source[size:])
	if unicode.Is(unicode.M, base) {
		return fmt.Errorf("entry #%d %v starts with a combining mark", i, e)
	}
	if !unicode.Is(unicode.M, mark) {
		return fmt.Errorf("entry #%d %v: %#U is not a combining mark", i, e, mark)
	}
	prefix := e.Source[:size]
	for j := i - 1; j >= 0; j-- {
		if tab[j].Source == prefix {
			return nil
		}
		if !strings.HasPrefix(tab[j].Source, prefix) {
			return fmt.Errorf("entry #%d %v sorts between %v and its base", j, tab[j], e)
		}
	}
	return fmt.Errorf("entry #%d %v has no base entry %+q", i, e, prefix)
}

// --- Inventory -------------------------------------------------------------

// Codes returns the MacRoman codes reachable from the table, in ascending
// order.
func Codes() []byte {
	set := treeset.NewWith(utils.IntComparator)
	for _, e := range entries {
		set.Add(int(e.Code))
	}
	codes := make([]byte, 0, set.Size())
	for _, c := range set.Values() {
		codes = append(codes, byte(c.(int)))
	}
	return codes
}

// Sources returns all the sources mapping to code, in table order.
func Sources(code byte) []string {
	list := arraylist.New()
	for _, e := range entries {
		if e.Code == code {
			list.Add(e.Source)
		}
	}
	sources := make([]string, 0, list.Size())
	for _, s := range list.Values() {
		sources = append(sources, s.(string))
	}
	return sources
}

// fingerprint is the shape of the table as structhash sees it.
type fingerprint struct {
	Entries []fingerprintEntry
}

type fingerprintEntry struct {
	Source string
	Code   int
}

// Fingerprint returns a digest of the table contents. Clients may pin the
// fingerprint of the table they were tested against.
func Fingerprint() (string, error) {
	fp := fingerprint{Entries: make([]fingerprintEntry, len(entries))}
	for i, e := range entries {
		fp.Entries[i] = fingerprintEntry{Source: e.Source, Code: int(e.Code)}
	}
	h, err := structhash.Hash(fp, 1)
	if err != nil {
		return "", fmt.Errorf("cannot hash mapping table: %w", err)
	}
	return h, nil
}
