package domain

import "strings"

// SeverityDefault is used when no lexicon keyword occurs in the message.
const SeverityDefault = 1

// SeverityEntry pairs an intensity keyword with its severity level (1..3).
type SeverityEntry struct {
	Keyword string
	Level   int
}

// Lexicon is an ordered intensity keyword list. Order defines priority: the
// first entry whose keyword occurs as a case-insensitive substring of the
// message wins, regardless of where in the text it appears. Immutable after
// construction.
type Lexicon struct {
	entries []SeverityEntry
}

// defaultSeverityEntries lists intensity keywords strongest-first so that a
// message mixing qualifiers ("severe headache and mild cough") resolves to
// the stronger level.
var defaultSeverityEntries = []SeverityEntry{
	{Keyword: "unbearable", Level: 3},
	{Keyword: "excruciating", Level: 3},
	{Keyword: "severe", Level: 3},
	{Keyword: "intense", Level: 3},
	{Keyword: "extreme", Level: 3},
	{Keyword: "terrible", Level: 3},
	{Keyword: "worst", Level: 3},
	{Keyword: "moderate", Level: 2},
	{Keyword: "persistent", Level: 2},
	{Keyword: "constant", Level: 2},
	{Keyword: "really bad", Level: 2},
	{Keyword: "mild", Level: 1},
	{Keyword: "slight", Level: 1},
	{Keyword: "minor", Level: 1},
	{Keyword: "a little", Level: 1},
	{Keyword: "occasional", Level: 1},
}

// NewLexicon creates a Lexicon preserving entry order.
func NewLexicon(entries []SeverityEntry) Lexicon {
	out := make([]SeverityEntry, len(entries))
	copy(out, entries)
	return Lexicon{entries: out}
}

// DefaultLexicon returns the built-in intensity lexicon.
func DefaultLexicon() Lexicon {
	return NewLexicon(defaultSeverityEntries)
}

// Entries returns a copy of the ordered entries.
func (l Lexicon) Entries() []SeverityEntry {
	out := make([]SeverityEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Match scans entries in declared order and returns the level of the first
// keyword found in lowered. lowered must already be lower-cased.
func (l Lexicon) Match(lowered string) int {
	for _, e := range l.entries {
		if strings.Contains(lowered, e.Keyword) {
			return e.Level
		}
	}
	return SeverityDefault
}
