package domain

import "testing"

func TestLexicon_Match(t *testing.T) {
	lex := DefaultLexicon()

	tests := []struct {
		name    string
		lowered string
		want    int
	}{
		{"no keyword defaults to 1", "i have a headache", 1},
		{"severe maps to 3", "a severe headache", 3},
		{"moderate maps to 2", "moderate chest pain", 2},
		{"mild maps to 1", "a mild cough", 1},
		{"empty text defaults to 1", "", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := lex.Match(tc.lowered); got != tc.want {
				t.Errorf("Match(%q) = %d, want %d", tc.lowered, got, tc.want)
			}
		})
	}
}

func TestLexicon_Match_PriorityOrderWins(t *testing.T) {
	lex := DefaultLexicon()

	// "severe" precedes "mild" in the lexicon, so the stronger level wins
	// regardless of where each keyword appears in the text.
	texts := []string{
		"severe headache and mild cough",
		"mild cough and severe headache",
	}
	for _, text := range texts {
		if got := lex.Match(text); got != 3 {
			t.Errorf("Match(%q) = %d, want 3", text, got)
		}
	}
}

func TestLexicon_Match_DeclaredOrderNotLevelOrder(t *testing.T) {
	// Priority comes from entry order, not from the level value.
	lex := NewLexicon([]SeverityEntry{
		{Keyword: "mild", Level: 1},
		{Keyword: "severe", Level: 3},
	})

	if got := lex.Match("severe pain but mild fever"); got != 1 {
		t.Errorf("Match = %d, want 1 (first declared keyword wins)", got)
	}
}

func TestLexicon_EntriesIsCopy(t *testing.T) {
	lex := DefaultLexicon()
	entries := lex.Entries()
	entries[0].Level = 99

	if lex.Entries()[0].Level == 99 {
		t.Error("mutating the returned slice must not affect the lexicon")
	}
}
