package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ggonc/gonc/internal/domain"
	"github.com/ggonc/gonc/internal/store"
)

func TestSeed(t *testing.T) {
	entries, err := Seed()
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	lex := FromEntries(entries)

	want := map[string]domain.POS{
		"nicht":  domain.POSParticle,
		"größer": domain.POSAdjective,
		"größte": domain.POSAdjective,
		"man":    domain.POSPronoun,
		"oder":   domain.POSCoordConj,
		"am":     domain.POSAdposition,
	}
	for form, pos := range want {
		if got := lex[form]; got != pos {
			t.Errorf("seed[%q] = %q, want %q", form, got, pos)
		}
	}
}

func TestParse(t *testing.T) {
	data := []byte("# comment\n\nHaus\tNOUN\nhaus\tVERB\ngut\tadj\n")
	entries, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(entries), entries)
	}
	if entries[0].Form != "haus" || entries[0].POS != domain.POSNoun {
		t.Errorf("entries[0] = %+v, want haus/NOUN (first tag wins)", entries[0])
	}
	if entries[1].POS != domain.POSAdjective {
		t.Errorf("entries[1].POS = %q, want ADJ", entries[1].POS)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no tab", "haus NOUN\n"},
		{"bad tag", "haus\tTHING\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.data)
			}
		})
	}
}

func TestLoad_InstallsWhenEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.db")

	lex, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lex["nicht"] != domain.POSParticle {
		t.Errorf("loaded lexicon missing 'nicht'")
	}

	st, err := ReadStats(path)
	if err != nil {
		t.Fatalf("ReadStats: %v", err)
	}
	if st.Version != Version {
		t.Errorf("Version = %q, want %q", st.Version, Version)
	}
	if st.Forms != len(lex) {
		t.Errorf("Forms = %d, want %d", st.Forms, len(lex))
	}
	if st.InstalledAt == "" {
		t.Error("InstalledAt is empty")
	}
}

func TestLoad_KeepsExistingLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.db")

	s, err := store.New(path)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	custom := []domain.LexEntry{{Form: "hurtig", POS: domain.POSAdjective}}
	if err := s.ReplaceEntries(custom); err != nil {
		t.Fatalf("ReplaceEntries: %v", err)
	}
	s.Close()

	lex, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(lex) != 1 || lex["hurtig"] != domain.POSAdjective {
		t.Errorf("Load replaced an installed lexicon: %v", lex)
	}
}

func TestLoad_FailsWhenInstallImpossible(t *testing.T) {
	dir := t.TempDir()
	// A directory cannot be opened as a database file.
	path := filepath.Join(dir, "lexicon.db")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Load error = %v, want ErrUnavailable", err)
	}
}
