// Package lexicon owns the German form -> POS lexicon used by the tagger:
// the embedded seed, installing it into a SQLite store, and loading it.
package lexicon

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ggonc/gonc/internal/domain"
	"github.com/ggonc/gonc/internal/store"
)

// Version identifies the embedded seed; bump it when seed.tsv changes.
const Version = "de-seed-1"

//go:embed seed.tsv
var seedTSV []byte

var (
	// ErrNotInstalled means the store exists but holds no lexicon
	ErrNotInstalled = errors.New("lexicon not installed")
	// ErrUnavailable means the lexicon could not be loaded even after install
	ErrUnavailable = errors.New("lexicon unavailable")
)

// Lexicon maps a lowercase form to its tag
type Lexicon map[string]domain.POS

// Stats describes an installed lexicon
type Stats struct {
	Path        string             `json:"path"`
	Version     string             `json:"version"`
	InstalledAt string             `json:"installed_at"`
	Forms       int                `json:"forms"`
	ByPOS       map[domain.POS]int `json:"by_pos"`
}

// Seed parses the embedded seed lexicon
func Seed() ([]domain.LexEntry, error) {
	return Parse(seedTSV)
}

// Parse reads "form<TAB>POS" lines; blank lines and # comments are skipped.
// The first tag given for a form wins.
func Parse(data []byte) ([]domain.LexEntry, error) {
	var entries []domain.LexEntry
	seen := make(map[string]bool)

	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		form, tag, ok := strings.Cut(text, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: missing tab separator", line)
		}
		pos, ok := domain.ParsePOS(tag)
		if !ok {
			return nil, fmt.Errorf("line %d: unknown tag %q", line, tag)
		}
		form = strings.ToLower(strings.TrimSpace(form))
		if form == "" || seen[form] {
			continue
		}
		seen[form] = true
		entries = append(entries, domain.LexEntry{Form: form, POS: pos})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan seed: %w", err)
	}
	return entries, nil
}

// Install writes the embedded seed into the store at path
func Install(path string) error {
	entries, err := Seed()
	if err != nil {
		return err
	}

	s, err := store.New(path)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ReplaceEntries(entries); err != nil {
		return fmt.Errorf("install lexicon: %w", err)
	}
	if err := s.SetMeta("version", Version); err != nil {
		return err
	}
	if err := s.SetMeta("installed_at", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	log.Printf("[lexicon] installed %d forms (%s) into %s", len(entries), Version, path)
	return nil
}

// Load opens the lexicon at path. When it is missing or unreadable the
// embedded seed is installed and the load is retried once.
func Load(path string) (Lexicon, error) {
	lex, err := open(path)
	if err == nil {
		return lex, nil
	}

	log.Printf("[lexicon] load %s failed: %v; installing seed", path, err)
	if err := Install(path); err != nil {
		return nil, fmt.Errorf("%w: install: %v", ErrUnavailable, err)
	}

	lex, err = open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return lex, nil
}

func open(path string) (Lexicon, error) {
	s, err := store.New(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNotInstalled
	}

	lex := make(Lexicon, len(entries))
	for _, e := range entries {
		lex[e.Form] = e.POS
	}
	return lex, nil
}

// FromEntries builds an in-memory lexicon without a store
func FromEntries(entries []domain.LexEntry) Lexicon {
	lex := make(Lexicon, len(entries))
	for _, e := range entries {
		if _, ok := lex[e.Form]; !ok {
			lex[e.Form] = e.POS
		}
	}
	return lex
}

// ReadStats reports what is installed at path
func ReadStats(path string) (*Stats, error) {
	s, err := store.New(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	st := &Stats{Path: path}
	if st.Forms, err = s.Count(); err != nil {
		return nil, err
	}
	if st.ByPOS, err = s.CountByPOS(); err != nil {
		return nil, err
	}
	if st.Version, err = s.Meta("version"); err != nil {
		return nil, err
	}
	if st.InstalledAt, err = s.Meta("installed_at"); err != nil {
		return nil, err
	}
	return st, nil
}
