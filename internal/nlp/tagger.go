package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ggonc/gonc/internal/domain"
	"github.com/ggonc/gonc/internal/lexicon"
)

// Tagger assigns part-of-speech tags from a lexicon, falling back to
// German surface heuristics for unknown forms.
type Tagger struct {
	lex lexicon.Lexicon
}

// NewTagger creates a Tagger over lex
func NewTagger(lex lexicon.Lexicon) *Tagger {
	return &Tagger{lex: lex}
}

// Adjective endings, tried in this order when looking for a known stem.
var (
	inflectionEndings = []string{"", "e", "en", "em", "er", "es"}
	gradeEndings      = []string{"", "er", "st", "est"}
)

var adjectiveSuffixes = []string{
	"lich", "isch", "haft", "sam", "bar", "los", "voll", "wert", "ig", "ell", "iv",
}

var verbSuffixes = []string{"ieren", "iert", "ierte", "ierten", "ern", "eln", "en"}

// tagSentence tags the tokens of one sentence in place.
func (t *Tagger) tagSentence(tokens []domain.Token, kinds []tokenKind) {
	initial := true
	prev := domain.POSPunctuation
	for i := range tokens {
		tokens[i].POS = t.tag(tokens[i], kinds[i], initial, prev)
		if kinds[i] != kindPunct {
			initial = false
		}
		prev = tokens[i].POS
	}
}

func (t *Tagger) tag(tok domain.Token, kind tokenKind, initial bool, prev domain.POS) domain.POS {
	switch kind {
	case kindPunct:
		return domain.POSPunctuation
	case kindNumber:
		return domain.POSNumeral
	}

	capitalized := isCapitalized(tok.Text)

	if pos, ok := t.lex[tok.Lower]; ok {
		// "das Essen", "das Gute": capitalized verbs and adjectives are nominalized
		if capitalized && !initial && (pos == domain.POSVerb || pos == domain.POSAdjective) {
			return domain.POSNoun
		}
		return pos
	}
	if strings.HasSuffix(tok.Text, ".") {
		return domain.POSOther
	}
	if capitalized && !initial {
		return domain.POSNoun
	}
	attributive := prev == domain.POSDeterminer || prev == domain.POSAdposition || prev == domain.POSAdjective
	if t.isAdjective(tok.Lower, attributive) {
		return domain.POSAdjective
	}
	if !capitalized && isVerbForm(tok.Lower) {
		return domain.POSVerb
	}
	if capitalized {
		return domain.POSNoun
	}
	return domain.POSOther
}

// isAdjective strips inflection and grade endings looking for a known
// adjective stem or a derivational adjective suffix. An "-en" ending is only
// read as adjectival by suffix when the word follows an article, preposition
// or adjective, since "beruhigen" and "ruhigen" look alike otherwise.
func (t *Tagger) isAdjective(lower string, attributive bool) bool {
	for _, inf := range inflectionEndings {
		w, ok := strings.CutSuffix(lower, inf)
		if !ok || w == "" {
			continue
		}
		for _, g := range gradeEndings {
			stem, ok := strings.CutSuffix(w, g)
			if !ok || stem == "" {
				continue
			}
			if t.lex[stem] == domain.POSAdjective {
				return true
			}
			if (inf != "en" || attributive) && hasAdjectiveSuffix(stem) {
				return true
			}
		}
	}
	return false
}

func hasAdjectiveSuffix(stem string) bool {
	n := utf8.RuneCountInString(stem)
	for _, suf := range adjectiveSuffixes {
		if strings.HasSuffix(stem, suf) && n >= utf8.RuneCountInString(suf)+3 {
			return true
		}
	}
	return false
}

func isVerbForm(lower string) bool {
	n := utf8.RuneCountInString(lower)
	if n <= 3 {
		return false
	}
	for _, suf := range verbSuffixes {
		if strings.HasSuffix(lower, suf) {
			return true
		}
	}
	// past participle: ge...t
	return n > 5 && strings.HasPrefix(lower, "ge") && strings.HasSuffix(lower, "t")
}

func isCapitalized(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
