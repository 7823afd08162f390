package domain

import (
	"strings"
	"time"
)

// POS is a universal part-of-speech tag
type POS string

const (
	POSAdjective    POS = "ADJ"
	POSAdposition   POS = "ADP"
	POSAdverb       POS = "ADV"
	POSAuxiliary    POS = "AUX"
	POSCoordConj    POS = "CCONJ"
	POSDeterminer   POS = "DET"
	POSInterjection POS = "INTJ"
	POSNoun         POS = "NOUN"
	POSNumeral      POS = "NUM"
	POSParticle     POS = "PART"
	POSPronoun      POS = "PRON"
	POSProperNoun   POS = "PROPN"
	POSPunctuation  POS = "PUNCT"
	POSSubordConj   POS = "SCONJ"
	POSVerb         POS = "VERB"
	POSOther        POS = "X"
)

// ParsePOS maps a tag name to a POS, reporting whether it is known
func ParsePOS(s string) (POS, bool) {
	switch p := POS(strings.ToUpper(strings.TrimSpace(s))); p {
	case POSAdjective, POSAdposition, POSAdverb, POSAuxiliary, POSCoordConj,
		POSDeterminer, POSInterjection, POSNoun, POSNumeral, POSParticle,
		POSPronoun, POSProperNoun, POSPunctuation, POSSubordConj, POSVerb, POSOther:
		return p, true
	}
	return POSOther, false
}

// Token is a single word or punctuation mark of a sentence
type Token struct {
	Text  string `json:"text"`
	Lower string `json:"lower"`
	POS   POS    `json:"pos"`
	// Index is the position of the token within its sentence.
	Index int `json:"index"`
	// Start and End are byte offsets into the segmented source text.
	Start int `json:"start"`
	End   int `json:"end"`
}

// Sentence is an ordered run of tokens with its trimmed surface text
type Sentence struct {
	Text string `json:"text"`
	// Lower is Text in lowercase, used for substring matching.
	Lower  string  `json:"-"`
	Tokens []Token `json:"tokens"`
}

// Document is the segmented form of one input text
type Document struct {
	Sentences []Sentence `json:"sentences"`
}

// Tokens returns every token of the document in order
func (d *Document) Tokens() []Token {
	var n int
	for _, s := range d.Sentences {
		n += len(s.Tokens)
	}
	out := make([]Token, 0, n)
	for _, s := range d.Sentences {
		out = append(out, s.Tokens...)
	}
	return out
}

// LexEntry is one form of the tagger lexicon
type LexEntry struct {
	Form string `json:"form"`
	POS  POS    `json:"pos"`
}

// Analysis is the result of running one detector over one text
type Analysis struct {
	ID        string        `json:"id"`
	Category  Category      `json:"category"`
	Columns   []string      `json:"columns"`
	Rows      []Row         `json:"rows"`
	Count     int           `json:"count"`
	Counts    FeatureCounts `json:"counts"`
	CreatedAt time.Time     `json:"created_at"`
}

// FeatureCounts maps a category label to its number of hits
type FeatureCounts map[string]int

// Total returns the sum of all counts
func (fc FeatureCounts) Total() int {
	var n int
	for _, v := range fc {
		n += v
	}
	return n
}
