package grammar

import (
	"strings"

	"github.com/ggonc/gonc/internal/domain"
)

// NegationMarkers is the negation vocabulary, in lowercase.
var NegationMarkers = []string{
	"nicht", "kein", "niemand", "nirgendwo", "nirgends", "noch nicht",
	"noch nie", "nie", "niemals", "nicht mehr", "nie mehr",
}

var negationSet = toSet(NegationMarkers)

// longest phrase first, for PhraseMarkers mode
var negationPhrases = phrases(NegationMarkers)

// Negations reports the first negation marker of every sentence together
// with the token that follows it.
func Negations(doc *domain.Document, opts Options) []domain.NegationRow {
	var rows []domain.NegationRow
	for _, s := range doc.Sentences {
		if row, ok := firstNegation(s, opts); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func firstNegation(s domain.Sentence, opts Options) (domain.NegationRow, bool) {
	for i, tok := range s.Tokens {
		n := 0
		if opts.PhraseMarkers {
			n = matchPhrase(s.Tokens, i, negationPhrases)
		} else if negationSet[tok.Lower] {
			n = 1
		}
		if n == 0 {
			continue
		}

		marker := make([]string, n)
		for j := 0; j < n; j++ {
			marker[j] = s.Tokens[i+j].Text
		}
		after := domain.NoWordAfter
		if i+n < len(s.Tokens) {
			after = s.Tokens[i+n].Text
		}
		return domain.NegationRow{
			Sentence:  s.Text,
			Negation:  strings.Join(marker, " "),
			WordAfter: after,
		}, true
	}
	return domain.NegationRow{}, false
}
