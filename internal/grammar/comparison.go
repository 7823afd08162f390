package grammar

import (
	"strings"
	"unicode/utf8"

	"github.com/ggonc/gonc/internal/domain"
)

// Comparisons flags adjectives by surface form: "er" anywhere in a word
// longer than two characters reads as comparative, an "am...sten" shape as
// superlative. Both checks run on every adjective, so one token can yield
// two rows. Matching is case-sensitive on the surface text.
func Comparisons(doc *domain.Document) []domain.ComparisonRow {
	var rows []domain.ComparisonRow
	for _, tok := range doc.Tokens() {
		if tok.POS != domain.POSAdjective {
			continue
		}
		if strings.Contains(tok.Text, "er") && utf8.RuneCountInString(tok.Text) > 2 {
			rows = append(rows, domain.ComparisonRow{Kind: domain.KindComparative, Word: tok.Text})
		}
		if strings.HasPrefix(tok.Text, "am") && strings.Contains(tok.Text, "sten") {
			rows = append(rows, domain.ComparisonRow{Kind: domain.KindSuperlative, Word: tok.Text})
		}
	}
	return rows
}
