package grammar

import "github.com/ggonc/gonc/internal/domain"

// IndefinitePronouns is the pronoun vocabulary, in lowercase.
var IndefinitePronouns = []string{
	"man", "jemand", "einer", "irgendwer", "irgendwo", "irgendwann", "eins", "irgendetwas",
}

var pronounSet = toSet(IndefinitePronouns)

// Pronouns reports every indefinite pronoun occurrence, repeats included.
func Pronouns(doc *domain.Document) []domain.PronounRow {
	var rows []domain.PronounRow
	for _, s := range doc.Sentences {
		for _, tok := range s.Tokens {
			if pronounSet[tok.Lower] {
				rows = append(rows, domain.PronounRow{Sentence: s.Text, Pronoun: tok.Text})
			}
		}
	}
	return rows
}
