// Package nlp turns raw German text into a tagged Document.
package nlp

import (
	"strings"

	"github.com/ggonc/gonc/internal/domain"
	"github.com/ggonc/gonc/internal/lexicon"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Pipeline segments, tokenizes and tags text. It only reads its lexicon
// and is safe for concurrent use.
type Pipeline struct {
	tagger *Tagger
}

// New creates a Pipeline over a loaded lexicon
func New(lex lexicon.Lexicon) *Pipeline {
	return &Pipeline{tagger: NewTagger(lex)}
}

// Process builds the Document for text. Empty input yields an empty Document.
func (p *Pipeline) Process(text string) *domain.Document {
	doc := &domain.Document{}
	if strings.TrimSpace(text) == "" {
		return doc
	}

	text = norm.NFC.String(text)
	lower := cases.Lower(language.German)

	for _, group := range splitSentences(text, tokenize(text)) {
		first, last := group[0], group[len(group)-1]
		surface := strings.TrimSpace(text[first.start:last.end])

		tokens := make([]domain.Token, len(group))
		kinds := make([]tokenKind, len(group))
		for i, s := range group {
			tokens[i] = domain.Token{
				Text:  s.text,
				Lower: lower.String(s.text),
				Index: i,
				Start: s.start,
				End:   s.end,
			}
			kinds[i] = s.kind
		}
		p.tagger.tagSentence(tokens, kinds)

		doc.Sentences = append(doc.Sentences, domain.Sentence{
			Text:   surface,
			Lower:  lower.String(surface),
			Tokens: tokens,
		})
	}

	return doc
}
