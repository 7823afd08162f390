package grammar

import (
	"strings"

	"github.com/ggonc/gonc/internal/domain"
)

// ConnectorPair is a correlative connector and the parts that must all
// appear in one sentence.
type ConnectorPair struct {
	Label string
	Parts []string
}

// ConnectorPairs is checked in this order for every sentence.
var ConnectorPairs = []ConnectorPair{
	{Label: "Entweder - oder", Parts: []string{"entweder", "oder"}},
	{Label: "Einerseits - andererseits", Parts: []string{"einerseits", "andererseits"}},
	{Label: "Weder - noch", Parts: []string{"weder", "noch"}},
	{Label: "Zwar - aber", Parts: []string{"zwar", "aber"}},
	{Label: "Nicht nur - sondern", Parts: []string{"nicht nur", "sondern"}},
	{Label: "Sowohl - als auch", Parts: []string{"sowohl", "als auch"}},
	{Label: "Je ... desto", Parts: []string{"je", "desto"}},
}

// Connectors reports each connector pair whose parts all occur in a
// sentence. By default a part may sit inside a longer word ("oder" in
// "entweder"); Options.WholeWordConnectors requires whole tokens.
func Connectors(doc *domain.Document, opts Options) []domain.ConnectorRow {
	var rows []domain.ConnectorRow
	for _, s := range doc.Sentences {
		for _, pair := range ConnectorPairs {
			if pairMatches(s, pair, opts) {
				rows = append(rows, domain.ConnectorRow{Sentence: s.Text, Connector: pair.Label})
			}
		}
	}
	return rows
}

func pairMatches(s domain.Sentence, pair ConnectorPair, opts Options) bool {
	for _, part := range pair.Parts {
		if opts.WholeWordConnectors {
			if !containsPhrase(s.Tokens, strings.Fields(part)) {
				return false
			}
		} else if !strings.Contains(s.Lower, part) {
			return false
		}
	}
	return true
}
