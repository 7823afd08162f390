package grammar

import (
	"sort"
	"strings"

	"github.com/ggonc/gonc/internal/domain"
)

// Options switches the detectors from surface matching to stricter
// token-aligned matching. The zero value matches single tokens and
// connector substrings.
type Options struct {
	// PhraseMarkers lets multi-word negation markers ("noch nicht") match
	// consecutive tokens. Off, only single-token markers can match.
	PhraseMarkers bool
	// WholeWordConnectors requires connector parts to match whole tokens
	// instead of any substring of the sentence.
	WholeWordConnectors bool
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// phrases splits each entry into words, longest entry first.
func phrases(entries []string) [][]string {
	out := make([][]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.Fields(e))
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

// matchPhrase returns how many tokens starting at i match one of the
// phrases, or 0.
func matchPhrase(tokens []domain.Token, i int, candidates [][]string) int {
	for _, words := range candidates {
		if i+len(words) > len(tokens) {
			continue
		}
		ok := true
		for j, w := range words {
			if tokens[i+j].Lower != w {
				ok = false
				break
			}
		}
		if ok {
			return len(words)
		}
	}
	return 0
}

// containsPhrase reports whether the words occur as consecutive tokens.
func containsPhrase(tokens []domain.Token, words []string) bool {
	for i := range tokens {
		if matchPhrase(tokens, i, [][]string{words}) > 0 {
			return true
		}
	}
	return false
}
