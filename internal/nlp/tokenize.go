package nlp

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	kindWord tokenKind = iota
	kindNumber
	kindPunct
)

// span is a token before tagging: its text and byte range in the source.
type span struct {
	text       string
	start, end int
	kind       tokenKind
}

// abbreviations keep their trailing period and never end a sentence.
var abbreviations = func() []string {
	list := []string{
		"z.b.", "z.t.", "u.a.", "d.h.", "o.ä.", "u.s.w.", "usw.", "bzw.", "vgl.",
		"ca.", "dr.", "prof.", "nr.", "str.", "etc.", "evtl.", "ggf.", "inkl.",
		"bspw.", "sog.", "jh.", "hr.", "fr.", "abs.", "st.",
	}
	// longest first so "u.s.w." wins over "u."
	sort.Slice(list, func(i, j int) bool { return len(list[i]) > len(list[j]) })
	return list
}()

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || r == '_'
}

func isTerminalRune(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', '”', '“', '’', '»', '«', ')', ']', '}':
		return true
	}
	return false
}

func runeAt(s string, i int) rune {
	if i < 0 || i >= len(s) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r
}

func runeBefore(s string, i int) rune {
	if i <= 0 {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return r
}

// matchAbbreviation returns the byte length of a known abbreviation at the
// start of s, or 0.
func matchAbbreviation(s string) int {
	for _, a := range abbreviations {
		if len(s) < len(a) || !strings.EqualFold(s[:len(a)], a) {
			continue
		}
		if isWordRune(runeAt(s, len(a))) {
			continue
		}
		return len(a)
	}
	return 0
}

// tokenize splits text into words, numbers and punctuation marks.
func tokenize(text string) []span {
	var spans []span
	i := 0

	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case unicode.IsSpace(r):
			i += size

		case isWordRune(r):
			if !isWordRune(runeBefore(text, i)) {
				if n := matchAbbreviation(text[i:]); n > 0 {
					spans = append(spans, span{text: text[i : i+n], start: i, end: i + n, kind: kindWord})
					i += n
					continue
				}
			}
			start := i
			numeric := true
			for i < len(text) {
				r, size = utf8.DecodeRuneInString(text[i:])
				if isWordRune(r) {
					if !unicode.IsDigit(r) {
						numeric = false
					}
					i += size
					continue
				}
				next := runeAt(text, i+size)
				if (r == '-' || r == '\'' || r == '’') && isWordRune(next) {
					i += size
					continue
				}
				if (r == '.' || r == ',') && unicode.IsDigit(runeBefore(text, i)) && unicode.IsDigit(next) {
					i += size
					continue
				}
				break
			}
			kind := kindWord
			if numeric {
				kind = kindNumber
			}
			spans = append(spans, span{text: text[start:i], start: start, end: i, kind: kind})

		case isTerminalRune(r):
			start := i
			for i < len(text) {
				r, size = utf8.DecodeRuneInString(text[i:])
				if !isTerminalRune(r) {
					break
				}
				i += size
			}
			spans = append(spans, span{text: text[start:i], start: start, end: i, kind: kindPunct})

		default:
			spans = append(spans, span{text: text[i : i+size], start: i, end: i + size, kind: kindPunct})
			i += size
		}
	}

	return spans
}

func isTerminal(s span) bool {
	if s.kind != kindPunct {
		return false
	}
	for _, r := range s.text {
		if !isTerminalRune(r) {
			return false
		}
	}
	return true
}

// blankLine reports whether the gap between two tokens holds an empty line.
func blankLine(text string, from, to int) bool {
	if from >= to {
		return false
	}
	gap := text[from:to]
	first := strings.IndexByte(gap, '\n')
	if first < 0 {
		return false
	}
	return strings.Contains(gap[first+1:], "\n")
}

// splitSentences groups tokens into sentences. A sentence ends after a run
// of terminal punctuation (plus directly attached closing quotes or
// brackets) or at a blank line.
func splitSentences(text string, spans []span) [][]span {
	var out [][]span
	var cur []span

	flush := func() {
		if len(cur) > 0 {
			out = append(out, cur)
			cur = nil
		}
	}

	for i := 0; i < len(spans); i++ {
		s := spans[i]
		if len(cur) > 0 && blankLine(text, cur[len(cur)-1].end, s.start) {
			flush()
		}
		cur = append(cur, s)
		if !isTerminal(s) {
			continue
		}
		for i+1 < len(spans) {
			next := spans[i+1]
			r, _ := utf8.DecodeRuneInString(next.text)
			if next.kind != kindPunct || next.start != cur[len(cur)-1].end || !isCloser(r) {
				break
			}
			cur = append(cur, next)
			i++
		}
		flush()
	}
	flush()

	return out
}
