// Package grammar detects German grammatical constructs in a segmented
// Document: negation, comparative/superlative adjectives, indefinite
// pronouns and two-part connectors.
package grammar

import (
	"fmt"
	"time"

	"github.com/ggonc/gonc/internal/domain"
	"github.com/google/uuid"
)

// Segmenter turns raw text into a Document
type Segmenter interface {
	Process(text string) *domain.Document
}

type detectFunc func(doc *domain.Document, opts Options) []domain.Row

// detectors maps every category to its detector.
var detectors = map[domain.Category]detectFunc{
	domain.CategoryNegation: func(doc *domain.Document, opts Options) []domain.Row {
		return toRows(Negations(doc, opts))
	},
	domain.CategoryComparison: func(doc *domain.Document, _ Options) []domain.Row {
		return toRows(Comparisons(doc))
	},
	domain.CategoryIndefinitePronoun: func(doc *domain.Document, _ Options) []domain.Row {
		return toRows(Pronouns(doc))
	},
	domain.CategoryConnector: func(doc *domain.Document, opts Options) []domain.Row {
		return toRows(Connectors(doc, opts))
	},
}

func toRows[R domain.Row](in []R) []domain.Row {
	out := make([]domain.Row, len(in))
	for i, r := range in {
		out[i] = r
	}
	return out
}

// Analyzer runs one detector per request over segmented text
type Analyzer struct {
	seg  Segmenter
	opts Options
}

// New creates an Analyzer
func New(seg Segmenter, opts Options) *Analyzer {
	return &Analyzer{seg: seg, opts: opts}
}

// Options returns the matching options the analyzer was built with
func (a *Analyzer) Options() Options {
	return a.opts
}

// AnalyzeText segments text and runs the detector for category c.
// Blank text gives an empty analysis.
func (a *Analyzer) AnalyzeText(text string, c domain.Category) (*domain.Analysis, error) {
	return a.Analyze(a.seg.Process(text), c)
}

// Analyze runs the detector for category c over doc
func (a *Analyzer) Analyze(doc *domain.Document, c domain.Category) (*domain.Analysis, error) {
	detect, ok := detectors[c]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}

	rows := detect(doc, a.opts)
	counts := domain.FeatureCounts{}
	if len(rows) > 0 {
		counts[string(c)] = len(rows)
	}

	return &domain.Analysis{
		ID:        uuid.New().String(),
		Category:  c,
		Columns:   c.Columns(),
		Rows:      rows,
		Count:     len(rows),
		Counts:    counts,
		CreatedAt: time.Now(),
	}, nil
}

// Summary counts the hits of every category over text. Categories without
// hits are left out.
func (a *Analyzer) Summary(text string) domain.FeatureCounts {
	doc := a.seg.Process(text)
	counts := domain.FeatureCounts{}
	for _, c := range domain.Categories() {
		if n := len(detectors[c](doc, a.opts)); n > 0 {
			counts[string(c)] = n
		}
	}
	return counts
}
