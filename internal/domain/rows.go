package domain

// Row is one detection hit, rendered as table cells in column order
type Row interface {
	Values() []string
}

// NoWordAfter marks a negation that ends its sentence
const NoWordAfter = "-"

// NegationRow records the first negation marker of a sentence
type NegationRow struct {
	Sentence  string `json:"sentence"`
	Negation  string `json:"negation"`
	WordAfter string `json:"word_after"`
}

func (r NegationRow) Values() []string {
	return []string{r.Sentence, r.Negation, r.WordAfter}
}

// Kind distinguishes comparative from superlative hits
type Kind string

const (
	KindComparative Kind = "Komparatif"
	KindSuperlative Kind = "Superlatif"
)

// ComparisonRow records an adjective matching a comparison heuristic
type ComparisonRow struct {
	Kind Kind   `json:"kind"`
	Word string `json:"word"`
}

func (r ComparisonRow) Values() []string {
	return []string{string(r.Kind), r.Word}
}

// PronounRow records one indefinite pronoun occurrence
type PronounRow struct {
	Sentence string `json:"sentence"`
	Pronoun  string `json:"pronoun"`
}

func (r PronounRow) Values() []string {
	return []string{r.Sentence, r.Pronoun}
}

// ConnectorRow records a correlative connector pair found in a sentence
type ConnectorRow struct {
	Sentence  string `json:"sentence"`
	Connector string `json:"connector"`
}

func (r ConnectorRow) Values() []string {
	return []string{r.Sentence, r.Connector}
}
