package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ggonc/gonc/internal/domain"
)

func TestWriteCSV_Header(t *testing.T) {
	var buf bytes.Buffer
	rows := []domain.Row{
		domain.NegationRow{Sentence: "Ich komme nicht.", Negation: "nicht", WordAfter: "."},
	}
	if err := WriteCSV(&buf, domain.CategoryNegation, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "Kalimat,Negasi,Kata Setelah Negasi\nIch komme nicht.,nicht,.\n"
	if buf.String() != want {
		t.Errorf("csv = %q, want %q", buf.String(), want)
	}
}

func TestCSV_RoundTrip(t *testing.T) {
	tests := []struct {
		category domain.Category
		rows     []domain.Row
	}{
		{domain.CategoryNegation, []domain.Row{
			domain.NegationRow{Sentence: "Er sagt: \"nein\", nicht heute.", Negation: "nicht", WordAfter: "heute"},
			domain.NegationRow{Sentence: "Kein Problem", Negation: "Kein", WordAfter: "Problem"},
		}},
		{domain.CategoryComparison, []domain.Row{
			domain.ComparisonRow{Kind: domain.KindComparative, Word: "größer"},
			domain.ComparisonRow{Kind: domain.KindSuperlative, Word: "amgrößsten"},
		}},
		{domain.CategoryIndefinitePronoun, []domain.Row{
			domain.PronounRow{Sentence: "Man sagt, man weiß.", Pronoun: "Man"},
			domain.PronounRow{Sentence: "Man sagt, man weiß.", Pronoun: "man"},
		}},
		{domain.CategoryConnector, []domain.Row{
			domain.ConnectorRow{Sentence: "Entweder du\noder ich.", Connector: "Entweder - oder"},
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteCSV(&buf, tt.category, tt.rows); err != nil {
				t.Fatalf("WriteCSV: %v", err)
			}
			got, err := ReadCSV(&buf, tt.category)
			if err != nil {
				t.Fatalf("ReadCSV: %v", err)
			}
			if len(got) != len(tt.rows) {
				t.Fatalf("got %d rows, want %d", len(got), len(tt.rows))
			}
			for i := range got {
				if got[i] != tt.rows[i] {
					t.Errorf("row %d = %+v, want %+v", i, got[i], tt.rows[i])
				}
			}
		})
	}
}

func TestCSV_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, domain.CategoryConnector, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	rows, err := ReadCSV(&buf, domain.CategoryConnector)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %v, want none", rows)
	}
}

func TestReadCSV_HeaderMismatch(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Jenis,Kata\nKomparatif,größer\n"), domain.CategoryConnector)
	if !errors.Is(err, ErrHeaderMismatch) {
		t.Errorf("error = %v, want ErrHeaderMismatch", err)
	}
}

func TestReadCSV_BOM(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("\ufeffJenis,Kata\nKomparatif,größer\n"), domain.CategoryComparison)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %v", rows)
	}
}

func TestWriteCSV_UnknownCategory(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, domain.Category("Passiv"), nil)
	if !errors.Is(err, domain.ErrUnknownCategory) {
		t.Errorf("error = %v, want ErrUnknownCategory", err)
	}
}

func TestPieChart(t *testing.T) {
	var buf bytes.Buffer
	counts := domain.FeatureCounts{"Negasi": 3, "Indefinitpronomen": 1}
	if err := PieChart(&buf, counts, ChartTitle); err != nil {
		t.Fatalf("PieChart: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("output is not a PNG (%d bytes)", buf.Len())
	}
}

func TestPieChart_NoData(t *testing.T) {
	var buf bytes.Buffer
	if err := PieChart(&buf, domain.FeatureCounts{}, ChartTitle); !errors.Is(err, ErrNoData) {
		t.Errorf("error = %v, want ErrNoData", err)
	}
}
