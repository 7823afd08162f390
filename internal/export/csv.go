// Package export renders analyses as CSV files and pie charts.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ggonc/gonc/internal/domain"
)

// ErrHeaderMismatch is returned when a CSV header does not fit its category
var ErrHeaderMismatch = errors.New("csv header does not match category")

// WriteCSV writes the header for c followed by one record per row
func WriteCSV(w io.Writer, c domain.Category, rows []domain.Row) error {
	cols := c.Columns()
	if cols == nil {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		if err := cw.Write(r.Values()); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a file written by WriteCSV back into typed rows
func ReadCSV(r io.Reader, c domain.Category) ([]domain.Row, error) {
	cols := c.Columns()
	if cols == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrHeaderMismatch)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	if len(header) != len(cols) {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrHeaderMismatch, header, cols)
	}
	for i := range cols {
		if header[i] != cols[i] {
			return nil, fmt.Errorf("%w: got %q, want %q", ErrHeaderMismatch, header, cols)
		}
	}

	var rows []domain.Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows), err)
		}
		if len(rec) != len(cols) {
			return nil, fmt.Errorf("row %d: %d fields, want %d", len(rows), len(rec), len(cols))
		}
		rows = append(rows, rowFromRecord(c, rec))
	}
	return rows, nil
}

func rowFromRecord(c domain.Category, rec []string) domain.Row {
	switch c {
	case domain.CategoryNegation:
		return domain.NegationRow{Sentence: rec[0], Negation: rec[1], WordAfter: rec[2]}
	case domain.CategoryComparison:
		return domain.ComparisonRow{Kind: domain.Kind(rec[0]), Word: rec[1]}
	case domain.CategoryIndefinitePronoun:
		return domain.PronounRow{Sentence: rec[0], Pronoun: rec[1]}
	default:
		return domain.ConnectorRow{Sentence: rec[0], Connector: rec[1]}
	}
}
