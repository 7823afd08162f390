package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned for a category name no detector handles
var ErrUnknownCategory = errors.New("unknown analysis category")

// Category selects one of the grammar detectors
type Category string

const (
	CategoryNegation          Category = "Negasi"
	CategoryComparison        Category = "Komparatif dan Superlatif"
	CategoryIndefinitePronoun Category = "Indefinitpronomen"
	CategoryConnector         Category = "Zweiteilige Konnektoren"
)

// Categories lists every category in display order
func Categories() []Category {
	return []Category{
		CategoryNegation,
		CategoryComparison,
		CategoryIndefinitePronoun,
		CategoryConnector,
	}
}

var categorySlugs = map[string]Category{
	"negation":   CategoryNegation,
	"comparison": CategoryComparison,
	"pronoun":    CategoryIndefinitePronoun,
	"connector":  CategoryConnector,
}

// ParseCategory accepts a display label (any case) or a short slug
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if c, ok := categorySlugs[strings.ToLower(s)]; ok {
		return c, nil
	}
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Slug returns the short name used on the command line
func (c Category) Slug() string {
	for slug, cat := range categorySlugs {
		if cat == c {
			return slug
		}
	}
	return ""
}

// Columns returns the table and CSV header for the category
func (c Category) Columns() []string {
	switch c {
	case CategoryNegation:
		return []string{"Kalimat", "Negasi", "Kata Setelah Negasi"}
	case CategoryComparison:
		return []string{"Jenis", "Kata"}
	case CategoryIndefinitePronoun:
		return []string{"Kalimat", "Indefinitpronomen"}
	case CategoryConnector:
		return []string{"Kalimat", "Konektor"}
	}
	return nil
}

// Filename returns the CSV download name for the category
func (c Category) Filename() string {
	switch c {
	case CategoryNegation:
		return "analisis_negasi.csv"
	case CategoryComparison:
		return "analisis_komparatif_superlatif.csv"
	case CategoryIndefinitePronoun:
		return "analisis_indefinitpronomen.csv"
	case CategoryConnector:
		return "analisis_zweiteilige_konnektoren.csv"
	}
	return "analisis.csv"
}

// EmptyMessage is shown when a detector finds nothing
func (c Category) EmptyMessage() string {
	switch c {
	case CategoryNegation:
		return "Tidak ada negasi ditemukan."
	case CategoryComparison:
		return "Tidak ada komparatif atau superlatif ditemukan."
	case CategoryIndefinitePronoun:
		return "Tidak ada Indefinitpronomen ditemukan."
	case CategoryConnector:
		return "Tidak ada Zweiteilige Konnektoren ditemukan."
	}
	return ""
}
