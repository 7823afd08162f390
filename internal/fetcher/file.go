package fetcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnsupportedType is returned for inputs that are not PDF, TXT or HTML
var ErrUnsupportedType = errors.New("unsupported file type")

// ReadText decodes a plain-text file. UTF-8 is expected; anything else is
// read as Windows-1252, which covers Latin-1 umlauts.
func ReadText(data []byte) (string, error) {
	data = trimBOM(data)
	if utf8.Valid(data) {
		return string(data), nil
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return string(out), nil
}

func trimBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}

// Read extracts text from r, choosing a reader by the extension of name
func Read(name string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".pdf", ".txt", ".text", ".html", ".htm":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}

	switch ext {
	case ".pdf":
		return ReadPDF(data)
	case ".html", ".htm":
		return ReadHTML(data)
	default:
		return ReadText(data)
	}
}

// ReadFile opens path and extracts its text
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return Read(filepath.Base(path), f)
}
