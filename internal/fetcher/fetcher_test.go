package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReadText(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"utf8", []byte("Das ist größer."), "Das ist größer."},
		{"bom", []byte("\xef\xbb\xbfKein Problem."), "Kein Problem."},
		{"latin1", []byte("Das ist gr\xf6\xdfer."), "Das ist größer."},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadText(tt.in)
			if err != nil {
				t.Fatalf("ReadText: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadHTML(t *testing.T) {
	page := `<html><head><title>T</title><style>p{}</style></head><body>
<nav>Menü</nav>
<h1>Titel</h1>
<p>Ich komme   nicht.</p>
<script>var x = 1;</script>
<p>Jemand ist <b>größer</b>.</p>
</body></html>`

	got, err := ReadHTML([]byte(page))
	if err != nil {
		t.Fatalf("ReadHTML: %v", err)
	}
	want := "Titel\n\nIch komme nicht.\n\nJemand ist größer ."
	if got != want {
		t.Errorf("ReadHTML = %q, want %q", got, want)
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		want    string
		wantErr error
	}{
		{"txt", "a.txt", "Man sagt nichts.", "Man sagt nichts.", nil},
		{"upper case ext", "A.TXT", "Nie.", "Nie.", nil},
		{"html", "a.html", "<p>Keiner kam.</p>", "Keiner kam.", nil},
		{"docx", "a.docx", "x", "", ErrUnsupportedType},
		{"no ext", "README", "x", "", ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(tt.file, strings.NewReader(tt.body))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if got != tt.want {
				t.Errorf("Read = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadPDF_Invalid(t *testing.T) {
	if _, err := ReadPDF([]byte("not a pdf")); err == nil {
		t.Error("expected error for invalid pdf")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(path, []byte("Entweder du oder ich."), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "Entweder du oder ich." {
		t.Errorf("ReadFile = %q", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/page":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte("<p>Niemand weiß es.</p>"))
		case "/plain":
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte("Nicht jetzt."))
		case "/image":
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte("\x89PNG"))
		case "/empty":
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<script>x()</script>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(5 * time.Second)
	ctx := context.Background()

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"/page", "Niemand weiß es.", false},
		{"/plain", "Nicht jetzt.", false},
		{"/image", "", true},
		{"/empty", "", true},
		{"/missing", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := c.Fetch(ctx, srv.URL+tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if got != tt.want {
				t.Errorf("Fetch = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFetch_UnsupportedScheme(t *testing.T) {
	if _, err := New(time.Second).Fetch(context.Background(), "ftp://example.com/a.txt"); err == nil {
		t.Error("expected error for ftp scheme")
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://example.de", true},
		{"http://example.de", true},
		{"www.example.de", true},
		{"Ich komme nicht.", false},
	}
	for _, tt := range tests {
		if got := IsURL(tt.in); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
