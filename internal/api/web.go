package api

import (
	"bytes"
	"embed"
	"encoding/base64"
	"errors"
	"html/template"
	"log"
	"mime"
	"net/http"
	"strings"

	"github.com/ggonc/gonc/internal/domain"
	"github.com/ggonc/gonc/internal/export"
	"github.com/ggonc/gonc/internal/fetcher"
)

//go:embed templates/index.html
var templateFS embed.FS

type faqItem struct {
	Question, Answer string
}

var faq = []faqItem{
	{"Apa itu G.GONC?", "G.GONC adalah alat bantu untuk mendeteksi penggunaan gramatik bahasa Jerman."},
	{"Bagaimana cara menggunakan G.GONC?", "Masukkan teks atau unggah file PDF/TXT, lalu pilih jenis gramatik yang ingin dianalisis."},
	{"Apakah G.GONC gratis?", "Ya, saat ini G.GONC gratis digunakan."},
}

// pageData feeds templates/index.html
type pageData struct {
	Categories []string
	Selected   string
	Text       string
	Warning    string
	FAQ        []faqItem
	Result     *resultView
}

type resultView struct {
	Category    string
	Columns     []string
	Rows        [][]string
	Count       int
	Empty       string
	Chart       template.URL
	CSV         template.URL
	CSVFilename string
}

func (s *Server) newPage() *pageData {
	p := &pageData{FAQ: faq, Selected: string(domain.CategoryNegation)}
	for _, c := range domain.Categories() {
		p.Categories = append(p.Categories, string(c))
	}
	return p
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, s.newPage())
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) {
	page := s.newPage()

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	var err error
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "multipart/form-data" {
		err = r.ParseMultipartForm(s.cfg.MaxUploadBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			page.Warning = "File terlalu besar."
			s.render(w, http.StatusRequestEntityTooLarge, page)
			return
		}
		page.Warning = "Form tidak valid."
		s.render(w, http.StatusBadRequest, page)
		return
	}

	c, err := domain.ParseCategory(r.FormValue("category"))
	if err != nil {
		page.Warning = "Jenis analisis tidak dikenal."
		s.render(w, http.StatusBadRequest, page)
		return
	}
	page.Selected = string(c)
	page.Text = r.FormValue("text")

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		if header.Filename != "" {
			text, err := fetcher.Read(header.Filename, file)
			if err != nil {
				status := http.StatusBadRequest
				page.Warning = "File tidak dapat dibaca."
				if errors.Is(err, fetcher.ErrUnsupportedType) {
					status = http.StatusUnsupportedMediaType
					page.Warning = "Jenis file tidak didukung. Unggah PDF atau TXT."
				}
				s.render(w, status, page)
				return
			}
			page.Text = text
		}
	}

	if strings.TrimSpace(page.Text) == "" {
		page.Warning = "Harap masukkan teks untuk dianalisis."
		s.render(w, http.StatusOK, page)
		return
	}

	a, err := s.analyzer.AnalyzeText(page.Text, c)
	if err != nil {
		s.writeServerError(w, r, err)
		return
	}

	result, err := newResultView(a)
	if err != nil {
		s.writeServerError(w, r, err)
		return
	}
	page.Result = result
	s.render(w, http.StatusOK, page)
}

// newResultView renders the table, inline chart and CSV download of a
func newResultView(a *domain.Analysis) (*resultView, error) {
	v := &resultView{
		Category: string(a.Category),
		Columns:  a.Columns,
		Count:    a.Count,
	}
	if a.Count == 0 {
		v.Empty = a.Category.EmptyMessage()
		return v, nil
	}

	for _, row := range a.Rows {
		v.Rows = append(v.Rows, row.Values())
	}

	var csvBuf bytes.Buffer
	if err := export.WriteCSV(&csvBuf, a.Category, a.Rows); err != nil {
		return nil, err
	}
	v.CSV = template.URL("data:text/csv;charset=utf-8;base64," + base64.StdEncoding.EncodeToString(csvBuf.Bytes()))
	v.CSVFilename = a.Category.Filename()

	var png bytes.Buffer
	if err := export.PieChart(&png, a.Counts, export.ChartTitle); err != nil {
		return nil, err
	}
	v.Chart = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png.Bytes()))
	return v, nil
}

func (s *Server) render(w http.ResponseWriter, status int, page *pageData) {
	var buf bytes.Buffer
	if err := s.page.Execute(&buf, page); err != nil {
		log.Printf("[api] render page: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
