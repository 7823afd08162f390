package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/ggonc/gonc/internal/api"
	"github.com/ggonc/gonc/internal/config"
	"github.com/ggonc/gonc/internal/domain"
	"github.com/ggonc/gonc/internal/export"
	"github.com/ggonc/gonc/internal/fetcher"
	"github.com/ggonc/gonc/internal/grammar"
	"github.com/ggonc/gonc/internal/lexicon"
	"github.com/ggonc/gonc/internal/nlp"
	"github.com/spf13/cobra"
)

var (
	cfg         *config.Config
	lexiconPath string
	strict      bool
)

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "gonc",
		Short: "German grammar feature detector",
	}

	rootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", cfg.LexiconPath, "lexicon database path")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", cfg.Strict, "match negation phrases and whole-word connectors")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(lexiconCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create lexicon dir: %w", err)
	}
	return nil
}

func getAnalyzer() (*grammar.Analyzer, error) {
	if err := ensureDir(lexiconPath); err != nil {
		return nil, err
	}
	lex, err := lexicon.Load(lexiconPath)
	if err != nil {
		return nil, err
	}
	opts := grammar.Options{PhraseMarkers: strict, WholeWordConnectors: strict}
	return grammar.New(nlp.New(lex), opts), nil
}

// inputFlags selects where the text to analyze comes from
type inputFlags struct {
	text string
	url  string
}

func (in *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.text, "text", "t", "", "text to analyze")
	cmd.Flags().StringVarP(&in.url, "url", "u", "", "fetch text from a URL")
}

// read returns the text from --text, --url, a file argument or stdin ("-")
func (in *inputFlags) read(ctx context.Context, args []string) (string, error) {
	switch {
	case in.text != "":
		return in.text, nil
	case in.url != "":
		return fetcher.New(cfg.FetchTimeout).Fetch(ctx, in.url)
	case len(args) == 1 && args[0] == "-":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return fetcher.ReadText(b)
	case len(args) == 1:
		return fetcher.ReadFile(args[0])
	}
	return "", errors.New("nothing to analyze: pass a file, --text or --url")
}

func analyzeCmd() *cobra.Command {
	var (
		in        inputFlags
		category  string
		csvPath   string
		chartPath string
	)

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Detect one grammar feature in a PDF, TXT or HTML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := domain.ParseCategory(category)
			if err != nil {
				return err
			}

			text, err := in.read(cmd.Context(), args)
			if err != nil {
				return err
			}

			a, err := getAnalyzer()
			if err != nil {
				return err
			}
			result, err := a.AnalyzeText(text, c)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Analisis %s\n\n", result.Category)
			if result.Count == 0 {
				fmt.Fprintln(out, result.Category.EmptyMessage())
				return nil
			}
			printTable(out, result)
			fmt.Fprintf(out, "\n%d hits\n", result.Count)

			if csvPath != "" {
				if csvPath == "auto" {
					csvPath = c.Filename()
				}
				if err := writeFile(csvPath, func(w io.Writer) error {
					return export.WriteCSV(w, c, result.Rows)
				}); err != nil {
					return err
				}
				fmt.Fprintf(out, "CSV written to %s\n", csvPath)
			}
			if chartPath != "" {
				if err := writeFile(chartPath, func(w io.Writer) error {
					return export.PieChart(w, result.Counts, export.ChartTitle)
				}); err != nil {
					return err
				}
				fmt.Fprintf(out, "Chart written to %s\n", chartPath)
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&category, "category", "c", string(domain.CategoryNegation), "negation, comparison, pronoun or connector")
	cmd.Flags().StringVar(&csvPath, "csv", "", `write rows as CSV ("auto" uses the category filename)`)
	cmd.Flags().StringVar(&chartPath, "chart", "", "write a PNG pie chart")
	return cmd
}

func summaryCmd() *cobra.Command {
	var (
		in        inputFlags
		chartPath string
	)

	cmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Count hits of every grammar feature",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := in.read(cmd.Context(), args)
			if err != nil {
				return err
			}

			a, err := getAnalyzer()
			if err != nil {
				return err
			}
			counts := a.Summary(text)

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, c := range domain.Categories() {
				fmt.Fprintf(tw, "%s\t%d\n", c, counts[string(c)])
			}
			fmt.Fprintf(tw, "Total\t%d\n", counts.Total())
			tw.Flush()

			if chartPath != "" {
				if err := writeFile(chartPath, func(w io.Writer) error {
					return export.PieChart(w, counts, export.ChartTitle)
				}); err != nil {
					return err
				}
				fmt.Fprintf(out, "Chart written to %s\n", chartPath)
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&chartPath, "chart", "", "write a PNG pie chart")
	return cmd
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List analysis categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SLUG\tLABEL\tCOLUMNS")
			for _, c := range domain.Categories() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Slug(), c, strings.Join(c.Columns(), ", "))
			}
			return tw.Flush()
		},
	}
}

func lexiconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Manage the German lexicon",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "install",
		Short: "Install the bundled lexicon, replacing any existing one",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureDir(lexiconPath); err != nil {
				return err
			}
			if err := lexicon.Install(lexiconPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Installed lexicon %s into %s\n", lexicon.Version, lexiconPath)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show what is installed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(lexiconPath); err != nil {
				return fmt.Errorf("no lexicon at %s (run 'gonc lexicon install')", lexiconPath)
			}
			st, err := lexicon.ReadStats(lexiconPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Path:      %s\n", st.Path)
			fmt.Fprintf(out, "Version:   %s\n", st.Version)
			fmt.Fprintf(out, "Installed: %s\n", st.InstalledAt)
			fmt.Fprintf(out, "Forms:     %d\n", st.Forms)

			tags := make([]string, 0, len(st.ByPOS))
			for pos := range st.ByPOS {
				tags = append(tags, string(pos))
			}
			sort.Strings(tags)
			for _, t := range tags {
				fmt.Fprintf(out, "  %-6s %d\n", t, st.ByPOS[domain.POS(t)])
			}
			return nil
		},
	})

	return cmd
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and web form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.SentryDSN != "" {
				if err := sentry.Init(sentry.ClientOptions{
					Dsn:         cfg.SentryDSN,
					Environment: cfg.Environment,
				}); err != nil {
					log.Printf("[server] sentry disabled: %v", err)
				} else {
					defer sentry.Flush(2 * time.Second)
				}
			}

			a, err := getAnalyzer()
			if err != nil {
				return err
			}

			cfg.Addr = addr
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := api.New(a, fetcher.New(cfg.FetchTimeout), cfg)
			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", cfg.Addr, "server address")
	return cmd
}

func printTable(w io.Writer, a *domain.Analysis) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(a.Columns, "\t"))
	for _, row := range a.Rows {
		cells := row.Values()
		for i, c := range cells {
			cells[i] = truncate(c, 60)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func truncate(s string, max int) string {
	// Replace newlines with spaces for display
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
