package export

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/ggonc/gonc/internal/domain"
	chart "github.com/wcharczuk/go-chart/v2"
)

// ChartTitle is the default pie chart title
const ChartTitle = "Frekuensi Fitur Gramatik"

// ErrNoData is returned when there is nothing to chart
var ErrNoData = errors.New("no feature counts to chart")

// PieChart renders counts as a PNG pie chart with percentage labels.
// Slices are ordered by label.
func PieChart(w io.Writer, counts domain.FeatureCounts, title string) error {
	total := counts.Total()
	if total == 0 {
		return ErrNoData
	}

	labels := make([]string, 0, len(counts))
	for label, n := range counts {
		if n > 0 {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)

	values := make([]chart.Value, 0, len(labels))
	for _, label := range labels {
		n := counts[label]
		pct := float64(n) / float64(total) * 100
		values = append(values, chart.Value{
			Value: float64(n),
			Label: fmt.Sprintf("%s (%.1f%%)", label, pct),
		})
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  640,
		Height: 640,
		Values: values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
