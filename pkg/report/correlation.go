package report

import (
	"log/slog"
	"math"

	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/core"
	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/data"
	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/stats"
)

const stageReport = "report"

// Correlation is a symmetric Pearson correlation matrix over named columns.
type Correlation struct {
	Names  []string
	Matrix *core.Matrix
}

// Correlate computes pairwise Pearson correlations over the numeric columns
// of t, in table order. Boolean columns, one-hot indicators included, are
// left out. Pairs involving a constant column
// are NaN. The table is not modified.
func Correlate(t *data.Table) (*Correlation, error) {
	var (
		names []string
		cols  [][]float64
	)
	for _, c := range t.Columns() {
		if c.Kind != data.Numeric {
			continue
		}
		if n := c.MissingCount(); n > 0 {
			return nil, data.DataError(stageReport, c.Name, "%d missing values left; impute first", n)
		}
		names = append(names, c.Name)
		cols = append(cols, c.Floats)
	}
	if len(names) == 0 {
		return nil, data.DataError(stageReport, "", "no numeric columns to correlate")
	}

	m := core.NewMatrix(len(names), len(names))
	for i := range cols {
		for j := i; j < len(cols); j++ {
			r := stats.Correlation(cols[i], cols[j])
			if i == j && !math.IsNaN(r) {
				r = 1
			}
			m.Set(i, j, r)
			m.Set(j, i, r)
		}
	}
	slog.Info("Computed correlation matrix", slog.Int("columns", len(names)))
	return &Correlation{Names: names, Matrix: m}, nil
}

// At returns the correlation between columns a and b; ok is false when
// either is not in the matrix.
func (c *Correlation) At(a, b string) (r float64, ok bool) {
	i, j := c.index(a), c.index(b)
	if i < 0 || j < 0 {
		return math.NaN(), false
	}
	return c.Matrix.At(i, j), true
}

func (c *Correlation) index(name string) int {
	for i, n := range c.Names {
		if n == name {
			return i
		}
	}
	return -1
}
