package dataprep

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/data"
	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/stats"
)

const stageScale = "scale"

// DefaultScaleColumns is the whitelist of columns standardized by default.
func DefaultScaleColumns() []string {
	return []string{ColAge, ColYearsAtCompany, ColMonthlyIncome, ColYearsSinceLastPromo, ColTrainingTimesLastYear}
}

// Standardize rescales the whitelisted columns present in t to zero mean and
// unit variance, in place, and returns the names it scaled in whitelist order.
// A constant column, or one holding Inf or NaN, fails with data.ErrData.
func Standardize(t *data.Table, whitelist []string) ([]string, error) {
	var (
		names []string
		cols  [][]float64
	)
	for _, name := range whitelist {
		c, ok := t.Column(name)
		if !ok {
			continue
		}
		if c.Kind != data.Numeric {
			return nil, data.DataError(stageScale, name, "expected numeric column, got %s", c.Kind)
		}
		if n := c.MissingCount(); n > 0 {
			return nil, data.DataError(stageScale, name, "%d missing values left; impute first", n)
		}
		names = append(names, name)
		cols = append(cols, c.Floats)
	}
	if len(names) == 0 {
		slog.Warn("No whitelisted column present; nothing scaled")
		return nil, nil
	}

	scaler := stats.NewStandardScaler()
	scaled, err := scaler.FitTransform(cols)
	if err != nil {
		var zv *stats.ZeroVarianceError
		if errors.As(err, &zv) {
			return nil, data.DataError(stageScale, names[zv.Index], "constant value %g cannot be standardized", zv.Value)
		}
		var nf *stats.NonFiniteError
		if errors.As(err, &nf) {
			return nil, data.DataError(stageScale, names[nf.Index], "non-finite mean %g or std %g", nf.Mean, nf.Std)
		}
		return nil, data.DataError(stageScale, "", "%v", err)
	}
	for j, name := range names {
		c, _ := t.Column(name)
		copy(c.Floats, scaled[j])
		slog.Info("Standardized column",
			slog.String("column", name),
			slog.Float64("mean", scaler.Mean[j]),
			slog.Float64("std", scaler.Std[j]))
	}
	return names, nil
}
