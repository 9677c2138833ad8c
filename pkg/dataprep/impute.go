package dataprep

import (
	"log/slog"
	"strconv"

	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/data"
	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/stats"
)

const stageImpute = "impute"

// Impute fills every missing cell in place: numeric columns with the median of
// their present values, categorical and boolean columns with their mode.
// A column with no present value fails with data.ErrData.
func Impute(t *data.Table) error {
	for _, c := range t.Columns() {
		missing := c.MissingCount()
		if missing == 0 {
			continue
		}
		if missing == c.Len() {
			return data.DataError(stageImpute, c.Name, "all %d values are missing", missing)
		}

		var fill, strategy string
		switch c.Kind {
		case data.Numeric:
			median := stats.Median(c.PresentFloats())
			fillFloats(c, median)
			fill = strconv.FormatFloat(median, 'f', -1, 64)
			strategy = "median"
		case data.Boolean:
			mode, _ := stats.Mode(c.PresentFloats())
			fillFloats(c, mode)
			fill = strconv.FormatBool(mode != 0)
			strategy = "mode"
		case data.Categorical:
			mode, _ := stats.Mode(c.PresentStrings())
			for i := range c.Strings {
				if c.Missing[i] {
					c.Strings[i] = mode
					c.Missing[i] = false
				}
			}
			fill = mode
			strategy = "mode"
		}
		slog.Info("Imputed missing values",
			slog.String("column", c.Name),
			slog.String("strategy", strategy),
			slog.Int("cells", missing),
			slog.String("value", fill))
	}
	return nil
}

func fillFloats(c *data.Column, v float64) {
	for i := range c.Floats {
		if c.Missing[i] {
			c.Floats[i] = v
			c.Missing[i] = false
		}
	}
}
