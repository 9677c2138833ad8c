package dataprep

import (
	"log/slog"
	"sort"

	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/data"
	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/stats"
)

const stageEncode = "encode"

// Encode converts categorical columns to numeric form.
//
// A column with exactly two distinct values is label encoded in place: the
// lexicographically smaller value becomes 0 and the other 1. A column with three
// or more distinct values is replaced by indicator columns named
// "<column>_<value>", one per value except the lexicographically first, appended
// after all other columns. Single-valued columns are left as they are.
func Encode(t *data.Table) error {
	var multi []*data.Column
	for _, c := range t.Columns() {
		if c.Kind != data.Categorical {
			continue
		}
		if n := c.MissingCount(); n > 0 {
			return data.DataError(stageEncode, c.Name, "%d missing values left; impute first", n)
		}
		levels := Levels(c)
		switch {
		case len(levels) == 0:
			return data.DataError(stageEncode, c.Name, "no distinct values")
		case len(levels) == 2:
			if err := t.Set(LabelEncode(c, levels)); err != nil {
				return data.DataError(stageEncode, c.Name, "%v", err)
			}
			slog.Info("Label encoded column",
				slog.String("column", c.Name),
				slog.String("zero", levels[0]),
				slog.String("one", levels[1]))
		case len(levels) > 2:
			multi = append(multi, c)
		}
	}

	for _, c := range multi {
		levels := Levels(c)
		indicators := OneHot(c, levels)
		t.Drop(c.Name)
		for _, ind := range indicators {
			if t.Has(ind.Name) {
				return data.DataError(stageEncode, c.Name, "indicator column %q already exists", ind.Name)
			}
			if err := t.Add(ind); err != nil {
				return data.DataError(stageEncode, c.Name, "%v", err)
			}
		}
		slog.Info("One-hot encoded column",
			slog.String("column", c.Name),
			slog.String("reference", levels[0]),
			slog.Int("indicators", len(indicators)))
	}
	return nil
}

// Levels returns the distinct present values of a categorical column, sorted.
func Levels(c *data.Column) []string {
	levels := stats.Distinct(c.PresentStrings())
	sort.Strings(levels)
	return levels
}

// LabelEncode maps each cell to the index of its value in levels.
func LabelEncode(c *data.Column, levels []string) *data.Column {
	code := make(map[string]float64, len(levels))
	for i, l := range levels {
		code[l] = float64(i)
	}
	out := make([]float64, len(c.Strings))
	for i, v := range c.Strings {
		out[i] = code[v]
	}
	return data.NewNumeric(c.Name, out)
}

// OneHot builds one boolean indicator column per level, skipping levels[0].
func OneHot(c *data.Column, levels []string) []*data.Column {
	out := make([]*data.Column, 0, len(levels)-1)
	for _, l := range levels[1:] {
		vals := make([]bool, len(c.Strings))
		for i, v := range c.Strings {
			vals[i] = v == l
		}
		out = append(out, data.NewBoolean(c.Name+"_"+l, vals))
	}
	return out
}
