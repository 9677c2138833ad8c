package dataprep

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/data"
)

const stageDerive = "derive"

// Column names read and written by DeriveFeatures.
const (
	ColAge                   = "Age"
	ColYearsAtCompany        = "YearsAtCompany"
	ColYearsInCurrentRole    = "YearsInCurrentRole"
	ColTrainingTimesLastYear = "TrainingTimesLastYear"
	ColMonthlyIncome         = "MonthlyIncome"
	ColYearsSinceLastPromo   = "YearsSinceLastPromotion"

	ColYearsDiffRole   = "YearsDiff_Role"
	ColTrainingPerYear = "TrainingPerYear"
	ColAgeGroup        = "AgeGroup"
)

// Buckets bins a continuous value into labelled intervals. Edges must be
// strictly increasing and Labels has one entry per interval. Intervals are
// closed on the right; the first one is closed on both ends.
type Buckets struct {
	Edges  []float64
	Labels []string
}

// DefaultAgeBuckets are the AgeGroup bins: [18,30], (30,40], (40,50], (50,60].
func DefaultAgeBuckets() Buckets {
	return Buckets{
		Edges:  []float64{18, 30, 40, 50, 60},
		Labels: []string{"18-30", "30-40", "40-50", "50+"},
	}
}

// Validate checks the edges and labels line up.
func (b Buckets) Validate() error {
	if len(b.Edges) < 2 {
		return errors.Errorf("need at least 2 bucket edges, got %d", len(b.Edges))
	}
	if len(b.Labels) != len(b.Edges)-1 {
		return errors.Errorf("%d bucket edges need %d labels, got %d", len(b.Edges), len(b.Edges)-1, len(b.Labels))
	}
	for i := 1; i < len(b.Edges); i++ {
		if b.Edges[i] <= b.Edges[i-1] {
			return errors.Errorf("bucket edges must be strictly increasing: %g after %g", b.Edges[i], b.Edges[i-1])
		}
	}
	return nil
}

// Label returns the label of the interval holding v; ok is false outside the edges.
func (b Buckets) Label(v float64) (string, bool) {
	if v < b.Edges[0] || v > b.Edges[len(b.Edges)-1] {
		return "", false
	}
	for i := 1; i < len(b.Edges); i++ {
		if v <= b.Edges[i] {
			return b.Labels[i-1], true
		}
	}
	return "", false
}

// DeriveFeatures adds engineered columns whose inputs are present:
//
//	YearsDiff_Role  = YearsAtCompany - YearsInCurrentRole
//	TrainingPerYear = TrainingTimesLastYear / (YearsAtCompany + 1)
//	AgeGroup        = age bucket label of Age
//
// Absent inputs simply skip the derived column. Inputs must be numeric and
// fully present; an Age outside the bucket edges fails with data.ErrData.
func DeriveFeatures(t *data.Table, age Buckets) error {
	if years, ok, err := numericInput(t, ColYearsAtCompany); err != nil {
		return err
	} else if ok {
		if role, ok, err := numericInput(t, ColYearsInCurrentRole); err != nil {
			return err
		} else if ok {
			diff := make([]float64, t.Rows())
			for i := range diff {
				diff[i] = years.Floats[i] - role.Floats[i]
			}
			if err := addDerived(t, data.NewNumeric(ColYearsDiffRole, diff)); err != nil {
				return err
			}
		}

		if training, ok, err := numericInput(t, ColTrainingTimesLastYear); err != nil {
			return err
		} else if ok {
			per := make([]float64, t.Rows())
			for i := range per {
				// +1 keeps employees with zero tenure defined
				denom := years.Floats[i] + 1
				if denom == 0 {
					return data.DataError(stageDerive, ColYearsAtCompany, "row %d: %s + 1 is zero", i, ColYearsAtCompany)
				}
				per[i] = training.Floats[i] / denom
			}
			if err := addDerived(t, data.NewNumeric(ColTrainingPerYear, per)); err != nil {
				return err
			}
		}
	}

	ages, ok, err := numericInput(t, ColAge)
	if err != nil || !ok {
		return err
	}
	if err := age.Validate(); err != nil {
		return data.DataError(stageDerive, ColAgeGroup, "%v", err)
	}
	groups := make([]string, t.Rows())
	for i, v := range ages.Floats {
		label, ok := age.Label(v)
		if !ok {
			return data.DataError(stageDerive, ColAge, "row %d: age %g outside [%g, %g]",
				i, v, age.Edges[0], age.Edges[len(age.Edges)-1])
		}
		groups[i] = label
	}
	return addDerived(t, data.NewCategorical(ColAgeGroup, groups))
}

// numericInput fetches an input column. ok is false when the column is absent.
func numericInput(t *data.Table, name string) (*data.Column, bool, error) {
	c, ok := t.Column(name)
	if !ok {
		slog.Debug("Derived feature input absent", slog.String("column", name))
		return nil, false, nil
	}
	if c.Kind != data.Numeric {
		return nil, false, data.DataError(stageDerive, name, "expected numeric column, got %s", c.Kind)
	}
	if n := c.MissingCount(); n > 0 {
		return nil, false, data.DataError(stageDerive, name, "%d missing values left; impute first", n)
	}
	return c, true, nil
}

func addDerived(t *data.Table, c *data.Column) error {
	if err := t.Set(c); err != nil {
		return data.DataError(stageDerive, c.Name, "%v", err)
	}
	slog.Info("Derived feature", slog.String("column", c.Name))
	return nil
}
