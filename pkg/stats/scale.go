package stats

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrNotFitted is returned by Transform before Fit succeeded.
var ErrNotFitted = errors.New("scaler is not fitted")

// ZeroVarianceError reports a constant column that cannot be standardized.
type ZeroVarianceError struct {
	Index int
	Value float64
}

func (e *ZeroVarianceError) Error() string {
	return fmt.Sprintf("column %d is constant (%g): standard deviation is zero", e.Index, e.Value)
}

// NonFiniteError reports a column whose mean or standard deviation is not finite.
type NonFiniteError struct {
	Index int
	Mean  float64
	Std   float64
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("column %d has non-finite statistics (mean %g, std %g)", e.Index, e.Mean, e.Std)
}

// StandardScaler standardizes columns to zero mean and unit variance using
// population statistics. Data is column-major: cols[j] holds every value of column j.
type StandardScaler struct {
	Mean []float64
	Std  []float64
	fit  bool
}

func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fit computes per-column mean and standard deviation. A column with zero
// standard deviation fails with *ZeroVarianceError, one holding Inf or NaN
// with *NonFiniteError.
func (s *StandardScaler) Fit(cols [][]float64) error {
	s.fit = false
	s.Mean = make([]float64, len(cols))
	s.Std = make([]float64, len(cols))
	for j, col := range cols {
		if len(col) == 0 {
			return errors.Errorf("column %d is empty", j)
		}
		s.Mean[j] = Mean(col)
		s.Std[j] = Std(col)
		if !isFinite(s.Mean[j]) || !isFinite(s.Std[j]) {
			return &NonFiniteError{Index: j, Mean: s.Mean[j], Std: s.Std[j]}
		}
		// the mean of a constant column can round away from its value,
		// leaving a tiny nonzero spread, so test for constancy directly
		if s.Std[j] == 0 || isConstant(col) {
			return &ZeroVarianceError{Index: j, Value: col[0]}
		}
	}
	s.fit = true
	return nil
}

// Transform returns standardized copies of cols.
func (s *StandardScaler) Transform(cols [][]float64) ([][]float64, error) {
	if !s.fit {
		return nil, ErrNotFitted
	}
	if len(cols) != len(s.Mean) {
		return nil, errors.Errorf("scaler fitted on %d columns, got %d", len(s.Mean), len(cols))
	}
	out := make([][]float64, len(cols))
	for j, col := range cols {
		y := make([]float64, len(col))
		for i, v := range col {
			y[i] = (v - s.Mean[j]) / s.Std[j]
		}
		out[j] = y
	}
	return out, nil
}

// FitTransform fits on cols and returns them standardized.
func (s *StandardScaler) FitTransform(cols [][]float64) ([][]float64, error) {
	if err := s.Fit(cols); err != nil {
		return nil, err
	}
	return s.Transform(cols)
}

func isFinite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

func isConstant(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}
