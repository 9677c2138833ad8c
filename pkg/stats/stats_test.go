package stats

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, Median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
	assert.True(t, math.IsNaN(Median(nil)))

	x := []float64{3, 1, 2}
	Median(x)
	assert.Equal(t, []float64{3, 1, 2}, x, "input must not be reordered")
}

func TestVarianceIsPopulation(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 5.0, Mean(x), 1e-12)
	assert.InDelta(t, 4.0, Variance(x), 1e-12)
	assert.InDelta(t, 2.0, Std(x), 1e-12)
}

func TestModeFirstEncounteredWinsTies(t *testing.T) {
	m, ok := Mode([]string{"a", "b", "b", "a"})
	require.True(t, ok)
	assert.Equal(t, "a", m)

	m, ok = Mode([]string{"Travel_Rarely", "Non-Travel", "Non-Travel"})
	require.True(t, ok)
	assert.Equal(t, "Non-Travel", m)

	f, ok := Mode([]float64{1, 0, 0, 1, 1})
	require.True(t, ok)
	assert.Equal(t, 1.0, f)

	_, ok = Mode([]string{})
	assert.False(t, ok)
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, Distinct([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, Distinct([]string{}))
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1.0, Correlation(x, []float64{2, 4, 6, 8}), 1e-12)
	assert.InDelta(t, -1.0, Correlation(x, []float64{8, 6, 4, 2}), 1e-12)
	assert.InDelta(t, 0.0, Correlation([]float64{1, 2, 3}, []float64{1, 0, 1}), 1e-12)
	assert.True(t, math.IsNaN(Correlation(x, []float64{1, 1, 1, 1})))
	assert.True(t, math.IsNaN(Correlation(x, []float64{1, 2})))
}

func TestStandardScaler(t *testing.T) {
	cols := [][]float64{
		{22, 35, 41, 58, 30},
		{2000, 4500, 5200, 19999, 3100},
	}
	s := NewStandardScaler()
	out, err := s.FitTransform(cols)
	require.NoError(t, err)
	for j := range out {
		assert.InDelta(t, 0, Mean(out[j]), 1e-9)
		assert.InDelta(t, 1, Std(out[j]), 1e-9)
	}
	assert.Equal(t, []float64{22, 35, 41, 58, 30}, cols[0], "input must be left untouched")
}

func TestStandardScalerRejectsConstantColumn(t *testing.T) {
	tests := []struct {
		name string
		col  []float64
	}{
		{name: "integral", col: []float64{5000, 5000, 5000}},
		{name: "fractional", col: []float64{0.1, 0.1, 0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStandardScaler()
			err := s.Fit([][]float64{{1, 2, 3}, tt.col})

			var zv *ZeroVarianceError
			require.True(t, errors.As(err, &zv))
			assert.Equal(t, 1, zv.Index)
			assert.Equal(t, tt.col[0], zv.Value)

			_, err = s.Transform([][]float64{{1, 2, 3}, tt.col})
			assert.ErrorIs(t, err, ErrNotFitted)
		})
	}
}

func TestStandardScalerRejectsNonFiniteColumn(t *testing.T) {
	tests := []struct {
		name string
		col  []float64
	}{
		{name: "inf", col: []float64{1000, 2000, math.Inf(1)}},
		{name: "negative inf", col: []float64{math.Inf(-1), 2000, 3000}},
		{name: "nan", col: []float64{1000, math.NaN(), 3000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStandardScaler()
			_, err := s.FitTransform([][]float64{{1, 2, 3}, tt.col})

			var nf *NonFiniteError
			require.True(t, errors.As(err, &nf))
			assert.Equal(t, 1, nf.Index)
		})
	}
}
