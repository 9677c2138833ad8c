package dataprep

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/data"
	"github.com/RithikaAnalyst/HR-Analytics-for-Employee-Retention-Engagement-Insights/pkg/stats"
)

func TestStandardize(t *testing.T) {
	tbl, err := data.NewTable(
		data.NewNumeric(ColAge, []float64{41, 49, 37, 33, 27, 32}),
		data.NewNumeric(ColMonthlyIncome, []float64{5993, 5130, 2090, 2909, 3468, 3068}),
		data.NewNumeric("DailyRate", []float64{1102, 279, 1373, 1392, 591, 1005}),
	)
	require.NoError(t, err)

	scaled, err := Standardize(tbl, DefaultScaleColumns())
	require.NoError(t, err)
	assert.Equal(t, []string{ColAge, ColMonthlyIncome}, scaled)

	for _, name := range scaled {
		c := column(t, tbl, name)
		assert.InDelta(t, 0, stats.Mean(c.Floats), 1e-9, name)
		assert.InDelta(t, 1, stats.Std(c.Floats), 1e-9, name)
	}
	assert.Equal(t, []float64{1102, 279, 1373, 1392, 591, 1005}, column(t, tbl, "DailyRate").Floats)
}

func TestStandardizeConstantColumnFails(t *testing.T) {
	tbl, err := data.NewTable(
		data.NewNumeric(ColAge, []float64{30, 40, 50}),
		data.NewNumeric(ColMonthlyIncome, []float64{5000, 5000, 5000}),
	)
	require.NoError(t, err)

	_, err = Standardize(tbl, DefaultScaleColumns())
	require.Error(t, err)
	assert.ErrorIs(t, err, data.ErrData)

	var derr *data.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "scale", derr.Stage)
	assert.Equal(t, ColMonthlyIncome, derr.Column)

	// nothing was rewritten
	assert.Equal(t, []float64{30, 40, 50}, column(t, tbl, ColAge).Floats)
	assert.Equal(t, []float64{5000, 5000, 5000}, column(t, tbl, ColMonthlyIncome).Floats)
}

func TestStandardizeNonFiniteColumnFails(t *testing.T) {
	income := data.NewNumeric(ColMonthlyIncome, []float64{1000, 2000, math.Inf(1)})
	tbl, err := data.NewTable(data.NewNumeric(ColAge, []float64{30, 40, 50}), income)
	require.NoError(t, err)

	_, err = Standardize(tbl, DefaultScaleColumns())
	require.Error(t, err)
	assert.ErrorIs(t, err, data.ErrData)

	var derr *data.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, ColMonthlyIncome, derr.Column)
	assert.Equal(t, 1000.0, income.Floats[0])
}

func TestStandardizeAfterLoadingInfinity(t *testing.T) {
	tbl := readTable(t, "MonthlyIncome\n1000\n2000\ninf\n")
	require.NoError(t, Impute(tbl))

	scaled, err := Standardize(tbl, DefaultScaleColumns())
	require.NoError(t, err)
	assert.Equal(t, []string{ColMonthlyIncome}, scaled)

	c := column(t, tbl, ColMonthlyIncome)
	for _, v := range c.Floats {
		assert.False(t, math.IsNaN(v))
	}
	assert.InDelta(t, 0, stats.Mean(c.Floats), 1e-9)
	assert.InDelta(t, 1, stats.Std(c.Floats), 1e-9)
}

func TestStandardizeNothingPresent(t *testing.T) {
	tbl, err := data.NewTable(data.NewNumeric("DailyRate", []float64{1, 2}))
	require.NoError(t, err)

	scaled, err := Standardize(tbl, DefaultScaleColumns())
	require.NoError(t, err)
	assert.Empty(t, scaled)
}

func TestStandardizeRejectsCategorical(t *testing.T) {
	tbl, err := data.NewTable(data.NewCategorical(ColAge, []string{"young", "old"}))
	require.NoError(t, err)

	_, err = Standardize(tbl, DefaultScaleColumns())
	assert.ErrorIs(t, err, data.ErrData)
}
