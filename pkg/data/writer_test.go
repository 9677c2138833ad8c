package data

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := NewTable(
		NewNumeric("Age", []float64{30, 41.5, -0.1234567891234}),
		NewCategorical("AgeGroup", []string{"18-30", "40-50", "30-40"}),
		NewBoolean("Department_Sales", []bool{true, false, true}),
		NewNumeric("Attrition", []float64{1, 0, 0}),
	)
	require.NoError(t, err)
	return tbl
}

func TestWriteFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(sampleTable(t), &buf))

	want := "Age,AgeGroup,Department_Sales,Attrition\n" +
		"30,18-30,True,1\n" +
		"41.5,40-50,False,0\n" +
		"-0.1234567891234,30-40,True,0\n"
	assert.Equal(t, want, buf.String())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "cleaned.csv")
	want := sampleTable(t)

	require.NoError(t, Save(want, path))
	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, want.Names(), got.Names())
	assert.Equal(t, want.Schema(), got.Schema())
	for _, wc := range want.Columns() {
		gc, ok := got.Column(wc.Name)
		require.True(t, ok)
		assert.Equal(t, wc.Floats, gc.Floats, wc.Name)
		assert.Equal(t, wc.Strings, gc.Strings, wc.Name)
		assert.Equal(t, wc.Missing, gc.Missing, wc.Name)
	}
}

func TestSaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := Save(sampleTable(t), filepath.Join(blocker, "cleaned.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}

func TestSaveParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaned.parquet")
	require.NoError(t, SaveParquet(sampleTable(t), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(raw), 8)
	assert.Equal(t, "PAR1", string(raw[:4]))
	assert.Equal(t, "PAR1", string(raw[len(raw)-4:]))
}

func TestParquetFieldNames(t *testing.T) {
	tbl, err := NewTable(
		NewBoolean("Department_Research & Development", []bool{true}),
		NewBoolean("Department_Research _ Development", []bool{true}),
		NewNumeric("1st", []float64{1}),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Department_Research___Development",
		"Department_Research___Development_1",
		"c_1st",
	}, parquetFieldNames(tbl))
}

func TestParquetFieldNamesAvoidSuffixClash(t *testing.T) {
	tbl, err := NewTable(
		NewNumeric("a b", []float64{1}),
		NewNumeric("a_b", []float64{2}),
		NewNumeric("a_b_1", []float64{3}),
		NewNumeric("a-b", []float64{4}),
	)
	require.NoError(t, err)

	names := parquetFieldNames(tbl)
	assert.Equal(t, []string{"a_b", "a_b_1", "a_b_1_1", "a_b_2"}, names)

	require.NoError(t, SaveParquet(tbl, filepath.Join(t.TempDir(), "clash.parquet")))
}
