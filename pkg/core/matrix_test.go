package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMatrixAtSet(t *testing.T) {
	m := NewMatrix(2, 3)
	assert.Equal(t, 2, m.R)
	assert.Equal(t, 3, m.C)
	assert.Equal(t, 0.0, m.At(1, 2))

	m.Set(1, 2, 6)
	m.Set(0, 1, 9)
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, []float64{0, 9, 0}, m.Row(0))
	assert.Equal(t, []float64{0, 0, 6}, m.Row(1))
}

func TestRowIsACopy(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Set(0, 0, 1)

	row := m.Row(0)
	row[0] = 5
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestMatrixLarge(t *testing.T) {
	// more cells than a 16-bit index can address
	m := NewMatrix(300, 300)
	for i := 0; i < 300; i++ {
		m.Set(i, 299, float64(i))
	}
	assert.Equal(t, 299.0, m.At(299, 299))
	assert.Equal(t, 150.0, m.At(150, 299))
}
