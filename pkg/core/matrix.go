package core

// Matrix is a dense row-major matrix.
type Matrix struct {
	R, C int
	Data []float64
}

// NewMatrix allocates a zero matrix.
func NewMatrix(r, c int) *Matrix {
	return &Matrix{R: r, C: c, Data: make([]float64, r*c)}
}

// At returns element (i, j)
func (m *Matrix) At(i, j int) float64 { return m.Data[i*m.C+j] }

// Set sets element (i, j)
func (m *Matrix) Set(i, j int, v float64) { m.Data[i*m.C+j] = v }

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	row := make([]float64, m.C)
	copy(row, m.Data[i*m.C:(i+1)*m.C])
	return row
}
