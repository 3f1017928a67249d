package model

// Matrix is a rectangular grid indexed [order-index][demand-index].
// Builders always return a freshly allocated Matrix; callers must not mutate it.
type Matrix [][]float64

func (m Matrix) Rows() int { return len(m) }

// Cols returns the width of the first row, 0 for a matrix without rows.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Row returns a copy of row i.
func (m Matrix) Row(i int) []float64 {
	out := make([]float64, len(m[i]))
	copy(out, m[i])
	return out
}

// Column returns a copy of column j.
func (m Matrix) Column(j int) []float64 {
	out := make([]float64, len(m))
	for i := range m {
		out[i] = m[i][j]
	}
	return out
}
