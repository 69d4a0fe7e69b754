package mayo

import (
	"fmt"

	"mayo-go/field"
)

// Matrix is a dense, row-major matrix over F16. Dimensions are fixed at
// construction.
type Matrix struct {
	Rows, Cols int
	data       []byte
}

// NewMatrix allocates a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, data: make([]byte, rows*cols)}
}

// At returns the element at (i, j).
func (m *Matrix) At(i, j int) byte {
	return m.data[i*m.Cols+j]
}

// Set assigns the element at (i, j).
func (m *Matrix) Set(i, j int, v byte) {
	m.data[i*m.Cols+j] = v & 0xF
}

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	copy(out.data, m.data)
	return out
}

func (m *Matrix) checkShape(other *Matrix) {
	if m.Rows != other.Rows || m.Cols != other.Cols {
		panic(fmt.Sprintf("mayo: dimension mismatch: %dx%d vs %dx%d", m.Rows, m.Cols, other.Rows, other.Cols))
	}
}

// Add returns m+other element-wise over F16.
func (m *Matrix) Add(other *Matrix) *Matrix {
	m.checkShape(other)
	out := NewMatrix(m.Rows, m.Cols)
	for i := range out.data {
		out.data[i] = field.Add(m.data[i], other.data[i])
	}
	return out
}

// Mul returns the textbook triple-loop product m*other over F16.
func (m *Matrix) Mul(other *Matrix) *Matrix {
	if m.Cols != other.Rows {
		panic(fmt.Sprintf("mayo: cannot multiply %dx%d by %dx%d", m.Rows, m.Cols, other.Rows, other.Cols))
	}
	out := NewMatrix(m.Rows, other.Cols)
	for i := 0; i < m.Rows; i++ {
		for k := 0; k < m.Cols; k++ {
			a := m.At(i, k)
			if a == 0 {
				continue
			}
			for j := 0; j < other.Cols; j++ {
				out.Set(i, j, field.Add(out.At(i, j), field.Mul(a, other.At(k, j))))
			}
		}
	}
	return out
}

// MulVec returns m*v for a column vector v of length m.Cols.
func (m *Matrix) MulVec(v []byte) []byte {
	if len(v) != m.Cols {
		panic(fmt.Sprintf("mayo: cannot multiply %dx%d by vector of length %d", m.Rows, m.Cols, len(v)))
	}
	out := make([]byte, m.Rows)
	for i := 0; i < m.Rows; i++ {
		var acc byte
		for j := 0; j < m.Cols; j++ {
			acc = field.Add(acc, field.Mul(m.At(i, j), v[j]))
		}
		out[i] = acc
	}
	return out
}

// Transpose returns the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

// Upper symmetrizes a square matrix onto its upper triangle: the diagonal
// is kept as-is and U[i,j] = M[i,j]+M[j,i] for i<j, with zero below the
// diagonal.
func Upper(m *Matrix) *Matrix {
	if m.Rows != m.Cols {
		panic(fmt.Sprintf("mayo: Upper requires a square matrix, got %dx%d", m.Rows, m.Cols))
	}
	out := NewMatrix(m.Rows, m.Cols)
	for i := 0; i < m.Rows; i++ {
		out.Set(i, i, m.At(i, i))
		for j := i + 1; j < m.Cols; j++ {
			out.Set(i, j, field.Add(m.At(i, j), m.At(j, i)))
		}
	}
	return out
}

// VecTimesMat returns the row vector v^T * m for a column vector v of
// length m.Rows.
func VecTimesMat(v []byte, m *Matrix) []byte {
	if len(v) != m.Rows {
		panic(fmt.Sprintf("mayo: cannot left-multiply %dx%d by vector of length %d", m.Rows, m.Cols, len(v)))
	}
	out := make([]byte, m.Cols)
	for j := 0; j < m.Cols; j++ {
		var acc byte
		for i := 0; i < m.Rows; i++ {
			acc = field.Add(acc, field.Mul(v[i], m.At(i, j)))
		}
		out[j] = acc
	}
	return out
}

// QuadForm returns the scalar v^T * m * w for a square matrix m and
// vectors v, w of length m.Rows.
func QuadForm(v []byte, m *Matrix, w []byte) byte {
	mw := m.MulVec(w)
	var acc byte
	for i := range v {
		acc = field.Add(acc, field.Mul(v[i], mw[i]))
	}
	return acc
}

// AddVecs returns a+b element-wise over F16.
func AddVecs(a, b []byte) []byte {
	if len(a) != len(b) {
		panic(fmt.Sprintf("mayo: cannot add vectors of length %d and %d", len(a), len(b)))
	}
	out := make([]byte, len(a))
	for i := range out {
		out[i] = field.Add(a[i], b[i])
	}
	return out
}

// RowAt extracts row i of m as a new slice.
func (m *Matrix) RowAt(i int) []byte {
	out := make([]byte, m.Cols)
	copy(out, m.data[i*m.Cols:(i+1)*m.Cols])
	return out
}

// SetRow assigns row i of m from row.
func (m *Matrix) SetRow(i int, row []byte) {
	if len(row) != m.Cols {
		panic(fmt.Sprintf("mayo: row length %d does not match %d columns", len(row), m.Cols))
	}
	copy(m.data[i*m.Cols:(i+1)*m.Cols], row)
}

// SetBlock writes src into m starting at (rowOff, colOff).
func (m *Matrix) SetBlock(rowOff, colOff int, src *Matrix) {
	for i := 0; i < src.Rows; i++ {
		for j := 0; j < src.Cols; j++ {
			m.Set(rowOff+i, colOff+j, src.At(i, j))
		}
	}
}

// AddBlock adds src into the rowOff,colOff block of m in place.
func (m *Matrix) AddBlock(rowOff, colOff int, src *Matrix) {
	for i := 0; i < src.Rows; i++ {
		for j := 0; j < src.Cols; j++ {
			m.Set(rowOff+i, colOff+j, field.Add(m.At(rowOff+i, colOff+j), src.At(i, j)))
		}
	}
}

// MatFromRows builds a matrix from a slice of equal-length rows.
func MatFromRows(rows [][]byte) *Matrix {
	r := len(rows)
	if r == 0 {
		return NewMatrix(0, 0)
	}
	c := len(rows[0])
	out := NewMatrix(r, c)
	for i, row := range rows {
		if len(row) != c {
			panic("mayo: ragged rows passed to MatFromRows")
		}
		copy(out.data[i*c:(i+1)*c], row)
	}
	return out
}
