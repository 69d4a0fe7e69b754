package mayo

import "mayo-go/field"

// EchelonForm transforms B into row-echelon form with leading ones via
// elementary row operations: for each pivot column left to right, the
// first row at or below the current pivot row with a nonzero entry is
// swapped into place, normalized to a leading one, and used to eliminate
// that column's entries in every other row (above and below). It returns
// the rank of B.
func EchelonForm(B *Matrix) int {
	pivotRow := 0
	for col := 0; col < B.Cols && pivotRow < B.Rows; col++ {
		sel := -1
		for r := pivotRow; r < B.Rows; r++ {
			if B.At(r, col) != 0 {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		if sel != pivotRow {
			swapRows(B, sel, pivotRow)
		}

		inv := field.Inv(B.At(pivotRow, col))
		if inv != 1 {
			scaleRow(B, pivotRow, inv)
		}

		for r := 0; r < B.Rows; r++ {
			if r == pivotRow {
				continue
			}
			factor := B.At(r, col)
			if factor == 0 {
				continue
			}
			addScaledRow(B, r, pivotRow, factor)
		}

		pivotRow++
	}
	return pivotRow
}

func swapRows(B *Matrix, a, b int) {
	for c := 0; c < B.Cols; c++ {
		va, vb := B.At(a, c), B.At(b, c)
		B.Set(a, c, vb)
		B.Set(b, c, va)
	}
}

func scaleRow(B *Matrix, row int, factor byte) {
	for c := 0; c < B.Cols; c++ {
		B.Set(row, c, field.Mul(B.At(row, c), factor))
	}
}

// addScaledRow adds factor*B[src] to B[dst], i.e. eliminates the
// dst-row's entry in src's pivot column.
func addScaledRow(B *Matrix, dst, src int, factor byte) {
	for c := 0; c < B.Cols; c++ {
		B.Set(dst, c, field.Add(B.At(dst, c), field.Mul(factor, B.At(src, c))))
	}
}

// SampleSolution solves A*x = y for x in F16^{k*o} given that A has rank
// m (the number of rows of A). It randomizes the system with r: it sets
// y' = y - A*r, forms B = [A | y'], reduces B with EchelonForm, and
// fails with errRankDeficient if the rank is below m. Otherwise it reads
// off the particular solution x' from B's pivots and returns x = x' + r.
func SampleSolution(A *Matrix, y []byte, r []byte) ([]byte, error) {
	ko := A.Cols

	ar := A.MulVec(r)
	yPrime := make([]byte, len(y))
	for i := range y {
		yPrime[i] = field.Add(y[i], ar[i])
	}

	B := NewMatrix(A.Rows, ko+1)
	for i := 0; i < A.Rows; i++ {
		for j := 0; j < ko; j++ {
			B.Set(i, j, A.At(i, j))
		}
		B.Set(i, ko, yPrime[i])
	}

	rank := EchelonForm(B)
	if rank < A.Rows {
		return nil, errRankDeficient
	}

	xPrime := make([]byte, ko)
	for row := 0; row < A.Rows; row++ {
		pivotCol := -1
		for c := 0; c < ko; c++ {
			if B.At(row, c) == 1 {
				pivotCol = c
				break
			}
		}
		if pivotCol == -1 {
			// Rank == A.Rows guarantees every row carries a pivot; this
			// would indicate an inconsistent internal state.
			return nil, errRankDeficient
		}
		xPrime[pivotCol] = B.At(row, ko)
	}

	x := make([]byte, ko)
	for i := range x {
		x[i] = field.Add(xPrime[i], r[i])
	}
	return x, nil
}
