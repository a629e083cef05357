// SPDX-License-Identifier: MIT

// Package matrix - algebra kernels over *Dense.
//
// Policy:
//   - Inputs are never mutated; every kernel allocates exactly one result.
//   - Loop orders are fixed, so results and error positions are reproducible.

package matrix

import "fmt"

// Operation tags used by matrixErrorf.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opThreshold = "Threshold"
	opOffDiag   = "SumOffDiagonal"
)

// matrixErrorf prefixes err with an operation tag while preserving errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a·b.
//
// Implementation:
//   - Stage 1: Validate a,b non-nil and inner dimensions (a.Cols == b.Rows).
//   - Stage 2: i→k→j loop over row-major strides, skipping zero a[i,k].
//
// For a 0/1 incidence matrix this skip turns B·Bᵀ into a walk over actual
// memberships only.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                          int
		av                               int
		rowOffsetA, rowOffsetB, rowOffsR int
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new matrix.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}

// Threshold dichotomizes m: out[i,j] = 1 if m[i,j] > t, else 0.
// Errors: ErrNilMatrix.
func Threshold(m *Dense, t int) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opThreshold, ErrNilMatrix)
	}
	res := &Dense{r: m.r, c: m.c, data: make([]int, len(m.data))}
	for idx, v := range m.data {
		if v > t {
			res.data[idx] = 1
		}
	}

	return res, nil
}

// SumOffDiagonal returns Σ m[i,j] over ordered pairs i≠j.
// Errors: ErrNilMatrix, ErrNonSquare.
func SumOffDiagonal(m *Dense) (int, error) {
	if m == nil {
		return 0, matrixErrorf(opOffDiag, ErrNilMatrix)
	}
	if m.r != m.c {
		return 0, matrixErrorf(opOffDiag, ErrNonSquare)
	}
	total := 0
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if i != j {
				total += m.data[base+j]
			}
		}
	}

	return total, nil
}

// IsSymmetric reports whether m is square and equal to its transpose.
func IsSymmetric(m *Dense) bool {
	if m == nil || m.r != m.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			if m.data[i*m.c+j] != m.data[j*m.c+i] {
				return false
			}
		}
	}

	return true
}

// Equal reports exact shape and element equality. Two nil matrices are equal.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}
