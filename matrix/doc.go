// SPDX-License-Identifier: MIT

// Package matrix provides the dense integer matrices behind affiliation analysis.
//
// What & Why:
//
//	An affiliation network is encoded by a |persons|×|groups| 0/1 incidence
//	matrix B. The person co-membership matrix is B·Bᵀ, whose cell (i,j) counts
//	the groups shared by persons i and j. Those counts must be exact, so Dense
//	stores int values rather than float64.
//
// Surface:
//
//	NewDense(r, c)            zero matrix, r,c > 0
//	NewFromRows(rows)         copy of a rectangular [][]int
//	At / Set                  bounds-checked access (ErrOutOfRange)
//	Mul(a, b)                 a·b, i→k→j kernel skipping zero a[i,k]
//	Transpose(m)              mᵀ
//	Threshold(m, t)           1 where m[i,j] > t, else 0
//	SumOffDiagonal(m)         Σ m[i,j] for i≠j (square only)
//	IsSymmetric(m)            m == mᵀ
//	Equal(a, b)               exact shape and value equality
//
// Complexity:
//
//	At/Set O(1); Clone/Transpose/Threshold O(r·c); Mul O(r·n·c).
package matrix
