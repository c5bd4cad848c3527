// SPDX-License-Identifier: MIT

// Package network: complex LU kernels backing Determinant and Inverse.
//
// Purpose:
//   - Factor a square complex matrix as P·A = L·U (Doolittle form, unit
//     lower diagonal) with partial pivoting by magnitude.
//   - Derive the determinant from the U diagonal and the permutation
//     parity; derive the inverse by triangular solves per basis column.
//
// Notes:
//   - Pivoting makes the zero-pivot test exact: with column-max pivots a
//     zero pivot means the remaining column is identically zero, so the
//     matrix is singular (determinant zero).
//   - Loop orders are fixed; results are deterministic for identical
//     inputs.

package network

import "math/cmplx"

// luFactors holds a combined P·A = L·U factorization: L (unit diagonal,
// strictly below) and U (on and above) share one flat n×n slice, and
// perm records the row permutation with its parity.
type luFactors struct {
	n      int
	lu     []complex128 // row-major; L below diagonal, U on/above
	perm   []int        // lu row i was original row perm[i]
	parity float64      // +1 or -1, one flip per row swap
}

// luFactorize factors the matrix cells (flat n×n, row-major) with
// partial pivoting. Returns ErrSingularMatrix on an exactly zero pivot.
// Time O(n³), Space O(n²); the input slice is not mutated.
func luFactorize(cells []Parameter, n int) (*luFactors, error) {
	f := &luFactors{
		n:      n,
		lu:     make([]complex128, n*n),
		perm:   make([]int, n),
		parity: 1,
	}
	var i int
	for i = 0; i < n*n; i++ {
		f.lu[i] = complex128(cells[i])
	}
	for i = 0; i < n; i++ {
		f.perm[i] = i
	}

	var k, r, c, p int
	var best, candidate float64
	var pivot, factor complex128
	for k = 0; k < n; k++ {
		// Select the row with the largest |value| in column k at or
		// below the diagonal.
		p, best = k, cmplx.Abs(f.lu[k*n+k])
		for r = k + 1; r < n; r++ {
			if candidate = cmplx.Abs(f.lu[r*n+k]); candidate > best {
				best, p = candidate, r
			}
		}
		pivot = f.lu[p*n+k]
		if pivot == 0 {
			return nil, ErrSingularMatrix
		}
		if p != k {
			for c = 0; c < n; c++ {
				f.lu[k*n+c], f.lu[p*n+c] = f.lu[p*n+c], f.lu[k*n+c]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.parity = -f.parity
		}

		// Eliminate below the pivot; multipliers become the L entries.
		for r = k + 1; r < n; r++ {
			factor = f.lu[r*n+k] / pivot
			f.lu[r*n+k] = factor
			if factor == 0 {
				continue
			}
			for c = k + 1; c < n; c++ {
				f.lu[r*n+c] -= factor * f.lu[k*n+c]
			}
		}
	}

	return f, nil
}

// Determinant returns the determinant of the matrix. 1×1 and 2×2 use
// the closed form; larger matrices use LU factorization, where a zero
// pivot under column-max pivoting means the determinant is exactly zero.
func (m *Matrix) Determinant() Parameter {
	n := m.ports
	switch n {
	case 1:
		return m.cells[0]
	case 2:
		a, b := complex128(m.cells[0]), complex128(m.cells[1])
		c, d := complex128(m.cells[2]), complex128(m.cells[3])

		return Parameter(a*d - b*c)
	}

	f, err := luFactorize(m.cells, n)
	if err != nil {
		return 0
	}
	det := complex(f.parity, 0)
	for i := 0; i < n; i++ {
		det *= f.lu[i*n+i]
	}

	return Parameter(det)
}

// Inverse returns a freshly allocated inverse of the matrix, carrying
// the receiver's variant. Returns ErrSingularMatrix when factorization
// meets a zero pivot. Time O(n³).
func (m *Matrix) Inverse() (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	n := m.ports
	f, err := luFactorize(m.cells, n)
	if err != nil {
		return nil, err
	}

	inv := &Matrix{
		ports:   n,
		variant: m.variant,
		cells:   make([]Parameter, n*n),
	}
	var (
		col, i, k int
		sum       complex128
		y         = make([]complex128, n) // forward substitution workspace
		x         = make([]complex128, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward solve L·y = P·e_col (unit diagonal on L).
		for i = 0; i < n; i++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += f.lu[i*n+k] * y[k]
			}
			if f.perm[i] == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward solve U·x = y.
		for i = n - 1; i >= 0; i-- {
			sum = 0
			for k = i + 1; k < n; k++ {
				sum += f.lu[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / f.lu[i*n+i]
		}
		// Column col of the inverse.
		for i = 0; i < n; i++ {
			inv.cells[i*n+col] = Parameter(x[i])
		}
	}

	return inv, nil
}
