// SPDX-License-Identifier: MIT
//
// Package linalg is a small symmetric-eigen-decomposition kernel adapted
// from the teacher's matrix package (Dense + Jacobi Eigen). Everything the
// general-purpose matrix package offered beyond that — incidence/adjacency
// conversions, LU/QR, elementwise ops, graph-matrix builders — has no
// consumer in this module and was dropped (see DESIGN.md); only the
// symmetric Jacobi solver survives, repurposed for the Laplacian and
// adjacency spectra that metrics.Network needs (algebraic connectivity,
// max eigenvalue).
package linalg

import (
	"errors"
	"math"
)

// ErrNotSquare indicates a non-square matrix was supplied where a square
// one was required.
var ErrNotSquare = errors.New("linalg: matrix is not square")

// ErrNotSymmetric indicates Eigen was called on a matrix whose (i,j) and
// (j,i) entries differ by more than tol.
var ErrNotSymmetric = errors.New("linalg: matrix is not symmetric")

// Dense is a flat, row-major n×n matrix.
type Dense struct {
	n    int
	data []float64
}

// NewDense allocates a zeroed n×n matrix.
func NewDense(n int) *Dense {
	return &Dense{n: n, data: make([]float64, n*n)}
}

// N returns the matrix dimension.
func (m *Dense) N() int { return m.n }

// At returns the element at (i,j).
func (m *Dense) At(i, j int) float64 { return m.data[i*m.n+j] }

// Set writes the element at (i,j).
func (m *Dense) Set(i, j int, v float64) { m.data[i*m.n+j] = v }

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	out := &Dense{n: m.n, data: make([]float64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Symmetric reports whether m is symmetric within tol.
func (m *Dense) Symmetric(tol float64) bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol {
				return false
			}
		}
	}
	return true
}

// Eigen performs Jacobi eigen-decomposition of the symmetric matrix m.
// It returns the eigenvalues (unsorted, in the order the rotation sweep
// converges to) and the orthogonal matrix Q whose columns are the
// corresponding eigenvectors.
//
// Pivot selection scans the upper triangle in fixed i→j order each sweep,
// so results are deterministic for a given input and tol/maxIter.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	n := m.N()
	if !m.Symmetric(tol) {
		return nil, nil, ErrNotSymmetric
	}

	a := m.Clone()
	q := NewDense(n)
	for i := 0; i < n; i++ {
		q.Set(i, i, 1.0)
	}

	for iter := 0; iter < maxIter; iter++ {
		// Find the largest off-diagonal magnitude.
		p, qi, maxOff := 0, 1, 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off := math.Abs(a.At(i, j))
				if off > maxOff {
					maxOff, p, qi = off, i, j
				}
			}
		}
		if maxOff <= tol {
			break
		}

		app, aqq, apq := a.At(p, p), a.At(qi, qi), a.At(p, qi)
		theta := (aqq - app) / (2 * apq)
		t := sign(theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
		if theta == 0 {
			t = 1
		}
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			aip, aiq := a.At(i, p), a.At(i, qi)
			newIP := c*aip - s*aiq
			newIQ := s*aip + c*aiq
			a.Set(i, p, newIP)
			a.Set(i, qi, newIQ)
		}
		for i := 0; i < n; i++ {
			api, aqi := a.At(p, i), a.At(qi, i)
			newPI := c*api - s*aqi
			newQI := s*api + c*aqi
			a.Set(p, i, newPI)
			a.Set(qi, i, newQI)
		}
		for i := 0; i < n; i++ {
			qip, qiq := q.At(i, p), q.At(i, qi)
			q.Set(i, p, c*qip-s*qiq)
			q.Set(i, qi, s*qip+c*qiq)
		}
	}

	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = a.At(i, i)
	}
	return vals, q, nil
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
