package utils

import (
	"sort"

	"github.com/james-bowman/sparse"
)

/*
	The wave stencils sum cyclically shifted copies of the field: in 1D the
	neighbor term is u[i-1] + u[i+1] with wraparound at the ends, in 2D the
	four axis-aligned shifts of the flattened row-major field. Each of those
	sums is a fixed circulant permutation sum, assembled once as a sparse
	matrix and applied as a matrix-vector product every step.

	Rows are assembled in order with sorted column indices so the per-row
	summation order is deterministic across solver instances.
*/

// CyclicShiftSum1D builds the n x n operator S with (S u)[i] = u[i-1] + u[i+1],
// indices taken modulo n.
func CyclicShiftSum1D(n int) (S *sparse.CSR) {
	var (
		ia   = make([]int, n+1)
		ja   = make([]int, 0, 2*n)
		data = make([]float64, 0, 2*n)
	)
	for i := 0; i < n; i++ {
		cols := []int{(i + n - 1) % n, (i + 1) % n}
		sort.Ints(cols)
		ja = append(ja, cols...)
		data = append(data, 1, 1)
		ia[i+1] = len(ja)
	}
	return sparse.NewCSR(n, n, ia, ja, data)
}

// CyclicShiftSum2D builds the operator over an nr x nc row-major field with
// (S u)[i,j] = u[i-1,j] + u[i+1,j] + u[i,j-1] + u[i,j+1], indices taken
// modulo the axis length.
func CyclicShiftSum2D(nr, nc int) (S *sparse.CSR) {
	var (
		n    = nr * nc
		ia   = make([]int, n+1)
		ja   = make([]int, 0, 4*n)
		data = make([]float64, 0, 4*n)
		idx  = func(i, j int) int { return i*nc + j }
	)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			cols := []int{
				idx((i+nr-1)%nr, j),
				idx((i+1)%nr, j),
				idx(i, (j+nc-1)%nc),
				idx(i, (j+1)%nc),
			}
			sort.Ints(cols)
			ja = append(ja, cols...)
			data = append(data, 1, 1, 1, 1)
			ia[idx(i, j)+1] = len(ja)
		}
	}
	return sparse.NewCSR(n, n, ia, ja, data)
}

// MulCSRVec computes R = S*v into R's existing storage without allocating.
func MulCSRVec(S *sparse.CSR, v, R Vector) {
	var (
		x = v.RawVector().Data
		r = R.RawVector().Data
	)
	for i := range r {
		r[i] = 0
	}
	S.DoNonZero(func(i, j int, val float64) {
		r[i] += val * x[j]
	})
}
