package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

// VecView returns a column-vector view sharing the matrix storage, in
// row-major order. Mutations through the view are visible in the matrix.
func (m Matrix) VecView() (R Vector) {
	var (
		nr, nc = m.Dims()
	)
	R = Vector{mat.NewVecDense(nr*nc, m.M.RawMatrix().Data)}
	return
}

// Chainable methods (extended)
func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.M.RawMatrix().Data
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	var (
		data = m.M.RawMatrix().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	var (
		data = m.M.RawMatrix().Data
	)
	for i := range data {
		data[i] *= a
	}
	return m
}

func (m Matrix) Row(i int) (R Vector) { // Does not change receiver
	var (
		_, nc = m.Dims()
		dataR = make([]float64, nc)
	)
	copy(dataR, m.M.RawRowView(i))
	R = NewVector(nc, dataR)
	return
}

func (m Matrix) Col(j int) (R Vector) { // Does not change receiver
	var (
		nr, _ = m.Dims()
		dataR = make([]float64, nr)
	)
	for i := 0; i < nr; i++ {
		dataR[i] = m.M.At(i, j)
	}
	R = NewVector(nr, dataR)
	return
}

func (m Matrix) Min() (min float64) {
	var (
		data = m.M.RawMatrix().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	var (
		data = m.M.RawMatrix().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}
