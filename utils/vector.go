package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v\n", n, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	R = Vector{v}
	return
}

// NewRange builds the sample positions start, start+step, ... with the count
// ceil((stop-start)/step), so the last sample can land at or just past the
// intended endpoint when the division rounds up.
func NewRange(start, stop, step float64) (R Vector) {
	var (
		n = int(math.Ceil((stop - start) / step))
	)
	data := make([]float64, n)
	for i := range data {
		data[i] = start + float64(i)*step
	}
	return NewVector(n, data)
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

// Chainable methods (extended)
func (v Vector) Copy() (R Vector) { // Does not change receiver
	var (
		data  = v.V.RawVector().Data
		dataR = make([]float64, v.Len())
	)
	copy(dataR, data)
	R = NewVector(v.Len(), dataR)
	return
}

func (v Vector) Apply(f func(float64) float64) Vector { // Changes receiver
	var (
		data = v.V.RawVector().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Scale(a float64) Vector { // Changes receiver
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) Add(a Vector) Vector { // Changes receiver
	v.V.AddVec(v.V, a.V)
	return v
}

func (v Vector) Min() (min float64) {
	var (
		data = v.V.RawVector().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.V.RawVector().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}
