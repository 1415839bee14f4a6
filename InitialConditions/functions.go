/*
Package InitialConditions is the catalog of initial position and velocity
functions for the 1D and 2D wave equation solvers. All functions are pure:
they map grid coordinates (and domain lengths) to a field and hold no state,
so any function matching the signatures is a valid plug-in for the solvers.
*/
package InitialConditions

import (
	"math"
	"sort"

	"github.com/abelfp/wave-equation-simulation/utils"
)

// -------- For 1D Waves ----------------

// PulseTriangular is a triangular pulse of half-width L/10 centered on a
// string of length L.
func PulseTriangular(x utils.Vector, L float64) (R utils.Vector) {
	var (
		lo, hi = L/2 - L/10, L/2 + L/10
	)
	R = utils.NewVector(x.Len())
	data := R.RawVector().Data
	for i, xi := range x.RawVector().Data {
		switch {
		case xi >= lo && xi <= L/2:
			data[i] = xi - lo
		case xi >= L/2 && xi <= hi:
			data[i] = -xi + hi
		}
	}
	return
}

// PulseSine is a sine pulse sin(2*pi*x / (2L/5)) centered on a string of
// length L, zero outside the band [L/2 - L/10, L/2 + L/10].
func PulseSine(x utils.Vector, L float64) (R utils.Vector) {
	var (
		lo, hi = L/2 - L/10, L/2 + L/10
		alpha  = 2 * math.Pi / (L/2 - L/10)
	)
	R = utils.NewVector(x.Len())
	data := R.RawVector().Data
	for i, xi := range x.RawVector().Data {
		if xi >= lo && xi <= hi {
			data[i] = math.Sin(alpha * xi)
		}
	}
	return
}

// PulseSquare is a unit square pulse of half-width L/10 centered on a string
// of length L.
func PulseSquare(x utils.Vector, L float64) (R utils.Vector) {
	var (
		lo, hi = L/2 - L/10, L/2 + L/10
	)
	R = utils.NewVector(x.Len())
	data := R.RawVector().Data
	for i, xi := range x.RawVector().Data {
		if xi >= lo && xi <= hi {
			data[i] = 1
		}
	}
	return
}

// InitVelocity1D is the all-zero initial velocity.
func InitVelocity1D(x utils.Vector) (R utils.Vector) {
	return utils.NewVector(x.Len())
}

// --------- 2D Waves (Cartesian) --------------

// Fields are nx by ny row-major: R[i,j] = f(x[i], y[j]).

// WaveGaussian is a gaussian hump centered on the sheet:
// f = e^(-((x - Lx/2)^2 + (y - Ly/2)^2) / mu^2) / mu^2, mu = 0.1
func WaveGaussian(x, y utils.Vector, Lx, Ly float64) (R utils.Matrix) {
	var (
		mu = 0.1
	)
	R = utils.NewMatrix(x.Len(), y.Len())
	for i, xi := range x.RawVector().Data {
		for j, yj := range y.RawVector().Data {
			dx2 := (xi - 0.5*Lx) * (xi - 0.5*Lx)
			dy2 := (yj - 0.5*Ly) * (yj - 0.5*Ly)
			R.M.Set(i, j, math.Exp(-(dx2+dy2)/(mu*mu))/(mu*mu))
		}
	}
	return
}

// WavePolynomial is the polynomial hump f = 4x^2*y*(1-x)*(1-y).
func WavePolynomial(x, y utils.Vector, Lx, Ly float64) (R utils.Matrix) {
	R = utils.NewMatrix(x.Len(), y.Len())
	for i, xi := range x.RawVector().Data {
		for j, yj := range y.RawVector().Data {
			R.M.Set(i, j, 4*xi*xi*yj*(1-xi)*(1-yj))
		}
	}
	return
}

// WaveTrig is the standing mode f = sin(2*pi*x)*sin(2*pi*y).
func WaveTrig(x, y utils.Vector, Lx, Ly float64) (R utils.Matrix) {
	R = utils.NewMatrix(x.Len(), y.Len())
	for i, xi := range x.RawVector().Data {
		for j, yj := range y.RawVector().Data {
			R.M.Set(i, j, math.Sin(2*math.Pi*xi)*math.Sin(2*math.Pi*yj))
		}
	}
	return
}

// WaveTrigGauss is the standing mode modulated by the centered gaussian:
// f = sin(2*pi*x)*sin(2*pi*y)*e^(-((x-Lx/2)^2 + (y-Ly/2)^2) / mu^2) / mu^2
func WaveTrigGauss(x, y utils.Vector, Lx, Ly float64) (R utils.Matrix) {
	var (
		mu = 0.1
	)
	R = utils.NewMatrix(x.Len(), y.Len())
	for i, xi := range x.RawVector().Data {
		for j, yj := range y.RawVector().Data {
			dx2 := (xi - 0.5*Lx) * (xi - 0.5*Lx)
			dy2 := (yj - 0.5*Ly) * (yj - 0.5*Ly)
			f := math.Exp(-(dx2+dy2)/(mu*mu)) / (mu * mu)
			g := math.Sin(2*math.Pi*xi) * math.Sin(2*math.Pi*yj)
			R.M.Set(i, j, g*f)
		}
	}
	return
}

// WavePolyTrig is the squared polynomial hump f = (4x^2*y*(1-x)*(1-y))^2.
func WavePolyTrig(x, y utils.Vector, Lx, Ly float64) (R utils.Matrix) {
	R = utils.NewMatrix(x.Len(), y.Len())
	for i, xi := range x.RawVector().Data {
		for j, yj := range y.RawVector().Data {
			g := 4 * xi * xi * yj * (1 - xi) * (1 - yj)
			R.M.Set(i, j, g*g)
		}
	}
	return
}

// InitVelocity2D is the all-zero initial velocity.
func InitVelocity2D(x, y utils.Vector) (R utils.Matrix) {
	return utils.NewMatrix(x.Len(), y.Len())
}

// Pulses1D is the static registry of the 1D initial position functions,
// keyed by the name used on the command line.
var Pulses1D = map[string]func(x utils.Vector, L float64) utils.Vector{
	"triangular": PulseTriangular,
	"sine":       PulseSine,
	"square":     PulseSquare,
}

// Waves2D is the static registry of the 2D initial position functions.
var Waves2D = map[string]func(x, y utils.Vector, Lx, Ly float64) utils.Matrix{
	"gaussian":   WaveGaussian,
	"polynomial": WavePolynomial,
	"trig":       WaveTrig,
	"trig_gauss": WaveTrigGauss,
	"poly_trig":  WavePolyTrig,
}

// Names1D lists the registered 1D pulse names in sorted order.
func Names1D() (names []string) {
	for name := range Pulses1D {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Names2D lists the registered 2D wave names in sorted order.
func Names2D() (names []string) {
	for name := range Waves2D {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
