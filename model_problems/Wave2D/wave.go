/*
Package Wave2D solves the wave equation on a rectangular membrane with fixed
edges, using the method of central differences with the 5-point stencil.
Fields are nx by ny row-major: rows indexed by x, columns by y. As in the 1D
solver, only three adjacent solutions in time are stored.
*/
package Wave2D

import (
	"fmt"
	"iter"

	"github.com/james-bowman/sparse"

	"github.com/abelfp/wave-equation-simulation/utils"
)

// StabilityLimit is the von Neumann stability bound on alpha2 for the 2D
// 5-point stencil, tighter than in 1D because four neighbors couple.
const StabilityLimit = 0.5

// InitialPosition maps the coordinate grids and membrane dimensions to the
// initial displacement field.
type InitialPosition func(x, y utils.Vector, Lx, Ly float64) utils.Matrix

// InitialVelocity maps the coordinate grids to the initial velocity field.
type InitialVelocity func(x, y utils.Vector) utils.Matrix

type UnstableConfigurationError struct {
	Alpha2, Limit float64
}

func (e *UnstableConfigurationError) Error() string {
	return fmt.Sprintf("unstable combination of c, dt and dxy: alpha2 = %8.4f exceeds the stability limit %8.4f, the solution would diverge", e.Alpha2, e.Limit)
}

type InvalidInitialConditionError struct {
	WantRows, WantCols, GotRows, GotCols int
}

func (e *InvalidInitialConditionError) Error() string {
	return fmt.Sprintf("initial condition output is %dx%d, the grid is %dx%d", e.GotRows, e.GotCols, e.WantRows, e.WantCols)
}

type Wave2D struct {
	// Fixed at construction
	X, Y   utils.Vector // Coordinate grids, never mutated after construction
	Alpha2 float64      // (c*dt/dxy)^2
	Dt     float64
	// Evolving state
	Time              float64
	UTim1, UTi, UTip1 utils.Matrix // Solutions at t-1, t and the t+1 scratch
	shift             *sparse.CSR  // Cyclic 4-neighbor sum over the flattened field
	scratch           utils.Vector
}

// NewWave2D discretizes an Lx by Ly membrane with spatial step dxy along both
// axes and builds the first two time levels from the initial position
// function uXY0 and the initial velocity function utXY0 (nil means zero
// velocity). The clock starts at dt.
func NewWave2D(uXY0 InitialPosition, utXY0 InitialVelocity, dt, Lx, Ly, dxy, c float64) (w *Wave2D, err error) {
	if dt <= 0 || Lx <= 0 || Ly <= 0 || dxy <= 0 || c <= 0 {
		return nil, fmt.Errorf("dt, Lx, Ly, dxy and c must all be positive, have dt=%v, Lx=%v, Ly=%v, dxy=%v, c=%v", dt, Lx, Ly, dxy, c)
	}
	var (
		x      = utils.NewRange(0, Lx+dxy, dxy)
		y      = utils.NewRange(0, Ly+dxy, dxy)
		nx, ny = x.Len(), y.Len()
		cdtdxy = c * dt / dxy
		alpha2 = cdtdxy * cdtdxy
	)
	if alpha2 > StabilityLimit {
		return nil, &UnstableConfigurationError{Alpha2: alpha2, Limit: StabilityLimit}
	}
	if utXY0 == nil {
		utXY0 = func(x, y utils.Vector) utils.Matrix { return utils.NewMatrix(x.Len(), y.Len()) }
	}
	w = &Wave2D{
		X:       x,
		Y:       y,
		Alpha2:  alpha2,
		Dt:      dt,
		shift:   utils.CyclicShiftSum2D(nx, ny),
		scratch: utils.NewVector(nx * ny),
	}

	// Zeroth time level
	w.UTim1 = uXY0(x, y, Lx, Ly)
	if gr, gc := w.UTim1.Dims(); gr != nx || gc != ny {
		return nil, &InvalidInitialConditionError{WantRows: nx, WantCols: ny, GotRows: gr, GotCols: gc}
	}
	w.boundStanding(w.UTim1)

	// First time level, one-step Taylor expansion:
	// u_ti = dt*g + (1-2*alpha2)*u_tim1 + 0.5*alpha2*(4-neighbor shift sum)
	// The shift sum wraps around at the edges; the wraparound contribution on
	// the true boundaries is clobbered by the boundary reset.
	g := utXY0(x, y)
	if gr, gc := g.Dims(); gr != nx || gc != ny {
		return nil, &InvalidInitialConditionError{WantRows: nx, WantCols: ny, GotRows: gr, GotCols: gc}
	}
	utils.MulCSRVec(w.shift, w.UTim1.VecView(), w.scratch)
	ti := utils.NewMatrix(nx, ny)
	tiV := ti.VecView()
	tiV.V.ScaleVec(dt, g.VecView().V)
	tiV.V.AddScaledVec(tiV.V, 1-2*alpha2, w.UTim1.VecView().V)
	tiV.V.AddScaledVec(tiV.V, 0.5*alpha2, w.scratch.V)
	w.UTi = ti
	w.boundStanding(w.UTi)
	w.timeUpdate()

	w.UTip1 = utils.NewMatrix(nx, ny)
	return w, nil
}

// UXYInit returns the oldest retained time level and the coordinate grids.
// Before any advance the first return is the true initial condition. All are
// views into live storage and must be treated as read-only.
func (w *Wave2D) UXYInit() (u utils.Matrix, x, y utils.Vector) {
	return w.UTim1, w.X, w.Y
}

func (w *Wave2D) timeUpdate() {
	w.Time += w.Dt
}

// boundStanding zeroes the first and last row and column, the fixed boundary
// condition. Corners are zeroed twice, harmlessly.
func (w *Wave2D) boundStanding(u utils.Matrix) {
	var (
		nr, nc = u.Dims()
	)
	for j := 0; j < nc; j++ {
		u.M.Set(0, j, 0)
		u.M.Set(nr-1, j, 0)
	}
	for i := 0; i < nr; i++ {
		u.M.Set(i, 0, 0)
		u.M.Set(i, nc-1, 0)
	}
}

// step advances the solution one time step:
// u_tip1 = -u_tim1 + 2*(1-2*alpha2)*u_ti + alpha2*(4-neighbor shift sum)
func (w *Wave2D) step() {
	utils.MulCSRVec(w.shift, w.UTi.VecView(), w.scratch)
	next := w.UTip1.VecView()
	next.V.ScaleVec(-1, w.UTim1.VecView().V)
	next.V.AddScaledVec(next.V, 2*(1-2*w.Alpha2), w.UTi.VecView().V)
	next.V.AddScaledVec(next.V, w.Alpha2, w.scratch.V)
	w.boundStanding(w.UTip1)
	w.timeUpdate()
	// Ring-rotate the three levels; see the 1D solver for the aliasing rule.
	w.UTim1, w.UTi, w.UTip1 = w.UTi, w.UTip1, w.UTim1
}

// Step advances the solution by steps time steps and returns a copy of the
// current solution along with its time.
func (w *Wave2D) Step(steps int) (u utils.Matrix, time float64) {
	for i := 0; i < steps; i++ {
		w.step()
	}
	return w.UTi.Copy(), w.Time
}

// Iterate returns an unbounded sequence of (solution, time) snapshots, one
// after every steps time steps.
func (w *Wave2D) Iterate(steps int) iter.Seq2[utils.Matrix, float64] {
	return func(yield func(utils.Matrix, float64) bool) {
		for {
			u, t := w.Step(steps)
			if !yield(u, t) {
				return
			}
		}
	}
}
