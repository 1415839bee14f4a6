/*
Package Wave1D solves the wave equation on a string with fixed end points,
using the method of central differences. Only three adjacent solutions in
time are stored, so the memory cost is independent of how far the solution
is advanced.
*/
package Wave1D

import (
	"fmt"
	"iter"

	"github.com/james-bowman/sparse"

	"github.com/abelfp/wave-equation-simulation/utils"
)

// StabilityLimit is the von Neumann stability bound on alpha2 for the 1D
// central difference stencil.
const StabilityLimit = 1.0

// InitialPosition maps the coordinate grid and string length to the initial
// displacement field.
type InitialPosition func(x utils.Vector, L float64) utils.Vector

// InitialVelocity maps the coordinate grid to the initial velocity field.
type InitialVelocity func(x utils.Vector) utils.Vector

type UnstableConfigurationError struct {
	Alpha2, Limit float64
}

func (e *UnstableConfigurationError) Error() string {
	return fmt.Sprintf("unstable combination of c, dt and dx: alpha2 = %8.4f exceeds the stability limit %8.4f, the solution would diverge", e.Alpha2, e.Limit)
}

type InvalidInitialConditionError struct {
	Want, Got int
}

func (e *InvalidInitialConditionError) Error() string {
	return fmt.Sprintf("initial condition output has %d samples, the grid has %d", e.Got, e.Want)
}

type Wave1D struct {
	// Fixed at construction
	X      utils.Vector // Coordinate grid, never mutated after construction
	Alpha2 float64      // (c*dt/dx)^2
	Dt     float64
	// Evolving state
	Time              float64
	UTim1, UTi, UTip1 utils.Vector // Solutions at t-1, t and the t+1 scratch
	shift             *sparse.CSR  // Cyclic neighbor sum operator
	scratch           utils.Vector
}

// NewWave1D discretizes a string of length L with spatial step dx and builds
// the first two time levels from the initial position function uX0 and the
// initial velocity function utX0 (nil means zero velocity). The clock starts
// at dt, the time of the bootstrapped second level.
func NewWave1D(uX0 InitialPosition, utX0 InitialVelocity, dt, L, dx, c float64) (w *Wave1D, err error) {
	if dt <= 0 || L <= 0 || dx <= 0 || c <= 0 {
		return nil, fmt.Errorf("dt, L, dx and c must all be positive, have dt=%v, L=%v, dx=%v, c=%v", dt, L, dx, c)
	}
	var (
		x      = utils.NewRange(0, L+dx, dx)
		n      = x.Len()
		cdtdx  = c * dt / dx
		alpha2 = cdtdx * cdtdx
	)
	if alpha2 > StabilityLimit {
		return nil, &UnstableConfigurationError{Alpha2: alpha2, Limit: StabilityLimit}
	}
	if utX0 == nil {
		utX0 = func(x utils.Vector) utils.Vector { return utils.NewVector(x.Len()) }
	}
	w = &Wave1D{
		X:       x,
		Alpha2:  alpha2,
		Dt:      dt,
		shift:   utils.CyclicShiftSum1D(n),
		scratch: utils.NewVector(n),
	}

	// Zeroth time level
	w.UTim1 = uX0(x, L)
	if w.UTim1.Len() != n {
		return nil, &InvalidInitialConditionError{Want: n, Got: w.UTim1.Len()}
	}
	w.boundStanding(w.UTim1)

	// First time level, one-step Taylor expansion:
	// u_ti = dt*g + (1-alpha2)*u_tim1 + 0.5*alpha2*(u_tim1 shifted left + right)
	// The neighbor sum wraps around at the ends; the wraparound contribution
	// at the true boundaries is clobbered by the boundary reset.
	g := utX0(x)
	if g.Len() != n {
		return nil, &InvalidInitialConditionError{Want: n, Got: g.Len()}
	}
	utils.MulCSRVec(w.shift, w.UTim1, w.scratch)
	ti := utils.NewVector(n)
	ti.V.ScaleVec(dt, g.V)
	ti.V.AddScaledVec(ti.V, 1-alpha2, w.UTim1.V)
	ti.V.AddScaledVec(ti.V, 0.5*alpha2, w.scratch.V)
	w.UTi = ti
	w.boundStanding(w.UTi)
	w.timeUpdate()

	w.UTip1 = utils.NewVector(n)
	return w, nil
}

// UXInit returns the oldest retained time level and the coordinate grid.
// Before any advance the first return is the true initial condition. Both are
// views into live storage and must be treated as read-only.
func (w *Wave1D) UXInit() (u, x utils.Vector) {
	return w.UTim1, w.X
}

func (w *Wave1D) timeUpdate() {
	w.Time += w.Dt
}

// boundStanding zeroes the end points, the fixed boundary condition.
func (w *Wave1D) boundStanding(u utils.Vector) {
	u.V.SetVec(0, 0)
	u.V.SetVec(u.Len()-1, 0)
}

// step advances the solution one time step:
// u_tip1 = -u_tim1 + 2*(1-alpha2)*u_ti + alpha2*(u_ti shifted left + right)
func (w *Wave1D) step() {
	utils.MulCSRVec(w.shift, w.UTi, w.scratch)
	w.UTip1.V.ScaleVec(-1, w.UTim1.V)
	w.UTip1.V.AddScaledVec(w.UTip1.V, 2*(1-w.Alpha2), w.UTi.V)
	w.UTip1.V.AddScaledVec(w.UTip1.V, w.Alpha2, w.scratch.V)
	w.boundStanding(w.UTip1)
	w.timeUpdate()
	// Ring-rotate the three levels. The buffer rotated out of u_tim1 becomes
	// the new scratch target and is fully overwritten on the next step, so no
	// retained level is ever written through an alias.
	w.UTim1, w.UTi, w.UTip1 = w.UTi, w.UTip1, w.UTim1
}

// Step advances the solution by steps time steps and returns a copy of the
// current solution along with its time.
func (w *Wave1D) Step(steps int) (u utils.Vector, time float64) {
	for i := 0; i < steps; i++ {
		w.step()
	}
	return w.UTi.Copy(), w.Time
}

// Iterate returns an unbounded sequence of (solution, time) snapshots, one
// after every steps time steps. The sequence never terminates on its own;
// the caller stops it by breaking out of the range loop.
func (w *Wave1D) Iterate(steps int) iter.Seq2[utils.Vector, float64] {
	return func(yield func(utils.Vector, float64) bool) {
		for {
			u, t := w.Step(steps)
			if !yield(u, t) {
				return
			}
		}
	}
}
