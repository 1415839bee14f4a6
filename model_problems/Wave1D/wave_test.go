package Wave1D

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abelfp/wave-equation-simulation/InitialConditions"
	"github.com/abelfp/wave-equation-simulation/utils"
)

func TestStabilityGate(t *testing.T) {
	// alpha2 = (1*1/0.5)^2 = 4 > 1 diverges
	{
		c, err := NewWave1D(InitialConditions.PulseTriangular, nil, 1, 8, 0.5, 1)
		assert.Nil(t, c)
		var unstable *UnstableConfigurationError
		assert.ErrorAs(t, err, &unstable)
		assert.Equal(t, 4.0, unstable.Alpha2)
		assert.Equal(t, StabilityLimit, unstable.Limit)
	}
	// alpha2 = (1*0.001/0.005)^2 = 0.04 is stable
	{
		c, err := NewWave1D(InitialConditions.PulseTriangular, nil, 0.001, 8, 0.005, 1)
		assert.NoError(t, err)
		assert.InDelta(t, 0.04, c.Alpha2, 1.e-12)
	}
	// Non-positive parameters are rejected up front
	{
		_, err := NewWave1D(InitialConditions.PulseTriangular, nil, -0.001, 8, 0.005, 1)
		assert.Error(t, err)
		_, err = NewWave1D(InitialConditions.PulseTriangular, nil, 0.001, 8, 0, 1)
		assert.Error(t, err)
	}
}

func TestInvalidInitialCondition(t *testing.T) {
	badShape := func(x utils.Vector, L float64) utils.Vector {
		return utils.NewVector(x.Len() - 1)
	}
	_, err := NewWave1D(badShape, nil, 0.001, 1, 0.1, 1)
	var invalid *InvalidInitialConditionError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, 11, invalid.Want)
	assert.Equal(t, 10, invalid.Got)
}

func TestGridGeometry(t *testing.T) {
	// 11 samples spanning [0, 1] inclusive
	{
		c, err := NewWave1D(InitialConditions.PulseTriangular, nil, 0.001, 1, 0.1, 1)
		assert.NoError(t, err)
		_, x := c.UXInit()
		assert.Equal(t, 11, x.Len())
		assert.Equal(t, 0.0, x.AtVec(0))
		assert.Equal(t, 1.0, x.AtVec(10))
	}
	// The grid is invariant under advances: only the field and clock change
	{
		c, _ := NewWave1D(InitialConditions.PulseSine, nil, 0.001, 1, 0.1, 1)
		_, before := c.UXInit()
		want := before.Copy()
		for i := 0; i < 25; i++ {
			c.Step(1)
		}
		_, after := c.UXInit()
		assert.Equal(t, want.RawVector().Data, after.RawVector().Data)
	}
}

func TestBootstrap(t *testing.T) {
	var (
		dt, L, dx, c = 0.01, 1.0, 0.1, 1.0
	)
	w, err := NewWave1D(InitialConditions.PulseTriangular, nil, dt, L, dx, c)
	assert.NoError(t, err)
	var (
		alpha2 = w.Alpha2
		_, x   = w.UXInit()
		u0     = InitialConditions.PulseTriangular(x, L)
	)
	u0.V.SetVec(0, 0)
	u0.V.SetVec(u0.Len()-1, 0)
	// Zero velocity: u_ti = (1-alpha2)*u0 + 0.5*alpha2*(u0[i-1]+u0[i+1]) inside
	for i := 1; i < u0.Len()-1; i++ {
		want := (1-alpha2)*u0.AtVec(i) + 0.5*alpha2*(u0.AtVec(i-1)+u0.AtVec(i+1))
		assert.InDelta(t, want, w.UTi.AtVec(i), 1.e-14, "i=%d", i)
	}
	// The clock starts at dt, the time of the bootstrapped level
	assert.Equal(t, dt, w.Time)
	// The zeroth level is the initial condition with ends zeroed
	assert.Equal(t, u0.RawVector().Data, w.UTim1.RawVector().Data)
}

func TestBoundaryInvariant(t *testing.T) {
	for name, pulse := range InitialConditions.Pulses1D {
		c, err := NewWave1D(pulse, nil, 0.01, 1, 0.1, 1)
		assert.NoError(t, err, name)
		for i := 0; i < 100; i++ {
			u, _ := c.Step(1)
			assert.Equal(t, 0.0, u.AtVec(0), name)
			assert.Equal(t, 0.0, u.AtVec(u.Len()-1), name)
		}
	}
}

func TestStationaryNode(t *testing.T) {
	// An initial condition odd-symmetric about the midpoint sample keeps the
	// midpoint at exactly zero: the stencil maps a mirrored pair to a
	// mirrored pair, and at the fixed point the neighbor terms cancel.
	oddPulse := func(x utils.Vector, L float64) utils.Vector {
		var (
			n   = x.Len()
			mid = n / 2
		)
		u := utils.NewVector(n)
		data := u.RawVector().Data
		for i := 1; i < mid; i++ {
			data[i] = float64(i) * 0.25
			data[n-1-i] = -data[i]
		}
		return u
	}
	c, err := NewWave1D(oddPulse, nil, 0.01, 1, 0.1, 1)
	assert.NoError(t, err)
	u0, x := c.UXInit()
	mid := x.Len() / 2
	assert.Equal(t, 0.0, u0.AtVec(mid))
	for i := 0; i < 50; i++ {
		u, _ := c.Step(1)
		assert.Equal(t, 0.0, u.AtVec(mid), "step %d", i)
	}
}

func TestClockMonotonicity(t *testing.T) {
	var (
		dt   = 0.001
		c, _ = NewWave1D(InitialConditions.PulseSquare, nil, dt, 1, 0.1, 1)
	)
	expected := dt // bootstrap time
	assert.Equal(t, expected, c.Time)
	for i := 0; i < 200; i++ {
		_, tm := c.Step(1)
		expected += dt
		assert.Equal(t, expected, tm)
	}
}

func TestZeroFieldFixpoint(t *testing.T) {
	var (
		dt   = 0.001
		zero = func(x utils.Vector, L float64) utils.Vector { return utils.NewVector(x.Len()) }
	)
	c, err := NewWave1D(zero, nil, dt, 8, 0.005, 1)
	assert.NoError(t, err)
	expected := dt
	for i := 0; i < 10; i++ {
		u, tm := c.Step(1)
		expected += dt
		assert.Equal(t, expected, tm)
		assert.Equal(t, 0.0, u.Min())
		assert.Equal(t, 0.0, u.Max())
	}
}

func TestIterateMatchesStep(t *testing.T) {
	a, _ := NewWave1D(InitialConditions.PulseTriangular, nil, 0.01, 1, 0.1, 1)
	b, _ := NewWave1D(InitialConditions.PulseTriangular, nil, 0.01, 1, 0.1, 1)
	var (
		pulls = 0
	)
	for u, tm := range a.Iterate(3) {
		want, wantT := b.Step(3)
		assert.Equal(t, want.RawVector().Data, u.RawVector().Data)
		assert.Equal(t, wantT, tm)
		pulls++
		if pulls == 5 {
			break
		}
	}
	assert.Equal(t, 5, pulls)
}

func TestSnapshotIsolation(t *testing.T) {
	// A yielded snapshot must not change when the solver advances further
	c, _ := NewWave1D(InitialConditions.PulseSine, nil, 0.01, 1, 0.1, 1)
	u1, _ := c.Step(1)
	want := u1.Copy()
	c.Step(10)
	assert.Equal(t, want.RawVector().Data, u1.RawVector().Data)
}
