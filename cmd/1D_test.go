package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/abelfp/wave-equation-simulation/InputParameters"
)

func TestRun1D(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Triangular Pulse
Dt: 0.001
Dx: 0.005
L: 10.
C: 1.
Pulse: triangular # one of triangular, sine, square
StepsPerFrame: 10
FinalTime: 10.
`)
	var input InputParameters.SimParameters1D
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Title, "Triangular Pulse")
	assert.Equal(t, input.Dt, 0.001)
	assert.Equal(t, input.L, 10.)
	assert.Equal(t, input.Pulse, "triangular")
	input.Print()
	assert.Equal(t, input.FinalTime, 10.)

	m1d := &Model1D{Dt: 0.01, Dx: 0.1, L: 1, C: 2, Pulse: "sine", StepsPerFrame: 1, FinalTime: 1}
	applyInput1D(m1d, input)
	assert.Equal(t, m1d.Dt, 0.001)
	assert.Equal(t, m1d.Dx, 0.005)
	assert.Equal(t, m1d.L, 10.)
	assert.Equal(t, m1d.C, 1.)
	assert.Equal(t, m1d.Pulse, "triangular")

	partial := InputParameters.SimParameters1D{Pulse: "square"}
	m1d = &Model1D{Dt: 0.01, Pulse: "sine"}
	applyInput1D(m1d, partial)
	assert.Equal(t, m1d.Dt, 0.01)
	assert.Equal(t, m1d.Pulse, "square")
}
