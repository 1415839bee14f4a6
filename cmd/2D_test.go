package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/abelfp/wave-equation-simulation/InputParameters"
)

func TestRun2D(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Gaussian Membrane
Dt: 0.005
Dxy: 0.01
Lx: 1.
Ly: 2.
C: 1.
Wave: gaussian # one of gaussian, polynomial, trig, trig_gauss, poly_trig
StepsPerFrame: 10
FinalTime: 4.
`)
	var input InputParameters.SimParameters2D
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Title, "Gaussian Membrane")
	assert.Equal(t, input.Dt, 0.005)
	assert.Equal(t, input.Ly, 2.)
	assert.Equal(t, input.Wave, "gaussian")
	assert.Equal(t, input.StepsPerFrame, 10)
	input.Print()
	assert.Equal(t, input.FinalTime, 4.)

	// File parameters overlay flag defaults, zero values leave them alone
	m2d := &Model2D{Dt: 0.001, Dxy: 0.1, Lx: 3, Ly: 3, C: 2, Wave: "trig", StepsPerFrame: 1, FinalTime: 1}
	applyInput(m2d, input)
	assert.Equal(t, m2d.Dt, 0.005)
	assert.Equal(t, m2d.Lx, 1.)
	assert.Equal(t, m2d.Ly, 2.)
	assert.Equal(t, m2d.Wave, "gaussian")
	assert.Equal(t, m2d.FinalTime, 4.)

	partial := InputParameters.SimParameters2D{Dt: 0.002}
	m2d = &Model2D{Dt: 0.001, Dxy: 0.1, Wave: "trig"}
	applyInput(m2d, partial)
	assert.Equal(t, m2d.Dt, 0.002)
	assert.Equal(t, m2d.Dxy, 0.1)
	assert.Equal(t, m2d.Wave, "trig")
}
