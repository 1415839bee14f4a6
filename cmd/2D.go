/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/abelfp/wave-equation-simulation/InitialConditions"
	"github.com/abelfp/wave-equation-simulation/InputParameters"
	"github.com/abelfp/wave-equation-simulation/model_problems/Wave2D"
)

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Wave equation on a rectangular membrane with fixed edges",
	Long: `
Solves the 2D wave equation for a chosen initial wave shape, with parameters
taken from flags or from a YAML input file,

wave-sim 2D --wave gaussian
wave-sim 2D -I membrane.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m2d := &Model2D{}
		fmt.Println("2D called")
		m2d.Dt, _ = cmd.Flags().GetFloat64("dt")
		m2d.Dxy, _ = cmd.Flags().GetFloat64("dxy")
		m2d.Lx, _ = cmd.Flags().GetFloat64("lx")
		m2d.Ly, _ = cmd.Flags().GetFloat64("ly")
		m2d.C, _ = cmd.Flags().GetFloat64("waveSpeed")
		m2d.Wave, _ = cmd.Flags().GetString("wave")
		m2d.StepsPerFrame, _ = cmd.Flags().GetInt("steps")
		m2d.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		m2d.Graph, _ = cmd.Flags().GetBool("graph")
		m2d.Profile, _ = cmd.Flags().GetBool("profile")
		dr, _ := cmd.Flags().GetInt("delay")
		m2d.Delay = time.Duration(dr) * time.Millisecond
		m2d.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		if err := processInput(m2d); err != nil {
			return err
		}
		return Run2D(m2d)
	},
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().Float64("dt", 0.005, "time step")
	TwoDCmd.Flags().Float64("dxy", 0.01, "spatial step along both axes")
	TwoDCmd.Flags().Float64("lx", 1.0, "width of the membrane")
	TwoDCmd.Flags().Float64("ly", 1.0, "length of the membrane")
	TwoDCmd.Flags().Float64P("waveSpeed", "c", 1.0, "velocity of the wave")
	TwoDCmd.Flags().StringP("wave", "w", "gaussian",
		"initial wave shape: "+strings.Join(InitialConditions.Names2D(), ", "))
	TwoDCmd.Flags().IntP("steps", "s", 10, "time steps per yielded frame")
	TwoDCmd.Flags().Float64("finalTime", 2.0, "FinalTime - the target end time for the sim")
	TwoDCmd.Flags().BoolP("graph", "g", false, "display a graph of the mid-row slice while computing solution")
	TwoDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file of simulation parameters")
}

type Model2D struct {
	Dt, Dxy, Lx, Ly, C float64
	Wave               string
	StepsPerFrame      int
	FinalTime          float64
	Graph              bool
	Profile            bool
	Delay              time.Duration
	ICFile             string
}

// processInput overlays parameters from the YAML input file, when given,
// onto the flag values.
func processInput(m2d *Model2D) error {
	if len(m2d.ICFile) == 0 {
		return nil
	}
	data, err := os.ReadFile(m2d.ICFile)
	if err != nil {
		exampleFile := `
########################################
Title: "Gaussian Membrane"
Dt: 0.005
Dxy: 0.01
Lx: 1.
Ly: 1.
C: 1.
Wave: gaussian
StepsPerFrame: 10
FinalTime: 2.
########################################
`
		fmt.Printf("unable to read input parameters file, example:%s", exampleFile)
		return fmt.Errorf("unable to read input parameters file %s: %w", m2d.ICFile, err)
	}
	var sp InputParameters.SimParameters2D
	if err = sp.Parse(data); err != nil {
		return fmt.Errorf("unable to parse input parameters file %s: %w", m2d.ICFile, err)
	}
	sp.Print()
	applyInput(m2d, sp)
	return nil
}

// applyInput overlays non-zero file parameters onto the flag values.
func applyInput(m2d *Model2D, sp InputParameters.SimParameters2D) {
	if sp.Dt != 0 {
		m2d.Dt = sp.Dt
	}
	if sp.Dxy != 0 {
		m2d.Dxy = sp.Dxy
	}
	if sp.Lx != 0 {
		m2d.Lx = sp.Lx
	}
	if sp.Ly != 0 {
		m2d.Ly = sp.Ly
	}
	if sp.C != 0 {
		m2d.C = sp.C
	}
	if len(sp.Wave) != 0 {
		m2d.Wave = sp.Wave
	}
	if sp.StepsPerFrame != 0 {
		m2d.StepsPerFrame = sp.StepsPerFrame
	}
	if sp.FinalTime != 0 {
		m2d.FinalTime = sp.FinalTime
	}
}

func Run2D(m2d *Model2D) error {
	if m2d.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	uXY0, ok := InitialConditions.Waves2D[m2d.Wave]
	if !ok {
		return fmt.Errorf("unknown wave %q, available: %s", m2d.Wave, strings.Join(InitialConditions.Names2D(), ", "))
	}
	c, err := Wave2D.NewWave2D(uXY0, InitialConditions.InitVelocity2D, m2d.Dt, m2d.Lx, m2d.Ly, m2d.Dxy, m2d.C)
	if err != nil {
		return err
	}
	var (
		chart        *chart2d.Chart2D
		colorMap     *utils2.ColorMap
		chartName    = "Wave2D mid-row"
		logFrequency = 50
	)
	u0, x, y := c.UXYInit()
	nx, _ := u0.Dims()
	fmt.Printf("alpha2 = %8.4f, dt = %8.6f, dxy = %8.6f, Lx = %8.4f, Ly = %8.4f, c = %8.4f, Nx = %d, Ny = %d\nWave: %s\n\n",
		c.Alpha2, m2d.Dt, m2d.Dxy, m2d.Lx, m2d.Ly, m2d.C, x.Len(), y.Len(), m2d.Wave)
	if m2d.Graph {
		ymax := float32(math.Max(u0.Max(), -u0.Min()))
		if ymax == 0 {
			ymax = 1
		}
		// The mid-row slice holds x = Lx/2 and varies along y.
		chart = chart2d.NewChart2D(1024, 768, float32(y.Min()), float32(y.Max()), -ymax, ymax)
		colorMap = utils2.NewColorMap(-1, 1, 1)
		go chart.Plot()
	}
	frame := 0
	for u, t := range c.Iterate(m2d.StepsPerFrame) {
		if m2d.Graph {
			if err := chart.AddSeries(chartName, y.RawVector().Data, u.Row(nx/2).RawVector().Data,
				chart2d.NoGlyph, chart2d.Solid, colorMap.GetRGB(0)); err != nil {
				panic("unable to add graph series")
			}
			if m2d.Delay != 0 {
				time.Sleep(m2d.Delay)
			}
		}
		if frame%logFrequency == 0 {
			fmt.Printf("Time = %8.4f, umin = %8.4f, umax = %8.4f\n", t, u.Min(), u.Max())
		}
		frame++
		if t >= m2d.FinalTime {
			break
		}
	}
	return nil
}
