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
	"github.com/abelfp/wave-equation-simulation/model_problems/Wave1D"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "Wave equation on a string with fixed end points",
	Long: `
Solves the 1D wave equation for a chosen initial pulse shape,

wave-sim 1D --pulse triangular --graph`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m1d := &Model1D{}
		fmt.Println("1D called")
		m1d.Dt, _ = cmd.Flags().GetFloat64("dt")
		m1d.Dx, _ = cmd.Flags().GetFloat64("dx")
		m1d.L, _ = cmd.Flags().GetFloat64("length")
		m1d.C, _ = cmd.Flags().GetFloat64("waveSpeed")
		m1d.Pulse, _ = cmd.Flags().GetString("pulse")
		m1d.StepsPerFrame, _ = cmd.Flags().GetInt("steps")
		m1d.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		m1d.Graph, _ = cmd.Flags().GetBool("graph")
		m1d.Profile, _ = cmd.Flags().GetBool("profile")
		dr, _ := cmd.Flags().GetInt("delay")
		m1d.Delay = time.Duration(dr) * time.Millisecond
		m1d.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		if err := processInput1D(m1d); err != nil {
			return err
		}
		return Run1D(m1d)
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().Float64("dt", 0.001, "time step")
	OneDCmd.Flags().Float64("dx", 0.005, "spatial step")
	OneDCmd.Flags().Float64P("length", "l", 10.0, "length of the string")
	OneDCmd.Flags().Float64P("waveSpeed", "c", 1.0, "velocity of the wave")
	OneDCmd.Flags().StringP("pulse", "p", "triangular",
		"initial pulse shape: "+strings.Join(InitialConditions.Names1D(), ", "))
	OneDCmd.Flags().IntP("steps", "s", 10, "time steps per yielded frame")
	OneDCmd.Flags().Float64("finalTime", 10.0, "FinalTime - the target end time for the sim")
	OneDCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	OneDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file of simulation parameters")
}

type Model1D struct {
	Dt, Dx, L, C  float64
	Pulse         string
	StepsPerFrame int
	FinalTime     float64
	Graph         bool
	Profile       bool
	Delay         time.Duration
	ICFile        string
}

// processInput1D overlays parameters from the YAML input file, when given,
// onto the flag values.
func processInput1D(m1d *Model1D) error {
	if len(m1d.ICFile) == 0 {
		return nil
	}
	data, err := os.ReadFile(m1d.ICFile)
	if err != nil {
		exampleFile := `
########################################
Title: "Triangular Pulse"
Dt: 0.001
Dx: 0.005
L: 10.
C: 1.
Pulse: triangular
StepsPerFrame: 10
FinalTime: 10.
########################################
`
		fmt.Printf("unable to read input parameters file, example:%s", exampleFile)
		return fmt.Errorf("unable to read input parameters file %s: %w", m1d.ICFile, err)
	}
	var sp InputParameters.SimParameters1D
	if err = sp.Parse(data); err != nil {
		return fmt.Errorf("unable to parse input parameters file %s: %w", m1d.ICFile, err)
	}
	sp.Print()
	applyInput1D(m1d, sp)
	return nil
}

// applyInput1D overlays non-zero file parameters onto the flag values.
func applyInput1D(m1d *Model1D, sp InputParameters.SimParameters1D) {
	if sp.Dt != 0 {
		m1d.Dt = sp.Dt
	}
	if sp.Dx != 0 {
		m1d.Dx = sp.Dx
	}
	if sp.L != 0 {
		m1d.L = sp.L
	}
	if sp.C != 0 {
		m1d.C = sp.C
	}
	if len(sp.Pulse) != 0 {
		m1d.Pulse = sp.Pulse
	}
	if sp.StepsPerFrame != 0 {
		m1d.StepsPerFrame = sp.StepsPerFrame
	}
	if sp.FinalTime != 0 {
		m1d.FinalTime = sp.FinalTime
	}
}

func Run1D(m1d *Model1D) error {
	if m1d.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	uX0, ok := InitialConditions.Pulses1D[m1d.Pulse]
	if !ok {
		return fmt.Errorf("unknown pulse %q, available: %s", m1d.Pulse, strings.Join(InitialConditions.Names1D(), ", "))
	}
	c, err := Wave1D.NewWave1D(uX0, InitialConditions.InitVelocity1D, m1d.Dt, m1d.L, m1d.Dx, m1d.C)
	if err != nil {
		return err
	}
	var (
		chart        *chart2d.Chart2D
		colorMap     *utils2.ColorMap
		chartName    = "Wave1D"
		logFrequency = 50
	)
	u0, x := c.UXInit()
	fmt.Printf("alpha2 = %8.4f, dt = %8.6f, dx = %8.6f, L = %8.4f, c = %8.4f, Nx = %d\nPulse: %s\n\n",
		c.Alpha2, m1d.Dt, m1d.Dx, m1d.L, m1d.C, x.Len(), m1d.Pulse)
	if m1d.Graph {
		ymax := float32(math.Max(u0.Max(), -u0.Min()))
		if ymax == 0 {
			ymax = 1
		}
		chart = chart2d.NewChart2D(1024, 768, float32(x.Min()), float32(x.Max()), -ymax, ymax)
		colorMap = utils2.NewColorMap(-1, 1, 1)
		go chart.Plot()
	}
	frame := 0
	for u, t := range c.Iterate(m1d.StepsPerFrame) {
		if m1d.Graph {
			if err := chart.AddSeries(chartName, x.RawVector().Data, u.RawVector().Data,
				chart2d.NoGlyph, chart2d.Solid, colorMap.GetRGB(0)); err != nil {
				panic("unable to add graph series")
			}
			if m1d.Delay != 0 {
				time.Sleep(m1d.Delay)
			}
		}
		if frame%logFrequency == 0 {
			fmt.Printf("Time = %8.4f, umin = %8.4f, umax = %8.4f\n", t, u.Min(), u.Max())
		}
		frame++
		if t >= m1d.FinalTime {
			break
		}
	}
	return nil
}
