package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type SimParameters1D struct {
	Title         string  `yaml:"Title"`
	Dt            float64 `yaml:"Dt"`
	Dx            float64 `yaml:"Dx"`
	L             float64 `yaml:"L"`
	C             float64 `yaml:"C"`
	Pulse         string  `yaml:"Pulse"`
	StepsPerFrame int     `yaml:"StepsPerFrame"`
	FinalTime     float64 `yaml:"FinalTime"`
}

func (sp *SimParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SimParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("%8.5f\t\t= Dt\n", sp.Dt)
	fmt.Printf("%8.5f\t\t= Dx\n", sp.Dx)
	fmt.Printf("%8.5f\t\t= L\n", sp.L)
	fmt.Printf("%8.5f\t\t= C\n", sp.C)
	fmt.Printf("[%s]\t\t= Pulse\n", sp.Pulse)
	fmt.Printf("[%d]\t\t\t= StepsPerFrame\n", sp.StepsPerFrame)
	fmt.Printf("%8.5f\t\t= FinalTime\n", sp.FinalTime)
}

// Parameters obtained from the YAML input file
type SimParameters2D struct {
	Title         string  `yaml:"Title"`
	Dt            float64 `yaml:"Dt"`
	Dxy           float64 `yaml:"Dxy"`
	Lx            float64 `yaml:"Lx"`
	Ly            float64 `yaml:"Ly"`
	C             float64 `yaml:"C"`
	Wave          string  `yaml:"Wave"`
	StepsPerFrame int     `yaml:"StepsPerFrame"`
	FinalTime     float64 `yaml:"FinalTime"`
}

func (sp *SimParameters2D) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SimParameters2D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("%8.5f\t\t= Dt\n", sp.Dt)
	fmt.Printf("%8.5f\t\t= Dxy\n", sp.Dxy)
	fmt.Printf("%8.5f\t\t= Lx\n", sp.Lx)
	fmt.Printf("%8.5f\t\t= Ly\n", sp.Ly)
	fmt.Printf("%8.5f\t\t= C\n", sp.C)
	fmt.Printf("[%s]\t\t= Wave\n", sp.Wave)
	fmt.Printf("[%d]\t\t\t= StepsPerFrame\n", sp.StepsPerFrame)
	fmt.Printf("%8.5f\t\t= FinalTime\n", sp.FinalTime)
}
