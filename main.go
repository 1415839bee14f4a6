package main

import "github.com/abelfp/wave-equation-simulation/cmd"

func main() {
	cmd.Execute()
}
