package builder

import (
	"fmt"
	"io"
)

// Director runs the build steps in a fixed order on its current builder.
type Director struct {
	builder ComputerBuilder
}

// NewDirector returns a Director driving b.
func NewDirector(b ComputerBuilder) *Director {
	return &Director{builder: b}
}

// SetBuilder swaps the builder used by the next Construct.
func (d *Director) SetBuilder(b ComputerBuilder) {
	d.builder = b
}

// Construct runs CPU, GPU, RAM, Storage and CoolingSystem, in that order.
func (d *Director) Construct() {
	d.builder.BuildCPU()
	d.builder.BuildGPU()
	d.builder.BuildRAM()
	d.builder.BuildStorage()
	d.builder.BuildCoolingSystem()
}

// Demo builds a gaming PC and then a workstation with one director.
func Demo(w io.Writer) error {
	gaming := NewGamingBuilder()
	director := NewDirector(gaming)
	director.Construct()
	fmt.Fprintf(w, "Gaming PC: %s\n", gaming.Result())

	workstation := NewWorkstationBuilder()
	director.SetBuilder(workstation)
	director.Construct()
	fmt.Fprintf(w, "Workstation PC: %s\n", workstation.Result())

	return nil
}
