package builder

import "fmt"

// Computer is the product assembled by a ComputerBuilder.
type Computer struct {
	CPU           string
	GPU           string
	RAM           string
	Storage       string
	CoolingSystem string
}

// String renders all parts in build order.
func (c Computer) String() string {
	return fmt.Sprintf("Computer [CPU=%s, GPU=%s, RAM=%s, Storage=%s, CoolingSystem=%s]",
		c.CPU, c.GPU, c.RAM, c.Storage, c.CoolingSystem)
}
