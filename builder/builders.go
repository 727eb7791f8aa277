package builder

// ComputerBuilder fills in one part of a Computer per step.
type ComputerBuilder interface {
	BuildCPU()
	BuildGPU()
	BuildRAM()
	BuildStorage()
	BuildCoolingSystem()
	Result() Computer
}

// GamingBuilder builds a high-end gaming PC.
type GamingBuilder struct {
	computer Computer
}

// NewGamingBuilder returns a builder with an empty Computer.
func NewGamingBuilder() *GamingBuilder { return &GamingBuilder{} }

func (b *GamingBuilder) BuildCPU() { b.computer.CPU = "High-end Gaming CPU" }
func (b *GamingBuilder) BuildGPU() { b.computer.GPU = "High-end Gaming GPU" }
func (b *GamingBuilder) BuildRAM() { b.computer.RAM = "16GB RAM" }
func (b *GamingBuilder) BuildStorage() { b.computer.Storage = "1TB SSD" }
func (b *GamingBuilder) BuildCoolingSystem() { b.computer.CoolingSystem = "Advanced Cooling" }
func (b *GamingBuilder) Result() Computer { return b.computer }

// WorkstationBuilder builds a professional workstation.
type WorkstationBuilder struct {
	computer Computer
}

// NewWorkstationBuilder returns a builder with an empty Computer.
func NewWorkstationBuilder() *WorkstationBuilder { return &WorkstationBuilder{} }

func (b *WorkstationBuilder) BuildCPU() { b.computer.CPU = "High-performance Workstation CPU" }
func (b *WorkstationBuilder) BuildGPU() { b.computer.GPU = "Professional GPU" }
func (b *WorkstationBuilder) BuildRAM() { b.computer.RAM = "32GB RAM" }
func (b *WorkstationBuilder) BuildStorage() { b.computer.Storage = "2TB HDD + 512GB SSD" }
func (b *WorkstationBuilder) BuildCoolingSystem() {
	b.computer.CoolingSystem = "Efficient Air Cooling"
}
func (b *WorkstationBuilder) Result() Computer { return b.computer }
