// Package builder assembles a Computer step by step.
//
// A ComputerBuilder knows how to fill in each part for one kind of machine
// (GamingBuilder, WorkstationBuilder). A Director owns the build sequence and
// always runs the steps in the same order:
//
//	CPU → GPU → RAM → Storage → CoolingSystem
//
// so the product only depends on which builder the director is given.
//
//	b := builder.NewGamingBuilder()
//	builder.NewDirector(b).Construct()
//	fmt.Println(b.Result())
package builder
