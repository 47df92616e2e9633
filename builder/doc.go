// Package builder provides reusable "functional options"-style generators
// for the fixed-topology test graphs the ordering engine's property and
// scenario tests draw on: rings, stars, wheels, complete and complete
// bipartite graphs, grids, hexagram chord overlays, the five Platonic
// solids, and two random families (Erdos-Renyi sparse graphs and
// stub-matched d-regular graphs).
//
// Every constructor returns a Constructor closure that records nodes and
// edges into a shared graphSpec; BuildGraph resolves a builderConfig from
// any BuilderOption values, runs the constructors in order, and
// materializes one *core.Graph. Edge weights are drawn from a WeightFn
// (constant by default; uniform, normal, and exponential variants are
// provided), and randomized topologies take their randomness from an
// explicit *rand.Rand set via WithSeed or WithRand, never a package-level
// generator — two builds with the same seed and constructor sequence
// produce identical graphs.
//
// See individual function documentation for parameter contracts, minimum
// sizes, and panic conditions (option constructors validate and panic on
// meaningless input; topology constructors never panic and return sentinel
// errors instead).
package builder
