// Package functional implements the family of p-mean cost functionals the
// ordering engine minimizes: Harmonic (p=-1), Geometric (p=0), SMR (p=1/2),
// Arithmetic (p=1), RMS (p=2), and Maximum (p=∞).
//
// Each functional reduces a multiset of (edge length, edge weight) terms to
// a single weighted mean, and separately knows how to pick the node
// position that minimizes that mean over a local point set ("optimum"),
// and how much an edge's contribution should be discounted at the k'th
// refinement iteration ("bond"). The six are otherwise interchangeable:
// the engine is written once against the Functional interface and never
// branches on which concrete functional it holds.
//
// p < 1 functionals (Harmonic, Geometric, SMR) are quasiconvex rather than
// convex, so their optimum cannot be found by a weighted-median or
// weighted-mean shortcut; their Optimum scans every candidate node
// position directly, per the functional's own mean.
package functional
