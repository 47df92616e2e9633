// Package numeric provides the scalar floating-point type shared by the
// ordering engine and a small, deterministic pseudo-random source.
//
// Precision (single vs. double) is a compile-time choice expressed as the
// single type alias F; switch it to float32 to trade precision for memory
// if a workload ever needs it.
//
// RNG is a linear congruential generator with a fixed recurrence
// (state = 0x1ed0675*state + 0xa14f, mod 2^32). It exists purely for
// bitwise-reproducible shuffles given a seed, not for statistical quality,
// and is therefore not a substitute for math/rand in any other context.
// Each *RNG is independent, owned state — never a package-level global —
// so that two graphs ordered concurrently with the same seed produce
// identical permutations regardless of call interleaving.
package numeric
