// SPDX-License-Identifier: MIT
// Package: linorder/builder
//
// impl_hexagram.go - Star-of-David (hexagram) patterns: chord sets
// overlayed atop a base cycle or wheel ring.
//
// HexDefault and HexMedium overlay chords on a bare Cycle ring; HexBig and
// HexHuge overlay chords on Wheel(12), whose ring is indices 0..10 and whose
// hub is index 11. Chord endpoints are local indices into the base's
// hexRingSize[variant] nodes; a chord naming index 11 coincides with a
// spoke and is skipped as a duplicate.
package builder

import "fmt"

// HexagramVariant enumerates the supported Star-of-David shapes. Variants
// differ by ring size and overlayed chords.
type HexagramVariant int

const (
	// HexDefault is the classic 6-vertex hexagram: two interlocking triangles.
	HexDefault HexagramVariant = iota
	// HexMedium is an 8-vertex variant with two interlocking quadrilaterals.
	HexMedium
	// HexBig is a 12-vertex variant with long outer-triangle chords over a
	// wheel ring.
	HexBig
	// HexHuge is HexBig plus the inner triangle 1-5-9 and the chord 3-7
	// (the chords 7-11 and 11-3 land on hub spokes and add nothing).
	HexHuge
)

// hexRingSize maps each variant to the node count of its base Cycle or
// Wheel (for a Wheel, the hub included).
var hexRingSize = map[HexagramVariant]int{
	HexDefault: 6,
	HexMedium:  8,
	HexBig:     12,
	HexHuge:    12,
}

// hexChords maps each variant to its overlayed chord set, in stable
// emission order.
var hexChords = map[HexagramVariant][]chord{
	HexDefault: {
		{0, 2}, {2, 4}, {4, 0},
		{1, 3}, {3, 5}, {5, 1},
	},
	HexMedium: {
		{0, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 0},
		{1, 2}, {2, 4}, {4, 6}, {6, 7}, {7, 0}, {0, 1},
	},
	HexBig: {
		{0, 1}, {1, 3}, {3, 4}, {4, 5}, {5, 7}, {7, 8}, {8, 9}, {9, 11}, {11, 0},
		{2, 3}, {3, 5}, {5, 6}, {6, 7}, {7, 9}, {9, 10}, {10, 11}, {11, 1}, {1, 2},
	},
	HexHuge: {
		{0, 1}, {1, 3}, {3, 4}, {4, 5}, {5, 7}, {7, 8}, {8, 9}, {9, 11}, {11, 0},
		{2, 3}, {3, 5}, {5, 6}, {6, 7}, {7, 9}, {9, 10}, {10, 11}, {11, 1}, {1, 2},
		{1, 5}, {5, 9}, {9, 1},
		{3, 7}, {7, 11}, {11, 3},
	},
}

// Hexagram builds a Star-of-David pattern for the given variant: a base
// ring (Cycle for HexDefault/HexMedium, Wheel for HexBig/HexHuge) with its
// chord set overlayed.
func Hexagram(variant HexagramVariant) Constructor {
	return func(spec *graphSpec, cfg builderConfig) error {
		n, ok := hexRingSize[variant]
		if !ok {
			return fmt.Errorf("%s: unknown variant %v: %w", MethodHexagram, variant, ErrConstructFailed)
		}
		chords, ok := hexChords[variant]
		if !ok {
			return fmt.Errorf("%s: missing chords for %v: %w", MethodHexagram, variant, ErrConstructFailed)
		}

		ringBase := spec.n
		switch variant {
		case HexDefault, HexMedium:
			if err := Cycle(n)(spec, cfg); err != nil {
				return fmt.Errorf("%s: base cycle: %w", MethodHexagram, err)
			}
		case HexBig, HexHuge:
			if err := Wheel(n)(spec, cfg); err != nil {
				return fmt.Errorf("%s: base wheel: %w", MethodHexagram, err)
			}
		default:
			return fmt.Errorf("%s: unhandled variant %v: %w", MethodHexagram, variant, ErrConstructFailed)
		}

		// Some chord sets re-list a ring edge the base Cycle/Wheel already
		// added (adjacent ring indices); skip those to avoid duplicate arcs.
		for _, ch := range chords {
			u, v := ringBase+ch.U+1, ringBase+ch.V+1
			if spec.hasEdge(u, v) {
				continue
			}
			spec.addEdge(u, v, cfg.weightFn(cfg.rng))
		}

		return nil
	}
}
