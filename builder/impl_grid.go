// SPDX-License-Identifier: MIT
// Package: linorder/builder
//
// impl_grid.go - implementation of Grid(rows, cols).
//
// Contract: rows, cols >= MinGridDim. Reserves rows*cols nodes in row-major
// order (cell (r,c) is local index r*cols+c) and connects each cell to its
// right and bottom neighbor where present.
package builder

import "fmt"

// Grid returns a Constructor that builds a rows x cols orthogonal grid with
// 4-neighborhood adjacency.
func Grid(rows, cols int) Constructor {
	return func(spec *graphSpec, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		base := spec.addNodes(rows * cols)
		idx := func(r, c int) int { return base + r*cols + c + 1 }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					spec.addEdge(idx(r, c), idx(r, c+1), cfg.weightFn(cfg.rng))
				}
				if r+1 < rows {
					spec.addEdge(idx(r, c), idx(r+1, c), cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}
