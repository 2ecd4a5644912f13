// SPDX-License-Identifier: MIT
// Package: primgraph/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r, c) is vertex r*cols + c (GridIndex).
//   • Scans cells row-major; for each cell emits the right edge, then the down edge.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridIndex returns the vertex index of cell (r, c) in a grid with cols columns.
func GridIndex(r, c, cols int) int { return r*cols + c }

// Grid returns a Constructor for the rows×cols 4-neighbour lattice.
func Grid(rows, cols int) Constructor {
	c := Constructor{method: methodGrid, n: rows * cols}
	if rows < minGridDim || cols < minGridDim {
		c.n = 0
		c.err = fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		return c
	}
	c.emit = func(g *core.Graph[int], cfg builderConfig) error {
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				u := GridIndex(r, col, cols)
				if col+1 < cols {
					if err := addEdge(g, cfg, methodGrid, u, GridIndex(r, col+1, cols)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, u, GridIndex(r+1, col, cols)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}

	return c
}
