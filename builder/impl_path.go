// SPDX-License-Identifier: MIT
// Package: primgraph/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i–(i+1) for i=0..n-2, in ascending i.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/primgraph/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the path P_n: 0–1–…–(n-1).
// The path is its own minimum spanning tree.
func Path(n int) Constructor {
	c := Constructor{method: methodPath, n: n}
	if n < minPathNodes {
		c.err = tooFew(methodPath, "n", n, minPathNodes)
		return c
	}
	c.emit = func(g *core.Graph[int], cfg builderConfig) error {
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}

	return c
}
