// SPDX-License-Identifier: MIT
// Package: primgraph/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); vertex 0 is the hub.
//   • Emits edges 0–i for i=1..n-1.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/primgraph/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for the star S_n with hub 0 and n-1 leaves.
func Star(n int) Constructor {
	c := Constructor{method: methodStar, n: n}
	if n < minStarNodes {
		c.err = tooFew(methodStar, "n", n, minStarNodes)
		return c
	}
	c.emit = func(g *core.Graph[int], cfg builderConfig) error {
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}

	return c
}
