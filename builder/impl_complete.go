// SPDX-License-Identifier: MIT
// Package: primgraph/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every pair i<j in lexicographic (i, j) order, n(n-1)/2 edges.
//
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/primgraph/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	c := Constructor{method: methodComplete, n: n}
	if n < minCompleteNodes {
		c.err = tooFew(methodComplete, "n", n, minCompleteNodes)
		return c
	}
	c.emit = func(g *core.Graph[int], cfg builderConfig) error {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}

	return c
}
