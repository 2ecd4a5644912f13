// SPDX-License-Identifier: MIT
// Package: primgraph/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i–(i+1)%n for i=0..n-1.
//
// Complexity: O(n).
//
// Determinism:
//   • Deterministic weights given fixed cfg.rng/weightFn.

package builder

import "github.com/katalvlaran/primgraph/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// Any spanning tree drops exactly one ring edge.
func Cycle(n int) Constructor {
	c := Constructor{method: methodCycle, n: n}
	if n < minCycleNodes {
		c.err = tooFew(methodCycle, "n", n, minCycleNodes)
		return c
	}
	c.emit = func(g *core.Graph[int], cfg builderConfig) error {
		// i==n-1 closes the ring back to 0
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}

	return c
}
