// SPDX-License-Identifier: MIT
// Package: primgraph/builder
//
// impl_random_sparse.go: implementation of RandomSparse(n, p) (Erdős–Rényi G(n,p)).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   • 0 < p < 1 requires cfg.rng (else ErrNeedRandSource); p=0 and p=1 are deterministic.
//   • Visits pairs i<j in lexicographic order; one Bernoulli(p) draw per pair,
//     then one weight draw per kept pair.
//
// Complexity: O(n²) draws.
//
// Determinism:
//   • Same seed, same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for an Erdős–Rényi random graph G(n, p).
// The result may be disconnected; Prim then stops at the start component.
func RandomSparse(n int, p float64) Constructor {
	c := Constructor{method: methodRandomSparse, n: n}
	switch {
	case n < minRandomSparseVertices:
		c.err = tooFew(methodRandomSparse, "n", n, minRandomSparseVertices)
		return c
	case p < probMin || p > probMax:
		c.err = fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		return c
	}
	c.emit = func(g *core.Graph[int], cfg builderConfig) error {
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax || (p > probMin && cfg.rng.Float64() < p)
				if !keep {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}

	return c
}
