package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/primgraph/core"
)

// Roots counts the NoPredecessor entries of pred: one per tree when every vertex was reached,
// plus one per unreached vertex otherwise.
func Roots(pred []int) int {
	roots := 0
	for _, p := range pred {
		if p == NoPredecessor {
			roots++
		}
	}

	return roots
}

// TreeEdges expands a predecessor slice into tree edges, in vertex order.
// Each edge has From = parent and To = child. Between parallel edges the lightest is used,
// since that is the one Prim keyed the child on.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrPredecessorLength if len(pred) != g.Size().
//   - *core.IndexOutOfRangeError for a parent index outside the graph.
//   - ErrNotAnEdge (wrapped) if parent and child are not adjacent.
//
// Complexity: O(V + E).
func TreeEdges[L comparable](g *core.Graph[L], pred []int) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(pred) != g.Size() {
		return nil, fmt.Errorf("%w: got %d, graph has %d vertices", ErrPredecessorLength, len(pred), g.Size())
	}

	edges := make([]core.Edge, 0, len(pred))
	for v, p := range pred {
		if p == NoPredecessor {
			continue
		}
		if err := g.Validate(p); err != nil {
			return nil, err
		}
		w, ok, err := lightest(g, p, v)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %d -> %d", ErrNotAnEdge, p, v)
		}
		edges = append(edges, core.Edge{From: p, To: v, Weight: w})
	}

	return edges, nil
}

// TreeWeight returns the total weight of the tree encoded by pred.
func TreeWeight[L comparable](g *core.Graph[L], pred []int) (float64, error) {
	edges, err := TreeEdges(g, pred)
	if err != nil {
		return 0, err
	}

	return sumWeights(edges), nil
}

// lightest returns the minimum weight among the entries of u pointing to v.
func lightest[L comparable](g *core.Graph[L], u, v int) (float64, bool, error) {
	nbrs, err := g.Neighbors(u)
	if err != nil {
		return 0, false, err
	}
	var (
		best  float64
		found bool
	)
	for _, nb := range nbrs {
		if nb.To == v && (!found || nb.Weight < best) {
			best, found = nb.Weight, true
		}
	}

	return best, found, nil
}
