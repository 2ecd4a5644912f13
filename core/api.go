// File: api.go
// Role: Read-only summaries of a Graph for diagnostics and admission checks.

package core

// GraphStats is a snapshot of a graph's size and shape.
//
// EdgeCount is the counter maintained by AddEdge/RemoveEdge. DistinctEdges is the number
// of edges actually listed by Edges(); the two differ after unmatched RemoveEdge calls.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	DistinctEdges int
	SelfLoops     int
	Parallel      int // extra copies beyond the first between the same endpoints
	Isolated      int // vertices with an empty adjacency list
	MinWeight     float64
	MaxWeight     float64
	TotalWeight   float64
	NonNegative   bool // construction policy from WithNonNegativeWeights
}

// Stats produces a deterministic snapshot of vertex, edge and weight counts.
// On a graph without edges MinWeight, MaxWeight and TotalWeight are 0.
//
// Complexity: O(n + E).
func (g *Graph[L]) Stats() *GraphStats {
	stats := GraphStats{
		VertexCount: g.n,
		EdgeCount:   g.edges,
		NonNegative: g.cfg.nonNegative,
	}
	for _, list := range g.adj {
		if len(list) == 0 {
			stats.Isolated++
		}
	}

	type pair struct{ u, v int }
	seen := make(map[pair]struct{})
	for i, e := range g.Edges() {
		if i == 0 || e.Weight < stats.MinWeight {
			stats.MinWeight = e.Weight
		}
		if i == 0 || e.Weight > stats.MaxWeight {
			stats.MaxWeight = e.Weight
		}
		stats.TotalWeight += e.Weight
		stats.DistinctEdges++
		if e.From == e.To {
			stats.SelfLoops++
		}
		p := pair{e.From, e.To}
		if _, dup := seen[p]; dup {
			stats.Parallel++
			continue
		}
		seen[p] = struct{}{}
	}

	return &stats
}
