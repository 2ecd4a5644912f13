package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/primgraph/bfs"
	"github.com/katalvlaran/primgraph/builder"
	"github.com/katalvlaran/primgraph/core"
	"github.com/katalvlaran/primgraph/dfs"
	"github.com/katalvlaran/primgraph/dijkstra"
	"github.com/katalvlaran/primgraph/graphfile"
	"github.com/katalvlaran/primgraph/prim_kruskal"
)

// app carries state shared by every subcommand of one root command.
type app struct {
	logLevel string
	logger   *slog.Logger
}

// newRootCmd builds a fresh command tree; tests build one per case.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "primmst",
		Short: "Minimum spanning trees of weighted undirected graphs",
		Long: `primmst reads a YAML graph file and runs Prim's algorithm (or Kruskal's)
on it, printing the resulting tree one vertex per line.

Graph file format:
  vertices: [A, B, C]
  start: A
  edges:
    - {from: A, to: B, weight: 1}`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(a.mstCmd(), a.reachCmd(), a.pathCmd(), a.statsCmd(), a.generateCmd())

	return root
}

func (a *app) mstCmd() *cobra.Command {
	var (
		start  string
		method string
		forest bool
	)
	cmd := &cobra.Command{
		Use:   "mst FILE",
		Short: "Print the minimum spanning tree of a graph file",
		Long: `Print the minimum spanning tree of a graph file.

With --method prim (default) each vertex is printed as "label <- parent (weight)".
Vertices outside the start component are printed as unreached unless --forest is given.
With --method kruskal the tree edges are printed as "from - to (weight)".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, g, err := a.load(args[0])
			if err != nil {
				return err
			}
			switch method {
			case prim_kruskal.MethodPrim:
				name, err := startLabel(doc, g, start)
				if err != nil {
					return err
				}
				root, err := g.FindNode(name)
				if err != nil {
					return err
				}

				return a.printPrim(cmd, g, root, forest)
			case prim_kruskal.MethodKruskal:
				edges, total, err := prim_kruskal.Kruskal(g)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, e := range edges {
					fmt.Fprintf(out, "%s - %s (%g)\n", label(g, e.From), label(g, e.To), e.Weight)
				}
				fmt.Fprintf(out, "total %g\n", total)

				return nil
			default:
				return fmt.Errorf("%w: %q", prim_kruskal.ErrUnknownMethod, method)
			}
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "start vertex label (default: the file's start, else the first vertex)")
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodPrim, "MST algorithm: prim or kruskal")
	cmd.Flags().BoolVar(&forest, "forest", false, "span every component (Prim only)")

	return cmd
}

// printPrim prints the tree grown from the vertex index root.
func (a *app) printPrim(cmd *cobra.Command, g *core.Graph[string], root int, forest bool) error {
	opts := []prim_kruskal.Option{prim_kruskal.WithLogger(a.logger)}
	if forest {
		opts = append(opts, prim_kruskal.WithForest())
	}
	pred, err := prim_kruskal.PrimFromIndex(g, root, opts...)
	if err != nil {
		return err
	}
	edges, err := prim_kruskal.TreeEdges(g, pred)
	if err != nil {
		return err
	}
	weight := make(map[int]float64, len(edges))
	var total float64
	for _, e := range edges {
		weight[e.To] = e.Weight
		total += e.Weight
	}

	out := cmd.OutOrStdout()
	for v := range g.Vertices() {
		switch p := pred[v]; {
		case p != prim_kruskal.NoPredecessor:
			fmt.Fprintf(out, "%s <- %s (%g)\n", label(g, v), label(g, p), weight[v])
		case v == root || forest:
			fmt.Fprintf(out, "%s <- (root)\n", label(g, v))
		default:
			fmt.Fprintf(out, "%s <- (unreached)\n", label(g, v))
		}
	}
	fmt.Fprintf(out, "total %g\n", total)
	a.logger.Info("mst computed", "start", label(g, root), "trees", prim_kruskal.Roots(pred), "total", total)

	return nil
}

func (a *app) reachCmd() *cobra.Command {
	var start string
	cmd := &cobra.Command{
		Use:   "reach FILE",
		Short: "Print the hop depth of every vertex reachable from the start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, g, err := a.load(args[0])
			if err != nil {
				return err
			}
			name, err := startLabel(doc, g, start)
			if err != nil {
				return err
			}
			s, err := g.FindNode(name)
			if err != nil {
				return err
			}
			res, err := bfs.BFS(g, s)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for v := range g.Vertices() {
				if res.Reached(v) {
					fmt.Fprintf(out, "%s depth %d\n", label(g, v), res.Depth[v])
					continue
				}
				fmt.Fprintf(out, "%s unreachable\n", label(g, v))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "start vertex label (default: the file's start, else the first vertex)")

	return cmd
}

func (a *app) pathCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "path FILE",
		Short: "Print the shortest path between two vertices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := a.load(args[0])
			if err != nil {
				return err
			}
			src, err := g.FindNode(from)
			if err != nil {
				return err
			}
			dst, err := g.FindNode(to)
			if err != nil {
				return err
			}
			dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if prev[dst] == dijkstra.NoPredecessor && dst != src {
				fmt.Fprintf(out, "%s unreachable from %s\n", to, from)
				return nil
			}
			var hops []string
			for v := dst; v != dijkstra.NoPredecessor; v = prev[v] {
				hops = append(hops, label(g, v))
			}
			for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
				hops[i], hops[j] = hops[j], hops[i]
			}
			fmt.Fprintf(out, "%s (%g)\n", strings.Join(hops, " -> "), dist[dst])

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source vertex label")
	cmd.Flags().StringVar(&to, "to", "", "destination vertex label")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print vertex, edge, weight and component counts of a graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := a.load(args[0])
			if err != nil {
				return err
			}
			s := g.Stats()
			_, components, err := dfs.Components(g)
			if err != nil {
				return err
			}
			cyclic, err := dfs.HasCycle(g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices %d\n", s.VertexCount)
			fmt.Fprintf(out, "edges %d\n", s.EdgeCount)
			fmt.Fprintf(out, "self-loops %d\n", s.SelfLoops)
			fmt.Fprintf(out, "parallel %d\n", s.Parallel)
			fmt.Fprintf(out, "isolated %d\n", s.Isolated)
			fmt.Fprintf(out, "weight min %g max %g total %g\n", s.MinWeight, s.MaxWeight, s.TotalWeight)
			fmt.Fprintf(out, "components %d\n", components)
			fmt.Fprintf(out, "cyclic %t\n", cyclic)

			return nil
		},
	}
}

func (a *app) generateCmd() *cobra.Command {
	var (
		n          int
		rows, cols int
		p          float64
		seed       int64
		minW, maxW int
	)
	cmd := &cobra.Command{
		Use:       "generate TOPOLOGY",
		Short:     "Print a generated graph file (path, cycle, star, complete, grid, random)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"path", "cycle", "star", "complete", "grid", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var c builder.Constructor
			switch args[0] {
			case "path":
				c = builder.Path(n)
			case "cycle":
				c = builder.Cycle(n)
			case "star":
				c = builder.Star(n)
			case "complete":
				c = builder.Complete(n)
			case "grid":
				c = builder.Grid(rows, cols)
			case "random":
				c = builder.RandomSparse(n, p)
			default:
				return fmt.Errorf("unknown topology %q", args[0])
			}
			if minW < 0 || maxW < minW {
				return fmt.Errorf("invalid weight range [%d, %d]", minW, maxW)
			}
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithWeightFn(builder.IntegerWeightFn(minW, maxW)),
			}, c)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("%s-%d", c.Method(), c.Order())
			data, err := graphfile.FromGraph(name, g).Marshal()
			if err != nil {
				return err
			}
			a.logger.Debug("graph generated", "name", name, "edges", g.EdgeCount(), "seed", seed)
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
	cmd.Flags().IntVar(&n, "n", 5, "vertex count (path, cycle, star, complete, random)")
	cmd.Flags().IntVar(&rows, "rows", 3, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", 3, "grid columns")
	cmd.Flags().Float64Var(&p, "p", 0.3, "edge probability (random)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for topology and weights")
	cmd.Flags().IntVar(&minW, "min-weight", 1, "smallest integer edge weight")
	cmd.Flags().IntVar(&maxW, "max-weight", 9, "largest integer edge weight")

	return cmd
}

// load reads and builds the graph file at path.
func (a *app) load(path string) (*graphfile.Document, *core.Graph[string], error) {
	doc, err := graphfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := doc.Build()
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("graph loaded", "path", path, "name", doc.Name, "vertices", g.Size(), "edges", g.EdgeCount())

	return doc, g, nil
}

// startLabel picks the flag value, then the document's start, then the first vertex.
func startLabel(doc *graphfile.Document, g *core.Graph[string], flag string) (string, error) {
	switch {
	case flag != "":
		return flag, nil
	case doc.Start != "":
		return doc.Start, nil
	case g.Size() > 0:
		return g.Data(0)
	default:
		return "", fmt.Errorf("graph %q has no vertices", doc.Name)
	}
}

// label returns the label of a vertex already known to be valid.
func label(g *core.Graph[string], v int) string {
	l, _ := g.Data(v)
	return l
}
