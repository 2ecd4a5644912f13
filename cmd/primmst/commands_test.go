package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primgraph/core"
	"github.com/katalvlaran/primgraph/prim_kruskal"
)

const squareYAML = `name: square
vertices: [A, B, C, D]
start: A
edges:
  - {from: D, to: B, weight: 1}
  - {from: B, to: A, weight: 1}
  - {from: A, to: C, weight: 1}
  - {from: C, to: D, weight: 5}
`

const splitYAML = `name: split
vertices: [A, B, C]
edges:
  - {from: A, to: B, weight: 2}
`

// writeGraph stores src in a temp file and returns its path.
func writeGraph(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	return path
}

// run executes a fresh command tree and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestMST_Prim(t *testing.T) {
	out, _, err := run(t, "mst", writeGraph(t, squareYAML))
	require.NoError(t, err)
	assert.Equal(t, "A <- (root)\nB <- A (1)\nC <- A (1)\nD <- B (1)\ntotal 3\n", out)
}

func TestMST_PrimStartFlag(t *testing.T) {
	out, _, err := run(t, "mst", writeGraph(t, squareYAML), "--start", "D")
	require.NoError(t, err)
	assert.Equal(t, "A <- B (1)\nB <- D (1)\nC <- A (1)\nD <- (root)\ntotal 3\n", out)
}

func TestMST_Kruskal(t *testing.T) {
	out, _, err := run(t, "mst", writeGraph(t, squareYAML), "--method", "kruskal")
	require.NoError(t, err)
	assert.Equal(t, "A - B (1)\nA - C (1)\nB - D (1)\ntotal 3\n", out)
}

func TestMST_Disconnected(t *testing.T) {
	path := writeGraph(t, splitYAML)

	out, _, err := run(t, "mst", path)
	require.NoError(t, err)
	assert.Equal(t, "A <- (root)\nB <- A (2)\nC <- (unreached)\ntotal 2\n", out)

	out, _, err = run(t, "mst", path, "--forest")
	require.NoError(t, err)
	assert.Equal(t, "A <- (root)\nB <- A (2)\nC <- (root)\ntotal 2\n", out)

	_, _, err = run(t, "mst", path, "--method", "kruskal")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestMST_RootIsResolvedStart(t *testing.T) {
	out, _, err := run(t, "mst", writeGraph(t, splitYAML), "--start", "C")
	require.NoError(t, err)
	assert.Equal(t, "A <- (unreached)\nB <- (unreached)\nC <- (root)\ntotal 0\n", out)
}

func TestMST_Errors(t *testing.T) {
	path := writeGraph(t, squareYAML)

	_, _, err := run(t, "mst", path, "--method", "boruvka")
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	_, _, err = run(t, "mst", path, "--start", "Z")
	assert.ErrorIs(t, err, core.ErrNoSuchLabel)

	_, _, err = run(t, "mst")
	assert.Error(t, err)

	_, _, err = run(t, "mst", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReach(t *testing.T) {
	out, _, err := run(t, "reach", writeGraph(t, splitYAML))
	require.NoError(t, err)
	assert.Equal(t, "A depth 0\nB depth 1\nC unreachable\n", out)
}

func TestPath(t *testing.T) {
	path := writeGraph(t, squareYAML)

	out, _, err := run(t, "path", path, "--from", "A", "--to", "D")
	require.NoError(t, err)
	assert.Equal(t, "A -> B -> D (2)\n", out)

	out, _, err = run(t, "path", path, "--from", "C", "--to", "C")
	require.NoError(t, err)
	assert.Equal(t, "C (0)\n", out)

	out, _, err = run(t, "path", writeGraph(t, splitYAML), "--from", "A", "--to", "C")
	require.NoError(t, err)
	assert.Equal(t, "C unreachable from A\n", out)

	_, _, err = run(t, "path", path, "--from", "A")
	assert.Error(t, err, "--to is required")
}

func TestStats(t *testing.T) {
	out, _, err := run(t, "stats", writeGraph(t, squareYAML))
	require.NoError(t, err)
	assert.Equal(t, "vertices 4\nedges 4\nself-loops 0\nparallel 0\nisolated 0\nweight min 1 max 5 total 8\ncomponents 1\ncyclic true\n", out)

	out, _, err = run(t, "stats", writeGraph(t, splitYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "components 2\ncyclic false\n")
}

func TestLogLevel(t *testing.T) {
	path := writeGraph(t, squareYAML)

	_, stderr, err := run(t, "mst", path, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "graph loaded")
	assert.Contains(t, stderr, "prim: take vertex")
	assert.Contains(t, stderr, "mst computed")

	_, stderr, err = run(t, "mst", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, _, err = run(t, "mst", path, "--log-level", "chatty")
	assert.Error(t, err)
}

func TestGenerate_FeedsMST(t *testing.T) {
	out, _, err := run(t, "generate", "cycle", "--n", "4", "--min-weight", "2", "--max-weight", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Cycle-4")

	path := writeGraph(t, out)
	mst, _, err := run(t, "mst", path)
	require.NoError(t, err)
	assert.Equal(t, "0 <- (root)\n1 <- 0 (2)\n2 <- 1 (2)\n3 <- 0 (2)\ntotal 6\n", mst)
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "generate", "hexagon")
	assert.Error(t, err)

	_, _, err = run(t, "generate", "cycle", "--n", "2")
	assert.Error(t, err)

	_, _, err = run(t, "generate", "path", "--min-weight", "5", "--max-weight", "1")
	assert.Error(t, err)
}

func TestGenerate_RandomIsReproducible(t *testing.T) {
	first, _, err := run(t, "generate", "random", "--n", "12", "--p", "0.4", "--seed", "3")
	require.NoError(t, err)
	second, _, err := run(t, "generate", "random", "--n", "12", "--p", "0.4", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
