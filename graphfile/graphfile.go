// Package graphfile loads weighted undirected graphs from YAML documents.
//
// A document names its vertices either by label or by count, and lists edges by the
// labels of their endpoints:
//
//	name: square
//	vertices: [A, B, C, D]
//	start: A
//	edges:
//	  - {from: D, to: B, weight: 1}
//	  - {from: B, to: A, weight: 1}
//	  - {from: A, to: C, weight: 1}
//	  - {from: C, to: D, weight: 5}
//
// With `count: n` instead of `vertices`, the vertices are labelled "0".."n-1".
// Edges are added in document order, so the adjacency lists (and therefore Prim's
// tie-breaking among parallel edges) follow the file.
package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/primgraph/core"
)

// ErrInvalidDocument is wrapped by every parse and build failure caused by document content.
var ErrInvalidDocument = errors.New("graphfile: invalid document")

// Document is the decoded form of a graph file.
type Document struct {
	Name        string     `yaml:"name,omitempty"`
	Count       int        `yaml:"count,omitempty"`
	Vertices    []string   `yaml:"vertices,omitempty"`
	Start       string     `yaml:"start,omitempty"`
	NonNegative bool       `yaml:"non_negative,omitempty"`
	Edges       []EdgeSpec `yaml:"edges"`
}

// EdgeSpec is one edge entry; From and To are vertex labels.
type EdgeSpec struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Parse decodes and validates a YAML graph document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load reads the file at path and parses it.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: failed to read %s: %w", path, err)
	}

	return Parse(data)
}

// Labels returns the vertex labels in index order.
func (d *Document) Labels() []string {
	if len(d.Vertices) > 0 {
		return append([]string(nil), d.Vertices...)
	}
	labels := make([]string, d.Count)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	return labels
}

// Build creates the graph described by d.
//
// Errors:
//   - ErrInvalidDocument joined with *core.NoSuchLabelError for an unknown endpoint.
//   - ErrInvalidDocument joined with core.ErrNegativeWeight when non_negative is set.
func (d *Document) Build() (*core.Graph[string], error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	labels := d.Labels()

	var opts []core.GraphOption
	if d.NonNegative {
		opts = append(opts, core.WithNonNegativeWeights())
	}
	g, err := core.NewLabeledGraph(len(labels), labels, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	for i, e := range d.Edges {
		u, err := g.FindNode(e.From)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrInvalidDocument, i, err)
		}
		v, err := g.FindNode(e.To)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrInvalidDocument, i, err)
		}
		if _, err = g.AddEdge(u, v, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrInvalidDocument, i, err)
		}
	}

	return g, nil
}

// FromGraph describes g as a Document. Labels are rendered with fmt.Sprint and edges are
// listed in Edges() order. Graphs with duplicate rendered labels produce a Document that
// Build rejects.
func FromGraph[L comparable](name string, g *core.Graph[L]) *Document {
	labels := g.Labels()
	doc := &Document{
		Name:        name,
		Vertices:    make([]string, len(labels)),
		NonNegative: g.Stats().NonNegative,
	}
	for i, l := range labels {
		doc.Vertices[i] = fmt.Sprint(l)
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeSpec{From: doc.Vertices[e.From], To: doc.Vertices[e.To], Weight: e.Weight})
	}

	return doc
}

// Marshal encodes d as YAML with two-space indentation.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("graphfile: failed to encode %q: %w", d.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("graphfile: failed to encode %q: %w", d.Name, err)
	}

	return buf.Bytes(), nil
}

// validate checks the vertex section; edges are checked by Build.
func (d *Document) validate() error {
	switch {
	case d.Count < 0:
		return fmt.Errorf("%w: negative count %d", ErrInvalidDocument, d.Count)
	case len(d.Vertices) == 0 && d.Count == 0:
		return fmt.Errorf("%w: neither vertices nor count given", ErrInvalidDocument)
	case len(d.Vertices) > 0 && d.Count != 0 && d.Count != len(d.Vertices):
		return fmt.Errorf("%w: count %d does not match %d vertices", ErrInvalidDocument, d.Count, len(d.Vertices))
	}

	seen := make(map[string]struct{}, len(d.Vertices))
	for _, label := range d.Vertices {
		if _, dup := seen[label]; dup {
			return fmt.Errorf("%w: duplicate vertex %q", ErrInvalidDocument, label)
		}
		seen[label] = struct{}{}
	}

	return nil
}
