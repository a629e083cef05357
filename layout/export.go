package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"

	"github.com/katalvlaran/affnet/converters"
	"github.com/katalvlaran/affnet/core"
)

// Node is one positioned vertex.
type Node struct {
	ID   string  `json:"id"`
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Link is one undirected edge.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Drawing is a node-link diagram: every vertex with its position and every edge.
// Nodes are sorted by ID; links by (Source, Target).
type Drawing struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Export combines g and pos into a Drawing.
//
// Errors: ErrGraphNil, ErrMissingPosition.
func Export(g *core.Graph, pos Positions) (*Drawing, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	d := &Drawing{Nodes: make([]Node, 0, len(ids))}
	for _, id := range ids {
		p, ok := pos[id]
		if !ok {
			return nil, fmt.Errorf("Export: %q: %w", id, ErrMissingPosition)
		}
		kind, err := g.VertexKind(id)
		if err != nil {
			return nil, fmt.Errorf("Export: %w", err)
		}
		d.Nodes = append(d.Nodes, Node{ID: id, Kind: kind.String(), X: p.X, Y: p.Y})
	}
	edges := g.Edges()
	d.Links = make([]Link, 0, len(edges))
	for _, e := range edges {
		d.Links = append(d.Links, Link{Source: e.From, Target: e.To})
	}

	return d, nil
}

// WriteJSON writes d as indented JSON.
func (d *Drawing) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("layout: encode json: %w", err)
	}

	return nil
}

// dotShape draws groups as boxes and everything else as circles.
func dotShape(kind core.Kind) string {
	if kind == core.KindGroup {
		return "box"
	}
	return "circle"
}

// graph rebuilds the drawn graph. Unknown kind names become KindUnspecified.
func (d *Drawing) graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacity(len(d.Nodes)))
	for _, n := range d.Nodes {
		if err := g.AddVertex(n.ID, core.ParseKind(n.Kind)); err != nil {
			return nil, fmt.Errorf("layout: node %q: %w", n.ID, err)
		}
	}
	for _, l := range d.Links {
		if err := g.AddEdge(l.Source, l.Target); err != nil {
			return nil, fmt.Errorf("layout: link %s-%s: %w", l.Source, l.Target, err)
		}
	}

	return g, nil
}

// WriteDOT writes d as an undirected Graphviz graph named affnet. Every node
// carries its kind, a shape and a pinned pos for neato -n.
func (d *Drawing) WriteDOT(w io.Writer) error {
	g, err := d.graph()
	if err != nil {
		return err
	}
	pos := make(map[string]Node, len(d.Nodes))
	for _, n := range d.Nodes {
		pos[n.ID] = n
	}
	u, err := converters.ToGonum(g, converters.WithNodeAttributes(func(id string, kind core.Kind) []encoding.Attribute {
		n := pos[id]
		return []encoding.Attribute{
			{Key: "shape", Value: dotShape(kind)},
			{Key: "pos", Value: fmt.Sprintf("%.4f,%.4f!", n.X, n.Y)},
		}
	}))
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	u.NodeAttrs = encoding.Attributes{
		{Key: "fixedsize", Value: "true"},
		{Key: "width", Value: "0.2"},
		{Key: "label", Value: `""`},
	}

	b, err := dot.Marshal(u, "affnet", "", "  ")
	if err != nil {
		return fmt.Errorf("layout: encode dot: %w", err)
	}
	_, err = w.Write(append(bytes.TrimRight(b, "\n"), '\n'))

	return err
}
