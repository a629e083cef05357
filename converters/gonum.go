package converters

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/affnet/core"
)

// ErrGraphNil is returned when a nil core.Graph is passed.
var ErrGraphNil = errors.New("converters: graph is nil")

// KindAttr is the DOT attribute key carrying a node's core.Kind.
const KindAttr = "kind"

// Node is a core.Graph vertex inside a gonum graph.
type Node struct {
	id    int64
	Name  string
	Kind  core.Kind
	Extra []encoding.Attribute
}

// ID implements graph.Node.
func (n *Node) ID() int64 { return n.id }

// DOTID implements dot.Node: the core.Graph vertex ID.
func (n *Node) DOTID() string { return n.Name }

// Attributes implements encoding.Attributer: the kind first, then Extra.
func (n *Node) Attributes() []encoding.Attribute {
	out := make([]encoding.Attribute, 0, len(n.Extra)+1)
	out = append(out, encoding.Attribute{Key: KindAttr, Value: n.Kind.String()})

	return append(out, n.Extra...)
}

// Undirected is a gonum simple.UndirectedGraph built from a core.Graph.
// The graph-, node- and edge-level DOT defaults are written once at the
// top of a DOT document.
type Undirected struct {
	*simple.UndirectedGraph

	GraphAttrs encoding.Attributes
	NodeAttrs  encoding.Attributes
	EdgeAttrs  encoding.Attributes

	byName map[string]*Node
}

// DOTAttributers implements dot.Attributers.
func (u *Undirected) DOTAttributers() (graph, node, edge encoding.Attributer) {
	return &u.GraphAttrs, &u.NodeAttrs, &u.EdgeAttrs
}

// NodeNamed returns the gonum node for a core.Graph vertex ID.
func (u *Undirected) NodeNamed(name string) (*Node, bool) {
	n, ok := u.byName[name]
	return n, ok
}

// Option configures ToGonum.
type Option func(*options)

type options struct {
	nodeAttrs func(id string, kind core.Kind) []encoding.Attribute
}

// WithNodeAttributes attaches fn's result to every node as extra DOT
// attributes. A nil fn is ignored.
func WithNodeAttributes(fn func(id string, kind core.Kind) []encoding.Attribute) Option {
	return func(o *options) {
		if fn != nil {
			o.nodeAttrs = fn
		}
	}
}

// ToGonum copies g into a new Undirected.
//
// Implementation:
//   - Stage 1: add one Node per vertex of g.Vertices(), IDs 0..n-1.
//   - Stage 2: add one simple.Edge per entry of g.Edges().
//
// Errors: ErrGraphNil, or a core error if g changes during the copy.
//
// Complexity: O(V log V + E log E).
func ToGonum(g *core.Graph, opts ...Option) (*Undirected, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{nodeAttrs: func(string, core.Kind) []encoding.Attribute { return nil }}
	for _, opt := range opts {
		opt(&o)
	}

	ids := g.Vertices()
	u := &Undirected{
		UndirectedGraph: simple.NewUndirectedGraph(),
		byName:          make(map[string]*Node, len(ids)),
	}
	for i, id := range ids {
		kind, err := g.VertexKind(id)
		if err != nil {
			return nil, fmt.Errorf("converters: ToGonum: %w", err)
		}
		n := &Node{id: int64(i), Name: id, Kind: kind, Extra: o.nodeAttrs(id, kind)}
		u.AddNode(n)
		u.byName[id] = n
	}
	for _, e := range g.Edges() {
		from, ok := u.byName[e.From]
		if !ok {
			return nil, fmt.Errorf("converters: ToGonum: edge %s-%s: %w", e.From, e.To, core.ErrVertexNotFound)
		}
		to, ok := u.byName[e.To]
		if !ok {
			return nil, fmt.Errorf("converters: ToGonum: edge %s-%s: %w", e.From, e.To, core.ErrVertexNotFound)
		}
		u.SetEdge(simple.Edge{F: from, T: to})
	}

	return u, nil
}
