// Package core defines the Graph, Vertex, Edge and Kind types together with
// the sentinel errors and the NewGraph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrKindConflict indicates a vertex was re-added with a different Kind.
	ErrKindConflict = errors.New("core: vertex kind conflict")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrSameKindEdge indicates an edge between two vertices of the same Kind
	// in a graph constructed WithBipartite.
	ErrSameKindEdge = errors.New("core: edge joins vertices of the same kind")
)

// Kind classifies a vertex as one side of an affiliation network.
type Kind uint8

const (
	// KindUnspecified is the zero Kind; algorithms treat it as unclassified.
	KindUnspecified Kind = iota
	// KindPerson marks an actor (row of the incidence matrix).
	KindPerson
	// KindGroup marks an event/affiliation (column of the incidence matrix).
	KindGroup
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindPerson:
		return "person"
	case KindGroup:
		return "group"
	default:
		return "unspecified"
	}
}

// ParseKind is the inverse of Kind.String. Any other name yields KindUnspecified.
func ParseKind(name string) Kind {
	switch name {
	case "person":
		return KindPerson
	case "group":
		return KindGroup
	default:
		return KindUnspecified
	}
}

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Kind tells which side of the affiliation network the vertex belongs to.
	Kind Kind
}

// Edge is an undirected connection. Edges() normalizes it so that From < To.
type Edge struct {
	From string
	To   string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithBipartite rejects edges between vertices of the same Kind.
func WithBipartite() GraphOption {
	return func(g *Graph) { g.bipartite = true }
}

// WithCapacity pre-sizes the vertex catalog for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make(map[string]*Vertex, n)
			g.adjacency = make(map[string]map[string]struct{}, n)
		}
	}
}

// Graph is an undirected simple graph.
//
// adjacency[u][v] exists iff adjacency[v][u] exists; edgeCount counts each
// unordered pair once.
type Graph struct {
	bipartite bool // reject same-kind edges

	vertices  map[string]*Vertex
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph. By default it accepts edges between any
// two distinct vertices.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
