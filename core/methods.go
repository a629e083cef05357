// File: methods.go
// Role: Vertex and edge lifecycle, neighborhood queries, enumeration and cloning.
// Determinism:
//   - Vertices(), VerticesOfKind(), NeighborIDs() return IDs sorted lex asc.
//   - Edges() returns edges sorted by (From, To) with From < To.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: If present with the same Kind, no-op; with another Kind, ErrKindConflict.
//   - Stage 3: Register the vertex and bootstrap its adjacency bucket.
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string, kind Kind) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if v, ok := g.vertices[id]; ok {
		if v.Kind != kind {
			return fmt.Errorf("AddVertex(%q): %s vs %s: %w", id, v.Kind, kind, ErrKindConflict)
		}
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Kind: kind}
	g.adjacency[id] = make(map[string]struct{})

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// VertexKind returns the Kind of vertex id.
func (g *Graph) VertexKind(id string) (Kind, error) {
	v, ok := g.vertices[id]
	if !ok {
		return KindUnspecified, ErrVertexNotFound
	}

	return v.Kind, nil
}

// AddEdge connects u and v. Both vertices must already exist.
//
// Implementation:
//   - Stage 1: Validate IDs, existence, loops.
//   - Stage 2: Enforce the bipartite policy if enabled.
//   - Stage 3: Reject parallel edges, then mirror the adjacency entry.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound, ErrLoopNotAllowed,
// ErrSameKindEdge, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	vu, okU := g.vertices[u]
	vv, okV := g.vertices[v]
	if !okU || !okV {
		return fmt.Errorf("AddEdge(%q,%q): %w", u, v, ErrVertexNotFound)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%q,%q): %w", u, v, ErrLoopNotAllowed)
	}
	if g.bipartite && vu.Kind == vv.Kind {
		return fmt.Errorf("AddEdge(%q,%q): %w", u, v, ErrSameKindEdge)
	}
	if _, dup := g.adjacency[u][v]; dup {
		return fmt.Errorf("AddEdge(%q,%q): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adjacency[u][v]
	return ok
}

// NeighborIDs returns the IDs adjacent to id, sorted lexicographically ascending.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	bucket, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(bucket))
	for nbr := range bucket {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id string) (int, error) {
	bucket, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(bucket), nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VerticesOfKind returns the IDs of vertices with the given Kind in ascending order.
func (g *Graph) VerticesOfKind(kind Kind) []string {
	out := make([]string, 0, len(g.vertices))
	for id, v := range g.vertices {
		if v.Kind == kind {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// Edges returns every edge once, normalized to From < To and sorted.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u, bucket := range g.adjacency {
		for v := range bucket {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|, counting each undirected edge once.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Bipartite reports whether the graph enforces the bipartite policy.
func (g *Graph) Bipartite() bool { return g.bipartite }

// Clone returns a deep copy with the same policy, vertices and edges.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	c := NewGraph(WithCapacity(len(g.vertices)))
	c.bipartite = g.bipartite
	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: v.ID, Kind: v.Kind}
		bucket := make(map[string]struct{}, len(g.adjacency[id]))
		for nbr := range g.adjacency[id] {
			bucket[nbr] = struct{}{}
		}
		c.adjacency[id] = bucket
	}
	c.edgeCount = g.edgeCount

	return c
}
