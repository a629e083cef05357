// Package core provides the in-memory graph substrate used by affnet: an
// undirected simple graph whose vertices carry a Kind (person or group).
//
// The Graph G = (V,E) is intentionally narrow:
//
//   - Undirected edges only; an edge u–v is stored as two adjacency entries.
//   - No self-loops (ErrLoopNotAllowed) and no parallel edges (ErrMultiEdgeNotAllowed).
//   - No weights: co-membership weights live in the matrix package, never on edges.
//   - Optional bipartite policy (WithBipartite): edges must join vertices of
//     different kinds (ErrSameKindEdge).
//   - Deterministic iteration: Vertices(), NeighborIDs() and Edges() return
//     sorted results, so every algorithm built on top is reproducible.
//
// Two graphs are derived from an affiliation network:
//
//	bipartite   persons ∪ groups, an edge for every membership
//	projected   persons only, an edge for every pair sharing ≥1 group
//
// Core Methods:
//
//	AddVertex(id string, kind Kind) error      // O(1)
//	AddEdge(u, v string) error                 // O(1)
//	HasVertex(id) / HasEdge(u, v) bool         // O(1)
//	NeighborIDs(id) ([]string, error)          // O(d·log d), sorted
//	Degree(id) (int, error)                    // O(1)
//	Vertices() / VerticesOfKind(k) []string    // O(V·log V)
//	Edges() []Edge                             // O(E·log E)
//	Clone() *Graph                             // O(V+E)
//
// Concurrency:
//
//	A Graph is built once and then only read. It carries no locks; callers that
//	mutate a Graph from several goroutines must synchronize themselves.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrKindConflict        – vertex re-added with a different Kind
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
//	ErrSameKindEdge        – same-kind edge in a bipartite graph
package core
