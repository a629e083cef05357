// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Result carries Order (visit sequence), Depth (hops from the start;
//     absence means unreachable) and Parent (the BFS tree).
//   - Result.PathTo rebuilds one shortest path from the start.
//   - Hooks: WithOnEnqueue fires when a vertex's depth is fixed,
//     WithOnVisit fires as it leaves the queue and may abort the search.
//   - WithMaxDepth bounds the search to d hops (0 = unbounded).
//
// Why
//
//   - The projected person graph is unweighted, so BFS from every person gives
//     all-pairs shortest paths in O(V·(V+E)).
//   - BFS over the bipartite graph discovers connected components and
//     the shortest person–group chains between members.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and BFS enqueues neighbors in that
//	order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d)   (neighbor lists are sorted per visit)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "A", bfs.WithContext(ctx), bfs.WithMaxDepth(2))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors, ctx.Err() or hook errors
//	}
//	d, reachable := res.Depth["C"]
package bfs
