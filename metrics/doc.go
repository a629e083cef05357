// Package metrics computes descriptive statistics of affiliation networks.
//
// What
//
//   - Density, average clustering coefficient and mean unique co-enrollments
//     over the projected (person↔person) graph.
//   - Mean co-enrollments over the weighted co-membership matrix.
//   - A PathTable holding all-pairs hop distances, built by one BFS per
//     person. From that single table Summarize derives the characteristic
//     path length, the diameter and the k-step reach vector together.
//   - Normalized betweenness centrality (Brandes) over the bipartite graph.
//
// Disconnection
//
//	Path length and diameter report the sentinels DisconnectedPathLength (-1.0)
//	and DisconnectedDiameter (-1) as soon as any person pair is unreachable.
//	Reach never uses a sentinel: unreachable pairs simply never count, so the
//	values stay in [0,1] and level off at the reachable-pair fraction.
//
// Complexity (n persons, e projected edges, V/E bipartite sizes)
//
//   - Density, MeanUniqueCoEnrollments: O(n)
//   - AverageClustering:               O(Σ deg²)
//   - NewPathTable:                    O(n·(n+e))
//   - Summarize(k):                    O(k) after an O(n²) tally
//   - ReachAt(k):                      O(1)
//   - Betweenness:                     O(V·E)
package metrics
