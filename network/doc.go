// Package network implements AffiliationNetwork: a two-mode (person → group)
// network and everything derived from it.
//
// Pipeline (leaves first):
//
//	Edge Store          the (person, group) pairs as given, duplicates kept
//	Matrix Builder      sorted persons, sorted groups, 0/1 incidence matrix B
//	Projection Engine   co-membership B·Bᵀ, its binary form, the projected graph
//	Component Analyzer  largest bipartite component, materialized as a new Network
//	Metrics Engine      density, clustering, co-enrollments, paths, reach, betweenness
//	Traversal           k-hop neighborhoods and shortest person/group chains
//
// Lifecycle
//
//	New validates the edges and builds the sorted identifier index eagerly.
//	Every other structure is computed on first use, cached in its own field
//	behind a sync.Once, and never mutated afterwards. Accessors return copies,
//	so a Network is immutable from the caller's point of view and repeated
//	calls return identical results.
//
// Disconnection
//
//	CharPathLength and NetworkDiameter return -1.0 / -1 when any person pair is
//	unreachable in the projected graph. KStepReach never does; unreachable pairs
//	simply never count, and any k past the diameter reads the plateau value
//	without allocating per step.
//
// Example
//
//	net, err := network.FromPairs([][]string{{"A", "G1"}, {"B", "G1"}})
//	if err != nil {
//		// errors.Is(err, network.ErrMalformedInput)
//	}
//	fmt.Println(net.NetworkDensity()) // 1
package network
