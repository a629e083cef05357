// Package affnet analyzes affiliation networks: who belongs to which group,
// and what that says about who is connected to whom.
//
// 🚀 What is affnet?
//
//	Feed it (person, group) membership pairs and it derives:
//		• the person × group incidence matrix
//		• the person × person co-membership matrix and its 0/1 form
//		• the projected person graph (shared group ⇒ edge)
//		• density, clustering, mean co-enrollments, unique links
//		• characteristic path length, diameter, k-step reach (one BFS pass)
//		• betweenness centrality on the two-mode graph
//		• the largest connected component, as a network of its own
//		• neighborhoods within k hops and shortest person/group chains
//
// Packages:
//
//	core/        undirected simple graph with person/group vertex kinds
//	matrix/      dense integer matrices: Mul, Transpose, Threshold, Equal
//	bfs/         breadth-first search with hooks, depth limit and context
//	components/  connected components of the two-mode graph
//	metrics/     structure metrics, the shared path table, Brandes betweenness
//	network/     the AffiliationNetwork tying it all together
//	report/      text and YAML summaries
//	ingest/      CSV edge lists (BOM-tolerant), file lists, raw pairs
//	layout/      Fruchterman–Reingold layout, JSON and Graphviz export
//	converters/  core.Graph → gonum simple.UndirectedGraph (DOT via gonum)
//	builder/     synthetic edge lists for tests and demos
//	config/      viper-loaded, validated CLI configuration
//	cmd/affnet/  the command-line tool
//
// Quick example:
//
//	A ─ G1 ─ B ─ G2 ─ C    persons A, B, C; groups G1, G2
//	projection A–B, B–C; diameter 2; 1-step reach 2/3
//
//	go install github.com/katalvlaran/affnet/cmd/affnet@latest
package affnet
