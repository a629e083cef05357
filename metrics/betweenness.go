package metrics

import (
	"sort"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/affnet/core"
)

// Betweenness computes normalized betweenness centrality for all vertices of
// the undirected graph g using Brandes' algorithm.
//
// Every source is processed, so each unordered pair contributes twice; the
// normalization factor 1/((n-1)(n-2)) therefore yields the fraction of
// shortest paths between pairs of other vertices that pass through a vertex.
// Graphs with n ≤ 2 give all zeros.
//
// Sources and neighbors are visited in sorted order, so floating-point
// accumulation is reproducible.
func Betweenness(g *core.Graph) map[string]float64 {
	cb := make(map[string]float64)
	if g == nil {
		return cb
	}
	nodes := g.Vertices()
	for _, id := range nodes {
		cb[id] = 0
	}
	n := len(nodes)
	if n < 3 {
		return cb
	}

	adj := make(map[string][]string, n)
	for _, id := range nodes {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			panic(err)
		}
		adj[id] = nbrs
	}

	for _, src := range nodes {
		shortestPathDAG(src, adj).credit(src, cb)
	}

	normFactor := float64((n - 1) * (n - 2))
	for id := range cb {
		cb[id] /= normFactor
	}

	return cb
}

// MeanBetweenness returns the mean of a betweenness score map, or 0 when
// the map is empty. Values are summed in sorted key order so the result
// does not depend on map iteration.
func MeanBetweenness(scores map[string]float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	total := 0.0
	for _, id := range ids {
		total += scores[id]
	}

	return total / float64(len(ids))
}

// sweep is the per-source state of one Brandes pass.
//
// finished lists vertices in the order they left the queue, so walking it
// backwards visits every vertex after all of its successors on shortest
// paths from the source.
type sweep struct {
	finished *arraystack.Stack
	paths    map[string]float64  // number of shortest paths from the source
	via      map[string][]string // neighbors one hop closer to the source
}

// shortestPathDAG explores adj from src level by level and records, for
// every reached vertex, how many shortest paths end there and which
// neighbors they arrive through.
func shortestPathDAG(src string, adj map[string][]string) sweep {
	sw := sweep{
		finished: arraystack.New(),
		paths:    map[string]float64{src: 1},
		via:      make(map[string][]string, len(adj)),
	}
	hops := map[string]int{src: 0}
	q := linkedlistqueue.New()
	q.Enqueue(src)
	for !q.Empty() {
		x, _ := q.Dequeue()
		v := x.(string)
		sw.finished.Push(v)
		for _, w := range adj[v] {
			if _, seen := hops[w]; !seen {
				hops[w] = hops[v] + 1
				q.Enqueue(w)
			}
			if hops[w] == hops[v]+1 {
				sw.paths[w] += sw.paths[v]
				sw.via[w] = append(sw.via[w], v)
			}
		}
	}

	return sw
}

// credit pops the sweep from the farthest vertex back to src, splitting each
// vertex's dependency among the neighbors it is reached through, and adds
// the result to cb for every vertex except src.
func (sw sweep) credit(src string, cb map[string]float64) {
	dep := make(map[string]float64, sw.finished.Size())
	for !sw.finished.Empty() {
		x, _ := sw.finished.Pop()
		w := x.(string)
		for _, v := range sw.via[w] {
			dep[v] += sw.paths[v] / sw.paths[w] * (1 + dep[w])
		}
		if w != src {
			cb[w] += dep[w]
		}
	}
}
