package metrics

import (
	"context"
	"fmt"

	"github.com/katalvlaran/affnet/bfs"
	"github.com/katalvlaran/affnet/core"
)

// Sentinel values reported for a disconnected projected graph.
const (
	DisconnectedPathLength = -1.0
	DisconnectedDiameter   = -1
)

// PathTable stores all-pairs hop distances over a fixed vertex order.
//
// dist[u][v] is present iff v is reachable from u; absence is the only
// encoding of "unreachable".
type PathTable struct {
	order []string
	dist  map[string]map[string]int

	// within[d] counts unordered reachable pairs at distance ≤ d, for d up
	// to the largest finite distance. within[0] is always 0.
	within    []int
	pairs     int
	total     int
	connected bool
}

// PathSummary is the result of one pass over a PathTable.
type PathSummary struct {
	// CharPathLength is the mean distance over unordered pairs, or -1.0 if any pair is unreachable.
	CharPathLength float64
	// Diameter is the maximum distance over unordered pairs, or -1 if any pair is unreachable.
	Diameter int
	// Reach[x] is the fraction of unordered pairs at distance ≤ x, for x in [0..k].
	Reach []float64
	// Pairs is the number of unordered pairs n(n-1)/2.
	Pairs int
	// Connected reports whether every pair is reachable.
	Connected bool
}

// NewPathTable runs BFS once from every vertex in order and records the
// distances. A nil order means g.Vertices().
//
// Errors: ErrGraphNil, ErrUnknownVertex, or the BFS error (including ctx cancellation).
//
// Complexity: O(n·(n+e)) time, O(n²) space.
func NewPathTable(ctx context.Context, g *core.Graph, order []string) (*PathTable, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if order == nil {
		order = g.Vertices()
	}
	pt := &PathTable{
		order: append([]string(nil), order...),
		dist:  make(map[string]map[string]int, len(order)),
	}
	for _, src := range pt.order {
		if !g.HasVertex(src) {
			return nil, fmt.Errorf("metrics: NewPathTable: %q: %w", src, ErrUnknownVertex)
		}
		res, err := bfs.BFS(g, src, bfs.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("metrics: NewPathTable: BFS from %q: %w", src, err)
		}
		pt.dist[src] = res.Depth
	}
	pt.tally()

	return pt, nil
}

// tally walks every unordered pair once and fills the cumulative distance
// histogram. Distances never exceed n-1, so the histogram is O(n).
func (pt *PathTable) tally() {
	n := len(pt.order)
	hist := make([]int, 1, n+1)
	pt.connected = true
	for i := 0; i < n; i++ {
		row := pt.dist[pt.order[i]]
		for j := i + 1; j < n; j++ {
			pt.pairs++
			d, ok := row[pt.order[j]]
			if !ok {
				pt.connected = false
				continue
			}
			pt.total += d
			for len(hist) <= d {
				hist = append(hist, 0)
			}
			hist[d]++
		}
	}
	for d := 1; d < len(hist); d++ {
		hist[d] += hist[d-1]
	}
	pt.within = hist
}

// Order returns a copy of the vertex order the table was built over.
func (pt *PathTable) Order() []string {
	return append([]string(nil), pt.order...)
}

// Distance returns the hop distance from u to v and whether v is reachable.
func (pt *PathTable) Distance(u, v string) (int, bool) {
	d, ok := pt.dist[u][v]
	return d, ok
}

// Summarize derives path length, diameter and the reach vector for steps
// 0..k from the distance histogram.
//
// Errors: ErrNegativeStep for k < 0.
//
// Complexity: O(k). Only the returned Reach slice grows with k.
func (pt *PathTable) Summarize(k int) (PathSummary, error) {
	if k < 0 {
		return PathSummary{}, fmt.Errorf("metrics: Summarize(%d): %w", k, ErrNegativeStep)
	}
	s := PathSummary{
		Reach:     make([]float64, k+1),
		Pairs:     pt.pairs,
		Connected: pt.connected,
	}
	for x := range s.Reach {
		s.Reach[x] = pt.reachAt(x)
	}
	switch {
	case !pt.connected:
		s.CharPathLength = DisconnectedPathLength
		s.Diameter = DisconnectedDiameter
	case pt.pairs > 0:
		s.CharPathLength = float64(pt.total) / float64(pt.pairs)
		s.Diameter = len(pt.within) - 1
	}

	return s, nil
}

// ReachAt returns the fraction of unordered pairs at distance ≤ k.
// Any k at or beyond the largest finite distance reads the same value, so
// the cost is O(1) regardless of k.
//
// Errors: ErrNegativeStep for k < 0.
func (pt *PathTable) ReachAt(k int) (float64, error) {
	if k < 0 {
		return 0, fmt.Errorf("metrics: ReachAt(%d): %w", k, ErrNegativeStep)
	}

	return pt.reachAt(k), nil
}

func (pt *PathTable) reachAt(k int) float64 {
	if pt.pairs == 0 {
		return 0
	}
	if k >= len(pt.within) {
		k = len(pt.within) - 1
	}

	return float64(pt.within[k]) / float64(pt.pairs)
}

// Connected reports whether every pair is mutually reachable.
func (pt *PathTable) Connected() bool { return pt.connected }

// CharPathLength is Summarize(0).CharPathLength.
func (pt *PathTable) CharPathLength() float64 {
	s, _ := pt.Summarize(0)
	return s.CharPathLength
}

// Diameter is Summarize(0).Diameter.
func (pt *PathTable) Diameter() int {
	s, _ := pt.Summarize(0)
	return s.Diameter
}

// Reach is Summarize(k).Reach.
func (pt *PathTable) Reach(k int) ([]float64, error) {
	s, err := pt.Summarize(k)
	if err != nil {
		return nil, err
	}

	return s.Reach, nil
}
