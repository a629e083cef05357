package metrics_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affnet/core"
	"github.com/katalvlaran/affnet/matrix"
	"github.com/katalvlaran/affnet/metrics"
)

const delta = 1e-9

// graphOf builds an undirected graph with the given vertices and edges.
func graphOf(t *testing.T, kind core.Kind, vertices []string, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v, kind))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func TestDensityAndCoEnrollments(t *testing.T) {
	// triangle A-B-C plus isolated D
	g := graphOf(t, core.KindPerson, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}})

	require.InDelta(t, 3.0/6.0, metrics.Density(g), delta)
	require.InDelta(t, 6.0/4.0, metrics.MeanUniqueCoEnrollments(g), delta)
	require.InDelta(t, 3.0/4.0, metrics.AverageClustering(g), delta)

	single := graphOf(t, core.KindPerson, []string{"A"}, nil)
	require.Zero(t, metrics.Density(single))
	require.Zero(t, metrics.Density(nil))
	require.Zero(t, metrics.AverageClustering(nil))
	require.Zero(t, metrics.MeanUniqueCoEnrollments(nil))
}

func TestLocalClustering(t *testing.T) {
	// A is connected to B, C, D; only B–C is present among them.
	g := graphOf(t, core.KindPerson, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"A", "D"}, {"B", "C"}})

	c, err := metrics.LocalClustering(g, "A")
	require.NoError(t, err)
	require.InDelta(t, 1.0/3.0, c, delta)

	c, err = metrics.LocalClustering(g, "D")
	require.NoError(t, err)
	require.Zero(t, c)

	_, err = metrics.LocalClustering(g, "missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestMeanCoEnrollments(t *testing.T) {
	co, err := matrix.NewFromRows([][]int{{4, 1, 2}, {1, 1, 1}, {2, 1, 2}})
	require.NoError(t, err)

	got, err := metrics.MeanCoEnrollments(co)
	require.NoError(t, err)
	require.InDelta(t, 8.0/3.0, got, delta)

	rect, _ := matrix.NewDense(2, 3)
	_, err = metrics.MeanCoEnrollments(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestPathTable_Chain(t *testing.T) {
	// A–B–C–D–E–F
	ids := []string{"A", "B", "C", "D", "E", "F"}
	var edges [][2]string
	for i := 0; i+1 < len(ids); i++ {
		edges = append(edges, [2]string{ids[i], ids[i+1]})
	}
	g := graphOf(t, core.KindPerson, ids, edges)

	pt, err := metrics.NewPathTable(context.Background(), g, ids)
	require.NoError(t, err)
	require.True(t, pt.Connected())

	s, err := pt.Summarize(5)
	require.NoError(t, err)
	require.Equal(t, 15, s.Pairs)
	require.True(t, s.Connected)
	require.InDelta(t, 35.0/15.0, s.CharPathLength, delta)
	require.Equal(t, 5, s.Diameter)
	want := []float64{0, 5.0 / 15, 9.0 / 15, 12.0 / 15, 14.0 / 15, 1}
	require.Len(t, s.Reach, len(want))
	for x := range want {
		require.InDelta(t, want[x], s.Reach[x], delta, "x=%d", x)
	}

	d, ok := pt.Distance("A", "F")
	require.True(t, ok)
	require.Equal(t, 5, d)
	require.Equal(t, ids, pt.Order())
}

func TestPathTable_DisconnectedSentinels(t *testing.T) {
	// A–B, C–D, E isolated
	g := graphOf(t, core.KindPerson, []string{"A", "B", "C", "D", "E"},
		[][2]string{{"A", "B"}, {"C", "D"}})

	pt, err := metrics.NewPathTable(context.Background(), g, nil)
	require.NoError(t, err)
	require.False(t, pt.Connected())
	require.Equal(t, metrics.DisconnectedPathLength, pt.CharPathLength())
	require.Equal(t, metrics.DisconnectedDiameter, pt.Diameter())

	reach, err := pt.Reach(3)
	require.NoError(t, err)
	require.InDelta(t, 0, reach[0], delta)
	for x := 1; x <= 3; x++ {
		require.InDelta(t, 2.0/10.0, reach[x], delta, "x=%d", x)
	}

	_, ok := pt.Distance("A", "C")
	require.False(t, ok)

	_, err = pt.Summarize(-1)
	require.ErrorIs(t, err, metrics.ErrNegativeStep)
}

func TestPathTable_ReachAtBeyondDiameter(t *testing.T) {
	// A–B–C plus isolated D: reach levels off at 3 of 6 pairs.
	g := graphOf(t, core.KindPerson, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}})
	pt, err := metrics.NewPathTable(context.Background(), g, nil)
	require.NoError(t, err)

	for _, k := range []int{2, 3, 1 << 20, 1 << 40, math.MaxInt} {
		got, err := pt.ReachAt(k)
		require.NoError(t, err)
		require.InDelta(t, 0.5, got, delta, "k=%d", k)
	}
	got, err := pt.ReachAt(1)
	require.NoError(t, err)
	require.InDelta(t, 2.0/6.0, got, delta)
	got, err = pt.ReachAt(0)
	require.NoError(t, err)
	require.Zero(t, got)

	_, err = pt.ReachAt(-1)
	require.ErrorIs(t, err, metrics.ErrNegativeStep)

	single := graphOf(t, core.KindPerson, []string{"A"}, nil)
	pt, err = metrics.NewPathTable(context.Background(), single, nil)
	require.NoError(t, err)
	got, err = pt.ReachAt(1 << 40)
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestPathTable_Errors(t *testing.T) {
	_, err := metrics.NewPathTable(context.Background(), nil, nil)
	require.ErrorIs(t, err, metrics.ErrGraphNil)

	g := graphOf(t, core.KindPerson, []string{"A"}, nil)
	_, err = metrics.NewPathTable(context.Background(), g, []string{"A", "Z"})
	require.ErrorIs(t, err, metrics.ErrUnknownVertex)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = metrics.NewPathTable(ctx, g, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPathTable_SinglePerson(t *testing.T) {
	g := graphOf(t, core.KindPerson, []string{"A"}, nil)
	pt, err := metrics.NewPathTable(context.Background(), g, nil)
	require.NoError(t, err)

	s, err := pt.Summarize(2)
	require.NoError(t, err)
	require.Zero(t, s.Pairs)
	require.True(t, s.Connected)
	require.Zero(t, s.CharPathLength)
	require.Zero(t, s.Diameter)
	require.Equal(t, []float64{0, 0, 0}, s.Reach)
}

func TestBetweenness(t *testing.T) {
	path := graphOf(t, core.KindPerson, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	cb := metrics.Betweenness(path)
	require.InDelta(t, 1.0, cb["B"], delta)
	require.InDelta(t, 0.0, cb["A"], delta)
	require.InDelta(t, 1.0/3.0, metrics.MeanBetweenness(metrics.Betweenness(path)), delta)

	// 4-cycle A–G1–B–G2–A: every vertex carries half of one opposite pair.
	cycle := core.NewGraph(core.WithBipartite())
	for _, p := range []string{"A", "B"} {
		require.NoError(t, cycle.AddVertex(p, core.KindPerson))
	}
	for _, gr := range []string{"G1", "G2"} {
		require.NoError(t, cycle.AddVertex(gr, core.KindGroup))
	}
	for _, e := range [][2]string{{"A", "G1"}, {"B", "G1"}, {"A", "G2"}, {"B", "G2"}} {
		require.NoError(t, cycle.AddEdge(e[0], e[1]))
	}
	for id, v := range metrics.Betweenness(cycle) {
		require.InDelta(t, 1.0/6.0, v, delta, id)
	}
	require.InDelta(t, 1.0/6.0, metrics.MeanBetweenness(metrics.Betweenness(cycle)), delta)

	pair := graphOf(t, core.KindPerson, []string{"A", "B"}, [][2]string{{"A", "B"}})
	require.Zero(t, metrics.MeanBetweenness(metrics.Betweenness(pair)))
	require.Zero(t, metrics.MeanBetweenness(metrics.Betweenness(nil)))
	require.Zero(t, metrics.MeanBetweenness(nil))
}

func TestBetweenness_StarAndMean(t *testing.T) {
	// Hub H with leaves L1..L4: every leaf pair routes through H.
	ids := []string{"H", "L1", "L2", "L3", "L4"}
	var edges [][2]string
	for _, l := range ids[1:] {
		edges = append(edges, [2]string{"H", l})
	}
	cb := metrics.Betweenness(graphOf(t, core.KindPerson, ids, edges))
	require.Len(t, cb, 5)
	require.InDelta(t, 1.0, cb["H"], delta)
	for _, l := range ids[1:] {
		require.InDelta(t, 0.0, cb[l], delta, l)
	}
	require.InDelta(t, 0.2, metrics.MeanBetweenness(cb), delta)
	require.InDelta(t, 0.25, metrics.MeanBetweenness(map[string]float64{"x": 0.5, "y": 0}), delta)
}
