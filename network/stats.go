package network

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/affnet/metrics"
)

// pathTable returns the cached all-pairs distance table over the sorted persons.
func (n *Network) pathTable() *metrics.PathTable {
	n.pathsOnce.Do(func() {
		pt, err := metrics.NewPathTable(context.Background(), n.projected().graph, n.persons)
		must(err)
		n.paths = pt
		n.logger.Debug("path table built", zap.Int("sources", len(n.persons)))
	})

	return n.paths
}

// MeanCoEnrollments returns the sum of off-diagonal co-membership counts over
// ordered pairs, divided by the person count.
func (n *Network) MeanCoEnrollments() float64 {
	v, err := metrics.MeanCoEnrollments(n.projected().coMembership)
	must(err)

	return v
}

// MeanUniqueCoEnrollments returns the mean projected degree: the average
// number of distinct persons each person shares a group with.
func (n *Network) MeanUniqueCoEnrollments() float64 {
	return metrics.MeanUniqueCoEnrollments(n.projected().graph)
}

// UniqueEdges returns the number of person↔person links.
func (n *Network) UniqueEdges() int { return n.projected().graph.EdgeCount() }

// NetworkDensity returns UniqueEdges / (n(n-1)/2) over all persons.
func (n *Network) NetworkDensity() float64 { return metrics.Density(n.projected().graph) }

// AverageClusterCoeff returns the mean local clustering coefficient over all persons.
func (n *Network) AverageClusterCoeff() float64 {
	return metrics.AverageClustering(n.projected().graph)
}

// PathData returns path length, diameter and reach for steps 0..k from one
// pass over the cached distance table.
func (n *Network) PathData(k int) (metrics.PathSummary, error) {
	if k < 0 {
		return metrics.PathSummary{}, fmt.Errorf("PathData(%d): %w", k, ErrInvalidStep)
	}

	return n.pathTable().Summarize(k)
}

// CharPathLength returns the mean shortest-path length over person pairs,
// or -1.0 if the projected graph is disconnected.
func (n *Network) CharPathLength() float64 {
	s, err := n.PathData(0)
	must(err)

	return s.CharPathLength
}

// NetworkDiameter returns the longest shortest path over person pairs,
// or -1 if the projected graph is disconnected.
func (n *Network) NetworkDiameter() int {
	s, err := n.PathData(0)
	must(err)

	return s.Diameter
}

// KStepReach returns the fraction of person pairs within k steps.
// Any k past the diameter returns the same value as the diameter itself.
func (n *Network) KStepReach(k int) (float64, error) {
	if k < 0 {
		return 0, fmt.Errorf("KStepReach(%d): %w", k, ErrInvalidStep)
	}

	return n.pathTable().ReachAt(k)
}

// KStepReachAll returns the reach for every step 0..k.
func (n *Network) KStepReachAll(k int) ([]float64, error) {
	s, err := n.PathData(k)
	if err != nil {
		return nil, err
	}

	return s.Reach, nil
}

func (n *Network) betweennessScores() map[string]float64 {
	n.betweennessOnce.Do(func() {
		n.betweenness = metrics.Betweenness(n.bipartiteGraph())
	})

	return n.betweenness
}

// BetweennessScores returns the normalized betweenness of every person and
// group in the bipartite graph.
func (n *Network) BetweennessScores() map[string]float64 {
	src := n.betweennessScores()
	out := make(map[string]float64, len(src))
	for k, v := range src {
		out[k] = v
	}

	return out
}

// BetweennessCentrality returns the mean normalized betweenness over all
// persons and groups of the bipartite graph.
func (n *Network) BetweennessCentrality() float64 {
	return metrics.MeanBetweenness(n.betweennessScores())
}
