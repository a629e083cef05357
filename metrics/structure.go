package metrics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/affnet/core"
	"github.com/katalvlaran/affnet/matrix"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("metrics: graph is nil")

	// ErrNegativeStep is returned for a negative k in Summarize/Reach.
	ErrNegativeStep = errors.New("metrics: step count must be >= 0")

	// ErrUnknownVertex is returned when the path order names a vertex absent from the graph.
	ErrUnknownVertex = errors.New("metrics: unknown vertex")
)

// Density returns |E| / (n(n-1)/2) for the simple undirected graph g.
// Graphs with fewer than two vertices have density 0.
func Density(g *core.Graph) float64 {
	if g == nil {
		return 0
	}
	n := g.VertexCount()
	if n < 2 {
		return 0
	}

	return float64(g.EdgeCount()) / (float64(n) * float64(n-1) / 2)
}

// LocalClustering returns the clustering coefficient of vertex id:
// the number of edges among its neighbors divided by k(k-1)/2, or 0 when k < 2.
func LocalClustering(g *core.Graph, id string) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return 0, fmt.Errorf("metrics: LocalClustering(%q): %w", id, err)
	}
	k := len(nbrs)
	if k < 2 {
		return 0, nil
	}
	links := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if g.HasEdge(nbrs[i], nbrs[j]) {
				links++
			}
		}
	}

	return float64(2*links) / float64(k*(k-1)), nil
}

// AverageClustering returns the unweighted mean of LocalClustering over all vertices.
func AverageClustering(g *core.Graph) float64 {
	if g == nil || g.VertexCount() == 0 {
		return 0
	}
	total := 0.0
	for _, id := range g.Vertices() {
		c, err := LocalClustering(g, id)
		if err != nil {
			// Vertices() only yields known IDs.
			panic(err)
		}
		total += c
	}

	return total / float64(g.VertexCount())
}

// MeanUniqueCoEnrollments returns Σ degree / n: the average number of
// distinct co-members per person.
func MeanUniqueCoEnrollments(g *core.Graph) float64 {
	if g == nil || g.VertexCount() == 0 {
		return 0
	}

	return float64(2*g.EdgeCount()) / float64(g.VertexCount())
}

// MeanCoEnrollments returns the sum of off-diagonal co-membership entries
// over ordered pairs (i,j), i≠j, divided by the number of persons.
func MeanCoEnrollments(coMembership *matrix.Dense) (float64, error) {
	total, err := matrix.SumOffDiagonal(coMembership)
	if err != nil {
		return 0, fmt.Errorf("metrics: MeanCoEnrollments: %w", err)
	}

	return float64(total) / float64(coMembership.Rows()), nil
}
