// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/affnet/network"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	methodChain             = "Chain"
	methodDisjointPairs     = "DisjointPairs"
	methodRandomAffiliation = "RandomAffiliation"

	minPartitionSize = 1
	minChainPersons  = 2
	minProbability   = 0.0
	maxProbability   = 1.0
)

func (c builderConfig) person(i int) string { return fmt.Sprintf("%s%d", c.personPrefix, i) }
func (c builderConfig) group(j int) string  { return fmt.Sprintf("%s%d", c.groupPrefix, j) }

// CompleteBipartite returns n1·n2 edges: every person joins every group.
// The projection is the complete graph on n1 persons.
//
// Errors: ErrTooFewVertices if n1 < 1 or n2 < 1.
//
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int, opts ...Option) ([]network.Edge, error) {
	if n1 < minPartitionSize || n2 < minPartitionSize {
		return nil, builderErrorf(methodCompleteBipartite, "n1=%d, n2=%d (each must be ≥ %d): %w",
			n1, n2, minPartitionSize, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	edges := make([]network.Edge, 0, n1*n2)
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			edges = append(edges, network.Edge{Person: cfg.person(i), Group: cfg.group(j)})
		}
	}

	return edges, nil
}

// Chain returns a chain of n persons: person i joins groups i-1 and i, so
// consecutive persons share exactly one group and the diameter is n-1.
//
// Errors: ErrTooFewVertices if n < 2.
//
// Complexity: O(n).
func Chain(n int, opts ...Option) ([]network.Edge, error) {
	if n < minChainPersons {
		return nil, builderErrorf(methodChain, "n=%d (must be ≥ %d): %w", n, minChainPersons, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	edges := make([]network.Edge, 0, 2*(n-1))
	for i := 0; i < n; i++ {
		if i > 0 {
			edges = append(edges, network.Edge{Person: cfg.person(i), Group: cfg.group(i - 1)})
		}
		if i < n-1 {
			edges = append(edges, network.Edge{Person: cfg.person(i), Group: cfg.group(i)})
		}
	}

	return edges, nil
}

// DisjointPairs returns n groups, each with two persons who belong nowhere
// else. Group j holds persons 2j and 2j+1.
//
// Errors: ErrTooFewVertices if n < 1.
func DisjointPairs(n int, opts ...Option) ([]network.Edge, error) {
	if n < minPartitionSize {
		return nil, builderErrorf(methodDisjointPairs, "n=%d (must be ≥ %d): %w", n, minPartitionSize, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	edges := make([]network.Edge, 0, 2*n)
	for j := 0; j < n; j++ {
		edges = append(edges,
			network.Edge{Person: cfg.person(2 * j), Group: cfg.group(j)},
			network.Edge{Person: cfg.person(2*j + 1), Group: cfg.group(j)},
		)
	}

	return edges, nil
}

// RandomAffiliation keeps each of the persons·groups candidate memberships
// independently with probability p. Persons or groups that draw no edge do
// not appear in the result, so the result may be empty.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource.
//
// Complexity: O(persons·groups).
func RandomAffiliation(persons, groups int, p float64, opts ...Option) ([]network.Edge, error) {
	if persons < minPartitionSize || groups < minPartitionSize {
		return nil, builderErrorf(methodRandomAffiliation, "persons=%d, groups=%d (each must be ≥ %d): %w",
			persons, groups, minPartitionSize, ErrTooFewVertices)
	}
	if p < minProbability || p > maxProbability {
		return nil, builderErrorf(methodRandomAffiliation, "p=%.4f: %w", p, ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomAffiliation, "%w", ErrNeedRandSource)
	}
	var edges []network.Edge
	for i := 0; i < persons; i++ {
		for j := 0; j < groups; j++ {
			// Float64 is in [0,1): p=0 never fires, p=1 always does.
			if cfg.rng.Float64() < p {
				edges = append(edges, network.Edge{Person: cfg.person(i), Group: cfg.group(j)})
			}
		}
	}

	return edges, nil
}
