package network

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"go.uber.org/zap"

	"github.com/katalvlaran/affnet/matrix"
)

const (
	methodNew       = "New"
	methodFromPairs = "FromPairs"
	pairLen         = 2
)

// New builds a Network from (person, group) edges.
//
// Implementation:
//   - Stage 1: Reject an empty edge slice or an empty identifier.
//   - Stage 2: Collect persons and groups into sorted sets.
//   - Stage 3: Reject identifiers present in both sets.
//   - Stage 4: Index sorted positions; they key every matrix row/column.
//
// The edge slice is copied; duplicates and order are preserved.
//
// Errors: ErrMalformedInput.
//
// Complexity: O(E log V).
func New(edges []Edge, opts ...Option) (*Network, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("%s: no edges: %w", methodNew, ErrMalformedInput)
	}
	personSet := treeset.NewWithStringComparator()
	groupSet := treeset.NewWithStringComparator()
	for i, e := range edges {
		if e.Person == "" || e.Group == "" {
			return nil, fmt.Errorf("%s: edge %d (%q,%q) has an empty identifier: %w",
				methodNew, i, e.Person, e.Group, ErrMalformedInput)
		}
		personSet.Add(e.Person)
		groupSet.Add(e.Group)
	}

	n := &Network{
		edges:    append([]Edge(nil), edges...),
		persons:  toStrings(personSet.Values()),
		groups:   toStrings(groupSet.Values()),
		personIx: make(map[string]int, personSet.Size()),
		groupIx:  make(map[string]int, groupSet.Size()),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	for _, g := range n.groups {
		if personSet.Contains(g) {
			return nil, fmt.Errorf("%s: %q is both a person and a group: %w", methodNew, g, ErrMalformedInput)
		}
	}
	for i, p := range n.persons {
		n.personIx[p] = i
	}
	for j, g := range n.groups {
		n.groupIx[g] = j
	}
	n.logger.Debug("network built",
		zap.Int("edges", len(n.edges)),
		zap.Int("persons", len(n.persons)),
		zap.Int("groups", len(n.groups)),
	)

	return n, nil
}

// FromPairs builds a Network from raw [person, group] pairs.
// Any pair whose length is not 2 yields ErrMalformedInput.
func FromPairs(pairs [][]string, opts ...Option) (*Network, error) {
	edges := make([]Edge, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != pairLen {
			return nil, fmt.Errorf("%s: pair %d has %d elements, want %d: %w",
				methodFromPairs, i, len(p), pairLen, ErrMalformedInput)
		}
		edges = append(edges, Edge{Person: p[0], Group: p[1]})
	}

	return New(edges, opts...)
}

// Persons returns the sorted person identifiers.
func (n *Network) Persons() []string { return append([]string(nil), n.persons...) }

// Groups returns the sorted group identifiers.
func (n *Network) Groups() []string { return append([]string(nil), n.groups...) }

// PersonCount returns |persons|.
func (n *Network) PersonCount() int { return len(n.persons) }

// GroupCount returns |groups|.
func (n *Network) GroupCount() int { return len(n.groups) }

// Edges returns the stored edges in input order, duplicates included.
func (n *Network) Edges() []Edge { return append([]Edge(nil), n.edges...) }

// PersonIndex returns the matrix row of person id.
func (n *Network) PersonIndex(id string) (int, bool) {
	i, ok := n.personIx[id]
	return i, ok
}

// GroupIndex returns the matrix column of group id.
func (n *Network) GroupIndex(id string) (int, bool) {
	j, ok := n.groupIx[id]
	return j, ok
}

// Equal reports structural equality: identical sorted persons, sorted groups
// and incidence matrices. It does not detect isomorphism.
func (n *Network) Equal(other *Network) bool {
	if n == nil || other == nil {
		return false
	}
	if !equalStrings(n.persons, other.persons) || !equalStrings(n.groups, other.groups) {
		return false
	}

	return matrix.Equal(n.incidenceMatrix(), other.incidenceMatrix())
}

func toStrings(values []interface{}) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.(string)
	}

	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// must turns an impossible error into a panic carrying ErrInternalInconsistency.
func must(err error) {
	if err != nil {
		panic(fmt.Errorf("%w: %v", ErrInternalInconsistency, err))
	}
}
