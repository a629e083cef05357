package network

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/affnet/bfs"
)

// Neighborhood returns the persons other than person that are at most k
// co-membership hops away in the projected graph, sorted ascending.
// k == 0 yields an empty slice.
//
// Errors: ErrInvalidStep for k < 0, ErrUnknownMember if person is not a person.
func (n *Network) Neighborhood(person string, k int) ([]string, error) {
	if k < 0 {
		return nil, fmt.Errorf("Neighborhood(%q, %d): %w", person, k, ErrInvalidStep)
	}
	if _, ok := n.personIx[person]; !ok {
		return nil, fmt.Errorf("Neighborhood(%q): %w", person, ErrUnknownMember)
	}
	if k == 0 {
		return []string{}, nil
	}
	res, err := bfs.BFS(n.projected().graph, person,
		bfs.WithContext(context.Background()), bfs.WithMaxDepth(k))
	if err != nil {
		return nil, fmt.Errorf("Neighborhood(%q): %w", person, err)
	}
	out := append(make([]string, 0, len(res.Order)-1), res.Order[1:]...)
	sort.Strings(out)

	return out, nil
}

// ShortestChain returns one shortest alternating person/group chain from
// one member to another through the bipartite graph, endpoints included.
// Either endpoint may be a person or a group. Ties between equally short
// chains follow BFS discovery over sorted neighbors, so the result is stable.
//
// Errors: ErrUnknownMember for an unknown endpoint, bfs.ErrNoPath when the
// two lie in different components.
func (n *Network) ShortestChain(from, to string) ([]string, error) {
	for _, id := range []string{from, to} {
		if !n.isMember(id) {
			return nil, fmt.Errorf("ShortestChain(%q, %q): %q: %w", from, to, id, ErrUnknownMember)
		}
	}
	res, err := bfs.BFS(n.bipartiteGraph(), from, bfs.WithContext(context.Background()))
	if err != nil {
		return nil, fmt.Errorf("ShortestChain(%q, %q): %w", from, to, err)
	}
	chain, err := res.PathTo(to)
	if err != nil {
		return nil, fmt.Errorf("ShortestChain(%q, %q): %w", from, to, err)
	}

	return chain, nil
}

func (n *Network) isMember(id string) bool {
	if _, ok := n.personIx[id]; ok {
		return true
	}
	_, ok := n.groupIx[id]

	return ok
}
