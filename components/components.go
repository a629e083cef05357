// Package components finds connected components of the bipartite
// person–group graph and selects the largest one.
//
// Components are discovered by BFS seeded in a fixed order: sorted persons
// first, then sorted groups. Largest returns the first component of maximal
// size in that discovery order, which makes the tie-break deterministic.
//
// Time:   O(V + E·log d).
// Memory: O(V).
package components

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/affnet/bfs"
	"github.com/katalvlaran/affnet/core"
)

var (
	// ErrGraphNil indicates a nil graph was passed.
	ErrGraphNil = errors.New("components: graph is nil")
	// ErrNoComponents indicates Largest was called on an empty component list.
	ErrNoComponents = errors.New("components: no components")
	// ErrUnknownKind indicates a vertex that is neither a person nor a group.
	ErrUnknownKind = errors.New("components: vertex is neither person nor group")
)

// Component is a maximal connected set of persons and groups.
// Both slices are sorted ascending.
type Component struct {
	Persons []string
	Groups  []string
}

// Size returns the number of nodes (persons + groups).
func (c Component) Size() int { return len(c.Persons) + len(c.Groups) }

// Contains reports whether id is a member of the component.
func (c Component) Contains(id string) bool {
	return containsSorted(c.Persons, id) || containsSorted(c.Groups, id)
}

// Proportion returns the fraction of totalPersons and totalGroups inside c.
// A zero total yields 0 for that side.
func (c Component) Proportion(totalPersons, totalGroups int) (persons, groups float64) {
	if totalPersons > 0 {
		persons = float64(len(c.Persons)) / float64(totalPersons)
	}
	if totalGroups > 0 {
		groups = float64(len(c.Groups)) / float64(totalGroups)
	}

	return persons, groups
}

// Find returns every connected component of g in discovery order.
//
// Seeds are g.VerticesOfKind(KindPerson) followed by g.VerticesOfKind(KindGroup).
// Any vertex of another Kind yields ErrUnknownKind.
func Find(ctx context.Context, g *core.Graph) ([]Component, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	persons := g.VerticesOfKind(core.KindPerson)
	groups := g.VerticesOfKind(core.KindGroup)
	if len(persons)+len(groups) != g.VertexCount() {
		return nil, ErrUnknownKind
	}

	seen := make(map[string]bool, g.VertexCount())
	var comps []Component
	for _, seed := range append(persons, groups...) {
		if seen[seed] {
			continue
		}
		var comp Component
		_, err := bfs.BFS(g, seed, bfs.WithContext(ctx), bfs.WithOnVisit(func(id string, _ int) error {
			seen[id] = true
			return comp.add(g, id)
		}))
		if err != nil {
			return nil, fmt.Errorf("components: BFS from %q: %w", seed, err)
		}
		sort.Strings(comp.Persons)
		sort.Strings(comp.Groups)
		comps = append(comps, comp)
	}

	return comps, nil
}

// add files id under Persons or Groups according to its kind in g.
func (c *Component) add(g *core.Graph, id string) error {
	kind, err := g.VertexKind(id)
	if err != nil {
		return err
	}
	switch kind {
	case core.KindPerson:
		c.Persons = append(c.Persons, id)
	case core.KindGroup:
		c.Groups = append(c.Groups, id)
	default:
		return fmt.Errorf("%q: %w", id, ErrUnknownKind)
	}

	return nil
}

// Largest returns the first component of maximal Size.
func Largest(comps []Component) (Component, error) {
	if len(comps) == 0 {
		return Component{}, ErrNoComponents
	}
	best := 0
	for i := 1; i < len(comps); i++ {
		if comps[i].Size() > comps[best].Size() {
			best = i
		}
	}

	return comps[best], nil
}

func containsSorted(ids []string, id string) bool {
	i := sort.SearchStrings(ids, id)
	return i < len(ids) && ids[i] == id
}
