package network

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/affnet/components"
)

// largestComponent returns the cached largest bipartite component.
// Every member must be a known person or group; anything else panics with
// ErrInternalInconsistency.
func (n *Network) largestComponent() components.Component {
	n.largestOnce.Do(func() {
		comps, err := components.Find(context.Background(), n.bipartiteGraph())
		must(err)
		largest, err := components.Largest(comps)
		must(err)
		for _, p := range largest.Persons {
			if _, ok := n.personIx[p]; !ok {
				must(fmt.Errorf("component person %q not in person set", p))
			}
		}
		for _, g := range largest.Groups {
			if _, ok := n.groupIx[g]; !ok {
				must(fmt.Errorf("component group %q not in group set", g))
			}
		}
		n.largest = largest
		n.logger.Debug("largest component found",
			zap.Int("components", len(comps)),
			zap.Int("persons", len(largest.Persons)),
			zap.Int("groups", len(largest.Groups)),
		)
	})

	return n.largest
}

// LargestComponent returns the persons and groups of the largest connected
// component of the bipartite graph. Ties go to the component discovered
// first when seeding BFS with sorted persons, then sorted groups.
func (n *Network) LargestComponent() components.Component {
	c := n.largestComponent()
	return components.Component{
		Persons: append([]string(nil), c.Persons...),
		Groups:  append([]string(nil), c.Groups...),
	}
}

// IsConnected reports whether the largest component holds every person and group.
func (n *Network) IsConnected() bool {
	return n.largestComponent().Size() == len(n.persons)+len(n.groups)
}

// LargestComponentToNetwork builds a fresh Network from the edges whose
// person and group both lie in the largest component. Edge order and
// duplicates are preserved; all derived structures are rebuilt from scratch.
func (n *Network) LargestComponentToNetwork() (*Network, error) {
	c := n.largestComponent()
	edges := make([]Edge, 0, len(n.edges))
	for _, e := range n.edges {
		if c.Contains(e.Person) && c.Contains(e.Group) {
			edges = append(edges, e)
		}
	}

	return New(edges, WithLogger(n.logger))
}

// LargestProportion returns the fraction of all persons and of all groups
// that fall inside the largest component. Denominators are this network's
// totals.
func (n *Network) LargestProportion() (persons, groups float64) {
	return n.largestComponent().Proportion(len(n.persons), len(n.groups))
}
