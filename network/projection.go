package network

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/affnet/core"
	"github.com/katalvlaran/affnet/matrix"
)

// incidenceMatrix returns the cached |persons|×|groups| 0/1 matrix.
// Duplicate edges collapse to a single 1.
func (n *Network) incidenceMatrix() *matrix.Dense {
	n.incidenceOnce.Do(func() {
		m, err := matrix.NewDense(len(n.persons), len(n.groups))
		must(err)
		for _, e := range n.edges {
			must(m.Set(n.personIx[e.Person], n.groupIx[e.Group], 1))
		}
		n.incidence = m
		n.logger.Debug("incidence matrix built",
			zap.Int("rows", m.Rows()), zap.Int("cols", m.Cols()))
	})

	return n.incidence
}

// projected returns the cached Projection Engine output.
//
// Implementation:
//   - Stage 1: co = B·Bᵀ (exact integer counts of shared groups).
//   - Stage 2: bin = co > 0, diagonal included.
//   - Stage 3: graph over all persons with an edge i–j iff bin[i][j]==1 and i<j.
func (n *Network) projected() projection {
	n.projectionOnce.Do(func() {
		b := n.incidenceMatrix()
		bt, err := matrix.Transpose(b)
		must(err)
		co, err := matrix.Mul(b, bt)
		must(err)
		if !matrix.IsSymmetric(co) {
			must(errors.New("co-membership matrix is not symmetric"))
		}
		bin, err := matrix.Threshold(co, 0)
		must(err)

		g := core.NewGraph(core.WithCapacity(len(n.persons)))
		for _, p := range n.persons {
			must(g.AddVertex(p, core.KindPerson))
		}
		bin.Do(func(i, j, v int) bool {
			if i < j && v == 1 {
				must(g.AddEdge(n.persons[i], n.persons[j]))
			}
			return true
		})

		n.proj = projection{coMembership: co, binary: bin, graph: g}
		n.logger.Debug("projection built",
			zap.Int("persons", g.VertexCount()), zap.Int("uniqueEdges", g.EdgeCount()))
	})

	return n.proj
}

// bipartiteGraph returns the cached person–group graph: one edge per incidence cell equal to 1.
func (n *Network) bipartiteGraph() *core.Graph {
	n.bipartiteOnce.Do(func() {
		g := core.NewGraph(core.WithBipartite(), core.WithCapacity(len(n.persons)+len(n.groups)))
		for _, p := range n.persons {
			must(g.AddVertex(p, core.KindPerson))
		}
		for _, gr := range n.groups {
			must(g.AddVertex(gr, core.KindGroup))
		}
		n.incidenceMatrix().Do(func(i, j, v int) bool {
			if v == 1 {
				must(g.AddEdge(n.persons[i], n.groups[j]))
			}
			return true
		})
		n.bipartite = g
	})

	return n.bipartite
}

// PersonToGroupMatrix returns a copy of the incidence matrix (rows = Persons(), cols = Groups()).
func (n *Network) PersonToGroupMatrix() *matrix.Dense { return n.incidenceMatrix().Clone() }

// PersonToGroupRows returns the incidence matrix as [][]int.
func (n *Network) PersonToGroupRows() [][]int { return n.incidenceMatrix().ToRows() }

// PersonToPerson returns a copy of the co-membership matrix B·Bᵀ.
// Cell (i,j) counts shared groups; the diagonal is each person's group count.
func (n *Network) PersonToPerson() *matrix.Dense { return n.projected().coMembership.Clone() }

// PersonToPersonRows returns the co-membership matrix as [][]int.
func (n *Network) PersonToPersonRows() [][]int { return n.projected().coMembership.ToRows() }

// BinPersonToPerson returns a copy of the dichotomized co-membership matrix.
func (n *Network) BinPersonToPerson() *matrix.Dense { return n.projected().binary.Clone() }

// BinPersonToPersonRows returns the binary co-membership matrix as [][]int.
func (n *Network) BinPersonToPersonRows() [][]int { return n.projected().binary.ToRows() }

// ProjectedGraph returns a copy of the person↔person graph (no self-loops, no weights).
func (n *Network) ProjectedGraph() *core.Graph { return n.projected().graph.Clone() }

// BipartiteGraph returns a copy of the person–group graph.
func (n *Network) BipartiteGraph() *core.Graph { return n.bipartiteGraph().Clone() }
