package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/affnet/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexIdempotentAndKindConflict() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("A", core.KindPerson))
	require.NoError(s.g.AddVertex("A", core.KindPerson))
	require.Equal(1, s.g.VertexCount())

	err := s.g.AddVertex("A", core.KindGroup)
	require.ErrorIs(err, core.ErrKindConflict)

	require.ErrorIs(s.g.AddVertex("", core.KindPerson), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestAddEdgeMirrorsAndCounts() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("A", core.KindPerson))
	require.NoError(s.g.AddVertex("B", core.KindPerson))
	require.NoError(s.g.AddEdge("B", "A"))

	require.True(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"))
	require.Equal(1, s.g.EdgeCount())
	require.Equal([]core.Edge{{From: "A", To: "B"}}, s.g.Edges())
}

func (s *GraphSuite) TestAddEdgeRejections() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("A", core.KindPerson))
	require.NoError(s.g.AddVertex("B", core.KindPerson))

	require.ErrorIs(s.g.AddEdge("A", "missing"), core.ErrVertexNotFound)
	require.ErrorIs(s.g.AddEdge("A", "A"), core.ErrLoopNotAllowed)
	require.NoError(s.g.AddEdge("A", "B"))
	require.ErrorIs(s.g.AddEdge("B", "A"), core.ErrMultiEdgeNotAllowed)
	require.ErrorIs(s.g.AddEdge("", "A"), core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestBipartitePolicy() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithBipartite())
	require.True(g.Bipartite())
	require.NoError(g.AddVertex("A", core.KindPerson))
	require.NoError(g.AddVertex("B", core.KindPerson))
	require.NoError(g.AddVertex("G1", core.KindGroup))

	require.ErrorIs(g.AddEdge("A", "B"), core.ErrSameKindEdge)
	require.NoError(g.AddEdge("A", "G1"))
	require.Equal([]string{"A", "B"}, g.VerticesOfKind(core.KindPerson))
	require.Equal([]string{"G1"}, g.VerticesOfKind(core.KindGroup))
}

func (s *GraphSuite) TestNeighborIDsSortedAndDegree() {
	require := require.New(s.T())
	for _, id := range []string{"C", "A", "B", "D"} {
		require.NoError(s.g.AddVertex(id, core.KindPerson))
	}
	require.NoError(s.g.AddEdge("A", "D"))
	require.NoError(s.g.AddEdge("A", "C"))
	require.NoError(s.g.AddEdge("A", "B"))

	nbrs, err := s.g.NeighborIDs("A")
	require.NoError(err)
	require.Equal([]string{"B", "C", "D"}, nbrs)

	d, err := s.g.Degree("A")
	require.NoError(err)
	require.Equal(3, d)

	_, err = s.g.NeighborIDs("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Degree("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)

	require.Equal([]string{"A", "B", "C", "D"}, s.g.Vertices())
}

func (s *GraphSuite) TestCloneIndependence() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("A", core.KindPerson))
	require.NoError(s.g.AddVertex("B", core.KindPerson))
	require.NoError(s.g.AddEdge("A", "B"))

	c := s.g.Clone()
	require.NoError(c.AddVertex("C", core.KindPerson))
	require.NoError(c.AddEdge("A", "C"))

	require.False(s.g.HasVertex("C"))
	require.False(s.g.HasEdge("A", "C"))
	require.Equal(1, s.g.EdgeCount())
	require.Equal(2, c.EdgeCount())

	kind, err := c.VertexKind("A")
	require.NoError(err)
	require.Equal(core.KindPerson, kind)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "person", core.KindPerson.String())
	require.Equal(t, "group", core.KindGroup.String())
	require.Equal(t, "unspecified", core.KindUnspecified.String())
}

func TestParseKind(t *testing.T) {
	for _, k := range []core.Kind{core.KindPerson, core.KindGroup, core.KindUnspecified} {
		require.Equal(t, k, core.ParseKind(k.String()))
	}
	require.Equal(t, core.KindUnspecified, core.ParseKind("Person"))
	require.Equal(t, core.KindUnspecified, core.ParseKind(""))
}
