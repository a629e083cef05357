package ingest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affnet/ingest"
	"github.com/katalvlaran/affnet/network"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestReadTrimsAndSkipsBlank(t *testing.T) {
	edges, err := ingest.Read(strings.NewReader(" A , G1 \n\n   \nB,G1\r\n"))
	require.NoError(t, err)
	require.Equal(t, []network.Edge{{Person: "A", Group: "G1"}, {Person: "B", Group: "G1"}}, edges)
}

func TestReadDropsBOM(t *testing.T) {
	edges, err := ingest.Read(strings.NewReader("\ufeffA,G1\nB,G2\n"))
	require.NoError(t, err)
	require.Equal(t, "A", edges[0].Person)
	require.Len(t, edges, 2)
}

func TestReadMalformed(t *testing.T) {
	_, err := ingest.Read(strings.NewReader("A,G1\nB,G2,extra\n"))
	require.ErrorIs(t, err, ingest.ErrMalformedRecord)
	require.Contains(t, err.Error(), "line 2")

	_, err = ingest.Read(strings.NewReader("A,\n"))
	require.ErrorIs(t, err, ingest.ErrMalformedRecord)
}

func TestLoadVariants(t *testing.T) {
	dir := t.TempDir()
	p1 := writeFile(t, dir, "one.csv", "\ufeffA,G1\nB,G1\n")
	p2 := writeFile(t, dir, "two.csv", "C,G2\n")

	edges, err := ingest.Load(ingest.SourcePath(p1))
	require.NoError(t, err)
	require.Len(t, edges, 2)

	edges, err = ingest.Load(ingest.SourcePathList{p1, p2})
	require.NoError(t, err)
	require.Equal(t, []network.Edge{
		{Person: "A", Group: "G1"}, {Person: "B", Group: "G1"}, {Person: "C", Group: "G2"},
	}, edges)

	edges, err = ingest.Load(ingest.RawEdgeList{{"X", "G9"}})
	require.NoError(t, err)
	require.Equal(t, []network.Edge{{Person: "X", Group: "G9"}}, edges)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.csv", "\n\n")

	cases := map[string]ingest.Source{
		"nil":         nil,
		"empty list":  ingest.SourcePathList{},
		"empty pairs": ingest.RawEdgeList{},
		"empty file":  ingest.SourcePath(empty),
		"empty path":  ingest.SourcePath(""),
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ingest.Load(src)
			require.ErrorIs(t, err, ingest.ErrInvalidSource)
		})
	}

	_, err := ingest.Load(ingest.RawEdgeList{{"A"}})
	require.ErrorIs(t, err, ingest.ErrMalformedRecord)

	_, err = ingest.Load(ingest.SourcePath(filepath.Join(dir, "missing.csv")))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNetwork(t *testing.T) {
	n, err := ingest.Network(ingest.RawEdgeList{{"A", "G1"}, {"B", "G1"}})
	require.NoError(t, err)
	require.Equal(t, 1, n.UniqueEdges())
}
