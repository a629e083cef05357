package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/affnet/bfs"
	"github.com/katalvlaran/affnet/core"
)

// chain builds the undirected path A–B–C–D.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		if err := g.AddVertex(id, core.KindPerson); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A", core.KindPerson)
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_DepthsAndOrder covers a simple path.
func TestBFS_DepthsAndOrder(t *testing.T) {
	res, err := bfs.BFS(chain(t), "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for id, want := range map[string]int{"A": 0, "B": 1, "C": 2, "D": 3} {
		if got := res.Depth[id]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", id, got, want)
		}
	}
	path, err := res.PathTo("D")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(D) = %v; want %v", path, want)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start
// vertex and that unreachable vertices are absent from Depth.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"X", "Y", "P", "Q"} {
		_ = g.AddVertex(id, core.KindPerson)
	}
	_ = g.AddEdge("X", "Y")
	_ = g.AddEdge("P", "Q")

	res, err := bfs.BFS(g, "X")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", res.Order)
	}
	if _, ok := res.Depth["P"]; ok {
		t.Errorf("P must be unreachable from X")
	}
	if _, err := res.PathTo("Q"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(Q): want ErrNoPath, got %v", err)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive and zero (no limit) depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(t)
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth=1: got %v; want [A B]", res.Order)
	}
	if res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(0)); len(res.Order) != 4 {
		t.Errorf("MaxDepth=0: got %v; want all 4", res.Order)
	}
	res, err := bfs.BFS(g, "B", bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"B", "A", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth=1 from B: got %v; want %v", res.Order, want)
	}
	if _, err := res.PathTo("D"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(D) beyond bound: want ErrNoPath, got %v", err)
	}
	if path, _ := res.PathTo("B"); !reflect.DeepEqual(path, []string{"B"}) {
		t.Errorf("PathTo(start) = %v; want [B]", path)
	}
}

// TestBFS_Hooks checks hook ordering and abort propagation.
func TestBFS_Hooks(t *testing.T) {
	var enq, vis []string
	depths := map[string]int{}
	stop := errors.New("stop")
	_, err := bfs.BFS(chain(t), "A",
		bfs.WithOnEnqueue(func(id string, _ int) { enq = append(enq, id) }),
		bfs.WithOnVisit(func(id string, depth int) error {
			vis = append(vis, id)
			depths[id] = depth
			if id == "C" {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Fatalf("want hook error, got %v", err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(vis, want) {
		t.Errorf("visited %v; want %v", vis, want)
	}
	if want := map[string]int{"A": 0, "B": 1, "C": 2}; !reflect.DeepEqual(depths, want) {
		t.Errorf("visit depths %v; want %v", depths, want)
	}
	// C is enqueued while B is visited, before the hook stops at C.
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(enq, want) {
		t.Errorf("enqueued %v; want %v", enq, want)
	}
}

// TestBFS_Cancel ensures a cancelled context aborts the traversal.
func TestBFS_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(chain(t), "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
