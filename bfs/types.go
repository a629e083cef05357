package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
	// ErrNoPath is returned by Result.PathTo for a vertex that was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option tunes a single traversal. An invalid Option is remembered and
// reported as ErrOptionViolation once BFS starts.
type Option func(*config)

// config is the resolved set of Options for one traversal.
type config struct {
	ctx       context.Context
	onEnqueue func(id string, depth int)
	onVisit   func(id string, depth int) error
	maxDepth  int // 0 means unbounded
	err       error
}

func newConfig(opts []Option) (config, error) {
	c := config{
		ctx:       context.Background(),
		onEnqueue: func(string, int) {},
		onVisit:   func(string, int) error { return nil },
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c, c.err
}

// WithContext lets the caller cancel a traversal. The context is checked
// once per dequeued vertex.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithOnEnqueue registers fn to observe each vertex at the moment its depth
// becomes known.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(c *config) {
		if fn != nil {
			c.onEnqueue = fn
		}
	}
}

// WithOnVisit registers fn to run as each vertex leaves the queue, in
// Result.Order order. A non-nil error from fn ends the traversal and is
// returned wrapped from BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(c *config) {
		if fn != nil {
			c.onVisit = fn
		}
	}
}

// WithMaxDepth keeps the traversal within d hops of the start vertex.
// d == 0 removes the bound; d < 0 is ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(c *config) {
		if d < 0 {
			c.err = fmt.Errorf("%w: max depth %d is negative", ErrOptionViolation, d)
			return
		}
		c.maxDepth = d
	}
}

// Result is the BFS tree rooted at the start vertex.
//
// Depth holds exactly the reached vertices; Parent holds every reached
// vertex except the start.
type Result struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo walks Parent links back from dest and returns the hops from Start
// to dest inclusive. An unreached dest yields ErrNoPath.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w from %q to %q", ErrNoPath, r.Start, dest)
	}
	path := make([]string, d+1)
	cur := dest
	for i := d; i > 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	path[0] = cur

	return path, nil
}
