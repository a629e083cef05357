package layout

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/affnet/core"
)

// Defaults for Spring.
const (
	DefaultSeed       int64 = 999999
	DefaultIterations       = 50
	DefaultScale            = 1.0

	initialTempFraction = 0.1
	minDistance         = 0.01
)

var (
	// ErrGraphNil indicates a nil graph was passed.
	ErrGraphNil = errors.New("layout: graph is nil")
	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("layout: invalid option supplied")
	// ErrMissingPosition indicates Export was given positions that do not cover the graph.
	ErrMissingPosition = errors.New("layout: vertex has no position")
)

// Point is a 2-D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Positions maps vertex IDs to coordinates.
type Positions map[string]Point

// Options holds Spring parameters.
type Options struct {
	Seed       int64
	K          float64 // optimal distance; 0 means 1/√n
	Iterations int
	Scale      float64

	err error
}

// Option configures Spring.
type Option func(*Options)

// DefaultOptions returns seed 999999, 50 iterations, automatic k, scale 1.
func DefaultOptions() Options {
	return Options{Seed: DefaultSeed, Iterations: DefaultIterations, Scale: DefaultScale}
}

// WithSeed fixes the RNG seed for the initial positions.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithK sets the optimal distance between vertices. k must be > 0.
func WithK(k float64) Option {
	return func(o *Options) {
		if k <= 0 || math.IsNaN(k) || math.IsInf(k, 0) {
			o.err = fmt.Errorf("%w: k must be positive and finite (%v)", ErrOptionViolation, k)
			return
		}
		o.K = k
	}
}

// WithIterations sets the number of cooling steps. n must be >= 1.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: iterations must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Iterations = n
	}
}

// WithScale sets the half-width of the output box. s must be > 0.
func WithScale(s float64) Option {
	return func(o *Options) {
		if s <= 0 {
			o.err = fmt.Errorf("%w: scale must be positive (%v)", ErrOptionViolation, s)
			return
		}
		o.Scale = s
	}
}

// Spring computes a Fruchterman–Reingold layout of g.
//
// Errors: ErrGraphNil, ErrOptionViolation.
//
// Complexity: O(iterations·(V² + E)).
func Spring(g *core.Graph, opts ...Option) (Positions, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ids := g.Vertices()
	n := len(ids)
	pos := make(Positions, n)
	switch n {
	case 0:
		return pos, nil
	case 1:
		pos[ids[0]] = Point{}
		return pos, nil
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		adj[u][v], adj[v][u] = true, true
	}

	rng := rand.New(rand.NewSource(o.Seed))
	xs, ys := make([]float64, n), make([]float64, n)
	for i := range ids {
		xs[i], ys[i] = rng.Float64(), rng.Float64()
	}

	k := o.K
	if k == 0 {
		k = 1 / math.Sqrt(float64(n))
	}
	t := initialTempFraction * math.Max(spread(xs), spread(ys))
	dt := t / float64(o.Iterations+1)

	dx, dy := make([]float64, n), make([]float64, n)
	for iter := 0; iter < o.Iterations; iter++ {
		for i := 0; i < n; i++ {
			dx[i], dy[i] = 0, 0
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				ddx, ddy := xs[i]-xs[j], ys[i]-ys[j]
				d := math.Max(math.Hypot(ddx, ddy), minDistance)
				// Repulsion k²/d along the unit vector, minus attraction d²/k on edges.
				f := k * k / (d * d)
				if adj[i][j] {
					f -= d / k
				}
				dx[i] += ddx * f
				dy[i] += ddy * f
			}
		}
		for i := 0; i < n; i++ {
			l := math.Max(math.Hypot(dx[i], dy[i]), minDistance)
			xs[i] += dx[i] * t / l
			ys[i] += dy[i] * t / l
		}
		t -= dt
	}

	rescale(xs, ys, o.Scale)
	for i, id := range ids {
		pos[id] = Point{X: xs[i], Y: ys[i]}
	}

	return pos, nil
}

func spread(v []float64) float64 {
	lo, hi := v[0], v[0]
	for _, x := range v[1:] {
		lo, hi = math.Min(lo, x), math.Max(hi, x)
	}

	return hi - lo
}

// rescale centers xs, ys on their mean and maps the largest |coordinate| to scale.
func rescale(xs, ys []float64, scale float64) {
	var mx, my float64
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}
	mx /= float64(len(xs))
	my /= float64(len(ys))

	lim := 0.0
	for i := range xs {
		xs[i] -= mx
		ys[i] -= my
		lim = math.Max(lim, math.Max(math.Abs(xs[i]), math.Abs(ys[i])))
	}
	if lim == 0 {
		return
	}
	for i := range xs {
		xs[i] *= scale / lim
		ys[i] *= scale / lim
	}
}
