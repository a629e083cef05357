package network

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/affnet/components"
	"github.com/katalvlaran/affnet/core"
	"github.com/katalvlaran/affnet/matrix"
	"github.com/katalvlaran/affnet/metrics"
)

// Sentinel errors for network construction and queries.
var (
	// ErrMalformedInput indicates the edge input is empty, a pair is not exactly
	// (person, group), an identifier is empty, or an identifier is used both as
	// a person and as a group.
	ErrMalformedInput = errors.New("network: malformed input")

	// ErrInvalidStep indicates a negative k for k-step reach.
	ErrInvalidStep = errors.New("network: reach step must be >= 0")

	// ErrUnknownMember indicates an ID that is neither a person nor a group
	// of the network.
	ErrUnknownMember = errors.New("network: unknown person or group")

	// ErrInternalInconsistency marks a broken internal invariant. It is only
	// ever used as a panic value.
	ErrInternalInconsistency = errors.New("network: internal inconsistency")
)

// Edge is one (person, group) membership.
type Edge struct {
	Person string
	Group  string
}

// Option configures a Network.
type Option func(*Network)

// WithLogger attaches a zap logger used for debug traces of lazy computations.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.logger = l
		}
	}
}

// projection groups the three products of the Projection Engine.
type projection struct {
	coMembership *matrix.Dense
	binary       *matrix.Dense
	graph        *core.Graph
}

// Network is an immutable affiliation network.
type Network struct {
	edges    []Edge
	persons  []string
	groups   []string
	personIx map[string]int
	groupIx  map[string]int
	logger   *zap.Logger

	incidenceOnce sync.Once
	incidence     *matrix.Dense

	projectionOnce sync.Once
	proj           projection

	bipartiteOnce sync.Once
	bipartite     *core.Graph

	largestOnce sync.Once
	largest     components.Component

	pathsOnce sync.Once
	paths     *metrics.PathTable

	betweennessOnce sync.Once
	betweenness     map[string]float64
}
