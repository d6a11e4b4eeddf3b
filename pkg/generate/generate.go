// Package generate samples random temporal graphs.
//
// Every snapshot is an independent Erdős–Rényi graph G(n, p) over the same
// vertex set 0..n-1. Randomness is always injected: pass [WithSeed] for
// reproducible output or [WithRand] to share a generator. Without either,
// a time-seeded source is used.
package generate

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/matzehuels/graphderiv/pkg/temporal"
)

var (
	ErrNegativeVertices  = errors.New("generate: vertex count must be >= 0")
	ErrNegativeSnapshots = errors.New("generate: snapshot count must be >= 0")
	ErrProbability       = errors.New("generate: edge probability must be in [0, 1]")
)

// Option customizes [Random].
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a fresh source for reproducible graphs.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// Random samples a temporal graph on vertices 0..n-1 with the given number
// of snapshots. Each unordered pair (i<j) is included in each snapshot
// independently with probability p. Pairs are visited in lexicographic
// order, so a given seed always yields the same graph.
func Random(n, snapshots int, p float64, opts ...Option) (*temporal.Graph, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: got %d", ErrNegativeVertices, n)
	case snapshots < 0:
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSnapshots, snapshots)
	case !(p >= 0 && p <= 1):
		return nil, fmt.Errorf("%w: got %g", ErrProbability, p)
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	vertices := make([]temporal.Vertex, n)
	for i := range vertices {
		vertices[i] = temporal.Vertex(i)
	}
	snaps := make([][]temporal.Edge, snapshots)
	for s := range snaps {
		snaps[s] = []temporal.Edge{}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					snaps[s] = append(snaps[s], temporal.Edge{U: vertices[i], V: vertices[j]})
				}
			}
		}
	}
	return temporal.New(vertices, snaps)
}

// Limits bounds the parameters accepted from untrusted callers.
type Limits struct {
	MaxVertices  int
	MaxSnapshots int
}

// DefaultLimits are the bounds applied by the HTTP API.
var DefaultLimits = Limits{MaxVertices: 30, MaxSnapshots: 20}

// Clamp forces n into [1, MaxVertices], snapshots into [1, MaxSnapshots]
// and p into [0, 1]. A NaN probability becomes 0.
func Clamp(n, snapshots int, p float64, l Limits) (int, int, float64) {
	n = min(max(n, 1), l.MaxVertices)
	snapshots = min(max(snapshots, 1), l.MaxSnapshots)
	switch {
	case p != p, p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	return n, snapshots, p
}
