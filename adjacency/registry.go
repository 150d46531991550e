package adjacency

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Registry owns one Graph per distinct node count, building each lazily
// and exactly once. Ready graphs are immutable and returned by reference.
//
// Safe for concurrent use: a sync.RWMutex read path serves ready counts
// without blocking, and a singleflight.Group collapses concurrent first
// requests for one unseen count into a single build. A lookup of a ready
// count never waits on an unrelated count's build.
type Registry struct {
	mu     sync.RWMutex
	gen    uint64 // bumped by Clear; in-flight builds only store into their own generation
	graphs map[int]Graph
	flight singleflight.Group
	builds atomic.Uint64
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{graphs: make(map[int]Graph)}
}

// Get returns the graph for the given node count, building it first if
// absent. Every later call with the same count returns the same stored
// graph without rebuilding.
//
// Returns ErrNodeRange for counts outside [0, MaxNodes], or the build's
// error. Failed builds are not memoized: a retrying caller re-attempts
// the build from scratch.
func (r *Registry) Get(nodes int) (Graph, error) {
	if nodes < 0 || nodes > MaxNodes {
		return nil, fmt.Errorf("%w: %d", ErrNodeRange, nodes)
	}

	r.mu.RLock()
	graph, ready := r.graphs[nodes]
	r.mu.RUnlock()
	if ready {
		return graph, nil
	}

	v, err, _ := r.flight.Do(strconv.Itoa(nodes), func() (interface{}, error) {
		// an earlier flight may have stored the count between our read
		// miss and this call
		r.mu.RLock()
		cached, ok := r.graphs[nodes]
		gen := r.gen
		r.mu.RUnlock()
		if ok {
			return cached, nil
		}

		r.builds.Add(1)
		built, buildErr := Build(nodes)
		if buildErr != nil {
			return nil, buildErr
		}

		r.mu.Lock()
		if r.gen == gen {
			// a Clear during the build discards the result from the
			// cache; callers still get the graph they asked for
			r.graphs[nodes] = built
		}
		r.mu.Unlock()

		return built, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(Graph), nil
}

// WarmUp pre-builds graphs for the given counts so later lookups never
// pay build latency. Stops at the first failing count.
func (r *Registry) WarmUp(counts ...int) error {
	for _, n := range counts {
		if _, err := r.Get(n); err != nil {
			return fmt.Errorf("warm up %d: %w", n, err)
		}
	}

	return nil
}

// Clear discards every cached graph; subsequent Get calls rebuild from
// scratch. A build in flight when Clear runs still completes and is
// returned to its callers, but its graph is not retained. The build
// counter is left untouched.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.gen++
	r.graphs = make(map[int]Graph)
	r.mu.Unlock()
}

// Builds reports how many graph builds the registry has run. Lookups
// served from cache do not move it.
func (r *Registry) Builds() uint64 {
	return r.builds.Load()
}

// DefaultTileCounts returns the supported tile-count range at the fixed
// step: TileCountStep up to MaxTileCount inclusive. The typical WarmUp
// argument.
func DefaultTileCounts() []int {
	counts := make([]int, 0, MaxTileCount/TileCountStep)
	for n := TileCountStep; n <= MaxTileCount; n += TileCountStep {
		counts = append(counts, n)
	}

	return counts
}
