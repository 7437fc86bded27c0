package pathfinding

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/syncmap"

	"gridnav/core"
)

// CacheKey identifies one cached query. MapVersion ties the entry to the
// traversability grid it was computed on, so reloads never serve stale
// paths.
type CacheKey struct {
	Start, Dest core.Point
	MapVersion  uint64
}

// PathCache stores previously computed paths for reuse. Safe for concurrent
// use.
type PathCache struct {
	entries   syncmap.Map // CacheKey -> core.Path
	maxSize   int
	size      int64
	hits      int64
	misses    int64
	evictions int64
}

// NewPathCache creates a cache holding at most maxSize entries; zero or
// negative means unbounded.
func NewPathCache(maxSize int) *PathCache {
	return &PathCache{maxSize: maxSize}
}

// Get retrieves a cached path.
func (pc *PathCache) Get(key CacheKey) (core.Path, bool) {
	v, ok := pc.entries.Load(key)
	if !ok {
		atomic.AddInt64(&pc.misses, 1)
		return core.Path{}, false
	}
	atomic.AddInt64(&pc.hits, 1)
	return v.(core.Path), true
}

// Put stores a path, evicting an arbitrary entry when the cache is full.
func (pc *PathCache) Put(key CacheKey, path core.Path) {
	if pc.maxSize > 0 && atomic.LoadInt64(&pc.size) >= int64(pc.maxSize) {
		pc.entries.Range(func(k, _ interface{}) bool {
			pc.entries.Delete(k)
			atomic.AddInt64(&pc.size, -1)
			atomic.AddInt64(&pc.evictions, 1)
			return false
		})
	}
	if _, loaded := pc.entries.LoadOrStore(key, path); !loaded {
		atomic.AddInt64(&pc.size, 1)
	}
}

// Clear removes all entries and resets the counters.
func (pc *PathCache) Clear() {
	pc.entries.Range(func(k, _ interface{}) bool {
		pc.entries.Delete(k)
		return true
	})
	atomic.StoreInt64(&pc.size, 0)
	atomic.StoreInt64(&pc.hits, 0)
	atomic.StoreInt64(&pc.misses, 0)
	atomic.StoreInt64(&pc.evictions, 0)
}

// Stats returns cache statistics.
func (pc *PathCache) Stats() (hits, misses, evictions, size int) {
	return int(atomic.LoadInt64(&pc.hits)),
		int(atomic.LoadInt64(&pc.misses)),
		int(atomic.LoadInt64(&pc.evictions)),
		int(atomic.LoadInt64(&pc.size))
}

// String returns a summary of the cache statistics.
func (pc *PathCache) String() string {
	hits, misses, evictions, size := pc.Stats()
	hitRate := 0.0
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return fmt.Sprintf("PathCache[size=%d/%d, hits=%d, misses=%d, hitRate=%.1f%%, evictions=%d]",
		size, pc.maxSize, hits, misses, hitRate, evictions)
}

// CachedPathFinder wraps a PathFinder with result caching. It owns the
// traversability grid so it can reload the map before every computed search,
// which is what resets node state between queries. A mutex serializes
// searches; the cache itself is lock-free for hits.
type CachedPathFinder struct {
	mu      sync.Mutex
	finder  *PathFinder
	cells   [][]bool
	version uint64
	cache   *PathCache
}

// NewCachedPathFinder creates a caching finder for the given grid.
func NewCachedPathFinder(width, height int, cells [][]bool, cacheSize int) (*CachedPathFinder, error) {
	finder, err := NewPathFinder(width, height)
	if err != nil {
		return nil, err
	}
	if err := finder.LoadMap(cells); err != nil {
		return nil, err
	}
	return &CachedPathFinder{
		finder: finder,
		cells:  cells,
		cache:  NewPathCache(cacheSize),
	}, nil
}

// SetMap replaces the traversability grid and invalidates all cached
// entries via the version counter.
func (cpf *CachedPathFinder) SetMap(cells [][]bool) error {
	cpf.mu.Lock()
	defer cpf.mu.Unlock()
	if err := cpf.finder.LoadMap(cells); err != nil {
		return err
	}
	cpf.cells = cells
	cpf.version++
	return nil
}

// FindPath answers from the cache when possible, otherwise runs a fresh
// search (map reloaded first) and caches the result. Empty no-path results
// are cached too; they are normal outcomes and just as expensive to
// recompute.
func (cpf *CachedPathFinder) FindPath(start, dest core.Point, maxLoops int) (core.Path, error) {
	cpf.mu.Lock()
	key := CacheKey{Start: start, Dest: dest, MapVersion: cpf.version}
	cpf.mu.Unlock()

	if path, ok := cpf.cache.Get(key); ok {
		return path, nil
	}

	cpf.mu.Lock()
	defer cpf.mu.Unlock()
	if err := cpf.finder.LoadMap(cpf.cells); err != nil {
		return core.Path{}, err
	}
	if err := cpf.finder.SetStart(start.X, start.Y); err != nil {
		return core.Path{}, err
	}
	if err := cpf.finder.SetDestination(dest.X, dest.Y); err != nil {
		return core.Path{}, err
	}
	path, err := cpf.finder.FindPath(maxLoops)
	if err != nil {
		return core.Path{}, err
	}
	cpf.cache.Put(key, path)
	return path, nil
}

// CacheStats returns the cache statistics summary.
func (cpf *CachedPathFinder) CacheStats() string {
	return cpf.cache.String()
}
