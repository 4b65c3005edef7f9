// Package layout implements the retained-mode flexbox layout engine: an
// arena-backed node tree, dirty propagation, a fingerprinted result cache,
// and a single-line flexbox solver. See spec §§3–4.
package layout

// Engine owns the arena, the root list, the layout cache counters, and the
// last-error slot for one layout instance. Not safe for concurrent use
// (spec §5); callers must synchronize externally if sharing an Engine
// across goroutines.
type Engine struct {
	arena *Arena
	roots []Handle

	lastError ErrorCode

	cacheHits   uint64
	cacheMisses uint64
}

// Create constructs an Engine with a fixed capacity of maxNodes slots.
// maxNodes must be positive.
func Create(maxNodes int) *Engine {
	return &Engine{arena: newArena(maxNodes)}
}

// Destroy releases the engine's resources. The Engine must not be used
// afterward.
func (e *Engine) Destroy() {
	e.arena = nil
	e.roots = nil
}

// NodeCount returns the number of in-use nodes.
func (e *Engine) NodeCount() int { return e.arena.NodeCount() }

// MaxElements returns the fixed node capacity this engine was created with.
func (e *Engine) MaxElements() int { return e.arena.Capacity() }

// DirtyCount returns the number of in-use nodes currently marked dirty.
func (e *Engine) DirtyCount() int { return e.arena.DirtyCount() }

// LastError returns the error code of the most recent failing call on
// this Engine, or OK if the last fallible call succeeded.
func (e *Engine) LastError() ErrorCode { return e.lastError }

func (e *Engine) fail(code ErrorCode) *Error {
	e.lastError = code
	return newError(code)
}

func (e *Engine) ok() {
	e.lastError = OK
}

// CacheHitRate returns hits / (hits + misses), or 0.0 if neither has
// occurred yet.
func (e *Engine) CacheHitRate() float64 {
	total := e.cacheHits + e.cacheMisses
	if total == 0 {
		return 0.0
	}
	return float64(e.cacheHits) / float64(total)
}

// ResetStats zeros the cache hit/miss counters.
func (e *Engine) ResetStats() {
	e.cacheHits = 0
	e.cacheMisses = 0
}

// Validate reports whether h names a live node on this engine.
func (e *Engine) Validate(h Handle) bool {
	return e.arena.Validate(h)
}
