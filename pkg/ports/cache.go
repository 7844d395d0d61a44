package ports

import "context"

// HeuristicCache stores computed heuristic estimates keyed by problem
// identity plus encoded state. Capacity exhaustion is handled by the
// implementation's own eviction policy, never by rejecting a Put.
type HeuristicCache interface {
	// Get returns the cached value for key and whether it was present.
	Get(ctx context.Context, key string) (int, bool, error)

	// Put stores value under key, evicting older entries if needed.
	Put(ctx context.Context, key string, value int) error
}
