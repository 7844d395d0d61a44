package search

import (
	"context"
	"fmt"

	"github.com/aretw0/skyplan/pkg/domain"
	"github.com/aretw0/skyplan/pkg/heuristic"
)

// Algorithms lists the driver names accepted by Run.
func Algorithms() []string {
	return []string{"bfs", "ucs", "astar", "greedy"}
}

// Run dispatches to a driver by name. The heuristic is ignored by the
// uninformed drivers (bfs, ucs) and required by the informed ones.
func Run(ctx context.Context, algorithm string, p Problem, h heuristic.Func) ([]domain.GroundAction, error) {
	switch algorithm {
	case "bfs":
		return BreadthFirst(ctx, p)
	case "ucs":
		return UniformCost(ctx, p)
	case "astar":
		if h == nil {
			return nil, fmt.Errorf("algorithm %q requires a heuristic", algorithm)
		}
		return AStar(ctx, p, h)
	case "greedy":
		if h == nil {
			return nil, fmt.Errorf("algorithm %q requires a heuristic", algorithm)
		}
		return Greedy(ctx, p, h)
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want bfs, ucs, astar or greedy)", algorithm)
	}
}
